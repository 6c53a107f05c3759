package handler

import (
	"github.com/deppfellow/person-api/internal/errs"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/deppfellow/person-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// HairColor is the closed set of accepted hair colors.
//
// Validation happens through the `oneof` tag on the payload field, so the
// constants below are documentation plus a typed home for the values.
type HairColor string

const (
	HairColorWhite  HairColor = "white"
	HairColorBrown  HairColor = "brown"
	HairColorBlack  HairColor = "black"
	HairColorBlonde HairColor = "blonde"
	HairColorRed    HairColor = "red"
	HairColorBlue   HairColor = "blue"
)

// PersonBase holds the person fields shared by input and output payloads.
//
// HairColor and IsMarried are pointers because they are optional: nil means
// "not provided", which is different from "" or false.
type PersonBase struct {
	FirstName string     `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string     `json:"last_name" validate:"required,min=1,max=50"`
	Age       int        `json:"age" validate:"required,gt=0,lte=1000"`
	HairColor *HairColor `json:"hair_color" validate:"omitempty,oneof=white brown black blonde red blue"`
	IsMarried *bool      `json:"is_married"`
}

// Person is the input payload: PersonBase plus a password.
//
// The password exists ONLY on the way in. It never appears on any output
// type, so there is no code path that could echo it back to a client.
type Person struct {
	PersonBase
	Password string `json:"password" validate:"required,min=8"`
}

// PersonOut is the output payload: identical fields to PersonBase,
// no password. Struct composition instead of repeating the fields.
type PersonOut struct {
	PersonBase
}

// Location is the address sub-object accepted by the update endpoint.
type Location struct {
	City    string `json:"city" validate:"required,min=1,max=50"`
	State   string `json:"state" validate:"required,min=1,max=50"`
	Country string `json:"country" validate:"required,min=1,max=50"`
}

// knownPersonIDs is the full extent of the "database": a fixed, read-only
// membership set. Never mutated after init, so it is safe to share across
// request goroutines without locking.
var knownPersonIDs = map[int]struct{}{
	1: {}, 2: {}, 3: {}, 4: {}, 5: {}, 6: {},
}

// PersonHandler serves all /person endpoints.
type PersonHandler struct {
	Handler
}

// NewPersonHandler constructs a PersonHandler with access to shared app dependencies.
func NewPersonHandler(s *server.Server) *PersonHandler {
	return &PersonHandler{
		Handler: NewHandler(s),
	}
}

// --- Create -----------------------------------------------------------------

// CreatePersonRequest is the body of POST /person/new.
type CreatePersonRequest struct {
	Person
}

func (r *CreatePersonRequest) Validate() error {
	return validation.Struct(r)
}

// CreatePerson validates the incoming Person and returns it as PersonOut.
//
// There is no persistence: the payload is constructed, validated, and
// returned within the single request. The response type is what strips
// the password.
func (h *PersonHandler) CreatePerson(c echo.Context, req *CreatePersonRequest) (*PersonOut, error) {
	return &PersonOut{PersonBase: req.PersonBase}, nil
}

// --- Detail by query --------------------------------------------------------

// PersonDetailQuery carries the query parameters of GET /person/detail.
//
// Age is intentionally a string: the endpoint echoes it, it never does
// arithmetic on it.
type PersonDetailQuery struct {
	Name string `query:"name" validate:"omitempty,min=1,max=50"`
	Age  string `query:"age" validate:"required"`
}

func (r *PersonDetailQuery) Validate() error {
	return validation.Struct(r)
}

// ShowPersonDetail returns a single-entry mapping {name: age}.
func (h *PersonHandler) ShowPersonDetail(c echo.Context, req *PersonDetailQuery) (map[string]string, error) {
	return map[string]string{req.Name: req.Age}, nil
}

// --- Detail by path ---------------------------------------------------------

// PersonDetailParam carries the path parameter of GET /person/detail/:person_id.
type PersonDetailParam struct {
	PersonID int `param:"person_id" validate:"required,gt=0"`
}

func (r *PersonDetailParam) Validate() error {
	return validation.Struct(r)
}

// ShowPersonDetailByID checks membership of person_id in the fixed ID set.
//
// Returns {"<id>": "It exists!"} on a hit, 404 otherwise. encoding/json
// stringifies the int key on the way out.
func (h *PersonHandler) ShowPersonDetailByID(c echo.Context, req *PersonDetailParam) (map[int]string, error) {
	if _, ok := knownPersonIDs[req.PersonID]; !ok {
		return nil, errs.NewNotFoundError("This person doesn't exist!", false, nil)
	}

	return map[int]string{req.PersonID: "It exists!"}, nil
}

// --- Update -----------------------------------------------------------------

// UpdatePersonRequest is the input of PUT /person/:person_id.
//
// The body carries two embedded objects, keyed "person" and "location".
// PersonID comes from the path; json:"-" keeps the body from overwriting it.
type UpdatePersonRequest struct {
	PersonID int      `param:"person_id" json:"-" validate:"required,gt=0"`
	Person   Person   `json:"person" validate:"required"`
	Location Location `json:"location" validate:"required"`
}

func (r *UpdatePersonRequest) Validate() error {
	return validation.Struct(r)
}

// UpdatePerson merges the person and location fields into one mapping and
// returns it. Purely an echo/merge operation, no persistence.
//
// The keys are disjoint by construction, so the merge cannot collide.
// The password is deliberately left out of the merge: the output contract
// for person data never includes credentials.
func (h *PersonHandler) UpdatePerson(c echo.Context, req *UpdatePersonRequest) (map[string]interface{}, error) {
	results := map[string]interface{}{
		"first_name": req.Person.FirstName,
		"last_name":  req.Person.LastName,
		"age":        req.Person.Age,
		"hair_color": req.Person.HairColor,
		"is_married": req.Person.IsMarried,
	}

	results["city"] = req.Location.City
	results["state"] = req.Location.State
	results["country"] = req.Location.Country

	return results, nil
}
