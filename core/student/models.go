package student

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/shule/core"
)

// Statuses
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

var Statuses = []string{StatusActive, StatusInactive}

type Student struct {
	ID             int         `json:"Id"`
	FirstName      string      `json:"firstName"`
	LastName       string      `json:"lastName"`
	Grade          int         `json:"grade"`
	DateOfBirth    string      `json:"dateOfBirth"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone"`
	Address        string      `json:"address"`
	EnrollmentDate string      `json:"enrollmentDate"`
	Status         string      `json:"status"`
	Name           string      `json:"name"`
	Tags           string      `json:"tags,omitempty"`
	Owner          interface{} `json:"owner,omitempty"`
}

func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

func (s Student) IsActive() bool {
	return s.Status == StatusActive
}

// NewStudent contains information needed to create a new Student.
// EnrollmentDate defaults to today and Status to active.
type NewStudent struct {
	FirstName      string `json:"firstName" validate:"notblank"`
	LastName       string `json:"lastName" validate:"notblank"`
	Grade          int    `json:"grade" validate:"min=9,max=12"`
	DateOfBirth    string `json:"dateOfBirth" validate:"omitempty,isodate"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	EnrollmentDate string `json:"enrollmentDate" validate:"omitempty,isodate"`
	Status         string `json:"status" validate:"omitempty,oneof=active inactive"`
	Tags           string `json:"tags"`
}

func (ns *NewStudent) Validate(validate *validator.Validate, translator ut.Translator) error {
	ns.FirstName = core.CleanString(ns.FirstName)
	ns.LastName = core.CleanString(ns.LastName)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	ns.Phone = core.CleanString(ns.Phone)
	ns.Address = core.CleanString(ns.Address)
	return core.TranslateValidationErrors(validate.Struct(ns), translator)
}

// UpdateStudent defines what information may be provided to modify an existing Student.
// Only valid fields are sent to the backend.
type UpdateStudent struct {
	FirstName      null.String `json:"firstName" validate:"omitempty,notblank"`
	LastName       null.String `json:"lastName" validate:"omitempty,notblank"`
	Grade          null.Int    `json:"grade" validate:"omitempty,min=9,max=12"`
	DateOfBirth    null.String `json:"dateOfBirth" validate:"omitempty,isodate"`
	Email          null.String `json:"email" validate:"omitempty,email"`
	Phone          null.String `json:"phone"`
	Address        null.String `json:"address"`
	EnrollmentDate null.String `json:"enrollmentDate" validate:"omitempty,isodate"`
	Status         null.String `json:"status" validate:"omitempty,oneof=active inactive"`
	Tags           null.String `json:"tags"`
}

func (us *UpdateStudent) Validate(validate *validator.Validate, translator ut.Translator) error {
	if us.Email.Valid {
		us.Email.String = core.CleanString(us.Email.String, true /* lower */)
	}
	return core.TranslateValidationErrors(validate.Struct(us), translator)
}
