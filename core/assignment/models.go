package assignment

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/shule/core"
)

type Assignment struct {
	ID          int         `json:"Id"`
	Name        string      `json:"name"`
	ClassID     int         `json:"classId"`
	Type        string      `json:"type"`
	TotalPoints int         `json:"totalPoints"`
	DueDate     string      `json:"dueDate"`
	Category    string      `json:"category"`
	Weight      float64     `json:"weight"`
	Tags        string      `json:"tags,omitempty"`
	Owner       interface{} `json:"owner,omitempty"`
}

// NewAssignment contains information needed to create a new Assignment.
type NewAssignment struct {
	Name        string  `json:"name" validate:"notblank"`
	ClassID     int     `json:"classId" validate:"required"`
	Type        string  `json:"type"`
	TotalPoints int     `json:"totalPoints" validate:"min=1"`
	DueDate     string  `json:"dueDate" validate:"omitempty,isodate"`
	Category    string  `json:"category"`
	Weight      float64 `json:"weight" validate:"min=0"`
	Tags        string  `json:"tags"`
}

func (na *NewAssignment) Validate(validate *validator.Validate, translator ut.Translator) error {
	na.Name = core.CleanString(na.Name)
	na.Type = core.CleanString(na.Type)
	na.Category = core.CleanString(na.Category)
	return core.TranslateValidationErrors(validate.Struct(na), translator)
}

// UpdateAssignment defines what information may be provided to modify an existing Assignment.
type UpdateAssignment struct {
	Name        null.String  `json:"name" validate:"omitempty,notblank"`
	ClassID     null.Int     `json:"classId" validate:"omitempty,min=1"`
	Type        null.String  `json:"type"`
	TotalPoints null.Int     `json:"totalPoints" validate:"omitempty,min=1"`
	DueDate     null.String  `json:"dueDate" validate:"omitempty,isodate"`
	Category    null.String  `json:"category"`
	Weight      null.Float64 `json:"weight" validate:"omitempty,min=0"`
	Tags        null.String  `json:"tags"`
}

func (ua *UpdateAssignment) Validate(validate *validator.Validate, translator ut.Translator) error {
	return core.TranslateValidationErrors(validate.Struct(ua), translator)
}
