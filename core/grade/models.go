package grade

import (
	"fmt"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/shule/core"
)

type Grade struct {
	ID            int         `json:"Id"`
	StudentID     int         `json:"studentId"`
	AssignmentID  int         `json:"assignmentId"`
	Score         float64     `json:"score"`
	SubmittedDate string      `json:"submittedDate"`
	Comments      string      `json:"comments"`
	Name          string      `json:"name"`
	Tags          string      `json:"tags,omitempty"`
	Owner         interface{} `json:"owner,omitempty"`
}

// NewGrade contains information needed to create a new Grade.
// SubmittedDate defaults to today.
type NewGrade struct {
	StudentID     int     `json:"studentId" validate:"required"`
	AssignmentID  int     `json:"assignmentId" validate:"required"`
	Score         float64 `json:"score" validate:"min=0"`
	SubmittedDate string  `json:"submittedDate" validate:"omitempty,isodate"`
	Comments      string  `json:"comments"`
	Tags          string  `json:"tags"`
}

func (ng *NewGrade) Validate(validate *validator.Validate, translator ut.Translator) error {
	ng.Comments = core.CleanString(ng.Comments)
	return core.TranslateValidationErrors(validate.Struct(ng), translator)
}

// UpdateGrade defines what information may be provided to modify an existing Grade.
type UpdateGrade struct {
	StudentID     null.Int     `json:"studentId" validate:"omitempty,min=1"`
	AssignmentID  null.Int     `json:"assignmentId" validate:"omitempty,min=1"`
	Score         null.Float64 `json:"score" validate:"omitempty,min=0"`
	SubmittedDate null.String  `json:"submittedDate" validate:"omitempty,isodate"`
	Comments      null.String  `json:"comments"`
	Tags          null.String  `json:"tags"`
}

func (ug *UpdateGrade) Validate(validate *validator.Validate, translator ut.Translator) error {
	return core.TranslateValidationErrors(validate.Struct(ug), translator)
}

func displayName(studentID int) string {
	return fmt.Sprintf("Grade for %d", studentID)
}
