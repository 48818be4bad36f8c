package class

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/shule/core"
)

// Semesters
const (
	SemesterFall   = "Fall"
	SemesterSpring = "Spring"
	SemesterSummer = "Summer"
)

var (
	Semesters = []string{SemesterFall, SemesterSpring, SemesterSummer}
	Subjects  = []string{
		"Mathematics",
		"English",
		"Science",
		"History",
		"Foreign Language",
		"Physical Education",
		"Arts",
	}
)

type Class struct {
	ID        int         `json:"Id"`
	Name      string      `json:"name"`
	Subject   string      `json:"subject"`
	Period    int         `json:"period"`
	Room      string      `json:"room"`
	Semester  string      `json:"semester"`
	Year      int         `json:"year"`
	TeacherID int         `json:"teacherId"`
	Tags      string      `json:"tags,omitempty"`
	Owner     interface{} `json:"owner,omitempty"`
}

// NewClass contains information needed to create a new Class.
// Semester defaults to Fall and Year to the current year.
type NewClass struct {
	Name      string `json:"name" validate:"notblank"`
	Subject   string `json:"subject" validate:"required,subject"`
	Period    int    `json:"period" validate:"min=1,max=8"`
	Room      string `json:"room" validate:"notblank"`
	Semester  string `json:"semester" validate:"omitempty,semester"`
	Year      int    `json:"year" validate:"omitempty,min=1900"`
	TeacherID int    `json:"teacherId"`
	Tags      string `json:"tags"`
}

func (nc *NewClass) Validate(validate *validator.Validate, translator ut.Translator) error {
	nc.Name = core.CleanString(nc.Name)
	nc.Room = core.CleanString(nc.Room)
	return core.TranslateValidationErrors(validate.Struct(nc), translator)
}

// UpdateClass defines what information may be provided to modify an existing Class.
type UpdateClass struct {
	Name      null.String `json:"name" validate:"omitempty,notblank"`
	Subject   null.String `json:"subject" validate:"omitempty,subject"`
	Period    null.Int    `json:"period" validate:"omitempty,min=1,max=8"`
	Room      null.String `json:"room" validate:"omitempty,notblank"`
	Semester  null.String `json:"semester" validate:"omitempty,semester"`
	Year      null.Int    `json:"year" validate:"omitempty,min=1900"`
	TeacherID null.Int    `json:"teacherId"`
	Tags      null.String `json:"tags"`
}

func (uc *UpdateClass) Validate(validate *validator.Validate, translator ut.Translator) error {
	return core.TranslateValidationErrors(validate.Struct(uc), translator)
}
