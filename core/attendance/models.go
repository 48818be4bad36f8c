package attendance

import (
	"fmt"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/shule/core"
)

// Statuses
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusTardy   = "tardy"

	// StatusNotMarked is never stored: it reports that no record exists.
	StatusNotMarked = "not_marked"
)

// Statuses lists the statuses a record can hold.
var Statuses = []string{StatusPresent, StatusAbsent, StatusTardy}

type Attendance struct {
	ID        int         `json:"Id"`
	StudentID int         `json:"studentId"`
	ClassID   int         `json:"classId"`
	Date      string      `json:"date"`
	Status    string      `json:"status"`
	Reason    string      `json:"reason"`
	Name      string      `json:"name"`
	Tags      string      `json:"tags,omitempty"`
	Owner     interface{} `json:"owner,omitempty"`
}

// NewAttendance contains information needed to create a new Attendance record.
// Status defaults to present.
type NewAttendance struct {
	StudentID int    `json:"studentId" validate:"required"`
	ClassID   int    `json:"classId" validate:"required"`
	Date      string `json:"date" validate:"required,isodate"`
	Status    string `json:"status" validate:"omitempty,attendancestatus"`
	Reason    string `json:"reason"`
	Tags      string `json:"tags"`
}

func (na *NewAttendance) Validate(validate *validator.Validate, translator ut.Translator) error {
	na.Status = core.CleanString(na.Status, true /* lower */)
	na.Reason = core.CleanString(na.Reason)
	return core.TranslateValidationErrors(validate.Struct(na), translator)
}

// UpdateAttendance defines what information may be provided to modify an existing Attendance record.
type UpdateAttendance struct {
	StudentID null.Int    `json:"studentId" validate:"omitempty,min=1"`
	ClassID   null.Int    `json:"classId" validate:"omitempty,min=1"`
	Date      null.String `json:"date" validate:"omitempty,isodate"`
	Status    null.String `json:"status" validate:"omitempty,attendancestatus"`
	Reason    null.String `json:"reason"`
	Tags      null.String `json:"tags"`
}

func (ua *UpdateAttendance) Validate(validate *validator.Validate, translator ut.Translator) error {
	return core.TranslateValidationErrors(validate.Struct(ua), translator)
}

func displayName(studentID int) string {
	return fmt.Sprintf("Attendance for %d", studentID)
}
