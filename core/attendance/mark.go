package attendance

import (
	"context"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
)

var ErrInvalidStatus = errors.New("invalid attendance status")

// Find returns the record of studentID in classID on date, if any.
func Find(records []Attendance, studentID, classID int, date string) (Attendance, bool) {
	for _, a := range records {
		if a.StudentID == studentID && a.ClassID == classID && a.Date == date {
			return a, true
		}
	}
	return Attendance{}, false
}

// StatusOf returns the status of studentID in classID on date, StatusNotMarked when no record matches.
func StatusOf(records []Attendance, studentID, classID int, date string) string {
	if a, ok := Find(records, studentID, classID, date); ok {
		return a.Status
	}
	return StatusNotMarked
}

// Mark sets the status of studentID in classID on date: the matching record is updated,
// or a new one is created.
// Concurrent calls for the same day can create duplicates; the backend enforces no uniqueness.
func (svc *Service) Mark(ctx context.Context, studentID, classID int, date, status string) (Attendance, error) {
	if !IsValidStatus(status) {
		return Attendance{}, errors.Wrap(ErrInvalidStatus, status)
	}
	records, err := svc.GetAll(ctx)
	if err != nil {
		return Attendance{}, err
	}
	if a, ok := Find(records, studentID, classID, date); ok {
		return svc.Update(ctx, a.ID, UpdateAttendance{Status: null.StringFrom(status)})
	}
	return svc.Create(ctx, NewAttendance{
		StudentID: studentID,
		ClassID:   classID,
		Date:      date,
		Status:    status,
	})
}
