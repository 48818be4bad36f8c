package attendance

import (
	"github.com/trezcool/shule/core/record"
)

// Backend fields
const (
	fieldStudentID = "student_id"
	fieldClassID   = "class_id"
	fieldDate      = "date"
	fieldStatus    = "status"
	fieldReason    = "reason"
)

var fields = []record.Field{
	{Name: record.NameField},
	{Name: record.TagsField},
	{Name: record.OwnerField},
	record.RefField(fieldStudentID),
	record.RefField(fieldClassID),
	{Name: fieldDate},
	{Name: fieldStatus},
	{Name: fieldReason},
}

// FromRecord maps a backend attendance record to an Attendance.
func FromRecord(r record.Record) Attendance {
	return Attendance{
		ID:        r.ID(),
		StudentID: r.Ref(fieldStudentID).RefID(),
		ClassID:   r.Ref(fieldClassID).RefID(),
		Date:      r.String(fieldDate),
		Status:    r.String(fieldStatus),
		Reason:    r.String(fieldReason),
		Name:      r.String(record.NameField),
		Tags:      r.String(record.TagsField),
		Owner:     r[record.OwnerField],
	}
}

// ToRecord maps an Attendance to its backend record. Id, Tags and Owner are only set when present.
func ToRecord(a Attendance) record.Record {
	r := record.Record{
		record.NameField: a.Name,
		fieldStudentID:   a.StudentID,
		fieldClassID:     a.ClassID,
		fieldDate:        a.Date,
		fieldStatus:      a.Status,
		fieldReason:      a.Reason,
	}
	if a.ID != 0 {
		r[record.IDField] = a.ID
	}
	if a.Tags != "" {
		r[record.TagsField] = a.Tags
	}
	if a.Owner != nil {
		r[record.OwnerField] = a.Owner
	}
	return r
}

func newRecord(na NewAttendance) record.Record {
	a := Attendance{
		StudentID: na.StudentID,
		ClassID:   na.ClassID,
		Date:      na.Date,
		Status:    na.Status,
		Reason:    na.Reason,
		Name:      displayName(na.StudentID),
		Tags:      na.Tags,
	}
	if a.Status == "" {
		a.Status = StatusPresent
	}
	return ToRecord(a)
}

func updateRecord(ua UpdateAttendance) record.Record {
	r := make(record.Record)
	if ua.StudentID.Valid {
		r[fieldStudentID] = ua.StudentID.Int
		r[record.NameField] = displayName(ua.StudentID.Int)
	}
	if ua.ClassID.Valid {
		r[fieldClassID] = ua.ClassID.Int
	}
	if ua.Date.Valid {
		r[fieldDate] = ua.Date.String
	}
	if ua.Status.Valid {
		r[fieldStatus] = ua.Status.String
	}
	if ua.Reason.Valid {
		r[fieldReason] = ua.Reason.String
	}
	if ua.Tags.Valid {
		r[record.TagsField] = ua.Tags.String
	}
	return r
}
