package class

import (
	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/record"
)

// Backend fields
const (
	fieldSubject   = "subject"
	fieldPeriod    = "period"
	fieldRoom      = "room"
	fieldSemester  = "semester"
	fieldYear      = "year"
	fieldTeacherID = "teacher_id"
)

var fields = record.Fields(
	record.NameField, record.TagsField, record.OwnerField,
	fieldSubject, fieldPeriod, fieldRoom, fieldSemester, fieldYear, fieldTeacherID,
)

// FromRecord maps a backend class record to a Class.
func FromRecord(r record.Record) Class {
	return Class{
		ID:        r.ID(),
		Name:      r.String(record.NameField),
		Subject:   r.String(fieldSubject),
		Period:    r.Int(fieldPeriod),
		Room:      r.String(fieldRoom),
		Semester:  r.String(fieldSemester),
		Year:      r.Int(fieldYear),
		TeacherID: r.Ref(fieldTeacherID).RefID(),
		Tags:      r.String(record.TagsField),
		Owner:     r[record.OwnerField],
	}
}

// ToRecord maps a Class to its backend record. Id, Tags and Owner are only set when present.
func ToRecord(c Class) record.Record {
	r := record.Record{
		record.NameField: c.Name,
		fieldSubject:     c.Subject,
		fieldPeriod:      c.Period,
		fieldRoom:        c.Room,
		fieldSemester:    c.Semester,
		fieldYear:        c.Year,
		fieldTeacherID:   c.TeacherID,
	}
	if c.ID != 0 {
		r[record.IDField] = c.ID
	}
	if c.Tags != "" {
		r[record.TagsField] = c.Tags
	}
	if c.Owner != nil {
		r[record.OwnerField] = c.Owner
	}
	return r
}

func newRecord(nc NewClass) record.Record {
	c := Class{
		Name:      nc.Name,
		Subject:   nc.Subject,
		Period:    nc.Period,
		Room:      nc.Room,
		Semester:  nc.Semester,
		Year:      nc.Year,
		TeacherID: nc.TeacherID,
		Tags:      nc.Tags,
	}
	if c.Semester == "" {
		c.Semester = SemesterFall
	}
	if c.Year == 0 {
		c.Year = core.CurrentYear()
	}
	return ToRecord(c)
}

func updateRecord(uc UpdateClass) record.Record {
	r := make(record.Record)
	if uc.Name.Valid {
		r[record.NameField] = uc.Name.String
	}
	if uc.Subject.Valid {
		r[fieldSubject] = uc.Subject.String
	}
	if uc.Period.Valid {
		r[fieldPeriod] = uc.Period.Int
	}
	if uc.Room.Valid {
		r[fieldRoom] = uc.Room.String
	}
	if uc.Semester.Valid {
		r[fieldSemester] = uc.Semester.String
	}
	if uc.Year.Valid {
		r[fieldYear] = uc.Year.Int
	}
	if uc.TeacherID.Valid {
		r[fieldTeacherID] = uc.TeacherID.Int
	}
	if uc.Tags.Valid {
		r[record.TagsField] = uc.Tags.String
	}
	return r
}
