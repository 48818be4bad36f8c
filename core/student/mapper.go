package student

import (
	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/record"
)

// Backend fields
const (
	fieldFirstName      = "first_name"
	fieldLastName       = "last_name"
	fieldGrade          = "grade"
	fieldDateOfBirth    = "date_of_birth"
	fieldEmail          = "email"
	fieldPhone          = "phone"
	fieldAddress        = "address"
	fieldEnrollmentDate = "enrollment_date"
	fieldStatus         = "status"
)

var fields = record.Fields(
	record.NameField, record.TagsField, record.OwnerField,
	fieldFirstName, fieldLastName, fieldGrade, fieldDateOfBirth, fieldEmail,
	fieldPhone, fieldAddress, fieldEnrollmentDate, fieldStatus,
)

// FromRecord maps a backend student record to a Student.
func FromRecord(r record.Record) Student {
	return Student{
		ID:             r.ID(),
		FirstName:      r.String(fieldFirstName),
		LastName:       r.String(fieldLastName),
		Grade:          r.Int(fieldGrade),
		DateOfBirth:    r.String(fieldDateOfBirth),
		Email:          r.String(fieldEmail),
		Phone:          r.String(fieldPhone),
		Address:        r.String(fieldAddress),
		EnrollmentDate: r.String(fieldEnrollmentDate),
		Status:         r.String(fieldStatus),
		Name:           r.String(record.NameField),
		Tags:           r.String(record.TagsField),
		Owner:          r[record.OwnerField],
	}
}

// ToRecord maps a Student to its backend record. Id, Tags and Owner are only set when present.
func ToRecord(s Student) record.Record {
	r := record.Record{
		record.NameField:    s.Name,
		fieldFirstName:      s.FirstName,
		fieldLastName:       s.LastName,
		fieldGrade:          s.Grade,
		fieldDateOfBirth:    s.DateOfBirth,
		fieldEmail:          s.Email,
		fieldPhone:          s.Phone,
		fieldAddress:        s.Address,
		fieldEnrollmentDate: s.EnrollmentDate,
		fieldStatus:         s.Status,
	}
	if s.ID != 0 {
		r[record.IDField] = s.ID
	}
	if s.Tags != "" {
		r[record.TagsField] = s.Tags
	}
	if s.Owner != nil {
		r[record.OwnerField] = s.Owner
	}
	return r
}

func newRecord(ns NewStudent) record.Record {
	s := Student{
		FirstName:      ns.FirstName,
		LastName:       ns.LastName,
		Grade:          ns.Grade,
		DateOfBirth:    ns.DateOfBirth,
		Email:          ns.Email,
		Phone:          ns.Phone,
		Address:        ns.Address,
		EnrollmentDate: ns.EnrollmentDate,
		Status:         ns.Status,
		Tags:           ns.Tags,
	}
	s.Name = s.FullName()
	if s.EnrollmentDate == "" {
		s.EnrollmentDate = core.Today()
	}
	if s.Status == "" {
		s.Status = StatusActive
	}
	return ToRecord(s)
}

func updateRecord(us UpdateStudent) record.Record {
	r := make(record.Record)
	if us.FirstName.Valid {
		r[fieldFirstName] = us.FirstName.String
	}
	if us.LastName.Valid {
		r[fieldLastName] = us.LastName.String
	}
	// the display name can only be rebuilt from both names
	if us.FirstName.Valid && us.LastName.Valid {
		r[record.NameField] = us.FirstName.String + " " + us.LastName.String
	}
	if us.Grade.Valid {
		r[fieldGrade] = us.Grade.Int
	}
	if us.DateOfBirth.Valid {
		r[fieldDateOfBirth] = us.DateOfBirth.String
	}
	if us.Email.Valid {
		r[fieldEmail] = us.Email.String
	}
	if us.Phone.Valid {
		r[fieldPhone] = us.Phone.String
	}
	if us.Address.Valid {
		r[fieldAddress] = us.Address.String
	}
	if us.EnrollmentDate.Valid {
		r[fieldEnrollmentDate] = us.EnrollmentDate.String
	}
	if us.Status.Valid {
		r[fieldStatus] = us.Status.String
	}
	if us.Tags.Valid {
		r[record.TagsField] = us.Tags.String
	}
	return r
}
