package grade

import (
	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/record"
)

// Backend fields
const (
	fieldScore         = "score"
	fieldSubmittedDate = "submitted_date"
	fieldComments      = "comments"
	fieldStudentID     = "student_id"
	fieldAssignmentID  = "assignment_id"
)

var fields = []record.Field{
	{Name: record.NameField},
	{Name: record.TagsField},
	{Name: record.OwnerField},
	{Name: fieldScore},
	{Name: fieldSubmittedDate},
	{Name: fieldComments},
	record.RefField(fieldStudentID),
	record.RefField(fieldAssignmentID),
}

// FromRecord maps a backend grade record to a Grade.
func FromRecord(r record.Record) Grade {
	return Grade{
		ID:            r.ID(),
		StudentID:     r.Ref(fieldStudentID).RefID(),
		AssignmentID:  r.Ref(fieldAssignmentID).RefID(),
		Score:         r.Float(fieldScore),
		SubmittedDate: r.String(fieldSubmittedDate),
		Comments:      r.String(fieldComments),
		Name:          r.String(record.NameField),
		Tags:          r.String(record.TagsField),
		Owner:         r[record.OwnerField],
	}
}

// ToRecord maps a Grade to its backend record. Id, Tags and Owner are only set when present.
func ToRecord(g Grade) record.Record {
	r := record.Record{
		record.NameField:   g.Name,
		fieldStudentID:     g.StudentID,
		fieldAssignmentID:  g.AssignmentID,
		fieldScore:         g.Score,
		fieldSubmittedDate: g.SubmittedDate,
		fieldComments:      g.Comments,
	}
	if g.ID != 0 {
		r[record.IDField] = g.ID
	}
	if g.Tags != "" {
		r[record.TagsField] = g.Tags
	}
	if g.Owner != nil {
		r[record.OwnerField] = g.Owner
	}
	return r
}

func newRecord(ng NewGrade) record.Record {
	g := Grade{
		StudentID:     ng.StudentID,
		AssignmentID:  ng.AssignmentID,
		Score:         ng.Score,
		SubmittedDate: ng.SubmittedDate,
		Comments:      ng.Comments,
		Name:          displayName(ng.StudentID),
		Tags:          ng.Tags,
	}
	if g.SubmittedDate == "" {
		g.SubmittedDate = core.Today()
	}
	return ToRecord(g)
}

func updateRecord(ug UpdateGrade) record.Record {
	r := make(record.Record)
	if ug.StudentID.Valid {
		r[fieldStudentID] = ug.StudentID.Int
		r[record.NameField] = displayName(ug.StudentID.Int)
	}
	if ug.AssignmentID.Valid {
		r[fieldAssignmentID] = ug.AssignmentID.Int
	}
	if ug.Score.Valid {
		r[fieldScore] = ug.Score.Float64
	}
	if ug.SubmittedDate.Valid {
		r[fieldSubmittedDate] = ug.SubmittedDate.String
	}
	if ug.Comments.Valid {
		r[fieldComments] = ug.Comments.String
	}
	if ug.Tags.Valid {
		r[record.TagsField] = ug.Tags.String
	}
	return r
}
