package assignment

import (
	"github.com/trezcool/shule/core/record"
)

// Backend fields
const (
	fieldClassID     = "class_id"
	fieldType        = "type"
	fieldTotalPoints = "total_points"
	fieldDueDate     = "due_date"
	fieldCategory    = "category"
	fieldWeight      = "weight"
)

var fields = append(
	record.Fields(record.NameField, record.TagsField, record.OwnerField),
	record.RefField(fieldClassID),
	record.Field{Name: fieldType},
	record.Field{Name: fieldTotalPoints},
	record.Field{Name: fieldDueDate},
	record.Field{Name: fieldCategory},
	record.Field{Name: fieldWeight},
)

// FromRecord maps a backend assignment record to an Assignment.
func FromRecord(r record.Record) Assignment {
	return Assignment{
		ID:          r.ID(),
		Name:        r.String(record.NameField),
		ClassID:     r.Ref(fieldClassID).RefID(),
		Type:        r.String(fieldType),
		TotalPoints: r.Int(fieldTotalPoints),
		DueDate:     r.String(fieldDueDate),
		Category:    r.String(fieldCategory),
		Weight:      r.Float(fieldWeight),
		Tags:        r.String(record.TagsField),
		Owner:       r[record.OwnerField],
	}
}

// ToRecord maps an Assignment to its backend record. Id, Tags and Owner are only set when present.
func ToRecord(a Assignment) record.Record {
	r := record.Record{
		record.NameField: a.Name,
		fieldClassID:     a.ClassID,
		fieldType:        a.Type,
		fieldTotalPoints: a.TotalPoints,
		fieldDueDate:     a.DueDate,
		fieldCategory:    a.Category,
		fieldWeight:      a.Weight,
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

func newRecord(na NewAssignment) record.Record {
	return ToRecord(Assignment{
		Name:        na.Name,
		ClassID:     na.ClassID,
		Type:        na.Type,
		TotalPoints: na.TotalPoints,
		DueDate:     na.DueDate,
		Category:    na.Category,
		Weight:      na.Weight,
		Tags:        na.Tags,
	})
}

func updateRecord(ua UpdateAssignment) record.Record {
	r := make(record.Record)
	if ua.Name.Valid {
		r[record.NameField] = ua.Name.String
	}
	if ua.ClassID.Valid {
		r[fieldClassID] = ua.ClassID.Int
	}
	if ua.Type.Valid {
		r[fieldType] = ua.Type.String
	}
	if ua.TotalPoints.Valid {
		r[fieldTotalPoints] = ua.TotalPoints.Int
	}
	if ua.DueDate.Valid {
		r[fieldDueDate] = ua.DueDate.String
	}
	if ua.Category.Valid {
		r[fieldCategory] = ua.Category.String
	}
	if ua.Weight.Valid {
		r[fieldWeight] = ua.Weight.Float64
	}
	if ua.Tags.Valid {
		r[record.TagsField] = ua.Tags.String
	}
	return r
}
