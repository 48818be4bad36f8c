// Package record holds the backend side of every entity service: the snake_case
// record shape, the reference normalisation, the request/response envelopes of the
// record protocol and the batch reconciliation applied to every mutation.
package record

import (
	"encoding/json"

	"github.com/spf13/cast"
)

// Backend fields present on every table.
const (
	IDField    = "Id"
	NameField  = "Name"
	TagsField  = "Tags"
	OwnerField = "Owner"
)

// Record is a backend-shaped record keyed by backend field names.
type Record map[string]interface{}

func (r Record) ID() int {
	return cast.ToInt(r[IDField])
}

func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

func (r Record) String(field string) string {
	return cast.ToString(r[field])
}

func (r Record) Int(field string) int {
	return cast.ToInt(r[field])
}

func (r Record) Float(field string) float64 {
	return cast.ToFloat64(r[field])
}

// Ref normalises a reference field.
func (r Record) Ref(field string) Ref {
	return ParseRef(r[field])
}

// Clone returns a shallow copy of r.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

// Ref is a reference field value as the backend returns it: a bare identifier (Scalar),
// or an object carrying the identifier plus fields of the referenced record (Expanded).
type Ref interface {
	RefID() int
	isRef()
}

type Scalar int

func (s Scalar) RefID() int { return int(s) }
func (Scalar) isRef()       {}

type Expanded struct {
	ID     int
	Fields Record
}

func (e Expanded) RefID() int { return e.ID }
func (Expanded) isRef()       {}

// Name returns the display name of the referenced record, if it was expanded with one.
func (e Expanded) Name() string {
	return e.Fields.String(NameField)
}

// ParseRef turns a raw reference value into a Ref.
// Objects are read as Expanded (their Id extracted); anything else is a Scalar id.
func ParseRef(v interface{}) Ref {
	switch val := v.(type) {
	case Record:
		return Expanded{ID: val.ID(), Fields: val}
	case map[string]interface{}:
		return Expanded{ID: Record(val).ID(), Fields: val}
	case nil:
		return Scalar(0)
	default:
		return Scalar(cast.ToInt(val))
	}
}

// Field is one entry of a field projection. Reference, when set, asks the backend to
// expand the reference field with the named field of the referenced record.
type Field struct {
	Name      string
	Reference string
}

type fieldName struct {
	Name string `json:"Name"`
}

type fieldJSON struct {
	Field          fieldName `json:"field"`
	ReferenceField *struct {
		Field fieldName `json:"field"`
	} `json:"referenceField,omitempty"`
}

func (f Field) MarshalJSON() ([]byte, error) {
	fj := fieldJSON{Field: fieldName{Name: f.Name}}
	if f.Reference != "" {
		fj.ReferenceField = &struct {
			Field fieldName `json:"field"`
		}{Field: fieldName{Name: f.Reference}}
	}
	return json.Marshal(fj)
}

func (f *Field) UnmarshalJSON(data []byte) error {
	var fj fieldJSON
	if err := json.Unmarshal(data, &fj); err != nil {
		return err
	}
	f.Name = fj.Field.Name
	f.Reference = ""
	if fj.ReferenceField != nil {
		f.Reference = fj.ReferenceField.Field.Name
	}
	return nil
}

// Fields returns a plain projection of the given field names.
func Fields(names ...string) []Field {
	flds := make([]Field, 0, len(names))
	for _, n := range names {
		flds = append(flds, Field{Name: n})
	}
	return flds
}

// RefField projects a reference field expanded with the referenced record's Name.
func RefField(name string) Field {
	return Field{Name: name, Reference: NameField}
}
