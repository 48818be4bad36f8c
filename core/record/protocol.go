package record

import (
	"context"

	"github.com/pkg/errors"
)

// ErrUnknownTable is returned for a table name the record protocol does not serve.
var ErrUnknownTable = errors.New("unknown table")

// Table names
const (
	TableStudent    = "student"
	TableClass      = "class"
	TableAssignment = "assignment"
	TableGrade      = "grade"
	TableAttendance = "attendance"
)

// Tables lists every table served by the record protocol.
var Tables = []string{TableStudent, TableClass, TableAssignment, TableGrade, TableAttendance}

// CheckTable returns ErrUnknownTable when table is not one of Tables.
func CheckTable(table string) error {
	for _, t := range Tables {
		if t == table {
			return nil
		}
	}
	return errors.Wrap(ErrUnknownTable, table)
}

type FetchParams struct {
	Fields []Field `json:"fields"`
}

type BatchParams struct {
	Records []Record `json:"records"`
}

type DeleteParams struct {
	RecordIds []int `json:"RecordIds"`
}

// FetchResponse answers a fetch-all request.
type FetchResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    []Record `json:"data"`
}

// GetResponse answers a fetch-by-id request. Data is nil when no record matched.
type GetResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    Record `json:"data"`
}

// Result is the outcome of one record of a batch.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    Record `json:"data,omitempty"`
}

// BatchResponse answers create, update and delete requests.
type BatchResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Results []Result `json:"results,omitempty"`
}

// Client speaks the record protocol. Returned errors are transport errors only;
// failures reported by the backend travel inside the responses.
type Client interface {
	FetchRecords(ctx context.Context, table string, params FetchParams) (FetchResponse, error)
	GetRecordByID(ctx context.Context, table string, id int, params FetchParams) (GetResponse, error)
	CreateRecords(ctx context.Context, table string, params BatchParams) (BatchResponse, error)
	UpdateRecords(ctx context.Context, table string, params BatchParams) (BatchResponse, error)
	DeleteRecords(ctx context.Context, table string, params DeleteParams) (BatchResponse, error)
}
