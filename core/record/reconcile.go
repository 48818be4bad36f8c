package record

import "fmt"

// Operations
const (
	OpFetch  = "fetch"
	OpGet    = "get"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Outcome is the reconciled reading of a BatchResponse: one of Ok, PartialFailure or TotalFailure.
type Outcome interface {
	isOutcome()
}

// Ok means every record of the batch succeeded.
type Ok struct {
	Results []Result
}

// PartialFailure means at least one record failed. Successes were persisted by the
// backend but are never handed back to the caller.
type PartialFailure struct {
	Successes []Result
	Failures  []Result
}

// TotalFailure means the backend rejected the whole batch.
type TotalFailure struct {
	Message string
}

func (Ok) isOutcome()             {}
func (PartialFailure) isOutcome() {}
func (TotalFailure) isOutcome()   {}

// Records returns the data of every successful result that carries one.
func (o Ok) Records() []Record {
	recs := make([]Record, 0, len(o.Results))
	for _, res := range o.Results {
		if res.Data != nil {
			recs = append(recs, res.Data)
		}
	}
	return recs
}

// Reconcile interprets a batch response of any size.
func Reconcile(resp BatchResponse) Outcome {
	if !resp.Success {
		return TotalFailure{Message: resp.Message}
	}
	var successes, failures []Result
	for _, res := range resp.Results {
		if res.Success {
			successes = append(successes, res)
		} else {
			failures = append(failures, res)
		}
	}
	if len(failures) > 0 {
		return PartialFailure{Successes: successes, Failures: failures}
	}
	return Ok{Results: successes}
}

// BatchError carries the message reported by the backend for a failed request:
// the batch-level message, or the message of the first failed record.
type BatchError struct {
	Op        string
	Table     string
	Message   string
	Failed    int
	Succeeded int
}

func (err *BatchError) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("failed to %s %s records", err.Op, err.Table)
	}
	return err.Message
}

// OutcomeError returns the error matching a non-Ok outcome, nil for Ok.
func OutcomeError(op, table string, out Outcome) error {
	switch o := out.(type) {
	case Ok:
		return nil
	case PartialFailure:
		return &BatchError{
			Op:        op,
			Table:     table,
			Message:   o.Failures[0].Message,
			Failed:    len(o.Failures),
			Succeeded: len(o.Successes),
		}
	case TotalFailure:
		return &BatchError{Op: op, Table: table, Message: o.Message}
	default:
		return fmt.Errorf("unexpected outcome %T", out)
	}
}
