package record

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/trezcool/shule/core"
)

// ErrNoRecord is returned when a successful create or update hands back no record.
var ErrNoRecord = errors.New("no record returned")

// Table performs the request/response handling shared by every entity service:
// it builds the requests for one backend table, reconciles the responses and applies
// the failure Policies. It knows nothing about the UI shape of its records.
type Table struct {
	name     string
	fields   []Field
	client   Client
	logger   core.Logger
	policies Policies
}

func NewTable(name string, fields []Field, client Client, logger core.Logger, policies ...Policies) *Table {
	p := DefaultPolicies
	if len(policies) > 0 {
		p = policies[0]
	}
	return &Table{
		name:     name,
		fields:   fields,
		client:   client,
		logger:   logger,
		policies: p,
	}
}

func (t *Table) Name() string { return t.name }

// All fetches every record of the table in backend order.
// With a soft read policy, failures return (nil, nil).
func (t *Table) All(ctx context.Context) ([]Record, error) {
	resp, err := t.client.FetchRecords(ctx, t.name, FetchParams{Fields: t.fields})
	if err != nil {
		return nil, t.policies.Read.handle(t.logger, t.msg("Error fetching %s records", t.name), errors.Wrapf(err, "fetching %s records", t.name))
	}
	if !resp.Success {
		bErr := &BatchError{Op: OpFetch, Table: t.name, Message: resp.Message}
		return nil, t.policies.Read.handle(t.logger, bErr.Error(), bErr)
	}
	return resp.Data, nil
}

// Get fetches a single record. A record that does not exist is (nil, nil),
// whatever the read policy.
func (t *Table) Get(ctx context.Context, id int) (Record, error) {
	resp, err := t.client.GetRecordByID(ctx, t.name, id, FetchParams{Fields: t.fields})
	if err != nil {
		return nil, t.policies.Read.handle(t.logger, t.msg("Error fetching %s with ID %d", t.name, id), errors.Wrapf(err, "fetching %s %d", t.name, id))
	}
	if !resp.Success {
		bErr := &BatchError{Op: OpGet, Table: t.name, Message: resp.Message}
		return nil, t.policies.Read.handle(t.logger, bErr.Error(), bErr)
	}
	if len(resp.Data) == 0 {
		return nil, nil
	}
	return resp.Data, nil
}

// Create submits rec as a single-record batch and returns the created record.
func (t *Table) Create(ctx context.Context, rec Record) (Record, error) {
	resp, err := t.client.CreateRecords(ctx, t.name, BatchParams{Records: []Record{rec}})
	if err != nil {
		return nil, t.policies.Write.handle(t.logger, t.msg("Error creating %s", t.name), errors.Wrapf(err, "creating %s", t.name))
	}
	return t.single(OpCreate, resp)
}

// Update submits rec, stamped with id, as a single-record batch and returns the updated record.
func (t *Table) Update(ctx context.Context, id int, rec Record) (Record, error) {
	rec = rec.Clone()
	if rec == nil {
		rec = make(Record, 1)
	}
	rec[IDField] = id
	resp, err := t.client.UpdateRecords(ctx, t.name, BatchParams{Records: []Record{rec}})
	if err != nil {
		return nil, t.policies.Write.handle(t.logger, t.msg("Error updating %s", t.name), errors.Wrapf(err, "updating %s %d", t.name, id))
	}
	return t.single(OpUpdate, resp)
}

// Delete submits a batch delete of id. It reports true only when the backend deleted
// at least one record and reported no failure.
func (t *Table) Delete(ctx context.Context, id int) (bool, error) {
	resp, err := t.client.DeleteRecords(ctx, t.name, DeleteParams{RecordIds: []int{id}})
	if err != nil {
		return false, t.policies.Delete.handle(t.logger, t.msg("Error deleting %s", t.name), errors.Wrapf(err, "deleting %s %d", t.name, id))
	}
	out := Reconcile(resp)
	if err := OutcomeError(OpDelete, t.name, out); err != nil {
		return false, t.policies.Delete.handle(t.logger, t.failureMsg(OpDelete, out), err)
	}
	return len(out.(Ok).Results) > 0, nil
}

func (t *Table) single(op string, resp BatchResponse) (Record, error) {
	out := Reconcile(resp)
	if err := OutcomeError(op, t.name, out); err != nil {
		return nil, t.policies.Write.handle(t.logger, t.failureMsg(op, out), err)
	}
	recs := out.(Ok).Records()
	if len(recs) == 0 {
		return nil, t.policies.Write.handle(t.logger, t.msg("Error: %s %s returned no record", op, t.name), ErrNoRecord)
	}
	return recs[0], nil
}

func (t *Table) failureMsg(op string, out Outcome) string {
	if pf, ok := out.(PartialFailure); ok {
		return t.msg("Failed to %s %d %s records", op, len(pf.Failures), t.name)
	}
	return t.msg("Failed to %s %s records", op, t.name)
}

func (t *Table) msg(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}
