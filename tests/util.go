package testutil

import (
	"context"
	"testing"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/record"
	logsvc "github.com/trezcool/shule/services/logger"
	"github.com/trezcool/shule/storage/mockstore"
)

// NewStore returns a latency-free store holding the seed dataset, or nothing when empty is set.
func NewStore(t *testing.T, empty ...bool) *mockstore.Store {
	opts := []mockstore.Option{mockstore.WithLatency(0, 0)}
	if len(empty) > 0 && empty[0] {
		opts = append(opts, mockstore.WithoutSeed())
	}
	store, err := mockstore.Open(opts...)
	if err != nil {
		t.Fatalf("mockstore.Open() failed: %v", err)
	}
	return store
}

func NewLogger() core.Logger {
	return logsvc.NewNopLogger()
}

// CreateRecord inserts rec into table and returns it with its Id.
func CreateRecord(t *testing.T, client record.Client, table string, rec record.Record) record.Record {
	resp, err := client.CreateRecords(context.Background(), table, record.BatchParams{Records: []record.Record{rec}})
	if err != nil {
		t.Fatalf("createRecord() failed: %v", err)
	}
	out := record.Reconcile(resp)
	if err := record.OutcomeError(record.OpCreate, table, out); err != nil {
		t.Fatalf("createRecord() failed: %v", err)
	}
	return out.(record.Ok).Records()[0]
}
