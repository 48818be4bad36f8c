package mockstore

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/shule/core/record"
)

func setup(t *testing.T, opts ...Option) *Store {
	s, err := Open(append([]Option{WithLatency(0, 0)}, opts...)...)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	return s
}

func TestOpen_Seeds(t *testing.T) {
	s := setup(t)
	for _, table := range record.Tables {
		assert.NotEmpty(t, s.Snapshot(table), table)
	}

	// integral JSON numbers are ints
	stud := s.Snapshot(record.TableStudent)[0]
	assert.IsType(t, 0, stud[record.IDField])
	assert.IsType(t, 0, stud["grade"])

	empty := setup(t, WithoutSeed())
	for _, table := range record.Tables {
		assert.Empty(t, empty.Snapshot(table), table)
	}
}

func TestStore_CreateRecords(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		opts    []Option
		recs    []record.Record
		wantIDs []int
		wantMsg []string
	}{
		{name: "empty collection starts at 1", opts: []Option{WithoutSeed()}, recs: []record.Record{{"Name": "a"}}, wantIDs: []int{1}},
		{name: "max plus one", recs: []record.Record{{"Name": "a"}, {"Name": "b"}}, wantIDs: []int{6, 7}},
		{name: "client Id ignored", recs: []record.Record{{"Id": 1, "Name": "a"}}, wantIDs: []int{6}},
		{name: "empty record", recs: []record.Record{{"Name": "a"}, {}}, wantIDs: []int{6, 0}, wantMsg: []string{"", msgNoFields}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setup(t, tt.opts...)
			resp, err := s.CreateRecords(ctx, record.TableStudent, record.BatchParams{Records: tt.recs})
			require.NoError(t, err)
			require.True(t, resp.Success)
			require.Len(t, resp.Results, len(tt.wantIDs))
			for i, res := range resp.Results {
				if tt.wantIDs[i] == 0 {
					assert.False(t, res.Success)
					assert.Equal(t, tt.wantMsg[i], res.Message)
					continue
				}
				assert.True(t, res.Success)
				assert.Equal(t, tt.wantIDs[i], res.Data.ID())
			}
		})
	}

	s := setup(t)
	resp, err := s.CreateRecords(ctx, record.TableStudent, record.BatchParams{})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, msgNoRecords, resp.Message)
}

func TestStore_UpdateRecords_Merges(t *testing.T) {
	ctx := context.Background()
	s := setup(t)
	before := s.Snapshot(record.TableStudent)[0]

	resp, err := s.UpdateRecords(ctx, record.TableStudent, record.BatchParams{Records: []record.Record{
		{"Id": 1, "grade": float64(11)},
		{"Id": 404, "grade": 9},
	}})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Len(t, resp.Results, 2)

	assert.True(t, resp.Results[0].Success)
	after := resp.Results[0].Data
	assert.Equal(t, 11, after["grade"])
	for k, v := range before {
		if k != "grade" {
			assert.Equal(t, v, after[k], k)
		}
	}

	assert.False(t, resp.Results[1].Success)
	assert.Equal(t, msgNotFound, resp.Results[1].Message)
}

func TestStore_DeleteRecords(t *testing.T) {
	ctx := context.Background()
	s := setup(t)
	n := len(s.Snapshot(record.TableClass))

	resp, err := s.DeleteRecords(ctx, record.TableClass, record.DeleteParams{RecordIds: []int{2}})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.True(t, resp.Results[0].Success)

	recs := s.Snapshot(record.TableClass)
	assert.Len(t, recs, n-1)
	for i, id := range []int{1, 3, 4} {
		assert.Equal(t, id, recs[i].ID(), "order preserved")
	}

	resp, err = s.DeleteRecords(ctx, record.TableClass, record.DeleteParams{RecordIds: []int{2}})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.False(t, resp.Results[0].Success)
	assert.Equal(t, msgNotFound, resp.Results[0].Message)
}

func TestStore_FetchRecords_Projection(t *testing.T) {
	ctx := context.Background()
	s := setup(t)

	resp, err := s.FetchRecords(ctx, record.TableAssignment, record.FetchParams{Fields: []record.Field{
		{Name: "Name"},
		record.RefField("class_id"),
	}})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Data)

	first := resp.Data[0]
	assert.Len(t, first, 3)
	assert.Equal(t, "Quadratic Equations Quiz", first["Name"])
	assert.Equal(t, record.Record{"Id": 1, "Name": "Algebra II"}, first["class_id"])

	ref, ok := first.Ref("class_id").(record.Expanded)
	require.True(t, ok)
	assert.Equal(t, 1, ref.RefID())
	assert.Equal(t, "Algebra II", ref.Name())

	// plain projection keeps the scalar
	resp, err = s.FetchRecords(ctx, record.TableAssignment, record.FetchParams{Fields: record.Fields("class_id")})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Data[0]["class_id"])
}

func TestStore_GetRecordByID(t *testing.T) {
	ctx := context.Background()
	s := setup(t)

	resp, err := s.GetRecordByID(ctx, record.TableGrade, 3, record.FetchParams{})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 88.5, resp.Data["score"])

	resp, err = s.GetRecordByID(ctx, record.TableGrade, 99, record.FetchParams{})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Data)
}

func TestStore_UnknownTable(t *testing.T) {
	s := setup(t)
	_, err := s.FetchRecords(context.Background(), "teacher", record.FetchParams{})
	assert.Equal(t, record.ErrUnknownTable, errors.Cause(err))
}

func TestStore_Reset(t *testing.T) {
	ctx := context.Background()
	s := setup(t)
	want := s.Snapshot(record.TableAttendance)

	_, err := s.DeleteRecords(ctx, record.TableAttendance, record.DeleteParams{RecordIds: []int{1, 2}})
	require.NoError(t, err)
	_, err = s.UpdateRecords(ctx, record.TableAttendance, record.BatchParams{Records: []record.Record{{"Id": 3, "status": "absent"}}})
	require.NoError(t, err)

	s.Reset()
	assert.Equal(t, want, s.Snapshot(record.TableAttendance))

	// stores never share state
	other := setup(t)
	_, err = other.DeleteRecords(ctx, record.TableAttendance, record.DeleteParams{RecordIds: []int{1}})
	require.NoError(t, err)
	assert.Equal(t, want, s.Snapshot(record.TableAttendance))
}

func TestStore_Latency(t *testing.T) {
	s, err := Open(WithLatency(20*time.Millisecond, 30*time.Millisecond))
	require.NoError(t, err)

	start := time.Now()
	_, err = s.FetchRecords(context.Background(), record.TableClass, record.FetchParams{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.FetchRecords(ctx, record.TableClass, record.FetchParams{})
	assert.Equal(t, context.Canceled, err)
}
