// Package mockstore is an in-process implementation of the record protocol.
// Every table is an ordered collection seeded from a fixed dataset; every call waits a
// random latency before touching it.
package mockstore

import (
	"context"
	"embed"
	"encoding/json"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/record"
)

// Default latency bounds.
const (
	DefaultMinLatency = 200 * time.Millisecond
	DefaultMaxLatency = 400 * time.Millisecond
)

// Failure messages
const (
	msgNoFields  = "record has no fields"
	msgNoRecords = "no records provided"
)

var msgNotFound = core.ErrNotFound.Error()

//go:embed seeds/*.json
var seedFS embed.FS

// reference fields expanded on fetch, and the table they point to
var refTables = map[string]string{
	"student_id":    record.TableStudent,
	"class_id":      record.TableClass,
	"assignment_id": record.TableAssignment,
}

type (
	Store struct {
		mu     sync.Mutex
		tables map[string][]record.Record
		seed   map[string][]record.Record

		minLatency time.Duration
		maxLatency time.Duration
		noSeed     bool
	}

	Option func(*Store)
)

var _ record.Client = (*Store)(nil) // interface compliance check

// WithLatency sets the bounds of the latency simulated on every call.
func WithLatency(lo, hi time.Duration) Option {
	return func(s *Store) {
		if hi < lo {
			hi = lo
		}
		s.minLatency, s.maxLatency = lo, hi
	}
}

// WithoutSeed starts every table empty.
func WithoutSeed() Option {
	return func(s *Store) { s.noSeed = true }
}

// Open returns a Store holding a fresh copy of the seed dataset.
func Open(opts ...Option) (*Store, error) {
	s := &Store{
		minLatency: DefaultMinLatency,
		maxLatency: DefaultMaxLatency,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.seed = make(map[string][]record.Record, len(record.Tables))
	if !s.noSeed {
		seed, err := loadSeeds()
		if err != nil {
			return nil, err
		}
		s.seed = seed
	}
	s.Reset()
	return s, nil
}

func loadSeeds() (map[string][]record.Record, error) {
	seed := make(map[string][]record.Record, len(record.Tables))
	for _, table := range record.Tables {
		data, err := seedFS.ReadFile("seeds/" + table + ".json")
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s seed", table)
		}
		var recs []record.Record
		if err := json.Unmarshal(data, &recs); err != nil {
			return nil, errors.Wrapf(err, "decoding %s seed", table)
		}
		for _, r := range recs {
			normalize(r)
		}
		seed[table] = recs
	}
	return seed, nil
}

// normalize turns integral JSON numbers into ints, the way the services send them.
func normalize(r record.Record) {
	for k, v := range r {
		if f, ok := v.(float64); ok && f == math.Trunc(f) {
			r[k] = int(f)
		}
	}
}

// Reset restores every table to the seed dataset.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tables = make(map[string][]record.Record, len(record.Tables))
	for _, table := range record.Tables {
		recs := make([]record.Record, 0, len(s.seed[table]))
		for _, r := range s.seed[table] {
			recs = append(recs, r.Clone())
		}
		s.tables[table] = recs
	}
}

// Snapshot returns a copy of the records currently held by table.
func (s *Store) Snapshot(table string) []record.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs := make([]record.Record, 0, len(s.tables[table]))
	for _, r := range s.tables[table] {
		recs = append(recs, r.Clone())
	}
	return recs
}

// wait simulates the network round trip.
func (s *Store) wait(ctx context.Context) error {
	d := s.minLatency
	if span := s.maxLatency - s.minLatency; span > 0 {
		d += time.Duration(rand.Int63n(int64(span) + 1))
	}
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// begin waits the latency then locks the store. The caller must unlock it.
func (s *Store) begin(ctx context.Context, table string) error {
	if err := record.CheckTable(table); err != nil {
		return err
	}
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	return nil
}

func (s *Store) FetchRecords(ctx context.Context, table string, params record.FetchParams) (record.FetchResponse, error) {
	if err := s.begin(ctx, table); err != nil {
		return record.FetchResponse{}, err
	}
	defer s.mu.Unlock()

	data := make([]record.Record, 0, len(s.tables[table]))
	for _, r := range s.tables[table] {
		data = append(data, s.project(r, params.Fields))
	}
	return record.FetchResponse{Success: true, Data: data}, nil
}

func (s *Store) GetRecordByID(ctx context.Context, table string, id int, params record.FetchParams) (record.GetResponse, error) {
	if err := s.begin(ctx, table); err != nil {
		return record.GetResponse{}, err
	}
	defer s.mu.Unlock()

	if idx := s.indexOf(table, id); idx >= 0 {
		return record.GetResponse{Success: true, Data: s.project(s.tables[table][idx], params.Fields)}, nil
	}
	return record.GetResponse{Success: true}, nil
}

func (s *Store) CreateRecords(ctx context.Context, table string, params record.BatchParams) (record.BatchResponse, error) {
	if err := s.begin(ctx, table); err != nil {
		return record.BatchResponse{}, err
	}
	defer s.mu.Unlock()

	if len(params.Records) == 0 {
		return record.BatchResponse{Success: false, Message: msgNoRecords}, nil
	}
	results := make([]record.Result, 0, len(params.Records))
	for _, r := range params.Records {
		created := r.Clone()
		delete(created, record.IDField)
		normalize(created)
		if len(created) == 0 {
			results = append(results, record.Result{Success: false, Message: msgNoFields})
			continue
		}
		created[record.IDField] = s.nextID(table)
		s.tables[table] = append(s.tables[table], created)
		results = append(results, record.Result{Success: true, Data: created.Clone()})
	}
	return record.BatchResponse{Success: true, Results: results}, nil
}

func (s *Store) UpdateRecords(ctx context.Context, table string, params record.BatchParams) (record.BatchResponse, error) {
	if err := s.begin(ctx, table); err != nil {
		return record.BatchResponse{}, err
	}
	defer s.mu.Unlock()

	if len(params.Records) == 0 {
		return record.BatchResponse{Success: false, Message: msgNoRecords}, nil
	}
	results := make([]record.Result, 0, len(params.Records))
	for _, r := range params.Records {
		idx := s.indexOf(table, r.ID())
		if idx < 0 {
			results = append(results, record.Result{Success: false, Message: msgNotFound})
			continue
		}
		changes := r.Clone()
		normalize(changes)
		stored := s.tables[table][idx]
		for k, v := range changes {
			if k != record.IDField {
				stored[k] = v
			}
		}
		results = append(results, record.Result{Success: true, Data: stored.Clone()})
	}
	return record.BatchResponse{Success: true, Results: results}, nil
}

func (s *Store) DeleteRecords(ctx context.Context, table string, params record.DeleteParams) (record.BatchResponse, error) {
	if err := s.begin(ctx, table); err != nil {
		return record.BatchResponse{}, err
	}
	defer s.mu.Unlock()

	if len(params.RecordIds) == 0 {
		return record.BatchResponse{Success: false, Message: msgNoRecords}, nil
	}
	results := make([]record.Result, 0, len(params.RecordIds))
	for _, id := range params.RecordIds {
		idx := s.indexOf(table, id)
		if idx < 0 {
			results = append(results, record.Result{Success: false, Message: msgNotFound})
			continue
		}
		recs := s.tables[table]
		s.tables[table] = append(recs[:idx:idx], recs[idx+1:]...)
		results = append(results, record.Result{Success: true, Data: record.Record{record.IDField: id}})
	}
	return record.BatchResponse{Success: true, Results: results}, nil
}

// nextID is one more than the greatest Id of table, 1 when it is empty.
func (s *Store) nextID(table string) int {
	var maxID int
	for _, r := range s.tables[table] {
		if id := r.ID(); id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

func (s *Store) indexOf(table string, id int) int {
	for i, r := range s.tables[table] {
		if r.ID() == id {
			return i
		}
	}
	return -1
}

// project keeps the Id and the requested fields of r. Reference fields requested with a
// referenceField are expanded to {Id, <field>} objects when the referenced record exists.
func (s *Store) project(r record.Record, fields []record.Field) record.Record {
	if len(fields) == 0 {
		return r.Clone()
	}
	out := record.Record{record.IDField: r[record.IDField]}
	for _, f := range fields {
		v, ok := r[f.Name]
		if !ok {
			continue
		}
		if target, isRef := refTables[f.Name]; isRef && f.Reference != "" {
			v = s.expand(target, v, f.Reference)
		}
		out[f.Name] = v
	}
	return out
}

func (s *Store) expand(table string, v interface{}, field string) interface{} {
	id := record.ParseRef(v).RefID()
	idx := s.indexOf(table, id)
	if idx < 0 {
		return v
	}
	return record.Record{record.IDField: id, field: s.tables[table][idx][field]}
}
