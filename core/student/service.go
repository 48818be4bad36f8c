package student

import (
	"context"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/record"
)

type Service struct {
	table *record.Table
}

func NewService(client record.Client, logger core.Logger, policies ...record.Policies) *Service {
	return &Service{table: record.NewTable(record.TableStudent, fields, client, logger, policies...)}
}

// GetAll returns every student in backend order.
func (svc *Service) GetAll(ctx context.Context) ([]Student, error) {
	recs, err := svc.table.All(ctx)
	if err != nil {
		return nil, err
	}
	students := make([]Student, 0, len(recs))
	for _, r := range recs {
		students = append(students, FromRecord(r))
	}
	return students, nil
}

// GetByID returns nil when the student does not exist.
func (svc *Service) GetByID(ctx context.Context, id int) (*Student, error) {
	r, err := svc.table.Get(ctx, id)
	if err != nil || r == nil {
		return nil, err
	}
	s := FromRecord(r)
	return &s, nil
}

func (svc *Service) Create(ctx context.Context, ns NewStudent) (Student, error) {
	r, err := svc.table.Create(ctx, newRecord(ns))
	if err != nil || r == nil {
		return Student{}, err
	}
	return FromRecord(r), nil
}

func (svc *Service) Update(ctx context.Context, id int, us UpdateStudent) (Student, error) {
	r, err := svc.table.Update(ctx, id, updateRecord(us))
	if err != nil || r == nil {
		return Student{}, err
	}
	return FromRecord(r), nil
}

func (svc *Service) Delete(ctx context.Context, id int) (bool, error) {
	return svc.table.Delete(ctx, id)
}
