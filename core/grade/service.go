package grade

import (
	"context"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/record"
)

type Service struct {
	table *record.Table
}

func NewService(client record.Client, logger core.Logger, policies ...record.Policies) *Service {
	return &Service{table: record.NewTable(record.TableGrade, fields, client, logger, policies...)}
}

// GetAll returns every grade in backend order.
func (svc *Service) GetAll(ctx context.Context) ([]Grade, error) {
	recs, err := svc.table.All(ctx)
	if err != nil {
		return nil, err
	}
	grades := make([]Grade, 0, len(recs))
	for _, r := range recs {
		grades = append(grades, FromRecord(r))
	}
	return grades, nil
}

// GetByID returns nil when the grade does not exist.
func (svc *Service) GetByID(ctx context.Context, id int) (*Grade, error) {
	r, err := svc.table.Get(ctx, id)
	if err != nil || r == nil {
		return nil, err
	}
	g := FromRecord(r)
	return &g, nil
}

func (svc *Service) Create(ctx context.Context, ng NewGrade) (Grade, error) {
	r, err := svc.table.Create(ctx, newRecord(ng))
	if err != nil || r == nil {
		return Grade{}, err
	}
	return FromRecord(r), nil
}

func (svc *Service) Update(ctx context.Context, id int, ug UpdateGrade) (Grade, error) {
	r, err := svc.table.Update(ctx, id, updateRecord(ug))
	if err != nil || r == nil {
		return Grade{}, err
	}
	return FromRecord(r), nil
}

func (svc *Service) Delete(ctx context.Context, id int) (bool, error) {
	return svc.table.Delete(ctx, id)
}
