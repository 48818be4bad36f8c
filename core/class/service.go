package class

import (
	"context"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/record"
)

type Service struct {
	table *record.Table
}

func NewService(client record.Client, logger core.Logger, policies ...record.Policies) *Service {
	return &Service{table: record.NewTable(record.TableClass, fields, client, logger, policies...)}
}

// GetAll returns every class in backend order.
func (svc *Service) GetAll(ctx context.Context) ([]Class, error) {
	recs, err := svc.table.All(ctx)
	if err != nil {
		return nil, err
	}
	classes := make([]Class, 0, len(recs))
	for _, r := range recs {
		classes = append(classes, FromRecord(r))
	}
	return classes, nil
}

// GetByID returns nil when the class does not exist.
func (svc *Service) GetByID(ctx context.Context, id int) (*Class, error) {
	r, err := svc.table.Get(ctx, id)
	if err != nil || r == nil {
		return nil, err
	}
	c := FromRecord(r)
	return &c, nil
}

func (svc *Service) Create(ctx context.Context, nc NewClass) (Class, error) {
	r, err := svc.table.Create(ctx, newRecord(nc))
	if err != nil || r == nil {
		return Class{}, err
	}
	return FromRecord(r), nil
}

func (svc *Service) Update(ctx context.Context, id int, uc UpdateClass) (Class, error) {
	r, err := svc.table.Update(ctx, id, updateRecord(uc))
	if err != nil || r == nil {
		return Class{}, err
	}
	return FromRecord(r), nil
}

func (svc *Service) Delete(ctx context.Context, id int) (bool, error) {
	return svc.table.Delete(ctx, id)
}
