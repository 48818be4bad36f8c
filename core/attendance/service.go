package attendance

import (
	"context"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/record"
)

type Service struct {
	table *record.Table
}

func NewService(client record.Client, logger core.Logger, policies ...record.Policies) *Service {
	return &Service{table: record.NewTable(record.TableAttendance, fields, client, logger, policies...)}
}

// GetAll returns every attendance record in backend order.
func (svc *Service) GetAll(ctx context.Context) ([]Attendance, error) {
	recs, err := svc.table.All(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]Attendance, 0, len(recs))
	for _, r := range recs {
		records = append(records, FromRecord(r))
	}
	return records, nil
}

// GetByID returns nil when the attendance record does not exist.
func (svc *Service) GetByID(ctx context.Context, id int) (*Attendance, error) {
	r, err := svc.table.Get(ctx, id)
	if err != nil || r == nil {
		return nil, err
	}
	a := FromRecord(r)
	return &a, nil
}

func (svc *Service) Create(ctx context.Context, na NewAttendance) (Attendance, error) {
	r, err := svc.table.Create(ctx, newRecord(na))
	if err != nil || r == nil {
		return Attendance{}, err
	}
	return FromRecord(r), nil
}

func (svc *Service) Update(ctx context.Context, id int, ua UpdateAttendance) (Attendance, error) {
	r, err := svc.table.Update(ctx, id, updateRecord(ua))
	if err != nil || r == nil {
		return Attendance{}, err
	}
	return FromRecord(r), nil
}

func (svc *Service) Delete(ctx context.Context, id int) (bool, error) {
	return svc.table.Delete(ctx, id)
}
