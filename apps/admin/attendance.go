package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/attendance"
	"github.com/trezcool/shule/core/record"
)

func (cli *commandLine) markAttendance(studentID, classID int, date, status string) error {
	if err := cli.validate.Var(date, "isodate"); err != nil {
		return core.NewValidationError(nil, core.FieldError{Field: "date", Error: "date must be formatted as YYYY-MM-DD"})
	}
	ctx := context.Background()
	if err := cli.mustExist(ctx, record.TableStudent, studentID); err != nil {
		return err
	}
	if err := cli.mustExist(ctx, record.TableClass, classID); err != nil {
		return err
	}

	svc := attendance.NewService(cli.client, cli.logger, record.StrictPolicies)
	a, err := svc.Mark(ctx, studentID, classID, date, core.CleanString(status, true /* lower */))
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "student %d marked %s in class %d on %s\n", a.StudentID, a.Status, a.ClassID, a.Date)
	return nil
}

// mustExist returns core.ErrNotFound when table holds no record with id.
func (cli *commandLine) mustExist(ctx context.Context, table string, id int) error {
	resp, err := cli.client.GetRecordByID(ctx, table, id, record.FetchParams{Fields: record.Fields(record.NameField)})
	if err != nil {
		return errors.Wrapf(err, "fetching %s %d", table, id)
	}
	if !resp.Success {
		return errors.Errorf("fetching %s %d: %s", table, id, resp.Message)
	}
	if resp.Data == nil {
		return errors.Wrapf(core.ErrNotFound, "%s %d", table, id)
	}
	return nil
}
