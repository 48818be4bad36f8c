package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/shule/core/record"
	"github.com/trezcool/shule/core/student"
)

// roster columns
const (
	colFirstName = iota
	colLastName
	colGrade
	colDateOfBirth
	colEmail
	colPhone
	colAddress
	rosterColumns
)

func (cli *commandLine) students() *student.Service {
	return student.NewService(cli.client, cli.logger, record.StrictPolicies)
}

func (cli *commandLine) listStudents() error {
	students, err := cli.students().GetAll(context.Background())
	if err != nil {
		return err
	}
	var active int
	for _, s := range students {
		if s.IsActive() {
			active++
		}
		fmt.Fprintf(cli.out, "%4d  %-30s  grade %2d  %s\n", s.ID, s.Name, s.Grade, s.Status)
	}
	fmt.Fprintf(cli.out, "%d students (%d active)\n", len(students), active)
	return nil
}

// importStudents creates one student per roster row, the first row being the header.
// Invalid rows are reported and skipped.
func (cli *commandLine) importStudents(path, sheet string) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return errors.Wrap(err, "opening roster")
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return errors.Wrapf(err, "reading sheet %q", sheet)
	}

	svc := cli.students()
	ctx := context.Background()
	var created, failed int
	for i, row := range rows {
		if i == 0 {
			continue
		}
		ns, err := parseRosterRow(row)
		if err == nil {
			err = ns.Validate(cli.validate, cli.translator)
		}
		if err == nil {
			_, err = svc.Create(ctx, ns)
		}
		if err != nil {
			failed++
			fmt.Fprintf(cli.out, "row %d: %v\n", i+1, err)
			continue
		}
		created++
	}
	fmt.Fprintf(cli.out, "created %d, failed %d\n", created, failed)
	return nil
}

func parseRosterRow(row []string) (student.NewStudent, error) {
	cells := make([]string, rosterColumns)
	copy(cells, row)
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}

	grade, err := cast.ToIntE(cells[colGrade])
	if err != nil {
		return student.NewStudent{}, errors.Errorf("invalid grade %q", cells[colGrade])
	}
	return student.NewStudent{
		FirstName:   cells[colFirstName],
		LastName:    cells[colLastName],
		Grade:       grade,
		DateOfBirth: cells[colDateOfBirth],
		Email:       cells[colEmail],
		Phone:       cells[colPhone],
		Address:     cells[colAddress],
	}, nil
}
