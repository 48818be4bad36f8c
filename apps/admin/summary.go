package main

import (
	"context"
	"fmt"

	"github.com/trezcool/shule/core/attendance"
	"github.com/trezcool/shule/core/class"
	"github.com/trezcool/shule/core/dashboard"
	"github.com/trezcool/shule/core/grade"
	"github.com/trezcool/shule/core/record"
)

func (cli *commandLine) summary() error {
	s, err := dashboard.Compute(context.Background(), dashboard.Sources{
		Students:   cli.students(),
		Classes:    class.NewService(cli.client, cli.logger, record.StrictPolicies),
		Grades:     grade.NewService(cli.client, cli.logger, record.StrictPolicies),
		Attendance: attendance.NewService(cli.client, cli.logger, record.StrictPolicies),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Students:        %d\n", s.TotalStudents)
	fmt.Fprintf(cli.out, "Classes:         %d\n", s.TotalClasses)
	fmt.Fprintf(cli.out, "Average grade:   %d%%\n", s.AverageGrade)
	fmt.Fprintf(cli.out, "Attendance rate: %d%%\n", s.AttendanceRate)
	return nil
}
