// Package dashboard computes the school overview shown on the home screen.
package dashboard

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/trezcool/shule/core/attendance"
	"github.com/trezcool/shule/core/class"
	"github.com/trezcool/shule/core/grade"
	"github.com/trezcool/shule/core/student"
)

type (
	StudentLister interface {
		GetAll(ctx context.Context) ([]student.Student, error)
	}
	ClassLister interface {
		GetAll(ctx context.Context) ([]class.Class, error)
	}
	GradeLister interface {
		GetAll(ctx context.Context) ([]grade.Grade, error)
	}
	AttendanceLister interface {
		GetAll(ctx context.Context) ([]attendance.Attendance, error)
	}

	// Sources are usually the entity services.
	Sources struct {
		Students   StudentLister
		Classes    ClassLister
		Grades     GradeLister
		Attendance AttendanceLister
	}

	Summary struct {
		TotalStudents  int `json:"totalStudents"`
		TotalClasses   int `json:"totalClasses"`
		AverageGrade   int `json:"averageGrade"`   // rounded mean score
		AttendanceRate int `json:"attendanceRate"` // rounded percentage of present records
	}
)

// Compute fetches every source concurrently. The four listings are not a consistent snapshot.
func Compute(ctx context.Context, src Sources) (Summary, error) {
	var (
		students []student.Student
		classes  []class.Class
		grades   []grade.Grade
		records  []attendance.Attendance
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		students, err = src.Students.GetAll(ctx)
		return err
	})
	g.Go(func() (err error) {
		classes, err = src.Classes.GetAll(ctx)
		return err
	})
	g.Go(func() (err error) {
		grades, err = src.Grades.GetAll(ctx)
		return err
	})
	g.Go(func() (err error) {
		records, err = src.Attendance.GetAll(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	return Summary{
		TotalStudents:  len(students),
		TotalClasses:   len(classes),
		AverageGrade:   AverageScore(grades),
		AttendanceRate: AttendanceRate(records),
	}, nil
}

// AverageScore is the rounded mean score, 0 without grades.
func AverageScore(grades []grade.Grade) int {
	if len(grades) == 0 {
		return 0
	}
	var sum float64
	for _, g := range grades {
		sum += g.Score
	}
	return int(math.Round(sum / float64(len(grades))))
}

// AttendanceRate is the rounded percentage of present records, 0 without records.
func AttendanceRate(records []attendance.Attendance) int {
	if len(records) == 0 {
		return 0
	}
	var present int
	for _, a := range records {
		if a.Status == attendance.StatusPresent {
			present++
		}
	}
	return int(math.Round(float64(present) / float64(len(records)) * 100))
}
