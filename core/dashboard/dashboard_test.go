package dashboard_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/shule/core/attendance"
	"github.com/trezcool/shule/core/class"
	"github.com/trezcool/shule/core/dashboard"
	"github.com/trezcool/shule/core/grade"
	"github.com/trezcool/shule/core/record"
	"github.com/trezcool/shule/core/student"
	testutil "github.com/trezcool/shule/tests"
)

func sources(client record.Client, policies ...record.Policies) dashboard.Sources {
	logger := testutil.NewLogger()
	return dashboard.Sources{
		Students:   student.NewService(client, logger, policies...),
		Classes:    class.NewService(client, logger, policies...),
		Grades:     grade.NewService(client, logger, policies...),
		Attendance: attendance.NewService(client, logger, policies...),
	}
}

func TestCompute(t *testing.T) {
	ctx := context.Background()

	store := testutil.NewStore(t)
	got, err := dashboard.Compute(ctx, sources(store))
	require.NoError(t, err)
	// seed: 5 students, 4 classes, scores 45+38+88.5+61, 2 of 4 present
	assert.Equal(t, dashboard.Summary{TotalStudents: 5, TotalClasses: 4, AverageGrade: 58, AttendanceRate: 50}, got)

	testutil.CreateRecord(t, store, record.TableAttendance, record.Record{
		"student_id": 5, "class_id": 1, "date": "2024-09-03", "status": attendance.StatusPresent,
	})
	got, err = dashboard.Compute(ctx, sources(store))
	require.NoError(t, err)
	assert.Equal(t, 60, got.AttendanceRate)

	got, err = dashboard.Compute(ctx, sources(testutil.NewStore(t, true /* empty */)))
	require.NoError(t, err)
	assert.Equal(t, dashboard.Summary{}, got)
}

type failingGrades struct{}

var errGrades = errors.New("grades unavailable")

func (failingGrades) GetAll(context.Context) ([]grade.Grade, error) { return nil, errGrades }

func TestCompute_Error(t *testing.T) {
	src := sources(testutil.NewStore(t))
	src.Grades = failingGrades{}
	_, err := dashboard.Compute(context.Background(), src)
	assert.Equal(t, errGrades, err)
}

func TestRates(t *testing.T) {
	assert.Equal(t, 0, dashboard.AverageScore(nil))
	assert.Equal(t, 87, dashboard.AverageScore([]grade.Grade{{Score: 86.5}, {Score: 87}}))

	assert.Equal(t, 0, dashboard.AttendanceRate(nil))
	assert.Equal(t, 67, dashboard.AttendanceRate([]attendance.Attendance{
		{Status: attendance.StatusPresent},
		{Status: attendance.StatusPresent},
		{Status: attendance.StatusTardy},
	}))
}
