package class_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/class"
	"github.com/trezcool/shule/core/record"
	testutil "github.com/trezcool/shule/tests"
)

func TestMapper_RoundTrip(t *testing.T) {
	r := record.Record{
		"Id": 3, "Name": "Biology", "Tags": "lab", "subject": "Science", "period": 3, "room": "310",
		"semester": "Spring", "year": 2024, "teacher_id": 9,
	}
	assert.Equal(t, r, class.ToRecord(class.FromRecord(r)))

	// an expanded teacher reference maps to its id
	r["teacher_id"] = map[string]interface{}{"Id": float64(9), "Name": "Mr. Keating"}
	assert.Equal(t, 9, class.FromRecord(r).TeacherID)
}

func TestService_Create_Defaults(t *testing.T) {
	core.NowFunc = func() time.Time { return time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC) }
	defer func() { core.NowFunc = time.Now }()

	ctx := context.Background()
	svc := class.NewService(testutil.NewStore(t), testutil.NewLogger())

	created, err := svc.Create(ctx, class.NewClass{Name: "Chemistry", Subject: "Science", Period: 5, Room: "312", TeacherID: 3})
	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)
	assert.Equal(t, class.SemesterFall, created.Semester)
	assert.Equal(t, 2025, created.Year)
	assert.Equal(t, 3, created.TeacherID)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created, *got)
}

func TestService_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	svc := class.NewService(testutil.NewStore(t), testutil.NewLogger())

	before, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, before)

	after, err := svc.Update(ctx, 1, class.UpdateClass{Room: null.StringFrom("204"), Period: null.IntFrom(2)})
	require.NoError(t, err)
	want := *before
	want.Room, want.Period = "204", 2
	assert.Equal(t, want, after)

	ok, err := svc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, _ = svc.Delete(ctx, 1)
	assert.False(t, ok)

	classes, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, classes, 3)
}

func TestNewClass_Validate(t *testing.T) {
	validate, translator := core.NewValidator(class.InitValidators)

	tests := []struct {
		name      string
		nc        class.NewClass
		wantField string
	}{
		{name: "valid", nc: class.NewClass{Name: "PE", Subject: "Physical Education", Period: 8, Room: "Gym"}},
		{name: "unknown subject", nc: class.NewClass{Name: "Art", Subject: "Pottery", Period: 1, Room: "1"}, wantField: "subject"},
		{name: "period out of range", nc: class.NewClass{Name: "Art", Subject: "Arts", Period: 9, Room: "1"}, wantField: "period"},
		{name: "unknown semester", nc: class.NewClass{Name: "Art", Subject: "Arts", Period: 1, Room: "1", Semester: "Winter"}, wantField: "semester"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.nc.Validate(validate, translator)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			vErr, ok := err.(*core.ValidationError)
			require.True(t, ok, "Validate() error = %v", err)
			assert.Equal(t, tt.wantField, vErr.Fields[0].Field)
		})
	}

	uc := class.UpdateClass{Semester: null.StringFrom("Summer")}
	assert.NoError(t, uc.Validate(validate, translator))
	uc = class.UpdateClass{Subject: null.StringFrom("Pottery")}
	assert.Error(t, uc.Validate(validate, translator))
}
