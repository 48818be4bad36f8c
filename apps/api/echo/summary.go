package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/attendance"
	"github.com/trezcool/shule/core/class"
	"github.com/trezcool/shule/core/dashboard"
	"github.com/trezcool/shule/core/grade"
	"github.com/trezcool/shule/core/record"
	"github.com/trezcool/shule/core/student"
)

func registerSummaryAPI(grp *echo.Group, store record.Client, logger core.Logger) {
	src := dashboard.Sources{
		Students:   student.NewService(store, logger, record.StrictPolicies),
		Classes:    class.NewService(store, logger, record.StrictPolicies),
		Grades:     grade.NewService(store, logger, record.StrictPolicies),
		Attendance: attendance.NewService(store, logger, record.StrictPolicies),
	}

	grp.GET("/summary", func(ctx echo.Context) error {
		summary, err := dashboard.Compute(ctx.Request().Context(), src)
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, summary)
	})
}
