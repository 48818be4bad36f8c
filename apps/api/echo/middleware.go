package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/trezcool/shule/core/record"
)

// tableMiddleware rejects requests for a table the record protocol does not serve.
func tableMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if err := record.CheckTable(ctx.Param("table")); err != nil {
				return err
			}
			return next(ctx)
		}
	}
}
