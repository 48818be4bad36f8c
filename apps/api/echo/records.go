package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/shule/core/record"
)

type recordAPI struct {
	store record.Client
}

func registerRecordAPI(grp *echo.Group, store record.Client) {
	api := recordAPI{store: store}

	g := grp.Group("/tables/:table", tableMiddleware())
	g.POST("/fetch", api.fetch)
	g.POST("/records/:id", api.getByID)
	g.POST("/records", api.create)
	g.PUT("/records", api.update)
	g.DELETE("/records", api.delete)
}

func (api recordAPI) fetch(ctx echo.Context) error {
	var params record.FetchParams
	if err := ctx.Bind(&params); err != nil {
		return err
	}
	resp, err := api.store.FetchRecords(ctx.Request().Context(), ctx.Param("table"), params)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api recordAPI) getByID(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid record id")
	}
	var params record.FetchParams
	if err = ctx.Bind(&params); err != nil {
		return err
	}
	resp, err := api.store.GetRecordByID(ctx.Request().Context(), ctx.Param("table"), id, params)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api recordAPI) create(ctx echo.Context) error {
	var params record.BatchParams
	if err := ctx.Bind(&params); err != nil {
		return err
	}
	resp, err := api.store.CreateRecords(ctx.Request().Context(), ctx.Param("table"), params)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api recordAPI) update(ctx echo.Context) error {
	var params record.BatchParams
	if err := ctx.Bind(&params); err != nil {
		return err
	}
	resp, err := api.store.UpdateRecords(ctx.Request().Context(), ctx.Param("table"), params)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api recordAPI) delete(ctx echo.Context) error {
	var params record.DeleteParams
	if err := ctx.Bind(&params); err != nil {
		return err
	}
	resp, err := api.store.DeleteRecords(ctx.Request().Context(), ctx.Param("table"), params)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, resp)
}
