// Package handler is the HTTP presentation boundary. Write endpoints bind a
// JSON form into a service input; read endpoints return one record by id;
// report endpoints return report rows. Every failure is rendered as
// {"error", "message", "details"} with the status apperr assigns.
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/gym-management/internal/apperr"
	"github.com/iliyamo/gym-management/internal/repository"
	"github.com/iliyamo/gym-management/internal/service"
)

// GymHandler serves the write and read-by-id endpoints.
type GymHandler struct {
	Service *service.Service
	Repos   *repository.Repos
}

// NewGymHandler panics if a dependency is missing.
func NewGymHandler(svc *service.Service, repos *repository.Repos) *GymHandler {
	if svc == nil || repos == nil {
		panic("nil dependency passed to NewGymHandler")
	}
	return &GymHandler{Service: svc, Repos: repos}
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// fail writes err as JSON. Internal errors hide their cause.
func fail(c echo.Context, err error) error {
	status := apperr.HTTPStatus(err)
	body := errorBody{Error: string(apperr.TypeInternal), Message: "internal error"}
	if appErr, ok := apperr.Get(err); ok && appErr.Type != apperr.TypeInternal {
		body = errorBody{Error: string(appErr.Type), Message: appErr.Message, Details: appErr.Details}
	}
	return c.JSON(status, body)
}

func parseID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.NewValidationError("invalid id", name+" must be a positive integer")
	}
	return id, nil
}

// create binds the request body into In, runs op and answers 201 with the
// value built by respond.
func create[In, Out any](c echo.Context, op func(context.Context, In) (Out, error), respond func(Out) any) error {
	var in In
	if err := c.Bind(&in); err != nil {
		return fail(c, apperr.NewValidationError("invalid request body", err.Error()))
	}
	out, err := op(c.Request().Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, respond(out))
}

// get parses :id and returns the record found by load.
func get[Out any](c echo.Context, load func(context.Context, uint64) (Out, error)) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	out, err := load(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type idResponse struct {
	ID uint64 `json:"id"`
}
