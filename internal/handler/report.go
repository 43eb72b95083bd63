package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/gym-management/internal/report"
)

// ReportHandler serves GET /v1/reports/<kind>.
type ReportHandler struct {
	Engine *report.Engine
}

func NewReportHandler(engine *report.Engine) *ReportHandler {
	if engine == nil {
		panic("nil engine passed to NewReportHandler")
	}
	return &ReportHandler{Engine: engine}
}

type reportResponse struct {
	Report report.Kind `json:"report"`
	Rows   any         `json:"rows"`
}

// Report returns the handler for one kind. Date ranges come from from/to;
// the most active users report also accepts start/end. Equipment usage
// reads month.
func (h *ReportHandler) Report(kind report.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		p := report.Params{
			From:  firstNonEmpty(c.QueryParam("from"), c.QueryParam("start")),
			To:    firstNonEmpty(c.QueryParam("to"), c.QueryParam("end")),
			Month: c.QueryParam("month"),
		}
		rows, err := h.Engine.Run(c.Request().Context(), kind, p)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, reportResponse{Report: kind, Rows: rows})
	}
}

// List handles GET /v1/reports.
func (h *ReportHandler) List(c echo.Context) error {
	slugs := make([]string, 0, len(report.Kinds))
	for _, k := range report.Kinds {
		slugs = append(slugs, k.Slug())
	}
	return c.JSON(http.StatusOK, map[string][]string{"reports": slugs})
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
