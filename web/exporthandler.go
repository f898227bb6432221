package web

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"seroter.com/ordersheet/model"
	"seroter.com/ordersheet/responses"
)

// Exporter is the part of the pipeline the status server drives.
type Exporter interface {
	Run(ctx context.Context) (model.RunReport, error)
	Running() bool
	Last() (model.RunReport, bool)
	Cursor(ctx context.Context) (string, error)
}

type Handler struct {
	exporter Exporter
	// runs triggered over HTTP outlive the request, so they use this
	// context instead
	base context.Context
}

// NewServer registers the status routes on a fresh echo instance.
func NewServer(ctx context.Context, exporter Exporter) *echo.Echo {
	h := &Handler{exporter: exporter, base: ctx}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Renderer = newTemplate()

	e.GET("/", h.GetHome)
	e.GET("/healthz", h.Health)
	e.GET("/status", h.Status)
	e.GET("/cursor", h.Cursor)
	e.POST("/run", h.TriggerRun)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, responses.ExportResponse{Status: http.StatusOK, Message: "success", Data: "ok"})
}

func (h *Handler) Status(c echo.Context) error {
	report, ok := h.exporter.Last()
	if !ok {
		return c.JSON(http.StatusNotFound, responses.ExportResponse{Status: http.StatusNotFound, Message: "error", Data: "no export has run yet"})
	}
	return c.JSON(http.StatusOK, responses.RunReportResponse{Status: http.StatusOK, Message: "success", Data: report})
}

func (h *Handler) Cursor(c echo.Context) error {
	cursor, err := h.exporter.Cursor(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, responses.ExportResponse{Status: http.StatusInternalServerError, Message: "error", Data: err.Error()})
	}
	return c.JSON(http.StatusOK, responses.ExportResponse{Status: http.StatusOK, Message: "success", Data: cursor})
}

// TriggerRun starts an export in the background.
func (h *Handler) TriggerRun(c echo.Context) error {
	if h.exporter.Running() {
		return c.JSON(http.StatusConflict, responses.ExportResponse{Status: http.StatusConflict, Message: "error", Data: "export already running"})
	}
	go h.exporter.Run(h.base)
	return c.JSON(http.StatusAccepted, responses.ExportResponse{Status: http.StatusAccepted, Message: "success", Data: "export started"})
}
