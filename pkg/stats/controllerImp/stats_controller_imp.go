package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"chili/pkg/chili/service"
	"chili/pkg/stats"
)

type StatsCtrl struct {
	svc         service.ChiliService
	overdueDays int
}

func New(svc service.ChiliService, overdueDays int) *StatsCtrl {
	return &StatsCtrl{svc: svc, overdueDays: overdueDays}
}

// Dashboard bundles every chart input the landing page needs in one call.
func (h *StatsCtrl) Dashboard(c echo.Context) error {
	uid := c.Get("uid").(uint)
	recs, err := h.svc.List(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"totals":            stats.ComputeTotals(recs),
		"yield_by_variety":  stats.YieldByVariety(recs),
		"monthly_yield":     stats.MonthlyYield(recs),
		"germination_table": stats.GerminationTable(recs),
	})
}

func (h *StatsCtrl) Overdue(c echo.Context) error {
	uid := c.Get("uid").(uint)
	recs, err := h.svc.List(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	// Planting dates are stored as UTC calendar dates; compare against a UTC
	// date too, or boundary days would shift with the server's timezone.
	now := time.Now().UTC()
	asOf := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return c.JSON(http.StatusOK, stats.Overdue(recs, asOf, h.overdueDays))
}
