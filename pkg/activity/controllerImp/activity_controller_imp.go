package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"chili/pkg/activity/repository"
)

type ActivityCtrl struct{ repo repository.ActivityRepository }

func New(repo repository.ActivityRepository) *ActivityCtrl { return &ActivityCtrl{repo} }

// ListMine returns the caller's own audit trail, newest first.
func (h *ActivityCtrl) ListMine(c echo.Context) error {
	uid := c.Get("uid").(uint)
	entries, err := h.repo.ListForUser(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, entries)
}

// ListAll returns every entry, including unattributed system actions. The
// stored role is informational only and is deliberately not checked here;
// see DESIGN.md.
func (h *ActivityCtrl) ListAll(c echo.Context) error {
	entries, err := h.repo.ListAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, entries)
}
