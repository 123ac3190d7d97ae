package controllerImp

import (
	"fmt"
	"net/http"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"chili/pkg/chili/service"
	"chili/pkg/transfer"
)

type TransferCtrl struct{ svc service.ChiliService }

func New(svc service.ChiliService) *TransferCtrl { return &TransferCtrl{svc: svc} }

func attachment(c echo.Context, contentType, ext string) {
	name := fmt.Sprintf("chili_records_%s.%s", time.Now().Format("2006-01-02"), ext)
	c.Response().Header().Set(echo.HeaderContentType, contentType)
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
}

func (h *TransferCtrl) ExportCSV(c echo.Context) error {
	uid := c.Get("uid").(uint)
	recs, err := h.svc.List(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	attachment(c, "text/csv", "csv")
	c.Response().WriteHeader(http.StatusOK)
	return transfer.ExportCSV(c.Response(), recs)
}

func (h *TransferCtrl) ExportXLSX(c echo.Context) error {
	uid := c.Get("uid").(uint)
	recs, err := h.svc.List(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	attachment(c, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx")
	c.Response().WriteHeader(http.StatusOK)
	return transfer.ExportXLSX(c.Response(), recs)
}

// Import bulk-loads records from an uploaded .csv or .xlsx file. Rows fail
// independently: parse failures and insert failures are reported together,
// everything else lands.
func (h *TransferCtrl) Import(c echo.Context) error {
	uid := c.Get("uid").(uint)

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file is required"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unreadable upload"})
	}
	defer f.Close()

	var inputs []service.ChiliInput
	var parseFailed []service.RowError
	switch strings.ToLower(filepath.Ext(fh.Filename)) {
	case ".xlsx":
		inputs, parseFailed, err = transfer.ParseXLSX(f)
	default:
		inputs, parseFailed, err = transfer.ParseCSV(f)
	}
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	rep, err := h.svc.ImportBulk(uid, inputs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	// Both lists carry source data-row numbers, so they merge cleanly.
	rep.Failed = append(parseFailed, rep.Failed...)
	sort.Slice(rep.Failed, func(i, j int) bool { return rep.Failed[i].Row < rep.Failed[j].Row })
	return c.JSON(http.StatusOK, rep)
}
