package controllerImp

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"chili/entities"
	"chili/pkg/blob"
	"chili/pkg/chili/controller"
	"chili/pkg/chili/repository"
	"chili/pkg/chili/service"
)

type ChiliCtrl struct {
	svc    service.ChiliService
	photos *blob.Store
}

func New(svc service.ChiliService, photos *blob.Store) controller.ChiliController {
	return &ChiliCtrl{svc: svc, photos: photos}
}

type recordReq struct {
	Variety         string `json:"variety"`
	PlantingDate    string `json:"planting_date"`
	SeedsPlanted    int    `json:"seeds_planted"`
	GerminatedSeeds *int   `json:"germinated_seeds"`
	GerminationDate string `json:"germination_date"`
	HarvestYield    *int   `json:"harvest_yield"`
	Notes           string `json:"notes"`
}

func (r recordReq) toInput() (service.ChiliInput, error) {
	in := service.ChiliInput{
		Variety:         r.Variety,
		SeedsPlanted:    r.SeedsPlanted,
		GerminatedSeeds: r.GerminatedSeeds,
		HarvestYield:    r.HarvestYield,
		Notes:           r.Notes,
	}
	if r.PlantingDate != "" {
		d, err := time.Parse("2006-01-02", r.PlantingDate)
		if err != nil {
			return in, entities.Invalid("planting_date", "want YYYY-MM-DD")
		}
		in.PlantingDate = d
	}
	if r.GerminationDate != "" {
		d, err := time.Parse("2006-01-02", r.GerminationDate)
		if err != nil {
			return in, entities.Invalid("germination_date", "want YYYY-MM-DD")
		}
		in.GerminationDate = &d
	}
	return in, nil
}

// writeErr maps core errors onto HTTP statuses. ErrNotOwner deliberately
// renders as 404 so record ids of other users stay unguessable.
func writeErr(c echo.Context, err error) error {
	var ve *entities.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Error()})
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, repository.ErrNotOwner):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func (h *ChiliCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(uint)
	var req recordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	in, err := req.toInput()
	if err != nil {
		return writeErr(c, err)
	}
	rec, err := h.svc.Add(uid, in)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *ChiliCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(uint)
	recs, err := h.svc.List(uid)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *ChiliCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(uint)
	id, _ := strconv.Atoi(c.Param("id"))
	rec, err := h.svc.Get(uint(id), uid)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *ChiliCtrl) Update(c echo.Context) error {
	uid := c.Get("uid").(uint)
	id, _ := strconv.Atoi(c.Param("id"))
	var req recordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	in, err := req.toInput()
	if err != nil {
		return writeErr(c, err)
	}
	rec, err := h.svc.Update(uint(id), uid, in)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *ChiliCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(uint)
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.svc.Delete(uint(id), uid); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// UploadPhoto attaches an image to an existing record. The blob store keeps
// the bytes; the record keeps only the reference path.
func (h *ChiliCtrl) UploadPhoto(c echo.Context) error {
	uid := c.Get("uid").(uint)
	id, _ := strconv.Atoi(c.Param("id"))

	rec, err := h.svc.Get(uint(id), uid)
	if err != nil {
		return writeErr(c, err)
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "photo file is required"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unreadable upload"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unreadable upload"})
	}

	path, err := h.photos.Save(fh.Filename, data)
	if err != nil {
		return writeErr(c, err)
	}

	in := service.ChiliInput{
		Variety:         rec.Variety,
		PlantingDate:    rec.PlantingDate,
		SeedsPlanted:    rec.SeedsPlanted,
		GerminatedSeeds: rec.GerminatedSeeds,
		GerminationDate: rec.GerminationDate,
		HarvestYield:    rec.HarvestYield,
		Notes:           rec.Notes,
		PhotoPath:       path,
	}
	updated, err := h.svc.Update(rec.ID, uid, in)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}
