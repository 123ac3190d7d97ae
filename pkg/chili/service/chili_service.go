package service

import (
	"time"

	"chili/entities"
)

// ChiliInput carries the mutable fields of a planting record. Pointer fields
// distinguish "never recorded" (nil) from a recorded zero.
type ChiliInput struct {
	Variety         string     `json:"variety"`
	PlantingDate    time.Time  `json:"planting_date"`
	SeedsPlanted    int        `json:"seeds_planted"`
	GerminatedSeeds *int       `json:"germinated_seeds"`
	GerminationDate *time.Time `json:"germination_date"`
	HarvestYield    *int       `json:"harvest_yield"`
	Notes           string     `json:"notes"`
	PhotoPath       string     `json:"-"`

	// Row is the 1-based source data row when the input came from an
	// imported file, so failure reports can point at the right line.
	// Zero means "not from a file"; bulk inserts then fall back to the
	// batch position.
	Row int `json:"-"`
}

type RowError struct {
	Row int    `json:"row"` // 1-based data row within the batch
	Err string `json:"error"`
}

// ImportReport summarizes a bulk load. Rows fail independently; a bad row
// never aborts the batch.
type ImportReport struct {
	Inserted int        `json:"inserted"`
	Failed   []RowError `json:"failed,omitempty"`
}

type ChiliService interface {
	Add(ownerID uint, in ChiliInput) (*entities.Chili, error)
	Get(id, ownerID uint) (*entities.Chili, error)
	Update(id, ownerID uint, in ChiliInput) (*entities.Chili, error)
	Delete(id, ownerID uint) error
	List(ownerID uint) ([]entities.Chili, error)
	ImportBulk(ownerID uint, rows []ChiliInput) (ImportReport, error)
}
