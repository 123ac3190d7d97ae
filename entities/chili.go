package entities

import "time"

type Chili struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index" json:"user_id"`
	Variety      string    `json:"variety"`
	PlantingDate time.Time `json:"planting_date"`
	SeedsPlanted int       `json:"seeds_planted"`

	// Optional outcomes: nil means never recorded, 0 is a recorded value.
	GerminatedSeeds *int       `json:"germinated_seeds,omitempty"`
	GerminationDate *time.Time `json:"germination_date,omitempty"`
	HarvestYield    *int       `json:"harvest_yield,omitempty"`

	Notes     string `json:"notes"`
	PhotoPath string `json:"photo_path,omitempty"`

	CreatedAt time.Time
}

func (Chili) TableName() string { return "chilies" }
