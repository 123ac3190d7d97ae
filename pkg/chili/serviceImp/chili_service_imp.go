package serviceImp

import (
	"fmt"
	"log"
	"strings"

	"chili/entities"
	actRepo "chili/pkg/activity/repository"
	"chili/pkg/chili/repository"
	"chili/pkg/chili/service"
)

type chiliSvc struct {
	r   repository.ChiliRepository
	act actRepo.ActivityRepository
}

func New(r repository.ChiliRepository, act actRepo.ActivityRepository) service.ChiliService {
	return &chiliSvc{r: r, act: act}
}

func validate(in service.ChiliInput) error {
	if strings.TrimSpace(in.Variety) == "" {
		return entities.Invalid("variety", "must not be empty")
	}
	if in.PlantingDate.IsZero() {
		return entities.Invalid("planting_date", "is required")
	}
	if in.SeedsPlanted < 1 {
		return entities.Invalid("seeds_planted", "must be at least 1")
	}
	if in.GerminatedSeeds != nil {
		if *in.GerminatedSeeds < 0 {
			return entities.Invalid("germinated_seeds", "must not be negative")
		}
		if *in.GerminatedSeeds > in.SeedsPlanted {
			return entities.Invalid("germinated_seeds", "must not exceed seeds_planted")
		}
	}
	if in.HarvestYield != nil && *in.HarvestYield < 0 {
		return entities.Invalid("harvest_yield", "must not be negative")
	}
	return nil
}

// logAction never fails the triggering operation.
func (s *chiliSvc) logAction(userID uint, action string) {
	if err := s.act.Log(&userID, action); err != nil {
		log.Printf("[activity] append failed: %v", err)
	}
}

func (s *chiliSvc) Add(ownerID uint, in service.ChiliInput) (*entities.Chili, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	c := &entities.Chili{
		UserID:          ownerID,
		Variety:         in.Variety,
		PlantingDate:    in.PlantingDate,
		SeedsPlanted:    in.SeedsPlanted,
		GerminatedSeeds: in.GerminatedSeeds,
		GerminationDate: in.GerminationDate,
		HarvestYield:    in.HarvestYield,
		Notes:           in.Notes,
		PhotoPath:       in.PhotoPath,
	}
	if err := s.r.Create(c); err != nil {
		return nil, fmt.Errorf("add record: %w", err)
	}
	s.logAction(ownerID, "added "+c.Variety)
	return c, nil
}

// owned loads a record and enforces the ownership boundary.
func (s *chiliSvc) owned(id, ownerID uint) (*entities.Chili, error) {
	c, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c.UserID != ownerID {
		return nil, repository.ErrNotOwner
	}
	return c, nil
}

func (s *chiliSvc) Get(id, ownerID uint) (*entities.Chili, error) {
	return s.owned(id, ownerID)
}

func (s *chiliSvc) Update(id, ownerID uint, in service.ChiliInput) (*entities.Chili, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	c, err := s.owned(id, ownerID)
	if err != nil {
		return nil, err
	}
	c.Variety = in.Variety
	c.PlantingDate = in.PlantingDate
	c.SeedsPlanted = in.SeedsPlanted
	c.GerminatedSeeds = in.GerminatedSeeds
	c.GerminationDate = in.GerminationDate
	c.HarvestYield = in.HarvestYield
	c.Notes = in.Notes
	if in.PhotoPath != "" {
		c.PhotoPath = in.PhotoPath
	}
	if err := s.r.Save(c); err != nil {
		return nil, fmt.Errorf("update record: %w", err)
	}
	s.logAction(ownerID, fmt.Sprintf("updated record %d", c.ID))
	return c, nil
}

func (s *chiliSvc) Delete(id, ownerID uint) error {
	if _, err := s.owned(id, ownerID); err != nil {
		return err
	}
	if err := s.r.Delete(id); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	s.logAction(ownerID, fmt.Sprintf("deleted record %d", id))
	return nil
}

func (s *chiliSvc) List(ownerID uint) ([]entities.Chili, error) {
	return s.r.ListByUser(ownerID)
}

func (s *chiliSvc) ImportBulk(ownerID uint, rows []service.ChiliInput) (service.ImportReport, error) {
	var rep service.ImportReport
	for i, in := range rows {
		// Report against the source data row when the input came from a
		// parsed file, so the numbering matches any parse failures.
		rowNum := in.Row
		if rowNum == 0 {
			rowNum = i + 1
		}
		if err := validate(in); err != nil {
			rep.Failed = append(rep.Failed, service.RowError{Row: rowNum, Err: err.Error()})
			continue
		}
		c := &entities.Chili{
			UserID:          ownerID,
			Variety:         in.Variety,
			PlantingDate:    in.PlantingDate,
			SeedsPlanted:    in.SeedsPlanted,
			GerminatedSeeds: in.GerminatedSeeds,
			GerminationDate: in.GerminationDate,
			HarvestYield:    in.HarvestYield,
			Notes:           in.Notes,
		}
		if err := s.r.Create(c); err != nil {
			rep.Failed = append(rep.Failed, service.RowError{Row: rowNum, Err: err.Error()})
			continue
		}
		rep.Inserted++
	}
	if rep.Inserted > 0 {
		s.logAction(ownerID, fmt.Sprintf("imported %d records", rep.Inserted))
	}
	return rep, nil
}
