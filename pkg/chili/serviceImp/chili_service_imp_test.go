package serviceImp

import (
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"chili/entities"
	actRepoImp "chili/pkg/activity/repositoryImp"
	"chili/pkg/chili/repository"
	chiliRepoImp "chili/pkg/chili/repositoryImp"
	"chili/pkg/chili/service"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intp(v int) *int { return &v }

func setup(t *testing.T) (service.ChiliService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.Chili{}, &entities.ActivityLog{}))
	return New(chiliRepoImp.New(db), actRepoImp.New(db)), db
}

func TestAddThenListRoundTrip(t *testing.T) {
	svc, _ := setup(t)

	rec, err := svc.Add(1, service.ChiliInput{
		Variety:      "Jalapeño",
		PlantingDate: date(2024, 3, 1),
		SeedsPlanted: 10,
	})
	require.NoError(t, err)
	assert.NotZero(t, rec.ID)

	recs, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	got := recs[0]
	assert.Equal(t, "Jalapeño", got.Variety)
	assert.Equal(t, 10, got.SeedsPlanted)
	assert.Nil(t, got.GerminatedSeeds)
	assert.Nil(t, got.GerminationDate)
	assert.Nil(t, got.HarvestYield)
	assert.Empty(t, got.Notes)
}

func TestAddRecordedZeroIsNotAbsent(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.Add(1, service.ChiliInput{
		Variety:         "Cayenne",
		PlantingDate:    date(2024, 4, 1),
		SeedsPlanted:    5,
		GerminatedSeeds: intp(0),
		HarvestYield:    intp(0),
	})
	require.NoError(t, err)

	recs, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.NotNil(t, recs[0].GerminatedSeeds)
	require.NotNil(t, recs[0].HarvestYield)
	assert.Equal(t, 0, *recs[0].GerminatedSeeds)
	assert.Equal(t, 0, *recs[0].HarvestYield)
}

func TestAddValidation(t *testing.T) {
	svc, _ := setup(t)

	cases := []struct {
		name string
		in   service.ChiliInput
	}{
		{"empty variety", service.ChiliInput{PlantingDate: date(2024, 1, 1), SeedsPlanted: 1}},
		{"missing planting date", service.ChiliInput{Variety: "Habanero", SeedsPlanted: 1}},
		{"zero seeds", service.ChiliInput{Variety: "Habanero", PlantingDate: date(2024, 1, 1), SeedsPlanted: 0}},
		{"germinated exceeds planted", service.ChiliInput{Variety: "Habanero", PlantingDate: date(2024, 1, 1), SeedsPlanted: 3, GerminatedSeeds: intp(4)}},
		{"negative germinated", service.ChiliInput{Variety: "Habanero", PlantingDate: date(2024, 1, 1), SeedsPlanted: 3, GerminatedSeeds: intp(-1)}},
		{"negative yield", service.ChiliInput{Variety: "Habanero", PlantingDate: date(2024, 1, 1), SeedsPlanted: 3, HarvestYield: intp(-5)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Add(1, tc.in)
			var ve *entities.ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}

	// Nothing was written.
	recs, err := svc.List(1)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestListOrder(t *testing.T) {
	svc, _ := setup(t)

	// Two dates, with a tie on the newer one.
	older, err := svc.Add(1, service.ChiliInput{Variety: "Poblano", PlantingDate: date(2024, 1, 5), SeedsPlanted: 1})
	require.NoError(t, err)
	tieFirst, err := svc.Add(1, service.ChiliInput{Variety: "Serrano", PlantingDate: date(2024, 2, 5), SeedsPlanted: 1})
	require.NoError(t, err)
	tieSecond, err := svc.Add(1, service.ChiliInput{Variety: "Rocoto", PlantingDate: date(2024, 2, 5), SeedsPlanted: 1})
	require.NoError(t, err)

	recs, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	// planting_date DESC, later insert first on equal dates.
	assert.Equal(t, tieSecond.ID, recs[0].ID)
	assert.Equal(t, tieFirst.ID, recs[1].ID)
	assert.Equal(t, older.ID, recs[2].ID)
}

func TestListScopedToOwner(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.Add(1, service.ChiliInput{Variety: "Mine", PlantingDate: date(2024, 1, 1), SeedsPlanted: 1})
	require.NoError(t, err)
	_, err = svc.Add(2, service.ChiliInput{Variety: "Theirs", PlantingDate: date(2024, 1, 1), SeedsPlanted: 1})
	require.NoError(t, err)

	recs, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Mine", recs[0].Variety)
}

func TestUpdateFullReplace(t *testing.T) {
	svc, _ := setup(t)

	rec, err := svc.Add(1, service.ChiliInput{
		Variety:         "Jalapeño",
		PlantingDate:    date(2024, 3, 1),
		SeedsPlanted:    10,
		GerminatedSeeds: intp(8),
		Notes:           "tray A",
	})
	require.NoError(t, err)

	// Replace drops fields that are no longer supplied.
	updated, err := svc.Update(rec.ID, 1, service.ChiliInput{
		Variety:      "Jalapeño M",
		PlantingDate: date(2024, 3, 2),
		SeedsPlanted: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, "Jalapeño M", updated.Variety)
	assert.Equal(t, 12, updated.SeedsPlanted)
	assert.Nil(t, updated.GerminatedSeeds)
	assert.Empty(t, updated.Notes)

	got, err := svc.Get(rec.ID, 1)
	require.NoError(t, err)
	assert.Nil(t, got.GerminatedSeeds)
}

func TestUpdateByNonOwner(t *testing.T) {
	svc, _ := setup(t)

	rec, err := svc.Add(1, service.ChiliInput{Variety: "Jalapeño", PlantingDate: date(2024, 3, 1), SeedsPlanted: 10})
	require.NoError(t, err)

	_, err = svc.Update(rec.ID, 2, service.ChiliInput{Variety: "Hijacked", PlantingDate: date(2024, 3, 1), SeedsPlanted: 1})
	assert.ErrorIs(t, err, repository.ErrNotOwner)

	// Record unchanged.
	got, err := svc.Get(rec.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Jalapeño", got.Variety)
	assert.Equal(t, 10, got.SeedsPlanted)
}

func TestDelete(t *testing.T) {
	svc, _ := setup(t)

	rec, err := svc.Add(1, service.ChiliInput{Variety: "Jalapeño", PlantingDate: date(2024, 3, 1), SeedsPlanted: 10})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(rec.ID, 1))

	recs, err := svc.List(1)
	require.NoError(t, err)
	assert.Empty(t, recs)

	// Repeat delete on a gone id.
	assert.ErrorIs(t, svc.Delete(rec.ID, 1), repository.ErrNotFound)
}

func TestDeleteByNonOwner(t *testing.T) {
	svc, _ := setup(t)

	rec, err := svc.Add(1, service.ChiliInput{Variety: "Jalapeño", PlantingDate: date(2024, 3, 1), SeedsPlanted: 10})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(rec.ID, 2), repository.ErrNotOwner)

	recs, err := svc.List(1)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestMutationsAppendActivity(t *testing.T) {
	svc, db := setup(t)

	rec, err := svc.Add(7, service.ChiliInput{Variety: "Aji", PlantingDate: date(2024, 5, 1), SeedsPlanted: 4})
	require.NoError(t, err)
	_, err = svc.Update(rec.ID, 7, service.ChiliInput{Variety: "Aji", PlantingDate: date(2024, 5, 1), SeedsPlanted: 6})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(rec.ID, 7))

	var entries []entities.ActivityLog
	require.NoError(t, db.Order("id ASC").Find(&entries).Error)
	require.Len(t, entries, 3)
	assert.Equal(t, "added Aji", entries[0].Action)
	require.NotNil(t, entries[0].UserID)
	assert.Equal(t, uint(7), *entries[0].UserID)
	assert.Contains(t, entries[1].Action, "updated record")
	assert.Contains(t, entries[2].Action, "deleted record")
}

func TestImportBulkPartialFailure(t *testing.T) {
	svc, _ := setup(t)

	rep, err := svc.ImportBulk(1, []service.ChiliInput{
		{Variety: "Jalapeño", PlantingDate: date(2024, 3, 1), SeedsPlanted: 10},
		{Variety: "", PlantingDate: date(2024, 3, 2), SeedsPlanted: 5}, // bad row
		{Variety: "Cayenne", PlantingDate: date(2024, 3, 15), SeedsPlanted: 20, GerminatedSeeds: intp(15)},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Inserted)
	require.Len(t, rep.Failed, 1)
	assert.Equal(t, 2, rep.Failed[0].Row)

	recs, err := svc.List(1)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestImportBulkReportsSourceRowNumbers(t *testing.T) {
	svc, _ := setup(t)

	// Inputs from a parsed file carry their original data-row numbers;
	// failures must be attributed to those, not to batch positions.
	rep, err := svc.ImportBulk(1, []service.ChiliInput{
		{Variety: "Jalapeño", PlantingDate: date(2024, 3, 1), SeedsPlanted: 10, Row: 2},
		{Variety: "", PlantingDate: date(2024, 3, 2), SeedsPlanted: 5, Row: 5},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Inserted)
	require.Len(t, rep.Failed, 1)
	assert.Equal(t, 5, rep.Failed[0].Row)
}
