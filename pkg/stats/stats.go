// Package stats computes dashboard aggregates over one user's planting
// records. Everything operates on an in-memory snapshot; nothing here touches
// storage.
package stats

import (
	"sort"
	"time"

	"chili/entities"
)

type Totals struct {
	DistinctVarieties int      `json:"distinct_varieties"`
	TotalSeeds        int      `json:"total_seeds"`
	MeanGermination   *float64 `json:"mean_germination_rate"` // nil when no record has germinated_seeds
	TotalYield        int      `json:"total_yield"`           // absent yields count as 0
}

func ComputeTotals(records []entities.Chili) Totals {
	var t Totals
	varieties := map[string]bool{}
	var rateSum float64
	var rateCount int
	for _, c := range records {
		varieties[c.Variety] = true
		t.TotalSeeds += c.SeedsPlanted
		if c.GerminatedSeeds != nil && c.SeedsPlanted > 0 {
			rateSum += float64(*c.GerminatedSeeds) / float64(c.SeedsPlanted) * 100
			rateCount++
		}
		if c.HarvestYield != nil {
			t.TotalYield += *c.HarvestYield
		}
	}
	t.DistinctVarieties = len(varieties)
	if rateCount > 0 {
		mean := rateSum / float64(rateCount)
		t.MeanGermination = &mean
	}
	return t
}

// YieldByVariety sums recorded harvests per variety. Records that were never
// harvested do not appear.
func YieldByVariety(records []entities.Chili) map[string]int {
	out := map[string]int{}
	for _, c := range records {
		if c.HarvestYield != nil {
			out[c.Variety] += *c.HarvestYield
		}
	}
	return out
}

type MonthlyYieldRow struct {
	Month   string `json:"month"` // 2006-01
	Variety string `json:"variety"`
	Yield   int    `json:"yield"`
}

// MonthlyYield buckets recorded harvests by planting month and variety for a
// stacked time-series chart. Rows come back sorted by month then variety.
func MonthlyYield(records []entities.Chili) []MonthlyYieldRow {
	type key struct{ month, variety string }
	sums := map[key]int{}
	for _, c := range records {
		if c.HarvestYield == nil {
			continue
		}
		k := key{c.PlantingDate.Format("2006-01"), c.Variety}
		sums[k] += *c.HarvestYield
	}
	out := make([]MonthlyYieldRow, 0, len(sums))
	for k, v := range sums {
		out = append(out, MonthlyYieldRow{Month: k.month, Variety: k.variety, Yield: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Month != out[j].Month {
			return out[i].Month < out[j].Month
		}
		return out[i].Variety < out[j].Variety
	})
	return out
}

// Overdue returns records still unharvested more than thresholdDays after
// planting. A recorded yield excludes the record regardless of age, even a
// yield of 0.
func Overdue(records []entities.Chili, asOf time.Time, thresholdDays int) []entities.Chili {
	var out []entities.Chili
	for _, c := range records {
		if c.HarvestYield != nil {
			continue
		}
		if int(asOf.Sub(c.PlantingDate).Hours()/24) > thresholdDays {
			out = append(out, c)
		}
	}
	return out
}

type GerminationRow struct {
	entities.Chili
	// Rate is nil when germination was never recorded.
	Rate *float64 `json:"germination_rate"`
}

// GerminationTable annotates records with their germination rate. Rows with
// seeds_planted = 0 are dropped outright rather than dividing by zero; the
// store refuses to create them, but imported legacy data may still carry some.
func GerminationTable(records []entities.Chili) []GerminationRow {
	out := make([]GerminationRow, 0, len(records))
	for _, c := range records {
		if c.SeedsPlanted == 0 {
			continue
		}
		row := GerminationRow{Chili: c}
		if c.GerminatedSeeds != nil {
			rate := float64(*c.GerminatedSeeds) / float64(c.SeedsPlanted) * 100
			row.Rate = &rate
		}
		out = append(out, row)
	}
	return out
}
