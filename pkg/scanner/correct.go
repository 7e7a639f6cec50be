package scanner

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"zzzscanner/pkg/catalog"
)

// Reconciler heals a parsed draft record against the catalog: names are
// fuzzy-corrected, rarity is derived, and numeric values are recomputed from
// the progression tables, overriding whatever OCR read. It holds only the
// shared catalog reference and is safe to reuse across records.
type Reconciler struct {
	cat *catalog.Catalog
}

// NewReconciler builds a reconciler over the shared catalog.
func NewReconciler(cat *catalog.Catalog) *Reconciler {
	return &Reconciler{cat: cat}
}

// Disk reconciles a disk record in place. A sub stat that cannot be resolved
// into the rarity's progression table is a reconciliation failure for the
// whole record; the caller discards it and moves on.
func (r *Reconciler) Disk(rec *DiskRecord) error {
	rec.SetName, _ = ClosestString(rec.SetName, r.cat.SetNames, false)

	if valid := r.cat.MainStatsForPartition(rec.PartitionNumber); valid != nil {
		rec.BaseStatName, _ = ClosestString(rec.BaseStatName, valid, false)
	}

	for i := range rec.RandomStats {
		rec.RandomStats[i].Name, _ = ClosestString(rec.RandomStats[i].Name, r.cat.RandomStats, true)
	}

	maxLevel, err := strconv.Atoi(strings.TrimSpace(rec.MaxLevel))
	if err != nil {
		return fmt.Errorf("bad max level %q: %w", rec.MaxLevel, err)
	}
	rec.Rarity = catalog.RarityFromMaxLevel(maxLevel)

	// The main stat value is a deterministic function of rarity, level and
	// partition; the formula always outranks what OCR read.
	expected, err := catalog.ExpectedMainStatValue(
		rec.BaseStatName, r.cat.MainStatProgression(rec.Rarity),
		rec.CurrentLevel, rec.MaxLevel, rec.PartitionNumber,
	)
	if err != nil {
		return fmt.Errorf("main stat value: %w", err)
	}
	if rec.BaseStatValue != expected {
		log.Printf("Corrected base stat value %q to %q", rec.BaseStatValue, expected)
		rec.BaseStatValue = expected
	}

	expectedSubs, err := catalog.ExpectedSubStatValues(rec.RandomStats, r.cat.SubStatProgression(rec.Rarity))
	if err != nil {
		return fmt.Errorf("sub stats: %w", err)
	}
	for i, exp := range expectedSubs {
		got := rec.RandomStats[i]
		if stripPercent(got.Value) != stripPercent(exp.Value) {
			log.Printf("Corrected sub stat %s value %q to %q", exp.Name, got.Value, exp.Value)
		}
		rec.RandomStats[i] = exp
	}
	return nil
}

// Engine reconciles a wengine record in place.
func (r *Reconciler) Engine(rec *EngineRecord) error {
	return CorrectWEngine(r.cat, rec)
}

func stripPercent(s string) string {
	return strings.ReplaceAll(s, "%", "")
}
