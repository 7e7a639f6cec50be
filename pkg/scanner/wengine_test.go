package scanner

import (
	"testing"

	"zzzscanner/pkg/catalog"
)

func TestParseWEngineLines(t *testing.T) {
	lines := []string{"Steel", "Cushion", "Lv. 48/50", "Advanced Stats"}
	rec, err := ParseWEngineLines(lines, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Name != "Steel Cushion" {
		t.Fatalf("name: got %q", rec.Name)
	}
	if rec.CurrentLevel != "48" || rec.MaxLevel != "50" {
		t.Fatalf("level: got %s/%s", rec.CurrentLevel, rec.MaxLevel)
	}
	if rec.UpgradeRank != 2 {
		t.Fatalf("rank: got %d", rec.UpgradeRank)
	}
}

func TestParseWEngineLinesNoLevel(t *testing.T) {
	if _, err := ParseWEngineLines([]string{"Steel Cushion", "no digits"}, 1); err == nil {
		t.Fatal("expected error for missing level line")
	}
}

func TestCorrectWEngine(t *testing.T) {
	cat := catalog.New()
	rec := &EngineRecord{
		Name:         "Steel Cushon",
		CurrentLevel: "5",
		MaxLevel:     "23",
		UpgradeRank:  7,
	}
	if err := CorrectWEngine(cat, rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 23 snaps to 20, then 5 clamps into [10,20].
	if rec.MaxLevel != "20" {
		t.Fatalf("max level: got %s", rec.MaxLevel)
	}
	if rec.CurrentLevel != "10" {
		t.Fatalf("current level: got %s", rec.CurrentLevel)
	}
	if rec.UpgradeRank != 5 {
		t.Fatalf("rank: got %d", rec.UpgradeRank)
	}
	if rec.Name != "Steel Cushion" {
		t.Fatalf("name: got %q", rec.Name)
	}
}

func TestCorrectWEngineOutOfRangeMax(t *testing.T) {
	cat := catalog.New()
	rec := &EngineRecord{Name: "Steel Cushion", CurrentLevel: "70", MaxLevel: "88", UpgradeRank: 0}
	if err := CorrectWEngine(cat, rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.MaxLevel != "60" || rec.CurrentLevel != "60" {
		t.Fatalf("got %s/%s want 60/60", rec.CurrentLevel, rec.MaxLevel)
	}
	if rec.UpgradeRank != 1 {
		t.Fatalf("rank: got %d", rec.UpgradeRank)
	}
}

func TestCorrectWEngineBadLevel(t *testing.T) {
	cat := catalog.New()
	rec := &EngineRecord{Name: "Steel Cushion", CurrentLevel: "x", MaxLevel: "60", UpgradeRank: 1}
	if err := CorrectWEngine(cat, rec); err == nil {
		t.Fatal("expected error for unparsable current level")
	}
}
