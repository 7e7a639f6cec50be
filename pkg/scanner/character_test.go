package scanner

import (
	"testing"

	"zzzscanner/pkg/catalog"
)

func TestParseCharacterLevelSingleLine(t *testing.T) {
	cur, max := ParseCharacterLevel([]string{"Lv. 48/50"})
	if cur != "48" || max != "50" {
		t.Fatalf("got %s/%s want 48/50", cur, max)
	}
}

func TestParseCharacterLevelSingleLineGarbage(t *testing.T) {
	cur, max := ParseCharacterLevel([]string{"no digits here"})
	if cur != "60" || max != "60" {
		t.Fatalf("got %s/%s want 60/60 fallback", cur, max)
	}
}

func TestParseCharacterLevelMultiLine(t *testing.T) {
	cur, max := ParseCharacterLevel([]string{"Lv. 33", "", "/ 40x"})
	if cur != "33" || max != "40" {
		t.Fatalf("got %s/%s want 33/40", cur, max)
	}
}

func TestParseCharacterLevelSnapsAndClamps(t *testing.T) {
	// Max 47 snaps to 50, then 12 clamps up to 40.
	cur, max := ParseCharacterLevel([]string{"12/47"})
	if cur != "40" || max != "50" {
		t.Fatalf("got %s/%s want 40/50", cur, max)
	}
	// Current above max clamps down.
	cur, max = ParseCharacterLevel([]string{"55/50"})
	if cur != "50" || max != "50" {
		t.Fatalf("got %s/%s want 50/50", cur, max)
	}
}

func TestParseSkillLevel(t *testing.T) {
	got, err := ParseSkillLevel([]string{"Lv.", "12"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "12" {
		t.Fatalf("got %s want 12", got)
	}
}

func TestParseSkillLevelOneDigitFallback(t *testing.T) {
	got, err := ParseSkillLevel([]string{"Lv. 4"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "4" {
		t.Fatalf("got %s want 4", got)
	}
}

func TestParseSkillLevelCoreRange(t *testing.T) {
	// 12 is out of core range and snaps to 7.
	got, err := ParseSkillLevel([]string{"12"}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "7" {
		t.Fatalf("got %s want 7", got)
	}
}

func TestParseSkillLevelNoDigits(t *testing.T) {
	if _, err := ParseSkillLevel([]string{"Lv."}, false); err == nil {
		t.Fatal("expected error for digitless skill text")
	}
}

func TestParseCharacterName(t *testing.T) {
	cat := catalog.New()
	if got := ParseCharacterName(cat, []string{"Nekomata"}); got != "Nekomata" {
		t.Fatalf("got %q", got)
	}
	if got := ParseCharacterName(cat, []string{"Lycaqn"}); got != "Lycaon" {
		t.Fatalf("got %q want Lycaon", got)
	}
}
