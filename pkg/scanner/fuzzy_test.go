package scanner

import "testing"

func TestClosestNumberSnapsToNearest(t *testing.T) {
	if got := ClosestNumber("37", []string{"10", "20", "30", "40"}); got != "40" {
		t.Fatalf("expected 40 got %s", got)
	}
}

func TestClosestNumberTieKeepsFirst(t *testing.T) {
	// 25 is equidistant from 20 and 30; the first minimizer wins.
	if got := ClosestNumber("25", []string{"20", "30"}); got != "20" {
		t.Fatalf("expected 20 got %s", got)
	}
}

func TestClosestNumberParseFailureReturnsLast(t *testing.T) {
	if got := ClosestNumber("abc", []string{"10", "20", "30"}); got != "30" {
		t.Fatalf("expected 30 got %s", got)
	}
}

func TestClosestStringBigramCosineValue(t *testing.T) {
	// abcd/bcda share bigrams bc and cd out of three each, so the cosine is
	// exactly 2/3. Pins the metric itself, not just the ranking.
	_, sim := ClosestString("abcd", []string{"bcda"}, false)
	if diff := sim - 2.0/3.0; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected similarity 2/3 got %f", sim)
	}
	_, sim = ClosestString("Swing Jazz", []string{"Swing Jazz"}, false)
	if sim != 1 {
		t.Fatalf("expected similarity 1 for equal strings got %f", sim)
	}
}

func TestClosestStringCorrectsTypos(t *testing.T) {
	names := []string{"Woodpecker Electro", "Puffer Electro", "Swing Jazz"}
	got, sim := ClosestString("Woodpeker Electro", names, true)
	if got != "Woodpecker Electro" {
		t.Fatalf("expected Woodpecker Electro got %q", got)
	}
	if sim <= 0 {
		t.Fatalf("expected positive similarity, got %f", sim)
	}
}

func TestClosestStringLaterTieWins(t *testing.T) {
	// No candidate bigram overlaps either entry, so every entry scores 0 and
	// each one overwrites the previous best. The last entry winning pins the
	// >= comparison; tightening it to > would be a behavior change.
	got, sim := ClosestString("zz", []string{"ab", "cd"}, false)
	if sim != 0 {
		t.Fatalf("expected zero similarity got %f", sim)
	}
	if got != "cd" {
		t.Fatalf("expected later tie candidate cd, got %q", got)
	}
}

func TestClosestStringNoExactShortcut(t *testing.T) {
	// A verbatim member still goes through scoring and wins on similarity.
	got, sim := ClosestString("Swing Jazz", []string{"Chaos Jazz", "Swing Jazz"}, true)
	if got != "Swing Jazz" {
		t.Fatalf("expected Swing Jazz got %q", got)
	}
	if sim < 0.99 {
		t.Fatalf("expected similarity ~1 got %f", sim)
	}
}

func TestClosestStringPlusModifierPassthrough(t *testing.T) {
	stats := []string{"HP", "ATK", "DEF", "CRIT Rate"}
	got, _ := ClosestString("HP+2", stats, true)
	if got != "HP+2" {
		t.Fatalf("expected HP+2 got %q", got)
	}
	// Without the modifier flag the suffix is dropped.
	got, _ = ClosestString("HP+2", stats, false)
	if got != "HP" {
		t.Fatalf("expected HP got %q", got)
	}
}
