package catalog

import "testing"

func TestRarityFromMaxLevel(t *testing.T) {
	cases := map[int]Rarity{9: RarityB, 12: RarityA, 15: RarityS}
	for lvl, want := range cases {
		if got := RarityFromMaxLevel(lvl); got != want {
			t.Fatalf("max level %d: expected %q got %q", lvl, want, got)
		}
	}
	for _, lvl := range []int{0, 8, 10, 14, 16, -1} {
		if got := RarityFromMaxLevel(lvl); got != RarityUnknown {
			t.Fatalf("max level %d: expected unknown rarity got %q", lvl, got)
		}
	}
}

func TestExpectedMainStatValueFlat(t *testing.T) {
	cat := New()
	prog := cat.MainStatProgression(RarityS)
	// Partition 2 ATK is the flat variant: 79 + 9*15.8 = 221.2 -> 221.
	got, err := ExpectedMainStatValue("ATK", prog, "9", "15", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "221" {
		t.Fatalf("expected 221 got %s", got)
	}
}

func TestExpectedMainStatValuePercent(t *testing.T) {
	cat := New()
	prog := cat.MainStatProgression(RarityS)
	// Partition 4 ATK resolves to ATK%: 7.5 + 9*1.5 = 21.
	got, err := ExpectedMainStatValue("ATK", prog, "9", "15", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "21%" {
		t.Fatalf("expected 21%% got %s", got)
	}
	// Max level S drive: 7.5 + 15*1.5 = 30.
	got, err = ExpectedMainStatValue("ATK", prog, "15", "15", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "30%" {
		t.Fatalf("expected 30%% got %s", got)
	}
}

func TestExpectedMainStatValueClampsLevel(t *testing.T) {
	cat := New()
	prog := cat.MainStatProgression(RarityS)
	over, err := ExpectedMainStatValue("HP", prog, "99", "15", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	atMax, err := ExpectedMainStatValue("HP", prog, "15", "15", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if over != atMax {
		t.Fatalf("over-max level should clamp: got %s want %s", over, atMax)
	}
}

func TestExpectedMainStatValueUnknownStat(t *testing.T) {
	cat := New()
	prog := cat.MainStatProgression(RarityS)
	if _, err := ExpectedMainStatValue("Luck", prog, "0", "15", 4); err == nil {
		t.Fatalf("expected error for unknown stat")
	}
}

func TestExpectedSubStatValues(t *testing.T) {
	cat := New()
	prog := cat.SubStatProgression(RarityS)
	got, err := ExpectedSubStatValues([]StatPair{
		{Name: "HP+2", Value: "320"},
		{Name: "DEF", Value: "18"},
		{Name: "CRIT Rate", Value: "2.4%"},
		{Name: "ATK+1", Value: "6%"},
	}, prog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []StatPair{
		{Name: "HP+2", Value: "336"},
		{Name: "DEF", Value: "15"},
		{Name: "CRIT Rate", Value: "2.4%"},
		{Name: "ATK%+1", Value: "6%"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d pairs got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pair %d: expected %+v got %+v", i, want[i], got[i])
		}
	}
}

func TestExpectedSubStatValuesUnknownName(t *testing.T) {
	cat := New()
	prog := cat.SubStatProgression(RarityA)
	if _, err := ExpectedSubStatValues([]StatPair{{Name: "Impact", Value: "12"}}, prog); err == nil {
		t.Fatalf("expected error for stat missing from the table")
	}
}

func TestSplitUpgradeSuffix(t *testing.T) {
	if base, n := SplitUpgradeSuffix("HP+2"); base != "HP" || n != 2 {
		t.Fatalf("expected HP/2 got %s/%d", base, n)
	}
	if base, n := SplitUpgradeSuffix("CRIT Rate"); base != "CRIT Rate" || n != 0 {
		t.Fatalf("expected CRIT Rate/0 got %s/%d", base, n)
	}
}
