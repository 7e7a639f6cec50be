package scanner

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"zzzscanner/pkg/catalog"
)

var (
	wengineLevelRE  = regexp.MustCompile(`(?i)Lv\.`)
	wengineNumberRE = regexp.MustCompile(`\d+/\d+`)
)

// ParseWEngineLines extracts a draft wengine record from the OCR lines of a
// wengine detail image. Every line before the first level marker ("Lv." or a
// NN/NN pair) belongs to the name; the first NN/NN line in the remainder
// carries current/max level. The upgrade rank comes from preprocessing, not
// from OCR.
func ParseWEngineLines(lines []string, rank int) (*EngineRecord, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("no text lines")
	}

	var nameParts, remaining []string
	for _, line := range lines {
		if wengineLevelRE.MatchString(line) || wengineNumberRE.MatchString(line) {
			remaining = append(remaining, line)
			break
		}
		nameParts = append(nameParts, line)
	}
	if len(nameParts)+1 < len(lines) {
		remaining = append(remaining, lines[len(nameParts)+1:]...)
	}

	var levelLine string
	for _, line := range remaining {
		if wengineNumberRE.MatchString(line) {
			levelLine = line
			break
		}
	}
	if levelLine == "" {
		return nil, fmt.Errorf("level line not found")
	}
	parts := strings.SplitN(levelLine, "/", 2)
	return &EngineRecord{
		Name:         strings.TrimSpace(strings.Join(nameParts, " ")),
		CurrentLevel: stripNonDigits(parts[0]),
		MaxLevel:     stripNonDigits(parts[1]),
		UpgradeRank:  rank,
	}, nil
}

// CorrectWEngine fixes a parsed wengine record in place: the max level snaps
// to the nearest multiple of 10 in [10,60], the current level clamps into
// [max-10, max], the upgrade rank clamps into [1,5], and the name is
// corrected against the known wengine names.
func CorrectWEngine(cat *catalog.Catalog, rec *EngineRecord) error {
	maxLevel, err := strconv.Atoi(rec.MaxLevel)
	if err != nil {
		return fmt.Errorf("bad max level %q: %w", rec.MaxLevel, err)
	}
	if maxLevel%10 != 0 || maxLevel < 10 || maxLevel > 60 {
		maxLevel = int(math.Round(float64(maxLevel)/10)) * 10
		if maxLevel < 10 {
			maxLevel = 10
		}
		if maxLevel > 60 {
			maxLevel = 60
		}
	}
	rec.MaxLevel = strconv.Itoa(maxLevel)

	curLevel, err := strconv.Atoi(rec.CurrentLevel)
	if err != nil {
		return fmt.Errorf("bad current level %q: %w", rec.CurrentLevel, err)
	}
	if curLevel < maxLevel-10 {
		curLevel = maxLevel - 10
	}
	if curLevel > maxLevel {
		curLevel = maxLevel
	}
	rec.CurrentLevel = strconv.Itoa(curLevel)

	if rec.UpgradeRank < 1 {
		rec.UpgradeRank = 1
	}
	if rec.UpgradeRank > 5 {
		rec.UpgradeRank = 5
	}

	rec.Name, _ = ClosestString(rec.Name, cat.WeaponNames, false)
	return nil
}
