package scanner

import (
	"fmt"
	"log"
	"regexp"
	"strconv"

	"zzzscanner/pkg/catalog"
)

var (
	agentLevelRE = regexp.MustCompile(`(\d{2}).*?(\d{2})`)
	twoDigitsRE  = regexp.MustCompile(`\d{2}`)
	oneDigitRE   = regexp.MustCompile(`\d`)
)

var (
	agentMaxLevels = []string{"10", "20", "30", "40", "50", "60"}
	skillLevels    = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12", "13", "14", "15", "16"}
	coreLevels     = []string{"1", "2", "3", "4", "5", "6", "7"}
)

// ParseCharacterName corrects the OCR text of an agent name crop against the
// known agent names.
func ParseCharacterName(cat *catalog.Catalog, lines []string) string {
	name, _ := ClosestString(joinLines(lines), cat.CharacterNames, false)
	return name
}

// ParseCharacterLevel extracts current/max agent level from the OCR lines of
// a level crop. A single line yields both numbers via one pattern; multiple
// lines are cleaned to digits and read positionally. Unreadable text falls
// back to a max leveled agent. The max level then snaps onto the valid
// milestones and the current level clamps into [max-10, max].
func ParseCharacterLevel(lines []string) (current, max string) {
	current, max = "60", "60"
	if len(lines) == 1 {
		if m := agentLevelRE.FindStringSubmatch(lines[0]); m != nil {
			current, max = m[1], m[2]
		} else {
			log.Printf("Could not parse levels from text %q, assuming max leveled agent", lines[0])
		}
	} else {
		var digits []string
		for _, l := range lines {
			if d := stripNonDigits(l); d != "" {
				digits = append(digits, d)
			}
		}
		if len(digits) >= 2 {
			current, max = digits[0], digits[1]
		} else {
			log.Printf("Could not parse levels from lines %v, assuming max leveled agent", lines)
		}
	}

	max = ClosestNumber(max, agentMaxLevels)
	curN, err := strconv.Atoi(current)
	if err != nil {
		return max, max
	}
	maxN, _ := strconv.Atoi(max)
	if curN > maxN {
		curN = maxN
	}
	if curN < maxN-10 {
		curN = maxN - 10
	}
	return strconv.Itoa(curN), max
}

// ParseSkillLevel extracts a skill level from the OCR lines of a skill crop:
// the first two-digit run wins, a lone digit is the low level fallback, and
// the result snaps into the valid range (1..7 for the core skill, 1..16
// otherwise).
func ParseSkillLevel(lines []string, core bool) (string, error) {
	text := joinLines(lines)
	level := twoDigitsRE.FindString(text)
	if level == "" {
		level = oneDigitRE.FindString(text)
	}
	if level == "" {
		return "", fmt.Errorf("no skill level digits in %q", text)
	}
	if core {
		return ClosestNumber(level, coreLevels), nil
	}
	return ClosestNumber(level, skillLevels), nil
}

// ParseCharacterWeapon corrects the OCR text of the equipped wengine crop
// against the known wengine names.
func ParseCharacterWeapon(cat *catalog.Catalog, lines []string) string {
	name, _ := ClosestString(joinLines(lines), cat.WeaponNames, false)
	return name
}
