package scanner

import (
	"fmt"
	"log"
	"regexp"
	"strings"
)

var (
	// A stat name is a run of letters/spaces with an optional +digit upgrade
	// marker, e.g. "CRIT Rate" or "HP+2".
	statNameRE = regexp.MustCompile(`[a-zA-Z ]+\+?\d?`)
	// A stat value is digits with an optional decimal part and % sign.
	statValueRE = regexp.MustCompile(`\d+(\.\d+)?%?`)
	// A line that is nothing but a stat value (wrapped onto its own line).
	standaloneValueRE = regexp.MustCompile(`^\d+(\.\d+)?%?$`)
	levelStripRE      = regexp.MustCompile(`[^0-9/]`)
)

// ParseDiskLines extracts a draft disk record from the ordered OCR lines of
// one disk detail image. The partition number comes from the scan context,
// not from OCR. Fields the lines do not yield stay empty; structural anchors
// that cannot be located at all are errors.
//
// Layout anchors: the set name follows the "Set" label line, the combined
// base stat follows the "Main" line, the level line is the one containing a
// slash, and the random stats sit between the line after "Sub" and the
// "Set Effect" header (the later "Set" occurrence).
func ParseDiskLines(lines []string, partition int) (*DiskRecord, error) {
	setIdx := findSetAnchor(lines)
	if setIdx < 0 || setIdx+1 >= len(lines) {
		return nil, fmt.Errorf("set name anchor not found")
	}
	rec := &DiskRecord{
		SetName:         lines[setIdx+1],
		PartitionNumber: partition,
	}

	levelIdx := findIndex("/", lines, 0)
	if levelIdx < 0 {
		return nil, fmt.Errorf("level line not found")
	}
	level := strings.TrimSpace(levelStripRE.ReplaceAllString(lines[levelIdx], ""))
	parts := strings.SplitN(level, "/", 2)
	if len(parts) < 2 {
		return nil, fmt.Errorf("malformed level text %q", lines[levelIdx])
	}
	cur := stripNonDigits(parts[0])
	if cur == "" {
		return nil, fmt.Errorf("no current level digits in %q", lines[levelIdx])
	}
	// OCR reads 00/15 on fresh drives; normalize any leading zero to plain 0.
	if cur[0] == '0' {
		cur = "0"
	}
	rec.CurrentLevel = cur
	rec.MaxLevel = strings.TrimSpace(parts[1])

	mainIdx := findIndex("Main", lines, 0)
	if mainIdx < 0 || mainIdx+1 >= len(lines) {
		return nil, fmt.Errorf("main stat anchor not found")
	}
	combined := lines[mainIdx+1]
	rec.BaseStatName = strings.TrimSpace(strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '%' {
			return -1
		}
		return r
	}, combined))
	// When OCR lost the digits entirely, leave the value missing; the
	// reconciler re-derives it from the progression table.
	if containsDigit(combined) {
		rec.BaseStatValue = statValueRE.FindString(combined)
	}

	subIdx := findIndex("Sub", lines, 0)
	if subIdx < 0 {
		return nil, fmt.Errorf("sub stats anchor not found")
	}
	endIdx := findIndex("Set", lines, subIdx+1)
	if endIdx < 0 {
		return nil, fmt.Errorf("set effect terminator not found")
	}

	consumed := map[int]bool{}
	for i := subIdx + 1; i < endIdx; i++ {
		name := statNameRE.FindString(lines[i])
		value := statValueNotAfterPlus(lines[i])
		switch {
		case name != "" && value != "":
			rec.RandomStats = append(rec.RandomStats, StatPair{Name: name, Value: value})
		case name != "":
			// Known OCR artifact: the value wrapped onto its own line. Scan
			// forward from just after the Sub anchor for the first unused
			// standalone value; pair with an empty value if none exists.
			paired := false
			for j := subIdx + 1; j < len(lines); j++ {
				if consumed[j] || !standaloneValueRE.MatchString(lines[j]) {
					continue
				}
				consumed[j] = true
				rec.RandomStats = append(rec.RandomStats, StatPair{Name: name, Value: lines[j]})
				paired = true
				break
			}
			if !paired {
				rec.RandomStats = append(rec.RandomStats, StatPair{Name: name, Value: ""})
				log.Printf("Could not find value for random stat %s", name)
			}
		}
	}
	return rec, nil
}

// findSetAnchor locates the "Set" label whose next line is the set name. A
// line that is exactly the label is preferred, because headers like
// "Drive Set" also contain the substring.
func findSetAnchor(lines []string) int {
	for i, l := range lines {
		if strings.TrimSpace(l) == "Set" {
			return i
		}
	}
	return findIndex("Set", lines, 0)
}

// statValueNotAfterPlus returns the first stat value in the line that is not
// the digit of a +N upgrade marker.
func statValueNotAfterPlus(line string) string {
	for _, m := range statValueRE.FindAllStringIndex(line, -1) {
		if m[0] > 0 && line[m[0]-1] == '+' {
			continue
		}
		return line[m[0]:m[1]]
	}
	return ""
}
