package scanner

import (
	"fmt"
	"strconv"
	"strings"

	"zzzscanner/pkg/catalog"
)

// ValidateDisk is the final gate before a reconciled disk record is
// accumulated. It short-circuits on the first inconsistency and returns the
// reason, so a rejected record leaves a usable diagnostic in the log. Only
// disk records get validated; wengine and agent records are self-correcting
// by construction.
func ValidateDisk(cat *catalog.Catalog, rec *DiskRecord) (bool, string) {
	if !containsString(cat.SetNames, rec.SetName) {
		return false, fmt.Sprintf("unknown set name %q", rec.SetName)
	}

	cur, err := strconv.Atoi(rec.CurrentLevel)
	if err != nil {
		return false, fmt.Sprintf("unreadable current level %q", rec.CurrentLevel)
	}
	max, err := strconv.Atoi(rec.MaxLevel)
	if err != nil {
		return false, fmt.Sprintf("unreadable max level %q", rec.MaxLevel)
	}
	if cur > max {
		return false, fmt.Sprintf("current level %d above max level %d", cur, max)
	}
	if catalog.RarityFromMaxLevel(max) == catalog.RarityUnknown {
		return false, fmt.Sprintf("max level %d maps to no rarity", max)
	}

	if !containsString(cat.MainStatsForPartition(rec.PartitionNumber), rec.BaseStatName) {
		return false, fmt.Sprintf("base stat %q not valid for partition %d", rec.BaseStatName, rec.PartitionNumber)
	}
	if rec.BaseStatValue == "" || !standaloneValueRE.MatchString(rec.BaseStatValue) {
		return false, fmt.Sprintf("base stat value %q is not numeric", rec.BaseStatValue)
	}

	for _, st := range rec.RandomStats {
		base, _ := catalog.SplitUpgradeSuffix(st.Name)
		base = strings.TrimSuffix(base, "%")
		if !containsString(cat.RandomStats, base) {
			return false, fmt.Sprintf("unknown random stat %q", st.Name)
		}
		if st.Value == "" {
			return false, fmt.Sprintf("random stat %q has no value", st.Name)
		}
	}
	return true, ""
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
