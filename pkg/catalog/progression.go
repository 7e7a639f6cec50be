package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// StatCurve describes how one stat grows: a level-0 (or zero-upgrade) base
// value plus a fixed per-step increment, formatted flat or as a percentage.
type StatCurve struct {
	Base    float64
	Step    float64
	Percent bool
}

// MainStatTable maps a main stat name to its per-level curve for one rarity.
// Percent variants of HP/ATK/DEF are keyed with a % suffix.
type MainStatTable map[string]StatCurve

// SubStatTable maps a random stat name to its per-upgrade curve for one
// rarity. The step is the fixed increment each +1 upgrade adds.
type SubStatTable map[string]StatCurve

// ExpectedMainStatValue recomputes the deterministic main stat value for a
// drive at currentLevel within its rarity progression. The partition number
// decides whether an HP/ATK/DEF main stat is the flat (slots 1-3) or percent
// (slots 4-6) variant. Levels are the raw digit strings read off the drive.
func ExpectedMainStatValue(statName string, prog MainStatTable, currentLevel, maxLevel string, partition int) (string, error) {
	if prog == nil {
		return "", fmt.Errorf("no main stat progression table")
	}
	cur, err := strconv.Atoi(strings.TrimSpace(currentLevel))
	if err != nil {
		return "", fmt.Errorf("bad current level %q: %w", currentLevel, err)
	}
	max, err := strconv.Atoi(strings.TrimSpace(maxLevel))
	if err != nil {
		return "", fmt.Errorf("bad max level %q: %w", maxLevel, err)
	}
	if cur < 0 {
		cur = 0
	}
	if cur > max {
		cur = max
	}
	key := statName
	if partition >= 4 && isDefensiveCore(statName) {
		key = statName + "%"
	}
	curve, ok := prog[key]
	if !ok {
		return "", fmt.Errorf("main stat %q has no progression entry", key)
	}
	return formatStatValue(curve.Base+curve.Step*float64(cur), curve.Percent), nil
}

// ExpectedSubStatValues computes the expected value for every random stat:
// base value plus upgradeCount times the rarity's fixed increment, where the
// upgrade count is the +N suffix on the stat name (0 when absent). An HP/ATK/
// DEF name whose read value carried a % sign resolves to the percent variant
// of the stat. A name that resolves to no table entry is an error; the caller
// treats that as a reconciliation failure for the whole record.
func ExpectedSubStatValues(stats []StatPair, prog SubStatTable) ([]StatPair, error) {
	if prog == nil {
		return nil, fmt.Errorf("no sub stat progression table")
	}
	out := make([]StatPair, 0, len(stats))
	for _, st := range stats {
		base, upgrades := SplitUpgradeSuffix(st.Name)
		key := base
		if strings.Contains(st.Value, "%") && isDefensiveCore(base) {
			key = base + "%"
		}
		curve, ok := prog[key]
		if !ok {
			return nil, fmt.Errorf("sub stat %q has no progression entry", key)
		}
		name := key
		if upgrades > 0 {
			name = fmt.Sprintf("%s+%d", key, upgrades)
		}
		value := formatStatValue(curve.Base+curve.Step*float64(upgrades), curve.Percent)
		out = append(out, StatPair{Name: name, Value: value})
	}
	return out, nil
}

// SplitUpgradeSuffix splits a stat name like "HP+2" into its base name and
// upgrade count. Names without a +digit suffix yield an upgrade count of 0.
func SplitUpgradeSuffix(name string) (string, int) {
	i := strings.Index(name, "+")
	if i < 0 {
		return name, 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(name[i+1:]))
	if err != nil {
		return name[:i], 0
	}
	return name[:i], n
}

// isDefensiveCore reports whether the stat is one of the HP/ATK/DEF family
// that exists in both flat and percent variants.
func isDefensiveCore(name string) bool {
	return name == "HP" || name == "ATK" || name == "DEF"
}

// formatStatValue renders a computed stat the way the game displays it: flat
// values are truncated integers, percent values keep at most one decimal.
func formatStatValue(v float64, percent bool) string {
	if !percent {
		return strconv.Itoa(int(math.Floor(v)))
	}
	rounded := math.Round(v*10) / 10
	return strconv.FormatFloat(rounded, 'f', -1, 64) + "%"
}

// Main stat growth per level is a fixed fraction of the rarity's base value,
// so the tables carry (base, step) pairs rather than unrolled level lists.
var mainProgression = map[Rarity]MainStatTable{
	RarityS: {
		"HP":                  {Base: 550, Step: 110},
		"ATK":                 {Base: 79, Step: 15.8},
		"DEF":                 {Base: 46, Step: 9.2},
		"HP%":                 {Base: 7.5, Step: 1.5, Percent: true},
		"ATK%":                {Base: 7.5, Step: 1.5, Percent: true},
		"DEF%":                {Base: 12, Step: 2.4, Percent: true},
		"CRIT Rate":           {Base: 6, Step: 1.2, Percent: true},
		"CRIT DMG":            {Base: 12, Step: 2.4, Percent: true},
		"Anomaly Proficiency": {Base: 23, Step: 4.6},
		"Anomaly Mastery":     {Base: 7.5, Step: 1.5, Percent: true},
		"PEN Ratio":           {Base: 6, Step: 1.2, Percent: true},
		"Impact":              {Base: 4.5, Step: 0.9, Percent: true},
		"Energy Regen":        {Base: 15, Step: 3, Percent: true},
		"Physical DMG Bonus":  {Base: 7.5, Step: 1.5, Percent: true},
		"Fire DMG Bonus":      {Base: 7.5, Step: 1.5, Percent: true},
		"Ice DMG Bonus":       {Base: 7.5, Step: 1.5, Percent: true},
		"Electric DMG Bonus":  {Base: 7.5, Step: 1.5, Percent: true},
		"Ether DMG Bonus":     {Base: 7.5, Step: 1.5, Percent: true},
	},
	RarityA: {
		"HP":                  {Base: 367, Step: 73.4},
		"ATK":                 {Base: 53, Step: 10.6},
		"DEF":                 {Base: 31, Step: 6.2},
		"HP%":                 {Base: 5, Step: 1, Percent: true},
		"ATK%":                {Base: 5, Step: 1, Percent: true},
		"DEF%":                {Base: 8, Step: 1.6, Percent: true},
		"CRIT Rate":           {Base: 4, Step: 0.8, Percent: true},
		"CRIT DMG":            {Base: 8, Step: 1.6, Percent: true},
		"Anomaly Proficiency": {Base: 15, Step: 3},
		"Anomaly Mastery":     {Base: 5, Step: 1, Percent: true},
		"PEN Ratio":           {Base: 4, Step: 0.8, Percent: true},
		"Impact":              {Base: 3, Step: 0.6, Percent: true},
		"Energy Regen":        {Base: 10, Step: 2, Percent: true},
		"Physical DMG Bonus":  {Base: 5, Step: 1, Percent: true},
		"Fire DMG Bonus":      {Base: 5, Step: 1, Percent: true},
		"Ice DMG Bonus":       {Base: 5, Step: 1, Percent: true},
		"Electric DMG Bonus":  {Base: 5, Step: 1, Percent: true},
		"Ether DMG Bonus":     {Base: 5, Step: 1, Percent: true},
	},
	RarityB: {
		"HP":                  {Base: 183, Step: 36.6},
		"ATK":                 {Base: 26, Step: 5.2},
		"DEF":                 {Base: 15, Step: 3},
		"HP%":                 {Base: 2.5, Step: 0.5, Percent: true},
		"ATK%":                {Base: 2.5, Step: 0.5, Percent: true},
		"DEF%":                {Base: 4, Step: 0.8, Percent: true},
		"CRIT Rate":           {Base: 2, Step: 0.4, Percent: true},
		"CRIT DMG":            {Base: 4, Step: 0.8, Percent: true},
		"Anomaly Proficiency": {Base: 8, Step: 1.6},
		"Anomaly Mastery":     {Base: 2.5, Step: 0.5, Percent: true},
		"PEN Ratio":           {Base: 2, Step: 0.4, Percent: true},
		"Impact":              {Base: 1.5, Step: 0.3, Percent: true},
		"Energy Regen":        {Base: 5, Step: 1, Percent: true},
		"Physical DMG Bonus":  {Base: 2.5, Step: 0.5, Percent: true},
		"Fire DMG Bonus":      {Base: 2.5, Step: 0.5, Percent: true},
		"Ice DMG Bonus":       {Base: 2.5, Step: 0.5, Percent: true},
		"Electric DMG Bonus":  {Base: 2.5, Step: 0.5, Percent: true},
		"Ether DMG Bonus":     {Base: 2.5, Step: 0.5, Percent: true},
	},
}

// Every sub stat upgrade adds the same amount as the initial roll, so the
// step equals the base for each entry.
var subProgression = map[Rarity]SubStatTable{
	RarityS: {
		"HP":                  {Base: 112, Step: 112},
		"ATK":                 {Base: 19, Step: 19},
		"DEF":                 {Base: 15, Step: 15},
		"HP%":                 {Base: 3, Step: 3, Percent: true},
		"ATK%":                {Base: 3, Step: 3, Percent: true},
		"DEF%":                {Base: 4.8, Step: 4.8, Percent: true},
		"CRIT Rate":           {Base: 2.4, Step: 2.4, Percent: true},
		"CRIT DMG":            {Base: 4.8, Step: 4.8, Percent: true},
		"PEN":                 {Base: 9, Step: 9},
		"Anomaly Proficiency": {Base: 9, Step: 9},
	},
	RarityA: {
		"HP":                  {Base: 75, Step: 75},
		"ATK":                 {Base: 13, Step: 13},
		"DEF":                 {Base: 10, Step: 10},
		"HP%":                 {Base: 2, Step: 2, Percent: true},
		"ATK%":                {Base: 2, Step: 2, Percent: true},
		"DEF%":                {Base: 3.2, Step: 3.2, Percent: true},
		"CRIT Rate":           {Base: 1.6, Step: 1.6, Percent: true},
		"CRIT DMG":            {Base: 3.2, Step: 3.2, Percent: true},
		"PEN":                 {Base: 6, Step: 6},
		"Anomaly Proficiency": {Base: 6, Step: 6},
	},
	RarityB: {
		"HP":                  {Base: 39, Step: 39},
		"ATK":                 {Base: 7, Step: 7},
		"DEF":                 {Base: 5, Step: 5},
		"HP%":                 {Base: 1, Step: 1, Percent: true},
		"ATK%":                {Base: 1, Step: 1, Percent: true},
		"DEF%":                {Base: 1.6, Step: 1.6, Percent: true},
		"CRIT Rate":           {Base: 0.8, Step: 0.8, Percent: true},
		"CRIT DMG":            {Base: 1.6, Step: 1.6, Percent: true},
		"PEN":                 {Base: 3, Step: 3},
		"Anomaly Proficiency": {Base: 3, Step: 3},
	},
}
