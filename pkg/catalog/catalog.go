// Package catalog holds the static reference data for drive, wengine and
// agent scans: the known-good names OCR output is corrected against, and the
// stat progression tables used to recompute expected stat values.
package catalog

// Rarity is the quality tier of a disk drive.
type Rarity string

const (
	RarityB       Rarity = "B"
	RarityA       Rarity = "A"
	RarityS       Rarity = "S"
	RarityUnknown Rarity = ""
)

// StatPair is one (stat name, stat value) entry as read from a drive.
type StatPair struct {
	Name  string `json:"stat_name"`
	Value string `json:"stat_value"`
}

// Catalog is the immutable reference data set. Build one with New at startup
// and share it by reference; nothing mutates it after construction.
type Catalog struct {
	SetNames           []string
	RandomStats        []string
	WeaponNames        []string
	CharacterNames     []string
	partitionMainStats map[int][]string
	mainProgression    map[Rarity]MainStatTable
	subProgression     map[Rarity]SubStatTable
}

// New builds the catalog.
func New() *Catalog {
	return &Catalog{
		SetNames:           setNames,
		RandomStats:        randomStatNames,
		WeaponNames:        weaponNames,
		CharacterNames:     characterNames,
		partitionMainStats: partitionMainStats,
		mainProgression:    mainProgression,
		subProgression:     subProgression,
	}
}

// MainStatsForPartition returns the valid main stat names for a partition
// slot (1..6), or nil for an unknown partition.
func (c *Catalog) MainStatsForPartition(partition int) []string {
	return c.partitionMainStats[partition]
}

// MainStatProgression returns the main stat progression table for a rarity,
// or nil when the rarity is unknown.
func (c *Catalog) MainStatProgression(r Rarity) MainStatTable {
	return c.mainProgression[r]
}

// SubStatProgression returns the random (sub) stat progression table for a
// rarity, or nil when the rarity is unknown.
func (c *Catalog) SubStatProgression(r Rarity) SubStatTable {
	return c.subProgression[r]
}

// RarityFromMaxLevel infers drive rarity from its max level: 9 is B rank,
// 12 is A rank and 15 is S rank. Anything else is unknown.
func RarityFromMaxLevel(maxLevel int) Rarity {
	switch maxLevel {
	case 9:
		return RarityB
	case 12:
		return RarityA
	case 15:
		return RarityS
	}
	return RarityUnknown
}

var setNames = []string{
	"Astral Voice",
	"Branch & Blade Song",
	"Chaos Jazz",
	"Chaotic Metal",
	"Fanged Metal",
	"Freedom Blues",
	"Hormone Punk",
	"Inferno Metal",
	"Polar Metal",
	"Proto Punk",
	"Puffer Electro",
	"Shockstar Disco",
	"Soul Rock",
	"Swing Jazz",
	"Thunder Metal",
	"Woodpecker Electro",
}

// Sub stat names are shared across all partitions. Percent variants are not
// listed separately; a % suffix is re-attached after correction when the OCR
// value carried one.
var randomStatNames = []string{
	"HP",
	"ATK",
	"DEF",
	"CRIT Rate",
	"CRIT DMG",
	"PEN",
	"Anomaly Proficiency",
}

// Valid main stats per partition slot. Slots 1-3 are fixed flat stats; for
// slots 4-6 the HP/ATK/DEF entries are the percent variants of those stats.
var partitionMainStats = map[int][]string{
	1: {"HP"},
	2: {"ATK"},
	3: {"DEF"},
	4: {"HP", "ATK", "DEF", "CRIT Rate", "CRIT DMG", "Anomaly Proficiency"},
	5: {"HP", "ATK", "DEF", "PEN Ratio", "Physical DMG Bonus", "Fire DMG Bonus", "Ice DMG Bonus", "Electric DMG Bonus", "Ether DMG Bonus"},
	6: {"HP", "ATK", "DEF", "Anomaly Mastery", "Impact", "Energy Regen"},
}

var weaponNames = []string{
	"Bashful Demon",
	"Big Cylinder",
	"Bunny Band",
	"Cannon Rotor",
	"Deep Sea Visitor",
	"Demara Battery Mark II",
	"Drill Rig - Red Axis",
	"Electro-Lip Gloss",
	"Fusion Compiler",
	"Gilded Blossom",
	"Hailstorm Shrine",
	"Hellfire Gears",
	"Housekeeper",
	"Ice-Jade Teapot",
	"Identity Base",
	"Identity Inflection",
	"Kaboom the Cannon",
	"Lunar Decrescent",
	"Lunar Noviluna",
	"Lunar Pleniluna",
	"Magnetic Storm Alpha",
	"Magnetic Storm Bravo",
	"Magnetic Storm Charlie",
	"Original Transmorpher",
	"Peacekeeper - Specialized",
	"Precious Fossilized Core",
	"Rainforest Gourmet",
	"Reverb Mark I",
	"Reverb Mark II",
	"Reverb Mark III",
	"Riot Suppressor Mark VI",
	"Roaring Ride",
	"Sharpened Stinger",
	"Six Shooter",
	"Slice of Time",
	"Spring Embrace",
	"Starlight Engine",
	"Starlight Engine Replica",
	"Steam Oven",
	"Steel Cushion",
	"Street Superstar",
	"The Brimstone",
	"The Restrained",
	"The Vault",
	"Tusks of Fury",
	"Unfettered Game Ball",
	"Vortex Arrow",
	"Vortex Hatchet",
	"Vortex Revolver",
	"Weeping Cradle",
	"Weeping Gemini",
	"Zanshin Herb Case",
}

var characterNames = []string{
	"Anby",
	"Anton",
	"Ben",
	"Billy",
	"Burnice",
	"Caesar",
	"Corin",
	"Ellen",
	"Grace",
	"Harumasa",
	"Jane",
	"Koleda",
	"Lighter",
	"Lucy",
	"Lycaon",
	"Miyabi",
	"Nekomata",
	"Nicole",
	"Piper",
	"Qingyi",
	"Rina",
	"Seth",
	"Soldier 11",
	"Soukaku",
	"Yanagi",
	"Zhu Yuan",
}
