// Package scanner turns raw OCR line output from the game's equipment and
// agent screens into corrected, validated records. It covers the fuzzy
// correction utilities, the line-stream parsers, the metadata reconciler, the
// disk validator and the queue-driven scan orchestrator; the OCR engine and
// image preprocessing are collaborators behind the OCREngine and Preprocessor
// interfaces.
package scanner

import "zzzscanner/pkg/catalog"

// StatPair re-exports the catalog pair type used for random stats.
type StatPair = catalog.StatPair

// DiskRecord is one disk drive as parsed off a detail screen. Level fields
// stay as the digit strings OCR produced; missing fields are empty strings.
type DiskRecord struct {
	SetName         string         `json:"set_name"`
	PartitionNumber int            `json:"partition_number"`
	Rarity          catalog.Rarity `json:"rarity"`
	CurrentLevel    string         `json:"current_level"`
	MaxLevel        string         `json:"max_level"`
	BaseStatName    string         `json:"base_stat_name"`
	BaseStatValue   string         `json:"base_stat_value"`
	RandomStats     []StatPair     `json:"random_stats"`
}

// EngineRecord is one wengine (weapon) as parsed off its detail screen.
type EngineRecord struct {
	Name         string `json:"name"`
	CurrentLevel string `json:"current_level"`
	MaxLevel     string `json:"max_level"`
	UpgradeRank  int    `json:"upgrade_rank"`
}

// SkillLevels holds the six agent skill levels. Core is capped at 7 in game,
// the others at 16.
type SkillLevels struct {
	BasicAttack   string `json:"basic_attack"`
	Dodge         string `json:"dodge"`
	Assist        string `json:"assist"`
	SpecialAttack string `json:"special_attack"`
	ChainAttack   string `json:"chain_attack"`
	Core          string `json:"core"`
}

// CharacterRecord is one agent assembled from its scan images. The weapon
// image is the last item for an agent, so its arrival completes the record.
type CharacterRecord struct {
	Name           string              `json:"name"`
	Level          string              `json:"level"`
	MaxLevel       string              `json:"max_level"`
	SkillLevels    SkillLevels         `json:"skill_levels"`
	MindscapeLevel int                 `json:"mindscape_level"`
	WeaponName     string              `json:"weapon_name"`
	EquippedDisks  map[int]*DiskRecord `json:"equipped_disks"`
}

// Report is the aggregate written once at the end of a scan run.
type Report struct {
	DiskData      []*DiskRecord      `json:"disk_data"`
	WEngineData   []*EngineRecord    `json:"wengine_data"`
	CharacterData []*CharacterRecord `json:"character_data"`
}

// Category is the scan category a queue marker switches the orchestrator to.
type Category string

const (
	CategoryDisk      Category = "Disk"
	CategoryWEngine   Category = "WEngine"
	CategoryCharacter Category = "Character"
)

// ItemKind discriminates work queue items.
type ItemKind int

const (
	KindImage ItemKind = iota
	KindMarker
	KindDone
	KindFatal
)

// CharacterPart identifies which slice of an agent an image captures. The
// producer classifies paths once at the queue boundary so the consumer never
// string-matches paths itself.
type CharacterPart int

const (
	PartNone CharacterPart = iota
	PartName
	PartLevel
	PartSkill
	PartWeapon
	PartCinema
	PartDisk
)

// WorkItem is one unit pulled off the scan queue: a category marker, an image
// path with its classification, the terminal Done token, or a fatal upstream
// error message.
type WorkItem struct {
	Kind      ItemKind
	Category  Category // markers only
	Path      string   // image path, or the upstream error text for KindFatal
	Part      CharacterPart
	SkillKey  string // PartSkill only, e.g. "basic_attack"
	Partition int    // PartDisk only
}
