package scanner

import (
	"fmt"
	"log"

	"zzzscanner/pkg/catalog"
)

// OCREngine scans a preprocessed image into its ordered, non-empty text
// lines. A failure is caught per item and counted toward the consecutive
// failure threshold, never propagated out of the run loop.
type OCREngine interface {
	ScanLines(path string) ([]string, error)
}

// Preprocessor cleans a raw capture for OCR, returning the path of the
// processed image. WEngine also detects the upgrade rank from the star row;
// Cinema skips OCR entirely and reads the mindscape level off the locked-icon
// templates.
type Preprocessor interface {
	Disk(path string) (string, error)
	WEngine(path string) (string, int, error)
	Simple(path string) (string, error)
	Level(path string) (string, error)
	Skill(path string, core bool) (string, error)
	Weapon(path string) (string, error)
	Cinema(path string) (int, error)
}

// More consecutive failures than this means the UI driver is racing the game
// client (screenshots taken before the screen settled), not bad item data.
const maxConsecutiveFailures = 10

// Orchestrator drains the scan work queue: markers switch the active
// category, image items run through preprocess, OCR, parse, reconcile and
// (for disks) validate, and the survivors accumulate into the final report.
type Orchestrator struct {
	cat  *catalog.Catalog
	rec  *Reconciler
	ocr  OCREngine
	prep Preprocessor
}

// NewOrchestrator wires the pipeline over the shared catalog and the OCR and
// preprocessing collaborators.
func NewOrchestrator(cat *catalog.Catalog, ocr OCREngine, prep Preprocessor) *Orchestrator {
	return &Orchestrator{cat: cat, rec: NewReconciler(cat), ocr: ocr, prep: prep}
}

// Run consumes the queue until the Done token arrives or the producer closes
// the channel, and returns the aggregate report. It blocks on an empty queue;
// ordering is significant because markers interleaved with image paths drive
// the category state. Only an upstream fatal token or crossing the
// consecutive failure threshold abort the run.
func (o *Orchestrator) Run(queue <-chan WorkItem) (*Report, error) {
	report := &Report{}
	var (
		category Category
		failures int
		itemNum  int
		pending  *CharacterRecord
	)

	for item := range queue {
		switch item.Kind {
		case KindDone:
			if pending != nil {
				log.Printf("Scan ended with an incomplete agent record, discarding it")
			}
			log.Printf("Finished processing scan queue")
			return report, nil
		case KindFatal:
			log.Printf("Upstream failure: %s", item.Path)
			return nil, fmt.Errorf("%w: %s", ErrUpstreamFailure, item.Path)
		case KindMarker:
			category = item.Category
			failures = 0
			continue
		}

		var err error
		switch category {
		case CategoryDisk:
			err = o.handleDisk(report, item, itemNum)
		case CategoryWEngine:
			err = o.handleWEngine(report, item, itemNum)
		case CategoryCharacter:
			if pending == nil {
				pending = &CharacterRecord{}
			}
			var complete bool
			complete, err = o.handleCharacterPart(pending, item)
			if err == nil && complete {
				report.CharacterData = append(report.CharacterData, pending)
				pending = nil
			}
		default:
			err = fmt.Errorf("image %s arrived before any category marker", item.Path)
		}
		if err != nil {
			failures++
			log.Printf("Error analyzing %s item #%d (%s), skipping it: %v", category, itemNum, item.Path, err)
			if failures > maxConsecutiveFailures {
				log.Printf("Over %d consecutive errors, stopping - try increasing the time between scans", maxConsecutiveFailures)
				return nil, ErrTooManyFailures
			}
			continue
		}
		failures = 0
		itemNum++
	}

	// Producer closed the channel without a Done token; everything processed
	// so far is still a usable report.
	log.Printf("Scan queue closed, finishing up")
	return report, nil
}

func (o *Orchestrator) handleDisk(report *Report, item WorkItem, n int) error {
	log.Printf("Processing disk drive #%d at %s", n, item.Path)
	rec, err := o.scanDisk(item.Path, item.Partition)
	if err != nil {
		return err
	}
	if ok, reason := ValidateDisk(o.cat, rec); !ok {
		// A rejection is a successfully processed item, not an error; it
		// must not feed the consecutive failure counter.
		log.Printf("Disk drive #%d failed validation, skipping: %s", n, reason)
		return nil
	}
	report.DiskData = append(report.DiskData, rec)
	return nil
}

func (o *Orchestrator) handleWEngine(report *Report, item WorkItem, n int) error {
	log.Printf("Processing wengine #%d at %s", n, item.Path)
	processed, rank, err := o.prep.WEngine(item.Path)
	if err != nil {
		return err
	}
	lines, err := o.ocr.ScanLines(processed)
	if err != nil {
		return err
	}
	rec, err := ParseWEngineLines(lines, rank)
	if err != nil {
		return err
	}
	if err := o.rec.Engine(rec); err != nil {
		return err
	}
	// No validation step for wengines: correction already forces every field
	// into range, so a validator could never reject one.
	report.WEngineData = append(report.WEngineData, rec)
	return nil
}

// handleCharacterPart folds one agent image into the record under assembly.
// The weapon crop is the last capture the UI driver takes for an agent, so
// its arrival completes the record.
func (o *Orchestrator) handleCharacterPart(pending *CharacterRecord, item WorkItem) (bool, error) {
	switch item.Part {
	case PartName:
		lines, err := o.scanSimple(o.prep.Simple, item.Path)
		if err != nil {
			return false, err
		}
		pending.Name = ParseCharacterName(o.cat, lines)
	case PartLevel:
		lines, err := o.scanSimple(o.prep.Level, item.Path)
		if err != nil {
			return false, err
		}
		pending.Level, pending.MaxLevel = ParseCharacterLevel(lines)
	case PartSkill:
		core := item.SkillKey == "core"
		processed, err := o.prep.Skill(item.Path, core)
		if err != nil {
			return false, err
		}
		lines, err := o.ocr.ScanLines(processed)
		if err != nil {
			return false, err
		}
		level, err := ParseSkillLevel(lines, core)
		if err != nil {
			return false, err
		}
		if err := setSkillLevel(&pending.SkillLevels, item.SkillKey, level); err != nil {
			return false, err
		}
	case PartWeapon:
		lines, err := o.scanSimple(o.prep.Weapon, item.Path)
		if err != nil {
			return false, err
		}
		pending.WeaponName = ParseCharacterWeapon(o.cat, lines)
		return true, nil
	case PartCinema:
		mindscape, err := o.prep.Cinema(item.Path)
		if err != nil {
			return false, err
		}
		pending.MindscapeLevel = mindscape
	case PartDisk:
		rec, err := o.scanDisk(item.Path, item.Partition)
		if err != nil {
			return false, err
		}
		if ok, reason := ValidateDisk(o.cat, rec); !ok {
			log.Printf("Equipped disk in partition %d failed validation, leaving the slot empty: %s", item.Partition, reason)
			rec = nil
		}
		if pending.EquippedDisks == nil {
			pending.EquippedDisks = map[int]*DiskRecord{}
		}
		pending.EquippedDisks[item.Partition] = rec
	default:
		return false, fmt.Errorf("unclassified agent image %s", item.Path)
	}
	return false, nil
}

// scanDisk is the shared disk pipeline, used both for standalone drives and
// for the drives equipped on an agent.
func (o *Orchestrator) scanDisk(path string, partition int) (*DiskRecord, error) {
	processed, err := o.prep.Disk(path)
	if err != nil {
		return nil, err
	}
	lines, err := o.ocr.ScanLines(processed)
	if err != nil {
		return nil, err
	}
	rec, err := ParseDiskLines(lines, partition)
	if err != nil {
		return nil, err
	}
	if err := o.rec.Disk(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (o *Orchestrator) scanSimple(prep func(string) (string, error), path string) ([]string, error) {
	processed, err := prep(path)
	if err != nil {
		return nil, err
	}
	return o.ocr.ScanLines(processed)
}

func setSkillLevel(s *SkillLevels, key, level string) error {
	switch key {
	case "basic_attack":
		s.BasicAttack = level
	case "dodge":
		s.Dodge = level
	case "assist":
		s.Assist = level
	case "special_attack":
		s.SpecialAttack = level
	case "chain_attack":
		s.ChainAttack = level
	case "core":
		s.Core = level
	default:
		return fmt.Errorf("unknown skill key %q", key)
	}
	return nil
}
