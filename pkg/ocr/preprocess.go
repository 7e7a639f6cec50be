package ocr

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const (
	// Downscaling to this width keeps capital letters near the 20px height
	// Tesseract likes best.
	targetWidth = 384

	rarityIconThreshold = 0.8
	lockedIconThreshold = 0.9

	// The agent portrait next to a drive has no fixed template; its box is
	// the rarity icon box scaled up and pushed to the right edge.
	agentIconSizeModifier = 1.5
)

// Rarity icon templates, both capture resolutions.
var rarityIconFiles = []string{
	"zzz-disk-drive-S-icon.png",
	"zzz-disk-drive-S-icon-1080p.png",
	"zzz-disk-drive-A-icon.png",
	"zzz-disk-drive-A-icon-1080p.png",
	"zzz-disk-drive-B-icon.png",
	"zzz-disk-drive-B-icon-1080p.png",
}

var lockedIconSuffixes = []string{"-1440p", "-1080p"}

// Preprocess cleans raw captures for Tesseract. TargetDir holds the icon
// templates matched against screenshots; WorkDir receives the processed temp
// images (empty means the system temp dir).
type Preprocess struct {
	TargetDir string
	WorkDir   string

	templates map[string]*grayGrid
}

// NewPreprocess builds a preprocessor over the given template directory.
func NewPreprocess(targetDir, workDir string) *Preprocess {
	return &Preprocess{TargetDir: targetDir, WorkDir: workDir, templates: map[string]*grayGrid{}}
}

// Disk binarizes a drive detail crop, blacks out the rarity icon and the
// agent portrait next to it (both confuse Tesseract into phantom glyphs), and
// downscales the result.
func (p *Preprocess) Disk(path string) (string, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	bin := binarizeOtsu(img)
	if tpl, score, loc := p.bestTemplate(gridFrom(bin), rarityIconFiles); tpl != nil && score > rarityIconThreshold {
		blackout(bin, image.Rect(loc.X, loc.Y, loc.X+tpl.w, loc.Y+tpl.h))
		aw := int(float64(tpl.w) * agentIconSizeModifier)
		ah := int(float64(tpl.h) * agentIconSizeModifier)
		ax := bin.Bounds().Dx() - aw
		ay := loc.Y - (ah-tpl.h)/2
		blackout(bin, image.Rect(ax, ay, ax+aw, ay+ah))
	}
	return p.save("disk", resizeToWidth(bin, targetWidth))
}

// WEngine binarizes a wengine crop and detects the upgrade rank by matching
// the rank badge templates; no badge above threshold means rank 1.
func (p *Preprocess) WEngine(path string) (string, int, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("open image: %w", err)
	}
	rank := 1
	bestScore := 0.0
	grid := gridFrom(img)
	for r := 1; r <= 5; r++ {
		for _, suffix := range append([]string{""}, lockedIconSuffixes...) {
			tpl, err := p.template(fmt.Sprintf("zzz-wengine-rank-%d%s.png", r, suffix))
			if err != nil {
				continue
			}
			if score, _ := matchTemplate(grid, tpl); score > rarityIconThreshold && score > bestScore {
				bestScore = score
				rank = r
			}
		}
	}
	out, err := p.save("wengine", resizeToWidth(binarizeOtsu(img), targetWidth))
	return out, rank, err
}

// Simple binarizes and downscales, with no region surgery. Used for the
// agent name crop.
func (p *Preprocess) Simple(path string) (string, error) {
	return p.plain("simple", path)
}

// Level cleans the agent level crop.
func (p *Preprocess) Level(path string) (string, error) {
	return p.plain("level", path)
}

// Weapon cleans the equipped wengine crop.
func (p *Preprocess) Weapon(path string) (string, error) {
	return p.plain("weapon", path)
}

// Skill cleans a skill crop. The core skill panel carries a play button that
// OCRs as a stray glyph, so it gets blacked out when its template matches.
func (p *Preprocess) Skill(path string, core bool) (string, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	bin := binarizeOtsu(img)
	if core {
		if tpl, score, loc := p.bestTemplate(gridFrom(bin), []string{"zzz-core-play-icon.png", "zzz-core-play-icon-1080p.png"}); tpl != nil && score > rarityIconThreshold {
			blackout(bin, image.Rect(loc.X, loc.Y, loc.X+tpl.w, loc.Y+tpl.h))
		}
	}
	return p.save("skill", resizeToWidth(bin, targetWidth))
}

// Cinema reads the mindscape level straight off the cinema screen: the
// templates are the locked mindscape icons 1..5, and the first one found
// marks where the unlocks stop. No locked icon means all six are open.
func (p *Preprocess) Cinema(path string) (int, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open image: %w", err)
	}
	grid := gridFrom(img)
	for i := 1; i <= 5; i++ {
		for _, suffix := range lockedIconSuffixes {
			tpl, err := p.template(fmt.Sprintf("zzz-mindscape-locked-%d%s.png", i, suffix))
			if err != nil {
				continue
			}
			if score, _ := matchTemplate(grid, tpl); score > lockedIconThreshold {
				return i - 1, nil
			}
		}
	}
	return 6, nil
}

func (p *Preprocess) plain(kind, path string) (string, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	return p.save(kind, resizeToWidth(binarizeOtsu(img), targetWidth))
}

// template loads (and caches) an icon template from TargetDir.
func (p *Preprocess) template(name string) (*grayGrid, error) {
	if tpl, ok := p.templates[name]; ok {
		return tpl, nil
	}
	img, err := imaging.Open(filepath.Join(p.TargetDir, name))
	if err != nil {
		return nil, err
	}
	tpl := gridFrom(img)
	p.templates[name] = tpl
	return tpl, nil
}

func (p *Preprocess) bestTemplate(grid *grayGrid, names []string) (*grayGrid, float64, image.Point) {
	var bestTpl *grayGrid
	bestScore := 0.0
	var bestLoc image.Point
	for _, name := range names {
		tpl, err := p.template(name)
		if err != nil {
			continue
		}
		if score, loc := matchTemplate(grid, tpl); score > bestScore {
			bestTpl, bestScore, bestLoc = tpl, score, loc
		}
	}
	return bestTpl, bestScore, bestLoc
}

func (p *Preprocess) save(kind string, img image.Image) (string, error) {
	f, err := os.CreateTemp(p.WorkDir, "zzz-"+kind+"-*.png")
	if err != nil {
		return "", err
	}
	tmp := f.Name()
	_ = f.Close()
	if err := imaging.Save(img, tmp); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("save processed image: %w", err)
	}
	return tmp, nil
}

func binarizeOtsu(img image.Image) *image.NRGBA {
	gray := imaging.Grayscale(img)
	return binarize(gray, otsuThreshold(gridFrom(gray)))
}

func resizeToWidth(img image.Image, width int) image.Image {
	if img.Bounds().Dx() <= width {
		return img
	}
	return imaging.Resize(img, width, 0, imaging.Lanczos)
}
