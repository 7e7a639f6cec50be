package ocr

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func TestCinemaCountsLockedIcons(t *testing.T) {
	targetDir := t.TempDir()
	workDir := t.TempDir()

	tpl := checkerboard(8, 8)
	if err := imaging.Save(tpl, filepath.Join(targetDir, "zzz-mindscape-locked-3-1080p.png")); err != nil {
		t.Fatalf("save template: %v", err)
	}

	scene := solid(40, 40, 0)
	paste(scene, tpl, image.Point{X: 10, Y: 10})
	scenePath := filepath.Join(workDir, "cinema.png")
	if err := imaging.Save(scene, scenePath); err != nil {
		t.Fatalf("save scene: %v", err)
	}

	p := NewPreprocess(targetDir, workDir)
	mindscape, err := p.Cinema(scenePath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Mindscape 3 locked means exactly two are unlocked.
	if mindscape != 2 {
		t.Fatalf("mindscape: got %d want 2", mindscape)
	}
}

func TestCinemaAllUnlocked(t *testing.T) {
	targetDir := t.TempDir()
	workDir := t.TempDir()

	if err := imaging.Save(checkerboard(8, 8), filepath.Join(targetDir, "zzz-mindscape-locked-1-1080p.png")); err != nil {
		t.Fatalf("save template: %v", err)
	}
	scenePath := filepath.Join(workDir, "cinema.png")
	if err := imaging.Save(solid(40, 40, 0), scenePath); err != nil {
		t.Fatalf("save scene: %v", err)
	}

	p := NewPreprocess(targetDir, workDir)
	mindscape, err := p.Cinema(scenePath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mindscape != 6 {
		t.Fatalf("mindscape: got %d want 6", mindscape)
	}
}

func TestDiskProducesProcessedImage(t *testing.T) {
	// No templates on disk: the icon blackout is skipped but the binarize and
	// downscale output must still land in the work dir.
	workDir := t.TempDir()
	src := solid(500, 300, 40)
	paste(src, solid(100, 60, 230), image.Point{X: 50, Y: 50})
	srcPath := filepath.Join(workDir, "drive.png")
	if err := imaging.Save(src, srcPath); err != nil {
		t.Fatalf("save source: %v", err)
	}

	p := NewPreprocess(t.TempDir(), workDir)
	out, err := p.Disk(srcPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer os.Remove(out)

	img, err := imaging.Open(out)
	if err != nil {
		t.Fatalf("open processed image: %v", err)
	}
	if img.Bounds().Dx() != targetWidth {
		t.Fatalf("processed width: got %d want %d", img.Bounds().Dx(), targetWidth)
	}
}

func TestWEngineDefaultsRankWithoutTemplates(t *testing.T) {
	workDir := t.TempDir()
	srcPath := filepath.Join(workDir, "wengine.png")
	if err := imaging.Save(solid(200, 100, 128), srcPath); err != nil {
		t.Fatalf("save source: %v", err)
	}

	p := NewPreprocess(t.TempDir(), workDir)
	out, rank, err := p.WEngine(srcPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer os.Remove(out)
	if rank != 1 {
		t.Fatalf("rank: got %d want 1", rank)
	}
}
