// Command scan drives a full scan run: it consumes the queue file the UI
// driver appends to, runs every frame through preprocessing, OCR and
// correction, and writes the aggregate report as JSON.
//
// Usage:
//
//	go run ./process/scan -feed scan_input/scan_queue.txt -out scan_output/scan_data.json
//	some-driver | go run ./process/scan -stdin
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"

	"zzzscanner/models"
	"zzzscanner/pkg/catalog"
	"zzzscanner/pkg/ocr"
	"zzzscanner/pkg/scanner"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	feed := flag.String("feed", "scan_input/scan_queue.txt", "queue file the UI driver appends image paths to")
	stdin := flag.Bool("stdin", false, "read queue tokens from stdin instead of tailing -feed")
	out := flag.String("out", "scan_output/scan_data.json", "path for the aggregate report JSON")
	targets := flag.String("targets", "assets/targets", "directory holding the icon template images")
	workdir := flag.String("workdir", os.TempDir(), "directory for preprocessed frames")
	save := flag.Bool("save", false, "also persist the run to Postgres (needs DB_DSN)")
	flag.Parse()

	_ = godotenv.Load()

	cat := catalog.New()
	prep := ocr.NewPreprocess(*targets, *workdir)
	orch := scanner.NewOrchestrator(cat, ocr.NewEngine(), prep)

	queue := make(chan scanner.WorkItem, 64)
	feedErr := make(chan error, 1)
	go func() {
		defer close(queue)
		if *stdin {
			feedErr <- scanner.ReadFeed(os.Stdin, queue)
		} else {
			feedErr <- scanner.TailFeed(*feed, queue)
		}
	}()

	report, err := orch.Run(queue)
	if err != nil {
		log.Fatalf("scan aborted: %v", err)
	}
	if err := <-feedErr; err != nil {
		log.Printf("feed warning: %v", err)
	}

	if err := writeReport(*out, report); err != nil {
		log.Fatalf("write report: %v", err)
	}
	log.Printf("Scan complete: %d disks, %d w-engines, %d agents -> %s",
		len(report.DiskData), len(report.WEngineData), len(report.CharacterData), *out)

	if *save {
		if err := persistRun(report); err != nil {
			log.Fatalf("persist run: %v", err)
		}
	}
}

func writeReport(path string, report *scanner.Report) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(report, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func persistRun(report *scanner.Report) error {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN not set; -save needs a Postgres DSN")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}
	run := models.ScanRun{
		Source:         "cli",
		DiskCount:      len(report.DiskData),
		WEngineCount:   len(report.WEngineData),
		CharacterCount: len(report.CharacterData),
		Payload:        payload,
	}
	if err := db.Create(&run).Error; err != nil {
		return err
	}
	log.Printf("Saved scan run id=%d", run.ID)
	return nil
}
