package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"zzzscanner/pkg/ocr"
)

func main() {
	file := flag.String("file", "", "disk screenshot to preprocess")
	targets := flag.String("targets", "assets/targets", "icon template directory")
	keep := flag.Bool("keep", false, "keep the preprocessed frame instead of deleting it")
	flag.Parse()
	if *file == "" {
		log.Fatalf("-file required")
	}
	prep := ocr.NewPreprocess(*targets, os.TempDir())
	out, err := prep.Disk(*file)
	if err != nil {
		log.Fatalf("preprocess: %v", err)
	}
	fmt.Printf("preprocessed -> %s\n", out)
	lines, err := ocr.NewEngine().ScanLines(out)
	if !*keep {
		defer os.Remove(out)
	}
	if err != nil {
		log.Fatalf("ocr err: %v", err)
	}
	for i, line := range lines {
		fmt.Printf("%2d: %q\n", i, line)
	}
}
