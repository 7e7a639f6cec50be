package main

import (
	"flag"
	"fmt"
	"log"

	"zzzscanner/pkg/ocr"
)

func main() {
	f := flag.String("file", "", "image file to OCR")
	flag.Parse()
	if *f == "" {
		log.Fatalf("-file required")
	}
	lines, err := ocr.NewEngine().ScanLines(*f)
	if err != nil {
		log.Fatalf("ocr error: %v", err)
	}
	for i, line := range lines {
		fmt.Printf("%2d: %q\n", i, line)
	}
}
