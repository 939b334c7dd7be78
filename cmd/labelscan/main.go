// labelscan runs the expiry-date pipeline against a local image,
// useful for checking tesseract output without starting the API.
//
//	labelscan photo.jpg
//	labelscan -lot photo.jpg
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gateapp/internal/ocr"
	"gateapp/internal/vision"
)

func main() {
	lotOnly := flag.Bool("lot", false, "extract only the LOT number")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: labelscan [-lot] <image-file>")
		os.Exit(2)
	}

	recognizer := ocr.NewTesseractRecognizer()
	if err := recognizer.Available(); err != nil {
		log.Fatalf("tesseract not available: %v", err)
	}

	image, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("read image: %v", err)
	}

	service := vision.NewService(recognizer)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var out any
	if *lotOnly {
		out = service.ExtractLotFromImage(ctx, image)
	} else {
		out = service.ProcessExpiryImage(ctx, image)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("encode result: %v", err)
	}
}
