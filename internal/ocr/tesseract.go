package ocr

import (
	"context"
	"log"
	"os"
	"os/exec"
	"strings"
)

// psmConfigs are the page-segmentation modes tried against every image.
// Product labels vary wildly (dense blocks, single lines, sparse text), so
// each mode gets a shot and the longest output wins.
var psmConfigs = [][]string{
	{"--oem", "1", "--psm", "6"},  // uniform text block
	{"--oem", "1", "--psm", "3"},  // automatic
	{"--oem", "1", "--psm", "4"},  // single column
	{"--oem", "1", "--psm", "11"}, // sparse text
}

// TesseractRecognizer runs the tesseract CLI against image bytes. It
// implements vision.Recognizer. Total failure yields an empty string, not an
// error the core has to handle.
type TesseractRecognizer struct {
	lang string
}

func NewTesseractRecognizer() *TesseractRecognizer {
	return &TesseractRecognizer{lang: "eng"}
}

func (t *TesseractRecognizer) RecognizeText(ctx context.Context, image []byte) (string, error) {
	tmp, err := os.CreateTemp("", "label-*.png")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(image); err != nil {
		_ = tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	best := ""
	for _, cfg := range psmConfigs {
		args := append([]string{tmp.Name(), "stdout", "-l", t.lang}, cfg...)
		out, err := exec.CommandContext(ctx, "tesseract", args...).Output()
		if err != nil {
			continue
		}
		if text := string(out); len(strings.TrimSpace(text)) > len(strings.TrimSpace(best)) {
			best = text
		}
	}

	log.Printf("OCR_DONE text_length=%d", len(best))
	return best, nil
}

// Available reports whether the tesseract binary can be executed. Used by
// the vision health endpoint.
func (t *TesseractRecognizer) Available() error {
	if _, err := exec.LookPath("tesseract"); err != nil {
		return err
	}
	return exec.Command("tesseract", "--version").Run()
}
