package segmenta

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.CanvasWidth != 1654 || config.CanvasHeight != 2339 {
		t.Errorf("canvas = %gx%g, want 1654x2339", config.CanvasWidth, config.CanvasHeight)
	}
	if config.Padding != 3 {
		t.Errorf("padding = %g, want 3", config.Padding)
	}
	if config.OCRLanguage != "eng" {
		t.Errorf("language = %q, want eng", config.OCRLanguage)
	}
	if config.TableCaptionToken != "Table" || config.FigureCaptionToken != "Figure" {
		t.Errorf("caption tokens = %q/%q", config.TableCaptionToken, config.FigureCaptionToken)
	}
	if config.AbstractToken != "abstract" || config.KeywordsToken != "keywords" {
		t.Errorf("scan tokens = %q/%q", config.AbstractToken, config.KeywordsToken)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "segmenta.yaml")
	content := `
padding: 5
ocr_language: eng+deu
table_caption_token: Tabelle
records_path: /data/records.csv
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	// Named fields are overridden.
	if config.Padding != 5 {
		t.Errorf("padding = %g, want 5", config.Padding)
	}
	if config.OCRLanguage != "eng+deu" {
		t.Errorf("language = %q, want eng+deu", config.OCRLanguage)
	}
	if config.TableCaptionToken != "Tabelle" {
		t.Errorf("table caption token = %q, want Tabelle", config.TableCaptionToken)
	}
	if config.RecordsPath != "/data/records.csv" {
		t.Errorf("records path = %q", config.RecordsPath)
	}

	// Unnamed fields keep their defaults.
	if config.CanvasWidth != 1654 || config.CanvasHeight != 2339 {
		t.Errorf("canvas = %gx%g, want defaults", config.CanvasWidth, config.CanvasHeight)
	}
	if config.FigureCaptionToken != "Figure" {
		t.Errorf("figure caption token = %q, want default", config.FigureCaptionToken)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadConfig() succeeded on a missing file")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "segmenta.yaml")
	if err := os.WriteFile(path, []byte("padding: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() succeeded on malformed yaml")
	}
}
