package segmenta

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/segmenta/detect"
	"github.com/tsawler/segmenta/geom"
)

// Config holds the engine's tunable assumptions. The zero value is not
// usable; start from DefaultConfig or LoadConfig and override fields as
// needed. There is no package-level state: every Engine carries its own
// Config.
type Config struct {
	// CanvasWidth and CanvasHeight are the pixel dimensions of the
	// reference canvas the OCR engine rasterized pages at. All pixel-space
	// geometry in the record table is expressed on this canvas.
	CanvasWidth  float64 `yaml:"canvas_width"`
	CanvasHeight float64 `yaml:"canvas_height"`

	// Padding is the outward margin in points applied when converting a
	// block's pixel box to point space for text extraction.
	Padding float64 `yaml:"padding"`

	// OCRLanguage and OCRPageSegMode configure the OCR client when pages
	// are recognized by this process rather than loaded from a file.
	// OCRLanguage accepts "+"-separated language codes ("eng", "eng+fra").
	OCRLanguage    string `yaml:"ocr_language"`
	OCRPageSegMode int    `yaml:"ocr_page_seg_mode"`

	// TableCaptionToken and FigureCaptionToken are the literal,
	// case-sensitive substrings marking caption records next to detected
	// regions.
	TableCaptionToken  string `yaml:"table_caption_token"`
	FigureCaptionToken string `yaml:"figure_caption_token"`

	// AbstractToken and KeywordsToken drive the first-page scans. Matching
	// is case-insensitive; supply them lower-case.
	AbstractToken string `yaml:"abstract_token"`
	KeywordsToken string `yaml:"keywords_token"`

	// RecordsPath and SegmentsPath are the default input and output file
	// locations used by the command-line front end. The library API ignores
	// them.
	RecordsPath  string `yaml:"records_path"`
	SegmentsPath string `yaml:"segments_path"`
}

// DefaultConfig returns the configuration matching a 200 DPI OCR run over
// A4 pages of an English academic paper.
func DefaultConfig() Config {
	return Config{
		CanvasWidth:        geom.DefaultMapperConfig().CanvasWidth,
		CanvasHeight:       geom.DefaultMapperConfig().CanvasHeight,
		Padding:            geom.DefaultMapperConfig().Padding,
		OCRLanguage:        "eng",
		OCRPageSegMode:     3,
		TableCaptionToken:  "Table",
		FigureCaptionToken: "Figure",
		AbstractToken:      "abstract",
		KeywordsToken:      "keywords",
	}
}

// LoadConfig reads a YAML config file over the defaults, so a file needs to
// name only the fields it changes.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return config, nil
}

func (c Config) mapperConfig() geom.MapperConfig {
	return geom.MapperConfig{
		CanvasWidth:  c.CanvasWidth,
		CanvasHeight: c.CanvasHeight,
		Padding:      c.Padding,
	}
}

func (c Config) matcherConfig() geom.MatcherConfig {
	return geom.MatcherConfig{
		TableCaptionToken:  c.TableCaptionToken,
		FigureCaptionToken: c.FigureCaptionToken,
	}
}

func (c Config) detectConfig() detect.Config {
	return detect.Config{
		AbstractToken: c.AbstractToken,
		KeywordsToken: c.KeywordsToken,
	}
}
