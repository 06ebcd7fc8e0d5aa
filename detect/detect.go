// Package detect produces the initial, sparse segment list: it anchors the
// vector-level signals supplied by a [Provider] (table regions, image
// regions) and the first-page token scans (abstract, keywords) to OCR
// blocks. The fuzzy anchoring of outline labels and the title text is left
// to the engine, which owns warning accumulation for skipped segments.
package detect

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tsawler/segmenta/geom"
	"github.com/tsawler/segmenta/model"
)

// Config holds the tokens driving the first-page scans. Both scans
// lower-case and trim the record text before testing, so the tokens should
// be lower-case.
type Config struct {
	// AbstractToken marks the abstract block on the first page.
	// Default: "abstract".
	AbstractToken string

	// KeywordsToken marks the keywords block on the first page.
	// Default: "keywords".
	KeywordsToken string
}

// DefaultConfig returns the tokens of English academic papers.
func DefaultConfig() Config {
	return Config{
		AbstractToken: "abstract",
		KeywordsToken: "keywords",
	}
}

// Detector anchors vector-detected regions and token scans to OCR blocks.
type Detector struct {
	config  Config
	mapper  *geom.Mapper
	matcher *geom.Matcher
}

// NewDetector creates a detector with default configuration throughout.
func NewDetector() *Detector {
	return NewDetectorWithConfig(DefaultConfig(), geom.NewMapper(), geom.NewMatcher())
}

// NewDetectorWithConfig creates a detector with the specified token
// configuration, coordinate mapper and block matcher.
func NewDetectorWithConfig(config Config, mapper *geom.Mapper, matcher *geom.Matcher) *Detector {
	return &Detector{config: config, mapper: mapper, matcher: matcher}
}

// AbstractBlocks returns the blocks holding the abstract on page 1: the
// first block whose text contains the abstract token, plus the following
// record's block when the token stands alone (a bare "Abstract" heading
// precedes the abstract body). The scan stops at the first occurrence.
func (d *Detector) AbstractBlocks(records model.Records) []int {
	return d.tokenBlocks(records, d.config.AbstractToken)
}

// KeywordBlocks returns the blocks holding the keyword list on page 1,
// using the same rule as AbstractBlocks with the keywords token.
func (d *Detector) KeywordBlocks(records model.Records) []int {
	return d.tokenBlocks(records, d.config.KeywordsToken)
}

func (d *Detector) tokenBlocks(records model.Records, token string) []int {
	firstPage := records.ByPage(1)
	for i, r := range firstPage {
		text := strings.ToLower(strings.TrimSpace(r.Text))
		if !strings.Contains(text, token) {
			continue
		}

		set := map[int]bool{r.Block: true}
		if text == token && i+1 < len(firstPage) {
			set[firstPage[i+1].Block] = true
		}

		blocks := make([]int, 0, len(set))
		for b := range set {
			blocks = append(blocks, b)
		}
		sort.Ints(blocks)
		return blocks
	}
	return nil
}

// TableBlocks maps every table region the provider detects to the OCR
// blocks it covers, including adjacent caption blocks. The result maps
// 1-based page numbers to sorted block sets; pages without tables are
// absent.
func (d *Detector) TableBlocks(p Provider, records model.Records) (map[int][]int, error) {
	return d.regionBlocks(p, records, p.TableRegions, func(pageRecords model.Records, region model.Rect) []int {
		return d.matcher.BlocksOverlapping(pageRecords, region)
	})
}

// FigureBlocks maps every image region the provider detects to its caption
// block, when one sits immediately below the image. The result maps
// 1-based page numbers to sorted block sets; pages without figures are
// absent.
func (d *Detector) FigureBlocks(p Provider, records model.Records) (map[int][]int, error) {
	return d.regionBlocks(p, records, p.ImageRegions, func(pageRecords model.Records, region model.Rect) []int {
		return d.matcher.BlockBelow(pageRecords, region.Bottom)
	})
}

// regionBlocks runs one region source (tables or images) over every page:
// fetch the point-space regions, map each into pixel space with the page's
// own dimensions, and resolve it to blocks.
func (d *Detector) regionBlocks(
	p Provider,
	records model.Records,
	regions func(page int) ([]model.Rect, error),
	resolve func(pageRecords model.Records, region model.Rect) []int,
) (map[int][]int, error) {
	pageCount, err := p.PageCount()
	if err != nil {
		return nil, fmt.Errorf("page count: %w", err)
	}

	out := make(map[int][]int)
	for page := 1; page <= pageCount; page++ {
		rects, err := regions(page)
		if err != nil {
			return nil, fmt.Errorf("regions on page %d: %w", page, err)
		}
		if len(rects) == 0 {
			continue
		}

		width, height, err := p.PageSize(page)
		if err != nil {
			return nil, fmt.Errorf("size of page %d: %w", page, err)
		}
		pageRecords := records.ByPage(page)

		set := make(map[int]bool)
		for _, r := range rects {
			pixel := d.mapper.PointsToPixels(r, width, height)
			for _, b := range resolve(pageRecords, pixel) {
				set[b] = true
			}
		}
		if len(set) == 0 {
			continue
		}

		blocks := make([]int, 0, len(set))
		for b := range set {
			blocks = append(blocks, b)
		}
		sort.Ints(blocks)
		out[page] = blocks
	}
	return out, nil
}
