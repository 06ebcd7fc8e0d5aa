package geom

import "github.com/tsawler/segmenta/model"

// MapperConfig holds the fixed assumptions behind pixel/point conversion.
type MapperConfig struct {
	// CanvasWidth and CanvasHeight are the dimensions, in pixels, of the
	// reference canvas the OCR engine rasterized every page at. All
	// pixel-space rectangles are expressed on this canvas.
	// Default: 1654 x 2339.
	CanvasWidth  float64
	CanvasHeight float64

	// Padding is the outward margin, in points, added on all four sides
	// when converting pixels to points. The OCR engine's block boundary can
	// include pixels of glyphs whose ink extends slightly beyond the PDF's
	// own glyph-containment geometry; without the padding, text extraction
	// from the converted rectangle drops those glyphs.
	// Default: 3.
	Padding float64
}

// DefaultMapperConfig returns the canvas and padding matching an OCR run at
// 200 DPI over an A4 page.
func DefaultMapperConfig() MapperConfig {
	return MapperConfig{
		CanvasWidth:  1654,
		CanvasHeight: 2339,
		Padding:      3,
	}
}

// Mapper converts rectangles between OCR canvas pixels and PDF page points.
// Scale factors are computed per page from the page's native size, so one
// Mapper serves documents with mixed page sizes.
type Mapper struct {
	config MapperConfig
}

// NewMapper creates a mapper with the default reference canvas.
func NewMapper() *Mapper {
	return NewMapperWithConfig(DefaultMapperConfig())
}

// NewMapperWithConfig creates a mapper with the specified configuration.
func NewMapperWithConfig(config MapperConfig) *Mapper {
	return &Mapper{config: config}
}

// PixelsToPoints converts a pixel-space rectangle to the point space of a
// page with the given native width and height in points, then expands it
// outward by the configured padding. Use this direction when extracting
// text contained in an OCR block from the PDF.
func (m *Mapper) PixelsToPoints(r model.Rect, pageWidthPts, pageHeightPts float64) model.Rect {
	sx := pageWidthPts / m.config.CanvasWidth
	sy := pageHeightPts / m.config.CanvasHeight
	scaled := model.Rect{
		X0:     r.X0 * sx,
		Top:    r.Top * sy,
		X1:     r.X1 * sx,
		Bottom: r.Bottom * sy,
	}
	return scaled.Expand(m.config.Padding)
}

// PointsToPixels converts a point-space rectangle on a page with the given
// native size to OCR canvas pixels. No padding is applied: this direction
// feeds overlap and containment tests, which need the region's true extent.
func (m *Mapper) PointsToPixels(r model.Rect, pageWidthPts, pageHeightPts float64) model.Rect {
	sx := m.config.CanvasWidth / pageWidthPts
	sy := m.config.CanvasHeight / pageHeightPts
	return model.Rect{
		X0:     r.X0 * sx,
		Top:    r.Top * sy,
		X1:     r.X1 * sx,
		Bottom: r.Bottom * sy,
	}
}
