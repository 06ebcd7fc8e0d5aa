package ocr

import (
	"image"

	"golang.org/x/image/draw"
)

// Reference canvas dimensions in pixels: a 200 DPI rasterization of an A4
// page. All pixel-space geometry in the engine assumes this canvas unless
// reconfigured consistently on both the OCR client and the coordinate
// mapper.
const (
	DefaultCanvasWidth  = 1654
	DefaultCanvasHeight = 2339
)

// ScaleToCanvas resamples a page image to the given canvas size so that the
// word geometry produced from it lands directly in canvas pixel
// coordinates. The source image is returned unchanged when it already has
// the target dimensions.
func ScaleToCanvas(src image.Image, width, height int) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() == width && bounds.Dy() == height {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	return dst
}
