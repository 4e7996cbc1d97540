package mapstyle

import (
	"image"

	// Theme bitmaps are PNG or JPEG.
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

// loadBitmap resolves a theme src reference against the resource
// filesystem, decodes it and scales it for the display ratio. width > 0
// requests a specific target width in device pixels (symbol-width, already
// ratio-adjusted), with the height following the source aspect ratio.
//
// A missing or undecodable resource is non-fatal: the caller skips the one
// instruction referencing it and the load continues.
func (b *themeBuilder) loadBitmap(src string, width float64) (image.Image, bool) {
	if b.opts.resources == nil {
		Logger().Warn("mapstyle: no resource filesystem, skipping instruction", "src", src)
		return nil, false
	}

	f, err := b.opts.resources.Open(src)
	if err != nil {
		Logger().Warn("mapstyle: missing resource, skipping instruction",
			"src", src, "error", err)
		return nil, false
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		Logger().Warn("mapstyle: undecodable resource, skipping instruction",
			"src", src, "error", err)
		return nil, false
	}

	return scaleBitmap(img, width, b.ratio), true
}

// scaleBitmap resizes img to width device pixels; width 0 keeps the native
// width times the display ratio.
func scaleBitmap(img image.Image, width, ratio float64) image.Image {
	bounds := img.Bounds()
	srcW := float64(bounds.Dx())
	srcH := float64(bounds.Dy())
	if srcW == 0 || srcH == 0 {
		return img
	}

	if width <= 0 {
		width = srcW * ratio
	}
	dstW := int(width + 0.5)
	dstH := int(width*srcH/srcW + 0.5)
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}
	if dstW == bounds.Dx() && dstH == bounds.Dy() {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst
}
