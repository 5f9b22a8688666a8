package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	_ "image/png"
)

// ErrUndecodableImage is the only failure enhancement can produce
var ErrUndecodableImage = errors.New("could not decode image")

// Enhance applies mild contrast enhancement: the luminance channel is
// histogram-equalized while chroma stays untouched, and the result is
// re-encoded as JPEG. Input and output are plain image bytes.
func Enhance(imageBytes []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, ErrUndecodableImage
	}

	bounds := src.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return nil, ErrUndecodableImage
	}

	var hist [256]int
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			luma, _, _ := color.RGBToYCbCr(uint8(r>>8), uint8(g>>8), uint8(b>>8))
			hist[luma]++
		}
	}

	lut := equalizationLUT(hist, total)

	dst := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			luma, cb, cr := color.RGBToYCbCr(uint8(r>>8), uint8(g>>8), uint8(b>>8))
			r2, g2, b2 := color.YCbCrToRGB(lut[luma], cb, cr)
			dst.Set(x, y, color.RGBA{R: r2, G: g2, B: b2, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 95}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// equalizationLUT maps each luminance level through the cumulative histogram
// so the output levels spread across the full range. A flat histogram (single
// luminance value) maps to itself.
func equalizationLUT(hist [256]int, total int) [256]uint8 {
	cdfMin := 0
	for _, count := range hist {
		if count > 0 {
			cdfMin = count
			break
		}
	}

	var lut [256]uint8
	if total == cdfMin {
		for i := range lut {
			lut[i] = uint8(i)
		}
		return lut
	}

	cum := 0
	for i, count := range hist {
		cum += count
		scaled := (cum - cdfMin) * 255 / (total - cdfMin)
		if scaled < 0 {
			scaled = 0
		}
		lut[i] = uint8(scaled)
	}
	return lut
}
