// Package raster decodes single-band GeoTIFF patches and resamples them to a
// fixed spatial shape. Decoding is delegated to golang.org/x/image/tiff and
// scaling to the bilinear kernel in golang.org/x/image/draw.
package raster

import (
	"fmt"
	"image"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// DecodeBand reads the first band of a TIFF raster and returns its samples
// resampled to height x width as int32 values, row-major. Bands at the
// target resolution are returned without resampling.
func DecodeBand(r io.Reader, height, width int) ([]int32, error) {
	img, err := tiff.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode raster: %w", err)
	}

	b := img.Bounds()
	if b.Dx() != width || b.Dy() != height {
		dst := image.NewGray16(image.Rect(0, 0, width, height))
		draw.BiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		img = dst
		b = dst.Bounds()
	}

	out := make([]int32, width*height)
	switch im := img.(type) {
	case *image.Gray16:
		for y := 0; y < height; y++ {
			row := im.Pix[y*im.Stride : y*im.Stride+2*width]
			for x := 0; x < width; x++ {
				out[y*width+x] = int32(row[2*x])<<8 | int32(row[2*x+1])
			}
		}
	case *image.Gray:
		for y := 0; y < height; y++ {
			row := im.Pix[y*im.Stride : y*im.Stride+width]
			for x := 0; x < width; x++ {
				out[y*width+x] = int32(row[x])
			}
		}
	default:
		// Uncommon pixel formats go through the generic 16-bit path.
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				g, _, _, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
				out[y*width+x] = int32(g)
			}
		}
	}
	return out, nil
}
