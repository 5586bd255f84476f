// benpreview renders one sample's RGB composite (Sentinel-2 bands B04, B03,
// B02) to a PNG thumbnail for eyeballing patches.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"github.com/disintegration/imaging"

	"github.com/earthobs-data/bigearthnet"
)

var (
	root  = flag.String("root", "data", "Dataset root directory")
	split = flag.String("split", "train", "Split to read")
	index = flag.Int("index", 0, "Sample index to render")
	size  = flag.Int("size", 240, "Output thumbnail size in pixels")
	out   = flag.String("out", "preview.png", "Output PNG path")
)

// Channel positions of B04/B03/B02 in the Sentinel-2 band order.
var rgbChannels = [3]int{3, 2, 1}

// Reflectance values around 2000 map to full brightness, matching the usual
// BigEarthNet visualization scaling.
const reflectanceScale = 2000.0

func main() {
	flag.Parse()

	if err := run(); err != nil {
		log.Printf("preview failed: %v", err)
		os.Exit(1)
	}
}

func run() error {
	ds, err := bigearthnet.New(bigearthnet.Config{
		Root:  *root,
		Split: *split,
		Bands: bigearthnet.BandsS2,
	})
	if err != nil {
		return err
	}
	if *index < 0 || *index >= ds.Len() {
		return fmt.Errorf("index %d out of range [0, %d)", *index, ds.Len())
	}

	img, err := ds.Image(*index)
	if err != nil {
		return err
	}

	h, w := img.Shape[1], img.Shape[2]
	plane := h * w
	rgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var px [3]uint8
			for i, c := range rgbChannels {
				v := float64(img.Data[c*plane+y*w+x]) / reflectanceScale * 255
				if v > 255 {
					v = 255
				}
				if v < 0 {
					v = 0
				}
				px[i] = uint8(v)
			}
			rgba.SetNRGBA(x, y, color.NRGBA{R: px[0], G: px[1], B: px[2], A: 255})
		}
	}

	thumb := imaging.Resize(rgba, *size, *size, imaging.Lanczos)
	if err := imaging.Save(thumb, *out); err != nil {
		return fmt.Errorf("failed to save preview: %w", err)
	}

	labels, err := ds.Label(*index)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s (labels: %v)\n", *out, ds.Vocabulary().NamesFromVector(labels))
	return nil
}
