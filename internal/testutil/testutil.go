// Package testutil builds synthetic BigEarthNet trees for tests: in-memory
// TIFF rasters, label JSON files and split manifests.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/tiff"

	"github.com/earthobs-data/bigearthnet/internal/fsutil"
)

// TIFFGray16 encodes a size x size 16-bit grayscale TIFF where every pixel
// holds value.
func TIFFGray16(t *testing.T, size int, value uint16) []byte {
	t.Helper()
	img := image.NewGray16(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetGray16(x, y, color.Gray16{Y: value})
		}
	}
	var buf bytes.Buffer
	if err := tiff.Encode(&buf, img, nil); err != nil {
		t.Fatalf("failed to encode fixture tiff: %v", err)
	}
	return buf.Bytes()
}

// SampleSpec describes one synthetic patch to seed.
type SampleSpec struct {
	ID     string
	Labels []string
	// S1Labels/S2Labels override Labels for one source's metadata file, to
	// let tests tell apart which folder a label was read from. The real
	// distribution carries the same labels in both.
	S1Labels []string
	S2Labels []string
	// S2Bands maps band codes (B01, B8A, ...) to the native raster size of
	// that band. S1Bands maps VV/VH the same way.
	S2Bands map[string]int
	S1Bands map[string]int
	// Value is the constant pixel value for every band (defaults to 100).
	Value uint16
}

// SeedSample writes one sample's folders, rasters and label file into fsys
// under root, using the real on-disk naming conventions.
func SeedSample(t *testing.T, fsys fsutil.FileSystem, root string, spec SampleSpec) {
	t.Helper()
	value := spec.Value
	if value == 0 {
		value = 100
	}

	s1dir := filepath.Join(root, "sentinel-1", spec.ID)
	s2dir := filepath.Join(root, "sentinel-2", spec.ID)

	s1id := strings.Replace(spec.ID, "S2A", "S1A", 1)
	for code, size := range spec.S1Bands {
		name := fmt.Sprintf("%s_%s.tif", s1id, code)
		write(t, fsys, filepath.Join(s1dir, name), TIFFGray16(t, size, value))
	}
	for code, size := range spec.S2Bands {
		name := fmt.Sprintf("%s_%s.tif", spec.ID, code)
		write(t, fsys, filepath.Join(s2dir, name), TIFFGray16(t, size, value))
	}

	// The original distribution carries label metadata in both source
	// folders; the loader reads from whichever source is active.
	s1labels := spec.Labels
	if spec.S1Labels != nil {
		s1labels = spec.S1Labels
	}
	s2labels := spec.Labels
	if spec.S2Labels != nil {
		s2labels = spec.S2Labels
	}
	write(t, fsys, filepath.Join(s1dir, s1id+"_labels_metadata.json"), marshalLabels(t, s1labels))
	write(t, fsys, filepath.Join(s2dir, spec.ID+"_labels_metadata.json"), marshalLabels(t, s2labels))
}

func marshalLabels(t *testing.T, labels []string) []byte {
	t.Helper()
	data, err := json.Marshal(map[string]any{"labels": labels})
	if err != nil {
		t.Fatalf("failed to marshal labels: %v", err)
	}
	return data
}

// SeedManifest writes a split manifest listing the given sample IDs in
// order.
func SeedManifest(t *testing.T, fsys fsutil.FileSystem, root, split string, ids []string) {
	t.Helper()
	name := filepath.Join(root, "bigearthnet-"+split+".csv")
	write(t, fsys, name, []byte(strings.Join(ids, "\n")+"\n"))
}

// DefaultS2Bands returns the twelve Sentinel-2 band codes at their native
// resolutions relative to a 120px patch.
func DefaultS2Bands() map[string]int {
	return map[string]int{
		"B01": 20, "B02": 120, "B03": 120, "B04": 120,
		"B05": 60, "B06": 60, "B07": 60, "B08": 120,
		"B8A": 60, "B09": 20, "B11": 60, "B12": 60,
	}
}

// DefaultS1Bands returns the two Sentinel-1 polarization codes at patch
// resolution.
func DefaultS1Bands() map[string]int {
	return map[string]int{"VV": 120, "VH": 120}
}

func write(t *testing.T, fsys fsutil.FileSystem, name string, data []byte) {
	t.Helper()
	if err := fsys.WriteFile(name, data, 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
}
