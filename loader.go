package bigearthnet

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/earthobs-data/bigearthnet/internal/raster"
)

// Image loads and stacks the bands of sample i into a (channels, 120, 120)
// float32 tensor. Bands below the target resolution are bilinearly upsampled
// during decoding. Nothing is cached; every call re-reads from disk.
func (d *Dataset) Image(i int) (*Tensor, error) {
	if err := d.checkIndex(i); err != nil {
		return nil, err
	}
	paths, err := resolveBandPaths(d.fsys, d.cfg.Bands, d.folders[i])
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("sample %d has no raster files", i)
	}

	plane := imageHeight * imageWidth
	img := NewTensor(len(paths), imageHeight, imageWidth)
	for c, path := range paths {
		band, err := d.readBand(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load band %s: %w", path, err)
		}
		seg := img.Data[c*plane : (c+1)*plane]
		for j, v := range band {
			seg[j] = float32(v)
		}
	}
	return img, nil
}

// readBand decodes one raster with a scoped file handle so the file is
// released even when decoding fails.
func (d *Dataset) readBand(path string) ([]int32, error) {
	f, err := d.fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return raster.DecodeBand(f, imageHeight, imageWidth)
}

// Label loads the multi-hot label vector of sample i. Class names come from
// the sample's JSON metadata and resolve against the 43-class vocabulary; in
// 19-class mode they are further aggregated through the 43-to-19 table, with
// untranslatable labels silently dropped.
func (d *Dataset) Label(i int) ([]int64, error) {
	if err := d.checkIndex(i); err != nil {
		return nil, err
	}
	// Label metadata ships with both sources; read the Sentinel-2 copy only
	// when Sentinel-2 is the sole active source.
	folder := d.folders[i].S1
	if d.cfg.Bands == BandsS2 {
		folder = d.folders[i].S2
	}

	names, err := d.labelNames(folder)
	if err != nil {
		return nil, err
	}

	vec := make([]int64, d.vocab.NumClasses())
	for _, name := range names {
		idx, err := d.vocab.CanonicalIndex(name)
		if err != nil {
			return nil, err
		}
		if d.cfg.NumClasses == 19 {
			mapped, ok := ConvertLabel(idx)
			if !ok {
				// Lossy aggregation: some fine-grained classes have no
				// coarse equivalent.
				continue
			}
			idx = mapped
		}
		vec[idx] = 1
	}
	return vec, nil
}

// labelNames reads the "labels" array from the single JSON metadata file in
// folder.
func (d *Dataset) labelNames(folder string) ([]string, error) {
	entries, err := d.fsys.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to list label metadata in %s: %w", folder, err)
	}
	var jsonFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			jsonFiles = append(jsonFiles, e.Name())
		}
	}
	if len(jsonFiles) == 0 {
		return nil, fmt.Errorf("no label metadata in %s: %w", folder, fs.ErrNotExist)
	}
	sort.Strings(jsonFiles)

	data, err := d.fsys.ReadFile(filepath.Join(folder, jsonFiles[0]))
	if err != nil {
		return nil, err
	}
	var meta struct {
		Labels []string `json:"labels"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("malformed label metadata in %s: %w", folder, err)
	}
	return meta.Labels, nil
}
