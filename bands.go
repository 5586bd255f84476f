package bigearthnet

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/earthobs-data/bigearthnet/internal/fsutil"
)

// BandSet selects which satellite source's bands a dataset loads.
type BandSet string

const (
	// BandsS1 loads the two Sentinel-1 radar bands (VV, VH).
	BandsS1 BandSet = "s1"
	// BandsS2 loads the twelve Sentinel-2 spectral bands.
	BandsS2 BandSet = "s2"
	// BandsAll stacks Sentinel-1 bands before Sentinel-2 bands.
	BandsAll BandSet = "all"
)

func (b BandSet) valid() bool {
	switch b {
	case BandsS1, BandsS2, BandsAll:
		return true
	}
	return false
}

const rasterExt = ".tif"

// sentinel2BandKey extracts the sort key for a Sentinel-2 raster path. Band
// codes are the last underscore-separated token of the filename (for example
// S2A_MSIL2A_..._B8A.tif -> B8A). B8A is rewritten to B08A so that it sorts
// between B08 and B09 rather than after B09; plain lexicographic order on
// the raw code would misplace it and silently permute the channel order any
// trained model depends on.
func sentinel2BandKey(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	parts := strings.Split(base, "_")
	code := parts[len(parts)-1]
	if code == "B8A" {
		return "B08A"
	}
	return code
}

// listRasters returns the raster files directly inside dir, unsorted.
func listRasters(fsys fsutil.FileSystem, dir string) ([]string, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list bands in %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), rasterExt) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

// resolveBandPaths returns the ordered raster paths for one sample. The
// order is deterministic for a given directory content and defines the
// channel order of the stacked image: Sentinel-1 sorts lexicographically,
// Sentinel-2 sorts by band code, and combined mode concatenates S1 before
// S2.
func resolveBandPaths(fsys fsutil.FileSystem, bands BandSet, folders samplePaths) ([]string, error) {
	switch bands {
	case BandsS1:
		paths, err := listRasters(fsys, folders.S1)
		if err != nil {
			return nil, err
		}
		sort.Strings(paths)
		return paths, nil
	case BandsS2:
		paths, err := listRasters(fsys, folders.S2)
		if err != nil {
			return nil, err
		}
		sortSentinel2(paths)
		return paths, nil
	case BandsAll:
		s1, err := listRasters(fsys, folders.S1)
		if err != nil {
			return nil, err
		}
		sort.Strings(s1)
		s2, err := listRasters(fsys, folders.S2)
		if err != nil {
			return nil, err
		}
		sortSentinel2(s2)
		return append(s1, s2...), nil
	}
	return nil, fmt.Errorf("bands must be one of s1, s2, all; got %q", bands)
}

func sortSentinel2(paths []string) {
	sort.Slice(paths, func(i, j int) bool {
		return sentinel2BandKey(paths[i]) < sentinel2BandKey(paths[j])
	})
}
