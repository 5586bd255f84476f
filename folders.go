package bigearthnet

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/earthobs-data/bigearthnet/internal/fsutil"
)

// samplePaths holds the two per-source folders of one sample. Sentinel-1 and
// Sentinel-2 patches share the sample identifier from the split manifest.
type samplePaths struct {
	S1 string
	S2 string
}

// loadFolders reads the split manifest and resolves each sample identifier
// into its per-source folder pair. Manifest line order defines the dataset's
// index order. Lines may carry extra comma-separated fields; only the first
// field is the identifier.
func loadFolders(fsys fsutil.FileSystem, root, split string) ([]samplePaths, error) {
	manifest := filepath.Join(root, splitsMetadata[split].Filename)
	data, err := fsys.ReadFile(manifest)
	if err != nil {
		return nil, fmt.Errorf("failed to read split manifest %s: %w", manifest, err)
	}

	dirS1 := sourcesMetadata["s1"].Directory
	dirS2 := sourcesMetadata["s2"].Directory

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	folders := make([]samplePaths, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		id := strings.Split(line, ",")[0]
		folders = append(folders, samplePaths{
			S1: filepath.Join(root, dirS1, id),
			S2: filepath.Join(root, dirS2, id),
		})
	}
	return folders, nil
}
