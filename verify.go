package bigearthnet

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/earthobs-data/bigearthnet/internal/fetch"
	"github.com/earthobs-data/bigearthnet/internal/monitoring"
)

// verify walks the same ladder the archive distribution expects: extracted
// data already present, then archives on disk awaiting extraction, then
// download (when enabled), and otherwise a fatal not-found error.
func (d *Dataset) verify() error {
	keys := []string{string(d.cfg.Bands)}
	if d.cfg.Bands == BandsAll {
		keys = []string{"s1", "s2"}
	}

	var urls, md5s, filenames []string
	for _, k := range keys {
		src := sourcesMetadata[k]
		urls = append(urls, src.URL)
		md5s = append(md5s, src.MD5)
		filenames = append(filenames, src.Filename)
	}
	var splitFilenames []string
	for _, split := range []string{"train", "val", "test"} {
		meta := splitsMetadata[split]
		urls = append(urls, meta.URL)
		md5s = append(md5s, meta.MD5)
		filenames = append(filenames, meta.Filename)
		splitFilenames = append(splitFilenames, meta.Filename)
	}

	// Already extracted: every split manifest plus every active source
	// directory present.
	complete := true
	for _, name := range splitFilenames {
		if !d.fsys.Exists(filepath.Join(d.cfg.Root, name)) {
			complete = false
		}
	}
	for _, k := range keys {
		if !d.fsys.Exists(filepath.Join(d.cfg.Root, sourcesMetadata[k].Directory)) {
			complete = false
		}
	}
	if complete {
		return nil
	}

	// Archives already on disk: extract whatever is there; done if that
	// covered everything.
	complete = true
	for _, name := range filenames {
		path := filepath.Join(d.cfg.Root, name)
		if !d.fsys.Exists(path) {
			complete = false
			continue
		}
		if err := d.extract(path); err != nil {
			return err
		}
	}
	if complete {
		return nil
	}

	if !d.cfg.Download {
		return fmt.Errorf("%w (root: %s)", ErrDatasetNotFound, d.cfg.Root)
	}

	for i, url := range urls {
		path := filepath.Join(d.cfg.Root, filenames[i])
		md5 := ""
		if d.cfg.Checksum {
			md5 = md5s[i]
		}
		if err := fetch.DownloadIfMissing(url, path, md5); err != nil {
			return fmt.Errorf("failed to download %s: %w", filenames[i], err)
		}
		if err := d.extract(path); err != nil {
			return err
		}
	}
	return nil
}

// extract unpacks a source archive next to itself; split manifests are plain
// CSV and pass through.
func (d *Dataset) extract(path string) error {
	if strings.HasSuffix(path, ".csv") {
		return nil
	}
	monitoring.Logf("extracting %s", path)
	if err := fetch.ExtractTarGz(path, d.cfg.Root); err != nil {
		return fmt.Errorf("failed to extract %s: %w", path, err)
	}
	return nil
}
