// Package bigearthnet loads the BigEarthNet remote-sensing archive: Sentinel-1
// and Sentinel-2 patches with multi-label CORINE land-cover annotations,
// exposed as integer-indexed (image, label) pairs for training and inference
// pipelines.
package bigearthnet

import (
	"errors"
	"fmt"

	"github.com/earthobs-data/bigearthnet/internal/fsutil"
)

// ErrDatasetNotFound is returned by New when the dataset is missing from the
// root directory and downloading was not requested.
var ErrDatasetNotFound = errors.New(
	"dataset not found in root directory and download is disabled; " +
		"either point Root at a populated directory or set Download")

// Config carries the dataset construction parameters. The zero value of each
// field selects the documented default.
type Config struct {
	// Root is the directory holding (or receiving) the dataset. Defaults to
	// "data".
	Root string
	// Split selects the train, val or test manifest. Defaults to "train".
	Split string
	// Bands selects Sentinel-1, Sentinel-2 or both. Defaults to BandsAll.
	Bands BandSet
	// NumClasses is 19 or 43. Defaults to 19.
	NumClasses int
	// Transform, when non-nil, rewrites each sample after loading.
	Transform Transform
	// Download fetches and extracts missing archives from the canonical
	// URLs.
	Download bool
	// Checksum verifies MD5 digests of downloaded archives (slow on the
	// multi-gigabyte source archives).
	Checksum bool
	// OtherFeatures appends the "Other features" catch-all class slot.
	OtherFeatures bool
}

func (c *Config) applyDefaults() {
	if c.Root == "" {
		c.Root = "data"
	}
	if c.Split == "" {
		c.Split = "train"
	}
	if c.Bands == "" {
		c.Bands = BandsAll
	}
	if c.NumClasses == 0 {
		c.NumClasses = 19
	}
}

// Dataset is an indexed view over one split. Construction resolves the
// sample index eagerly; images and labels are decoded lazily on each access
// and never cached, so a Dataset is safe for concurrent Get calls once New
// returns.
type Dataset struct {
	cfg     Config
	fsys    fsutil.FileSystem
	vocab   *Vocabulary
	folders []samplePaths
}

// New verifies (and optionally downloads) the dataset under cfg.Root and
// builds the sample index for the requested split. Illegal configuration
// values fail before any filesystem access.
func New(cfg Config) (*Dataset, error) {
	return NewWithFS(cfg, fsutil.OSFileSystem{})
}

// NewWithFS is New with an explicit filesystem, used by tests to run against
// an in-memory tree. Downloading requires a real filesystem.
func NewWithFS(cfg Config, fsys fsutil.FileSystem) (*Dataset, error) {
	cfg.applyDefaults()

	if _, ok := splitsMetadata[cfg.Split]; !ok {
		return nil, fmt.Errorf("split must be one of train, val, test; got %q", cfg.Split)
	}
	if !cfg.Bands.valid() {
		return nil, fmt.Errorf("bands must be one of s1, s2, all; got %q", cfg.Bands)
	}
	vocab, err := NewVocabulary(cfg.NumClasses)
	if err != nil {
		return nil, err
	}
	if cfg.OtherFeatures {
		vocab = vocab.WithOtherClass()
	}

	d := &Dataset{cfg: cfg, fsys: fsys, vocab: vocab}
	if err := d.verify(); err != nil {
		return nil, err
	}

	folders, err := loadFolders(fsys, cfg.Root, cfg.Split)
	if err != nil {
		return nil, err
	}
	d.folders = folders
	return d, nil
}

// Len returns the number of samples in the split.
func (d *Dataset) Len() int {
	return len(d.folders)
}

// Vocabulary returns the active class vocabulary.
func (d *Dataset) Vocabulary() *Vocabulary {
	return d.vocab
}

// checkIndex rejects sample indices outside the split.
func (d *Dataset) checkIndex(i int) error {
	if i < 0 || i >= len(d.folders) {
		return fmt.Errorf("index %d out of range [0, %d)", i, len(d.folders))
	}
	return nil
}

// Get loads sample i, applies the configured transform and returns the
// (image, label) pair. A singleton second axis left behind by an
// Unsqueeze(1) stage is squeezed away before returning.
func (d *Dataset) Get(i int) (*Tensor, []int64, error) {
	if err := d.checkIndex(i); err != nil {
		return nil, nil, err
	}

	img, err := d.Image(i)
	if err != nil {
		return nil, nil, err
	}
	label, err := d.Label(i)
	if err != nil {
		return nil, nil, err
	}

	sample := Sample{Image: img, Label: label}
	if d.cfg.Transform != nil {
		sample = d.cfg.Transform(sample)
	}
	sample.Image = squeezeTimeAxis(sample.Image)
	return sample.Image, sample.Label, nil
}
