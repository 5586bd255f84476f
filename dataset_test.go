package bigearthnet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earthobs-data/bigearthnet/internal/fsutil"
	"github.com/earthobs-data/bigearthnet/internal/testutil"
)

func TestNewRejectsIllegalConfig(t *testing.T) {
	// Validation runs before any filesystem access: an empty filesystem
	// must not be touched.
	fsys := fsutil.NewMemoryFileSystem()

	_, err := NewWithFS(Config{Bands: "x"}, fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bands")

	_, err = NewWithFS(Config{Split: "holdout"}, fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	_, err = NewWithFS(Config{NumClasses: 20}, fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "num_classes")
}

func TestNewMissingDataWithoutDownload(t *testing.T) {
	fsys := fsutil.NewMemoryFileSystem()
	_, err := NewWithFS(Config{Root: "empty"}, fsys)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDatasetNotFound))
}

func TestDatasetLenMatchesManifest(t *testing.T) {
	fsys := fsutil.NewMemoryFileSystem()
	ids := []string{"S2A_A_1_1", "S2A_B_2_2", "S2A_C_3_3"}
	testutil.SeedManifest(t, fsys, "data", "test", ids)
	for _, id := range ids {
		testutil.SeedSample(t, fsys, "data", testutil.SampleSpec{
			ID:      id,
			Labels:  []string{"Pastures"},
			S1Bands: testutil.DefaultS1Bands(),
			S2Bands: testutil.DefaultS2Bands(),
		})
	}
	// The other split manifests must exist for verification to pass.
	testutil.SeedManifest(t, fsys, "data", "train", ids[:1])
	testutil.SeedManifest(t, fsys, "data", "val", ids[:1])

	ds, err := NewWithFS(Config{Root: "data", Split: "test", Bands: BandsS2}, fsys)
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())
}

func newSingleSampleDataset(t *testing.T, cfg Config) *Dataset {
	t.Helper()
	fsys := fsutil.NewMemoryFileSystem()
	testutil.SeedManifest(t, fsys, "data", "train", []string{patchID})
	testutil.SeedManifest(t, fsys, "data", "val", []string{patchID})
	testutil.SeedManifest(t, fsys, "data", "test", []string{patchID})
	testutil.SeedSample(t, fsys, "data", testutil.SampleSpec{
		ID:      patchID,
		Labels:  []string{"Pastures", "Sea and ocean"},
		S1Bands: testutil.DefaultS1Bands(),
		S2Bands: testutil.DefaultS2Bands(),
	})
	cfg.Root = "data"
	ds, err := NewWithFS(cfg, fsys)
	require.NoError(t, err)
	return ds
}

func TestGetReturnsPair(t *testing.T) {
	ds := newSingleSampleDataset(t, Config{Split: "train", Bands: BandsS2, NumClasses: 19})

	img, label, err := ds.Get(0)
	require.NoError(t, err)
	assert.Equal(t, []int{12, 120, 120}, img.Shape)
	assert.EqualValues(t, 1, label[4])
	assert.EqualValues(t, 1, label[18])
}

func TestGetOutOfRange(t *testing.T) {
	ds := newSingleSampleDataset(t, Config{Split: "train", Bands: BandsS2})
	_, _, err := ds.Get(1)
	require.Error(t, err)
	_, _, err = ds.Get(-1)
	require.Error(t, err)
}

func TestGetAppliesTransformAndSqueezes(t *testing.T) {
	pipeline := Compose(
		SelectChannels(3, 2, 1),
		Normalize(
			[]float32{100, 100, 100},
			[]float32{50, 50, 50},
		),
		Unsqueeze(1),
	)
	ds := newSingleSampleDataset(t, Config{
		Split:     "train",
		Bands:     BandsS2,
		Transform: pipeline,
	})

	img, _, err := ds.Get(0)
	require.NoError(t, err)
	// Unsqueeze(1) made the image (3,1,120,120); the facade squeezes the
	// singleton time axis back out.
	assert.Equal(t, []int{3, 120, 120}, img.Shape)
	// Fixture pixels are 100 everywhere, so normalization lands on 0.
	assert.InDelta(t, 0, img.Data[0], 1e-5)
}

func TestGetLeavesNonSingletonAxesAlone(t *testing.T) {
	ds := newSingleSampleDataset(t, Config{
		Split: "train",
		Bands: BandsS2,
		Transform: func(s Sample) Sample {
			s.Image = &Tensor{Shape: []int{2, 6, 120, 120}, Data: s.Image.Data}
			return s
		},
	})

	img, _, err := ds.Get(0)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 6, 120, 120}, img.Shape)
}

func TestVocabularyAccessor(t *testing.T) {
	ds := newSingleSampleDataset(t, Config{
		Split:         "train",
		Bands:         BandsS2,
		OtherFeatures: true,
	})
	assert.Equal(t, 20, ds.Vocabulary().NumClasses())
}
