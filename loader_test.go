package bigearthnet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earthobs-data/bigearthnet/internal/fsutil"
	"github.com/earthobs-data/bigearthnet/internal/testutil"
)

const patchID = "S2A_MSIL2A_20170613T101031_0_45"

// seedDataset builds a one-sample in-memory tree and returns a dataset over
// it.
func seedDataset(t *testing.T, cfg Config, labels []string) *Dataset {
	t.Helper()
	return seedDatasetSpec(t, cfg, testutil.SampleSpec{ID: patchID, Labels: labels})
}

func seedDatasetSpec(t *testing.T, cfg Config, spec testutil.SampleSpec) *Dataset {
	t.Helper()
	fsys := fsutil.NewMemoryFileSystem()
	// Verification expects all three split manifests on disk.
	for _, split := range []string{"train", "val", "test"} {
		testutil.SeedManifest(t, fsys, "data", split, []string{spec.ID})
	}
	spec.S1Bands = testutil.DefaultS1Bands()
	spec.S2Bands = testutil.DefaultS2Bands()
	testutil.SeedSample(t, fsys, "data", spec)

	cfg.Root = "data"
	cfg.Split = "train"
	ds, err := NewWithFS(cfg, fsys)
	require.NoError(t, err)
	return ds
}

func TestLabel43Classes(t *testing.T) {
	ds := seedDataset(t, Config{Bands: BandsS2, NumClasses: 43}, []string{"Pastures"})

	vec, err := ds.Label(0)
	require.NoError(t, err)
	require.Len(t, vec, 43)
	for i, v := range vec {
		if i == 17 {
			assert.EqualValues(t, 1, v, "Pastures slot")
		} else {
			assert.EqualValues(t, 0, v, "slot %d", i)
		}
	}
}

func TestLabel19ClassesAggregates(t *testing.T) {
	ds := seedDataset(t, Config{Bands: BandsS2, NumClasses: 19}, []string{"Pastures"})

	vec, err := ds.Label(0)
	require.NoError(t, err)
	require.Len(t, vec, 19)
	assert.EqualValues(t, 1, vec[4], "Pastures aggregates to index 4")
	count := 0
	for _, v := range vec {
		count += int(v)
	}
	assert.Equal(t, 1, count)
}

func TestLabel19ClassesDropsUnmapped(t *testing.T) {
	// Burnt areas (43-class index 32) has no coarse equivalent and is
	// dropped; Sea and ocean (42) maps to Marine waters (18).
	ds := seedDataset(t, Config{Bands: BandsS2, NumClasses: 19},
		[]string{"Burnt areas", "Sea and ocean"})

	vec, err := ds.Label(0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, vec[18])
	total := int64(0)
	for _, v := range vec {
		total += v
	}
	assert.EqualValues(t, 1, total, "unmapped label must vanish silently")
}

func TestLabelManyToOneDeduplicates(t *testing.T) {
	// Both urban fabric classes collapse onto 19-class index 0.
	ds := seedDataset(t, Config{Bands: BandsS2, NumClasses: 19},
		[]string{"Continuous urban fabric", "Discontinuous urban fabric"})

	vec, err := ds.Label(0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, vec[0])
}

func TestLabelUnknownNameFails(t *testing.T) {
	ds := seedDataset(t, Config{Bands: BandsS2, NumClasses: 19}, []string{"Lava fields"})

	_, err := ds.Label(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownLabel))
}

func TestLabelWithOtherFeaturesLength(t *testing.T) {
	ds := seedDataset(t, Config{Bands: BandsS2, NumClasses: 19, OtherFeatures: true},
		[]string{"Pastures"})

	vec, err := ds.Label(0)
	require.NoError(t, err)
	require.Len(t, vec, 20)
	assert.EqualValues(t, 1, vec[4])
}

func TestLabelSourceFolderSelection(t *testing.T) {
	// The metadata copies normally agree; seed them with different labels
	// so the test can tell which folder each band set reads. Pastures maps
	// to 19-class index 4, Sea and ocean to 18.
	spec := testutil.SampleSpec{
		ID:       patchID,
		S1Labels: []string{"Pastures"},
		S2Labels: []string{"Sea and ocean"},
	}

	tests := []struct {
		bands   BandSet
		wantIdx int
	}{
		{BandsAll, 4}, // both sources active: Sentinel-1 copy wins
		{BandsS1, 4},
		{BandsS2, 18},
	}
	for _, tt := range tests {
		t.Run(string(tt.bands), func(t *testing.T) {
			ds := seedDatasetSpec(t, Config{Bands: tt.bands, NumClasses: 19}, spec)

			vec, err := ds.Label(0)
			require.NoError(t, err)
			for i, v := range vec {
				if i == tt.wantIdx {
					assert.EqualValues(t, 1, v, "slot %d", i)
				} else {
					assert.EqualValues(t, 0, v, "slot %d", i)
				}
			}
		})
	}
}

func TestImageAndLabelIndexOutOfRange(t *testing.T) {
	ds := seedDataset(t, Config{Bands: BandsS2, NumClasses: 19}, []string{"Pastures"})

	for _, i := range []int{-1, 1} {
		_, err := ds.Image(i)
		assert.ErrorContains(t, err, "out of range", "Image(%d)", i)
		_, err = ds.Label(i)
		assert.ErrorContains(t, err, "out of range", "Label(%d)", i)
	}
}

func TestImageShapeAndResampling(t *testing.T) {
	// DefaultS2Bands includes 20px and 60px native rasters; all must come
	// out at 120x120.
	ds := seedDataset(t, Config{Bands: BandsS2, NumClasses: 19}, []string{"Pastures"})

	img, err := ds.Image(0)
	require.NoError(t, err)
	assert.Equal(t, []int{12, 120, 120}, img.Shape)

	// The fixture rasters are constant-valued, so resampling preserves the
	// value everywhere.
	for _, v := range img.Data[:200] {
		assert.InDelta(t, 100, v, 0.5)
	}
}

func TestImageAllBandsChannelCount(t *testing.T) {
	ds := seedDataset(t, Config{Bands: BandsAll, NumClasses: 19}, []string{"Pastures"})

	img, err := ds.Image(0)
	require.NoError(t, err)
	assert.Equal(t, []int{14, 120, 120}, img.Shape, "2 S1 + 12 S2 channels")
}
