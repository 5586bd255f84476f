// benstats inventories a BigEarthNet split: it tallies per-class label
// frequencies over the whole split, samples a handful of images for per-band
// value statistics, persists the scan to sqlite and renders a label
// distribution chart (HTML) plus a band-value histogram (PNG).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/earthobs-data/bigearthnet"
	"github.com/earthobs-data/bigearthnet/internal/config"
	"github.com/earthobs-data/bigearthnet/internal/statsdb"
)

var (
	configPath  = flag.String("config", "", "Optional JSON config file (flags override it)")
	root        = flag.String("root", "", "Dataset root directory")
	split       = flag.String("split", "", "Split to scan: train, val or test")
	bands       = flag.String("bands", "", "Bands to scan: s1, s2 or all")
	numClasses  = flag.Int("classes", 0, "Class vocabulary: 19 or 43")
	dbPath      = flag.String("db", "", "Stats database path")
	reportDir   = flag.String("out", "", "Directory for chart output")
	sampleLimit = flag.Int("sample-limit", 0, "Images to decode for band statistics (0 = config default)")
)

func main() {
	flag.Parse()

	cfg := config.Empty()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *root == "" {
		*root = cfg.GetRoot()
	}
	if *split == "" {
		*split = cfg.GetSplit()
	}
	if *bands == "" {
		*bands = cfg.GetBands()
	}
	if *numClasses == 0 {
		*numClasses = cfg.GetNumClasses()
	}
	if *dbPath == "" {
		*dbPath = cfg.GetDBPath()
	}
	if *reportDir == "" {
		*reportDir = cfg.GetReportDir()
	}
	if *sampleLimit == 0 {
		*sampleLimit = cfg.GetSampleLimit()
	}

	if err := run(); err != nil {
		log.Printf("scan failed: %v", err)
		os.Exit(1)
	}
}

func run() error {
	ds, err := bigearthnet.New(bigearthnet.Config{
		Root:       *root,
		Split:      *split,
		Bands:      bigearthnet.BandSet(*bands),
		NumClasses: *numClasses,
	})
	if err != nil {
		return err
	}

	db, err := statsdb.Open(*dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	runID, err := db.BeginRun(*split, *bands, *numClasses)
	if err != nil {
		return err
	}

	names := ds.Vocabulary().Names()
	counts := make([]int, len(names))
	for i := 0; i < ds.Len(); i++ {
		label, err := ds.Label(i)
		if err != nil {
			return fmt.Errorf("sample %d: %w", i, err)
		}
		for c, set := range label {
			if set != 0 {
				counts[c]++
			}
		}
	}
	for c, n := range counts {
		if err := db.RecordLabelCount(runID, c, names[c], n); err != nil {
			return err
		}
	}

	bandValues, err := collectBandValues(ds, *sampleLimit)
	if err != nil {
		return err
	}
	for b, values := range bandValues {
		mean := stat.Mean(values, nil)
		stddev := stat.StdDev(values, nil)
		if err := db.RecordBandStats(runID, b, mean, stddev, floats.Min(values), floats.Max(values)); err != nil {
			return err
		}
	}

	if err := db.FinishRun(runID, ds.Len()); err != nil {
		return err
	}

	chartPath := filepath.Join(*reportDir, fmt.Sprintf("labels-%s.html", *split))
	if err := renderLabelChart(chartPath, *split, names, counts); err != nil {
		return err
	}
	histPath := filepath.Join(*reportDir, fmt.Sprintf("band0-%s.png", *split))
	if len(bandValues) > 0 {
		if err := renderBandHistogram(histPath, bandValues[0]); err != nil {
			return err
		}
	}

	fmt.Printf("scan %s: %d samples, charts in %s, stats in %s\n", runID, ds.Len(), *reportDir, *dbPath)
	return nil
}

// collectBandValues decodes up to limit images and gathers every pixel value
// per band.
func collectBandValues(ds *bigearthnet.Dataset, limit int) ([][]float64, error) {
	n := ds.Len()
	if n > limit {
		n = limit
	}
	var values [][]float64
	for i := 0; i < n; i++ {
		img, err := ds.Image(i)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		channels := img.Shape[0]
		plane := img.Shape[1] * img.Shape[2]
		if values == nil {
			values = make([][]float64, channels)
		}
		for c := 0; c < channels; c++ {
			seg := img.Data[c*plane : (c+1)*plane]
			for _, v := range seg {
				values[c] = append(values[c], float64(v))
			}
		}
	}
	return values, nil
}
