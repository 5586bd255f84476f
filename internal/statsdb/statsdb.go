// Package statsdb persists dataset inventory scans: per-class label
// frequencies and per-band value statistics, keyed by scan run.
package statsdb

import (
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

type StatsDB struct {
	*sql.DB
}

// schema.sql defines the scan_runs, label_counts and band_stats tables.
//
//go:embed schema.sql
var schemaSQL string

// Open opens (creating if necessary) the stats database at path.
func Open(path string) (*StatsDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		return nil, fmt.Errorf("failed to initialize stats schema: %w", err)
	}

	return &StatsDB{db}, nil
}

// BeginRun records a new scan run and returns its identifier.
func (db *StatsDB) BeginRun(split, bands string, numClasses int) (string, error) {
	runID := uuid.NewString()
	_, err := db.Exec(
		`INSERT INTO scan_runs (run_id, split, bands, num_classes) VALUES (?, ?, ?, ?)`,
		runID, split, bands, numClasses,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert scan run: %w", err)
	}
	return runID, nil
}

// FinishRun stamps the run complete with its final sample count.
func (db *StatsDB) FinishRun(runID string, sampleCount int) error {
	_, err := db.Exec(
		`UPDATE scan_runs SET sample_count = ?, finished_at = CURRENT_TIMESTAMP WHERE run_id = ?`,
		sampleCount, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to finish scan run: %w", err)
	}
	return nil
}

// RecordLabelCount stores how many samples carry one class.
func (db *StatsDB) RecordLabelCount(runID string, classIndex int, className string, count int) error {
	_, err := db.Exec(
		`INSERT INTO label_counts (run_id, class_index, class_name, sample_count) VALUES (?, ?, ?, ?)`,
		runID, classIndex, className, count,
	)
	if err != nil {
		return fmt.Errorf("failed to insert label count: %w", err)
	}
	return nil
}

// RecordBandStats stores one band's value statistics.
func (db *StatsDB) RecordBandStats(runID string, bandIndex int, mean, stddev, min, max float64) error {
	_, err := db.Exec(
		`INSERT INTO band_stats (run_id, band_index, mean, stddev, min_value, max_value) VALUES (?, ?, ?, ?, ?, ?)`,
		runID, bandIndex, mean, stddev, min, max,
	)
	if err != nil {
		return fmt.Errorf("failed to insert band stats: %w", err)
	}
	return nil
}

// LabelCount is one row of a run's class frequency table.
type LabelCount struct {
	ClassIndex  int
	ClassName   string
	SampleCount int
}

// LabelCounts returns a run's class frequencies in class-index order.
func (db *StatsDB) LabelCounts(runID string) ([]LabelCount, error) {
	rows, err := db.Query(
		`SELECT class_index, class_name, sample_count FROM label_counts WHERE run_id = ? ORDER BY class_index`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query label counts: %w", err)
	}
	defer rows.Close()

	var counts []LabelCount
	for rows.Next() {
		var lc LabelCount
		if err := rows.Scan(&lc.ClassIndex, &lc.ClassName, &lc.SampleCount); err != nil {
			return nil, err
		}
		counts = append(counts, lc)
	}
	return counts, rows.Err()
}

// BandStat is one row of a run's per-band statistics.
type BandStat struct {
	BandIndex int
	Mean      float64
	StdDev    float64
	Min       float64
	Max       float64
}

// BandStats returns a run's band statistics in band order.
func (db *StatsDB) BandStats(runID string) ([]BandStat, error) {
	rows, err := db.Query(
		`SELECT band_index, mean, stddev, min_value, max_value FROM band_stats WHERE run_id = ? ORDER BY band_index`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query band stats: %w", err)
	}
	defer rows.Close()

	var stats []BandStat
	for rows.Next() {
		var bs BandStat
		if err := rows.Scan(&bs.BandIndex, &bs.Mean, &bs.StdDev, &bs.Min, &bs.Max); err != nil {
			return nil, err
		}
		stats = append(stats, bs)
	}
	return stats, rows.Err()
}
