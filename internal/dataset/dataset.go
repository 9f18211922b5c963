// Package dataset builds regression datasets in the layout expected by
// linreg: one row per observation, predictors first, target last.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Common errors.
var (
	ErrEmpty       = errors.New("dataset: no observations")
	ErrTooFewCols  = errors.New("dataset: need at least one predictor and a target column")
	ErrRagged      = errors.New("dataset: rows have different lengths")
	ErrInvalidSpec = errors.New("dataset: invalid synthetic configuration")
)

// LoadCSV reads a numeric CSV table from r.
//
// CSV Format:
//
//	x1,x2,y
//	0.5,1.2,3.9
//	0.1,0.7,3.1
//
// If hasHeader is true the first record is skipped. Every remaining record
// must have the same number of fields (at least two) and parse as float64.
func LoadCSV(r io.Reader, hasHeader bool) (*mat.Dense, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if hasHeader && len(records) > 0 {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	cols := len(records[0])
	if cols < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewCols, cols)
	}

	data := make([]float64, 0, len(records)*cols)
	for i, record := range records {
		if len(record) != cols {
			return nil, fmt.Errorf("%w: row %d has %d fields, want %d", ErrRagged, i+1, len(record), cols)
		}
		for j, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value at row %d column %d: %w", i+1, j+1, err)
			}
			data = append(data, v)
		}
	}

	return mat.NewDense(len(records), cols, data), nil
}

// LoadCSVFile opens path and reads it with LoadCSV.
func LoadCSVFile(path string, hasHeader bool) (*mat.Dense, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return LoadCSV(file, hasHeader)
}

// SyntheticConfig describes a linear dataset
// y = Intercept + Σ Slopes[j]·x_j + N(0, Noise²).
type SyntheticConfig struct {
	Rows      int       // Number of observations.
	Intercept float64   // True intercept.
	Slopes    []float64 // True slope per predictor; len(Slopes) predictors.
	Noise     float64   // Standard deviation of the additive noise.
	Low, High float64   // Predictors are drawn uniformly from [Low, High).
	Seed      uint64    // Seed for the PCG generator.
}

// DefaultSyntheticConfig returns y = 3 + 2x + N(0, 0.1²) over 200 rows with
// x in [0, 1).
func DefaultSyntheticConfig() SyntheticConfig {
	return SyntheticConfig{
		Rows:      200,
		Intercept: 3,
		Slopes:    []float64{2},
		Noise:     0.1,
		Low:       0,
		High:      1,
		Seed:      1,
	}
}

// Synthetic generates a dataset from cfg. The same cfg always yields the same
// rows.
func Synthetic(cfg SyntheticConfig) (*mat.Dense, error) {
	if cfg.Rows <= 0 {
		return nil, fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidSpec, cfg.Rows)
	}
	if len(cfg.Slopes) == 0 {
		return nil, fmt.Errorf("%w: at least one slope is required", ErrInvalidSpec)
	}
	if cfg.Noise < 0 {
		return nil, fmt.Errorf("%w: negative noise %g", ErrInvalidSpec, cfg.Noise)
	}
	if cfg.High < cfg.Low {
		return nil, fmt.Errorf("%w: empty predictor range [%g, %g)", ErrInvalidSpec, cfg.Low, cfg.High)
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	p := len(cfg.Slopes) + 1
	out := mat.NewDense(cfg.Rows, p, nil)

	for i := range cfg.Rows {
		row := out.RawRowView(i)
		y := cfg.Intercept
		for j, slope := range cfg.Slopes {
			x := cfg.Low + (cfg.High-cfg.Low)*rng.Float64()
			row[j] = x
			y += slope * x
		}
		row[p-1] = y + cfg.Noise*rng.NormFloat64()
	}

	return out, nil
}
