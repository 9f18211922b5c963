package linreg

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Record is the state after one minibatch step.
type Record struct {
	Epoch    int       // Epoch label passed to EpochUpdate.
	Step     int       // 1-based step within the epoch.
	GradNorm float64   // L2 norm of the step's gradient.
	Params   []float64 // Parameters after the step's update.
}

// Trajectory is the ordered list of steps of one or more epochs.
type Trajectory []Record

// Width returns the number of parameters per record, or 0 if t is empty.
func (t Trajectory) Width() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0].Params)
}

// Last returns the final record. ok is false if t is empty.
func (t Trajectory) Last() (rec Record, ok bool) {
	if len(t) == 0 {
		return Record{}, false
	}
	return t[len(t)-1], true
}

// GradNorms returns the gradient norm of every record.
func (t Trajectory) GradNorms() []float64 {
	norms := make([]float64, len(t))
	for i, rec := range t {
		norms[i] = rec.GradNorm
	}
	return norms
}

// Matrix returns t as a table with one row per record and columns
// epoch, step, grad_norm, beta_0 .. beta_{m-1}.
//
// An empty trajectory gives an empty matrix. Records with differing parameter
// counts give ErrDimensionMismatch.
func (t Trajectory) Matrix() (*mat.Dense, error) {
	if len(t) == 0 {
		return &mat.Dense{}, nil
	}
	if err := t.checkWidth(); err != nil {
		return nil, err
	}

	m := t.Width()
	out := mat.NewDense(len(t), m+3, nil)
	for i, rec := range t {
		row := out.RawRowView(i)
		row[0] = float64(rec.Epoch)
		row[1] = float64(rec.Step)
		row[2] = rec.GradNorm
		copy(row[3:], rec.Params)
	}
	return out, nil
}

// WriteCSV writes t as CSV with a header row
// epoch,step,grad_norm,beta_0,...,beta_{m-1}.
func (t Trajectory) WriteCSV(w io.Writer) error {
	if err := t.checkWidth(); err != nil {
		return err
	}

	m := t.Width()
	cw := csv.NewWriter(w)

	header := make([]string, 0, m+3)
	header = append(header, "epoch", "step", "grad_norm")
	for j := range m {
		header = append(header, "beta_"+strconv.Itoa(j))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, m+3)
	for _, rec := range t {
		record[0] = strconv.Itoa(rec.Epoch)
		record[1] = strconv.Itoa(rec.Step)
		record[2] = formatFloat(rec.GradNorm)
		for j, v := range rec.Params {
			record[j+3] = formatFloat(v)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write epoch %d step %d: %w", rec.Epoch, rec.Step, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func (t Trajectory) checkWidth() error {
	m := t.Width()
	for _, rec := range t {
		if len(rec.Params) != m {
			return fmt.Errorf("%w: epoch %d step %d has %d parameters, want %d",
				ErrDimensionMismatch, rec.Epoch, rec.Step, len(rec.Params), m)
		}
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
