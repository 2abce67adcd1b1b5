// Package bench runs both quantized matrix-vector kernels over matching
// buffers, times them and renders a report.
package bench

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/ajroetker/qmatvec/hwy"
	"github.com/ajroetker/qmatvec/hwy/contrib/qmatvec"
)

// SampleSize is how many leading outputs a Result keeps.
const SampleSize = 4

// Clock is the time source of a Harness. Elapsed times are computed with
// Time.Sub, so a clock returning time.Now values measures monotonic time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock with its monotonic reading.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// Config describes one benchmark run.
type Config struct {
	Rows     int
	Cols     int
	Repeat   int    // kernel calls per timing; at least 1
	Seed     uint64 // 0 selects the all-ones demo matrix with v[j] = j
	Rounding qmatvec.Rounding
}

// DefaultConfig is the demo workload: 100x100 ones, v[j] = j, one call each.
func DefaultConfig() Config {
	return Config{Rows: 100, Cols: 100, Repeat: 1, Rounding: qmatvec.RoundPerRow}
}

// Problem holds one logical matrix in both storage orders plus the input.
type Problem struct {
	Rows     int
	Cols     int
	RowMajor []int8
	ColMajor []int8
	Input    []int16
}

// NewProblem builds the buffers described by cfg. The result is fully
// determined by cfg.
func NewProblem(cfg Config) Problem {
	n := cfg.Rows * cfg.Cols
	p := Problem{Rows: cfg.Rows, Cols: cfg.Cols}

	if cfg.Seed == 0 {
		p.RowMajor = lo.Times(n, func(int) int8 { return 1 })
		p.Input = lo.Times(cfg.Cols, func(j int) int16 { return int16(j) })
	} else {
		rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
		p.RowMajor = lo.Times(n, func(int) int8 { return int8(rng.IntN(256) - 128) })
		p.Input = lo.Times(cfg.Cols, func(int) int16 { return int16(rng.IntN(65536) - 32768) })
	}

	p.ColMajor = make([]int8, n)
	qmatvec.Transpose(p.RowMajor, cfg.Rows, cfg.Cols, p.ColMajor)
	return p
}

// Result is the measurement of one kernel.
type Result struct {
	Kernel  string        `json:"kernel"`
	Layout  string        `json:"layout"`
	Sample  []int16       `json:"sample"`
	Elapsed time.Duration `json:"elapsed_ns"`
	PerCall time.Duration `json:"per_call_ns"`

	output []int16
}

// Report collects the results of a run.
type Report struct {
	Rows     int      `json:"rows"`
	Cols     int      `json:"cols"`
	Repeat   int      `json:"repeat"`
	Rounding string   `json:"rounding"`
	Dispatch string   `json:"dispatch"`
	Results  []Result `json:"results"`

	// Match is true when every kernel produced the same full output.
	Match bool `json:"match"`
	// Mismatch is the first differing row when Match is false, else -1.
	Mismatch int `json:"mismatch"`
}

// Harness times kernels against a Clock.
type Harness struct {
	clock Clock
}

// New returns a Harness reading time from clock; nil selects SystemClock.
func New(clock Clock) *Harness {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Harness{clock: clock}
}

// Run validates cfg, builds the problem and times the scalar kernel on the
// row-major matrix and the accelerated kernel on the column-major one.
func (h *Harness) Run(cfg Config) (*Report, error) {
	if cfg.Repeat < 1 {
		return nil, fmt.Errorf("bench: repeat must be at least 1, got %d", cfg.Repeat)
	}
	// Shape errors are reported before any buffer is sized from them.
	if err := qmatvec.Validate(qmatvec.ColMajor, nil, cfg.Rows, cfg.Cols, nil, nil); err != nil && !errors.Is(err, qmatvec.ErrShortBuffer) {
		return nil, fmt.Errorf("bench: invalid shape: %w", err)
	}
	p := NewProblem(cfg)

	report := &Report{
		Rows:     cfg.Rows,
		Cols:     cfg.Cols,
		Repeat:   cfg.Repeat,
		Rounding: cfg.Rounding.String(),
		Dispatch: hwy.CurrentName(),
		Mismatch: -1,
	}

	report.Results = append(report.Results,
		h.time("scalar", qmatvec.RowMajor, cfg, func(out []int16) {
			qmatvec.MatVecQ8Rounding(p.RowMajor, p.Rows, p.Cols, p.Input, out, cfg.Rounding)
		}),
		h.time(qmatvec.KernelName(), qmatvec.ColMajor, cfg, func(out []int16) {
			qmatvec.MatVecQ8ColMajorRounding(p.ColMajor, p.Rows, p.Cols, p.Input, out, cfg.Rounding)
		}),
	)

	report.Match = true
	ref := report.Results[0].output
	for _, r := range report.Results[1:] {
		if slices.Equal(ref, r.output) {
			continue
		}
		report.Match = false
		for i := range ref {
			if ref[i] != r.output[i] {
				report.Mismatch = i
				break
			}
		}
		break
	}
	return report, nil
}

func (h *Harness) time(kernel string, layout qmatvec.Layout, cfg Config, run func(out []int16)) Result {
	out := make([]int16, cfg.Rows)

	start := h.clock.Now()
	for range cfg.Repeat {
		run(out)
	}
	elapsed := h.clock.Now().Sub(start)

	return Result{
		Kernel:  kernel,
		Layout:  layout.String(),
		Sample:  slices.Clone(out[:min(SampleSize, len(out))]),
		Elapsed: elapsed,
		PerCall: elapsed / time.Duration(cfg.Repeat),
		output:  out,
	}
}
