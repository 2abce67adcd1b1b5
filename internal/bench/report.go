package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// WriteText prints, per kernel, the sample outputs as a tuple and the elapsed
// time in seconds:
//
//	(39,39,39,39)
//	scalar (row-major) takes 0.000012 seconds
func (r *Report) WriteText(w io.Writer) error {
	for _, res := range r.Results {
		if _, err := fmt.Fprintf(w, "%s\n%s (%s) takes %f seconds\n",
			formatSample(res.Sample), res.Kernel, res.Layout, res.Elapsed.Seconds()); err != nil {
			return err
		}
		if r.Repeat > 1 {
			if _, err := fmt.Fprintf(w, "  %d calls, %s per call\n", r.Repeat, res.PerCall); err != nil {
				return err
			}
		}
	}
	if !r.Match {
		if _, err := fmt.Fprintf(w, "outputs differ starting at row %d\n", r.Mismatch); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func formatSample(sample []int16) string {
	parts := lo.Map(sample, func(x int16, _ int) string {
		return strconv.Itoa(int(x))
	})
	return "(" + strings.Join(parts, ",") + ")"
}
