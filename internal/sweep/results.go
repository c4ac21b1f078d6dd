package sweep

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Metric selects one measure of a Result.
type Metric string

const (
	ByEntropy           Metric = "entropy"
	ByJointUncertainty  Metric = "joint"
	ByMutualInformation Metric = "mutual"
)

// ParseMetric accepts the names above.
func ParseMetric(s string) (Metric, error) {
	switch m := Metric(strings.ToLower(s)); m {
	case ByEntropy, ByJointUncertainty, ByMutualInformation:
		return m, nil
	}
	return "", fmt.Errorf("unknown metric %q: must be one of entropy, joint, mutual", s)
}

// Value returns the selected measure of r.
func (m Metric) Value(r Result) float64 {
	switch m {
	case ByJointUncertainty:
		return r.JointUncertainty
	case ByMutualInformation:
		return r.MutualInformation
	default:
		return r.Entropy
	}
}

// Top returns up to k results ranked by m, highest first. Ties keep rule order.
func Top(results []Result, m Metric, k int) []Result {
	ranked := append([]Result(nil), results...)
	sort.SliceStable(ranked, func(i, j int) bool { return m.Value(ranked[i]) > m.Value(ranked[j]) })
	if k >= 0 && k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}

// WriteResults writes one "[H, H(X,Y), I]" line per result.
func WriteResults(w io.Writer, results []Result) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		if _, err := fmt.Fprintf(bw, "[%s, %s, %s]\n",
			formatFloat(r.Entropy), formatFloat(r.JointUncertainty), formatFloat(r.MutualInformation)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// formatFloat prints the shortest round-tripping form, keeping a decimal
// point on integral values.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}
