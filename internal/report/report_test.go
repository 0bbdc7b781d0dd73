package report

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/simpson/internal/dataset"
	"github.com/san-kum/simpson/internal/experiment"
	"github.com/san-kum/simpson/internal/quad"
)

func TestTableRendersPublishedValues(t *testing.T) {
	out := Table("published", dataset.Published())

	for _, want := range []string{
		"published",
		"Simpson's Result",
		"Error Relatif (%)",
		"101.146996",
		"0.107472",
		"0.000023",
		"32",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q\n%s", want, out)
		}
	}
}

func TestChecksPublished(t *testing.T) {
	out := Checks(dataset.Published(), 101.03952407897712)

	if strings.Contains(out, "FAIL") {
		t.Errorf("published table should pass every check:\n%s", out)
	}
	if !strings.Contains(out, "101.039547") {
		t.Errorf("expected limit in output:\n%s", out)
	}
	if !strings.Contains(out, "converges to exact") {
		t.Errorf("expected exact check:\n%s", out)
	}
}

func TestChecksWithoutExact(t *testing.T) {
	out := Checks(dataset.Published(), math.NaN())
	if strings.Contains(out, "converges to exact") {
		t.Errorf("exact check should be skipped for NaN:\n%s", out)
	}
}

func TestChecksInvalid(t *testing.T) {
	tbl := dataset.Published()
	tbl.Rows[1].Intervals = 2

	out := Checks(tbl, math.NaN())
	if !strings.Contains(out, "FAIL") {
		t.Errorf("expected failure for unordered intervals:\n%s", out)
	}
	if !strings.Contains(out, "row 1") {
		t.Errorf("expected the offending row in the message:\n%s", out)
	}
	if strings.Contains(out, "converges to limit") {
		t.Errorf("checks after a failed validation should be skipped:\n%s", out)
	}
}

func TestResult(t *testing.T) {
	res := &experiment.Result{
		Value:     101.045646,
		Rule:      quad.RuleSimpson13,
		Intervals: 8,
		Step:      1,
		Elapsed:   3 * time.Microsecond,
	}
	res.WithExact(101.03952407897712)

	out := Result(res)
	for _, want := range []string{"Simpson's 1/3 Rule", "101.045646", "exact solution", "relative error"} {
		if !strings.Contains(out, want) {
			t.Errorf("result output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "estimated error") {
		t.Errorf("no estimate was set:\n%s", out)
	}
}

func TestPointsElides(t *testing.T) {
	x := make([]float64, 20)
	y := make([]float64, 20)
	for i := range x {
		x[i] = float64(i)
		y[i] = float64(i * i)
	}

	out := Points(x, y, 6)
	if !strings.Contains(out, "... 14 more") {
		t.Errorf("expected elision marker:\n%s", out)
	}
	if !strings.Contains(out, "361.000000") {
		t.Errorf("expected last point:\n%s", out)
	}

	full := Points(x, y, 0)
	if strings.Contains(full, "more") {
		t.Errorf("limit 0 should print every point:\n%s", full)
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil, false); got != "" {
		t.Errorf("expected empty sparkline, got %q", got)
	}

	s := Sparkline([]float64{1e-1, 1e-2, 1e-3, 1e-4}, true)
	if n := len([]rune(s)); n < 4 {
		t.Errorf("expected at least 4 runes, got %d", n)
	}
	if !strings.HasPrefix(stripANSI(s), "█") {
		t.Errorf("largest error should be the tallest bar: %q", s)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	esc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			esc = true
		case esc && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			esc = false
		case !esc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
