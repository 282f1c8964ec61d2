package scenario

import (
	"bytes"
	"errors"
	gomath "math"
	"strings"
	"testing"

	"github.com/Faultbox/quantity/internal/config"
	"github.com/Faultbox/quantity/pkg/units"
)

func near(a, b, eps float64) bool {
	return gomath.Abs(a-b) <= eps
}

func TestDisplacementDefaults(t *testing.T) {
	r := New(config.Default(), &bytes.Buffer{})

	d, err := r.Displacement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	x, y := d.End.X, d.End.Y
	if !near(x.Value, 13, 1e-12) {
		t.Errorf("end x = %v, want 13", x.Value)
	}
	if !near(y.Value, 4-5*0.2*0.3048, 1e-12) {
		t.Errorf("end y = %v, want %v", y.Value, 4-5*0.2*0.3048)
	}
	for _, c := range d.End.Components() {
		if !c.Units.Equal(units.Meters) {
			t.Errorf("expected meters, got %q", c.Units)
		}
	}
}

func TestDisplacementZeroDuration(t *testing.T) {
	cfg := config.Default()
	cfg.Displacement.DurationSecond = 0

	d, err := New(cfg, &bytes.Buffer{}).Displacement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.End.X.Equal(d.Start.X) || !d.End.Y.Equal(d.Start.Y) {
		t.Errorf("expected end == start, got %v vs %v", d.End, d.Start)
	}
}

func TestGravity(t *testing.T) {
	g, err := New(config.Default(), &bytes.Buffer{}).Gravity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !near(g.EarthMoonForce.Value, 2e20, 1e19) {
		t.Errorf("force = %v, want ~2e20", g.EarthMoonForce.Value)
	}
	if !near(g.SurfaceAccel.Value, 9.8, 0.1) {
		t.Errorf("accel = %v, want ~9.8", g.SurfaceAccel.Value)
	}
	if !g.SurfaceAccel.Units.Equal(units.Acceleration) {
		t.Errorf("expected acceleration units, got %q", g.SurfaceAccel.Units)
	}
}

func TestRunOutput(t *testing.T) {
	var out bytes.Buffer
	if err := New(config.Default(), &out).Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "<3 m, 4 m> + (<2 m/s, ") {
		t.Errorf("unexpected displacement line: %s", lines[0])
	}
	if !strings.Contains(lines[0], " for 5 s = <13 m, ") {
		t.Errorf("unexpected displacement line: %s", lines[0])
	}
	if !strings.HasSuffix(lines[1], "kg·m/s²") {
		t.Errorf("unexpected force line: %s", lines[1])
	}
	if !strings.HasPrefix(lines[2], "gravity at 3958.8 mi = ") {
		t.Errorf("unexpected gravity line: %s", lines[2])
	}
}

func TestRunWithoutGravity(t *testing.T) {
	cfg := config.Default()
	cfg.Gravity.Enabled = false

	var out bytes.Buffer
	if err := New(cfg, &out).Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := strings.Count(out.String(), "\n"); n != 1 {
		t.Errorf("expected only the displacement line, got %d lines", n)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRunIgnoresWriterErrors(t *testing.T) {
	// Printing is best effort; the computation still succeeds.
	if err := New(config.Default(), failWriter{}).Run(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
