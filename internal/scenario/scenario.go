// Package scenario runs the kinematics demo scenarios described by a config.
package scenario

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Faultbox/quantity/internal/config"
	"github.com/Faultbox/quantity/internal/logger"
	"github.com/Faultbox/quantity/pkg/physics"
	"github.com/Faultbox/quantity/pkg/units"
)

// feetPerSecond is the unit the config uses for the y velocity.
var feetPerSecond = units.Feet.Div(units.Seconds)

// Displacement is the outcome of moving from Start at Velocity for Duration.
type Displacement struct {
	Start    physics.Scalar2
	Velocity physics.Scalar2
	Duration physics.Scalar
	End      physics.Scalar2
}

// Gravity is the outcome of the gravity scenario.
type Gravity struct {
	EarthMoonForce physics.Scalar
	SurfaceAccel   physics.Scalar
}

// Runner runs the scenarios and prints their results.
type Runner struct {
	cfg *config.Config
	out io.Writer
	log *zap.Logger
}

// New creates a Runner writing results to out.
func New(cfg *config.Config, out io.Writer) *Runner {
	return &Runner{
		cfg: cfg,
		out: out,
		log: logger.Named("scenario"),
	}
}

// Run runs every enabled scenario in order.
func (r *Runner) Run() error {
	d, err := r.Displacement()
	if err != nil {
		return fmt.Errorf("displacement: %w", err)
	}
	fmt.Fprintf(r.out, "%v + (%v) for %v = %v\n", d.Start, d.Velocity, d.Duration, d.End)

	if !r.cfg.Gravity.Enabled {
		r.log.Debug("gravity scenario disabled")
		return nil
	}

	g, err := r.Gravity()
	if err != nil {
		return fmt.Errorf("gravity: %w", err)
	}
	fmt.Fprintf(r.out, "earth-moon force = %v\n", g.EarthMoonForce)
	fmt.Fprintf(r.out, "gravity at %v mi = %v\n", r.cfg.Gravity.BodyDistanceMiles, g.SurfaceAccel)
	return nil
}

// Displacement computes start + velocity*duration from the config.
func (r *Runner) Displacement() (Displacement, error) {
	c := r.cfg.Displacement

	d := Displacement{
		Start: physics.NewScalar2(
			physics.New(c.StartXMeters, units.Meters),
			physics.New(c.StartYMeters, units.Meters),
		),
		Velocity: physics.NewScalar2(
			physics.New(c.VelocityXMPS, units.Velocity),
			physics.New(c.VelocityYFPS, feetPerSecond),
		),
		Duration: physics.New(c.DurationSecond, units.Seconds),
	}

	moved := d.Velocity.Scale(d.Duration)
	end, err := d.Start.Add(moved)
	if err != nil {
		return Displacement{}, err
	}
	d.End = end

	r.log.Debug("displacement",
		logger.Quantities("start", d.Start.Components()),
		logger.Quantities("velocity", d.Velocity.Components()),
		logger.Quantity("duration", d.Duration),
		logger.Quantities("end", d.End.Components()),
	)
	return d, nil
}

// Gravity computes the Earth-Moon attraction and Earth's pull at the
// configured distance from its center.
func (r *Runner) Gravity() (Gravity, error) {
	force, err := physics.GravitationalForce(physics.EarthMass, physics.MoonMass, physics.EarthMoonDistance)
	if err != nil {
		return Gravity{}, err
	}

	distance := physics.New(r.cfg.Gravity.BodyDistanceMiles, units.Miles)
	accel, err := physics.GravitationalAcceleration(physics.EarthMass, distance)
	if err != nil {
		return Gravity{}, err
	}

	r.log.Debug("gravity",
		logger.Quantity("force", force),
		logger.Quantity("distance", distance),
		logger.Quantity("accel", accel),
	)
	return Gravity{EarthMoonForce: force, SurfaceAccel: accel}, nil
}
