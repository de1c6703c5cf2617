// Package actor implements the seek-to-target motion model used by the
// player avatar.
package actor

import (
	"image/color"

	"github.com/eerium/eerium/internal/iso"
)

// Motion defaults. Speed is in tiles per second of simulated time and the
// tick duration is a constant, so a given sequence of updates always yields
// the same positions.
const (
	DefaultSpeed        = 5.0
	DefaultTickDuration = 1.0 / 300.0
	DefaultMinDistance  = 0.01
)

// Motion configures how far an actor moves per update.
type Motion struct {
	Speed        float64 // tiles per simulated second
	TickDuration float64 // simulated seconds per Update
	MinDistance  float64 // arrival threshold in tiles
}

// DefaultMotion returns the stock motion parameters.
func DefaultMotion() Motion {
	return Motion{
		Speed:        DefaultSpeed,
		TickDuration: DefaultTickDuration,
		MinDistance:  DefaultMinDistance,
	}
}

// Step is the distance covered by one update.
func (m Motion) Step() float64 {
	return m.Speed * m.TickDuration
}

// Actor has a rendered position and a pending target. Input only ever
// changes the target; Update walks the position toward it.
type Actor struct {
	Name  string
	Color color.NRGBA // straight alpha

	motion   Motion
	spawn    iso.TileCoord
	position iso.TileCoord
	target   iso.TileCoord
}

// New creates an actor standing at spawn.
func New(name string, clr color.NRGBA, spawn iso.TileCoord, motion Motion) *Actor {
	a := &Actor{
		Name:   name,
		Color:  clr,
		motion: motion,
		spawn:  spawn,
	}
	a.Reset()
	return a
}

// Reset puts both position and target back on the spawn point.
func (a *Actor) Reset() {
	a.position = a.spawn
	a.target = a.spawn
}

// MoveBy nudges the target by (dx, dy) tiles. Repeated nudges accumulate.
func (a *Actor) MoveBy(dx, dy float64) {
	a.target = a.target.Add(iso.TileCoord{X: dx, Y: dy})
}

// MoveTo replaces the target, optionally snapped to the nearest tile.
func (a *Actor) MoveTo(x, y float64, round bool) {
	a.target = iso.TileCoord{X: x, Y: y}
	if round {
		a.target = a.target.Round()
	}
}

// Update advances the position one tick toward the target. Within the
// arrival threshold, or when the remaining distance is no longer than one
// step, the position lands on the target exactly.
func (a *Actor) Update() {
	d := a.target.Sub(a.position)
	distance := d.Len()
	if distance == 0 {
		return
	}
	if distance <= a.motion.MinDistance {
		a.position = a.target
		return
	}

	step := a.motion.Step()
	if step >= distance {
		a.position = a.target
		return
	}

	a.position.X += d.X / distance * step
	a.position.Y += d.Y / distance * step
}

// Position returns the rendered position.
func (a *Actor) Position() iso.TileCoord {
	return a.position
}

// Target returns the pending destination.
func (a *Actor) Target() iso.TileCoord {
	return a.target
}

// Arrived reports whether the position has reached the target.
func (a *Actor) Arrived() bool {
	return a.position == a.target
}
