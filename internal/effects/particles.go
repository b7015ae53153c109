// Package effects implements the particle burst shown when food is eaten.
// It runs on its own frame clock and only ever receives Burst calls from
// the simulation, so it cannot influence gameplay.
package effects

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/vovakirdan/snakebite/internal/config"
)

// Particle is a single spark. Positions and velocities are in pixels.
type Particle struct {
	X, Y   float64
	DX, DY float64
	Life   int // Frames left
	Start  int // Life the particle was created with, for fading
}

// Alpha returns the opacity in [0,1] derived from remaining life.
func (p Particle) Alpha() float64 {
	if p.Start <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.Start)
}

// System owns the live particles. It is not safe for concurrent use.
type System struct {
	cfg   config.EffectsConfig
	rng   *rand.Rand
	parts []Particle
}

// New creates an empty particle system.
func New(cfg config.EffectsConfig, seed uint64) *System {
	return &System{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Burst replaces the current particles with a ring of sparks centred on (x, y).
// Angles are evenly spread; speeds are uniform in [MinSpeed, MaxSpeed).
func (s *System) Burst(x, y float64) {
	n := s.cfg.Particles
	s.parts = s.parts[:0]
	if n <= 0 {
		return
	}

	span := s.cfg.MaxSpeed - s.cfg.MinSpeed
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		speed := s.cfg.MinSpeed + s.rng.Float64()*span
		s.parts = append(s.parts, Particle{
			X:     x,
			Y:     y,
			DX:    math.Cos(angle) * speed,
			DY:    math.Sin(angle) * speed,
			Life:  s.cfg.Life,
			Start: s.cfg.InitialLife,
		})
	}
}

// Update advances every particle by one frame. Particles slow down as they
// age and are dropped once their life runs out.
func (s *System) Update() {
	alive := s.parts[:0]
	for _, p := range s.parts {
		ratio := p.Alpha()
		p.X += p.DX * ratio
		p.Y += p.DY * ratio
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	s.parts = alive
}

// Particles returns a copy of the live particles.
func (s *System) Particles() []Particle {
	return append([]Particle(nil), s.parts...)
}

// Active reports whether any particle is still alive.
func (s *System) Active() bool {
	return len(s.parts) > 0
}

// Reset drops all particles.
func (s *System) Reset() {
	s.parts = s.parts[:0]
}
