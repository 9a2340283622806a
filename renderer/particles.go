// This file is part of kvist.
//
// kvist is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// kvist is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with kvist.  If not, see <https://www.gnu.org/licenses/>.

package renderer

import (
	"github.com/chewxy/math32"

	"github.com/kvisten/kvist/random"
)

// particle is the per-particle data uploaded to the GPU. The particle
// vertex program evaluates position, rotation, scale and color from these
// values and the current time, so a living particle costs nothing per frame
// on the CPU. Field order matches the attribute layout; keep fields float32
// and contiguous.
type particle struct {
	spawnX, spawnY float32
	velX, velY     float32
	accX, accY     float32

	// i_kinematics
	drag      float32
	spawnTime float32
	lifetime  float32
	spin      float32

	// i_angle
	rotation float32
	spinDrag float32

	// i_scale
	scaleStartX float32
	scaleStartY float32
	scaleEndX   float32
	scaleEndY   float32

	colorStart Color
	colorEnd   Color

	// i_sheet_pos. a negative layer means untextured
	sheetX, sheetY float32
	layer          float32

	// i_sheet_size
	sheetW, sheetH float32
}

// number of float32 values in a particle.
const particleLen = 29

// ColorProperty randomises each channel of a color independently.
type ColorProperty struct {
	R random.Property
	G random.Property
	B random.Property
	A random.Property
}

// NewColorProperty returns a property that always samples the given color.
func NewColorProperty(c Color) ColorProperty {
	return ColorProperty{
		R: random.NewProperty(c.R, c.R),
		G: random.NewProperty(c.G, c.G),
		B: random.NewProperty(c.B, c.B),
		A: random.NewProperty(c.A, c.A),
	}
}

// Sample a color from the channel properties.
func (cp ColorProperty) Sample() Color {
	return Color{
		R: cp.R.Sample(),
		G: cp.G.Sample(),
		B: cp.B.Sample(),
		A: cp.A.Sample(),
	}
}

// ParticleSystem spawns and retires particles. Every spawn parameter is a
// random.Property so each knob can have its own distribution and range.
//
// The system is CPU-cheap. Spawning draws the random properties once and
// Update() only retires particles that have outlived their lifetime;
// everything in between happens in the vertex program.
type ParticleSystem struct {
	// emitter position. spawn offsets are relative to this
	X float32
	Y float32

	// regions a spawning particle picks from at random. when empty the
	// particles are untextured quads
	Sprites []Region

	OffsetX  random.Property
	OffsetY  random.Property
	Lifetime random.Property

	// velocity and acceleration are sampled as angle plus magnitude. angles
	// are in radians
	VelocityAngle     random.Property
	VelocityMagnitude random.Property
	AccelAngle        random.Property
	AccelMagnitude    random.Property

	Drag     random.Property
	Rotation random.Property
	Spin     random.Property
	SpinDrag random.Property

	ScaleStartX random.Property
	ScaleStartY random.Property
	ScaleEndX   random.Property
	ScaleEndY   random.Property

	ColorStart ColorProperty
	ColorEnd   ColorProperty

	clock     float32
	particles []particle
}

// NewParticleSystem creates a system with a small white puff as its
// default behaviour. Every knob is exported; adjust freely before
// spawning.
func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{
		OffsetX:           random.NewProperty(-2.0, 2.0),
		OffsetY:           random.NewProperty(-2.0, 2.0),
		Lifetime:          random.NewProperty(1.0, 3.0),
		VelocityAngle:     random.NewProperty(0.0, 2.0*math32.Pi),
		VelocityMagnitude: random.NewProperty(20.0, 60.0),
		Drag:              random.NewProperty(0.2, 0.4),
		Rotation:          random.NewProperty(0.0, 2.0*math32.Pi),
		Spin:              random.NewProperty(-1.0, 1.0),
		ScaleStartX:       random.NewProperty(4.0, 8.0),
		ScaleStartY:       random.NewProperty(4.0, 8.0),
		ScaleEndX:         random.NewProperty(0.0, 1.0),
		ScaleEndY:         random.NewProperty(0.0, 1.0),
		ColorStart:        NewColorProperty(White),
		ColorEnd:          NewColorProperty(Color{R: 1, G: 1, B: 1, A: 0}),
	}
}

// Spawn n particles at the emitter position.
func (ps *ParticleSystem) Spawn(n int) {
	for range n {
		velAngle := ps.VelocityAngle.Sample()
		velMag := ps.VelocityMagnitude.Sample()
		accAngle := ps.AccelAngle.Sample()
		accMag := ps.AccelMagnitude.Sample()

		p := particle{
			spawnX:      ps.X + ps.OffsetX.Sample(),
			spawnY:      ps.Y + ps.OffsetY.Sample(),
			velX:        math32.Cos(velAngle) * velMag,
			velY:        math32.Sin(velAngle) * velMag,
			accX:        math32.Cos(accAngle) * accMag,
			accY:        math32.Sin(accAngle) * accMag,
			drag:        ps.Drag.Sample(),
			spawnTime:   ps.clock,
			lifetime:    ps.Lifetime.Sample(),
			spin:        ps.Spin.Sample(),
			rotation:    ps.Rotation.Sample(),
			spinDrag:    ps.SpinDrag.Sample(),
			scaleStartX: ps.ScaleStartX.Sample(),
			scaleStartY: ps.ScaleStartY.Sample(),
			scaleEndX:   ps.ScaleEndX.Sample(),
			scaleEndY:   ps.ScaleEndY.Sample(),
			colorStart:  ps.ColorStart.Sample(),
			colorEnd:    ps.ColorEnd.Sample(),
			layer:       -1,
		}

		if len(ps.Sprites) > 0 {
			reg := ps.Sprites[random.Intn(len(ps.Sprites))]
			p.sheetX = reg.X
			p.sheetY = reg.Y
			p.sheetW = reg.W
			p.sheetH = reg.H
			p.layer = float32(reg.Layer)
		}

		ps.particles = append(ps.particles, p)
	}
}

// Update advances the system clock and retires particles that have
// outlived their lifetime. Retirement order is not preserved.
func (ps *ParticleSystem) Update(dt float32) {
	ps.clock += dt

	for i := 0; i < len(ps.particles); {
		p := &ps.particles[i]
		if ps.clock-p.spawnTime >= p.lifetime {
			ps.particles[i] = ps.particles[len(ps.particles)-1]
			ps.particles = ps.particles[:len(ps.particles)-1]
		} else {
			i++
		}
	}
}

// NumLiving returns the number of particles currently alive.
func (ps *ParticleSystem) NumLiving() int {
	return len(ps.particles)
}

// Clock returns the system's accumulated time. The renderer passes this to
// the particle vertex program.
func (ps *ParticleSystem) Clock() float32 {
	return ps.clock
}

// positionAt mirrors the motion arithmetic of the particle vertex program.
func (p *particle) positionAt(clock float32) (float32, float32) {
	t := clock - p.spawnTime
	damp := math32.Exp(-p.drag * t)
	x := p.spawnX + (p.velX*t+0.5*p.accX*t*t)*damp
	y := p.spawnY + (p.velY*t+0.5*p.accY*t*t)*damp
	return x, y
}

// rotationAt mirrors the spin arithmetic of the particle vertex program.
func (p *particle) rotationAt(clock float32) float32 {
	t := clock - p.spawnTime
	return p.rotation + p.spin*t*math32.Exp(-p.spinDrag*t)
}
