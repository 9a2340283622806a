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

package audio

import (
	"sync"

	"github.com/kvisten/kvist/asset"
)

// SampleRate of all mixer output.
const SampleRate = 48000

// SourceID identifies a playing sound for later adjustment. IDs are never
// reused within the lifetime of a Mixer.
type SourceID int

// Options controls how a sound is played. The zero value is not useful;
// start from DefaultOptions.
type Options struct {
	// Gain is a linear volume multiplier
	Gain float32

	// Pitch scales playback speed. 2.0 plays an octave up at double speed
	Pitch float32

	// Loop restarts the sound from the beginning when it ends
	Loop bool
}

// DefaultOptions plays a sound once at full volume and natural speed.
func DefaultOptions() Options {
	return Options{Gain: 1.0, Pitch: 1.0}
}

type source struct {
	id      SourceID
	samples asset.Samples
	opts    Options

	// playback position in source samples. fractional positions are
	// resolved with linear interpolation
	pos float64
}

// Mixer combines playing sounds into a single mono float32 stream at
// SampleRate. It performs no playback itself; something must drain it by
// calling Mix(), typically a Player.
//
// All methods are safe to call concurrently with Mix().
type Mixer struct {
	crit    sync.Mutex
	sources []*source
	nextID  SourceID
	master  float32
}

// NewMixer is the preferred method of initialisation for the Mixer type.
func NewMixer() *Mixer {
	return &Mixer{master: 1.0}
}

// Play starts a sound. The returned ID can be used to adjust or stop the
// sound while it plays.
func (m *Mixer) Play(samples asset.Samples, opts Options) SourceID {
	m.crit.Lock()
	defer m.crit.Unlock()

	id := m.nextID
	m.nextID++
	m.sources = append(m.sources, &source{id: id, samples: samples, opts: opts})
	return id
}

// SetGain adjusts the volume of a playing sound. Does nothing if the sound
// has already ended.
func (m *Mixer) SetGain(id SourceID, gain float32) {
	m.crit.Lock()
	defer m.crit.Unlock()

	for _, src := range m.sources {
		if src.id == id {
			src.opts.Gain = gain
			return
		}
	}
}

// SetPitch adjusts the playback speed of a playing sound.
func (m *Mixer) SetPitch(id SourceID, pitch float32) {
	m.crit.Lock()
	defer m.crit.Unlock()

	for _, src := range m.sources {
		if src.id == id {
			src.opts.Pitch = pitch
			return
		}
	}
}

// Stop a playing sound. Does nothing if the sound has already ended.
func (m *Mixer) Stop(id SourceID) {
	m.crit.Lock()
	defer m.crit.Unlock()

	for i, src := range m.sources {
		if src.id == id {
			m.sources = append(m.sources[:i], m.sources[i+1:]...)
			return
		}
	}
}

// StopAll removes every playing sound.
func (m *Mixer) StopAll() {
	m.crit.Lock()
	defer m.crit.Unlock()
	m.sources = m.sources[:0]
}

// SetMasterGain scales the volume of all sounds, current and future.
func (m *Mixer) SetMasterGain(gain float32) {
	m.crit.Lock()
	defer m.crit.Unlock()
	m.master = gain
}

// NumPlaying returns the number of sounds currently playing.
func (m *Mixer) NumPlaying() int {
	m.crit.Lock()
	defer m.crit.Unlock()
	return len(m.sources)
}

// Mix the next len(buf) output samples into buf, advancing every playing
// sound. The buffer is zeroed first; silence is all zeros. Sounds that reach
// their end during the mix are removed unless they loop.
func (m *Mixer) Mix(buf []float32) {
	m.crit.Lock()
	defer m.crit.Unlock()

	clear(buf)

	for i := 0; i < len(m.sources); {
		if m.sources[i].mix(buf, m.master) {
			i++
		} else {
			m.sources = append(m.sources[:i], m.sources[i+1:]...)
		}
	}
}

// mix adds the source's next samples into buf. returns false when the
// source has ended.
func (src *source) mix(buf []float32, master float32) bool {
	data := src.samples.Data
	if len(data) == 0 {
		return false
	}

	// step through the source at a rate that accounts for both the pitch
	// adjustment and the difference in sample rates
	step := float64(src.opts.Pitch) * float64(src.samples.SampleRate) / SampleRate
	if step <= 0 {
		return false
	}

	gain := src.opts.Gain * master

	for i := range buf {
		if src.pos >= float64(len(data)) {
			if !src.opts.Loop {
				return false
			}
			for src.pos >= float64(len(data)) {
				src.pos -= float64(len(data))
			}
		}

		// linear interpolation between adjacent source samples
		p := int(src.pos)
		frac := float32(src.pos - float64(p))
		s := data[p]
		if p+1 < len(data) {
			s += (data[p+1] - s) * frac
		}

		buf[i] += s * gain
		src.pos += step
	}

	return src.opts.Loop || src.pos < float64(len(data))
}
