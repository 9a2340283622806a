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

package audio_test

import (
	"testing"

	"github.com/kvisten/kvist/asset"
	"github.com/kvisten/kvist/audio"
	"github.com/kvisten/kvist/test"
)

// constant tone at the mixer's native rate so no resampling takes place.
func flatTone(value float32, n int) asset.Samples {
	data := make([]float32, n)
	for i := range data {
		data[i] = value
	}
	return asset.Samples{Data: data, SampleRate: audio.SampleRate}
}

func TestMixerSilence(t *testing.T) {
	m := audio.NewMixer()

	buf := make([]float32, 64)
	buf[0] = 99.0
	m.Mix(buf)

	// an idle mixer outputs zeros, including over stale buffer content
	for _, s := range buf {
		test.ExpectEquality(t, s, 0.0)
	}
}

func TestMixerSingleSource(t *testing.T) {
	m := audio.NewMixer()
	m.Play(flatTone(0.5, 128), audio.DefaultOptions())
	test.ExpectEquality(t, m.NumPlaying(), 1)

	buf := make([]float32, 64)
	m.Mix(buf)
	for _, s := range buf {
		test.ExpectApproximate(t, s, 0.5, 0.0001)
	}

	// source has exactly 64 samples left. it ends with this mix
	m.Mix(buf)
	test.ExpectApproximate(t, buf[63], 0.5, 0.0001)
	test.ExpectEquality(t, m.NumPlaying(), 0)
}

func TestMixerAdditive(t *testing.T) {
	m := audio.NewMixer()
	m.Play(flatTone(0.25, 64), audio.DefaultOptions())
	m.Play(flatTone(0.5, 64), audio.DefaultOptions())

	buf := make([]float32, 32)
	m.Mix(buf)
	for _, s := range buf {
		test.ExpectApproximate(t, s, 0.75, 0.0001)
	}
}

func TestMixerGain(t *testing.T) {
	m := audio.NewMixer()

	opts := audio.DefaultOptions()
	opts.Gain = 0.5
	id := m.Play(flatTone(1.0, 256), opts)

	buf := make([]float32, 32)
	m.Mix(buf)
	test.ExpectApproximate(t, buf[0], 0.5, 0.0001)

	m.SetGain(id, 0.25)
	m.Mix(buf)
	test.ExpectApproximate(t, buf[0], 0.25, 0.0001)

	m.SetMasterGain(0.5)
	m.Mix(buf)
	test.ExpectApproximate(t, buf[0], 0.125, 0.0001)
}

func TestMixerLoop(t *testing.T) {
	m := audio.NewMixer()

	opts := audio.DefaultOptions()
	opts.Loop = true
	id := m.Play(flatTone(0.5, 16), opts)

	// many times longer than the source
	buf := make([]float32, 256)
	m.Mix(buf)
	test.ExpectEquality(t, m.NumPlaying(), 1)
	test.ExpectApproximate(t, buf[255], 0.5, 0.0001)

	m.Stop(id)
	test.ExpectEquality(t, m.NumPlaying(), 0)
}

func TestMixerPitch(t *testing.T) {
	m := audio.NewMixer()

	// double speed exhausts the source in half the samples
	opts := audio.DefaultOptions()
	opts.Pitch = 2.0
	m.Play(flatTone(0.5, 64), opts)

	buf := make([]float32, 32)
	m.Mix(buf)
	test.ExpectEquality(t, m.NumPlaying(), 0)
}

func TestMixerResampling(t *testing.T) {
	m := audio.NewMixer()

	// a source at half the output rate plays for twice as many output
	// samples
	src := asset.Samples{Data: make([]float32, 32), SampleRate: audio.SampleRate / 2}
	for i := range src.Data {
		src.Data[i] = 1.0
	}
	m.Play(src, audio.DefaultOptions())

	buf := make([]float32, 32)
	m.Mix(buf)
	test.ExpectEquality(t, m.NumPlaying(), 1)
	m.Mix(buf)
	test.ExpectEquality(t, m.NumPlaying(), 0)
}

func TestMixerStopAll(t *testing.T) {
	m := audio.NewMixer()
	m.Play(flatTone(0.5, 64), audio.DefaultOptions())
	m.Play(flatTone(0.5, 64), audio.DefaultOptions())
	test.ExpectEquality(t, m.NumPlaying(), 2)

	m.StopAll()
	test.ExpectEquality(t, m.NumPlaying(), 0)

	buf := make([]float32, 16)
	m.Mix(buf)
	test.ExpectEquality(t, buf[0], 0.0)
}
