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
	"encoding/binary"
	"fmt"
	"math"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/kvisten/kvist/logger"
)

// the buffer length is important to get right. we don't want it to be long
// because it introduces lag between an event and the sound it triggers; by
// the same token we don't want it too short because the queue will drain
// before the next service and the device will click over to silence.
//
// the following value has been discovered through trial and error. the
// precise value is not critical.
const bufferLength = 512

// water marks for the SDL audio queue, in bytes. Service() tops the queue up
// to the high mark whenever it has drained below the low mark
const (
	lowWaterMark  = bufferLength * 4 * 2
	highWaterMark = bufferLength * 4 * 8
)

// Player drains a Mixer into an SDL audio device. Service() must be called
// regularly, once per frame is enough at any reasonable frame rate.
type Player struct {
	mixer *Mixer

	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	mixBuf []float32
	outBuf []byte
}

// NewPlayer opens an audio device for the mixer. The SDL audio subsystem
// must have been initialised.
func NewPlayer(mixer *Mixer) (*Player, error) {
	ply := &Player{
		mixer:  mixer,
		mixBuf: make([]float32, bufferLength),
		outBuf: make([]byte, bufferLength*4),
	}

	spec := &sdl.AudioSpec{
		Freq:     SampleRate,
		Format:   sdl.AUDIO_F32SYS,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	ply.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	ply.spec = actualSpec

	logger.Logf(logger.Allow, "audio", "device opened: %dHz", actualSpec.Freq)

	sdl.PauseAudioDevice(ply.id, false)

	return ply, nil
}

// Service the audio device, mixing and queueing more samples if the queue
// has drained below the low water mark.
func (ply *Player) Service() error {
	if sdl.GetQueuedAudioSize(ply.id) > lowWaterMark {
		return nil
	}

	for sdl.GetQueuedAudioSize(ply.id) < highWaterMark {
		ply.mixer.Mix(ply.mixBuf)

		for i, s := range ply.mixBuf {
			binary.NativeEndian.PutUint32(ply.outBuf[i*4:], math.Float32bits(s))
		}

		if err := sdl.QueueAudio(ply.id, ply.outBuf); err != nil {
			return fmt.Errorf("audio: %w", err)
		}
	}

	return nil
}

// Pause or resume playback. Sounds continue to exist while paused, they
// just don't advance.
func (ply *Player) Pause(pause bool) {
	sdl.PauseAudioDevice(ply.id, pause)
}

// Close the audio device.
func (ply *Player) Close() error {
	sdl.CloseAudioDevice(ply.id)
	return nil
}
