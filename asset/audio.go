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

package asset

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/faiface/beep/vorbis"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/kvisten/kvist/logger"
)

// Samples is decoded audio. Always mono; stereo sources keep the left
// channel only. The sample rate is whatever the source file was encoded at,
// resampling to the output rate happens at mix time.
type Samples struct {
	Data       []float32
	SampleRate int
}

// Duration of the samples in seconds.
func (s Samples) Duration() float32 {
	if s.SampleRate == 0 {
		return 0
	}
	return float32(len(s.Data)) / float32(s.SampleRate)
}

// Audio is a decoded audio asset. The mixer reads samples from its own
// goroutine so access is behind a lock.
type Audio struct {
	file loadedFile

	crit    sync.RWMutex
	samples Samples
}

func newAudio(path string) (*Audio, error) {
	aud := &Audio{file: newLoadedFile(path)}
	if err := aud.reload(); err != nil {
		return nil, err
	}
	return aud, nil
}

// Samples returns the current decoded audio data. The returned value is a
// snapshot; it remains valid after a reload replaces the asset.
func (aud *Audio) Samples() Samples {
	aud.crit.RLock()
	defer aud.crit.RUnlock()
	return aud.samples
}

func (aud *Audio) reload() error {
	b, err := aud.file.read()
	if err != nil {
		return err
	}

	var samples Samples

	switch strings.ToLower(filepath.Ext(aud.file.path)) {
	case ".wav":
		samples, err = decodeWav(b)
	case ".mp3":
		samples, err = decodeMp3(b)
	case ".ogg":
		samples, err = decodeOgg(b)
	default:
		err = fmt.Errorf("unsupported audio format")
	}
	if err != nil {
		return fmt.Errorf("asset: %s: %w", aud.file.path, err)
	}

	aud.crit.Lock()
	reloaded := aud.samples.Data != nil
	aud.samples = samples
	aud.crit.Unlock()

	if reloaded {
		logger.Logf(logger.Allow, "asset", "reloaded %s", aud.file.path)
	}

	return nil
}

func decodeWav(b []byte) (Samples, error) {
	dec := wav.NewDecoder(bytes.NewReader(b))
	if dec == nil {
		return Samples{}, fmt.Errorf("wav: error decoding")
	}

	if !dec.IsValidFile() {
		return Samples{}, fmt.Errorf("wav: not a valid wav file")
	}

	// load all data at once
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Samples{}, fmt.Errorf("wav: %w", err)
	}
	floatBuf := buf.AsFloat32Buffer()

	// copy first channel only of data stream
	data := make([]float32, 0, len(floatBuf.Data)/int(dec.NumChans))
	for i := 0; i < len(floatBuf.Data); i += int(dec.NumChans) {
		data = append(data, floatBuf.Data[i])
	}

	return Samples{Data: data, SampleRate: int(dec.SampleRate)}, nil
}

func decodeMp3(b []byte) (Samples, error) {
	dec, err := mp3.NewDecoder(bytes.NewReader(b))
	if err != nil {
		return Samples{}, fmt.Errorf("mp3: %w", err)
	}

	var data []float32

	// according to the go-mp3 docs:
	//
	// "The stream is always formatted as 16bit (little endian) 2 channels even if
	// the source is single channel MP3. Thus, a sample always consists of 4
	// bytes.".
	err = nil
	chunk := make([]byte, 4096)
	for err != io.EOF {
		var chunkLen int
		chunkLen, err = dec.Read(chunk)
		if err != nil && err != io.EOF {
			return Samples{}, fmt.Errorf("mp3: %w", err)
		}

		// index increment of 4 because:
		//  - two bytes per sample per channel
		//  - we only want the left channel
		for i := 0; i+1 < chunkLen; i += 4 {
			// little endian 16 bit sample
			v := int16(chunk[i]) | int16(chunk[i+1])<<8
			data = append(data, float32(v)/32768.0)
		}
	}

	return Samples{Data: data, SampleRate: dec.SampleRate()}, nil
}

func decodeOgg(b []byte) (Samples, error) {
	stream, format, err := vorbis.Decode(io.NopCloser(bytes.NewReader(b)))
	if err != nil {
		return Samples{}, fmt.Errorf("ogg: %w", err)
	}
	defer stream.Close()

	var data []float32
	buf := make([][2]float64, 512)
	for {
		n, ok := stream.Stream(buf)
		for _, s := range buf[:n] {
			data = append(data, float32(s[0]))
		}
		if !ok {
			break
		}
	}
	if err := stream.Err(); err != nil {
		return Samples{}, fmt.Errorf("ogg: %w", err)
	}

	return Samples{Data: data, SampleRate: int(format.SampleRate)}, nil
}
