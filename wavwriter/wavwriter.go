// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter records the beep line to disk as a WAV file. Note
// that audio data is buffered in memory in its entirety and written to
// disk at EndMixing(). It is therefore probably only suitable for testing
// purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/gopher8/curated"
)

const sampleFreq = 44100
const toneFreq = 700

// number of samples generated per SetBeep() call. the host forwards the
// beep line at the timer rate of 60Hz.
const samplesPerBeep = sampleFreq / 60

// WavWriter implements the screen.AudioMixer interface. Each SetBeep()
// call appends one timer-tick's worth of samples: a 700Hz square wave
// when the beep line is on, silence otherwise.
type WavWriter struct {
	filename string
	samples  []int
	phase    int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) *WavWriter {
	return &WavWriter{
		filename: filename,
		samples:  make([]int, 0),
	}
}

// SetBeep implements the screen.AudioMixer interface.
func (aw *WavWriter) SetBeep(on bool) error {
	halfPeriod := sampleFreq / (toneFreq * 2)

	for i := 0; i < samplesPerBeep; i++ {
		if !on {
			aw.samples = append(aw.samples, 128)
			continue
		}

		if (aw.phase/halfPeriod)%2 == 0 {
			aw.samples = append(aw.samples, 160)
		} else {
			aw.samples = append(aw.samples, 96)
		}
		aw.phase++
	}

	return nil
}

// EndMixing implements the screen.AudioMixer interface. The buffered
// samples are encoded and written to disk.
func (aw *WavWriter) EndMixing() error {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer f.Close()

	// 8bit mono PCM
	enc := wav.NewEncoder(f, sampleFreq, 8, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleFreq,
		},
		Data:           aw.samples,
		SourceBitDepth: 8,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
