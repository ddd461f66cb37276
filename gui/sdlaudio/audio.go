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

// Package sdlaudio plays the beep line through an SDL audio device. The
// machine has a single tone: while the sound timer is running a 700Hz
// square wave is queued to the device, and silence otherwise.
package sdlaudio

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopher8/curated"
)

const sampleFreq = 44100
const toneFreq = 700

// number of samples generated per queueing pass. the precise value is not
// critical: too long introduces lag when the beep ends, too short means
// queueing too often.
const bufferLength = 512

// amount of tone to keep queued on the device while the beep line is on.
// enough to ride out irregular SetBeep() cadence without an underflow
// click.
const queueTarget = sampleFreq / 10

// Audio outputs the beep line using SDL. Implements the screen.AudioMixer
// interface.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	buffer []uint8

	// position in the square wave, maintained across buffers so the tone
	// is continuous
	phase int

	beeping bool
}

// NewAudio is the preferred method of initialisation for the Audio type.
// The SDL library must have been initialised already (the sdlplay package
// does this).
func NewAudio() (*Audio, error) {
	aud := &Audio{
		buffer: make([]uint8, bufferLength),
	}

	spec := &sdl.AudioSpec{
		Freq:     sampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	aud.spec = actualSpec

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetBeep implements the screen.AudioMixer interface.
func (aud *Audio) SetBeep(on bool) error {
	if !on {
		if aud.beeping {
			sdl.ClearQueuedAudio(aud.id)
			aud.beeping = false
			aud.phase = 0
		}
		return nil
	}

	aud.beeping = true

	// keep the device queue topped up with tone
	halfPeriod := sampleFreq / (toneFreq * 2)
	for sdl.GetQueuedAudioSize(aud.id) < queueTarget {
		for i := range aud.buffer {
			if (aud.phase/halfPeriod)%2 == 0 {
				aud.buffer[i] = aud.spec.Silence + 32
			} else {
				aud.buffer[i] = aud.spec.Silence - 32
			}
			aud.phase++
		}

		if err := sdl.QueueAudio(aud.id, aud.buffer); err != nil {
			return curated.Errorf("sdlaudio: %v", err)
		}
	}

	return nil
}

// EndMixing implements the screen.AudioMixer interface.
func (aud *Audio) EndMixing() error {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	return nil
}
