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

// Package playmode ties the emulated machine to the gui, the audio mixers
// and the host keyboard, and runs the emulation at the requested speed.
package playmode

import (
	"os"
	"time"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlaudio"
	"github.com/jetsetilly/gopher8/hardware/chip8"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/screen"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/jetsetilly/gopher8/wavwriter"
)

// timers, frames and the beep line all advance at sixty hertz,
// independently of the instruction rate.
const tickHz = 60

// Play sets up and runs the emulation until the program is quit or until
// the machine faults.
//
// The gui is expected to also implement the screen.PixelRenderer
// interface. Instructions run at tps per second; a tps below sixty is
// clamped to sixty.
func Play(g gui.GUI, loader romloader.Loader, tps int, wavFile string, keymapFile string) error {
	if tps < tickHz {
		tps = tickHz
	}

	// a keymap file in the resource directory is used if one has not been
	// named explicitly
	keymap := userinput.DefaultKeyMap()
	if keymapFile == "" {
		p := paths.ResourcePath("keymap.toml")
		if _, err := os.Stat(p); err == nil {
			keymapFile = p
		}
	}
	if keymapFile != "" {
		var err error
		keymap, err = userinput.LoadKeyMap(keymapFile)
		if err != nil {
			return err
		}
		logger.Logf("playmode", "using keymap %s", keymapFile)
	}

	err := loader.Load()
	if err != nil {
		return err
	}

	ch8 := chip8.NewChip8(nil)
	err = ch8.Load(loader.Data)
	if err != nil {
		return err
	}

	scr := screen.NewScreen()

	if r, ok := g.(screen.PixelRenderer); ok {
		scr.AddPixelRenderer(r)
	}

	aud, err := sdlaudio.NewAudio()
	if err != nil {
		return err
	}
	scr.AddAudioMixer(aud)

	if wavFile != "" {
		scr.AddAudioMixer(wavwriter.New(wavFile))
	}

	defer func() {
		if err := scr.End(); err != nil {
			logger.Logf("playmode", "%v", err)
		}
	}()

	events := make(chan gui.Event, 10)
	err = g.SetFeature(gui.ReqSetEventChan, events)
	if err != nil {
		return err
	}

	err = g.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return err
	}

	logger.Logf("playmode", "running %s (%s)", loader.ShortName(), loader.Hash)

	// instructions are run in batches between sixty hertz ticks
	stepsPerTick := tps / tickHz

	tck := time.NewTicker(time.Second / tickHz)
	defer tck.Stop()

	paused := false

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case gui.EventQuit:
				return nil

			case gui.EventKeyboard:
				switch ev.Key {
				case "Escape":
					if ev.Down {
						return nil
					}
				case "Space":
					if ev.Down {
						paused = !paused
						logger.Logf("playmode", "paused = %v", paused)
					}
				default:
					if pad, ok := keymap.Lookup(ev.Key); ok {
						err = ch8.SetKey(pad, ev.Down)
						if err != nil {
							return err
						}
					}
				}
			}

		case <-tck.C:
			if paused {
				continue
			}

			for i := 0; i < stepsPerTick; i++ {
				err = ch8.Step()
				if err != nil {
					return err
				}
			}

			ch8.TickTimers()

			err = scr.NewFrame(ch8.Video.Pixels())
			if err != nil {
				return err
			}

			err = scr.SetBeep(ch8.ShouldBeep())
			if err != nil {
				return err
			}
		}
	}
}
