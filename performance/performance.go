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

// Package performance contains helper functions relating to the
// performance of the emulator. The Check() function runs the emulation
// flat out, without a gui, for a set amount of time and reports the
// instruction rate.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/hardware/chip8"
	"github.com/jetsetilly/gopher8/romloader"
)

// sentinal errors returned by the performance package.
const (
	PerformanceError = "performance: %v"
)

// Check the performance of the emulator using the supplied ROM.
//
// The emulation runs uncapped for the specified duration. A cpu and
// memory profile is written when the profile argument is true. The
// screen digest of the final frame is included in the report so runs of
// the same ROM can be compared.
func Check(output io.Writer, profile bool, loader romloader.Loader, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	err = loader.Load()
	if err != nil {
		return err
	}

	ch8 := chip8.NewChip8(nil)
	err = ch8.Load(loader.Data)
	if err != nil {
		return err
	}

	numSteps := 0

	runner := func() error {
		// setup trigger that expires when duration has elapsed
		timesUp := make(chan bool)

		time.AfterFunc(dur, func() {
			timesUp <- true
		})

		// only check the timer every PerformanceBrake instructions.
		// checking the channel is relatively expensive
		performanceFilter := 0

		return ch8.Run(func() (bool, error) {
			numSteps++
			performanceFilter++
			if performanceFilter >= chip8.PerformanceBrake {
				performanceFilter = 0
				select {
				case <-timesUp:
					return false, nil
				default:
				}
			}
			return true, nil
		})
	}

	err = cpuProfile(profile, "cpu.profile", runner)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	err = memProfile(profile, "mem.profile")
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	// fingerprint the final frame. the digest is deterministic for a
	// given ROM and duration is not, so the hash is only comparable
	// between runs of ROMs that settle into a stable image
	dig := digest.NewVideo()
	err = dig.NewFrame(0, ch8.Video.Pixels())
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	ips := float64(numSteps) / dur.Seconds()
	output.Write([]byte(fmt.Sprintf("%.0f instructions/sec (%d instructions in %.2f seconds)\n", ips, numSteps, dur.Seconds())))
	output.Write([]byte(fmt.Sprintf("screen digest: %s\n", dig.Hash())))

	return nil
}
