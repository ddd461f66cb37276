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

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopher8/gui"
)

// Service the SDL event queue and any outstanding feature requests.
//
// MUST ONLY be called from the main thread and as part of a larger loop.
func (scr *SdlPlay) Service() {
	// do not check for events if no event channel has been set
	if scr.events != nil {
		// loop until there are no more events to retrieve. servicing just
		// one event per call is not enough; queued events would take one
		// call longer each to resolve
		empty := false
		for !empty {
			// check for SDL events, timing out straight away if there's
			// nothing
			ev := sdl.WaitEventTimeout(1)

			switch ev := ev.(type) {
			case *sdl.QuitEvent:
				scr.events <- gui.EventQuit{}

			case *sdl.KeyboardEvent:
				if ev.Repeat == 0 {
					switch ev.Type {
					case sdl.KEYDOWN:
						scr.events <- gui.EventKeyboard{
							Key:  sdl.GetKeyName(ev.Keysym.Sym),
							Down: true}
					case sdl.KEYUP:
						scr.events <- gui.EventKeyboard{
							Key:  sdl.GetKeyName(ev.Keysym.Sym),
							Down: false}
					}
				}

			case nil:
				// a nil value means WaitEventTimeout has timed out and
				// the event queue is empty
				empty = true
			}
		}
	}

	// run any outstanding feature requests
	select {
	case req := <-scr.featureReq:
		scr.serviceFeatureRequest(req)
	default:
	}
}
