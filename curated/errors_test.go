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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/test"
)

func TestSentinels(t *testing.T) {
	const testPattern = "test error: %s"

	e := curated.Errorf(testPattern, "foo")
	test.Equate(t, e.Error(), "test error: foo")

	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, testPattern))
	test.ExpectedFailure(t, curated.Is(e, "some other pattern"))

	// uncurated errors are never matched
	f := errors.New("uncurated")
	test.ExpectedFailure(t, curated.IsAny(f))
	test.ExpectedFailure(t, curated.Is(f, testPattern))
	test.ExpectedFailure(t, curated.Has(f, testPattern))

	// nil never matches anything
	test.ExpectedFailure(t, curated.IsAny(nil))
	test.ExpectedFailure(t, curated.Is(nil, testPattern))
}

func TestWrapping(t *testing.T) {
	const innerPattern = "inner error: %s"
	const outerPattern = "outer error: %v"

	inner := curated.Errorf(innerPattern, "foo")
	outer := curated.Errorf(outerPattern, inner)

	// Is() only matches the outermost pattern
	test.ExpectedSuccess(t, curated.Is(outer, outerPattern))
	test.ExpectedFailure(t, curated.Is(outer, innerPattern))

	// Has() matches anywhere in the chain
	test.ExpectedSuccess(t, curated.Has(outer, outerPattern))
	test.ExpectedSuccess(t, curated.Has(outer, innerPattern))
}

func TestDeduplication(t *testing.T) {
	inner := curated.Errorf("error: %s", "foo")
	outer := curated.Errorf("error: %v", inner)

	// duplicate adjacent parts are removed from the message
	test.Equate(t, outer.Error(), "error: foo")

	// distinct parts are preserved
	distinct := curated.Errorf("fatal: %v", inner)
	test.Equate(t, distinct.Error(), "fatal: error: foo")
}
