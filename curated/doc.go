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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar
// to the Errorf() function in the fmt package: it takes a formatting
// pattern and placeholder values, and returns an error.
//
// The Is() function can be used to check whether an error was created with
// a specific pattern. For example:
//
//	e := curated.Errorf("error: value = %d", 10)
//
//	if curated.Is(e, "error: value = %d") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere
// in the error chain, rather than only at the outermost level. The IsAny()
// function answers whether the error is curated at all, which is useful
// for distinguishing expected errors from unexpected ones.
//
// The Error() function implementation normalises the message chain so that
// it does not contain duplicate adjacent parts. This alleviates the
// problem of when and how to wrap errors: a package can always wrap with
// its own "pkg: %v" pattern without worrying about producing messages of
// the form "pkg: pkg: not yet implemented".
//
// For the purposes of this package a chain is composed of parts separated
// by the sub-string ': ' as suggested on p239 of "The Go Programming
// Language" (Donovan, Kernighan).
//
// There is no special provision for sentinal errors but they are
// achievable in practice through the Is() and Has() functions. Sentinal
// patterns should be stored as a const string, suitably named and
// commented.
package curated
