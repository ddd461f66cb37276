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

// Package test contains helper functions to remove common boilerplate from
// the project's tests.
//
// The Equate() function compares a value against an expected value,
// failing the test if they differ.
//
// The ExpectedSuccess() and ExpectedFailure() functions test a bool or
// error value for the success or failure condition suitable for its type.
//
// The Writer type implements io.Writer and records everything written to
// it, for comparison with the Compare() function.
package test
