// This file is part of padbind.
//
// padbind is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// padbind is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with padbind.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. The pattern is how curated errors are differentiated. For
// example:
//
//	e := curated.Errorf(inputs.UnknownConfiguration, id)
//
//	if curated.Is(e, inputs.UnknownConfiguration) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("padbind: %v", e)
//
//	if curated.Has(f, inputs.UnknownConfiguration) {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference as being 'expected' and
// 'unexpected' depending on how we choose to handle the result of the
// function call.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For example, the following will print
// "inputs: unknown configuration: foo" and not "inputs: inputs: unknown
// configuration: foo".
//
//	e := curated.Errorf("inputs: unknown configuration: %s", "foo")
//	f := curated.Errorf("inputs: %v", e)
//	fmt.Println(f)
//
// For the purposes of this package we think of chains as being composed of
// parts separated by the sub-string ': '.
//
// Sentinel patterns are stored as exported string constants in the package
// that raises them.
package curated
