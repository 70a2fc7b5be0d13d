// SPDX-License-Identifier: MIT

// Package complexnum provides the Complex value type used for every amplitude
// and matrix entry in quanta.
//
// What & Why:
//
//	Complex is a plain (Re, Im) pair with value semantics: every operation
//	returns a new value and nothing is mutated. Equality is approximate
//	(componentwise, epsilon-bounded) to absorb floating-point drift that
//	accumulates across gate applications.
//
// Errors:
//
//	Division by an exact zero is the only partial operation; Div and DivReal
//	return ErrDivisionByZero instead of producing Inf/NaN.
//
// Complexity:
//
//	All operations are O(1) and allocation-free.
package complexnum
