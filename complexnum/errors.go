// SPDX-License-Identifier: MIT

package complexnum

import "errors"

// ErrDivisionByZero is returned by Div and DivReal when the divisor is exactly zero.
var ErrDivisionByZero = errors.New("complexnum: division by zero")
