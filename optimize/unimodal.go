// SPDX-License-Identifier: MIT

// Package optimize: geometric bracketing of a 1-D minimum. The bracket is
// the precondition of golden-section narrowing: an interval known to
// contain exactly one local minimum.
package optimize

import "github.com/katalvlaran/numopt/matrix"

// bracketH is the fixed initial half-width of the probe triple.
const bracketH = 1.0

// UnimodalInterval brackets a minimum of the 1-D function f around x0.
//
// Stage 1 (Probe): evaluate f at x0-h, x0 and x0+h with h = 1. If the
// center value is strictly smaller than both neighbors, the triple already
// brackets and [x0-h, x0+h] is returned.
// Stage 2 (Expand): otherwise walk in the decreasing direction, doubling a
// step multiplier each iteration and shifting the window (the midpoint
// becomes an endpoint, the far endpoint is discarded) until the function
// value stops decreasing in that direction.
//
// The expansion is unbounded by contract: a function that decreases forever
// in one direction never returns. Evaluation errors propagate immediately.
//
// Errors: ErrNilFunction, ErrScalarPoint and any evaluation failure of f.
// Complexity: O(log(width)) evaluations for a minimum at finite distance.
func UnimodalInterval(f Function, x0 float64) (left, right float64, err error) {
	if f == nil {
		return 0, 0, ErrNilFunction
	}

	// One reusable 1×1 probe point for all evaluations.
	point, err := matrix.NewVector(x0)
	if err != nil {
		return 0, 0, err
	}
	eval := func(t float64) (float64, error) {
		if err := point.Set(0, 0, t); err != nil {
			return 0, err
		}

		return f.Value(point)
	}

	m := x0
	l, r := x0-bracketH, x0+bracketH
	fm, err := eval(m)
	if err != nil {
		return 0, 0, err
	}
	fl, err := eval(l)
	if err != nil {
		return 0, 0, err
	}
	fr, err := eval(r)
	if err != nil {
		return 0, 0, err
	}

	step := 1.0
	switch {
	case fm < fr && fm < fl:
		// The initial triple already brackets the minimum.
	case fm > fr:
		// Expand right while the function keeps decreasing.
		for {
			l, m, fm = m, r, fr
			step *= 2
			r = x0 + bracketH*step
			if fr, err = eval(r); err != nil {
				return 0, 0, err
			}
			if fm <= fr {
				break
			}
		}
	default:
		// Expand left while the function keeps decreasing.
		for {
			r, m, fm = m, l, fl
			step *= 2
			l = x0 - bracketH*step
			if fl, err = eval(l); err != nil {
				return 0, 0, err
			}
			if fm <= fl {
				break
			}
		}
	}

	return l, r, nil
}
