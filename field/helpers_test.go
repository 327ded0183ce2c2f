// SPDX-License-Identifier: MIT
package field_test

import (
	"github.com/katalvlaran/surdalg/field"
)

func q(n, d int64) field.Rational { return field.MustRational(n, d) }

func rr(terms map[int64]field.Rational) field.RatioRoots { return field.MustRatioRoots(terms) }

func cq(re, im field.Rational) field.ComplexRational { return field.NewComplex(re, im) }
