// Package surdalg is an exact symbolic-arithmetic tower: rationals, sums of
// square roots, their complex extensions, polynomials and square matrices,
// all computed without rounding.
//
// What is surdalg?
//
//	A small, dependency-light library that brings together:
//		• numtheory: cached prime sieve, factorization, gcd, divisor sums
//		• algebra: Ring / Field / UFD interfaces, Pow, GCD/LCM, fractions
//		• field: Rational, RatioRoots (Σ qᵣ·√r), Complex over either
//		• poly: dense polynomials, Horner evaluation, exact quadratic roots
//		• matrix: Gauss-Jordan with transform and rank, determinant,
//		  characteristic polynomial, exact eigenvalues for n ≤ 2
//		• worksheet: YAML worksheets evaluated into LaTeX reports
//
// Why exact?
//
//   - Every equality and zero test is structural, never tolerance based.
//   - Radicals stay radicals: the roots of x² − x − 1 are ½ ± ½√5.
//   - Results typeset themselves: every value has a LaTeX method.
//
// Layout:
//
//	numtheory/    prime cache and integer kernels
//	algebra/      generic scaffolding and the Integer UFD
//	field/        scalar fields
//	poly/         Poly[F] and Solve / SolveSymbolic
//	matrix/       SquareMatrix[T] and its kernels
//	worksheet/    YAML worksheets → LaTeX reports
//	cmd/surdcalc  command-line front end for worksheets
//
// Quick example:
//
//	m, _ := matrix.FromInts([][]int64{{1, 1}, {1, 0}})
//	roots, _ := matrix.EigenRoots(m)
//	fmt.Println(roots[0].LaTeX()) // \frac{1}{2} + \frac{1}{2}\sqrt{5}
//
//	go get github.com/katalvlaran/surdalg
package surdalg
