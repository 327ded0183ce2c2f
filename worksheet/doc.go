// SPDX-License-Identifier: MIT

// Package worksheet evaluates matrix worksheets described in YAML and
// reports every result as LaTeX.
//
// A worksheet names a schema version, a scalar field, one square matrix of
// exact literals and the operations to run on it:
//
//	schema: 1.0.0
//	field: rational            # rational | complex-rational
//	matrix:
//	  - ["3", "1"]
//	  - ["0", "2"]
//	operations: [eliminate, rank, determinant, charpoly, eigen]
//
// Complex cells are either a plain literal (the real part) or a mapping
// {re: "1/2", im: "3"}. Load reports every malformed field and cell at
// once; Run records per-operation failures (a singular inverse, eigenvalues
// of a 3×3 matrix) in Report.Errors and keeps going.
package worksheet
