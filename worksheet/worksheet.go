// SPDX-License-Identifier: MIT

package worksheet

import (
	"fmt"
	"slices"

	"github.com/blang/semver/v4"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/surdalg/field"
	"github.com/katalvlaran/surdalg/matrix"
)

// SupportedSchemas is the range of schema versions Load accepts.
const SupportedSchemas = ">=1.0.0 <2.0.0"

var supported = semver.MustParseRange(SupportedSchemas)

// Field names.
const (
	FieldRational        = "rational"
	FieldComplexRational = "complex-rational"
)

// Operation names, in the order Run evaluates them when a worksheet lists none.
const (
	OpEliminate   = "eliminate"
	OpRank        = "rank"
	OpDeterminant = "determinant"
	OpTrace       = "trace"
	OpTranspose   = "transpose"
	OpInverse     = "inverse"
	OpCharPoly    = "charpoly"
	OpEigen       = "eigen"
	OpNumeric     = "numeric"
)

var allOperations = []string{
	OpEliminate, OpRank, OpDeterminant, OpTrace, OpTranspose,
	OpInverse, OpCharPoly, OpEigen, OpNumeric,
}

// Operations returns every operation name Run understands.
func Operations() []string { return slices.Clone(allOperations) }

// DefaultVariable is the polynomial variable used for charpoly.
const DefaultVariable = `\lambda`

// Worksheet is one decoded worksheet document.
type Worksheet struct {
	Schema     string   `yaml:"schema"`
	Title      string   `yaml:"title,omitempty"`
	Field      string   `yaml:"field"`
	Variable   string   `yaml:"variable,omitempty"`
	Matrix     [][]Cell `yaml:"matrix"`
	Operations []string `yaml:"operations,omitempty"`
}

// Cell is a matrix literal: Re alone for real cells, Re and Im for complex ones.
type Cell struct {
	Re string
	Im string
}

// UnmarshalYAML accepts a scalar ("1/2") or a mapping ({re: "1", im: "-2"}).
func (c *Cell) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		c.Re, c.Im = node.Value, ""
		return nil
	case yaml.MappingNode:
		var raw struct {
			Re string `yaml:"re"`
			Im string `yaml:"im"`
		}
		if err := node.Decode(&raw); err != nil {
			return err
		}
		c.Re, c.Im = raw.Re, raw.Im
		return nil
	default:
		return fmt.Errorf("%w: line %d: cell must be a literal or {re, im}", ErrSchema, node.Line)
	}
}

// MarshalYAML writes a real cell as a scalar and a complex one as a mapping.
func (c Cell) MarshalYAML() (interface{}, error) {
	if c.Im == "" {
		return c.Re, nil
	}

	return map[string]string{"re": c.Re, "im": c.Im}, nil
}

// Load decodes a YAML worksheet and validates it.
// Errors: YAML syntax errors; ErrSchema (possibly several, combined) for
// structural problems; field parse errors for bad cells.
func Load(data []byte) (*Worksheet, error) {
	var ws Worksheet
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil, sheetErrorf(opLoad, err)
	}
	if err := ws.Validate(); err != nil {
		return nil, err
	}

	return &ws, nil
}

// Validate checks every part of the worksheet and returns all problems
// combined with multierr; multierr.Errors splits them again. A nil result
// means Run can build the matrix.
func (ws *Worksheet) Validate() error {
	var errs error

	if v, err := semver.ParseTolerant(ws.Schema); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("%w: schema %q: %v", ErrSchema, ws.Schema, err))
	} else if !supported(v) {
		errs = multierr.Append(errs, fmt.Errorf("%w: schema %s outside %s", ErrSchema, v, SupportedSchemas))
	}

	switch ws.Field {
	case FieldRational, FieldComplexRational:
	default:
		errs = multierr.Append(errs, fmt.Errorf("%w: unknown field %q", ErrSchema, ws.Field))
	}

	n := len(ws.Matrix)
	if n == 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: empty matrix", ErrSchema))
	}
	for i, row := range ws.Matrix {
		if len(row) != n {
			errs = multierr.Append(errs, fmt.Errorf("%w: row %d has %d cells, want %d", ErrSchema, i, len(row), n))
		}
		for j, c := range row {
			if _, err := c.complexRational(); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("cell (%d,%d): %w", i, j, err))
				continue
			}
			if c.Im != "" && ws.Field == FieldRational {
				errs = multierr.Append(errs, fmt.Errorf("%w: cell (%d,%d) is complex in a rational worksheet", ErrSchema, i, j))
			}
		}
	}

	for _, op := range ws.Operations {
		if !slices.Contains(allOperations, op) {
			errs = multierr.Append(errs, fmt.Errorf("%w: unknown operation %q", ErrSchema, op))
		}
	}

	return errs
}

// operations returns the requested operations, or all of them.
func (ws *Worksheet) operations() []string {
	if len(ws.Operations) == 0 {
		return Operations()
	}

	return ws.Operations
}

func (ws *Worksheet) variable() string {
	if ws.Variable == "" {
		return DefaultVariable
	}

	return ws.Variable
}

func (c Cell) rational() (field.Rational, error) {
	q, err := field.ParseRational(c.Re)
	if err != nil {
		return field.Rational{}, sheetErrorf(opCell, err)
	}

	return q, nil
}

func (c Cell) complexRational() (field.ComplexRational, error) {
	re, err := c.rational()
	if err != nil {
		return field.ComplexRational{}, err
	}
	if c.Im == "" {
		return field.RationalToComplex(re), nil
	}
	im, err := field.ParseRational(c.Im)
	if err != nil {
		return field.ComplexRational{}, sheetErrorf(opCell, err)
	}

	return field.NewComplex(re, im), nil
}

// rationalMatrix converts a validated rational worksheet.
func (ws *Worksheet) rationalMatrix() (*matrix.SquareMatrix[field.Rational], error) {
	return buildMatrix(ws.Matrix, Cell.rational)
}

// complexMatrix converts a validated worksheet of either field.
func (ws *Worksheet) complexMatrix() (*matrix.SquareMatrix[field.ComplexRational], error) {
	return buildMatrix(ws.Matrix, Cell.complexRational)
}

func buildMatrix[F field.Scalar[F]](cells [][]Cell, parse func(Cell) (F, error)) (*matrix.SquareMatrix[F], error) {
	rows := make([][]F, len(cells))
	for i, row := range cells {
		rows[i] = make([]F, len(row))
		for j, c := range row {
			v, err := parse(c)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", i, j, err)
			}
			rows[i][j] = v
		}
	}

	return matrix.New(rows)
}
