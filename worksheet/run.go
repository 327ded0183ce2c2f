// SPDX-License-Identifier: MIT

package worksheet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/surdalg/field"
	"github.com/katalvlaran/surdalg/matrix"
	"github.com/katalvlaran/surdalg/poly"
)

// Report is the outcome of Run. Results and Errors are keyed by operation;
// yaml.v3 writes map keys sorted, so the encoding is deterministic.
type Report struct {
	Title   string            `yaml:"title,omitempty"`
	Field   string            `yaml:"field"`
	Size    int               `yaml:"size"`
	Input   string            `yaml:"input"`
	Results map[string]string `yaml:"results"`
	Errors  map[string]string `yaml:"errors,omitempty"`
}

// YAML encodes the report.
func (r *Report) YAML() ([]byte, error) { return yaml.Marshal(r) }

// Failed reports whether any operation recorded an error.
func (r *Report) Failed() bool { return len(r.Errors) > 0 }

// Run evaluates every requested operation of ws. Per-operation failures land
// in Report.Errors, including int64 overflow in the exact arithmetic; only an
// invalid worksheet makes Run itself fail.
// Errors: the Validate errors of ws.
func Run(ws *Worksheet) (*Report, error) {
	if err := ws.Validate(); err != nil {
		return nil, err
	}
	rep := &Report{
		Title:   ws.Title,
		Field:   ws.Field,
		Size:    len(ws.Matrix),
		Results: make(map[string]string),
		Errors:  make(map[string]string),
	}
	record := func(op, out string, err error) {
		if err != nil {
			rep.Errors[op] = err.Error()
			return
		}
		rep.Results[op] = out
	}

	switch ws.Field {
	case FieldRational:
		m, err := ws.rationalMatrix()
		if err != nil {
			return nil, sheetErrorf(opRun, err)
		}
		rep.Input = m.LaTeX()
		for _, op := range ws.operations() {
			out, err := guarded(func() (string, error) { return evalRational(m, op, ws.variable()) })
			record(op, out, err)
		}
	case FieldComplexRational:
		m, err := ws.complexMatrix()
		if err != nil {
			return nil, sheetErrorf(opRun, err)
		}
		rep.Input = m.LaTeX()
		for _, op := range ws.operations() {
			out, err := guarded(func() (string, error) { return evalField(m, op, ws.variable()) })
			record(op, out, err)
		}
	}

	return rep, nil
}

// guarded runs eval and turns an overflow panic from the field layer into an
// error. Any other panic is re-raised.
func guarded(eval func() (string, error)) (out string, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		if !ok || !errors.Is(e, field.ErrOverflow) {
			panic(r)
		}
		out, err = "", sheetErrorf(opRun, e)
	}()

	return eval()
}

// evalRational adds the operations that need real rational entries.
func evalRational(m *matrix.SquareMatrix[field.Rational], op, variable string) (string, error) {
	switch op {
	case OpEigen:
		roots, err := matrix.EigenRootsComplex(m)
		if err != nil {
			return "", err
		}
		parts := make([]string, len(roots))
		for i, r := range roots {
			parts[i] = r.LaTeX()
		}
		return strings.Join(parts, `,\; `), nil
	case OpNumeric:
		d := matrix.ToGonum(m)
		return strconv.FormatFloat(mat.Det(d), 'g', 12, 64), nil
	default:
		return evalField(m, op, variable)
	}
}

// evalField runs the operations shared by every field; results are LaTeX
// without math-mode delimiters so they can be embedded.
func evalField[F field.Scalar[F]](m *matrix.SquareMatrix[F], op, variable string) (string, error) {
	inline := matrix.WithMathMode(false)
	switch op {
	case OpEliminate:
		r, t, _, err := matrix.Eliminate(m)
		if err != nil {
			return "", err
		}
		return `R = ` + r.LaTeX(inline) + `,\quad T = ` + t.LaTeX(inline), nil
	case OpRank:
		rank, err := matrix.Rank(m)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(rank), nil
	case OpDeterminant:
		return m.Determinant().LaTeX(), nil
	case OpTrace:
		return m.Trace().LaTeX(), nil
	case OpTranspose:
		return m.Transpose().LaTeX(inline), nil
	case OpInverse:
		inv, err := matrix.Inverse(m)
		if err != nil {
			return "", err
		}
		return inv.LaTeX(inline), nil
	case OpCharPoly:
		p, err := matrix.CharPoly(m)
		if err != nil {
			return "", err
		}
		return p.Render(poly.WithVariable(variable)), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, op)
	}
}
