// SPDX-License-Identifier: MIT
package worksheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/surdalg/worksheet"
)

func load(t *testing.T, doc string) *worksheet.Worksheet {
	t.Helper()
	ws, err := worksheet.Load([]byte(doc))
	require.NoError(t, err)

	return ws
}

func TestRun_RationalAllOperations(t *testing.T) {
	rep, err := worksheet.Run(load(t, rationalSheet))
	require.NoError(t, err)
	assert.False(t, rep.Failed(), "%v", rep.Errors)

	assert.Equal(t, 2, rep.Size)
	assert.Equal(t, `$$\begin{pmatrix}3 & 1\\0 & 2\end{pmatrix}$$`, rep.Input)

	want := map[string]string{
		worksheet.OpEliminate: `R = \begin{pmatrix}1 & 0\\0 & 1\end{pmatrix},\quad T = ` +
			`\begin{pmatrix}\frac{1}{3} & -\frac{1}{6}\\0 & \frac{1}{2}\end{pmatrix}`,
		worksheet.OpRank:        "2",
		worksheet.OpDeterminant: "6",
		worksheet.OpTrace:       "5",
		worksheet.OpTranspose:   `\begin{pmatrix}3 & 0\\1 & 2\end{pmatrix}`,
		worksheet.OpInverse:     `\begin{pmatrix}\frac{1}{3} & -\frac{1}{6}\\0 & \frac{1}{2}\end{pmatrix}`,
		worksheet.OpCharPoly:    `\lambda^{2} - 5\lambda + 6`,
		worksheet.OpEigen:       `3,\; 2`,
		worksheet.OpNumeric:     "6",
	}
	assert.Equal(t, want, rep.Results)
}

func TestRun_RecordsFailures(t *testing.T) {
	rep, err := worksheet.Run(load(t, `
schema: 1.0.0
field: rational
variable: t
matrix:
  - ["1", "2"]
  - ["2", "4"]
operations: [inverse, charpoly, rank]
`))
	require.NoError(t, err)
	require.True(t, rep.Failed())
	assert.Contains(t, rep.Errors[worksheet.OpInverse], "singular")
	assert.Equal(t, "t^{2} - 5t", rep.Results[worksheet.OpCharPoly])
	assert.Equal(t, "1", rep.Results[worksheet.OpRank])
}

func TestRun_EigenComplexAndUnsupportedDegree(t *testing.T) {
	rep, err := worksheet.Run(load(t, `
schema: 1.0.0
field: rational
matrix: [["0", "-1"], ["1", "0"]]
operations: [eigen]
`))
	require.NoError(t, err)
	assert.Equal(t, `i,\; -i`, rep.Results[worksheet.OpEigen])

	rep, err = worksheet.Run(load(t, `
schema: 1.0.0
field: rational
matrix: [["1", "0", "0"], ["0", "2", "0"], ["0", "0", "3"]]
operations: [eigen, determinant]
`))
	require.NoError(t, err)
	assert.Contains(t, rep.Errors[worksheet.OpEigen], "degree 3")
	assert.Equal(t, "6", rep.Results[worksheet.OpDeterminant])
}

func TestRun_ComplexRational(t *testing.T) {
	rep, err := worksheet.Run(load(t, `
schema: 1.0.0
field: complex-rational
matrix:
  - [{re: "1", im: "1"}, "0"]
  - ["0", {re: "1", im: "-1"}]
operations: [determinant, inverse, eigen]
`))
	require.NoError(t, err)
	assert.Equal(t, `$$\begin{pmatrix}1 + i & 0\\0 & 1 - i\end{pmatrix}$$`, rep.Input)
	assert.Equal(t, "2", rep.Results[worksheet.OpDeterminant])
	assert.Equal(t,
		`\begin{pmatrix}\frac{1}{2} - \frac{1}{2}i & 0\\0 & \frac{1}{2} + \frac{1}{2}i\end{pmatrix}`,
		rep.Results[worksheet.OpInverse])
	assert.Contains(t, rep.Errors[worksheet.OpEigen], worksheet.ErrUnsupported.Error())
}

func TestRun_OverflowIsRecorded(t *testing.T) {
	ws := load(t, `
schema: 1.0.0
field: rational
matrix:
  - ["9223372036854775807", "0"]
  - ["0", "9223372036854775807"]
operations: [trace, determinant, rank]
`)
	var (
		rep *worksheet.Report
		err error
	)
	require.NotPanics(t, func() { rep, err = worksheet.Run(ws) })
	require.NoError(t, err)
	require.True(t, rep.Failed())
	assert.Contains(t, rep.Errors[worksheet.OpTrace], "overflow")
	assert.Contains(t, rep.Errors[worksheet.OpDeterminant], "overflow")
	assert.Equal(t, "2", rep.Results[worksheet.OpRank])
}

func TestRun_InvalidWorksheet(t *testing.T) {
	_, err := worksheet.Run(&worksheet.Worksheet{Schema: "1.0.0", Field: "rational"})
	require.ErrorIs(t, err, worksheet.ErrSchema)
}

func TestReport_YAML(t *testing.T) {
	rep, err := worksheet.Run(load(t, `
schema: 1.0.0
title: demo
field: rational
matrix: [["1", "1"], ["1", "1"]]
operations: [rank, inverse]
`))
	require.NoError(t, err)

	data, err := rep.YAML()
	require.NoError(t, err)

	var back worksheet.Report
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, "demo", back.Title)
	assert.Equal(t, map[string]string{worksheet.OpRank: "1"}, back.Results)
	assert.Contains(t, back.Errors, worksheet.OpInverse)
}
