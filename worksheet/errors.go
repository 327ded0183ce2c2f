// SPDX-License-Identifier: MIT

package worksheet

import (
	"errors"
	"fmt"
)

var (
	// ErrSchema reports a worksheet that does not match the supported format.
	ErrSchema = errors.New("worksheet: schema violation")

	// ErrUnsupported reports an operation that is not defined for the field.
	ErrUnsupported = errors.New("worksheet: operation not supported for field")
)

const (
	opLoad = "Load"
	opRun  = "Run"
	opCell = "Cell"
)

// sheetErrorf wraps err with an operation tag; err must be non-nil.
func sheetErrorf(tag string, err error) error {
	return fmt.Errorf("worksheet.%s: %w", tag, err)
}
