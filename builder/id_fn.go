// SPDX-License-Identifier: MIT
// Package: lvlds/builder
//
// id_fn.go - vertex ID schemes (IDFn) and the options selecting them.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based index to a vertex ID. It must be pure.
type IDFn func(idx int) string

// DefaultIDFn renders idx in decimal: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn renders idx as a spreadsheet column: 0→"A", 25→"Z",
// 26→"AA". Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var letters []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		letters = append(letters, byte('A'+i%26))
	}
	for l, r := 0, len(letters)-1; l < r; l, r = l+1, r-1 {
		letters[l], letters[r] = letters[r], letters[l]
	}

	return string(letters)
}

// SymbolNumberIDFn returns an IDFn producing prefix+decimal: "v0", "v1", ...
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}
