// SPDX-License-Identifier: MIT

// Package csr - inspection and dumps.
package csr

import (
	"bufio"
	"fmt"
	"io"
	"sort"
)

const (
	ctxDumpRaw       = "Matrix.DumpRaw"
	ctxDumpFormatted = "Matrix.DumpFormatted"
	ctxEntries       = "Matrix.Entries"

	rawHeader       = "  Unformatted CSR matrix\n"
	formattedHeader = "  Formatted CSR matrix\n"

	// Non-negative values get one extra space so the value columns line up.
	fmtEntryPositive = "(%d, %d)   %.4f\n"
	fmtEntryNegative = "(%d, %d)  %.4f\n"
)

// Entry is one stored (row, col, value) triple.
type Entry struct {
	Row, Col int
	Value    float64
}

// DumpRaw writes dimensions, nnz and the three arrays verbatim: all rows+1
// offsets, then the nnz column indices and values (%.2f).
func (m *Matrix) DumpRaw(w io.Writer) error {
	if err := m.usable(ctxDumpRaw); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, rawHeader)
	fmt.Fprintf(bw, "Rows: %d\n", m.rows)
	fmt.Fprintf(bw, "Cols: %d\n", m.cols)
	fmt.Fprintf(bw, "NNZ:  %d\n", m.nnz)

	fmt.Fprint(bw, "Row Pointers: ")
	for r := uint32(0); r <= m.rows; r++ {
		fmt.Fprintf(bw, "%d ", m.offset(r))
	}
	fmt.Fprint(bw, "\n")

	fmt.Fprint(bw, "Column Indices: ")
	for _, c := range m.colIndices[:m.nnz] {
		fmt.Fprintf(bw, "%d ", c)
	}
	fmt.Fprint(bw, "\n")

	fmt.Fprint(bw, "Values: ")
	for _, v := range m.values[:m.nnz] {
		fmt.Fprintf(bw, "%.2f ", v)
	}
	fmt.Fprint(bw, "\n")

	if err := bw.Flush(); err != nil {
		return methodErrorf(ctxDumpRaw, err)
	}
	return nil
}

// DumpFormatted writes one "(row, col) value" line per entry in storage order.
func (m *Matrix) DumpFormatted(w io.Writer) error {
	if err := m.usable(ctxDumpFormatted); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, formattedHeader)
	for i := uint32(0); i < m.nnz; i++ {
		format := fmtEntryPositive
		if m.values[i] < 0 {
			format = fmtEntryNegative
		}
		fmt.Fprintf(bw, format, m.rowOf(i), m.colIndices[i], m.values[i])
	}

	if err := bw.Flush(); err != nil {
		return methodErrorf(ctxDumpFormatted, err)
	}
	return nil
}

// Entries returns every stored triple in increasing storage order.
func (m *Matrix) Entries() ([]Entry, error) {
	if err := m.usable(ctxEntries); err != nil {
		return nil, err
	}
	out := make([]Entry, 0, m.nnz)
	lo := m.offset(0)
	for r := uint32(0); r < m.rows; r++ {
		hi := m.offset(r + 1)
		for j := lo; j < hi; j++ {
			out = append(out, Entry{Row: int(r), Col: int(m.colIndices[j]), Value: m.values[j]})
		}
		lo = hi
	}
	return out, nil
}

// rowOf finds the row owning storage index i: one before the first row whose
// offset exceeds i. Requires i < nnz.
func (m *Matrix) rowOf(i uint32) int {
	first := sort.Search(int(m.rows)+1, func(r int) bool {
		return m.offset(uint32(r)) > i
	})
	return first - 1
}
