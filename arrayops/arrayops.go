// SPDX-License-Identifier: MIT
// Package: sparsecsr/arrayops
//
// arrayops.go - ordered insertion into a fixed-length backing array.
//
// Contract:
//   - arr is a backing array whose first `size` slots are live; slots past size are spare.
//   - Insert shifts arr[index:size] one slot to the right and writes value at arr[index].
//   - index must lie in [0, size]; index == size appends behind the live prefix.
//   - At least one spare slot is required (size < len(arr)); arrays are never grown here.
//   - On any error the array is left untouched.
//
// Complexity:
//   - Time O(size-index) (single copy), Space O(1).

package arrayops

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange indicates an insertion index outside [0, size].
var ErrIndexOutOfRange = errors.New("arrayops: insertion index out of range")

// ErrNoRoom indicates that the backing array has no spare slot behind the live prefix.
var ErrNoRoom = errors.New("arrayops: no room for insertion")

// Insert places value at arr[index], moving arr[index:size] right by one.
func Insert[T any](arr []T, size, index int, value T) error {
	if size < 0 || size > len(arr) {
		return fmt.Errorf("Insert(size=%d, len=%d): %w", size, len(arr), ErrIndexOutOfRange)
	}
	if index < 0 || index > size {
		return fmt.Errorf("Insert(index=%d, size=%d): %w", index, size, ErrIndexOutOfRange)
	}
	if size == len(arr) {
		return fmt.Errorf("Insert(size=%d, len=%d): %w", size, len(arr), ErrNoRoom)
	}

	// copy handles the overlapping ranges like memmove.
	copy(arr[index+1:size+1], arr[index:size])
	arr[index] = value

	return nil
}
