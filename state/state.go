// SPDX-License-Identifier: MIT

// Package state - State storage & safe accessors.
//
// Purpose:
//   - Hold a fixed-length float32 buffer addressed by position or by name.
//   - Guarantee safety at the public surface: every accessor returns an error instead of panicking.
//   - Keep named and anonymous vectors in one concrete type so sweeps never care about naming.
//   - Give sweeps a snapshot (Values) and an atomic write-back (Replace).
//
// Complexity quicksheet:
//   - New: O(N); At/Set/AtName/SetName/AddAt/AddName: O(1); Clone/Values/Replace/String: O(N).

package state

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew     = "New"
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxAddAt   = "AddAt"
	ctxAtName  = "AtName"
	ctxSetName = "SetName"
	ctxAddName = "AddName"
	ctxIndexOf = "IndexOf"
	ctxReplace = "Replace"
)

// ---------- formatting literals ----------

const (
	_fmtVecOpen  = "["
	_fmtVecClose = "]"
	_fmtMapOpen  = "{"
	_fmtMapClose = "}"
	_fmtSep      = ", "
	_fmtKV       = ": "
)

// indexErrorf wraps a sentinel with the method tag and positional index.
func indexErrorf(method string, i int, err error) error {
	return fmt.Errorf("State.%s(%d): %w", method, i, err)
}

// nameErrorf wraps a sentinel with the method tag and the offending name.
func nameErrorf(method, name string, err error) error {
	return fmt.Errorf("State.%s(%q): %w", method, name, err)
}

// State is a fixed-dimension vector of float32 values.
//   - values holds the N scalars; its length never changes after New.
//   - names maps symbolic name -> position; nil for anonymous states.
//   - order holds the names by position so String is deterministic.
//   - named tags which of the two addressing modes is available.
type State struct {
	values []float32      // len == N, fixed at construction
	names  map[string]int // bijection onto 0..N-1 when named
	order  []string       // order[i] is the name of position i (named only)
	named  bool           // false => positional access only
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*State)(nil)

// New builds a State from values and an optional list of names.
// MAIN DESCRIPTION:
//   - names == nil yields an anonymous state (positional access only).
//   - Otherwise names[i] becomes the name of position i.
//
// Implementation:
//   - Stage 1: validate N > 0 and len(names) == N.
//   - Stage 2: build the name map, rejecting "" and repeats.
//   - Stage 3: copy values so the caller's slice is never aliased.
//
// Errors:
//   - ErrEmptyState, ErrNameCount, ErrEmptyName, ErrDuplicateName.
//
// Notes:
//   - A repeated name fails construction; it never silently remaps an index.
//
// Complexity:
//   - Time O(N), Space O(N).
func New(values []float32, names []string) (*State, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("State.%s: %w", ctxNew, ErrEmptyState)
	}

	s := &State{values: make([]float32, len(values))}
	copy(s.values, values)

	if names == nil {
		return s, nil
	}
	if len(names) != len(values) {
		return nil, fmt.Errorf("State.%s: %d names for %d values: %w", ctxNew, len(names), len(values), ErrNameCount)
	}

	s.names = make(map[string]int, len(names))
	s.order = make([]string, len(names))
	for i, name := range names {
		if name == "" {
			return nil, indexErrorf(ctxNew, i, ErrEmptyName)
		}
		if prev, dup := s.names[name]; dup {
			return nil, fmt.Errorf("State.%s: %q at %d and %d: %w", ctxNew, name, prev, i, ErrDuplicateName)
		}
		s.names[name] = i
		s.order[i] = name
	}
	s.named = true

	return s, nil
}

// MustNew is New that panics on error. Intended for literal fixtures.
func MustNew(values []float32, names []string) *State {
	s, err := New(values, names)
	if err != nil {
		panic(err)
	}

	return s
}

// Anonymous builds a positional-only State from literal values.
func Anonymous(values ...float32) (*State, error) {
	return New(values, nil)
}

// Zeros returns an anonymous State of n zeros.
func Zeros(n int) (*State, error) {
	if n <= 0 {
		return nil, fmt.Errorf("State.%s: n=%d: %w", ctxNew, n, ErrEmptyState)
	}

	return &State{values: make([]float32, n)}, nil
}

// Len returns N. Complexity: O(1).
func (s *State) Len() int { return len(s.values) }

// IsNamed reports whether name lookups are available. Complexity: O(1).
func (s *State) IsNamed() bool { return s.named }

// Names returns the names in position order, or nil for anonymous states.
func (s *State) Names() []string {
	if !s.named {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)

	return out
}

// checkIndex validates 0 <= i < N and returns a plain sentinel otherwise.
func (s *State) checkIndex(i int) error {
	if i < 0 || i >= len(s.values) {
		return ErrOutOfRange
	}

	return nil
}

// At returns the value at position i or ErrOutOfRange.
// Complexity: O(1).
func (s *State) At(i int) (float32, error) {
	if err := s.checkIndex(i); err != nil {
		return 0, indexErrorf(ctxAt, i, err)
	}

	return s.values[i], nil
}

// Set stores v at position i or returns ErrOutOfRange.
// Complexity: O(1).
func (s *State) Set(i int, v float32) error {
	if err := s.checkIndex(i); err != nil {
		return indexErrorf(ctxSet, i, err)
	}
	s.values[i] = v

	return nil
}

// AddAt accumulates delta into position i (adjoint "+=" update).
// Complexity: O(1).
func (s *State) AddAt(i int, delta float32) error {
	if err := s.checkIndex(i); err != nil {
		return indexErrorf(ctxAddAt, i, err)
	}
	s.values[i] += delta

	return nil
}

// IndexOf resolves a name to its position.
// MAIN DESCRIPTION:
//   - Named states: map lookup.
//   - Anonymous states: always ErrUnknownName.
//
// Complexity:
//   - Time O(1) average.
func (s *State) IndexOf(name string) (int, error) {
	if !s.named {
		return 0, nameErrorf(ctxIndexOf, name, ErrUnknownName)
	}
	i, ok := s.names[name]
	if !ok {
		return 0, nameErrorf(ctxIndexOf, name, ErrUnknownName)
	}

	return i, nil
}

// AtName returns the value mapped to name or ErrUnknownName.
func (s *State) AtName(name string) (float32, error) {
	i, ok := s.lookup(name)
	if !ok {
		return 0, nameErrorf(ctxAtName, name, ErrUnknownName)
	}

	return s.values[i], nil
}

// SetName stores v under name or returns ErrUnknownName.
func (s *State) SetName(name string, v float32) error {
	i, ok := s.lookup(name)
	if !ok {
		return nameErrorf(ctxSetName, name, ErrUnknownName)
	}
	s.values[i] = v

	return nil
}

// AddName accumulates delta into the value mapped to name.
func (s *State) AddName(name string, delta float32) error {
	i, ok := s.lookup(name)
	if !ok {
		return nameErrorf(ctxAddName, name, ErrUnknownName)
	}
	s.values[i] += delta

	return nil
}

// lookup is the shared name resolution for the *Name accessors.
func (s *State) lookup(name string) (int, bool) {
	if !s.named {
		return 0, false
	}
	i, ok := s.names[name]

	return i, ok
}

// Clone returns a deep copy that shares no storage with s.
// Complexity: O(N) time and memory.
func (s *State) Clone() *State {
	c := &State{
		values: make([]float32, len(s.values)),
		named:  s.named,
	}
	copy(c.values, s.values)

	if s.named {
		c.names = make(map[string]int, len(s.names))
		for k, v := range s.names {
			c.names[k] = v
		}
		c.order = make([]string, len(s.order))
		copy(c.order, s.order)
	}

	return c
}

// Values returns a copy of the N values (the snapshot side of a sweep).
// Complexity: O(N).
func (s *State) Values() []float32 {
	out := make([]float32, len(s.values))
	copy(out, s.values)

	return out
}

// Replace overwrites all N values at once from buf.
// MAIN DESCRIPTION:
//   - Write-back side of snapshot-then-replace sweeps.
//
// Behavior highlights:
//   - Either all values change or none do.
//   - buf is copied; the caller may reuse it.
//
// Errors:
//   - ErrDimensionMismatch when len(buf) != N.
//
// Complexity:
//   - Time O(N), Space O(1).
func (s *State) Replace(buf []float32) error {
	if len(buf) != len(s.values) {
		return fmt.Errorf("State.%s: len %d, want %d: %w", ctxReplace, len(buf), len(s.values), ErrDimensionMismatch)
	}
	copy(s.values, buf)

	return nil
}

// Fill sets every position from f(i), in index order.
// Complexity: O(N).
func (s *State) Fill(f func(i int) float32) {
	for i := range s.values {
		s.values[i] = f(i)
	}
}

// String renders anonymous states as "[v0, v1, ...]" and named states as
// "{name0: v0, name1: v1, ...}" in position order.
func (s *State) String() string {
	var sb strings.Builder
	if !s.named {
		sb.WriteString(_fmtVecOpen)
		for i, v := range s.values {
			if i > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(formatValue(v))
		}
		sb.WriteString(_fmtVecClose)

		return sb.String()
	}

	sb.WriteString(_fmtMapOpen)
	for i, name := range s.order {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(name)
		sb.WriteString(_fmtKV)
		sb.WriteString(formatValue(s.values[i]))
	}
	sb.WriteString(_fmtMapClose)

	return sb.String()
}

// formatValue prints the shortest float32 representation ("%g" style).
func formatValue(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
