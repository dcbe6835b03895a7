// Package state provides the fixed-dimension, name-addressable vector that
// carries variables into forward (tangent-linear) and adjoint operators.
//
// 🚀 What is a State?
//
//	A State is N float32 values addressed by position and, optionally, by a
//	symbolic name. Operators mutate it in place; the adjoint harness clones it
//	whenever the input must survive for a later inner product.
//
// ✨ Key features:
//   - one concrete type for named and anonymous vectors (no subclassing)
//   - bounds-checked At/Set, name-checked AtName/SetName (errors, not panics)
//   - deep Clone with no shared backing storage
//   - snapshot/replace (Values/Replace) for sweeps that must not read what they wrote
//   - Euclidean inner product with float64 accumulation (gonum blas32)
//
// ⚙️ Usage:
//
//	s, err := state.New([]float32{2, 3, 0}, []string{"a", "b", "r"})
//	if err != nil {
//	  // ErrDuplicateName, ErrNameCount, ErrEmptyState ...
//	}
//	_ = s.SetName("r", 5)
//	fmt.Println(s) // {a: 2, b: 3, r: 5}
//
// Complexity:
//
//   - At/Set/AtName/SetName: O(1)
//   - Clone/Values/Replace/Dot: O(N)
package state
