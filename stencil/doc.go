// Package stencil applies cyclic two-neighbour update rules to a state and
// derives their adjoint sweep generically.
//
// 🚀 What is a stencil here?
//
//	Every output position depends only on its two cyclic neighbours:
//
//	  out[i] = rule(in[i-1 mod N], in[i+1 mod N])
//
//	For a linear rule (wl*l + wr*r) the forward sweep is a sparse circulant
//	matrix M. Adjoint applies Mᵀ by visiting centres in reverse index order
//	and scattering each centre's partials back onto its neighbours.
//
// ✨ Key features:
//   - Forward: read-all-then-write-all through a snapshot and an atomic Replace
//   - Adjoint: zeroed accumulator, strict reverse order, additive scatter
//   - Weights: Rule/AdjointRule pairs and their Transpose for asymmetric stencils
//   - Circulant: the implied matrix as a gonum *mat.Dense for cross-checks
//
// ⚙️ Usage:
//
//	w := stencil.Weights{Left: 0.8, Right: 0.2}
//	_ = stencil.Forward(s, w.Rule())        // s = M s
//	_ = stencil.Adjoint(s, w.AdjointRule()) // s = Mᵀ s
//
// Edge handling:
//
//	Index 0's left neighbour is N-1 and index N-1's right neighbour is 0.
//	Only index arithmetic wraps; values are never special-cased. States
//	shorter than MinSize are rejected so the two neighbours stay distinct.
//
// Complexity:
//
//   - Forward, Adjoint: O(N) time, O(N) scratch.
//   - Circulant: O(N²) memory.
package stencil
