package state_test

import (
	"fmt"

	"github.com/katalvlaran/adjoint/state"
)

// ExampleNew builds a named state and updates it by name.
func ExampleNew() {
	s, err := state.New([]float32{2, 3, 0}, []string{"a", "b", "r"})
	if err != nil {
		fmt.Println(err)
		return
	}

	a, _ := s.AtName("a")
	b, _ := s.AtName("b")
	_ = s.SetName("r", a+b)

	fmt.Println(s)
	// Output:
	// {a: 2, b: 3, r: 5}
}

// ExampleDot shows the inner product used by the adjoint test.
func ExampleDot() {
	x := state.MustNew([]float32{1, 2, 3}, nil)
	y := x.Clone()
	_ = y.Set(2, 0)

	d, _ := state.Dot(x, y)
	fmt.Println(d)
	// Output:
	// 5
}
