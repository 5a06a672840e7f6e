package common

import (
	"slices"

	"bindgen-core/internal/errors"
)

// ErrCycle is returned by TopoSort when the dependencies form a cycle.
var ErrCycle = errors.New("dependency cycle")

// TopoSort orders the nodes 0..n-1 so that every node comes after the
// nodes deps returns for it. Among ready nodes the smallest index goes
// first, so the order is deterministic.
func TopoSort(n int, deps func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	pending := make([]int, n)
	dependents := make([][]int, n)

	for i := range n {
		for _, d := range deps(i) {
			if d < 0 || d >= n {
				return nil, errors.AssertionFailedf("node %d depends on %d, out of range [0, %d)", i, d, n)
			}

			pending[i]++
			dependents[d] = append(dependents[d], i)
		}
	}

	var ready []int

	for i, p := range pending {
		if p == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		next := ready[0]
		ready = ready[1:]
		order = append(order, next)

		for _, j := range dependents[next] {
			pending[j]--
			if pending[j] == 0 {
				pos, _ := slices.BinarySearch(ready, j)
				ready = slices.Insert(ready, pos, j)
			}
		}
	}

	if len(order) != n {
		var stuck []int

		for i, p := range pending {
			if p > 0 {
				stuck = append(stuck, i)
			}
		}

		return nil, errors.Wrapf(ErrCycle, "nodes %v", stuck)
	}

	return order, nil
}
