package pipeline

import (
	"slices"

	"bindgen-core/internal/kb"
)

// Count is a labelled number.
type Count struct {
	Label string
	Count int
}

// EnvStatus counts check outcomes in one environment.
type EnvStatus struct {
	Env    kb.CheckerEnv
	Passed int
	Failed int
}

// Status summarizes a ledger.
type Status struct {
	Crate             string
	Items             int
	Kinds             []Count
	States            []Count
	BoundaryFunctions int
	Emittable         int
	Environments      []EnvStatus
}

// StatusOf computes the status of db. Kinds and states are listed in
// first-seen and lifecycle order; environments are sorted by version.
func StatusOf(db *kb.Database) Status {
	s := Status{Crate: db.CrateName(), Items: db.Len()}

	kinds := make(map[string]int)
	states := make([]int, kb.StateWrapped+1)
	envs := make([]EnvStatus, len(db.Environments()))

	for i, env := range db.Environments() {
		envs[i].Env = env
	}

	for _, item := range db.Items() {
		kind := item.Data.Kind.String()
		if _, ok := kinds[kind]; !ok {
			s.Kinds = append(s.Kinds, Count{Label: kind})
		}

		kinds[kind]++
		states[item.State()]++

		tally(envs, item.Checks)

		for _, b := range item.BoundaryItems {
			tally(envs, b.Checks)
		}

		s.BoundaryFunctions += len(item.BoundaryItems)
	}

	for i := range s.Kinds {
		s.Kinds[i].Count = kinds[s.Kinds[i].Label]
	}

	for st, n := range states {
		s.States = append(s.States, Count{Label: kb.State(st).String(), Count: n})
	}

	slices.SortStableFunc(envs, func(a, b EnvStatus) int {
		return kb.CompareEnvs(a.Env, b.Env)
	})

	s.Environments = envs
	s.Emittable = len(db.Emittable(nil))

	return s
}

func tally(envs []EnvStatus, checks kb.CheckerInfoList) {
	for _, info := range checks.Items {
		for i := range envs {
			if !envs[i].Env.Equal(info.Env) {
				continue
			}

			if info.Error == nil {
				envs[i].Passed++
			} else {
				envs[i].Failed++
			}
		}
	}
}
