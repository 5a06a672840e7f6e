package kb

import (
	"fmt"

	"bindgen-core/internal/common"
)

// CheckerInfo is the outcome of one check in one environment. Error is
// nil when the snippet compiled.
type CheckerInfo struct {
	Env   CheckerEnv `yaml:"env"`
	Error *string    `yaml:"error,omitempty"`
}

// CheckerInfoList holds at most one entry per environment.
type CheckerInfoList struct {
	Items []CheckerInfo `yaml:"items,omitempty"`
}

// CheckResultKind classifies what recording a check did.
type CheckResultKind int

const (
	CheckAdded CheckResultKind = iota
	CheckChanged
	CheckUnchanged
)

// String returns a human-readable kind name.
func (k CheckResultKind) String() string {
	switch k {
	case CheckAdded:
		return "added"
	case CheckChanged:
		return "changed"
	case CheckUnchanged:
		return "unchanged"
	default:
		return common.UnknownStr
	}
}

// CheckResult is returned by CheckerInfoList.Add. Old is the replaced
// error for CheckChanged; New is the recorded error.
type CheckResult struct {
	Kind CheckResultKind
	Old  *string
	New  *string
}

// IsRegression reports whether a check that compiled now fails.
func (r CheckResult) IsRegression() bool {
	return r.Kind == CheckChanged && r.Old == nil && r.New != nil
}

// IsFix reports whether a check that failed now compiles.
func (r CheckResult) IsFix() bool {
	return r.Kind == CheckChanged && r.Old != nil && r.New == nil
}

// String returns e.g. "changed (was: boom)".
func (r CheckResult) String() string {
	if r.Kind != CheckChanged {
		return r.Kind.String()
	}

	if r.Old == nil {
		return "changed (was: ok)"
	}

	return fmt.Sprintf("changed (was: %s)", *r.Old)
}

// Add records err for env, replacing an existing entry for the same
// environment.
func (l *CheckerInfoList) Add(env CheckerEnv, err *string) CheckResult {
	err = cloneString(err)

	for i := range l.Items {
		item := &l.Items[i]
		if !item.Env.Equal(env) {
			continue
		}

		if sameError(item.Error, err) {
			return CheckResult{Kind: CheckUnchanged, Old: item.Error, New: err}
		}

		old := item.Error
		item.Error = err

		return CheckResult{Kind: CheckChanged, Old: old, New: err}
	}

	l.Items = append(l.Items, CheckerInfo{Env: env, Error: err})

	return CheckResult{Kind: CheckAdded, New: err}
}

// Get returns the entry for env.
func (l *CheckerInfoList) Get(env CheckerEnv) (CheckerInfo, bool) {
	for _, item := range l.Items {
		if item.Env.Equal(env) {
			return item, true
		}
	}

	return CheckerInfo{}, false
}

// SucceededIn reports whether every env has an entry without an error.
func (l *CheckerInfoList) SucceededIn(envs []CheckerEnv) bool {
	for _, env := range envs {
		info, ok := l.Get(env)
		if !ok || info.Error != nil {
			return false
		}
	}

	return true
}

func sameError(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}

	v := *s

	return &v
}
