package kb

import (
	"cmp"
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

// Target is a compilation target.
type Target struct {
	Arch   string `yaml:"arch"`
	OS     string `yaml:"os"`
	Family string `yaml:"family"`
	ABI    string `yaml:"abi"`
}

// CurrentTarget describes the platform the process runs on.
func CurrentTarget() Target {
	t := Target{Arch: runtime.GOARCH, OS: runtime.GOOS, Family: "unix"}

	switch runtime.GOOS {
	case "windows":
		t.Family = "windows"
		t.ABI = "msvc"
	case "linux":
		t.ABI = "gnu"
	case "js", "wasip1":
		t.Family = "wasm"
	}

	return t
}

// CheckerEnv is one build configuration checks run against.
type CheckerEnv struct {
	Target         Target  `yaml:"target"`
	LibraryVersion *string `yaml:"library_version,omitempty"`
}

// NewCheckerEnv returns an environment for target. An empty version means
// the library version is unknown.
func NewCheckerEnv(target Target, version string) CheckerEnv {
	env := CheckerEnv{Target: target}
	if version != "" {
		env.LibraryVersion = &version
	}

	return env
}

// Equal reports whether both environments have the same target and version.
func (e CheckerEnv) Equal(o CheckerEnv) bool {
	if e.Target != o.Target {
		return false
	}

	if e.LibraryVersion == nil || o.LibraryVersion == nil {
		return e.LibraryVersion == o.LibraryVersion
	}

	return *e.LibraryVersion == *o.LibraryVersion
}

// ShortText returns "version/arch-os-family-abi", with "None" for an
// unknown version.
func (e CheckerEnv) ShortText() string {
	version := "None"
	if e.LibraryVersion != nil {
		version = *e.LibraryVersion
	}

	return fmt.Sprintf("%s/%s-%s-%s-%s", version, e.Target.Arch, e.Target.OS, e.Target.Family, e.Target.ABI)
}

// CompareEnvs orders environments by library version, then by their short
// text. Unknown versions sort first; versions that are not semantic
// versions sort as text after the valid ones.
func CompareEnvs(a, b CheckerEnv) int {
	if c := compareVersions(a.LibraryVersion, b.LibraryVersion); c != 0 {
		return c
	}

	return cmp.Compare(a.ShortText(), b.ShortText())
}

func compareVersions(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	va, errA := semver.NewVersion(*a)
	vb, errB := semver.NewVersion(*b)

	switch {
	case errA == nil && errB == nil:
		return va.Compare(vb)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return cmp.Compare(*a, *b)
	}
}
