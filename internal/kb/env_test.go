package kb

import (
	"runtime"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckerEnv_ShortText(t *testing.T) {
	assert.Equal(t, "5.11.0/amd64-linux-unix-gnu", linuxEnv("5.11.0").ShortText())
	assert.Equal(t, "None/amd64-linux-unix-gnu", linuxEnv("").ShortText())
}

func TestCheckerEnv_Equal(t *testing.T) {
	assert.True(t, linuxEnv("1.0").Equal(linuxEnv("1.0")))
	assert.False(t, linuxEnv("1.0").Equal(linuxEnv("1.1")))
	assert.False(t, linuxEnv("1.0").Equal(linuxEnv("")))
	assert.True(t, linuxEnv("").Equal(linuxEnv("")))

	other := linuxEnv("1.0")
	other.Target.ABI = "musl"
	assert.False(t, linuxEnv("1.0").Equal(other))
}

func TestCompareEnvs(t *testing.T) {
	envs := []CheckerEnv{linuxEnv("5.10.1"), linuxEnv("nightly"), linuxEnv("5.9.0"), linuxEnv("")}
	slices.SortFunc(envs, CompareEnvs)

	var got []string
	for _, e := range envs {
		got = append(got, e.ShortText())
	}

	assert.Equal(t, []string{
		"None/amd64-linux-unix-gnu",
		"5.9.0/amd64-linux-unix-gnu",
		"5.10.1/amd64-linux-unix-gnu",
		"nightly/amd64-linux-unix-gnu",
	}, got)
}

func TestCurrentTarget(t *testing.T) {
	target := CurrentTarget()
	assert.Equal(t, runtime.GOARCH, target.Arch)
	assert.Equal(t, runtime.GOOS, target.OS)
	assert.NotEmpty(t, target.Family)
}

func TestSource_String(t *testing.T) {
	assert.Equal(t, "parser(/usr/include/math.h:10:5)", mathParser().String())
	assert.Equal(t, "parser(math.h)", Source{Kind: SourceParser, IncludeFile: "math.h"}.String())
	assert.Equal(t, "implicit_destructor", Synthesized(SourceImplicitDestructor).String())
}
