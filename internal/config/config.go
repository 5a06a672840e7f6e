// Package config loads bindgen settings from bindgen.toml and BINDGEN_*
// environment variables.
package config

import (
	"time"

	"github.com/kballard/go-shellquote"

	"bindgen-core/internal/errors"
	"bindgen-core/internal/ffi"
)

// FileName is the config file looked up in the working directory.
const FileName = "bindgen.toml"

// Config is the complete bindgen configuration.
type Config struct {
	Crate     CrateConfig     `mapstructure:"crate" toml:"crate"`
	Workspace WorkspaceConfig `mapstructure:"workspace" toml:"workspace"`
	Build     BuildConfig     `mapstructure:"build" toml:"build"`
	Checker   CheckerConfig   `mapstructure:"checker" toml:"checker"`
	FFI       FFIConfig       `mapstructure:"ffi" toml:"ffi"`
	Log       LogConfig       `mapstructure:"log" toml:"log"`
}

// CrateConfig names the crate being generated.
type CrateConfig struct {
	Name           string   `mapstructure:"name" toml:"name"`
	LibraryVersion string   `mapstructure:"library_version" toml:"library_version"`
	Dependencies   []string `mapstructure:"dependencies" toml:"dependencies"`
}

// WorkspaceConfig locates the ledger directory.
type WorkspaceConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

// BuildConfig lists the directories passed to the native compiler.
type BuildConfig struct {
	IncludePaths   []string `mapstructure:"include_paths" toml:"include_paths"`
	LibPaths       []string `mapstructure:"lib_paths" toml:"lib_paths"`
	FrameworkPaths []string `mapstructure:"framework_paths" toml:"framework_paths"`
}

// CheckerConfig configures the compile checks.
type CheckerConfig struct {
	// Command is the compiler invocation in shell syntax, e.g.
	// "c++ -std=c++11 -fsyntax-only".
	Command        string `mapstructure:"command" toml:"command"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" toml:"timeout_seconds"`
	Workers        int    `mapstructure:"workers" toml:"workers"`
}

// FFIConfig tunes boundary generation.
type FFIConfig struct {
	FlagsClass string `mapstructure:"flags_class" toml:"flags_class"`
	// StackClasses and HeapClasses pin the allocation place of classes
	// returned by value. Lists keep class names case-sensitive.
	StackClasses []string `mapstructure:"stack_classes" toml:"stack_classes"`
	HeapClasses  []string `mapstructure:"heap_classes" toml:"heap_classes"`
}

// LogConfig configures the logger.
type LogConfig struct {
	JSON  bool   `mapstructure:"json" toml:"json"`
	Level string `mapstructure:"level" toml:"level"`
}

// CheckerArgs splits the checker command into words.
func (c *Config) CheckerArgs() ([]string, error) {
	args, err := shellquote.Split(c.Checker.Command)
	if err != nil {
		return nil, errors.Wrapf(err, "checker.command %q", c.Checker.Command)
	}

	if len(args) == 0 {
		return nil, errors.New("checker.command is empty")
	}

	return args, nil
}

// CheckerTimeout is the time one check may take.
func (c *Config) CheckerTimeout() time.Duration {
	return time.Duration(c.Checker.TimeoutSeconds) * time.Second
}

// AllocationPlaces returns the per-class allocation place overrides.
func (c *Config) AllocationPlaces() (map[string]ffi.AllocationPlace, error) {
	out := make(map[string]ffi.AllocationPlace, len(c.FFI.StackClasses)+len(c.FFI.HeapClasses))

	for _, class := range c.FFI.StackClasses {
		out[class] = ffi.PlaceStack
	}

	for _, class := range c.FFI.HeapClasses {
		if out[class] == ffi.PlaceStack {
			return nil, errors.Newf("class %q is listed in both ffi.stack_classes and ffi.heap_classes", class)
		}

		out[class] = ffi.PlaceHeap
	}

	return out, nil
}
