package config

import (
	"runtime"

	"github.com/spf13/viper"

	"bindgen-core/internal/ffi"
)

// SetDefaults registers the default of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("crate.name", "")
	v.SetDefault("crate.library_version", "")
	v.SetDefault("crate.dependencies", []string{})

	v.SetDefault("workspace.path", "")

	v.SetDefault("build.include_paths", []string{})
	v.SetDefault("build.lib_paths", []string{})
	v.SetDefault("build.framework_paths", []string{})

	v.SetDefault("checker.command", "c++ -std=c++11 -fsyntax-only")
	v.SetDefault("checker.timeout_seconds", 60)
	v.SetDefault("checker.workers", runtime.NumCPU())

	v.SetDefault("ffi.flags_class", ffi.DefaultFlagsClass)
	v.SetDefault("ffi.stack_classes", []string{})
	v.SetDefault("ffi.heap_classes", []string{})

	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")
}

// Default returns the configuration used when no file or environment
// overrides anything.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)

	var c Config
	// Defaults always decode.
	_ = v.Unmarshal(&c)

	return &c
}
