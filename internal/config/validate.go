package config

import (
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"

	"bindgen-core/internal/errors"
	"bindgen-core/internal/logger"
)

// ErrInvalidPath marks a configured path that is relative, missing or
// not a directory.
var ErrInvalidPath = errors.New("invalid path")

// Validate checks the configuration before any processing starts.
func (c *Config) Validate() error {
	if c.Crate.Name == "" {
		return errors.New("crate.name is required")
	}

	if c.Crate.LibraryVersion != "" {
		if _, err := semver.NewVersion(c.Crate.LibraryVersion); err != nil {
			return errors.Wrapf(err, "crate.library_version %q", c.Crate.LibraryVersion)
		}
	}

	for _, dep := range c.Crate.Dependencies {
		if dep == c.Crate.Name {
			return errors.Newf("crate %q cannot depend on itself", dep)
		}
	}

	if err := checkPath("workspace.path", c.Workspace.Path); err != nil {
		return err
	}

	for _, group := range []struct {
		key   string
		paths []string
	}{
		{"build.include_paths", c.Build.IncludePaths},
		{"build.lib_paths", c.Build.LibPaths},
		{"build.framework_paths", c.Build.FrameworkPaths},
	} {
		for _, p := range group.paths {
			if err := checkPath(group.key, p); err != nil {
				return err
			}
		}
	}

	if _, err := c.CheckerArgs(); err != nil {
		return err
	}

	if c.Checker.TimeoutSeconds <= 0 {
		return errors.Newf("checker.timeout_seconds must be > 0, got %d", c.Checker.TimeoutSeconds)
	}

	if c.Checker.Workers <= 0 {
		return errors.Newf("checker.workers must be > 0, got %d", c.Checker.Workers)
	}

	if c.FFI.FlagsClass == "" {
		return errors.New("ffi.flags_class cannot be empty")
	}

	if _, err := c.AllocationPlaces(); err != nil {
		return err
	}

	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log.level")
	}

	return nil
}

// checkPath requires an absolute path to an existing directory.
func checkPath(key, path string) error {
	if path == "" {
		return errors.Wrapf(ErrInvalidPath, "%s is required", key)
	}

	if !filepath.IsAbs(path) {
		return errors.Wrapf(ErrInvalidPath, "%s: %q is not absolute", key, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(ErrInvalidPath, "%s: %q does not exist", key, path)
	}

	if !info.IsDir() {
		return errors.Wrapf(ErrInvalidPath, "%s: %q is not a directory", key, path)
	}

	return nil
}
