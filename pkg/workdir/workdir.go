// Package workdir resolves the project directory a release runs in.
package workdir

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arc-language/reldist/pkg/core"
)

// HomeEnv is the variable that supplies the user's home directory.
const HomeEnv = "HOME"

// Resolve joins $HOME with segments, or with core.DefaultProjectPath when no
// segments are given. It fails with core.ErrHomeNotSet if HOME is unset or
// empty. The result is not checked for existence.
func Resolve(segments ...string) (string, error) {
	home, ok := os.LookupEnv(HomeEnv)
	if !ok || home == "" {
		return "", &core.Error{Op: "resolve", Err: fmt.Errorf("%w: $%s", core.ErrHomeNotSet, HomeEnv)}
	}
	if len(segments) == 0 {
		segments = core.DefaultProjectPath
	}
	return filepath.Join(append([]string{home}, segments...)...), nil
}

// Check verifies that dir exists, is a directory and can be listed.
func Check(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return &core.Error{Op: "check", Dir: dir, Err: core.ErrWorkDirMissing}
		}
		return &core.Error{Op: "check", Dir: dir, Err: err}
	}
	if !fi.IsDir() {
		return &core.Error{Op: "check", Dir: dir, Err: core.ErrNotDirectory}
	}

	f, err := os.Open(dir)
	if err != nil {
		return &core.Error{Op: "check", Dir: dir, Err: err}
	}
	return f.Close()
}

// HasScript reports whether the build script exists in dir
func HasScript(dir, script string) bool {
	fi, err := os.Stat(filepath.Join(dir, script))
	return err == nil && fi.Mode().IsRegular()
}
