// pkg/platform/detect.go
package platform

import (
	"fmt"
	"os/exec"
	"runtime"
	"slices"

	"github.com/arc-language/reldist/pkg/core"
)

// Interpreters are the Python executables looked up on PATH, in order of
// preference.
var Interpreters = []string{"python3", "python"}

// Platform represents the detected system platform
type Platform struct {
	OS        string   // linux, darwin, windows
	Arch      string   // amd64, arm64, 386, arm
	Available []string // Python interpreters found on PATH
	Preferred string   // Preferred interpreter
}

// Detect detects the current platform and available Python interpreters
func Detect() (*Platform, error) {
	p := &Platform{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Available: []string{},
	}

	for _, name := range Interpreters {
		if onPath(name) && !slices.Contains(p.Available, name) {
			p.Available = append(p.Available, name)
		}
	}

	if len(p.Available) > 0 {
		p.Preferred = p.Available[0]
	}

	return p, nil
}

// Interpreter returns override when set, otherwise the preferred interpreter
// on PATH.
func Interpreter(override string) (string, error) {
	if override != "" {
		return override, nil
	}

	p, err := Detect()
	if err != nil {
		return "", err
	}
	if p.Preferred == "" {
		return "", fmt.Errorf("%w: tried %v", core.ErrInterpreterNotFound, Interpreters)
	}

	path, err := exec.LookPath(p.Preferred)
	if err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrInterpreterNotFound, err)
	}
	return path, nil
}

func onPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (available: %v, preferred: %s)",
		p.OS, p.Arch, p.Available, p.Preferred)
}
