package dist

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/arc-language/reldist/pkg/core"
)

// ParsePkgInfo reads the header block of a PKG-INFO file (core metadata).
// Parsing stops at the first blank line, where the long description begins.
func ParsePkgInfo(data []byte) (core.Package, error) {
	var pkg core.Package

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		// continuation of a folded header
		if line[0] == ' ' || line[0] == '\t' {
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.ToLower(key) {
		case "name":
			pkg.Name = value
		case "version":
			pkg.Version = value
		case "summary":
			pkg.Summary = value
		case "license":
			pkg.License = value
		case "home-page":
			pkg.Homepage = value
		}
	}
	if err := sc.Err(); err != nil {
		return pkg, fmt.Errorf("reading PKG-INFO: %w", err)
	}

	return pkg, nil
}
