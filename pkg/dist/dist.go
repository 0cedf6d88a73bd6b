// Package dist inspects the source distributions a build leaves in dist/.
package dist

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ulikunitz/xz"
	"zombiezen.com/go/nix/nixbase32"

	"github.com/arc-language/reldist/pkg/core"
)

// DirName is the output directory setup.py sdist writes to.
const DirName = "dist"

// Archive formats produced by `setup.py sdist --formats=...`
const (
	FormatGzTar = "gztar"
	FormatXzTar = "xztar"
	FormatZip   = "zip"
)

var (
	// ErrNoDist indicates the project has no dist/ directory yet
	ErrNoDist = errors.New("no dist directory")

	// ErrNoPkgInfo indicates an archive without a top-level PKG-INFO
	ErrNoPkgInfo = errors.New("PKG-INFO not found")

	// ErrUnknownFormat indicates a file that is not an sdist archive
	ErrUnknownFormat = errors.New("unknown archive format")
)

// Artifact is a built source distribution
type Artifact struct {
	core.Package
	Path    string
	Format  string
	Size    int64
	SHA256  string // hex
	NixHash string // sha256:<nix base32>
}

// Filename returns the base name of the archive
func (a *Artifact) Filename() string {
	return filepath.Base(a.Path)
}

// FormatOf maps a file name to its sdist format, or "" if it is not one.
func FormatOf(name string) string {
	switch {
	case strings.HasSuffix(name, ".tar.gz"):
		return FormatGzTar
	case strings.HasSuffix(name, ".tar.xz"):
		return FormatXzTar
	case strings.HasSuffix(name, ".zip"):
		return FormatZip
	}
	return ""
}

// Scan inspects every sdist archive in <projectDir>/dist, sorted by name.
// An archive that cannot be inspected does not stop the scan: the readable
// ones are returned together with the joined errors of the rest.
func Scan(projectDir string) ([]*Artifact, error) {
	dir := filepath.Join(projectDir, DirName)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoDist, dir)
		}
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && FormatOf(e.Name()) != "" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	artifacts := make([]*Artifact, 0, len(names))
	var errs []error
	for _, name := range names {
		a, err := Inspect(filepath.Join(dir, name))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, errors.Join(errs...)
}

// Inspect reads the PKG-INFO of a single archive and digests the file.
func Inspect(p string) (*Artifact, error) {
	format := FormatOf(p)
	if format == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, p)
	}

	a := &Artifact{Path: p, Format: format}
	if err := a.digest(); err != nil {
		return nil, err
	}

	var (
		raw []byte
		err error
	)
	if format == FormatZip {
		raw, err = pkgInfoFromZip(p)
	} else {
		raw, err = pkgInfoFromTar(p, format)
	}
	if err != nil {
		return nil, fmt.Errorf("inspecting %s: %w", filepath.Base(p), err)
	}

	a.Package, err = ParsePkgInfo(raw)
	if err != nil {
		return nil, fmt.Errorf("inspecting %s: %w", filepath.Base(p), err)
	}
	return a, nil
}

func (a *Artifact) digest() error {
	f, err := os.Open(a.Path)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return fmt.Errorf("hashing %s: %w", filepath.Base(a.Path), err)
	}
	sum := h.Sum(nil)

	a.Size = n
	a.SHA256 = hex.EncodeToString(sum)
	a.NixHash = nixHash(sum)
	return nil
}

// nixHash renders a sha256 sum the way Nix prints fixed-output hashes.
func nixHash(sum []byte) string {
	return "sha256:" + nixbase32.EncodeToString(sum)
}

func pkgInfoFromTar(p, format string) ([]byte, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader
	switch format {
	case FormatGzTar:
		gzReader, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("creating gzip reader: %w", err)
		}
		defer gzReader.Close()
		r = gzReader
	case FormatXzTar:
		xzReader, err := xz.NewReader(bufio.NewReader(f))
		if err != nil {
			return nil, fmt.Errorf("creating xz reader: %w", err)
		}
		r = xzReader
	}

	tr := tar.NewReader(r)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil, ErrNoPkgInfo
		}
		if err != nil {
			return nil, fmt.Errorf("reading tar entry: %w", err)
		}
		if header.Typeflag == tar.TypeReg && isTopLevelPkgInfo(header.Name) {
			return io.ReadAll(tr)
		}
	}
}

func pkgInfoFromZip(p string) ([]byte, error) {
	zr, err := zip.OpenReader(p)
	if err != nil {
		return nil, fmt.Errorf("opening zip: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if !isTopLevelPkgInfo(f.Name) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, ErrNoPkgInfo
}

// isTopLevelPkgInfo matches "<name>-<version>/PKG-INFO" but not the copy
// setuptools keeps under *.egg-info/.
func isTopLevelPkgInfo(name string) bool {
	name = strings.TrimPrefix(path.Clean(name), "./")
	dir, file := path.Split(name)
	return file == "PKG-INFO" && dir != "" && strings.Count(dir, "/") == 1
}
