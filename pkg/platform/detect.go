// pkg/platform/detect.go
package platform

import (
	"errors"
	"fmt"
	"os"
	"runtime"
)

// ErrUnsupported is returned for build hosts the recipes do not target
var ErrUnsupported = errors.New("unsupported operating system")

// DefaultSystemPrefixes are the OS-default directory trees that are moved
// behind package-supplied paths. /usr also covers /usr/local.
var DefaultSystemPrefixes = []string{"/usr", "/bin", "/sbin", "/lib", "/lib64"}

// Platform represents the detected build host
type Platform struct {
	OS             string   // linux, darwin
	Arch           string   // amd64, arm64
	ListSeparator  string   // separator used inside path-list variables
	SystemPrefixes []string // default system prefixes for this host
	LibraryPathVar string   // dynamic-loader search variable
}

// Detect detects the current platform
func Detect() (*Platform, error) {
	return detect(runtime.GOOS, runtime.GOARCH)
}

func detect(goos, goarch string) (*Platform, error) {
	p := &Platform{
		OS:             goos,
		Arch:           goarch,
		ListSeparator:  string(os.PathListSeparator),
		SystemPrefixes: append([]string(nil), DefaultSystemPrefixes...),
	}

	switch goos {
	case "darwin":
		p.LibraryPathVar = "DYLD_LIBRARY_PATH"
	case "linux", "freebsd", "netbsd", "openbsd":
		p.LibraryPathVar = "LD_LIBRARY_PATH"
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, goos)
	}

	return p, nil
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (separator: %q, library path: %s)",
		p.OS, p.Arch, p.ListSeparator, p.LibraryPathVar)
}
