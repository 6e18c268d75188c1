package entities

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"
)

const (
	// HeadVersion means "no explicit revision requested; use the remote's default branch".
	HeadVersion = "HEAD"

	// SentinelName is the marker file written at the root of a managed dependencies directory.
	SentinelName = ".depman"
)

// VersionKind classifies a declared version for display purposes.
type VersionKind string

const (
	VersionKindDefault VersionKind = "default"
	VersionKindTag     VersionKind = "tag"
	VersionKindRef     VersionKind = "ref"
)

// RawDependency is a dependency entry exactly as declared in a depfile, before defaults
// are derived. Empty strings mean the key was absent.
type RawDependency struct {
	Name     string   `json:"name"     toml:"name"     yaml:"name"`
	Location string   `json:"location" toml:"location" yaml:"location"`
	Version  string   `json:"version"  toml:"version"  yaml:"version"`
	Build    []string `json:"build"    toml:"build"    yaml:"build"`
}

// Dependency is a validated, immutable dependency descriptor.
type Dependency struct {
	Name          string
	Location      string
	Version       string
	BuildCommands []string
}

// IsHead reports whether the dependency tracks the remote's default branch.
func (d Dependency) IsHead() bool {
	return d.Version == HeadVersion
}

// HasBuild reports whether the dependency declares any build command.
func (d Dependency) HasBuild() bool {
	return len(d.BuildCommands) > 0
}

// VersionKind returns how the declared version is interpreted when listed.
func (d Dependency) VersionKind() VersionKind {
	if d.IsHead() {
		return VersionKindDefault
	}

	candidate := d.Version
	if !strings.HasPrefix(candidate, "v") {
		candidate = "v" + candidate
	}
	if semver.IsValid(candidate) {
		return VersionKindTag
	}
	return VersionKindRef
}

// ParseDependencies turns raw depfile entries into validated dependency descriptors.
// Any invalid entry aborts the whole parse.
func ParseDependencies(raw []RawDependency) ([]Dependency, error) {
	if len(raw) == 0 {
		logger.Warn("Depfile has no dependencies.")
		return []Dependency{}, nil
	}

	deps := make([]Dependency, 0, len(raw))
	seen := make(map[string]int, len(raw))

	for i, entry := range raw {
		dep, err := ParseDependency(entry)
		if err != nil {
			var vErr *ValidationError
			if errors.As(err, &vErr) && vErr.Dependency == "" {
				vErr.Dependency = fmt.Sprintf("#%d", i+1)
			}
			return nil, err
		}

		if first, dup := seen[dep.Name]; dup {
			return nil, &ValidationError{
				Dependency: dep.Name,
				Reason: fmt.Sprintf(
					"name collides with dependency #%d; set an explicit unique name", first+1,
				),
			}
		}
		seen[dep.Name] = i

		deps = append(deps, dep)
	}

	return deps, nil
}

// ParseDependency validates a single raw entry and derives its defaults.
func ParseDependency(raw RawDependency) (Dependency, error) {
	location := strings.TrimSpace(raw.Location)
	if location == "" {
		return Dependency{}, &ValidationError{Dependency: raw.Name, Reason: "has no location"}
	}

	name := strings.TrimSpace(raw.Name)
	if name == "" {
		name = NameFromLocation(location)
	}
	if err := validateName(name); err != nil {
		return Dependency{}, &ValidationError{Dependency: raw.Name, Reason: err.Error()}
	}

	version := strings.TrimSpace(raw.Version)
	if version == "" {
		version = HeadVersion
	}

	build := make([]string, 0, len(raw.Build))
	build = append(build, raw.Build...)

	return Dependency{
		Name:          name,
		Location:      location,
		Version:       version,
		BuildCommands: build,
	}, nil
}

// NameFromLocation derives a dependency name from its location: the last path segment
// without its extension, or the host when the path is empty.
func NameFromLocation(location string) string {
	host, p := splitLocation(location)

	segment := ""
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segment = s
		}
	}
	if segment == "" {
		return host
	}

	if ext := path.Ext(segment); ext != segment {
		segment = strings.TrimSuffix(segment, ext)
	}
	return segment
}

// splitLocation returns the host and path components of a location. scp-like
// locations (user@host:path) are not valid URLs and are split on the first colon.
func splitLocation(location string) (string, string) {
	parsed, err := url.Parse(location)
	if err == nil && parsed.Opaque == "" && (parsed.Scheme != "" || !strings.Contains(location, ":")) {
		return parsed.Hostname(), parsed.Path
	}

	if before, after, found := strings.Cut(location, ":"); found {
		if _, host, hasUser := strings.Cut(before, "@"); hasUser {
			return host, after
		}
		return before, after
	}
	return "", location
}

func validateName(name string) error {
	switch {
	case name == "":
		return errors.New("cannot derive a name from its location")
	case name == "." || name == "..":
		return fmt.Errorf("name %q is not a valid directory name", name)
	case name == SentinelName:
		return fmt.Errorf("name %q is reserved", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("name %q must not contain path separators", name)
	}
	return nil
}
