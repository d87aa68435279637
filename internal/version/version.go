// Package version parses the dotted versions WES services advertise, such as
// "1.0.0", "1.1" or "v1".
package version

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

type Version struct {
	Major int
	Minor int
	Patch int
}

func New(major, minor, patch int) *Version {
	return &Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal to or after other.
func (v Version) Compare(other Version) int {
	return cmp.Or(
		cmp.Compare(v.Major, other.Major),
		cmp.Compare(v.Minor, other.Minor),
		cmp.Compare(v.Patch, other.Patch),
	)
}

func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

func (v Version) GreaterThan(other Version) bool {
	return v.Compare(other) > 0
}

func (v Version) LessThan(other Version) bool {
	return v.Compare(other) < 0
}

// Satisfies reports whether an implementation of v can serve a client asking
// for requested: same major version and not older.
func (v Version) Satisfies(requested Version) bool {
	return v.Major == requested.Major && !v.LessThan(requested)
}

// Parse accepts one to three dot separated non-negative integers with an
// optional leading "v". Missing components are zero.
func Parse(version string) (*Version, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(version), "v")
	if trimmed == "" {
		return nil, fmt.Errorf("invalid version %q", version)
	}

	parts := strings.Split(trimmed, ".")
	if len(parts) > 3 {
		return nil, fmt.Errorf("invalid version %q: too many components", version)
	}

	var nums [3]int
	names := [3]string{"major", "minor", "patch"}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid %s version %q: %w", names[i], part, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid %s version %q: cannot be negative", names[i], part)
		}
		nums[i] = n
	}

	return New(nums[0], nums[1], nums[2]), nil
}
