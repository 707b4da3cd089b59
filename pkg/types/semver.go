package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/woah/pkg/errors"
)

// SemVer is a major.minor.hotfix version with an optional beta flag.
type SemVer struct {
	major  uint32
	minor  uint32
	hotfix uint32
	beta   bool
}

// NewSemVer creates a release version.
func NewSemVer(major, minor, hotfix uint32) SemVer {
	return SemVer{major: major, minor: minor, hotfix: hotfix}
}

// NewBetaSemVer creates a beta version.
func NewBetaSemVer(major, minor, hotfix uint32) SemVer {
	return SemVer{major: major, minor: minor, hotfix: hotfix, beta: true}
}

// Latest is the engine and format version used when none is given.
func Latest() SemVer {
	return NewSemVer(1, 21, 80)
}

// ParseSemVer parses "M.m.h" with an optional "-beta" suffix.
func ParseSemVer(s string) (SemVer, error) {
	raw := strings.TrimSpace(s)
	beta := false
	if trimmed, ok := strings.CutSuffix(raw, "-beta"); ok {
		raw = trimmed
		beta = true
	}

	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return SemVer{}, errors.Newf(errors.ErrData, "version %q must have three dotted parts", s)
	}

	var nums [3]uint32
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return SemVer{}, errors.Wrapf(err, errors.ErrData, "version %q has a non-numeric part %q", s, part)
		}
		nums[i] = uint32(n)
	}

	return SemVer{major: nums[0], minor: nums[1], hotfix: nums[2], beta: beta}, nil
}

func (v SemVer) Major() uint32  { return v.major }
func (v SemVer) Minor() uint32  { return v.minor }
func (v SemVer) Hotfix() uint32 { return v.hotfix }
func (v SemVer) Beta() bool     { return v.beta }

// RenderDotted returns "M.m.h", suffixed with "-beta" for beta versions.
func (v SemVer) RenderDotted() string {
	s := fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.hotfix)
	if v.beta {
		s += "-beta"
	}
	return s
}

// RenderCommas returns "M,m,h" for numeric-array manifest fields.
// The beta flag never appears in this form.
func (v SemVer) RenderCommas() string {
	return fmt.Sprintf("%d,%d,%d", v.major, v.minor, v.hotfix)
}

func (v SemVer) String() string {
	return v.RenderDotted()
}

func (v SemVer) MarshalText() ([]byte, error) {
	return []byte(v.RenderDotted()), nil
}

func (v *SemVer) UnmarshalText(text []byte) error {
	parsed, err := ParseSemVer(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
