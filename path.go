// File: hconf/path.go
package hconf

import (
	"fmt"
	"strings"
)

// Separator is the character used to split dot-notation paths into segments.
const Separator = "."

// Path is a resolved hierarchical address: an ordered sequence of literal
// key segments. A Path of length 1 addresses a direct child; longer paths
// address descendants.
//
// Two surface syntaxes produce the same Path: ParsePath splits a string on
// the separator, while NewPath takes explicit segments. Segments passed to
// NewPath are taken literally and may themselves contain the separator;
// such keys are only reachable through the ...Path entry points and are
// invisible to dot-string addressing. This ambiguity is a known limitation.
type Path []string

// ParsePath splits a dot-notation string into a validated Path.
func ParsePath(path string) (Path, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	segments := strings.Split(path, Separator)
	for _, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrInvalidPath, path)
		}
	}

	return Path(segments), nil
}

// NewPath builds a Path from explicit key segments without splitting them.
func NewPath(segments ...string) (Path, error) {
	p := Path(segments)
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// String joins the segments with the separator. The result is only a valid
// dot-notation address if no segment contains the separator itself.
func (p Path) String() string {
	return strings.Join(p, Separator)
}

func (p Path) validate() error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	for _, segment := range p {
		if segment == "" {
			return fmt.Errorf("%w: empty segment in %q", ErrInvalidPath, p.String())
		}
	}
	return nil
}
