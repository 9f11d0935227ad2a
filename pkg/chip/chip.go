package chip

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidKind is returned when a chip kind is not one of the four known kinds
var ErrInvalidKind = errors.New("invalid chip kind")

// Kind is the kind of a chip
type Kind string

// kind constants
const (
	Mover   Kind = "mover"
	Stacker Kind = "stacker"
	Drawer  Kind = "drawer"
	Binder  Kind = "binder"
)

// Kinds lists every kind in a stable order
var Kinds = []Kind{Mover, Stacker, Drawer, Binder}

// universe sizes
const (
	CopiesPerKind = 9
	UniverseSize  = CopiesPerKind * 4
)

// ParseKind returns the Kind for s
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(s))
	switch k {
	case Mover, Stacker, Drawer, Binder:
		return k, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// Chip is an individual chip
// Chips are always passed around as pointers; the pointer is the chip's identity
type Chip struct {
	Kind   Kind `json:"kind"`
	hidden bool
}

// New returns a face-up chip of the specified kind
func New(kind Kind) (*Chip, error) {
	k, err := ParseKind(string(kind))
	if err != nil {
		return nil, err
	}

	return &Chip{Kind: k}, nil
}

// Hidden returns true if the chip is face down
func (c *Chip) Hidden() bool {
	return c.hidden
}

// Hide turns the chip face down
func (c *Chip) Hide() {
	c.hidden = true
}

// Reveal turns the chip face up
func (c *Chip) Reveal() {
	c.hidden = false
}

func (c *Chip) String() string {
	if c.hidden {
		return fmt.Sprintf("[%s]", c.Kind)
	}

	return string(c.Kind)
}

var chipRx = regexp.MustCompile(`(?i)^(!)?(mover|stacker|drawer|binder)\z`)

// FromString returns a Chip from the string.
// The string is the kind, optionally prefixed with ! for a face-down chip (e.g., "!binder")
func FromString(s string) *Chip {
	if s == "" {
		return nil
	}

	match := chipRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse chip: %s", s))
	}

	c := mustNew(Kind(match[2]))
	c.hidden = match[1] == "!"
	return c
}

// mustNew is New for kinds that are known to be valid
func mustNew(kind Kind) *Chip {
	c, err := New(kind)
	if err != nil {
		panic(err)
	}

	return c
}

// FromStrings will return a slice of chips from a comma separated list
func FromStrings(s string) []*Chip {
	if s == "" {
		return []*Chip{}
	}

	parts := strings.Split(s, ",")
	chips := make([]*Chip, len(parts))
	for i, part := range parts {
		chips[i] = FromString(part)
	}

	return chips
}

// ToString converts a chip into the format understood by FromString
func ToString(c *Chip) string {
	if c == nil {
		return ""
	}

	if c.hidden {
		return "!" + string(c.Kind)
	}

	return string(c.Kind)
}

// ToStrings will convert a slice of chips to a string in the format of mover,!binder,...
func ToStrings(chips []*Chip) string {
	s := make([]string, len(chips))
	for i, c := range chips {
		s[i] = ToString(c)
	}

	return strings.Join(s, ",")
}

// CountKinds returns how many chips of each kind are in chips
func CountKinds(chips []*Chip) map[Kind]int {
	counts := make(map[Kind]int, len(Kinds))
	for _, c := range chips {
		counts[c.Kind]++
	}

	return counts
}
