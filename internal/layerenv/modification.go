package layerenv

import (
	"fmt"
	"strings"
)

// Modification is how a value combines with an existing variable of the same name.
type Modification int

const (
	// Default sets the variable only when it is not already set.
	Default Modification = iota
	// Override always replaces the variable.
	Override
	// Append adds the value after the existing one, joined by the delimiter.
	Append
	// Prepend adds the value before the existing one, joined by the delimiter.
	Prepend
)

var modificationNames = map[Modification]string{
	Default:  "default",
	Override: "override",
	Append:   "append",
	Prepend:  "prepend",
}

// Suffix is the file extension used for the modification in a layer env directory.
func (m Modification) Suffix() string {
	return modificationNames[m]
}

func (m Modification) String() string {
	return modificationNames[m]
}

// MarshalText renders the modification as its suffix.
func (m Modification) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText accepts what ParseModification accepts.
func (m *Modification) UnmarshalText(text []byte) error {
	parsed, err := ParseModification(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseModification maps a name or file suffix to a Modification.
func ParseModification(name string) (Modification, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "default", "":
		return Default, nil
	case "override":
		return Override, nil
	case "append":
		return Append, nil
	case "prepend":
		return Prepend, nil
	}
	return Default, fmt.Errorf("unknown modification %q (want default, override, append or prepend)", name)
}
