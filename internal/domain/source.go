package domain

import "fmt"

// SourceKind records where a program was discovered
type SourceKind int

const (
	SourceStartMenu SourceKind = iota
	SourcePath
)

var sourceNames = map[SourceKind]string{
	SourceStartMenu: "StartMenu",
	SourcePath:      "Path",
}

var sourceCodes = map[SourceKind]string{
	SourceStartMenu: "S",
	SourcePath:      "P",
}

// Code returns the short marker shown in front of a candidate line
func (s SourceKind) Code() string {
	if c, ok := sourceCodes[s]; ok {
		return c
	}
	return "?"
}

func (s SourceKind) String() string {
	if n, ok := sourceNames[s]; ok {
		return n
	}
	return fmt.Sprintf("SourceKind(%d)", int(s))
}

// ParseSourceKind converts a persisted source name back into a SourceKind
func ParseSourceKind(name string) (SourceKind, error) {
	for kind, n := range sourceNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown source kind %q", name)
}

// MarshalText encodes the kind by name so the index document stays readable.
func (s SourceKind) MarshalText() ([]byte, error) {
	n, ok := sourceNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown source kind %d", int(s))
	}
	return []byte(n), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *SourceKind) UnmarshalText(text []byte) error {
	kind, err := ParseSourceKind(string(text))
	if err != nil {
		return err
	}
	*s = kind
	return nil
}
