package model

import "fmt"

// StatusKind identifies a timed status effect on a monster.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusPoison
	StatusParalysis
	StatusSleep
	StatusStun
	StatusMount
	StatusTrap
)

var statusNames = map[StatusKind]string{
	StatusNone:      "none",
	StatusPoison:    "poison",
	StatusParalysis: "paralysis",
	StatusSleep:     "sleep",
	StatusStun:      "stun",
	StatusMount:     "mount",
	StatusTrap:      "trap",
}

// String returns the status name used in data files and logs.
func (k StatusKind) String() string {
	if name, ok := statusNames[k]; ok {
		return name
	}
	return fmt.Sprintf("StatusKind(%d)", int(k))
}

// ParseStatusKind parses a status name from data files.
func ParseStatusKind(s string) (StatusKind, error) {
	for kind, name := range statusNames {
		if name == s {
			return kind, nil
		}
	}
	return StatusNone, fmt.Errorf("unknown status kind %q", s)
}
