package lab

import (
	"fmt"
	"strings"
)

// Kind identifies one simulation routine.
type Kind int

// Simulation kinds. Only the first three appear in the menu.
const (
	KindDoubleSlit Kind = iota + 1
	KindParticleInBox
	KindBlochSphere
	KindTunneling
)

var kindNames = map[Kind]string{
	KindDoubleSlit:    "double-slit",
	KindParticleInBox: "box",
	KindBlochSphere:   "bloch",
	KindTunneling:     "tunneling",
}

// String returns the command-line name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds lists every simulation in declaration order.
func Kinds() []Kind {
	return []Kind{KindDoubleSlit, KindParticleInBox, KindBlochSphere, KindTunneling}
}

// ParseKind resolves a command-line name such as "double-slit" or "bloch".
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range Kinds() {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
