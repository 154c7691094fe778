package classfile

import (
	"fmt"
	"strings"
)

// AccessFlags is a bit set of JVM access modifiers.
type AccessFlags uint16

const (
	AccPublic       AccessFlags = 0x0001
	AccPrivate      AccessFlags = 0x0002
	AccProtected    AccessFlags = 0x0004
	AccStatic       AccessFlags = 0x0008
	AccFinal        AccessFlags = 0x0010
	AccSynchronized AccessFlags = 0x0020
	AccVolatile     AccessFlags = 0x0040
	AccTransient    AccessFlags = 0x0080
	AccNative       AccessFlags = 0x0100
	AccInterface    AccessFlags = 0x0200
	AccAbstract     AccessFlags = 0x0400
	AccSynthetic    AccessFlags = 0x1000
	AccAnnotation   AccessFlags = 0x2000
	AccEnum         AccessFlags = 0x4000
)

// accessNames lists flags in canonical (source modifier) order.
var accessNames = []struct {
	flag AccessFlags
	name string
}{
	{AccPublic, "public"},
	{AccPrivate, "private"},
	{AccProtected, "protected"},
	{AccStatic, "static"},
	{AccFinal, "final"},
	{AccSynchronized, "synchronized"},
	{AccVolatile, "volatile"},
	{AccTransient, "transient"},
	{AccNative, "native"},
	{AccInterface, "interface"},
	{AccAbstract, "abstract"},
	{AccSynthetic, "synthetic"},
	{AccAnnotation, "annotation"},
	{AccEnum, "enum"},
}

// Has returns true if every bit of flag is set.
func (a AccessFlags) Has(flag AccessFlags) bool {
	return a&flag == flag
}

// Names returns the modifier keywords for the set flags.
func (a AccessFlags) Names() []string {
	var names []string

	for _, n := range accessNames {
		if a.Has(n.flag) {
			names = append(names, n.name)
		}
	}

	return names
}

// String returns the modifiers separated by spaces.
func (a AccessFlags) String() string {
	return strings.Join(a.Names(), " ")
}

// ParseAccess converts modifier keywords into AccessFlags.
func ParseAccess(names []string) (AccessFlags, error) {
	var flags AccessFlags

	for _, name := range names {
		found := false

		for _, n := range accessNames {
			if strings.EqualFold(n.name, name) {
				flags |= n.flag
				found = true

				break
			}
		}

		if !found {
			return 0, fmt.Errorf("unknown access modifier %q", name)
		}
	}

	return flags, nil
}
