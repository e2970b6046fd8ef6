package merge

import "strings"

// HiddenPrefix is the renaming convention applied to deprecated members when
// the previous version's shadow descriptors are generated. A reserved name n
// in the active descriptor is recoverable when the shadow contains a member
// named HiddenPrefix + n.
const HiddenPrefix = "hidden_envoy_deprecated_"

// HiddenName returns the shadow member name for a reserved name.
func HiddenName(name string) string {
	return HiddenPrefix + name
}

// IsHiddenName reports whether name follows the hidden-deprecated convention.
func IsHiddenName(name string) bool {
	return strings.HasPrefix(name, HiddenPrefix)
}

// OriginalName recovers the reserved name a hidden-deprecated member stands
// for. The second return is false when name does not follow the convention.
func OriginalName(name string) (string, bool) {
	if !IsHiddenName(name) {
		return "", false
	}
	return strings.TrimPrefix(name, HiddenPrefix), true
}
