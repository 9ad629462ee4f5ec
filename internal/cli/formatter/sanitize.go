package formatter

import "strings"

// maxDisplayNameLen bounds how much of a shared name is ever rendered.
const maxDisplayNameLen = 40

// DisplayName sanitizes a name that arrived via a share URL before it is
// rendered: angle brackets are stripped and the result is truncated. The
// codec returns names verbatim; this is the single rendering chokepoint.
func DisplayName(name string) string {
	name = strings.NewReplacer("<", "", ">", "").Replace(name)
	name = strings.TrimSpace(name)
	if len(name) > maxDisplayNameLen {
		name = name[:maxDisplayNameLen]
	}
	return name
}
