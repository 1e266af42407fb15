package render

import (
	"strings"
	"unicode"
)

// avatarPalette is the fixed set of avatar background colors. The color
// for a name is chosen by hashing the name length against the palette.
var avatarPalette = [5]string{"#6c5ce7", "#00b894", "#e17055", "#0984e3", "#d63031"}

// Avatar is the deterministic visual identity derived from an author name
type Avatar struct {
	Initials string
	Color    string
}

// AvatarFor derives the avatar for a display name: the initials of the
// first two words, and a palette color keyed by name length.
func AvatarFor(name string) Avatar {
	color := avatarPalette[len(name)%len(avatarPalette)]

	var initials strings.Builder
	count := 0
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			initials.WriteRune(unicode.ToUpper(r))
			count++
			break
		}
		if count >= 2 {
			break
		}
	}
	if count == 0 {
		initials.WriteRune('?')
	}

	return Avatar{Initials: initials.String(), Color: color}
}
