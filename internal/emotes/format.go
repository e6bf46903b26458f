package emotes

import (
	"fmt"
)

// DefaultCDNBase serves the emote image files.
const DefaultCDNBase = "https://cdn.7tv.app"

// EmoteURL returns the 1x webp rendition for an emote identifier.
func EmoteURL(cdnBase, id string) string {
	return fmt.Sprintf("%s/emote/%s/1x.webp", cdnBase, id)
}

// Fragment builds the inline HTML snippet inserted on acceptance. alt and
// title carry the delimited form so hover and accessible text read ":name:".
// The trailing space keeps the image from gluing onto whatever is typed next.
func Fragment(cdnBase, name, id string) string {
	delimited := ":" + name + ":"
	return fmt.Sprintf(`<img class="emotetab-emote" src=%q alt=%q title=%q height="28" /> `,
		EmoteURL(cdnBase, id), delimited, delimited)
}

// FallbackFragment is the literal fragment for the well-known fallback emote,
// usable without consulting any mapping.
func FallbackFragment(cdnBase string) string {
	return Fragment(cdnBase, FallbackName, FallbackID)
}
