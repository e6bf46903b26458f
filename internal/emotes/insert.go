package emotes

import (
	"errors"
	"strings"

	"github.com/Tinerou/7tv-emotes-obsidian-plugin-sub000/pkg/log"
)

// ErrNotFound reports that a chosen name vanished from the mapping between the
// popup render and the selection. The buffer is left untouched in that case.
var ErrNotFound = errors.New("emote not found in mapping")

// Editor is the capability surface the insertion engine needs from the host
// text buffer. Implementations are single line or multi line; the engine only
// ever touches the span captured in the trigger.
type Editor interface {
	// GetRange returns the literal text currently spanning [from, to).
	GetRange(from, to Position) string
	// ReplaceRange replaces [from, to) with text.
	ReplaceRange(from, to Position, text string)
	// ReplaceSelection inserts text at the collapsed cursor.
	ReplaceSelection(text string)
}

// Accept performs the in-place replacement for a chosen candidate. The deleted
// span is always exactly [trig.Start, trig.End): End was captured at the
// cursor, so a user-typed closing colon is already inside the span.
func Accept(chosen string, trig Trigger, m *Mapping, cdnBase string, ed Editor) error {
	id, ok := m.Get(chosen)
	if !ok {
		log.Warn("accept:", chosen, "missing from mapping")
		return ErrNotFound
	}
	// Informational only: the span tells us whether the closing colon was
	// already typed. The deletion range does not depend on it.
	if cur := ed.GetRange(trig.Start, trig.End); strings.HasSuffix(cur, ":") {
		log.Info("accept:", chosen, "(closing delimiter already typed)")
	}
	ed.ReplaceRange(trig.Start, trig.End, "")
	ed.ReplaceSelection(Fragment(cdnBase, chosen, id))
	return nil
}
