package cli

import (
	"github.com/Tinerou/7tv-emotes-obsidian-plugin-sub000/internal/emotes"
)

// lineBuffer is a single-line text buffer with a cursor. It implements
// emotes.Editor, so the insertion engine drives the same replacement path a
// real host editor would. Only ASCII is ever inserted by the key loop, so
// column offsets and byte offsets coincide.
type lineBuffer struct {
	runes  []rune
	cursor int
}

func (b *lineBuffer) String() string { return string(b.runes) }

func (b *lineBuffer) clamp(ch int) int {
	if ch < 0 {
		return 0
	}
	if ch > len(b.runes) {
		return len(b.runes)
	}
	return ch
}

// GetRange returns the text spanning [from, to) on the line. Positions on
// other lines are clamped to this line; the demo host has only one.
func (b *lineBuffer) GetRange(from, to emotes.Position) string {
	s, e := b.clamp(from.Ch), b.clamp(to.Ch)
	if s >= e {
		return ""
	}
	return string(b.runes[s:e])
}

// ReplaceRange splices text over [from, to) and leaves the cursor after the
// inserted text.
func (b *lineBuffer) ReplaceRange(from, to emotes.Position, text string) {
	s, e := b.clamp(from.Ch), b.clamp(to.Ch)
	if s > e {
		s, e = e, s
	}
	ins := []rune(text)
	out := make([]rune, 0, len(b.runes)-(e-s)+len(ins))
	out = append(out, b.runes[:s]...)
	out = append(out, ins...)
	out = append(out, b.runes[e:]...)
	b.runes = out
	b.cursor = s + len(ins)
}

// ReplaceSelection inserts text at the cursor.
func (b *lineBuffer) ReplaceSelection(text string) {
	b.ReplaceRange(emotes.Position{Ch: b.cursor}, emotes.Position{Ch: b.cursor}, text)
}

func (b *lineBuffer) insertRune(r rune) {
	b.runes = append(b.runes[:b.cursor], append([]rune{r}, b.runes[b.cursor:]...)...)
	b.cursor++
}

func (b *lineBuffer) backspace() bool {
	if b.cursor == 0 {
		return false
	}
	b.runes = append(b.runes[:b.cursor-1], b.runes[b.cursor:]...)
	b.cursor--
	return true
}

func (b *lineBuffer) set(s string) {
	b.runes = []rune(s)
	b.cursor = len(b.runes)
}

func (b *lineBuffer) reset() {
	b.runes = b.runes[:0]
	b.cursor = 0
}
