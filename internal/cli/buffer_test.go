package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/Tinerou/7tv-emotes-obsidian-plugin-sub000/internal/emotes"
)

func typeString(b *lineBuffer, s string) {
	for _, r := range s {
		b.insertRune(r)
	}
}

func TestLineBuffer_EditingBasics(t *testing.T) {
	b := &lineBuffer{}
	typeString(b, "helo")
	b.cursor = 3
	b.insertRune('l')
	if b.String() != "hello" || b.cursor != 4 {
		t.Fatalf("got %q cursor %d", b.String(), b.cursor)
	}
	b.cursor = len(b.runes)
	if !b.backspace() || b.String() != "hell" {
		t.Fatalf("backspace: %q", b.String())
	}
	b.cursor = 0
	if b.backspace() {
		t.Fatalf("backspace at start should be a no-op")
	}
}

func TestLineBuffer_GetRange(t *testing.T) {
	b := &lineBuffer{}
	typeString(b, "hello :HUH:")
	got := b.GetRange(emotes.Position{Ch: 6}, emotes.Position{Ch: 11})
	if got != ":HUH:" {
		t.Fatalf("got %q", got)
	}
	if b.GetRange(emotes.Position{Ch: 9}, emotes.Position{Ch: 2}) != "" {
		t.Fatalf("inverted range should be empty")
	}
	if b.GetRange(emotes.Position{Ch: -3}, emotes.Position{Ch: 99}) != "hello :HUH:" {
		t.Fatalf("out-of-bounds range should clamp")
	}
}

func TestLineBuffer_ReplaceRangeMovesCursor(t *testing.T) {
	b := &lineBuffer{}
	typeString(b, "ab:cd:ef")
	b.ReplaceRange(emotes.Position{Ch: 2}, emotes.Position{Ch: 6}, "X")
	if b.String() != "abXef" {
		t.Fatalf("got %q", b.String())
	}
	if b.cursor != 3 {
		t.Fatalf("cursor: got %d want 3", b.cursor)
	}
}

func TestLineBuffer_AcceptEndToEnd(t *testing.T) {
	// The buffer is the Editor implementation the REPL hands to the engine;
	// run the full trigger -> accept cycle against it.
	m := emotes.NewMapping()
	m.Put("OMG", "02AA")
	b := &lineBuffer{}
	typeString(b, "hi :OM")

	trig, ok := emotes.DetectTrigger(b.String(), 0, b.cursor)
	if !ok {
		t.Fatalf("expected trigger")
	}
	if err := emotes.Accept("OMG", trig, m, emotes.DefaultCDNBase, b); err != nil {
		t.Fatalf("Accept error: %v", err)
	}
	want := "hi " + emotes.Fragment(emotes.DefaultCDNBase, "OMG", "02AA")
	if b.String() != want {
		t.Fatalf("got %q want %q", b.String(), want)
	}
	if b.cursor != len(b.runes) {
		t.Fatalf("cursor should land after the fragment")
	}
	// Nothing left of the cursor triggers anymore: the colon was consumed.
	if _, ok := emotes.DetectTrigger(b.String(), 0, b.cursor); ok {
		t.Fatalf("fragment re-triggered the popup")
	}
}

func TestLoadHistory_SkipsBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/.emotetab_history"
	if err := os.WriteFile(path, []byte("one\n\ntwo\r\n  \nthree\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := loadHistory(path)
	want := []string{"one", "two", "three"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("got %#v want %#v", got, want)
	}
	if h := loadHistory(dir + "/missing"); h != nil {
		t.Fatalf("missing file should yield empty history")
	}
}
