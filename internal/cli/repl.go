package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/Tinerou/7tv-emotes-obsidian-plugin-sub000/internal/emotes"
)

// popup tracks the active suggestion session. A fresh trigger evaluation on
// every keystroke decides whether it stays open; no state survives an edit
// that breaks the trigger.
type popup struct {
	trig  emotes.Trigger
	cands []string
	idx   int
	rows  int
}

// RunREPL drives the interactive demo line editor: type text, and any
// ":name" token under the cursor opens the emote popup. TAB/Shift+TAB or
// up/down move the selection, ENTER accepts, any edit re-evaluates.
// Submitted lines are echoed and recorded in the history file.
func RunREPL(store *emotes.Store, cdnBase, historyPath string, refreshCh <-chan struct{}) {
	tty, restore, err := acquireTTY()
	if err != nil {
		fmt.Fprintln(os.Stderr, "no interactive terminal:", err)
		return
	}
	if restore != nil {
		defer restore()
	}
	if tty != nil {
		defer tty.Close()
	}

	const prompt = ">> "
	const ansiDim = "\x1b[2m"
	const ansiReset = "\x1b[0m"

	buf := &lineBuffer{}
	var pop *popup

	history := loadHistory(historyPath)
	historyFile, _ := os.OpenFile(historyPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if historyFile != nil {
		defer historyFile.Close()
	}
	histIdx := -1 // -1 means not navigating

	render := func() {
		os.Stdout.WriteString("\r")
		os.Stdout.WriteString("\x1b[2K")
		os.Stdout.WriteString(prompt)
		os.Stdout.WriteString(buf.String())
		if tail := len(buf.runes) - buf.cursor; tail > 0 {
			os.Stdout.WriteString(fmt.Sprintf("\x1b[%dD", tail))
		}
	}

	// clearOverlay wipes any candidate rows drawn below the prompt and
	// returns the cursor to the prompt line.
	clearOverlay := func() {
		if pop == nil || pop.rows == 0 {
			return
		}
		os.Stdout.WriteString("\x1b[1B")
		for r := 0; r < pop.rows; r++ {
			os.Stdout.WriteString("\r\x1b[2K")
			if r < pop.rows-1 {
				os.Stdout.WriteString("\x1b[1B")
			}
		}
		os.Stdout.WriteString(fmt.Sprintf("\x1b[%dA", pop.rows))
		pop.rows = 0
	}

	// drawOverlay lays the candidates out in columns below the prompt, the
	// selected one in normal text and the rest dimmed. Returns the row count
	// so the next draw can overwrite in place.
	drawOverlay := func(cands []string, selected, prevRows int) int {
		w := detectTermWidth(tty)
		if w <= 0 {
			w = 80
		}
		maxLen := 0
		for _, s := range cands {
			if l := len(s); l > maxLen {
				maxLen = l
			}
		}
		colW := maxLen + 2
		cols := w / colW
		rows := len(cands)
		if cols > 1 {
			rows = (len(cands) + cols - 1) / cols
		}
		if prevRows == 0 {
			for i := 0; i < rows; i++ {
				os.Stdout.WriteString("\r\n")
			}
			os.Stdout.WriteString(fmt.Sprintf("\x1b[%dA", rows))
		} else if rows > prevRows {
			delta := rows - prevRows
			for i := 0; i < delta; i++ {
				os.Stdout.WriteString("\r\n")
			}
			os.Stdout.WriteString(fmt.Sprintf("\x1b[%dA", delta))
		}
		total := prevRows
		if rows > total {
			total = rows
		}
		os.Stdout.WriteString("\x1b[1B")
		for r := 0; r < total; r++ {
			os.Stdout.WriteString("\r\x1b[2K")
			if r < rows {
				for c := 0; c < cols || c == 0; c++ {
					i := r + c*rows
					if i >= len(cands) {
						break
					}
					s := cands[i]
					if i != selected {
						os.Stdout.WriteString(ansiDim)
					}
					os.Stdout.WriteString(s)
					if i != selected {
						os.Stdout.WriteString(ansiReset)
					}
					if sp := colW - len(s); sp > 0 && c < cols-1 {
						os.Stdout.WriteString(strings.Repeat(" ", sp))
					}
				}
			}
			if r < total-1 {
				os.Stdout.WriteString("\x1b[1B")
			}
		}
		os.Stdout.WriteString(fmt.Sprintf("\x1b[%dA", total))
		return rows
	}

	// evalTrigger re-runs trigger detection against the current line and
	// cursor and opens, updates, or closes the popup accordingly.
	evalTrigger := func() {
		trig, ok := emotes.DetectTrigger(buf.String(), 0, buf.cursor)
		if !ok {
			clearOverlay()
			pop = nil
			return
		}
		cands := emotes.Suggest(trig.Query, store.Current())
		if len(cands) == 0 {
			clearOverlay()
			pop = nil
			return
		}
		prevRows := 0
		idx := 0
		if pop != nil {
			prevRows = pop.rows
			// Keep the selection when the candidate set still contains it.
			if pop.idx < len(pop.cands) {
				for i, c := range cands {
					if c == pop.cands[pop.idx] {
						idx = i
						break
					}
				}
			}
		}
		pop = &popup{trig: trig, cands: cands, idx: idx}
		pop.rows = drawOverlay(cands, idx, prevRows)
	}

	dismiss := func() {
		clearOverlay()
		pop = nil
	}

	cycle := func(delta int) {
		if pop == nil {
			return
		}
		pop.idx += delta
		if pop.idx < 0 {
			pop.idx = len(pop.cands) - 1
		}
		if pop.idx >= len(pop.cands) {
			pop.idx = 0
		}
		pop.rows = drawOverlay(pop.cands, pop.idx, pop.rows)
	}

	accept := func() {
		if pop == nil {
			return
		}
		chosen := pop.cands[pop.idx]
		trig := pop.trig
		dismiss()
		if err := emotes.Accept(chosen, trig, store.Current(), cdnBase, buf); err != nil {
			// Mapping moved underneath us; leave the line as typed.
			os.Stdout.WriteString("\a")
		}
		render()
	}

	submit := func() bool {
		line := buf.String()
		dismiss()
		os.Stdout.WriteString("\r\n")
		if strings.TrimSpace(line) != "" {
			if line == "exit" || line == "quit" {
				return false
			}
			if len(history) == 0 || history[len(history)-1] != line {
				history = append(history, line)
				if historyFile != nil {
					_, _ = historyFile.WriteString(line + "\n")
				}
			}
		}
		histIdx = -1
		buf.reset()
		render()
		return true
	}

	render()
	readKey := make([]byte, 3) // support ESC [ A sequences
	for {
		select {
		case <-refreshCh:
			// A refresh swapped the mapping; re-evaluate so an open popup
			// reflects the new table.
			evalTrigger()
			render()
			continue
		default:
		}

		n, err := tty.Read(readKey[:1])
		if err != nil || n == 0 {
			os.Stdout.WriteString("\r\n")
			return
		}
		switch b := readKey[0]; b {
		case 3: // Ctrl+C clears the line
			dismiss()
			os.Stdout.WriteString("\r\n")
			buf.reset()
			histIdx = -1
			render()
		case 4: // Ctrl+D
			dismiss()
			os.Stdout.WriteString("\r\n[exit]\r\n")
			return
		case '\r', '\n':
			if pop != nil {
				accept()
				continue
			}
			if !submit() {
				return
			}
		case 9: // TAB cycles the popup selection
			if pop == nil {
				evalTrigger()
				render()
				continue
			}
			cycle(1)
			render()
		case 127, 8: // backspace
			if buf.backspace() {
				evalTrigger()
				render()
			}
		case 27: // ESC sequence
			nn, _ := tty.Read(readKey[1:3])
			if nn < 2 || readKey[1] != '[' {
				// Bare ESC dismisses the popup.
				dismiss()
				render()
				continue
			}
			switch readKey[2] {
			case 'C': // right
				if buf.cursor < len(buf.runes) {
					buf.cursor++
					evalTrigger()
				}
			case 'D': // left
				if buf.cursor > 0 {
					buf.cursor--
					evalTrigger()
				}
			case 'A': // up: popup selection, else history prev
				if pop != nil {
					cycle(-1)
				} else if len(history) > 0 {
					if histIdx == -1 {
						histIdx = len(history)
					}
					if histIdx > 0 {
						histIdx--
					}
					buf.set(history[histIdx])
				}
			case 'B': // down: popup selection, else history next
				if pop != nil {
					cycle(1)
				} else if histIdx >= 0 {
					histIdx++
					if histIdx >= len(history) {
						histIdx = -1
						buf.reset()
					} else {
						buf.set(history[histIdx])
					}
				}
			case 'Z': // Shift+TAB
				cycle(-1)
			}
			render()
		default:
			if b >= 32 && b <= 126 {
				buf.insertRune(rune(b))
				evalTrigger()
				render()
			}
		}
	}
}

func loadHistory(path string) []string {
	var history []string
	b, err := os.ReadFile(path)
	if err != nil {
		return history
	}
	for _, ln := range strings.Split(string(b), "\n") {
		ln = strings.TrimRight(ln, "\r")
		if strings.TrimSpace(ln) == "" {
			continue
		}
		history = append(history, ln)
	}
	return history
}
