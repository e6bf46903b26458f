package emotes

import (
	"regexp"
)

// Position is a line/column coordinate into the host text buffer. Ch is a byte
// offset within the line, same convention as the editor range API.
type Position struct {
	Line int
	Ch   int
}

// Trigger describes an active completion context: the span [Start, End) that an
// accepted suggestion replaces and the delimiter-stripped query typed so far.
type Trigger struct {
	Start Position
	End   Position
	Query string
}

// A trigger is the longest suffix of the text left of the cursor that looks
// like ":word" with an optional single closing colon: the user may have typed
// the full ":name:" form already and still expects the popup.
var triggerRe = regexp.MustCompile(`:(\w+):?$`)

// DetectTrigger examines line up to cursorCh and reports whether a completion
// popup should open there. It is a pure function re-run on every keystroke and
// cursor move; no state is carried between calls. Only the given line is
// consulted, so a span can never cross lines.
func DetectTrigger(line string, lineNo, cursorCh int) (Trigger, bool) {
	if cursorCh < 0 {
		cursorCh = 0
	}
	if cursorCh > len(line) {
		cursorCh = len(line)
	}
	left := line[:cursorCh]
	m := triggerRe.FindStringSubmatch(left)
	if m == nil {
		return Trigger{}, false
	}
	start := cursorCh - len(m[0])
	if start < 0 {
		start = 0
	}
	return Trigger{
		Start: Position{Line: lineNo, Ch: start},
		End:   Position{Line: lineNo, Ch: cursorCh},
		Query: m[1],
	}, true
}
