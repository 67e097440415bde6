package terminal

import (
	"strings"
	"unicode/utf8"
)

// maxHistory bounds the recalled submissions.
const maxHistory = 50

// Line is the editable input of the console plus the history of submitted lines.
type Line struct {
	text    string
	history []string
	recall  int // index into history while browsing; len(history) when not browsing
}

// Text returns the current input.
func (l *Line) Text() string {
	return l.text
}

// Insert appends r. Control characters are ignored.
func (l *Line) Insert(r rune) {
	if r < ' ' || r == utf8.RuneError {
		return
	}
	l.text += string(r)
}

// Paste appends s up to its first line break.
func (l *Line) Paste(s string) {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}
	for _, r := range s {
		l.Insert(r)
	}
}

// Backspace removes the last rune.
func (l *Line) Backspace() {
	_, size := utf8.DecodeLastRuneInString(l.text)
	l.text = l.text[:len(l.text)-size]
}

// Submit clears the input and returns it. Blank input is not submitted.
func (l *Line) Submit() (string, bool) {
	line := strings.TrimSpace(l.text)
	l.text = ""
	if line == "" {
		l.recall = len(l.history)
		return "", false
	}
	if n := len(l.history); n == 0 || l.history[n-1] != line {
		l.history = append(l.history, line)
		if len(l.history) > maxHistory {
			l.history = l.history[1:]
		}
	}
	l.recall = len(l.history)
	return line, true
}

// Prev replaces the input with the previous submission.
func (l *Line) Prev() {
	if l.recall == 0 {
		return
	}
	l.recall--
	l.text = l.history[l.recall]
}

// Next moves forward through the history; past the newest entry the input is cleared.
func (l *Line) Next() {
	if l.recall >= len(l.history) {
		return
	}
	l.recall++
	if l.recall == len(l.history) {
		l.text = ""
		return
	}
	l.text = l.history[l.recall]
}
