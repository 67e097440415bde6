package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineEditing(t *testing.T) {
	var l Line
	for _, r := range "cmd gr\x07idé" {
		l.Insert(r)
	}
	assert.Equal(t, "cmd gridé", l.Text())

	l.Backspace()
	assert.Equal(t, "cmd grid", l.Text())

	l.Paste(" -visible=false\nignored")
	assert.Equal(t, "cmd grid -visible=false", l.Text())

	var empty Line
	empty.Backspace()
	assert.Equal(t, "", empty.Text())
}

func TestLineSubmit(t *testing.T) {
	var l Line
	l.Paste("  cmd help ")

	got, ok := l.Submit()
	assert.True(t, ok)
	assert.Equal(t, "cmd help", got)
	assert.Equal(t, "", l.Text())

	l.Paste("   ")
	_, ok = l.Submit()
	assert.False(t, ok)
}

func TestLineHistory(t *testing.T) {
	var l Line
	for _, s := range []string{"cmd a", "cmd b", "cmd b", "cmd c"} {
		l.Paste(s)
		l.Submit()
	}

	l.Prev()
	assert.Equal(t, "cmd c", l.Text())
	l.Prev()
	assert.Equal(t, "cmd b", l.Text(), "repeated submissions are stored once")
	l.Prev()
	assert.Equal(t, "cmd a", l.Text())
	l.Prev()
	assert.Equal(t, "cmd a", l.Text())

	l.Next()
	assert.Equal(t, "cmd b", l.Text())
	l.Next()
	l.Next()
	assert.Equal(t, "", l.Text())
	l.Next()
	assert.Equal(t, "", l.Text())
}

func TestLineHistoryBounded(t *testing.T) {
	var l Line
	for i := range maxHistory + 5 {
		l.Insert(rune('a' + i%26))
		l.Insert(rune('0' + i%10))
		l.Insert(rune('A' + i/26))
		l.Submit()
	}
	assert.Len(t, l.history, maxHistory)
}
