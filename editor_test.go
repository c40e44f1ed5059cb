package lineedit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run drives one editing session over in, returning the submitted text
// and the raw int edit() returned (so callers can tell abort/EOF apart
// from an empty submission when they need to).
func run(t *testing.T, e *Editor, in string, prompt string) (string, int) {
	t.Helper()
	if e == nil {
		e = New()
	}
	var out bytes.Buffer
	buf := make([]byte, e.lineLength)
	n := e.edit(strings.NewReader(in), &out, buf, prompt)
	if n <= 0 {
		return "", n
	}
	return string(e.buf[:e.len]), n
}

func TestReadline_SimpleSubmit(t *testing.T) {
	line, n := run(t, New(), "hi\r", "> ")
	assert.Equal(t, 2, n)
	assert.Equal(t, "hi", line)
}

func TestReadline_MoveHomeInsert(t *testing.T) {
	// abc, Ctrl-A, x, Enter -> "xabc"
	in := "abc" + string(byte(CtrlA)) + "x" + string(byte(Enter))
	line, _ := run(t, New(), in, "> ")
	assert.Equal(t, "xabc", line)
}

func TestReadline_SwapChars(t *testing.T) {
	// abc, Ctrl-B, Ctrl-T, Enter -> "acb"
	in := "abc" + string(byte(CtrlB)) + string(byte(CtrlT)) + string(byte(Enter))
	line, _ := run(t, New(), in, "> ")
	assert.Equal(t, "acb", line)
}

func TestReadline_SwapThenInsertAppendsAtEnd(t *testing.T) {
	// abc, Ctrl-B, Ctrl-T, x, Enter -> "acbx": the swap always advances
	// pos to len, so the following insert lands at the end, not before
	// the swapped-in character.
	in := "abc" + string(byte(CtrlB)) + string(byte(CtrlT)) + "x" + string(byte(Enter))
	line, _ := run(t, New(), in, "> ")
	assert.Equal(t, "acbx", line)
}

func TestReadline_HistoryUpUp(t *testing.T) {
	e := New()
	e.AddHistory("foo")
	e.AddHistory("bar")

	up := "\x1b[A"
	in := up + up + string(byte(Enter))
	line, _ := run(t, e, in, "> ")
	assert.Equal(t, "foo", line)

	// Structurally unchanged: the real entries survive, in order.
	assert.Equal(t, 2, e.history.Len())
	l0, _ := e.history.at(1)
	l1, _ := e.history.at(0)
	assert.Equal(t, "foo", l0)
	assert.Equal(t, "bar", l1)
}

func TestReadline_DeletePrevWord(t *testing.T) {
	in := "hello" + string(byte(CtrlW)) + string(byte(Enter))
	line, _ := run(t, New(), in, "> ")
	assert.Equal(t, "", line)
}

func TestReadline_Completion(t *testing.T) {
	e := New()
	e.SetCompletionCallback(func(line string, c *Completion) {
		if line == "h" {
			c.Add("help")
			c.Add("host")
		}
	})

	in := "h" + string(byte(TAB)) + string(byte(TAB)) + string(byte(Enter))
	line, _ := run(t, e, in, "> ")
	assert.Equal(t, "host", line)
}

func TestReadline_CtrlCAborts(t *testing.T) {
	_, n := run(t, New(), string(byte(CtrlC)), "> ")
	assert.Equal(t, -1, n)
}

func TestReadline_CtrlDOnEmptyIsEOF(t *testing.T) {
	_, n := run(t, New(), string(byte(CtrlD)), "> ")
	assert.Equal(t, -1, n)
}

func TestReadline_CtrlDOnNonEmptyDeletes(t *testing.T) {
	// "ab", Ctrl-B (cursor before 'b'), Ctrl-D deletes 'b' -> "a", Enter
	in := "ab" + string(byte(CtrlB)) + string(byte(CtrlD)) + string(byte(Enter))
	line, _ := run(t, New(), in, "> ")
	assert.Equal(t, "a", line)
}

func TestReadline_InputClosedReturnsLen(t *testing.T) {
	// No Enter: the reader runs dry mid-line.
	e := New()
	var out bytes.Buffer
	buf := make([]byte, DefaultLineLength)
	n := e.edit(strings.NewReader("ab"), &out, buf, "> ")
	require.Equal(t, 2, n)
	assert.Equal(t, "ab", string(e.buf[:e.len]))
}

func TestReadline_EscapeFollowedByEOFIsNoop(t *testing.T) {
	// "a" then a bare ESC with nothing after it: the escape sequence
	// aborts silently and the buffer is left with just "a".
	e := New()
	var out bytes.Buffer
	buf := make([]byte, DefaultLineLength)
	n := e.edit(strings.NewReader("a\x1b"), &out, buf, "> ")
	assert.Equal(t, 1, n)
	assert.Equal(t, "a", string(e.buf[:e.len]))
}

func TestNullTerminatorInvariantHolds(t *testing.T) {
	e := New()
	var out bytes.Buffer
	buf := make([]byte, DefaultLineLength)
	e.edit(strings.NewReader("hello"), &out, buf, "> ")
	assert.Equal(t, byte(0), e.buf[e.len])
	assert.LessOrEqual(t, e.pos, e.len)
	assert.Less(t, e.len, e.bufLen+1)
}
