package lineedit

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newMultilineEditor(cols uint) (*Editor, *bytes.Buffer) {
	var out bytes.Buffer
	e := &Editor{
		buf:     make([]byte, 40),
		bufLen:  39,
		prompt:  "> ",
		plen:    2,
		cols:    cols,
		mlMode:  true,
		out:     &out,
		history: newHistory(DefaultHistoryMaxLen),
	}
	return e, &out
}

func TestRefreshMultiLine_MaxRowsGrowsAndNeverShrinks(t *testing.T) {
	e, _ := newMultilineEditor(10) // plen(2) + cols(10) window

	// Fill to 8 chars: plen+len == 10 fills the first row exactly, and
	// with the cursor at the end the wrap branch opens a second row.
	for i := 0; i < 8; i++ {
		err := e.editInsert('a')
		assert.NoError(t, err)
	}
	assert.Equal(t, uint(2), e.maxRows)

	// A 9th char pushes plen+len to 11: the text itself now needs two rows.
	e.editInsert('a')
	assert.Equal(t, uint(2), e.maxRows)

	// Deleting back down must not shrink the high-water mark.
	for i := 0; i < 7; i++ {
		e.editBackspace()
	}
	assert.Equal(t, uint(2), e.len)
	assert.Equal(t, uint(2), e.maxRows, "maxRows is a high-water mark, not a current-row count")
}

func TestRefreshMultiLine_EndOfRowWrapEmitsNewlineAndGrowsMaxRows(t *testing.T) {
	e, out := newMultilineEditor(10)

	// 8 chars with the cursor at the end: plen(2)+pos(8) == cols(10),
	// the exact boundary the wrap branch in refreshMultiLine checks for.
	for i := 0; i < 8; i++ {
		e.editInsert('b')
	}
	require := assert.New(t)
	require.Equal(uint(8), e.pos)
	require.Equal(uint(8), e.len)

	out.Reset()
	e.refreshLine()

	require.Contains(out.String(), "\n\r")
	require.Equal(uint(2), e.maxRows)
}

func TestRefreshMultiLine_NoWrapWhenNotAtEnd(t *testing.T) {
	e, out := newMultilineEditor(10)
	for i := 0; i < 8; i++ {
		e.editInsert('b')
	}
	e.editMoveLeft() // pos(7) != len(8): the wrap guard requires pos == len

	out.Reset()
	e.refreshLine()
	assert.NotContains(t, out.String(), "\n\r")
}

func TestRefreshMultiLine_RespectsPromptLength(t *testing.T) {
	e, _ := newMultilineEditor(10)
	e.prompt = "prompt> "
	e.plen = uint(len(e.prompt))

	for i := 0; i < 3; i++ {
		e.editInsert('c')
	}
	// plen(8) + len(3) == 11 > cols(10): already two rows with only 3 chars.
	assert.Equal(t, uint(2), e.maxRows)
}
