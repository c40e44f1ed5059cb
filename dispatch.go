package lineedit

import (
	"bufio"
	"io"
)

// Key codes recognized by the dispatch loop. Ctrl-R is reserved (spec.md
// §9): the constant exists so the reservation is documented, but no case
// dispatches on it, so it falls through to the default branch like any
// other unlisted byte and is inserted literally.
const (
	CtrlA     = 1
	CtrlB     = 2
	CtrlC     = 3
	CtrlD     = 4
	CtrlE     = 5
	CtrlF     = 6
	CtrlH     = 8
	TAB       = 9
	CtrlK     = 11
	CtrlL     = 12
	Enter     = 13
	CtrlN     = 14
	CtrlP     = 16
	CtrlR     = 18
	CtrlT     = 20
	CtrlU     = 21
	CtrlW     = 23
	ESC       = 27
	Backspace = 127
)

// historyPrev/historyNext are the deltas historyMove expects: moving to
// an older entry advances the offset from the newest, moving to a newer
// one retreats it.
const (
	historyPrev = 1
	historyNext = -1
)

// edit runs one editing session over in/out, reading one byte at a time
// until the user submits (Enter), aborts (Ctrl-C), signals EOF (Ctrl-D
// on an empty line), or the input stream closes. It returns the content
// length, or a negative sentinel for abort/EOF — the same contract the
// original linenoiseEdit exposes (spec.md §6).
func (e *Editor) edit(in io.Reader, out io.Writer, buf []byte, prompt string) int {
	e.in = in
	e.out = out
	e.buf = buf
	e.bufLen = uint(len(buf)) - 1
	e.prompt = prompt
	e.plen = uint(len(prompt))
	e.oldPos = 0
	e.pos = 0
	e.len = 0
	e.cols = e.getColumns()
	e.maxRows = 0
	e.historyIndex = 0

	e.buf[0] = 0
	e.history.Add("")

	if _, err := e.out.Write([]byte(prompt)); err != nil {
		return -1
	}

	r := bufio.NewReader(e.in)
	for {
		c, err := r.ReadByte()
		if err != nil {
			return int(e.len)
		}

		if c == TAB && e.completion != nil {
			next, reprocess, eof := e.completeLine(r)
			if eof {
				return -1
			}
			if !reprocess {
				continue
			}
			c = next
		}

		switch c {
		case Enter:
			e.history.popNewest()
			if e.mlMode {
				e.editMoveEnd()
			}
			return int(e.len)

		case CtrlC:
			return -1

		case CtrlD:
			if e.len > 0 {
				e.editDelete()
			} else {
				e.history.popNewest()
				return -1
			}

		case Backspace, CtrlH:
			e.editBackspace()

		case CtrlT:
			e.editSwap()

		case CtrlB:
			e.editMoveLeft()

		case CtrlF:
			e.editMoveRight()

		case CtrlP:
			e.historyMove(historyPrev)

		case CtrlN:
			e.historyMove(historyNext)

		case ESC:
			e.editEscape(r)

		case CtrlU:
			e.editKillLine()

		case CtrlK:
			e.editKillToEnd()

		case CtrlA:
			e.editMoveHome()

		case CtrlE:
			e.editMoveEnd()

		case CtrlL:
			e.ClearScreen()
			e.refreshLine()

		case CtrlW:
			e.editDeletePrevWord()

		default:
			if err := e.editInsert(c); err != nil {
				return -1
			}
		}
	}
}

// editEscape decodes an `ESC [ ...` or `ESC O ...` sequence into a
// logical key. A read failure on either follow-up byte aborts the
// sequence silently, leaving state unchanged — subsequent bytes are
// dispatched normally.
func (e *Editor) editEscape(r *bufio.Reader) {
	seq0, err := r.ReadByte()
	if err != nil {
		return
	}
	seq1, err := r.ReadByte()
	if err != nil {
		return
	}

	switch seq0 {
	case '[':
		if seq1 >= '0' && seq1 <= '9' {
			seq2, err := r.ReadByte()
			if err != nil {
				return
			}
			if seq2 == '~' && seq1 == '3' {
				e.editDelete()
			}
			return
		}
		switch seq1 {
		case 'A':
			e.historyMove(historyPrev)
		case 'B':
			e.historyMove(historyNext)
		case 'C':
			e.editMoveRight()
		case 'D':
			e.editMoveLeft()
		case 'H':
			e.editMoveHome()
		case 'F':
			e.editMoveEnd()
		}

	case 'O':
		switch seq1 {
		case 'H':
			e.editMoveHome()
		case 'F':
			e.editMoveEnd()
		}
	}
}
