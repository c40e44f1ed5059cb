package lineedit

// editInsert inserts c at the cursor, shifting any suffix right. When
// the cursor is at the end of the line and the whole line still fits on
// one row in single-line mode, it writes c directly instead of
// triggering a full refresh.
func (e *Editor) editInsert(c byte) error {
	if e.len >= e.bufLen {
		return nil
	}

	if e.pos == e.len {
		e.buf[e.pos] = c
		e.pos++
		e.len++
		e.buf[e.len] = 0

		if !e.mlMode && e.plen+e.len < e.cols {
			if _, err := e.out.Write([]byte{c}); err != nil {
				return err
			}
			return nil
		}
		e.refreshLine()
		return nil
	}

	copy(e.buf[e.pos+1:e.len+1], e.buf[e.pos:e.len])
	e.buf[e.pos] = c
	e.len++
	e.pos++
	e.buf[e.len] = 0
	e.refreshLine()
	return nil
}

func (e *Editor) editMoveLeft() {
	if e.pos > 0 {
		e.pos--
		e.refreshLine()
	}
}

func (e *Editor) editMoveRight() {
	if e.pos != e.len {
		e.pos++
		e.refreshLine()
	}
}

func (e *Editor) editMoveHome() {
	if e.pos != 0 {
		e.pos = 0
		e.refreshLine()
	}
}

func (e *Editor) editMoveEnd() {
	if e.pos != e.len {
		e.pos = e.len
		e.refreshLine()
	}
}

// editDelete removes the character at the cursor (the "Delete" key).
func (e *Editor) editDelete() {
	if e.len > 0 && e.pos < e.len {
		copy(e.buf[e.pos:e.len-1], e.buf[e.pos+1:e.len])
		e.len--
		e.buf[e.len] = 0
		e.refreshLine()
	}
}

// editBackspace removes the character before the cursor.
func (e *Editor) editBackspace() {
	if e.pos > 0 && e.len > 0 {
		copy(e.buf[e.pos-1:e.len-1], e.buf[e.pos:e.len])
		e.pos--
		e.len--
		e.buf[e.len] = 0
		e.refreshLine()
	}
}

// editKillToEnd truncates the line at the cursor (Ctrl-K).
func (e *Editor) editKillToEnd() {
	e.buf[e.pos] = 0
	e.len = e.pos
	e.refreshLine()
}

// editKillLine clears the whole line (Ctrl-U).
func (e *Editor) editKillLine() {
	e.buf[0] = 0
	e.pos = 0
	e.len = 0
	e.refreshLine()
}

// editDeletePrevWord deletes back to the start of the previous word,
// skipping any trailing spaces first (Ctrl-W).
func (e *Editor) editDeletePrevWord() {
	oldPos := e.pos

	for e.pos > 0 && e.buf[e.pos-1] == ' ' {
		e.pos--
	}
	for e.pos > 0 && e.buf[e.pos-1] != ' ' {
		e.pos--
	}

	diff := oldPos - e.pos
	copy(e.buf[e.pos:e.len-diff+1], e.buf[oldPos:e.len+1])
	e.len -= diff
	e.refreshLine()
}

// editSwap transposes the character before the cursor with the one at
// it (Ctrl-T).
func (e *Editor) editSwap() {
	if e.pos > 0 && e.pos < e.len {
		e.buf[e.pos-1], e.buf[e.pos] = e.buf[e.pos], e.buf[e.pos-1]
		e.pos++
		e.refreshLine()
	}
}

// historyMove substitutes the edited line with an adjacent history
// entry. delta is +1 for history-prev, -1 for history-next. Clamping to
// the oldest/newest entry is a silent no-op (no redraw), matching
// spec.md §4.6.
func (e *Editor) historyMove(delta int) {
	if e.history.Len() < 2 {
		return
	}

	e.history.set(int(e.historyIndex), string(e.buf[:e.len]))

	newIndex := int(e.historyIndex) + delta
	if newIndex < 0 {
		e.historyIndex = 0
		return
	}
	if newIndex >= e.history.Len() {
		e.historyIndex = uint(e.history.Len() - 1)
		return
	}
	e.historyIndex = uint(newIndex)

	line, ok := e.history.at(int(e.historyIndex))
	if !ok {
		return
	}

	n := copy(e.buf[:e.bufLen], line)
	e.len = uint(n)
	e.buf[e.len] = 0
	e.pos = e.len
	e.refreshLine()
}

// ClearScreen emits the fixed ANSI home+clear sequence. Callers that
// want the line redrawn afterward (e.g. Ctrl-L) must call refreshLine
// themselves — ClearScreen alone only clears.
func (e *Editor) ClearScreen() {
	e.writeAll([]byte("\x1b[H\x1b[2J"))
}
