package lineedit

import "fmt"

// appendBuffer batches a refresh into one terminal write to avoid
// flicker, mirroring the source's abuf. Go's allocator makes a failed
// append unobservable in practice, so unlike the C original there's no
// "skip this refresh" fallback to wire in.
type appendBuffer struct {
	buf []byte
}

func (a *appendBuffer) appendString(s string) {
	a.buf = append(a.buf, s...)
}

func (a *appendBuffer) appendBytes(p []byte) {
	a.buf = append(a.buf, p...)
}

// refreshLine redraws the real edit state in the mode currently
// configured (single- or multi-line).
func (e *Editor) refreshLine() {
	e.refreshWithView(e.buf[:e.len], e.pos, e.len)
}

// refreshWithView redraws an arbitrary (buf, pos, len) view using the
// editor's live prompt/cols/maxRows/oldPos bookkeeping. The completion
// loop uses this to show a ghost candidate without mutating the real
// buffer: the source achieves the same effect by swapping a raw buffer
// pointer in place and restoring it afterward, which Go's owned,
// bounds-checked slices don't allow into a fixed-capacity buffer.
func (e *Editor) refreshWithView(buf []byte, pos, length uint) {
	if e.mlMode {
		e.refreshMultiLine(buf, pos, length)
	} else {
		e.refreshSingleLine(buf, pos, length)
	}
}

// refreshSingleLine redraws the visible window of buf on one row,
// scrolling the window horizontally so plen+pos always fits within
// cols.
func (e *Editor) refreshSingleLine(buf []byte, pos, length uint) {
	plen := int(e.plen)
	cols := int(e.cols)
	ipos := int(pos)
	ilen := int(length)

	start := 0
	for plen+ipos >= cols {
		start++
		ilen--
		ipos--
	}
	for plen+ilen > cols {
		ilen--
	}

	var ab appendBuffer
	ab.appendString("\x1b[2K\r")
	ab.appendString(e.prompt)
	ab.appendBytes(buf[start : start+ilen])
	ab.appendString(fmt.Sprintf("\r\x1b[%dC", ipos+plen))

	e.writeAll(ab.buf)
}

// refreshMultiLine redraws buf across as many rows as it needs,
// tracking the high-water mark of rows used so it knows how many lines
// to clear on the next redraw.
func (e *Editor) refreshMultiLine(buf []byte, pos, length uint) {
	plen := int(e.plen)
	cols := int(e.cols)
	ipos := int(pos)
	ilen := int(length)

	rows := (plen + ilen + cols - 1) / cols
	rpos := (plen + int(e.oldPos) + cols) / cols
	oldRows := int(e.maxRows)
	if rows > oldRows {
		e.maxRows = uint(rows)
	}

	var ab appendBuffer

	if oldRows-rpos > 0 {
		ab.appendString(fmt.Sprintf("\x1b[%dB", oldRows-rpos))
	}
	for j := 0; j < oldRows-1; j++ {
		ab.appendString("\r\x1b[0K\x1b[1A")
	}
	ab.appendString("\r\x1b[0K")
	ab.appendString(e.prompt)
	ab.appendBytes(buf[:ilen])

	if ipos > 0 && ipos == ilen && (ipos+plen)%cols == 0 {
		ab.appendString("\n\r")
		rows++
		if rows > int(e.maxRows) {
			e.maxRows = uint(rows)
		}
	}

	rpos2 := (plen + ipos + cols) / cols
	if rows-rpos2 > 0 {
		ab.appendString(fmt.Sprintf("\x1b[%dA", rows-rpos2))
	}

	col := (plen + ipos) % cols
	if col > 0 {
		ab.appendString(fmt.Sprintf("\r\x1b[%dC", col))
	} else {
		ab.appendString("\r")
	}

	e.oldPos = uint(ipos)
	e.writeAll(ab.buf)
}

func (e *Editor) writeAll(p []byte) {
	// Write failures are tolerated: the display may lag for one
	// keystroke and self-heals on the next refresh.
	_, _ = e.out.Write(p)
}

func (e *Editor) beep() {
	_, _ = e.out.Write([]byte("\a"))
}
