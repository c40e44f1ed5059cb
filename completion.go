package lineedit

import "bufio"

// CompletionCallback is invoked on Tab with the current buffer contents;
// it populates c with candidate completions via c.Add.
type CompletionCallback func(line string, c *Completion)

// Completion is the transient, ordered set of candidates a
// CompletionCallback builds during a single Tab cycle.
type Completion struct {
	candidates []string
}

// Add appends a candidate completion.
func (c *Completion) Add(s string) {
	c.candidates = append(c.candidates, s)
}

// completeLine runs the Tab-completion sub-loop described in spec.md
// §4.7. It returns:
//   - eof true when the input stream failed mid-cycle, telling the
//     caller to abort the session;
//   - reprocess true with next set to a byte the outer dispatch loop
//     should handle as if freshly read (a completion was committed, or
//     the cycle ended on some other key);
//   - reprocess false otherwise, telling the outer loop to just read the
//     next byte normally (empty candidate set, or an Escape cancel).
func (e *Editor) completeLine(r *bufio.Reader) (next byte, reprocess bool, eof bool) {
	var set Completion
	e.completion(string(e.buf[:e.len]), &set)

	n := uint(len(set.candidates))
	if n == 0 {
		e.beep()
		return 0, false, false
	}

	i := uint(0)
	for {
		if i < n {
			cand := set.candidates[i]
			e.refreshWithView([]byte(cand), uint(len(cand)), uint(len(cand)))
		} else {
			e.refreshLine()
		}

		c, err := r.ReadByte()
		if err != nil {
			return 0, false, true
		}

		switch c {
		case TAB:
			i = (i + 1) % (n + 1)
			if i == n {
				e.beep()
			}
		case ESC:
			if i < n {
				e.refreshLine()
			}
			return 0, false, false
		default:
			if i < n {
				e.commitCompletion(set.candidates[i])
			}
			return c, true, false
		}
	}
}

// commitCompletion copies a chosen candidate into the real edit buffer,
// bounded by the buffer's capacity, and places the cursor at its end.
func (e *Editor) commitCompletion(candidate string) {
	w := copy(e.buf[:e.bufLen], candidate)
	e.len = uint(w)
	e.buf[e.len] = 0
	e.pos = e.len
}
