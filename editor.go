// Package lineedit is an interactive line editor for byte-oriented
// terminals in raw mode: it reads keystrokes one byte at a time,
// maintains an in-memory edit buffer with a visible cursor, redraws the
// line in place with ANSI escape sequences, and returns completed lines
// to the caller. It keeps a bounded history ring and supports
// tab-completion through a host-supplied callback.
package lineedit

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"syscall"
	"unsafe"

	"github.com/creack/termios/raw"
	"github.com/mattn/go-isatty"
)

// unsupportedTerms lists TERM values known not to support the fixed
// ANSI dialect this editor writes.
var unsupportedTerms = []string{"dumb", "cons25", "emacs"}

// Editor holds everything one line-editing session needs: the edit
// state from spec.md §3, the history ring, and any registered
// completion callback. The zero value is not usable — build one with
// New.
type Editor struct {
	in  io.Reader
	out io.Writer

	buf          []byte
	bufLen       uint
	prompt       string
	plen         uint
	pos          uint
	oldPos       uint
	len          uint
	cols         uint
	maxRows      uint
	historyIndex uint

	lineLength int
	mlMode     bool

	rawMode bool
	termios *raw.Termios

	history    *History
	completion CompletionCallback
}

// New constructs an Editor. Without options it uses single-line mode, a
// DefaultLineLength buffer, a DefaultHistoryMaxLen history ring, and
// os.Stdin/os.Stdout for the session's byte I/O.
func New(opts ...Option) *Editor {
	e := &Editor{
		lineLength: DefaultLineLength,
		history:    newHistory(DefaultHistoryMaxLen),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Readline displays prompt and reads one line from the terminal,
// returning the text the user submitted. On the raw-mode and WithIO
// paths a session that yields no text returns io.EOF and an empty
// string, whether it ended in an interrupt (Ctrl-C), an EOF (Ctrl-D on
// an empty line), Enter on an empty line, or the input stream closing
// before anything was typed — the original linenoise() wrapper
// collapses all of these into the same "no result" case
// (`if (*count <= 0) return NULL`), and this keeps that contract. The
// non-TTY and unsupported-terminal fallbacks return the line they read,
// possibly empty, with a nil error. ErrEmptyBuffer is returned when the
// configured line length is below 2.
func (e *Editor) Readline(prompt string) (string, error) {
	if e.lineLength < 2 {
		return "", ErrEmptyBuffer
	}

	in, out := e.in, e.out
	if in != nil && out != nil {
		// Pre-wired I/O (WithIO): the caller owns raw-mode semantics,
		// e.g. an SSH channel or a test harness. Skip TTY detection
		// and the termios dance entirely.
		buf := make([]byte, e.lineLength)
		count := e.edit(in, out, buf, prompt)
		if count <= 0 {
			return "", io.EOF
		}
		return string(e.buf[:e.len]), nil
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return e.noTTY(), nil
	}

	if isUnsupportedTerm() {
		log.Println("lineedit: unsupported terminal, falling back to line-buffered input")
		return e.dumbReadline(prompt), nil
	}

	buf := make([]byte, e.lineLength)
	count := e.raw(buf, prompt)
	if count <= 0 {
		return "", io.EOF
	}
	return string(e.buf[:e.len]), nil
}

func (e *Editor) noTTY() string {
	r := bufio.NewReader(os.Stdin)
	line, _ := r.ReadString('\n')
	return strings.TrimRight(line, "\r\n")
}

func (e *Editor) dumbReadline(prompt string) string {
	fmt.Fprint(os.Stdout, prompt)
	r := bufio.NewReader(os.Stdin)
	line, _ := r.ReadString('\n')
	return strings.TrimRight(line, "\r\n")
}

func (e *Editor) raw(buf []byte, prompt string) int {
	if len(buf) == 0 {
		return -1
	}
	if err := e.enableRawMode(os.Stdin.Fd()); err != nil {
		return -1
	}
	defer e.disableRawMode(os.Stdin.Fd())

	count := e.edit(os.Stdin, os.Stdout, buf, prompt)
	fmt.Println()
	return count
}

func (e *Editor) enableRawMode(fd uintptr) error {
	var err error
	if e.termios, err = raw.TcGetAttr(fd); err != nil {
		return err
	}
	if _, err = raw.MakeRaw(fd); err != nil {
		return err
	}
	e.rawMode = true
	return nil
}

func (e *Editor) disableRawMode(fd uintptr) {
	if !e.rawMode {
		return
	}
	raw.TcSetAttr(fd, e.termios)
	e.rawMode = false
}

// SetMultiline selects whether the editor redraws across multiple rows
// (true) or scrolls a single-row window (false, the default).
func (e *Editor) SetMultiline(enabled bool) {
	e.mlMode = enabled
}

// SetCompletionCallback registers the Tab-completion callback. A nil
// callback disables completion; Tab then inserts a literal tab byte.
func (e *Editor) SetCompletionCallback(cb CompletionCallback) {
	e.completion = cb
}

// AddHistory adds line to the history ring. It's the caller's
// responsibility to call this after Readline returns a line worth
// keeping — the editor itself only tracks a placeholder entry for
// up/down navigation during the session (spec.md §9 / SPEC_FULL.md §9).
func (e *Editor) AddHistory(line string) bool {
	return e.history.Add(line)
}

// SetHistoryMaxLen resizes the history ring, preserving the newest
// entries in order.
func (e *Editor) SetHistoryMaxLen(n int) error {
	return e.history.SetMaxLen(n)
}

// Close releases the raw-mode terminal state if a session left it
// engaged — e.g. after a panic unwinds past Readline. Safe to call even
// if no session is in progress.
func (e *Editor) Close() error {
	if e.rawMode {
		e.disableRawMode(os.Stdin.Fd())
	}
	return nil
}

// PrintKeyCodes is a debug helper: it loops reading bytes from stdin
// until the last four read spell "quit", printing nothing in between.
// It returns nil on "quit", or the read error if stdin fails first.
func (e *Editor) PrintKeyCodes() error {
	var quit [4]byte
	r := bufio.NewReader(os.Stdin)
	for {
		c, err := r.ReadByte()
		if err != nil {
			return err
		}
		copy(quit[:], quit[1:])
		quit[3] = c
		if quit == [4]byte{'q', 'u', 'i', 't'} {
			return nil
		}
	}
}

type winSize struct {
	row, col       uint16
	xpixel, ypixel uint16
}

// getColumns queries the terminal width, falling back to an
// out-of-band cursor-position probe when the session input is a
// terminal, and finally to 80 columns if neither works.
func (e *Editor) getColumns() uint {
	var ws winSize
	ok, _, _ := syscall.Syscall(syscall.SYS_IOCTL, uintptr(syscall.Stdout),
		syscall.TIOCGWINSZ, uintptr(unsafe.Pointer(&ws)))
	if int(ok) != -1 && ws.col != 0 {
		return uint(ws.col)
	}

	// The probe reads its reply from the session input; on any other
	// reader it would swallow the user's keystrokes.
	if f, isFile := e.in.(*os.File); !isFile || !isatty.IsTerminal(f.Fd()) {
		return 80
	}

	start := e.getCursorPosition()
	if start == -1 {
		return 80
	}
	if n, err := e.out.Write([]byte("\x1b[999C")); n != 6 || err != nil {
		return 80
	}
	cols := e.getCursorPosition()
	if cols == -1 {
		return 80
	}
	if cols > start {
		e.out.Write([]byte(fmt.Sprintf("\x1b[%dD", cols-start)))
	}
	return uint(cols)
}

func (e *Editor) getCursorPosition() int {
	if n, err := e.out.Write([]byte("\x1b[6n")); n != 4 || err != nil {
		return -1
	}

	buf := make([]byte, 32)
	i := 0
	for i < len(buf)-1 {
		if n, _ := e.in.Read(buf[i : i+1]); n != 1 {
			break
		}
		if buf[i] == 'R' {
			break
		}
		i++
	}

	if buf[0] != ESC || buf[1] != '[' {
		return -1
	}

	parts := strings.Split(string(buf[2:i]), ";")
	if len(parts) < 2 {
		return -1
	}
	cols, err := strconv.Atoi(parts[1])
	if err != nil {
		return -1
	}
	return cols
}

func isUnsupportedTerm() bool {
	term := os.Getenv("TERM")
	if term == "" {
		return true
	}
	for _, t := range unsupportedTerms {
		if term == t {
			return true
		}
	}
	return false
}
