// Command example is a minimal REPL exercising lineedit's full surface:
// history recording, tab completion, and a --multiline flag — the same
// role the source's example.c / shell.c played for the original port.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/embedshell/lineedit"
)

var commands = []string{"help", "history", "clear", "exit"}

func complete(line string, c *lineedit.Completion) {
	for _, cmd := range commands {
		if strings.HasPrefix(cmd, line) {
			c.Add(cmd)
		}
	}
}

func main() {
	multiline := flag.Bool("multiline", false, "redraw across multiple rows instead of scrolling one row")
	keycodes := flag.Bool("keycodes", false, "read key bytes without printing them until \"quit\" is typed, then exit")
	flag.Parse()

	ed := lineedit.New()
	defer ed.Close()

	if *keycodes {
		if err := ed.PrintKeyCodes(); err != nil && err != io.EOF {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	ed.SetMultiline(*multiline)
	ed.SetCompletionCallback(complete)

	for {
		line, err := ed.Readline("> ")
		if err == io.EOF {
			break
		}

		switch line {
		case "exit":
			return
		case "clear":
			ed.ClearScreen()
			continue
		}

		if line != "" {
			ed.AddHistory(line)
		}
		fmt.Println(line)
	}
}
