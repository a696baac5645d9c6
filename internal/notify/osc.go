package notify

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// SendDesktopNotification sends a desktop notification using OSC 777 escape sequences
// Format: \033]777;notify;<title>;<body>\007
// If running in tmux, wraps with tmux escape sequences:
// \033Ptmux;\033\033]777;notify;<title>;<body>\007\033\\
func SendDesktopNotification(title, body string) {
	escape := escapeSequence(title, body, os.Getenv("TMUX") != "")

	// Write to /dev/tty to ensure it reaches the terminal
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		// Fallback to stdout if /dev/tty not available
		write(os.Stdout, escape)
		return
	}
	defer tty.Close()

	write(tty, escape)
}

func write(w io.Writer, escape string) {
	_, _ = io.WriteString(w, escape)
}

func escapeSequence(title, body string, tmux bool) string {
	title, body = sanitize(title), sanitize(body)
	if tmux {
		// Tmux requires wrapping: \033Ptmux;\033<OSC_CODE>\033\\
		return fmt.Sprintf("\033Ptmux;\033\033]777;notify;%s;%s\007\033\\", title, body)
	}
	return fmt.Sprintf("\033]777;notify;%s;%s\007", title, body)
}

// sanitize drops characters that would end the OSC field or sequence early.
// Report paths and usernames end up in the body.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ';' || r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
