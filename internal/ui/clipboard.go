package ui

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

func copyClipboard(s string) error {
	if !clipboard.Unsupported {
		if err := clipboard.WriteAll(s); err == nil {
			return nil
		}
	}
	// fallbacks for Wayland/X11
	if runtime.GOOS == "linux" {
		if err := pipeTo(s, "wl-copy"); err == nil {
			return nil
		}
		if err := pipeTo(s, "xclip", "-selection", "clipboard"); err == nil {
			return nil
		}
	}
	return errors.New("clipboard unavailable")
}

func pipeTo(s, name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return err
	}
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(s)
	return cmd.Run()
}

// copyOSC52 asks the terminal emulator to set the clipboard. Works over SSH
// where no system clipboard is reachable.
func copyOSC52(w io.Writer, s string) error {
	seq := osc52.New(s)
	if os.Getenv("TMUX") != "" {
		seq = seq.Tmux()
	}
	_, err := seq.WriteTo(w)
	return err
}
