package ui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"pastery/internal/paste"
	"pastery/internal/snippet"
)

type Options struct {
	// Title prefills the prompt, or is used as is when not interactive.
	Title       string
	Interactive bool
	Theme       string
	Stderr      io.Writer
	Log         *slog.Logger
}

// Terminal is a paste.Host for the command line: the document comes from a
// file or stdin, the prompt and notices go to the terminal.
type Terminal struct {
	doc  snippet.Document
	opts Options

	// status is non-nil while the prompt is open
	status *string

	clip        func(string) error
	programOpts []tea.ProgramOption
}

var _ paste.Host = (*Terminal)(nil)

func NewTerminal(doc snippet.Document, opts Options) *Terminal {
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	applyTheme(opts.Theme)
	return &Terminal{
		doc:         doc,
		opts:        opts,
		clip:        copyClipboard,
		programOpts: []tea.ProgramOption{tea.WithInputTTY(), tea.WithOutput(opts.Stderr)},
	}
}

// CanPrompt reports whether stderr is a terminal and keys can be read from
// the controlling terminal even when stdin carries the content.
func CanPrompt() bool {
	fd := os.Stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	f, err := os.Open("/dev/tty")
	if err != nil {
		return false
	}
	f.Close()
	return true
}

func (t *Terminal) Prompt(label, initial string, onChange func(string)) (string, bool) {
	if t.opts.Title != "" {
		initial = t.opts.Title
	}
	if !t.opts.Interactive {
		return initial, true
	}

	var status string
	t.status = &status
	defer func() { t.status = nil }()

	final, err := tea.NewProgram(newPromptModel(label, initial, onChange, t.status), t.programOpts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) || errors.Is(err, tea.ErrProgramKilled) {
			return "", false
		}
		t.opts.Log.Warn("title prompt unavailable, using default", "error", err)
		return initial, true
	}
	return final.(promptModel).confirmed()
}

func (t *Terminal) Selections() []string { return t.doc.Selected() }

func (t *Terminal) FullText() string { return t.doc.Text }

func (t *Terminal) FilePath() string { return t.doc.Path }

// SetClipboard tries the system clipboard, then OSC52 when stderr is a
// terminal.
func (t *Terminal) SetClipboard(text string) error {
	err := t.clip(text)
	if err == nil {
		return nil
	}
	if f, ok := t.opts.Stderr.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		t.opts.Log.Debug("system clipboard failed, using OSC52", "error", err)
		return copyOSC52(f, text)
	}
	return err
}

func (t *Terminal) Notice(msg string) {
	if t.status != nil {
		*t.status = msg
		return
	}
	style := statusStyle
	switch {
	case strings.HasPrefix(msg, paste.MsgPastedPrefix):
		style = successStyle
	case msg == paste.MsgError:
		style = errorStyle
	}
	fmt.Fprintln(t.opts.Stderr, style.Render(msg))
}
