package paste

import (
	"context"
	"log/slog"

	"pastery/internal/config"
	"pastery/internal/snippet"
)

// Prepare builds the request for the given editor state. It does no I/O.
func Prepare(selections []string, fullText, title string, cfg config.Config) (snippet.Request, error) {
	content, err := snippet.Extract(selections, fullText)
	if err != nil {
		return snippet.Request{}, err
	}
	return snippet.Request{
		Title:           title,
		Content:         content,
		APIKey:          cfg.APIKey,
		DurationMinutes: cfg.Duration,
	}, nil
}

// Command is one paste invocation against a host.
type Command struct {
	host      Host
	cfg       config.Config
	submitter *Submitter
	log       *slog.Logger
}

func NewCommand(host Host, cfg config.Config, submitter *Submitter, log *slog.Logger) *Command {
	if log == nil {
		log = slog.Default()
	}
	return &Command{host: host, cfg: cfg, submitter: submitter, log: log}
}

// Run takes the invocation to a terminal state. Every path shows exactly one
// closing notice on the host.
func (c *Command) Run(ctx context.Context) Outcome {
	c.enter(TitlePrompt)
	fallback := snippet.DefaultTitle(c.host.FilePath())
	edited := false
	input, ok := c.host.Prompt(PromptLabel, fallback, func(string) {
		if !edited {
			edited = true
			c.host.Notice(MsgEditing)
		}
	})
	if !ok {
		c.host.Notice(MsgCancelled)
		return c.finish(Outcome{State: Aborted})
	}
	title := snippet.ResolveTitle(input, fallback)

	req, err := Prepare(c.host.Selections(), c.host.FullText(), title, c.cfg)
	if err != nil {
		c.host.Notice(MsgNothingToPaste)
		return c.finish(Outcome{State: Aborted, Err: err})
	}
	c.enter(ContentGathered, "title", title, "bytes", len(req.Content))

	res := c.submitter.Submit(ctx, req)
	if !res.OK() {
		c.host.Notice(MsgError)
		return c.finish(Outcome{State: Failed, Err: res.Err})
	}

	if err := c.host.SetClipboard(res.URL); err != nil {
		c.log.Warn("clipboard write failed", "error", err)
	}
	c.host.Notice(MsgPastedPrefix + res.URL)
	return c.finish(Outcome{State: Success, URL: res.URL})
}

func (c *Command) enter(s State, args ...any) {
	c.log.Debug("state", append([]any{"state", s}, args...)...)
}

func (c *Command) finish(o Outcome) Outcome {
	if o.Err != nil {
		c.log.Debug("state", "state", o.State, "error", o.Err)
	} else {
		c.log.Debug("state", "state", o.State, "url", o.URL)
	}
	return o
}
