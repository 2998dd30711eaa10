package paste

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pastery/internal/snippet"
	"pastery/internal/transport"
)

// ErrPasteFailed is returned when no attempt produced a URL.
var ErrPasteFailed = errors.New("paste failed")

// Submitter posts a request through its attempts in order, stopping at the
// first one that yields a URL.
type Submitter struct {
	endpoint string
	attempts []transport.Attempt
	log      *slog.Logger
}

func NewSubmitter(endpoint string, log *slog.Logger, attempts ...transport.Attempt) *Submitter {
	if log == nil {
		log = slog.Default()
	}
	return &Submitter{endpoint: endpoint, attempts: attempts, log: log}
}

func (s *Submitter) Submit(ctx context.Context, req snippet.Request) transport.Result {
	target, err := req.URL(s.endpoint)
	if err != nil {
		return transport.Fail(err)
	}
	body := req.Body()

	var errs []error
	for i, a := range s.attempts {
		s.log.Debug("posting", "state", attemptState(i), "transport", a.Name(), "url", transport.Redact(target))
		res := a.Post(ctx, target, body)
		if res.OK() {
			s.log.Debug("posted", "transport", a.Name(), "paste", res.URL)
			return res
		}
		if res.Err == nil {
			res.Err = transport.ErrNoURL
		}
		s.log.Debug("attempt failed", "transport", a.Name(), "error", res.Err)
		errs = append(errs, fmt.Errorf("%s: %w", a.Name(), res.Err))
	}
	if len(errs) == 0 {
		return transport.Fail(fmt.Errorf("%w: no transport configured", ErrPasteFailed))
	}
	return transport.Fail(fmt.Errorf("%w: %w", ErrPasteFailed, errors.Join(errs...)))
}

func attemptState(i int) State {
	if i == 0 {
		return SubmittingNative
	}
	return SubmittingFallback
}
