// Package verify ties the engine together: capture a baseline, fire
// the action under test, poll the view until a strictly newer record
// appears, and match it against the expectation. One Verifier runs one
// flow at a time; independent flows get independent Verifier and
// Session instances.
package verify

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/hptabster/EWM-qa-demo/config"
	"github.com/hptabster/EWM-qa-demo/internal/domain"
	"github.com/hptabster/EWM-qa-demo/internal/services/enumerate"
	"github.com/hptabster/EWM-qa-demo/internal/services/match"
	"github.com/hptabster/EWM-qa-demo/internal/services/parse"
	"github.com/hptabster/EWM-qa-demo/internal/services/poll"
	"github.com/hptabster/EWM-qa-demo/internal/session"
)

// ErrTimeout marks a wait whose poll budget elapsed before the view
// caught up. It wraps into descriptive errors naming the failed wait.
var ErrTimeout = errors.New("timed out")

// SnapshotProvider returns whatever text is currently rendered for a
// logical view. Empty or stale text is a transient condition, not an
// error.
type SnapshotProvider interface {
	RawText(ctx context.Context, view string) (string, error)
}

// ActionTrigger performs the action under test against the live system
// and reports what was actually submitted. The reported amount, not
// the original request, is the verification baseline, since the live
// system may clamp it.
type ActionTrigger interface {
	Perform(ctx context.Context) (domain.ActionResult, error)
}

// Verifier checks that actions produce the records they should.
type Verifier struct {
	poller *poll.Poller
	enum   *enumerate.Enumerator
	sess   *session.Session
	cfg    config.Config
	l      *zap.Logger
}

// New creates a Verifier over the view scrolled by scroll.
func New(sess *session.Session, scroll enumerate.ScrollControl, cfg config.Config) *Verifier {
	l := sess.Logger()

	pollOpts := []poll.Option{
		poll.WithTimeout(cfg.PollTimeout),
		poll.WithDelay(cfg.PollDelay),
	}
	if cfg.PollMaxDelay > cfg.PollDelay {
		pollOpts = append(pollOpts, poll.WithMaxDelay(cfg.PollMaxDelay))
	}

	return &Verifier{
		poller: poll.New(l, pollOpts...),
		enum:   enumerate.New(scroll, l),
		sess:   sess,
		cfg:    cfg,
		l:      l,
	}
}

// Enumerator exposes the windowed walker for callers that need the
// full visible record set.
func (v *Verifier) Enumerator() *enumerate.Enumerator {
	return v.enum
}

// Baseline reads the identifier of the newest visible record, the
// reference point for "new" in the wait that follows an action. An
// empty list yields the empty identifier, which orders below every
// real one.
func (v *Verifier) Baseline(ctx context.Context, extract enumerate.Extract) (string, error) {
	rec, err := extract(ctx, 1)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", nil
	}
	return rec.ID(), nil
}

// WaitForNewRecord polls the newest visible record until its
// identifier orders strictly greater than baseline and returns it.
func (v *Verifier) WaitForNewRecord(ctx context.Context, extract enumerate.Extract, baseline string) (domain.Record, error) {
	var found domain.Record

	ok, err := v.poller.Until(ctx, "wait for record newer than "+baseline,
		func(ctx context.Context) (bool, error) {
			v.sess.Count("poll_attempts")
			rec, err := extract(ctx, 1)
			if err != nil {
				return false, err
			}
			if rec == nil {
				return false, nil
			}
			if domain.CompareTradeIDs(rec.ID(), baseline) > 0 {
				found = rec
				return true, nil
			}
			return false, nil
		})
	if err != nil {
		return nil, err
	}
	if !ok {
		v.sess.Count("poll_timeouts")
		return nil, errors.Wrapf(ErrTimeout, "no record newer than %q", baseline)
	}

	v.l.Debug("new record observed",
		zap.String("tradeId", found.ID()),
		zap.String("baseline", baseline))
	return found, nil
}

// WaitForNewerCreation polls a record source (typically the parsed
// blotter, which carries creation dates instead of ordered
// identifiers) until its newest record was created after baseline.
func (v *Verifier) WaitForNewerCreation(ctx context.Context, source func(ctx context.Context) ([]domain.Record, error), baseline time.Time) (domain.Record, error) {
	var found domain.Record

	ok, err := v.poller.Until(ctx, "wait for trade created after "+baseline.Format(time.RFC3339),
		func(ctx context.Context) (bool, error) {
			v.sess.Count("poll_attempts")
			records, err := source(ctx)
			if err != nil {
				return false, err
			}
			if len(records) == 0 {
				return false, nil
			}
			created, ok := creationOf(records[0])
			if !ok || !created.After(baseline) {
				return false, nil
			}
			found = records[0]
			return true, nil
		})
	if err != nil {
		return nil, err
	}
	if !ok {
		v.sess.Count("poll_timeouts")
		return nil, errors.Wrapf(ErrTimeout, "no trade created after %s", baseline.Format(time.RFC3339))
	}

	return found, nil
}

// WaitForRecordRemoved polls until the record with the given
// identifier is no longer anywhere in the list.
func (v *Verifier) WaitForRecordRemoved(ctx context.Context, extract enumerate.Extract, id string) error {
	ok, err := v.poller.Until(ctx, "wait for removal of "+id,
		func(ctx context.Context) (bool, error) {
			idx, err := v.enum.FindIndex(ctx, extract, id, v.cfg.PageLimit)
			if err != nil {
				return false, err
			}
			return idx == 0, nil
		})
	if err != nil {
		return err
	}
	if !ok {
		v.sess.Count("poll_timeouts")
		return errors.Wrapf(ErrTimeout, "record %q still present", id)
	}
	return nil
}

// VerifyAction runs one end-to-end check: capture the baseline
// identifier, perform the action, wait for the record it produced and
// match that record against exp. The matched record is returned for
// further assertions.
func (v *Verifier) VerifyAction(ctx context.Context, trigger ActionTrigger, extract enumerate.Extract, exp domain.Expectation, tol match.Tolerances) (domain.Record, error) {
	baseline, err := v.Baseline(ctx, extract)
	if err != nil {
		return nil, errors.Wrap(err, "failed to capture baseline")
	}

	result, err := trigger.Perform(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "action failed")
	}
	if !result.Amount.IsZero() {
		// the live system may have clamped the request
		exp.Amount = result.Amount
	}

	v.l.Info("action performed",
		zap.String("baseline", baseline),
		zap.String("reportedId", result.Identifier),
		zap.String("reportedAmount", result.Amount.String()))

	rec, err := v.WaitForNewRecord(ctx, extract, baseline)
	if err != nil {
		return nil, err
	}

	if err := match.Verify(rec, exp, tol); err != nil {
		return nil, err
	}

	v.sess.Count("actions_verified")
	return rec, nil
}

// BlotterSource adapts a snapshot provider into a record source for
// WaitForNewerCreation: raw blotter text in, newest-first records out.
func BlotterSource(p SnapshotProvider, view string, limit int) func(ctx context.Context) ([]domain.Record, error) {
	return func(ctx context.Context) ([]domain.Record, error) {
		text, err := p.RawText(ctx, view)
		if err != nil {
			return nil, err
		}
		return parse.ParseFlatTable(text, limit), nil
	}
}

func creationOf(rec domain.Record) (time.Time, bool) {
	raw, ok := rec.Get("creationDate")
	if !ok {
		return time.Time{}, false
	}
	t, err := parse.ParseCreationDate(raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
