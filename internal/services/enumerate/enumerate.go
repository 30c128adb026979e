// Package enumerate walks a scrollable, virtualized list window by
// window. The scroll position is a shared cursor on the live view, so
// a single enumeration owns it for the duration of the walk and puts
// it back at the top on exit unless the caller will resume from the
// same place; two enumerations must never interleave on one view.
package enumerate

import (
	"context"

	"go.uber.org/zap"

	"github.com/hptabster/EWM-qa-demo/internal/domain"
)

const (
	defaultLimit     = 5
	defaultPageLimit = 50
)

// Extract returns the record rendered at the 1-based index of the
// current window, or nil past the last rendered row. A nil record with
// a nil error is how the view signals "nothing (more) here yet".
type Extract func(ctx context.Context, idx int) (domain.Record, error)

// ScrollControl moves the scroll cursor of the enumerated view.
type ScrollControl interface {
	ByPage(ctx context.Context, pages int) error
	ToTop(ctx context.Context) error
}

// Options bound one enumeration.
type Options struct {
	// Limit caps the number of accumulated records. Zero means the
	// default of 5.
	Limit int
	// PageLimit caps page advances so a feed that re-renders identical
	// content cannot loop the walk forever. Zero means the default.
	PageLimit int
	// ContinueFromPosition starts from the current scroll position and
	// leaves the cursor where the walk ends, for callers that resume
	// the same walk on a later poll. The default resets to top on both
	// entry and exit.
	ContinueFromPosition bool
}

// Enumerator collects the currently visible records of one view.
type Enumerator struct {
	scroll ScrollControl
	l      *zap.Logger
}

// New creates an Enumerator over the view scrolled by scroll.
func New(scroll ScrollControl, l *zap.Logger) *Enumerator {
	return &Enumerator{scroll: scroll, l: l}
}

// Enumerate accumulates records window by window, deduplicating by
// identifier, until no window adds a new record, the limit is reached
// or the page budget runs out. A short or empty snapshot is not an
// error; the partial set is returned and its sufficiency left to the
// caller.
func (e *Enumerator) Enumerate(ctx context.Context, extract Extract, opts Options) ([]domain.Record, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	pageLimit := opts.PageLimit
	if pageLimit <= 0 {
		pageLimit = defaultPageLimit
	}

	if !opts.ContinueFromPosition {
		if err := e.scroll.ToTop(ctx); err != nil {
			return nil, err
		}
	}

	var all []domain.Record
	seen := make(map[string]bool)

	numPages := 1
	more := true
	for more {
		more = false
		for idx := 1; ; idx++ {
			rec, err := extract(ctx, idx)
			if err != nil {
				return nil, err
			}
			if rec == nil {
				break
			}
			if !seen[rec.ID()] {
				seen[rec.ID()] = true
				all = append(all, rec)
				more = true
			}
			if len(all) >= limit {
				more = false
				break
			}
		}

		if more && numPages < pageLimit {
			if err := e.scroll.ByPage(ctx, 1); err != nil {
				return nil, err
			}
			numPages++
		} else {
			more = false
		}
	}

	if !opts.ContinueFromPosition {
		if err := e.scroll.ToTop(ctx); err != nil {
			return nil, err
		}
	}

	return all, nil
}

// FindIndex walks the list looking for the record with the given
// identifier and returns its 1-based index within the window that
// renders it, usable to address the row directly. It returns 0 when
// the identifier is nowhere in the list. A window whose last
// identifier matches the previous window's is a non-advancing scroll
// and stops the walk.
func (e *Enumerator) FindIndex(ctx context.Context, extract Extract, id string, pageLimit int) (int, error) {
	if pageLimit <= 0 {
		pageLimit = defaultPageLimit
	}

	if err := e.scroll.ToTop(ctx); err != nil {
		return 0, err
	}

	lastID := ""
	for page := 1; page <= pageLimit; page++ {
		found, windowLast, count, err := e.scanWindow(ctx, extract, id)
		if err != nil {
			return 0, err
		}
		if found > 0 {
			return found, nil
		}
		if count == 0 || windowLast == lastID {
			break
		}
		lastID = windowLast

		if err := e.scroll.ByPage(ctx, 1); err != nil {
			return 0, err
		}
	}

	if err := e.scroll.ToTop(ctx); err != nil {
		return 0, err
	}

	e.l.Debug("record not found in list", zap.String("tradeId", id))
	return 0, nil
}

func (e *Enumerator) scanWindow(ctx context.Context, extract Extract, id string) (found int, lastID string, count int, err error) {
	for idx := 1; ; idx++ {
		rec, err := extract(ctx, idx)
		if err != nil {
			return 0, "", 0, err
		}
		if rec == nil {
			return 0, lastID, count, nil
		}
		count++
		lastID = rec.ID()
		if rec.ID() == id {
			return idx, lastID, count, nil
		}
	}
}
