// Pagination over a single-page application. Advancing never produces a
// page load, so the only reliable termination signal is observing that
// content did not change after an advance attempt. The controller
// therefore confirms every advance twice: a bounded wait-for-change
// poll, then a settle-interval recheck, before trusting a page as new.

package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"go-catch-automation/internal/locator"
	"go-catch-automation/internal/view"
)

// Session is the slice of the session facade the controller needs.
// The browser session stays owned by the facade; the controller only
// borrows it through these two calls.
type Session interface {
	CurrentView() view.View
	Activate(el view.Element) error
}

// Options tunes one collection run
type Options struct {
	// PageCap stops after that many pages; 0 means unbounded
	PageCap int
	// RowLimit bounds rows extracted per page; 0 means all
	RowLimit int
	// CompanyFilter keeps only rows whose company name contains the
	// filter, case-insensitive
	CompanyFilter string
}

// Timing bounds every wait in the controller; no wait is indefinite
type Timing struct {
	// ControlTimeout bounds resolving a pagination control
	ControlTimeout time.Duration
	// ChangeTimeout bounds the wait for content to change after an advance
	ChangeTimeout time.Duration
	// Settle is the pause before re-checking a reportedly changed view
	Settle time.Duration
	// Poll is the fingerprint re-check interval during the change wait
	Poll time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		ControlTimeout: 3 * time.Second,
		ChangeTimeout:  15 * time.Second,
		Settle:         time.Second,
		Poll:           300 * time.Millisecond,
	}
}

// Controller owns the extract -> advance -> confirm cycle and its
// termination policy. Safe for sequential reuse; all per-run state is
// local to Collect.
type Controller struct {
	res    *locator.Resolver
	ext    *Extractor
	timing Timing
}

func NewController(res *locator.Resolver, ext *Extractor, timing Timing) *Controller {
	if timing.Poll <= 0 {
		timing.Poll = DefaultTiming().Poll
	}
	return &Controller{res: res, ext: ext, timing: timing}
}

// Collect runs the pagination state machine over an already prepared
// view (authenticated, on the listing, filter applied). It always
// returns whatever was accumulated: a run that stops on timeout,
// unconfirmed change, or a session fault is a partial success, not an
// error.
func (c *Controller) Collect(ctx context.Context, sess Session, opts Options) CollectResult {
	res := CollectResult{Records: []ListingRecord{}}
	page := 1

	for {
		v := sess.CurrentView()

		records, skipped := c.ext.Page(ctx, v, page, opts.RowLimit)
		res.SkippedRows += skipped
		kept := filterByCompany(records, opts.CompanyFilter)
		res.Records = append(res.Records, kept...)
		res.PagesVisited = page
		log.Printf("📄 Page %d: %d rows extracted, %d kept", page, len(records), len(kept))

		if opts.PageCap > 0 && page >= opts.PageCap {
			res.Reason = TerminateCap
			return res
		}
		if err := ctx.Err(); err != nil {
			res.Reason = TerminateError
			res.Err = err
			return res
		}

		before := c.ext.FingerprintView(ctx, v)

		control, err := c.advanceControl(ctx, v, page+1)
		if err != nil {
			if errors.Is(err, locator.ErrNotFound) {
				res.Reason = TerminateNoMoreControls
				return res
			}
			res.Reason = TerminateError
			res.Err = err
			return res
		}

		if err := sess.Activate(control); err != nil {
			res.Reason = TerminateError
			res.Err = fmt.Errorf("activating page %d control: %w", page+1, err)
			return res
		}

		changed, err := c.awaitChange(ctx, sess, before)
		if err != nil {
			res.Reason = TerminateError
			res.Err = err
			return res
		}
		if !changed {
			log.Printf("⏳ No content change within %s, stopping at page %d", c.timing.ChangeTimeout, page)
			res.Reason = TerminateTimeout
			return res
		}

		// a transient flicker during re-render can fake a change; settle
		// and check once more before trusting the new page
		if err := sleepCtx(ctx, c.timing.Settle); err != nil {
			res.Reason = TerminateError
			res.Err = err
			return res
		}
		settled := c.ext.FingerprintView(ctx, sess.CurrentView())
		if settled.FirstTitle == before.FirstTitle {
			log.Printf("🛑 Content settled back unchanged, last page is %d", page)
			res.Reason = TerminateNoChange
			return res
		}

		page++
	}
}

// advanceControl finds the control that moves to nextPage: the dedicated
// next button when present, otherwise the numbered button for nextPage.
// Numbered fallback assumes sequential gapless numbering; a listing that
// only exposes an ellipsis/jump control terminates as not-found.
func (c *Controller) advanceControl(ctx context.Context, v view.View, nextPage int) (view.Element, error) {
	el, err := c.res.Resolve(ctx, v, IDNextPage, locator.Clickable, c.timing.ControlTimeout)
	if err == nil {
		return el, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return c.res.ResolveArgs(ctx, v, IDPageNumber, locator.Clickable, c.timing.ControlTimeout, nextPage)
}

// awaitChange polls the fingerprint until it differs from before or the
// change timeout passes. The deadline is re-checked every iteration.
func (c *Controller) awaitChange(ctx context.Context, sess Session, before Fingerprint) (bool, error) {
	deadline := time.Now().Add(c.timing.ChangeTimeout)
	for {
		cur := c.ext.FingerprintView(ctx, sess.CurrentView())
		if before.changed(cur) {
			return true, nil
		}
		if !time.Now().Before(deadline) {
			return false, nil
		}
		if err := sleepCtx(ctx, c.timing.Poll); err != nil {
			return false, err
		}
	}
}

func filterByCompany(records []ListingRecord, filter string) []ListingRecord {
	if filter == "" {
		return records
	}
	needle := strings.ToLower(filter)
	kept := make([]ListingRecord, 0, len(records))
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Company), needle) {
			kept = append(kept, rec)
		}
	}
	return kept
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
