// Resolves logical element ids against a live view.
// Each id maps to an ordered list of locator alternatives; the first one
// that resolves wins. Adapting the module to DOM changes on the target
// site means editing the selector table, not this code.

package locator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-catch-automation/internal/view"
)

// ErrNotFound means every alternative for a logical id timed out.
// Callers must treat this as "feature unavailable in this view", not a crash.
var ErrNotFound = errors.New("locator: no alternative resolved")

// Alternative is one (strategy, expression) pair for a logical id
type Alternative struct {
	Kind       view.Kind
	Expression string
}

// Spec maps logical ids to their alternatives, in resolution priority order
type Spec map[string][]Alternative

// Mode controls what counts as resolved
type Mode int

const (
	// Presence requires only that the element exists
	Presence Mode = iota
	// Clickable additionally requires visible and enabled
	Clickable
)

const defaultPoll = 100 * time.Millisecond

type Resolver struct {
	spec Spec
	poll time.Duration
}

func NewResolver(spec Spec) *Resolver {
	return &Resolver{spec: spec, poll: defaultPoll}
}

// Has reports whether the spec knows the logical id
func (r *Resolver) Has(id string) bool {
	return len(r.spec[id]) > 0
}

// Resolve tries each alternative for id in configured order, giving each
// one up to timeout to appear. A timeout <= 0 means a single immediate
// attempt per alternative. Returns the first success; ErrNotFound after
// every alternative has individually timed out.
func (r *Resolver) Resolve(ctx context.Context, v view.View, id string, mode Mode, timeout time.Duration) (view.Element, error) {
	return r.resolve(ctx, v, id, mode, timeout, nil)
}

// ResolveArgs is Resolve with fmt args applied to each expression,
// for templated alternatives like a numbered pagination button.
func (r *Resolver) ResolveArgs(ctx context.Context, v view.View, id string, mode Mode, timeout time.Duration, args ...any) (view.Element, error) {
	return r.resolve(ctx, v, id, mode, timeout, args)
}

// ResolveAll returns every match of the first alternative that yields at
// least one element. No waiting: list extraction always runs against a
// view the caller has already confirmed as loaded.
func (r *Resolver) ResolveAll(v view.View, id string) ([]view.Element, error) {
	alts, ok := r.spec[id]
	if !ok {
		return nil, fmt.Errorf("locator: unknown id %q: %w", id, ErrNotFound)
	}
	for _, alt := range alts {
		els, err := v.QueryAll(alt.Kind, alt.Expression)
		if err != nil {
			continue
		}
		if len(els) > 0 {
			return els, nil
		}
	}
	return nil, nil
}

func (r *Resolver) resolve(ctx context.Context, v view.View, id string, mode Mode, timeout time.Duration, args []any) (view.Element, error) {
	alts, ok := r.spec[id]
	if !ok || len(alts) == 0 {
		return nil, fmt.Errorf("locator: unknown id %q: %w", id, ErrNotFound)
	}

	for _, alt := range alts {
		expr := alt.Expression
		if len(args) > 0 {
			expr = fmt.Sprintf(alt.Expression, args...)
		}
		el, err := r.tryOne(ctx, v, alt.Kind, expr, mode, timeout)
		if err == nil {
			return el, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	return nil, fmt.Errorf("locator: id %q: %w", id, ErrNotFound)
}

// tryOne polls a single alternative until it resolves or its deadline passes
func (r *Resolver) tryOne(ctx context.Context, v view.View, kind view.Kind, expr string, mode Mode, timeout time.Duration) (view.Element, error) {
	deadline := time.Now().Add(timeout)
	for {
		el, err := v.Query(kind, expr)
		if err == nil && el != nil {
			if mode == Presence {
				return el, nil
			}
			if interactable(el) {
				return el, nil
			}
		}

		if timeout <= 0 || !time.Now().Before(deadline) {
			return nil, ErrNotFound
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.poll):
		}
	}
}

func interactable(el view.Element) bool {
	visible, err := el.Visible()
	if err != nil || !visible {
		return false
	}
	enabled, err := el.Enabled()
	return err == nil && enabled
}
