package locator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-catch-automation/internal/view"
)

type stubElement struct {
	name    string
	visible bool
	enabled bool
}

func (e *stubElement) Query(view.Kind, string) (view.Element, error) {
	return nil, errors.New("no match")
}
func (e *stubElement) QueryAll(view.Kind, string) ([]view.Element, error) { return nil, nil }
func (e *stubElement) Text() (string, error)                              { return e.name, nil }
func (e *stubElement) Attribute(string) (string, error)                   { return "", nil }
func (e *stubElement) Click() error                                      { return nil }
func (e *stubElement) Fill(string) error                                  { return nil }
func (e *stubElement) Press(string) error                                 { return nil }
func (e *stubElement) Visible() (bool, error)                             { return e.visible, nil }
func (e *stubElement) Enabled() (bool, error)                             { return e.enabled, nil }

// stubView serves elements by expression; appearAfter delays matches to
// exercise the polling path
type stubView struct {
	elements    map[string][]view.Element
	appearAfter time.Time
}

func (v *stubView) Query(kind view.Kind, expr string) (view.Element, error) {
	els, err := v.QueryAll(kind, expr)
	if err != nil || len(els) == 0 {
		return nil, errors.New("no match")
	}
	return els[0], nil
}

func (v *stubView) QueryAll(kind view.Kind, expr string) ([]view.Element, error) {
	if time.Now().Before(v.appearAfter) {
		return nil, nil
	}
	return v.elements[expr], nil
}

func clickable(name string) *stubElement {
	return &stubElement{name: name, visible: true, enabled: true}
}

func TestResolveFirstAlternativeWins(t *testing.T) {
	spec := Spec{
		"login_button": {
			{Kind: view.XPath, Expression: "//a[text()='로그인']"},
			{Kind: view.CSS, Expression: ".btn-login"},
		},
	}
	v := &stubView{elements: map[string][]view.Element{
		"//a[text()='로그인']": {clickable("primary")},
		".btn-login":        {clickable("fallback")},
	}}

	el, err := NewResolver(spec).Resolve(context.Background(), v, "login_button", Presence, 0)
	assert.NoError(t, err)
	text, _ := el.Text()
	assert.Equal(t, "primary", text)
}

func TestResolveFallsBackInOrder(t *testing.T) {
	spec := Spec{
		"login_button": {
			{Kind: view.XPath, Expression: "//a[text()='로그인']"},
			{Kind: view.CSS, Expression: ".btn-login"},
		},
	}
	v := &stubView{elements: map[string][]view.Element{
		".btn-login": {clickable("fallback")},
	}}

	el, err := NewResolver(spec).Resolve(context.Background(), v, "login_button", Presence, 0)
	assert.NoError(t, err)
	text, _ := el.Text()
	assert.Equal(t, "fallback", text)
}

func TestResolveNotFound(t *testing.T) {
	spec := Spec{"missing": {{Kind: view.CSS, Expression: ".nope"}}}
	v := &stubView{elements: map[string][]view.Element{}}

	_, err := NewResolver(spec).Resolve(context.Background(), v, "missing", Presence, 0)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = NewResolver(spec).Resolve(context.Background(), v, "unknown_id", Presence, 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveWaitsForAppearance(t *testing.T) {
	spec := Spec{"row": {{Kind: view.CSS, Expression: "tr"}}}
	v := &stubView{
		elements:    map[string][]view.Element{"tr": {clickable("row")}},
		appearAfter: time.Now().Add(250 * time.Millisecond),
	}

	el, err := NewResolver(spec).Resolve(context.Background(), v, "row", Presence, time.Second)
	assert.NoError(t, err)
	assert.NotNil(t, el)
}

func TestResolveClickableRejectsHidden(t *testing.T) {
	spec := Spec{"btn": {{Kind: view.CSS, Expression: "button"}}}
	hidden := &stubElement{name: "btn", visible: false, enabled: true}
	v := &stubView{elements: map[string][]view.Element{"button": {hidden}}}

	res := NewResolver(spec)

	_, err := res.Resolve(context.Background(), v, "btn", Clickable, 0)
	assert.ErrorIs(t, err, ErrNotFound)

	// the same element satisfies presence
	_, err = res.Resolve(context.Background(), v, "btn", Presence, 0)
	assert.NoError(t, err)
}

func TestResolveArgsTemplating(t *testing.T) {
	spec := Spec{"page_number": {{Kind: view.XPath, Expression: "//a[text()='%d']"}}}
	v := &stubView{elements: map[string][]view.Element{
		"//a[text()='3']": {clickable("3")},
	}}

	el, err := NewResolver(spec).ResolveArgs(context.Background(), v, "page_number", Clickable, 0, 3)
	assert.NoError(t, err)
	text, _ := el.Text()
	assert.Equal(t, "3", text)

	_, err = NewResolver(spec).ResolveArgs(context.Background(), v, "page_number", Clickable, 0, 4)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveCancelledContext(t *testing.T) {
	spec := Spec{"row": {{Kind: view.CSS, Expression: "tr"}}}
	v := &stubView{
		elements:    map[string][]view.Element{"tr": {clickable("row")}},
		appearAfter: time.Now().Add(time.Hour),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewResolver(spec).Resolve(ctx, v, "row", Presence, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolveAllFirstNonEmptyAlternative(t *testing.T) {
	spec := Spec{
		"review_items": {
			{Kind: view.CSS, Expression: ".review"},
			{Kind: view.CSS, Expression: ".review-legacy"},
		},
	}
	v := &stubView{elements: map[string][]view.Element{
		".review-legacy": {clickable("a"), clickable("b")},
	}}

	els, err := NewResolver(spec).ResolveAll(v, "review_items")
	assert.NoError(t, err)
	assert.Len(t, els, 2)

	// nothing matching anywhere is an empty result, not an error
	els, err = NewResolver(spec).ResolveAll(&stubView{}, "review_items")
	assert.NoError(t, err)
	assert.Empty(t, els)
}
