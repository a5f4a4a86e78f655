package engine

import (
	"errors"
	"time"

	"go-catch-automation/internal/locator"
	"go-catch-automation/internal/view"
)

// fakeView is an in-memory element tree keyed by selector expression
type fakeView struct {
	children map[string][]*fakeElement
}

func (v *fakeView) Query(kind view.Kind, expr string) (view.Element, error) {
	els := v.children[expr]
	if len(els) == 0 {
		return nil, errors.New("no match")
	}
	return els[0], nil
}

func (v *fakeView) QueryAll(kind view.Kind, expr string) ([]view.Element, error) {
	els := v.children[expr]
	out := make([]view.Element, len(els))
	for i, el := range els {
		out[i] = el
	}
	return out, nil
}

type fakeElement struct {
	fakeView
	text    string
	textErr error
	attrs   map[string]string
	onClick func()
}

func (e *fakeElement) Text() (string, error) { return e.text, e.textErr }

func (e *fakeElement) Attribute(name string) (string, error) {
	return e.attrs[name], nil
}

func (e *fakeElement) Click() error {
	if e.onClick != nil {
		e.onClick()
	}
	return nil
}

func (e *fakeElement) Fill(string) error      { return nil }
func (e *fakeElement) Press(string) error     { return nil }
func (e *fakeElement) Visible() (bool, error) { return true, nil }
func (e *fakeElement) Enabled() (bool, error) { return true, nil }

func textEl(text string) *fakeElement { return &fakeElement{text: text} }

// listingSpec maps the engine's logical ids onto the fake tree's keys
func listingSpec() locator.Spec {
	return locator.Spec{
		IDListingRows:       {{Kind: view.CSS, Expression: "row"}},
		IDListingTitle:      {{Kind: view.CSS, Expression: "title"}},
		IDListingCompany:    {{Kind: view.CSS, Expression: "company"}},
		IDListingLink:       {{Kind: view.CSS, Expression: "link"}},
		IDListingAttributes: {{Kind: view.CSS, Expression: "attr"}},
		IDListingConditions: {{Kind: view.CSS, Expression: "cond"}},
		IDListingMeta:       {{Kind: view.CSS, Expression: "meta"}},
		IDFirstRowTitle:     {{Kind: view.CSS, Expression: "first-title"}},
		IDNextPage:          {{Kind: view.CSS, Expression: "next"}},
		IDPageNumber:        {{Kind: view.CSS, Expression: "page-%d"}},
	}
}

func listingRow(title, company, href string) *fakeElement {
	row := &fakeElement{
		fakeView: fakeView{children: map[string][]*fakeElement{
			"title":   {textEl(title)},
			"company": {textEl(company)},
			"attr":    {textEl("정규직"), textEl("신입")},
			"cond":    {textEl("학력무관")},
			"meta":    {textEl("오늘 등록")},
		}},
	}
	if href != "" {
		row.children["link"] = []*fakeElement{{attrs: map[string]string{"href": href}}}
	}
	return row
}

// listingPage builds a page view: rows plus any pagination controls,
// with the fingerprint probes pointing at the first row
func listingPage(rows []*fakeElement, controls map[string][]*fakeElement) *fakeView {
	children := map[string][]*fakeElement{"row": rows}
	if len(rows) > 0 {
		children["first-title"] = rows[0].children["title"]
	}
	for k, v := range controls {
		children[k] = v
	}
	return &fakeView{children: children}
}

// scriptedSession returns its views in order across CurrentView calls,
// repeating the last one once the script runs out
type scriptedSession struct {
	script []view.View
	calls  int
}

func (s *scriptedSession) CurrentView() view.View {
	i := s.calls
	if i >= len(s.script) {
		i = len(s.script) - 1
	}
	s.calls++
	return s.script[i]
}

func (s *scriptedSession) Activate(el view.Element) error { return el.Click() }

func testTiming() Timing {
	return Timing{
		ControlTimeout: 10 * time.Millisecond,
		ChangeTimeout:  150 * time.Millisecond,
		Settle:         time.Millisecond,
		Poll:           5 * time.Millisecond,
	}
}
