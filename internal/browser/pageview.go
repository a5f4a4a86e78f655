// Adapts a playwright page to the view interfaces the engine runs on.

package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"go-catch-automation/internal/view"
)

// query-level timeouts: existence is checked with Count() first, so
// these only bound reads against handles that have gone stale
const readTimeoutMs = 2000

// PageView wraps a playwright page as a view.View
type PageView struct {
	page playwright.Page
}

func NewPageView(page playwright.Page) *PageView {
	return &PageView{page: page}
}

// Page exposes the underlying playwright page to the session facade
func (pv *PageView) Page() playwright.Page {
	return pv.page
}

// URL reports the page's current location
func (pv *PageView) URL() string {
	return pv.page.URL()
}

func (pv *PageView) Query(kind view.Kind, expr string) (view.Element, error) {
	loc := pv.page.Locator(selector(kind, expr)).First()
	return elementOf(loc)
}

func (pv *PageView) QueryAll(kind view.Kind, expr string) ([]view.Element, error) {
	locs, err := pv.page.Locator(selector(kind, expr)).All()
	if err != nil {
		return nil, err
	}
	return wrapAll(locs), nil
}

// pwElement wraps a resolved playwright locator as a view.Element
type pwElement struct {
	loc playwright.Locator
}

func elementOf(loc playwright.Locator) (view.Element, error) {
	count, err := loc.Count()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("browser: no element matches")
	}
	return &pwElement{loc: loc}, nil
}

func wrapAll(locs []playwright.Locator) []view.Element {
	els := make([]view.Element, len(locs))
	for i, loc := range locs {
		els[i] = &pwElement{loc: loc}
	}
	return els
}

func (e *pwElement) Query(kind view.Kind, expr string) (view.Element, error) {
	return elementOf(e.loc.Locator(selector(kind, expr)).First())
}

func (e *pwElement) QueryAll(kind view.Kind, expr string) ([]view.Element, error) {
	locs, err := e.loc.Locator(selector(kind, expr)).All()
	if err != nil {
		return nil, err
	}
	return wrapAll(locs), nil
}

func (e *pwElement) Text() (string, error) {
	return e.loc.TextContent(playwright.LocatorTextContentOptions{
		Timeout: playwright.Float(readTimeoutMs),
	})
}

func (e *pwElement) Attribute(name string) (string, error) {
	return e.loc.GetAttribute(name, playwright.LocatorGetAttributeOptions{
		Timeout: playwright.Float(readTimeoutMs),
	})
}

func (e *pwElement) Click() error {
	return e.loc.Click()
}

func (e *pwElement) Fill(value string) error {
	return e.loc.Fill(value)
}

func (e *pwElement) Press(key string) error {
	return e.loc.Press(key)
}

func (e *pwElement) Visible() (bool, error) {
	return e.loc.IsVisible()
}

func (e *pwElement) Enabled() (bool, error) {
	return e.loc.IsEnabled()
}

func selector(kind view.Kind, expr string) string {
	if kind == view.XPath {
		return "xpath=" + expr
	}
	return expr
}
