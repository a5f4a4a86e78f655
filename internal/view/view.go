// Thin interfaces over the driven browser page.
// The engine only ever talks to these, so tests can run on synthetic views.

package view

// Kind is the selector language of a locator expression
type Kind string

const (
	CSS   Kind = "css"
	XPath Kind = "xpath"
)

// View is anything that can be queried for elements: a page, or an
// element scoping queries to its subtree
type View interface {
	// Query returns the first element matching the expression, or an
	// error when nothing matches right now (no waiting at this level)
	Query(kind Kind, expr string) (Element, error)

	// QueryAll returns every element matching the expression in
	// document order; an empty slice is not an error
	QueryAll(kind Kind, expr string) ([]Element, error)
}

// Element is a handle to a single resolved element
type Element interface {
	View

	Text() (string, error)
	Attribute(name string) (string, error)
	Click() error
	Fill(value string) error
	Press(key string) error
	Visible() (bool, error)
	Enabled() (bool, error)
}
