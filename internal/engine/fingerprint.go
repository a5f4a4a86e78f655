package engine

import (
	"context"

	"go-catch-automation/internal/locator"
	"go-catch-automation/internal/view"
)

// Fingerprint is a cheap signature of the rendered listing, used to tell
// whether an advance attempt actually produced new content without
// diffing the whole table.
type Fingerprint struct {
	FirstTitle string
	HasRecords bool
}

// FingerprintView reads the current listing signature. Pure read, never
// errors: any query failure maps to the empty/false default.
// HasRecords requires at least one row with a non-empty organization, so
// a table of placeholder rows mid-render does not count as content.
func (x *Extractor) FingerprintView(ctx context.Context, v view.View) Fingerprint {
	fp := Fingerprint{
		FirstTitle: x.tryText(ctx, v, IDFirstRowTitle),
	}

	rows, err := x.res.ResolveAll(v, IDListingRows)
	if err != nil {
		return fp
	}
	for _, row := range rows {
		el, err := x.res.Resolve(ctx, row, IDListingCompany, locator.Presence, 0)
		if err != nil {
			continue
		}
		if text, err := el.Text(); err == nil && CleanText(text) != "" {
			fp.HasRecords = true
			break
		}
	}
	return fp
}

// changed reports whether cur indicates new content relative to before:
// a different non-empty first title, or records appearing where there were none
func (fp Fingerprint) changed(cur Fingerprint) bool {
	if cur.FirstTitle != "" && cur.FirstTitle != fp.FirstTitle {
		return true
	}
	return cur.HasRecords && !fp.HasRecords
}
