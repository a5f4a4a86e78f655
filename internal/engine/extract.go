package engine

import (
	"context"
	"net/url"
	"strings"

	"golang.org/x/text/unicode/norm"

	"go-catch-automation/internal/locator"
	"go-catch-automation/internal/view"
)

// Extractor pulls structured records out of the current view.
// Per-field failures yield zero values; only a stale row element causes
// the row to be skipped (and counted), never silently in between.
type Extractor struct {
	res     *locator.Resolver
	baseURL string
}

func NewExtractor(res *locator.Resolver, baseURL string) *Extractor {
	return &Extractor{res: res, baseURL: baseURL}
}

// Page extracts every listing row of the current view in document order,
// up to limit rows when limit > 0. Returns the records and the number of
// rows skipped as stale.
func (x *Extractor) Page(ctx context.Context, v view.View, page, limit int) ([]ListingRecord, int) {
	rows, err := x.res.ResolveAll(v, IDListingRows)
	if err != nil || len(rows) == 0 {
		return nil, 0
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	records := make([]ListingRecord, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		if _, err := row.Text(); err != nil {
			// row handle went stale between enumeration and extraction
			skipped++
			continue
		}
		rec := ListingRecord{
			Title:       x.tryText(ctx, row, IDListingTitle),
			Company:     x.tryText(ctx, row, IDListingCompany),
			JobInfo:     x.tryTexts(row, IDListingAttributes),
			Conditions:  x.tryTexts(row, IDListingConditions),
			PostingMeta: x.tryTexts(row, IDListingMeta),
			URL:         x.absolute(x.tryAttr(ctx, row, IDListingLink, "href")),
			Page:        page,
		}
		records = append(records, rec)
	}
	return records, skipped
}

// tryText resolves id within v and returns its trimmed text, or "" on any failure
func (x *Extractor) tryText(ctx context.Context, v view.View, id string) string {
	el, err := x.res.Resolve(ctx, v, id, locator.Presence, 0)
	if err != nil {
		return ""
	}
	text, err := el.Text()
	if err != nil {
		return ""
	}
	return CleanText(text)
}

// tryAttr resolves id within v and returns the named attribute, or "" on any failure
func (x *Extractor) tryAttr(ctx context.Context, v view.View, id, attr string) string {
	el, err := x.res.Resolve(ctx, v, id, locator.Presence, 0)
	if err != nil {
		return ""
	}
	val, err := el.Attribute(attr)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(val)
}

// tryTexts returns the trimmed text of every match, or an empty slice
func (x *Extractor) tryTexts(v view.View, id string) []string {
	els, err := x.res.ResolveAll(v, id)
	if err != nil {
		return []string{}
	}
	texts := make([]string, 0, len(els))
	for _, el := range els {
		text, err := el.Text()
		if err != nil {
			continue
		}
		texts = append(texts, CleanText(text))
	}
	return texts
}

// absolute resolves a possibly-relative href against the configured base URL
func (x *Extractor) absolute(href string) string {
	if href == "" || x.baseURL == "" {
		return href
	}
	base, err := url.Parse(x.baseURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// CleanText trims whitespace and normalizes the text to NFC so Korean
// strings compare and dedupe consistently regardless of how the site
// composed them.
func CleanText(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}
