package catch

import (
	"context"
	"log"
	"strings"
	"time"

	"go-catch-automation/internal/engine"
	"go-catch-automation/internal/locator"
)

// JobDetail opens a job detail view and extracts its structured content.
// The static fields come from the engine extractor; the apply URL and the
// raw detail payload need navigation, which only the facade may do.
func (s *Session) JobDetail(ctx context.Context, jobURL string) (engine.DetailRecord, error) {
	log.Printf("📑 Opening job detail: %s", jobURL)
	if err := s.navigate(jobURL); err != nil {
		return engine.DetailRecord{}, err
	}
	if err := waitFor(ctx, 3*time.Second); err != nil {
		return engine.DetailRecord{}, err
	}

	rec := s.ext.Detail(ctx, s.pv)
	rec.ApplyURL = s.captureApplyURL(ctx)
	rec.RawContent = s.captureRawContent(ctx)
	return rec, nil
}

// captureApplyURL activates the homepage-apply control and captures the
// URL of the page it opens, keeping it only when it leads off-site.
// Failure at any step leaves the field empty.
func (s *Session) captureApplyURL(ctx context.Context) string {
	applyEl, err := s.res.Resolve(ctx, s.pv, idDetailApply, locator.Presence, 10*time.Second)
	if err != nil {
		return ""
	}

	beforeURL := s.page.URL()
	if err := s.Activate(applyEl); err != nil {
		return ""
	}
	if err := waitFor(ctx, 3*time.Second); err != nil {
		return ""
	}

	pages := s.bctx.Pages()
	if len(pages) < 2 {
		return ""
	}
	opened := pages[len(pages)-1]
	applyURL := opened.URL()
	_ = opened.Close()

	if applyURL == beforeURL || strings.Contains(applyURL, "catch.co.kr") {
		return ""
	}
	return applyURL
}

// captureRawContent follows the detail iframe to its source document and
// returns the rendered body markup
func (s *Session) captureRawContent(ctx context.Context) string {
	iframe, err := s.res.Resolve(ctx, s.pv, idDetailIframe, locator.Presence, 5*time.Second)
	if err != nil {
		return ""
	}
	src, err := iframe.Attribute("src")
	if err != nil || src == "" {
		return ""
	}

	if err := s.navigate(src); err != nil {
		return ""
	}
	if err := waitFor(ctx, 2*time.Second); err != nil {
		return ""
	}

	html, err := s.page.Locator("body").InnerHTML()
	if err != nil {
		return ""
	}
	return html
}
