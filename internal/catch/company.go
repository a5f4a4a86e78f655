package catch

import (
	"context"
	"fmt"
	"log"
	"time"

	"go-catch-automation/internal/engine"
	"go-catch-automation/internal/locator"
)

const companySearchPath = "Comp/CompMajor/SearchPage"

// SearchCompany looks a company up by exact name on the company search
// page and returns its profile URL
func (s *Session) SearchCompany(ctx context.Context, name string) (string, Result) {
	log.Printf("🏢 Searching company: %s", name)
	if err := s.navigate(s.cfg.BaseURL + companySearchPath); err != nil {
		return "", Result{OK: false, Message: err.Error()}
	}
	if err := waitFor(ctx, 3*time.Second); err != nil {
		return "", Result{OK: false, Message: err.Error()}
	}

	input, err := s.res.Resolve(ctx, s.pv, idCompanySearchInput, locator.Presence, 10*time.Second)
	if err != nil {
		return "", Result{OK: false, Message: "company search input not found"}
	}
	if err := input.Fill(name); err != nil {
		return "", Result{OK: false, Message: fmt.Sprintf("filling search input: %v", err)}
	}

	searchBtn, err := s.res.Resolve(ctx, s.pv, idCompanySearchButton, locator.Clickable, 10*time.Second)
	if err != nil {
		return "", Result{OK: false, Message: "company search button not found"}
	}
	if err := s.Activate(searchBtn); err != nil {
		return "", Result{OK: false, Message: fmt.Sprintf("clicking search: %v", err)}
	}
	if err := waitFor(ctx, 3*time.Second); err != nil {
		return "", Result{OK: false, Message: err.Error()}
	}

	links, err := s.res.ResolveAll(s.pv, idCompanyResultLinks)
	if err != nil || len(links) == 0 {
		return "", Result{OK: false, Message: fmt.Sprintf("no search results for %q", name)}
	}

	// exact name match only: a substring match would silently pick a
	// different company with a similar name
	for _, link := range links {
		text, err := link.Text()
		if err != nil {
			continue
		}
		if engine.CleanText(text) == name {
			href, err := link.Attribute("href")
			if err != nil || href == "" {
				continue
			}
			return href, Result{OK: true, Message: fmt.Sprintf("company %q found", name)}
		}
	}
	return "", Result{OK: false, Message: fmt.Sprintf("company %q not found", name)}
}

// CompanyDetail opens a company profile and extracts it, including the
// employee reviews behind the review tab. A missing review tab leaves
// Reviews empty; it is not an error.
func (s *Session) CompanyDetail(ctx context.Context, companyURL string) (engine.CompanyRecord, error) {
	log.Printf("🏢 Opening company profile: %s", companyURL)
	if err := s.navigate(companyURL); err != nil {
		return engine.CompanyRecord{}, err
	}
	if err := waitFor(ctx, 3*time.Second); err != nil {
		return engine.CompanyRecord{}, err
	}

	rec := s.ext.Company(ctx, s.pv)

	tab, err := s.res.Resolve(ctx, s.pv, idReviewTab, locator.Clickable, 10*time.Second)
	if err != nil {
		log.Println("⚠️ Review tab not available")
		return rec, nil
	}
	if err := s.Activate(tab); err != nil {
		log.Printf("⚠️ Could not open review tab: %v", err)
		return rec, nil
	}
	if err := waitFor(ctx, 5*time.Second); err != nil {
		return rec, nil
	}

	rec.Reviews = s.ext.Reviews(ctx, s.pv)
	log.Printf("💬 Extracted %d reviews", len(rec.Reviews))
	return rec, nil
}
