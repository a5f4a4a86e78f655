// Session facade over the driven browser: authentication, navigation to
// the recruit listing, category filters. The pagination engine borrows
// the session only through CurrentView/Activate and never touches the
// page directly.

package catch

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"go-catch-automation/internal/browser"
	"go-catch-automation/internal/config"
	"go-catch-automation/internal/engine"
	"go-catch-automation/internal/locator"
	"go-catch-automation/internal/view"
	"go-catch-automation/utils"
)

const recruitPath = "NCS/RecruitSearch"

// Result is the success/failure outcome of a facade action.
// Failures here are inputs to the caller's termination handling, never panics.
type Result struct {
	OK      bool   `json:"success"`
	Message string `json:"message"`
}

// Category is a job category filter on the recruit listing
type Category string

const (
	CategoryIT        Category = "it"
	CategoryBigDataAI Category = "bigdata-ai"
)

// Status reports the session's current state for the status endpoint
type Status struct {
	LoggedIn   bool   `json:"is_logged_in"`
	CurrentURL string `json:"current_url"`
	PageTitle  string `json:"page_title"`
}

// Session owns one browser page against catch.co.kr. Not safe for
// concurrent use: callers must sequence operations (the API layer holds
// a mutex around every handler).
type Session struct {
	cfg      *config.Config
	bctx     playwright.BrowserContext
	page     playwright.Page
	pv       *browser.PageView
	res      *locator.Resolver
	ext      *engine.Extractor
	shots    *utils.ScreenShotDebugger
	loggedIn bool
}

func NewSession(cfg *config.Config, bctx playwright.BrowserContext) (*Session, error) {
	page, err := bctx.NewPage()
	if err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}

	res := locator.NewResolver(Selectors())
	return &Session{
		cfg:   cfg,
		bctx:  bctx,
		page:  page,
		pv:    browser.NewPageView(page),
		res:   res,
		ext:   engine.NewExtractor(res, cfg.BaseURL),
		shots: utils.NewScreenShotDebugger(),
	}, nil
}

func (s *Session) Resolver() *locator.Resolver   { return s.res }
func (s *Session) Extractor() *engine.Extractor  { return s.ext }
func (s *Session) CurrentView() view.View        { return s.pv }
func (s *Session) Activate(el view.Element) error { return el.Click() }

func (s *Session) Status() Status {
	title, _ := s.page.Title()
	return Status{
		LoggedIn:   s.loggedIn,
		CurrentURL: s.page.URL(),
		PageTitle:  title,
	}
}

func (s *Session) Close() error {
	return s.page.Close()
}

// loginView is the slice of the browser the login form flow needs:
// element queries plus the current location
type loginView interface {
	view.View
	URL() string
}

// Login authenticates against the site. An unconfirmed outcome (form
// still present, no error element) is reported as a failure message,
// never as an error.
func (s *Session) Login(ctx context.Context, username, password string) Result {
	log.Println("🔐 Logging in...")
	if err := s.navigate(s.cfg.BaseURL); err != nil {
		return Result{OK: false, Message: err.Error()}
	}
	utils.MouseJiggle(s.page)

	result := s.performLogin(ctx, s.pv, username, password, 15*time.Second)
	if result.OK {
		s.loggedIn = true
		log.Println("✅ Logged in")
		return result
	}
	_ = s.shots.CaptureAndLog(s.page, "login_failed", "Login could not be confirmed, capturing page state")
	return result
}

// performLogin drives the login form on an already loaded view and
// classifies the outcome. Split from Login so it can run against any
// loginView, not only a live page.
func (s *Session) performLogin(ctx context.Context, v loginView, username, password string, confirmTimeout time.Duration) Result {
	loginBtn, err := s.res.Resolve(ctx, v, idLoginButton, locator.Clickable, 15*time.Second)
	if err != nil {
		return Result{OK: false, Message: "login button not found"}
	}
	if err := s.Activate(loginBtn); err != nil {
		return Result{OK: false, Message: fmt.Sprintf("clicking login button: %v", err)}
	}

	idField, err := s.res.Resolve(ctx, v, idLoginID, locator.Presence, 10*time.Second)
	if err != nil {
		return Result{OK: false, Message: "login form did not appear"}
	}
	pwField, err := s.res.Resolve(ctx, v, idLoginPassword, locator.Presence, 5*time.Second)
	if err != nil {
		return Result{OK: false, Message: "password field not found"}
	}

	if err := idField.Fill(username); err != nil {
		return Result{OK: false, Message: fmt.Sprintf("filling username: %v", err)}
	}
	if err := pwField.Fill(password); err != nil {
		return Result{OK: false, Message: fmt.Sprintf("filling password: %v", err)}
	}
	if err := pwField.Press("Enter"); err != nil {
		return Result{OK: false, Message: fmt.Sprintf("submitting login: %v", err)}
	}

	if s.awaitLoginConfirmed(ctx, v, confirmTimeout) {
		return Result{OK: true, Message: "login successful"}
	}

	errMsg := ""
	if errEl, err := s.res.Resolve(ctx, v, idLoginError, locator.Presence, 0); err == nil {
		if text, err := errEl.Text(); err == nil {
			errMsg = engine.CleanText(text)
		}
	}
	return Result{OK: false, Message: ClassifyLoginFailure(v.URL(), errMsg)}
}

// awaitLoginConfirmed polls until the login form leaves the view: the
// URL is no longer a login URL, or the id field is gone
func (s *Session) awaitLoginConfirmed(ctx context.Context, v loginView, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if !isLoginURL(v.URL()) {
			return true
		}
		if _, err := s.res.Resolve(ctx, v, idLoginID, locator.Presence, 0); err != nil {
			return true
		}
		if err := waitFor(ctx, 500*time.Millisecond); err != nil {
			return false
		}
	}
	return false
}

// ClassifyLoginFailure turns an unconfirmed login outcome into a
// human-readable reason
func ClassifyLoginFailure(currentURL, siteError string) string {
	if siteError != "" {
		return siteError
	}
	if isLoginURL(currentURL) {
		return "login failed: still on the login page"
	}
	return "login state could not be confirmed"
}

func isLoginURL(url string) bool {
	return strings.Contains(strings.ToLower(url), "login")
}

// OpenListings navigates to the recruit listing, preferring the menu
// link and falling back to a direct URL
func (s *Session) OpenListings(ctx context.Context) Result {
	menu, err := s.res.Resolve(ctx, s.pv, idRecruitMenu, locator.Clickable, 10*time.Second)
	if err == nil {
		if err := s.Activate(menu); err != nil {
			return Result{OK: false, Message: fmt.Sprintf("clicking recruit menu: %v", err)}
		}
	} else {
		if err := s.navigate(s.cfg.BaseURL + recruitPath); err != nil {
			return Result{OK: false, Message: err.Error()}
		}
	}

	if !s.awaitURLContains(ctx, "RecruitSearch", 10*time.Second) {
		return Result{OK: false, Message: "recruit listing did not load"}
	}
	utils.SmoothScroll(s.page)
	return Result{OK: true, Message: "recruit listing opened"}
}

// ApplyCategory opens the category panel and activates the requested
// job category filter
func (s *Session) ApplyCategory(ctx context.Context, cat Category) Result {
	categoryID := idCategoryIT
	label := "IT development"
	if cat == CategoryBigDataAI {
		categoryID = idCategoryBigData
		label = "big-data/AI"
	}

	catBtn, err := s.res.Resolve(ctx, s.pv, idJobCategory, locator.Clickable, 10*time.Second)
	if err != nil {
		return Result{OK: false, Message: "job category button not found"}
	}
	if err := s.Activate(catBtn); err != nil {
		return Result{OK: false, Message: fmt.Sprintf("opening category panel: %v", err)}
	}

	if _, err := s.res.Resolve(ctx, s.pv, idCategoryPanel, locator.Presence, 2*time.Second); err != nil {
		return Result{OK: false, Message: "category panel did not open"}
	}

	filterBtn, err := s.res.Resolve(ctx, s.pv, categoryID, locator.Clickable, 10*time.Second)
	if err != nil {
		return Result{OK: false, Message: fmt.Sprintf("%s filter button not found", label)}
	}
	if err := s.Activate(filterBtn); err != nil {
		return Result{OK: false, Message: fmt.Sprintf("applying %s filter: %v", label, err)}
	}

	// the filtered listing re-renders in place
	if err := waitFor(ctx, 3*time.Second); err != nil {
		return Result{OK: false, Message: err.Error()}
	}
	utils.RandomDelay(300, 700)
	log.Printf("🔖 Applied %s filter", label)
	return Result{OK: true, Message: fmt.Sprintf("%s filter applied", label)}
}

func (s *Session) awaitURLContains(ctx context.Context, fragment string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(s.page.URL(), fragment) {
			return true
		}
		if err := waitFor(ctx, 300*time.Millisecond); err != nil {
			return false
		}
	}
	return false
}

func (s *Session) navigate(url string) error {
	if _, err := s.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(float64(s.cfg.NavTimeoutMs)),
	}); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
	return nil
}

func waitFor(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
