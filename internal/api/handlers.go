// HTTP boundary: commands in, JSON out. Every handler holds the server
// mutex for its whole duration, so browser operations are strictly
// sequenced no matter how clients behave.

package api

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/playwright-community/playwright-go"

	"go-catch-automation/internal/browser"
	"go-catch-automation/internal/catch"
	"go-catch-automation/internal/config"
	"go-catch-automation/internal/database"
	"go-catch-automation/internal/engine"
)

// Envelope is the uniform response shape. Collection endpoints fill
// Records/PagesVisited/TerminationReason; command endpoints only
// Success/Message. A run that stopped early still reports success with
// whatever it accumulated; Success is false only when nothing useful
// came back.
type Envelope struct {
	Success           bool        `json:"success"`
	Records           interface{} `json:"records,omitempty"`
	PagesVisited      int         `json:"pagesVisited,omitempty"`
	TerminationReason string      `json:"terminationReason,omitempty"`
	Message           string      `json:"message,omitempty"`
	Error             string      `json:"error,omitempty"`
}

type Server struct {
	cfg *config.Config

	mu           sync.Mutex
	manager      *browser.PlaywrightManager
	bctx         playwright.BrowserContext
	sess         *catch.Session
	ctrl         *engine.Controller
	repo         *database.Repository
	lastCategory string
}

func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Close tears down the browser and the database pool if running
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teardownLocked()
	if s.repo != nil {
		s.repo.Close()
		s.repo = nil
	}
}

func (s *Server) teardownLocked() {
	if s.sess != nil {
		_ = s.sess.Close()
		s.sess = nil
	}
	if s.manager != nil {
		_ = s.manager.Close()
		s.manager = nil
	}
	s.bctx = nil
	s.ctrl = nil
}

// handleInit launches the browser and creates a fresh session. Calling
// it again restarts from scratch.
func (s *Server) handleInit(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teardownLocked()

	manager, err := browser.NewPlaywright(s.cfg.Headless)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Envelope{Success: false, Error: err.Error()})
		return
	}

	cookies, err := browser.LoadCookies(filepath.Join(s.cfg.CookiesPath, "catch_cookies.json"))
	if err != nil {
		cookies = nil
	}

	bctx, err := manager.NewContext(cookies)
	if err != nil {
		_ = manager.Close()
		c.JSON(http.StatusInternalServerError, Envelope{Success: false, Error: err.Error()})
		return
	}

	sess, err := catch.NewSession(s.cfg, bctx)
	if err != nil {
		_ = manager.Close()
		c.JSON(http.StatusInternalServerError, Envelope{Success: false, Error: err.Error()})
		return
	}

	s.manager = manager
	s.bctx = bctx
	s.sess = sess
	s.ctrl = engine.NewController(sess.Resolver(), sess.Extractor(), engine.Timing{
		ControlTimeout: s.cfg.ControlTimeout(),
		ChangeTimeout:  s.cfg.ChangeTimeout(),
		Settle:         s.cfg.SettleInterval(),
	})

	if s.cfg.DatabaseURL != "" && s.repo == nil {
		repo, err := database.ConnectDB(c.Request.Context(), s.cfg.DatabaseURL)
		if err != nil {
			log.Printf("⚠️ Database unavailable, collection results will not be persisted: %v", err)
		} else {
			s.repo = repo
		}
	}

	log.Println("🚀 Browser session initialized")
	c.JSON(http.StatusOK, Envelope{Success: true, Message: "browser initialized"})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready(c) {
		return
	}

	var req loginRequest
	_ = c.ShouldBindJSON(&req)
	if req.Username == "" {
		req.Username = s.cfg.Username
	}
	if req.Password == "" {
		req.Password = s.cfg.Password
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, Envelope{Success: false, Error: "username and password required"})
		return
	}

	result := s.sess.Login(c.Request.Context(), req.Username, req.Password)
	if result.OK {
		if err := browser.SaveCookies(filepath.Join(s.cfg.CookiesPath, "catch_cookies.json"), s.bctx); err != nil {
			log.Printf("⚠️ Failed to save cookies: %v", err)
		}
	}
	c.JSON(http.StatusOK, Envelope{Success: result.OK, Message: result.Message})
}

func (s *Server) handleStatus(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sess == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "initialized": false})
		return
	}
	st := s.sess.Status()
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"initialized":  true,
		"is_logged_in": st.LoggedIn,
		"current_url":  st.CurrentURL,
		"page_title":   st.PageTitle,
	})
}

func (s *Server) handleRecruit(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready(c) {
		return
	}
	result := s.sess.OpenListings(c.Request.Context())
	c.JSON(http.StatusOK, Envelope{Success: result.OK, Message: result.Message})
}

func (s *Server) handleFilter(cat catch.Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		if !s.ready(c) {
			return
		}
		result := s.sess.ApplyCategory(c.Request.Context(), cat)
		if result.OK {
			s.lastCategory = string(cat)
		}
		c.JSON(http.StatusOK, Envelope{Success: result.OK, Message: result.Message})
	}
}

// handleExtractJobs paginates from the current listing view up to
// ?max_pages= pages (default 5)
func (s *Server) handleExtractJobs(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready(c) {
		return
	}

	def := s.cfg.DefaultPageCap
	if def <= 0 {
		def = 5
	}
	maxPages, err := parseCount(c.Query("max_pages"), def)
	if err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Success: false, Error: "max_pages must be a non-negative integer"})
		return
	}

	res := s.ctrl.Collect(c.Request.Context(), s.sess, engine.Options{PageCap: maxPages})
	s.persistListings(c, res.Records)
	c.JSON(http.StatusOK, collectEnvelope(res))
}

// handleExtractFirstPage reads only the visible page, up to ?max_jobs=
// rows (default 10; 0 means all rows)
func (s *Server) handleExtractFirstPage(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready(c) {
		return
	}

	maxJobs, err := parseCount(c.Query("max_jobs"), 10)
	if err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Success: false, Error: "max_jobs must be a non-negative integer"})
		return
	}

	res := s.ctrl.Collect(c.Request.Context(), s.sess, engine.Options{PageCap: 1, RowLimit: maxJobs})
	s.persistListings(c, res.Records)
	c.JSON(http.StatusOK, collectEnvelope(res))
}

// handleExtractAllJobs runs the full flow for both job categories,
// paginating each until its listing runs out
func (s *Server) handleExtractAllJobs(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready(c) {
		return
	}

	ctx := c.Request.Context()
	var results []engine.CollectResult
	for _, cat := range []catch.Category{catch.CategoryIT, catch.CategoryBigDataAI} {
		if r := s.sess.OpenListings(ctx); !r.OK {
			c.JSON(http.StatusOK, Envelope{Success: false, Error: r.Message})
			return
		}
		if r := s.sess.ApplyCategory(ctx, cat); !r.OK {
			c.JSON(http.StatusOK, Envelope{Success: false, Error: r.Message})
			return
		}
		s.lastCategory = string(cat)

		res := s.ctrl.Collect(ctx, s.sess, engine.Options{PageCap: 0})
		s.persistListings(c, res.Records)
		results = append(results, res)
		if res.Err != nil {
			break
		}
	}

	c.JSON(http.StatusOK, mergeResults(results...))
}

// handleHomepageJobs runs the full flow for both job categories and
// returns the first 10 rows of each
func (s *Server) handleHomepageJobs(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready(c) {
		return
	}

	ctx := c.Request.Context()
	sections := map[string]interface{}{}
	for _, cat := range []catch.Category{catch.CategoryIT, catch.CategoryBigDataAI} {
		if r := s.sess.OpenListings(ctx); !r.OK {
			c.JSON(http.StatusOK, Envelope{Success: false, Error: r.Message})
			return
		}
		if r := s.sess.ApplyCategory(ctx, cat); !r.OK {
			c.JSON(http.StatusOK, Envelope{Success: false, Error: r.Message})
			return
		}
		res := s.ctrl.Collect(ctx, s.sess, engine.Options{PageCap: 1, RowLimit: 10})
		sections[string(cat)] = res.Records
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "records": sections})
}

type companyRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
}

// handleSearchCompany scans both category listings, all pages, for rows
// posted by the requested company
func (s *Server) handleSearchCompany(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready(c) {
		return
	}

	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Success: false, Error: "company_name is required"})
		return
	}

	ctx := c.Request.Context()
	var results []engine.CollectResult
	for _, cat := range []catch.Category{catch.CategoryIT, catch.CategoryBigDataAI} {
		if r := s.sess.OpenListings(ctx); !r.OK {
			c.JSON(http.StatusOK, Envelope{Success: false, Error: r.Message})
			return
		}
		if r := s.sess.ApplyCategory(ctx, cat); !r.OK {
			c.JSON(http.StatusOK, Envelope{Success: false, Error: r.Message})
			return
		}
		res := s.ctrl.Collect(ctx, s.sess, engine.Options{PageCap: 0, CompanyFilter: req.CompanyName})
		results = append(results, res)
		if res.Err != nil {
			break
		}
	}

	c.JSON(http.StatusOK, mergeResults(results...))
}

type jobDetailRequest struct {
	JobURL string `json:"job_url" binding:"required"`
}

func (s *Server) handleJobDetail(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready(c) {
		return
	}

	var req jobDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Success: false, Error: "job_url is required"})
		return
	}

	rec, err := s.sess.JobDetail(c.Request.Context(), req.JobURL)
	if err != nil {
		c.JSON(http.StatusOK, Envelope{Success: false, Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "job_detail": rec})
}

// handleCompanyInfo looks the company up by exact name and extracts its
// full profile, reviews included
func (s *Server) handleCompanyInfo(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready(c) {
		return
	}

	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Success: false, Error: "company_name is required"})
		return
	}

	ctx := c.Request.Context()
	profileURL, result := s.sess.SearchCompany(ctx, req.CompanyName)
	if !result.OK {
		c.JSON(http.StatusOK, Envelope{Success: false, Error: result.Message})
		return
	}

	rec, err := s.sess.CompanyDetail(ctx, profileURL)
	if err != nil {
		c.JSON(http.StatusOK, Envelope{Success: false, Error: err.Error()})
		return
	}
	if s.repo != nil {
		if err := s.repo.SaveCompany(ctx, rec); err != nil {
			log.Printf("⚠️ Failed to persist company profile: %v", err)
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "company_info": rec})
}

// ready writes the not-initialized error when no session exists.
// Must be called with the mutex held.
func (s *Server) ready(c *gin.Context) bool {
	if s.sess == nil || s.ctrl == nil {
		c.JSON(http.StatusConflict, Envelope{Success: false, Error: "browser not initialized, call /api/init first"})
		return false
	}
	return true
}

// persistListings stores collected records when a database is configured.
// Persistence failures are logged, never surfaced to the client.
// Must be called with the mutex held.
func (s *Server) persistListings(c *gin.Context, records []engine.ListingRecord) {
	if s.repo == nil || len(records) == 0 {
		return
	}
	saved, err := s.repo.SaveListings(c.Request.Context(), s.lastCategory, records)
	if err != nil {
		log.Printf("⚠️ Persisted %d listings before failing: %v", saved, err)
		return
	}
	log.Printf("💾 Persisted %d listings", saved)
}

// collectEnvelope maps a collection result onto the response envelope.
// Partial runs are successes; only an error with nothing collected fails.
func collectEnvelope(res engine.CollectResult) Envelope {
	env := Envelope{
		Success:           true,
		Records:           res.Records,
		PagesVisited:      res.PagesVisited,
		TerminationReason: string(res.Reason),
	}
	if res.Err != nil {
		env.Error = res.Err.Error()
		if len(res.Records) == 0 {
			env.Success = false
		}
	}
	return env
}

// mergeResults folds sequential per-category runs into one envelope:
// records concatenated, pages summed, the reason and error of the run
// that ended the sequence preserved. Same partial-success rule as
// collectEnvelope.
func mergeResults(results ...engine.CollectResult) Envelope {
	all := []engine.ListingRecord{}
	env := Envelope{Success: true}
	for _, res := range results {
		all = append(all, res.Records...)
		env.PagesVisited += res.PagesVisited
		env.TerminationReason = string(res.Reason)
		if res.Err != nil {
			env.Error = res.Err.Error()
			env.Success = len(all) > 0
			break
		}
	}
	env.Records = all
	return env
}

// parseCount parses a non-negative count query parameter, returning def
// when the parameter is absent
func parseCount(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid count %q", raw)
	}
	return n, nil
}
