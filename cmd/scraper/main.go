package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go-catch-automation/internal/browser"
	"go-catch-automation/internal/catch"
	"go-catch-automation/internal/config"
	"go-catch-automation/internal/database"
	"go-catch-automation/internal/dedup"
	"go-catch-automation/internal/engine"
	"go-catch-automation/internal/filter"
	"go-catch-automation/internal/telegram"
)

type scoredListing struct {
	engine.ListingRecord
	MatchScore int `json:"match_score"`
	Category   string `json:"category"`
}

func main() {
	//load config
	cfg := config.Load()

	//setup context with timeout = 15 mins
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	log.Println("🚀 Starting Catch automation run...")

	//init playwright manager
	pwManager, err := browser.NewPlaywright(cfg.Headless)
	if err != nil {
		log.Fatalf("❌ Failed to init Playwright: %v", err)
	}
	defer pwManager.Close()

	//load cookies from the previous run, if any
	cookieFile := filepath.Join(cfg.CookiesPath, "catch_cookies.json")
	cookies, err := browser.LoadCookies(cookieFile)
	if err != nil {
		log.Printf("⚠️ Could not load cookies: %v. Continuing.", err)
	} else {
		log.Printf("🍪 Loaded %d cookies", len(cookies))
	}

	browserCtx, err := pwManager.NewContext(cookies)
	if err != nil {
		log.Fatalf("❌ Failed to create browser context: %v", err)
	}

	sess, err := catch.NewSession(cfg, browserCtx)
	if err != nil {
		log.Fatalf("❌ Failed to create session: %v", err)
	}
	defer sess.Close()

	if cfg.Username != "" && cfg.Password != "" {
		result := sess.Login(ctx, cfg.Username, cfg.Password)
		if !result.OK {
			log.Fatalf("❌ Login failed: %s", result.Message)
		}
		if err := browser.SaveCookies(cookieFile, browserCtx); err != nil {
			log.Printf("⚠️ Failed to save cookies: %v", err)
		}
	} else {
		log.Println("⚠️ No credentials configured, collecting anonymously")
	}

	ctrl := engine.NewController(sess.Resolver(), sess.Extractor(), engine.Timing{
		ControlTimeout: cfg.ControlTimeout(),
		ChangeTimeout:  cfg.ChangeTimeout(),
		Settle:         cfg.SettleInterval(),
	})

	pageCap := cfg.DefaultPageCap
	if pageCap <= 0 {
		pageCap = 5
	}

	//collect both categories
	var allListings []scoredListing
	for _, cat := range []catch.Category{catch.CategoryIT, catch.CategoryBigDataAI} {
		log.Printf("\n▶️ Collecting category: %s", cat)
		if r := sess.OpenListings(ctx); !r.OK {
			log.Printf("❌ Could not open listings: %s", r.Message)
			continue
		}
		if r := sess.ApplyCategory(ctx, cat); !r.OK {
			log.Printf("❌ Could not apply filter: %s", r.Message)
			continue
		}

		res := ctrl.Collect(ctx, sess, engine.Options{PageCap: pageCap})
		log.Printf("✅ Category %s: %d records over %d pages (stopped: %s)",
			cat, len(res.Records), res.PagesVisited, res.Reason)
		if res.Err != nil {
			log.Printf("⚠️ Run ended with error: %v", res.Err)
		}

		for _, rec := range res.Records {
			allListings = append(allListings, scoredListing{
				ListingRecord: rec,
				MatchScore:    filter.CalculateMatchScore(rec),
				Category:      string(cat),
			})
		}
	}

	//sort by score
	sort.Slice(allListings, func(i, j int) bool {
		return allListings[i].MatchScore > allListings[j].MatchScore
	})
	log.Printf("\n📦 Total listings collected: %d", len(allListings))

	//dedup against previous runs
	cache := dedup.NewListingCache(cfg.CachePath)
	var unseen []scoredListing
	for _, l := range allListings {
		if l.URL == "" || !cache.IsSeen(l.URL) {
			unseen = append(unseen, l)
		}
	}
	log.Printf("🔍 Deduplication: %d total -> %d unseen listings", len(allListings), len(unseen))

	var unseenURLs []string
	for _, l := range unseen {
		if l.URL != "" {
			unseenURLs = append(unseenURLs, l.URL)
		}
	}
	cache.Add(unseenURLs)

	//persist to database if configured
	if cfg.DatabaseURL != "" {
		repo, err := database.ConnectDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Printf("⚠️ Database unavailable: %v", err)
		} else {
			defer repo.Close()
			saved := 0
			for _, l := range allListings {
				if l.URL == "" {
					continue
				}
				if err := repo.SaveListing(ctx, l.Category, l.ListingRecord); err != nil {
					log.Printf("⚠️ Failed to save listing: %v", err)
					continue
				}
				saved++
			}
			log.Printf("💾 Persisted %d listings", saved)
		}
	}

	//report new listings to telegram if configured
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 && len(unseen) > 0 {
		bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("⚠️ Failed to init Telegram bot: %v", err)
		} else {
			log.Printf("📊 Sending %d new listings", len(unseen))
			for _, l := range unseen {
				log.Printf("  [%d/10] %s @ %s", l.MatchScore, l.Title, l.Company)
				if err := bot.SendListing(l.ListingRecord, l.MatchScore); err != nil {
					log.Printf("⚠️ Failed to send listing: %v", err)
				}
				//1 second delay to avoid 429
				time.Sleep(1 * time.Second)
			}
			statusMsg := fmt.Sprintf("✅ Collected %d listings, %d new.", len(allListings), len(unseen))
			if err := bot.SendStatus(statusMsg); err != nil {
				log.Printf("⚠️ Failed to send status: %v", err)
			}
		}
	}

	if err := saveListingsJSON(allListings); err != nil {
		log.Printf("⚠️ Failed to write listings file: %v", err)
	}

	log.Println("🏁 Run complete")
}

// saveListingsJSON writes the run's full output next to the binary for
// inspection
func saveListingsJSON(listings []scoredListing) error {
	data, err := json.MarshalIndent(listings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile("listings.json", data, 0644)
}
