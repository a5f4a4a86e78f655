package dedup

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

type seenEntry struct {
	URL       string `json:"url"`
	Timestamp int64  `json:"timestamp"`
}

// ListingCache remembers which posting URLs were already reported so
// repeated runs only surface new listings
type ListingCache struct {
	mu       sync.Mutex
	filePath string
	seen     mapset.Set[string]
	stamps   map[string]int64
}

const thirtyDaysMs = int64(30 * 24 * 60 * 60 * 1000)

// NewListingCache creates or loads a listing cache
func NewListingCache(cacheDir string) *ListingCache {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create cache directory: %v", err)
	}
	cache := &ListingCache{
		filePath: filepath.Join(cacheDir, "seen_listings.json"),
		seen:     mapset.NewSet[string](),
		stamps:   make(map[string]int64),
	}
	cache.load()
	return cache
}

// IsSeen checks if a URL has already been processed
func (lc *ListingCache) IsSeen(url string) bool {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.seen.Contains(url)
}

func (lc *ListingCache) Add(urls []string) {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	now := time.Now().UnixMilli()
	changed := false
	for _, url := range urls {
		if lc.seen.Add(url) {
			lc.stamps[url] = now
			changed = true
		}
	}

	if changed {
		lc.save()
	}
}

// load reads the cache from disk, dropping entries older than 30 days
func (lc *ListingCache) load() {
	data, err := os.ReadFile(lc.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read seen_listings.json: %v", err)
		}
		return
	}

	var entries []seenEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("⚠️ Failed to parse seen_listings.json: %v", err)
		return
	}

	cutoff := time.Now().UnixMilli() - thirtyDaysMs
	loaded := 0
	for _, e := range entries {
		if e.Timestamp > cutoff {
			lc.seen.Add(e.URL)
			lc.stamps[e.URL] = e.Timestamp
			loaded++
		}
	}
	log.Printf("📋 Loaded %d previously seen listings (%d expired and removed)", loaded, len(entries)-loaded)
}

// save writes the current cache to disk
func (lc *ListingCache) save() {
	entries := make([]seenEntry, 0, len(lc.stamps))
	for url, ts := range lc.stamps {
		entries = append(entries, seenEntry{URL: url, Timestamp: ts})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal seen listings: %v", err)
		return
	}
	if err := os.WriteFile(lc.filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write seen_listings.json: %v", err)
	}
	log.Printf("💾 Saved %d seen listings to cache", len(entries))
}
