package filter

import (
	"regexp"
	"strings"

	"go-catch-automation/internal/engine"
)

var (
	devRegex    = regexp.MustCompile(`(?i)(개발|백엔드|프론트엔드|developer|engineer|backend|frontend|software)`)
	dataRegex   = regexp.MustCompile(`(?i)(빅데이터|데이터|머신러닝|딥러닝|\bAI\b|\bML\b|data)`)
	juniorRegex = regexp.MustCompile(`(신입|인턴|주니어)`)
	seniorRegex = regexp.MustCompile(`(경력\s*([5-9]|\d{2,})\s*년|수석|리드|팀장)`)
)

// CalculateMatchScore ranks a listing for report ordering: development
// and data keywords score up, entry-level mentions score up, heavy
// seniority requirements score down. Clamped to 0..10.
func CalculateMatchScore(rec engine.ListingRecord) int {
	score := 0
	text := rec.Title + " " + rec.Company + " " + strings.Join(rec.JobInfo, " ") + " " + strings.Join(rec.Conditions, " ")

	if devRegex.MatchString(text) {
		score += 3
	}
	if dataRegex.MatchString(text) {
		score += 2
	}
	if juniorRegex.MatchString(text) {
		score += 3
	}
	if seniorRegex.MatchString(text) {
		score -= 5
	}

	if score > 10 {
		return 10
	}
	if score < 0 {
		return 0
	}
	return score
}
