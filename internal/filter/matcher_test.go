package filter

import (
	"testing"

	"go-catch-automation/internal/engine"
)

func TestCalculateMatchScore(t *testing.T) {
	tests := []struct {
		name     string
		rec      engine.ListingRecord
		expected int
	}{
		{
			name: "entry level backend role",
			rec: engine.ListingRecord{
				Title:      "백엔드 개발자 신입 채용",
				Company:    "네이버",
				Conditions: []string{"신입", "학력무관"},
			},
			expected: 6,
		},
		{
			name: "data role with heavy seniority requirement",
			rec: engine.ListingRecord{
				Title:      "빅데이터 플랫폼 수석 엔지니어",
				Conditions: []string{"경력 10년 이상"},
			},
			expected: 0,
		},
		{
			name: "unrelated listing",
			rec: engine.ListingRecord{
				Title:   "영업 담당자 모집",
				Company: "무역상사",
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := CalculateMatchScore(tt.rec)
			if score != tt.expected {
				t.Errorf("got %d, want %d", score, tt.expected)
			}
		})
	}
}
