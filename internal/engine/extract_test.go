package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-catch-automation/internal/locator"
)

func newTestExtractor() *Extractor {
	return NewExtractor(locator.NewResolver(listingSpec()), "https://www.catch.co.kr/")
}

func TestPageExtractsAllRows(t *testing.T) {
	rows := []*fakeElement{
		listingRow("백엔드 개발자", "네이버", "/NCS/RecruitInfo/1"),
		listingRow("데이터 엔지니어", "카카오", "https://www.catch.co.kr/NCS/RecruitInfo/2"),
	}
	page := listingPage(rows, nil)

	records, skipped := newTestExtractor().Page(context.Background(), page, 1, 0)

	assert.Equal(t, 0, skipped)
	assert.Len(t, records, 2)
	assert.Equal(t, "백엔드 개발자", records[0].Title)
	assert.Equal(t, "네이버", records[0].Company)
	// relative hrefs get resolved against the base url
	assert.Equal(t, "https://www.catch.co.kr/NCS/RecruitInfo/1", records[0].URL)
	assert.Equal(t, "https://www.catch.co.kr/NCS/RecruitInfo/2", records[1].URL)
	assert.Equal(t, 1, records[0].Page)
	assert.Equal(t, []string{"정규직", "신입"}, records[0].JobInfo)
}

func TestPageToleratesMissingFields(t *testing.T) {
	// second row has no link element at all
	rows := []*fakeElement{
		listingRow("개발자 A", "회사 A", "/a"),
		listingRow("개발자 B", "회사 B", ""),
		listingRow("개발자 C", "회사 C", "/c"),
	}
	page := listingPage(rows, nil)

	records, skipped := newTestExtractor().Page(context.Background(), page, 3, 0)

	assert.Equal(t, 0, skipped)
	assert.Len(t, records, 3, "a missing field must not drop the row")
	assert.Equal(t, "", records[1].URL)
	assert.Equal(t, "개발자 B", records[1].Title)
	assert.Equal(t, 3, records[1].Page)
}

func TestPageSkipsStaleRows(t *testing.T) {
	stale := listingRow("사라진 공고", "회사", "/gone")
	stale.textErr = errors.New("element is not attached to the DOM")
	rows := []*fakeElement{
		listingRow("개발자 A", "회사 A", "/a"),
		stale,
		listingRow("개발자 C", "회사 C", "/c"),
	}
	page := listingPage(rows, nil)

	records, skipped := newTestExtractor().Page(context.Background(), page, 1, 0)

	assert.Equal(t, 1, skipped)
	assert.Len(t, records, 2)
	assert.Equal(t, "개발자 A", records[0].Title)
	assert.Equal(t, "개발자 C", records[1].Title)
}

func TestPageRowLimit(t *testing.T) {
	rows := []*fakeElement{
		listingRow("A", "a", "/a"),
		listingRow("B", "b", "/b"),
		listingRow("C", "c", "/c"),
	}
	page := listingPage(rows, nil)

	records, _ := newTestExtractor().Page(context.Background(), page, 1, 2)

	assert.Len(t, records, 2)
	assert.Equal(t, "A", records[0].Title)
	assert.Equal(t, "B", records[1].Title)
}

func TestPageEmptyListing(t *testing.T) {
	page := listingPage(nil, nil)

	records, skipped := newTestExtractor().Page(context.Background(), page, 1, 0)

	assert.Empty(t, records)
	assert.Equal(t, 0, skipped)
}

func TestCleanTextNormalizesAndTrims(t *testing.T) {
	// decomposed hangul must compare equal to its composed form after cleaning
	decomposed := "\u1112\u1161\u11ab"
	assert.Equal(t, "\ud55c", CleanText("  "+decomposed+"  "))
	assert.Equal(t, "", CleanText("   "))
}
