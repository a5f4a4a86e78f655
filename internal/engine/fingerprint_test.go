package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintView(t *testing.T) {
	x := newTestExtractor()

	populated := listingPage([]*fakeElement{
		listingRow("백엔드 개발자", "네이버", "/a"),
		listingRow("데이터 엔지니어", "카카오", "/b"),
	}, nil)
	fp := x.FingerprintView(context.Background(), populated)
	assert.Equal(t, "백엔드 개발자", fp.FirstTitle)
	assert.True(t, fp.HasRecords)

	empty := listingPage(nil, nil)
	fp = x.FingerprintView(context.Background(), empty)
	assert.Equal(t, "", fp.FirstTitle)
	assert.False(t, fp.HasRecords)
}

func TestFingerprintScansRowsForOrganization(t *testing.T) {
	x := newTestExtractor()

	// first row is a placeholder with a blank organization; a later row
	// carrying one still counts as records
	partial := listingPage([]*fakeElement{
		listingRow("", "", ""),
		listingRow("데이터 엔지니어", "카카오", "/b"),
	}, nil)
	fp := x.FingerprintView(context.Background(), partial)
	assert.True(t, fp.HasRecords)

	// all rows blank: a skeleton table mid-render is not content
	skeleton := listingPage([]*fakeElement{
		listingRow("", "", ""),
		listingRow("", "", ""),
	}, nil)
	fp = x.FingerprintView(context.Background(), skeleton)
	assert.False(t, fp.HasRecords)
}

func TestFingerprintChanged(t *testing.T) {
	before := Fingerprint{FirstTitle: "공고 A", HasRecords: true}

	assert.True(t, before.changed(Fingerprint{FirstTitle: "공고 B", HasRecords: true}),
		"a different first title is a change")
	assert.False(t, before.changed(Fingerprint{FirstTitle: "공고 A", HasRecords: true}),
		"identical content is not a change")
	assert.False(t, before.changed(Fingerprint{FirstTitle: "", HasRecords: false}),
		"a blank re-render in progress is not yet a change")

	// records appearing on a previously empty view count as a change even
	// with an identical (empty) title
	emptyBefore := Fingerprint{}
	assert.True(t, emptyBefore.changed(Fingerprint{HasRecords: true}))
}
