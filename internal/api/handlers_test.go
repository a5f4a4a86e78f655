package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-catch-automation/internal/engine"
)

func someRecords(titles ...string) []engine.ListingRecord {
	recs := make([]engine.ListingRecord, len(titles))
	for i, title := range titles {
		recs[i] = engine.ListingRecord{Title: title}
	}
	return recs
}

func TestCollectEnvelope(t *testing.T) {
	env := collectEnvelope(engine.CollectResult{
		Records:      someRecords("a", "b"),
		PagesVisited: 2,
		Reason:       engine.TerminateCap,
	})
	assert.True(t, env.Success)
	assert.Equal(t, 2, env.PagesVisited)
	assert.Equal(t, "cap", env.TerminationReason)
	assert.Empty(t, env.Error)

	// an error with partial records is still a success, error preserved
	env = collectEnvelope(engine.CollectResult{
		Records:      someRecords("a"),
		PagesVisited: 1,
		Reason:       engine.TerminateError,
		Err:          errors.New("session crashed"),
	})
	assert.True(t, env.Success)
	assert.Equal(t, "error", env.TerminationReason)
	assert.Equal(t, "session crashed", env.Error)

	// an error with nothing collected fails
	env = collectEnvelope(engine.CollectResult{
		Records: []engine.ListingRecord{},
		Reason:  engine.TerminateError,
		Err:     errors.New("session crashed"),
	})
	assert.False(t, env.Success)
}

func TestMergeResultsPreservesReasonAndError(t *testing.T) {
	env := mergeResults(
		engine.CollectResult{
			Records:      someRecords("a", "b"),
			PagesVisited: 3,
			Reason:       engine.TerminateNoMoreControls,
		},
		engine.CollectResult{
			Records:      someRecords("c"),
			PagesVisited: 2,
			Reason:       engine.TerminateTimeout,
		},
	)
	assert.True(t, env.Success)
	assert.Equal(t, 5, env.PagesVisited)
	assert.Equal(t, "timeout", env.TerminationReason)
	assert.Empty(t, env.Error)
	assert.Len(t, env.Records.([]engine.ListingRecord), 3)
}

func TestMergeResultsFailedRun(t *testing.T) {
	// the second run fails mid-way: its reason and error must survive,
	// and the records already gathered keep the response a success
	env := mergeResults(
		engine.CollectResult{
			Records:      someRecords("a"),
			PagesVisited: 1,
			Reason:       engine.TerminateNoMoreControls,
		},
		engine.CollectResult{
			Records:      someRecords("b"),
			PagesVisited: 1,
			Reason:       engine.TerminateError,
			Err:          errors.New("activating page 2 control: detached"),
		},
	)
	assert.True(t, env.Success)
	assert.Equal(t, 2, env.PagesVisited)
	assert.Equal(t, "error", env.TerminationReason)
	assert.Equal(t, "activating page 2 control: detached", env.Error)
	assert.Len(t, env.Records.([]engine.ListingRecord), 2)

	// a failed first run with nothing collected fails the whole response
	env = mergeResults(engine.CollectResult{
		Reason: engine.TerminateError,
		Err:    errors.New("listing never loaded"),
	})
	assert.False(t, env.Success)
	assert.Equal(t, "listing never loaded", env.Error)
}

func TestParseCount(t *testing.T) {
	n, err := parseCount("", 10)
	assert.NoError(t, err)
	assert.Equal(t, 10, n, "absent parameter takes the default")

	n, err = parseCount("3", 10)
	assert.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = parseCount("0", 10)
	assert.NoError(t, err)
	assert.Equal(t, 0, n, "explicit zero means unbounded, not the default")

	_, err = parseCount("-1", 10)
	assert.Error(t, err)

	_, err = parseCount("ten", 10)
	assert.Error(t, err)
}
