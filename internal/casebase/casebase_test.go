package casebase_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/calbisu/menumind/internal/casebase"
	"github.com/calbisu/menumind/internal/factories"
	"github.com/calbisu/menumind/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededBase(t *testing.T) *casebase.CaseBase {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	cb := casebase.New(logger)
	factories.SeedCaseBase(cb)
	return cb
}

func TestSeedPopulatesCatalogAndCases(t *testing.T) {
	cb := seededBase(t)

	assert.Len(t, cb.Dishes(), 18)
	assert.Len(t, cb.Beverages(), 8)
	assert.Equal(t, 10, cb.Len())
}

func TestGetDishByIDUnknownWrapsSentinel(t *testing.T) {
	cb := seededBase(t)

	_, err := cb.GetDishByID("no-such-dish")
	require.Error(t, err)
	assert.True(t, errors.Is(err, casebase.ErrDishNotFound))

	_, err = cb.GetBeverageByID("no-such-beverage")
	assert.True(t, errors.Is(err, casebase.ErrBeverageNotFound))

	_, err = cb.GetCaseByID("no-such-case")
	assert.True(t, errors.Is(err, casebase.ErrCaseNotFound))
}

func TestEventIndex(t *testing.T) {
	cb := seededBase(t)

	weddings := cb.GetCasesByEvent(models.EventWedding)
	assert.Len(t, weddings, 3)
	for _, c := range weddings {
		assert.Equal(t, models.EventWedding, c.Request.EventType)
	}
	assert.Empty(t, cb.GetCasesByEvent(models.EventType("gala")))
}

func TestSeasonLookupUnionsAllSeasonCases(t *testing.T) {
	cb := seededBase(t)

	summer := cb.GetCasesBySeason(models.SeasonSummer)
	require.Len(t, summer, 5)

	// Season-specific cases come first, ALL-season cases are appended.
	assert.Equal(t, models.SeasonSummer, summer[0].Request.Season)
	assert.Equal(t, models.SeasonAll, summer[3].Request.Season)
	assert.Equal(t, models.SeasonAll, summer[4].Request.Season)

	seen := make(map[string]bool)
	for _, c := range summer {
		assert.False(t, seen[c.ID], "duplicate case %s", c.ID)
		seen[c.ID] = true
	}
}

func TestSeasonLookupAllDoesNotDuplicate(t *testing.T) {
	cb := seededBase(t)
	all := cb.GetCasesBySeason(models.SeasonAll)
	assert.Len(t, all, 2)
}

func TestPriceBracketBoundaries(t *testing.T) {
	assert.Equal(t, models.PriceBracketLow, casebase.PriceBracket(29.99))
	assert.Equal(t, models.PriceBracketMedium, casebase.PriceBracket(30))
	assert.Equal(t, models.PriceBracketHigh, casebase.PriceBracket(60))
	assert.Equal(t, models.PriceBracketHigh, casebase.PriceBracket(99.99))
	assert.Equal(t, models.PriceBracketPremium, casebase.PriceBracket(100))
}

func TestPriceRangeIndexUsesMenuTotal(t *testing.T) {
	cb := seededBase(t)

	high := cb.GetCasesByPriceRange(78)
	ids := make([]string, 0, len(high))
	for _, c := range high {
		ids = append(ids, c.ID)
		total := c.Menu.TotalPrice()
		assert.GreaterOrEqual(t, total, 60.0)
		assert.Less(t, total, 100.0)
	}
	assert.Contains(t, ids, "case-wedding-summer-gourmet")
}

func TestStyleIndex(t *testing.T) {
	cb := seededBase(t)
	gourmet := cb.GetCasesByStyle(models.StyleGourmet)
	assert.Len(t, gourmet, 3)
}

func TestReplaceCasesRebuildsIndexes(t *testing.T) {
	cb := seededBase(t)

	keep, err := cb.GetCaseByID("case-wedding-summer-gourmet")
	require.NoError(t, err)

	cb.ReplaceCases([]*models.Case{keep})

	assert.Equal(t, 1, cb.Len())
	assert.Len(t, cb.GetCasesByEvent(models.EventWedding), 1)
	assert.Empty(t, cb.GetCasesByEvent(models.EventCorporate))
	assert.Empty(t, cb.GetCasesBySeason(models.SeasonWinter))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cb := seededBase(t)
	path := filepath.Join(t.TempDir(), "cases.json")

	require.NoError(t, cb.Save(path))

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	restored := casebase.New(logger)
	require.NoError(t, restored.Load(path))

	assert.Equal(t, cb.Len(), restored.Len())

	original, err := cb.GetCaseByID("case-wedding-summer-gourmet")
	require.NoError(t, err)
	loaded, err := restored.GetCaseByID("case-wedding-summer-gourmet")
	require.NoError(t, err)

	assert.Equal(t, original.Request, loaded.Request)
	assert.InDelta(t, original.Menu.TotalPrice(), loaded.Menu.TotalPrice(), 1e-9)
	assert.Equal(t, original.FeedbackScore, loaded.FeedbackScore)

	// Indexes are rebuilt on load.
	assert.Len(t, restored.GetCasesByEvent(models.EventWedding), 3)
}

func TestLoadMissingFile(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	cb := casebase.New(logger)
	err := cb.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
