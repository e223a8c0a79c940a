package cbr_test

import (
	"testing"

	"github.com/calbisu/menumind/internal/casebase"
	"github.com/calbisu/menumind/internal/cbr"
	"github.com/calbisu/menumind/internal/factories"
	"github.com/calbisu/menumind/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogOnlyEngine seeds dishes and beverages but starts with an empty
// case list.
func catalogOnlyEngine(t *testing.T, cfg *models.Config) (*cbr.Engine, *casebase.CaseBase) {
	t.Helper()
	if cfg == nil {
		cfg = models.DefaultConfig()
	}
	cb := casebase.New(quietLogger())
	factories.SeedCaseBase(cb)
	cb.ReplaceCases(nil)
	return cbr.NewEngine(cfg, cb, quietLogger()), cb
}

func menuFrom(t *testing.T, cb *casebase.CaseBase, id, starter, main, dessert, beverage string, style models.CulinaryStyle) models.Menu {
	t.Helper()
	s, err := cb.GetDishByID(starter)
	require.NoError(t, err)
	m, err := cb.GetDishByID(main)
	require.NoError(t, err)
	d, err := cb.GetDishByID(dessert)
	require.NoError(t, err)
	b, err := cb.GetBeverageByID(beverage)
	require.NoError(t, err)
	return models.Menu{ID: id, Starter: s, Main: m, Dessert: d, Beverage: b, DominantStyle: style}
}

func TestRetainDiscardsLowQualityFeedback(t *testing.T) {
	engine, cb := seededEngine(t, nil)
	before := cb.Len()

	c, err := cb.GetCaseByID("case-wedding-summer-gourmet")
	require.NoError(t, err)

	stored, reason := engine.AcceptFeedback(
		models.FeedbackData{MenuID: c.Menu.ID, Score: 2.0},
		c.Request, c.Menu, nil,
	)

	assert.False(t, stored)
	assert.Contains(t, reason, "quality threshold")
	assert.Equal(t, before, cb.Len())
}

func TestRetainUpdatesNearDuplicateWithBetterFeedback(t *testing.T) {
	engine, cb := seededEngine(t, nil)
	before := cb.Len()

	c, err := cb.GetCaseByID("case-wedding-summer-gourmet")
	require.NoError(t, err)
	usageBefore := c.UsageCount

	stored, reason := engine.AcceptFeedback(
		models.FeedbackData{MenuID: c.Menu.ID, Success: true, Score: 4.9, Comments: "outstanding"},
		c.Request, c.Menu, nil,
	)

	assert.True(t, stored)
	assert.Contains(t, reason, "updated existing case")
	assert.Equal(t, before, cb.Len())

	updated, err := cb.GetCaseByID("case-wedding-summer-gourmet")
	require.NoError(t, err)
	assert.InDelta(t, 4.9, updated.FeedbackScore, 1e-9)
	assert.Equal(t, "outstanding", updated.FeedbackComments)
	assert.Equal(t, usageBefore+1, updated.UsageCount)
}

func TestRetainDiscardsWorseDuplicate(t *testing.T) {
	engine, cb := seededEngine(t, nil)
	before := cb.Len()

	c, err := cb.GetCaseByID("case-wedding-summer-gourmet")
	require.NoError(t, err)

	stored, _ := engine.AcceptFeedback(
		models.FeedbackData{MenuID: c.Menu.ID, Success: true, Score: 4.0},
		c.Request, c.Menu, nil,
	)

	assert.False(t, stored)
	assert.Equal(t, before, cb.Len())

	unchanged, err := cb.GetCaseByID("case-wedding-summer-gourmet")
	require.NoError(t, err)
	assert.InDelta(t, 4.7, unchanged.FeedbackScore, 1e-9)
}

func TestRetainAddsFirstCaseToEmptyBase(t *testing.T) {
	engine, cb := catalogOnlyEngine(t, nil)
	require.Zero(t, cb.Len())

	menu := menuFrom(t, cb, "menu-new",
		"gazpacho-andaluz", "verduras-brasa-romesco", "fresh-fruit-platter",
		"lemonade", models.StyleMediterranean)
	req := models.Request{
		EventType: models.EventFamiliar,
		Season:    models.SeasonSummer,
		NumGuests: 20,
		PriceMin:  30,
		PriceMax:  60,
	}

	stored, reason := engine.AcceptFeedback(
		models.FeedbackData{MenuID: menu.ID, Success: true, Score: 4.0},
		req, menu, []string{"served as proposed"},
	)

	assert.True(t, stored)
	assert.Contains(t, reason, "stored new case")
	require.Equal(t, 1, cb.Len())

	c := cb.Cases()[0]
	assert.Equal(t, models.CaseSourceLearned, c.Source)
	assert.Equal(t, 1, c.UsageCount)
	assert.NotNil(t, c.LastUsed)
	assert.Equal(t, []string{"served as proposed"}, c.AdaptationNotes)
}

func TestRetainClampsOutOfRangeFeedbackScore(t *testing.T) {
	engine, cb := catalogOnlyEngine(t, nil)

	menu := menuFrom(t, cb, "menu-clamped",
		"gazpacho-andaluz", "verduras-brasa-romesco", "fresh-fruit-platter",
		"lemonade", models.StyleMediterranean)
	req := models.Request{
		EventType: models.EventFamiliar,
		Season:    models.SeasonSummer,
		NumGuests: 20,
		PriceMin:  30,
		PriceMax:  60,
	}

	stored, _ := engine.AcceptFeedback(
		models.FeedbackData{MenuID: menu.ID, Success: true, Score: 9.0},
		req, menu, nil,
	)
	require.True(t, stored)
	require.Equal(t, 1, cb.Len())
	assert.InDelta(t, 5.0, cb.Cases()[0].FeedbackScore, 1e-9)

	// Negative scores clamp to zero and land below the quality threshold.
	stored, reason := engine.AcceptFeedback(
		models.FeedbackData{MenuID: menu.ID, Score: -3.0},
		req, menu, nil,
	)
	assert.False(t, stored)
	assert.Contains(t, reason, "quality threshold")
}

func TestRetainEvictsLowestUtilityBeyondCeiling(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.MaxCasesPerEvent = 1
	cfg.NoveltyThreshold = 0.99
	engine, cb := catalogOnlyEngine(t, cfg)

	first := menuFrom(t, cb, "menu-first",
		"gazpacho-andaluz", "verduras-brasa-romesco", "fresh-fruit-platter",
		"lemonade", models.StyleMediterranean)
	reqFirst := models.Request{
		EventType: models.EventFamiliar,
		Season:    models.SeasonSummer,
		NumGuests: 20,
		PriceMin:  30,
		PriceMax:  60,
	}
	stored, _ := engine.AcceptFeedback(
		models.FeedbackData{MenuID: first.ID, Success: true, Score: 4.0},
		reqFirst, first, nil,
	)
	require.True(t, stored)

	second := menuFrom(t, cb, "menu-second",
		"foie-terrine-fig", "beef-wellington", "chocolate-fondant",
		"rioja-reserva", models.StyleGourmet)
	reqSecond := models.Request{
		EventType: models.EventFamiliar,
		Season:    models.SeasonWinter,
		NumGuests: 120,
		PriceMin:  90,
		PriceMax:  140,
		WantsWine: true,
	}
	stored, _ = engine.AcceptFeedback(
		models.FeedbackData{MenuID: second.ID, Success: true, Score: 4.8},
		reqSecond, second, nil,
	)
	require.True(t, stored)

	// The ceiling of one case per event keeps only the higher-utility case.
	require.Equal(t, 1, cb.Len())
	assert.InDelta(t, 4.8, cb.Cases()[0].FeedbackScore, 1e-9)
}

func TestEvaluateRetentionReportsNovelty(t *testing.T) {
	engine, cb := seededEngine(t, nil)

	c, err := cb.GetCaseByID("case-wedding-summer-gourmet")
	require.NoError(t, err)

	decision := engine.Retainer().EvaluateRetention(
		c.Request, c.Menu,
		models.FeedbackData{Success: true, Score: 4.9},
	)

	assert.True(t, decision.ShouldRetain)
	assert.Equal(t, models.RetentionUpdateExisting, decision.Action)
	assert.GreaterOrEqual(t, decision.SimilarityToExisting, 0.85)
	require.NotNil(t, decision.MostSimilarCase)
	assert.Equal(t, "case-wedding-summer-gourmet", decision.MostSimilarCase.ID)
}
