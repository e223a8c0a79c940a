package cbr_test

import (
	"testing"

	"github.com/calbisu/menumind/internal/cbr"
	"github.com/calbisu/menumind/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviseAcceptsMatchingMenu(t *testing.T) {
	engine, cb := seededEngine(t, nil)

	c, err := cb.GetCaseByID("case-wedding-summer-gourmet")
	require.NoError(t, err)

	result := engine.Reviser().Revise(c.Menu, weddingSummerRequest())

	assert.Equal(t, models.ValidationValid, result.Status)
	assert.True(t, result.IsValid())
	assert.InDelta(t, 100.0, result.Score, 1e-9)
	assert.Empty(t, result.Issues)
}

func TestRevisePriceOutOfRangeBlocks(t *testing.T) {
	engine, cb := seededEngine(t, nil)

	c, err := cb.GetCaseByID("case-wedding-summer-gourmet")
	require.NoError(t, err)

	req := weddingSummerRequest()
	req.PriceMin = 100
	req.PriceMax = 150
	req.WantsWine = false

	// Menu totals 78; even with the 10% band tolerance it stays below the
	// requested floor of 100.
	result := engine.Reviser().Revise(c.Menu, req)

	assert.Equal(t, models.ValidationInvalid, result.Status)
	assert.False(t, result.IsValid())
	assert.InDelta(t, 75.0, result.Score, 1e-9)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "price", result.Issues[0].Category)
	assert.Equal(t, models.SeverityError, result.Issues[0].Severity)
}

func TestReviseCapacityBlocks(t *testing.T) {
	engine, cb := seededEngine(t, nil)

	c, err := cb.GetCaseByID("case-wedding-summer-gourmet")
	require.NoError(t, err)

	req := weddingSummerRequest()
	req.NumGuests = 400

	result := engine.Reviser().Revise(c.Menu, req)

	assert.Equal(t, models.ValidationInvalid, result.Status)
	errors := 0
	for _, issue := range result.Issues {
		if issue.Category == "capacity" {
			errors++
		}
	}
	// Starter and main top out at 300 guests; the fruit platter serves 500.
	assert.Equal(t, 2, errors)
}

func TestReviseSeasonalIssuesAreInformational(t *testing.T) {
	engine, cb := seededEngine(t, nil)

	c, err := cb.GetCaseByID("case-christening-summer")
	require.NoError(t, err)

	req := models.Request{
		EventType: models.EventChristening,
		Season:    models.SeasonWinter,
		NumGuests: 40,
		PriceMin:  40,
		PriceMax:  70,
	}

	// A cold gazpacho starter in winter is flagged but never blocks.
	result := engine.Reviser().Revise(c.Menu, req)
	assert.True(t, result.IsValid())
	for _, issue := range result.Issues {
		assert.Equal(t, models.SeverityInfo, issue.Severity)
	}
	assert.Less(t, result.Score, 100.0)
}

func TestEnsureDiversityKeepsFirstAndDropsNearDuplicates(t *testing.T) {
	cfg := models.DefaultConfig()
	d := cbr.NewDiversifier(cfg)
	_, cb := seededEngine(t, nil)

	c, err := cb.GetCaseByID("case-wedding-summer-gourmet")
	require.NoError(t, err)
	menu := c.Menu

	selected := d.EnsureDiversity([]models.Menu{menu, menu, menu})
	assert.Len(t, selected, 1)
	assert.Equal(t, menu.ID, selected[0].ID)
}

func TestEnsureDiversityKeepsDistinctMenus(t *testing.T) {
	cfg := models.DefaultConfig()
	d := cbr.NewDiversifier(cfg)
	_, cb := seededEngine(t, nil)

	summer, err := cb.GetCaseByID("case-wedding-summer-gourmet")
	require.NoError(t, err)
	winter, err := cb.GetCaseByID("case-wedding-winter-classic")
	require.NoError(t, err)

	selected := d.EnsureDiversity([]models.Menu{summer.Menu, winter.Menu})
	assert.Len(t, selected, 2)
}

func TestEnsureDiversityCapsAtMaxProposals(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.MaxProposals = 2
	cfg.MinDiversityDistance = 0.0
	d := cbr.NewDiversifier(cfg)
	_, cb := seededEngine(t, nil)

	var menus []models.Menu
	for _, c := range cb.Cases() {
		menus = append(menus, c.Menu)
	}
	selected := d.EnsureDiversity(menus)
	assert.LessOrEqual(t, len(selected), 2)
}

func TestEnsureDiversityGuardsMisconfiguredCap(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.MaxProposals = 0
	d := cbr.NewDiversifier(cfg)
	_, cb := seededEngine(t, nil)

	c, err := cb.GetCaseByID("case-wedding-summer-gourmet")
	require.NoError(t, err)

	// The first menu is always kept, even with a zero cap in the config.
	selected := d.EnsureDiversity([]models.Menu{c.Menu})
	require.Len(t, selected, 1)
	assert.Equal(t, c.Menu.ID, selected[0].ID)
}

func TestDiversityScore(t *testing.T) {
	_, cb := seededEngine(t, nil)
	c, err := cb.GetCaseByID("case-wedding-summer-gourmet")
	require.NoError(t, err)

	assert.InDelta(t, 1.0, cbr.DiversityScore(nil), 1e-9)
	assert.InDelta(t, 1.0, cbr.DiversityScore([]models.Menu{c.Menu}), 1e-9)
	assert.InDelta(t, 0.0, cbr.DiversityScore([]models.Menu{c.Menu, c.Menu}), 1e-9)
}
