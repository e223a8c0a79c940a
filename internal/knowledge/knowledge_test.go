package knowledge

import (
	"testing"

	"github.com/calbisu/menumind/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAreFlavorsCompatible(t *testing.T) {
	assert.True(t, AreFlavorsCompatible(models.FlavorSalty, models.FlavorUmami))
	assert.True(t, AreFlavorsCompatible(models.FlavorSweet, models.FlavorSweet))
	assert.False(t, AreFlavorsCompatible(models.FlavorSweet, models.FlavorSalty))
}

func TestAreCategoriesCompatible(t *testing.T) {
	assert.False(t, AreCategoriesCompatible(models.CategoryMeat, models.CategoryMeat))
	assert.False(t, AreCategoriesCompatible(models.CategoryRice, models.CategoryPasta))
	assert.False(t, AreCategoriesCompatible(models.CategoryPasta, models.CategoryRice))
	assert.True(t, AreCategoriesCompatible(models.CategorySoup, models.CategoryMeat))
}

func TestWinePairingDessertRule(t *testing.T) {
	sweet := []models.Flavor{models.FlavorSweet}

	assert.True(t, IsWineCompatibleWithFlavors("sweet", sweet, true))
	assert.True(t, IsWineCompatibleWithFlavors("sparkling", sweet, true))
	// Dry wines never accompany dessert, regardless of flavor overlap.
	assert.False(t, IsWineCompatibleWithFlavors("dry", sweet, true))
}

func TestWinePairingMainCourse(t *testing.T) {
	rich := []models.Flavor{models.FlavorRich, models.FlavorUmami}
	assert.True(t, IsWineCompatibleWithFlavors("full-bodied", rich, false))
	assert.False(t, IsWineCompatibleWithFlavors("young", rich, false))
}

func TestWinePriorityOrdering(t *testing.T) {
	assert.Greater(t, WinePriority("full-bodied", false), WinePriority("young", false))
	assert.Greater(t, WinePriority("sweet", true), WinePriority("sparkling", true))
	assert.Equal(t, 5, WinePriority("unknown", false))
}

func TestIsComplexityAppropriate(t *testing.T) {
	// A tight wedding budget rules out elaborate dishes.
	assert.False(t, IsComplexityAppropriate(models.ComplexityHigh, models.EventWedding, 40))
	assert.True(t, IsComplexityAppropriate(models.ComplexityHigh, models.EventWedding, 80))
	assert.False(t, IsComplexityAppropriate(models.ComplexityHigh, models.EventChristening, 80))
	assert.True(t, IsComplexityAppropriate(models.ComplexityLow, models.EventFamiliar, 30))
}

func TestCalorieRanges(t *testing.T) {
	min, max := CalorieRange(models.SeasonSummer)
	assert.Equal(t, 550, min)
	assert.Equal(t, 950, max)

	assert.True(t, IsCalorieCountAppropriate(900, models.SeasonSummer))
	assert.False(t, IsCalorieCountAppropriate(1400, models.SeasonSummer))
	assert.True(t, IsCalorieCountAppropriate(1400, models.SeasonWinter))
}

func TestStarterTemperaturePerSeason(t *testing.T) {
	assert.False(t, IsStarterTemperatureAppropriate(models.TempHot, models.SeasonSummer))
	assert.True(t, IsStarterTemperatureAppropriate(models.TempCold, models.SeasonSummer))
	assert.False(t, IsStarterTemperatureAppropriate(models.TempCold, models.SeasonWinter))
}

func TestIsStyleAppropriateForEvent(t *testing.T) {
	assert.True(t, IsStyleAppropriateForEvent(models.StyleGourmet, models.EventWedding))
	assert.False(t, IsStyleAppropriateForEvent(models.StyleFusion, models.EventCommunion))
}
