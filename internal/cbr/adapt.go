package cbr

import (
	"fmt"

	"github.com/calbisu/menumind/internal/knowledge"
	"github.com/calbisu/menumind/internal/models"
	"github.com/lucsky/cuid"
	"github.com/sirupsen/logrus"
)

// Adapter transforms a retrieved case's menu into one satisfying the
// request's hard constraints. It only ever works on a clone; the source
// case is never touched. A nil result means the case cannot be adapted,
// which is a normal outcome rather than an error.
type Adapter struct {
	table *knowledge.SubstitutionTable
	log   *logrus.Entry
}

func NewAdapter(table *knowledge.SubstitutionTable, logger *logrus.Logger) *Adapter {
	return &Adapter{
		table: table,
		log:   logger.WithField("component", "adapter"),
	}
}

// Adapt returns the adapted menu and the notes describing every change, or
// nil when a required diet or restricted ingredient cannot be resolved.
func (a *Adapter) Adapt(c *models.Case, req models.Request) (*models.Menu, []string) {
	menu := c.Menu.Clone()
	menu.ID = cuid.New()
	var notes []string

	dishes := []*models.Dish{&menu.Starter, &menu.Main, &menu.Dessert}
	for _, dish := range dishes {
		dishNotes, ok := a.adaptDish(dish, req)
		if !ok {
			a.log.WithFields(logrus.Fields{
				"case_id": c.ID,
				"dish":    dish.Name,
			}).Debug("case not adaptable")
			return nil, nil
		}
		notes = append(notes, dishNotes...)
	}

	if req.CulturalPreference != "" && req.CulturalPreference != menu.CulturalTheme {
		cultNotes := a.adaptCulture(dishes, req)
		if len(cultNotes) > 0 {
			notes = append(notes, cultNotes...)
			menu.CulturalTheme = req.CulturalPreference
			notes = append(notes, fmt.Sprintf("cultural theme set to %s", req.CulturalPreference))
		}
	}

	if !satisfiesHardConstraints(menu, req) {
		return nil, nil
	}
	return &menu, notes
}

// adaptDish resolves diet and allergen conflicts on one dish by ingredient
// substitution. Every occurrence of a conflicting ingredient is replaced.
func (a *Adapter) adaptDish(dish *models.Dish, req models.Request) ([]string, bool) {
	var notes []string

	for _, restricted := range req.RestrictedIngredients {
		if !dish.HasIngredient(restricted) {
			continue
		}
		sub, ok := a.table.ForExclusion(restricted, req.RestrictedIngredients, req.RequiredDiets)
		if !ok {
			return nil, false
		}
		replaceAll(dish, sub)
		notes = append(notes, noteFor(dish.Name, sub))
	}

	if len(req.RequiredDiets) > 0 {
		for _, ingredient := range uniqueIngredients(dish.Ingredients) {
			if len(a.violatedDiets(ingredient, req.RequiredDiets)) == 0 {
				continue
			}
			sub, ok := a.table.ForDiet(ingredient, req.RequiredDiets)
			if !ok {
				return nil, false
			}
			replaceAll(dish, sub)
			notes = append(notes, noteFor(dish.Name, sub))
		}
		a.relabelDiets(dish, req.RequiredDiets, &notes)
	}
	return notes, true
}

func (a *Adapter) violatedDiets(ingredient string, diets []string) []string {
	var violated []string
	for _, d := range diets {
		if a.table.ViolatesDiet(ingredient, d) {
			violated = append(violated, d)
		}
	}
	return violated
}

// relabelDiets adds a required diet tag once no ingredient violates it
// anymore, so the adapted dish declares what it now satisfies.
func (a *Adapter) relabelDiets(dish *models.Dish, diets []string, notes *[]string) {
	for _, diet := range diets {
		if dish.HasDiet(diet) {
			continue
		}
		compliant := true
		for _, ingredient := range dish.Ingredients {
			if a.table.ViolatesDiet(ingredient, diet) {
				compliant = false
				break
			}
		}
		if compliant {
			dish.Diets = append(dish.Diets, diet)
			*notes = append(*notes, fmt.Sprintf("%s: now labelled %s after substitution", dish.Name, diet))
		}
	}
}

func (a *Adapter) adaptCulture(dishes []*models.Dish, req models.Request) []string {
	var notes []string
	for _, dish := range dishes {
		for _, ingredient := range uniqueIngredients(dish.Ingredients) {
			sub, ok := a.table.ForCulture(ingredient, req.CulturalPreference, req.RestrictedIngredients)
			if !ok {
				continue
			}
			// Cultural swaps must not reintroduce diet conflicts.
			if len(a.violatedDiets(sub.Replacement, req.RequiredDiets)) > 0 {
				continue
			}
			replaceAll(dish, sub)
			notes = append(notes, noteFor(dish.Name, sub))
		}
	}
	return notes
}

func replaceAll(dish *models.Dish, sub knowledge.Substitution) {
	for i, ingredient := range dish.Ingredients {
		if ingredient == sub.Original {
			dish.Ingredients[i] = sub.Replacement
		}
	}
}

func noteFor(dishName string, sub knowledge.Substitution) string {
	return fmt.Sprintf("%s: %s -> %s (%s)", dishName, sub.Original, sub.Replacement, sub.Reason)
}

func uniqueIngredients(ingredients []string) []string {
	seen := make(map[string]bool, len(ingredients))
	var out []string
	for _, ing := range ingredients {
		if !seen[ing] {
			seen[ing] = true
			out = append(out, ing)
		}
	}
	return out
}

func satisfiesHardConstraints(menu models.Menu, req models.Request) bool {
	return !violatesHardConstraints(menu, req)
}
