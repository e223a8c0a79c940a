package cbr

import (
	"fmt"

	"github.com/calbisu/menumind/internal/knowledge"
	"github.com/calbisu/menumind/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	errorPenalty   = 25.0
	warningPenalty = 10.0
	infoPenalty    = 2.0
)

// Reviser validates an adapted menu against the request constraints and
// the domain rules, producing a structured verdict rather than an error.
type Reviser struct {
	priceTolerance float64
	log            *logrus.Entry
}

func NewReviser(cfg *models.Config, logger *logrus.Logger) *Reviser {
	return &Reviser{
		priceTolerance: cfg.PriceTolerance,
		log:            logger.WithField("component", "reviser"),
	}
}

func (r *Reviser) Revise(menu models.Menu, req models.Request) models.ValidationResult {
	var issues []models.ValidationIssue
	var explanations []string

	issues = append(issues, r.checkPrice(menu, req)...)
	issues = append(issues, r.checkCapacity(menu, req)...)
	issues = append(issues, r.checkDiets(menu, req)...)
	issues = append(issues, r.checkRestricted(menu, req)...)
	issues = append(issues, r.checkFlavorMonotony(menu)...)
	issues = append(issues, r.checkSeasonFit(menu, req)...)
	if req.WantsWine {
		issues = append(issues, r.checkWinePairing(menu)...)
	}

	errors, warnings, infos := 0, 0, 0
	for _, issue := range issues {
		switch issue.Severity {
		case models.SeverityError:
			errors++
		case models.SeverityWarning:
			warnings++
		default:
			infos++
		}
	}

	status := models.ValidationValid
	switch {
	case errors > 0:
		status = models.ValidationInvalid
		explanations = append(explanations, fmt.Sprintf("%d blocking issue(s) found", errors))
	case warnings > 0:
		status = models.ValidationWarning
		explanations = append(explanations, fmt.Sprintf("%d warning(s), menu still acceptable", warnings))
	default:
		explanations = append(explanations, "menu satisfies all request constraints")
	}

	score := 100.0 - errorPenalty*float64(errors) - warningPenalty*float64(warnings) - infoPenalty*float64(infos)
	if score < 0 {
		score = 0
	}

	r.log.WithFields(logrus.Fields{
		"menu_id": menu.ID,
		"status":  status,
		"score":   score,
	}).Debug("menu revised")

	return models.ValidationResult{
		Status:       status,
		Score:        score,
		Issues:       issues,
		Explanations: explanations,
	}
}

func (r *Reviser) checkPrice(menu models.Menu, req models.Request) []models.ValidationIssue {
	total := menu.TotalPrice()
	tolerance := (req.PriceMax - req.PriceMin) * r.priceTolerance
	if tolerance < 0 {
		tolerance = 0
	}
	if total < req.PriceMin-tolerance || total > req.PriceMax+tolerance {
		return []models.ValidationIssue{{
			Severity: models.SeverityError,
			Category: "price",
			Message:  fmt.Sprintf("total price %.2f outside requested range [%.2f, %.2f]", total, req.PriceMin, req.PriceMax),
		}}
	}
	return nil
}

func (r *Reviser) checkCapacity(menu models.Menu, req models.Request) []models.ValidationIssue {
	var issues []models.ValidationIssue
	for _, dish := range menu.Dishes() {
		if dish.MaxGuests < req.NumGuests {
			issues = append(issues, models.ValidationIssue{
				Severity: models.SeverityError,
				Category: "capacity",
				Message:  fmt.Sprintf("%s serves at most %d guests, %d requested", dish.Name, dish.MaxGuests, req.NumGuests),
			})
		}
	}
	return issues
}

func (r *Reviser) checkDiets(menu models.Menu, req models.Request) []models.ValidationIssue {
	var issues []models.ValidationIssue
	for _, diet := range req.RequiredDiets {
		if !menu.SatisfiesDiet(diet) {
			issues = append(issues, models.ValidationIssue{
				Severity: models.SeverityError,
				Category: "diet",
				Message:  fmt.Sprintf("menu does not satisfy required diet %q", diet),
			})
		}
	}
	return issues
}

func (r *Reviser) checkRestricted(menu models.Menu, req models.Request) []models.ValidationIssue {
	var issues []models.ValidationIssue
	for _, ingredient := range req.RestrictedIngredients {
		if menu.ContainsIngredient(ingredient) {
			issues = append(issues, models.ValidationIssue{
				Severity: models.SeverityError,
				Category: "allergen",
				Message:  fmt.Sprintf("restricted ingredient %q present in menu", ingredient),
			})
		}
	}
	return issues
}

// checkFlavorMonotony warns when every course shares one identical single
// flavor tag. Not blocking.
func (r *Reviser) checkFlavorMonotony(menu models.Menu) []models.ValidationIssue {
	dishes := menu.Dishes()
	for _, dish := range dishes {
		if len(dish.Flavors) != 1 {
			return nil
		}
	}
	first := dishes[0].Flavors[0]
	for _, dish := range dishes[1:] {
		if dish.Flavors[0] != first {
			return nil
		}
	}
	return []models.ValidationIssue{{
		Severity: models.SeverityWarning,
		Category: "flavor",
		Message:  fmt.Sprintf("all courses share the single flavor %q", first),
	}}
}

func (r *Reviser) checkSeasonFit(menu models.Menu, req models.Request) []models.ValidationIssue {
	var issues []models.ValidationIssue
	if !knowledge.IsCalorieCountAppropriate(menu.TotalCalories(), req.Season) {
		min, max := knowledge.CalorieRange(req.Season)
		issues = append(issues, models.ValidationIssue{
			Severity: models.SeverityInfo,
			Category: "season",
			Message:  fmt.Sprintf("total calories %d outside the %s range [%d, %d]", menu.TotalCalories(), req.Season, min, max),
		})
	}
	if !knowledge.IsStarterTemperatureAppropriate(menu.Starter.Temperature, req.Season) {
		issues = append(issues, models.ValidationIssue{
			Severity: models.SeverityInfo,
			Category: "season",
			Message:  fmt.Sprintf("%s starter unusual for %s", menu.Starter.Temperature, req.Season),
		})
	}
	return issues
}

func (r *Reviser) checkWinePairing(menu models.Menu) []models.ValidationIssue {
	if !menu.Beverage.Alcoholic {
		return nil
	}
	if knowledge.IsWineCompatibleWithFlavors(menu.Beverage.Subtype, menu.Main.Flavors, false) {
		return nil
	}
	return []models.ValidationIssue{{
		Severity: models.SeverityInfo,
		Category: "pairing",
		Message:  fmt.Sprintf("%s does not pair with the main course flavors", menu.Beverage.Name),
	}}
}
