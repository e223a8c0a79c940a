package cbr

import (
	"github.com/calbisu/menumind/internal/models"
	"github.com/calbisu/menumind/internal/similarity"
)

// Diversifier greedily selects a diverse subset from an ordered list of
// validated menus. The first (highest-ranked) menu is always kept.
type Diversifier struct {
	minDistance  float64
	maxProposals int
}

func NewDiversifier(cfg *models.Config) *Diversifier {
	maxProposals := cfg.MaxProposals
	if maxProposals <= 0 {
		maxProposals = 3
	}
	return &Diversifier{
		minDistance:  cfg.MinDiversityDistance,
		maxProposals: maxProposals,
	}
}

// EnsureDiversity keeps a candidate only when its similarity to every
// already selected menu stays below 1 - minDistance, stopping once
// maxProposals are collected.
func (d *Diversifier) EnsureDiversity(menus []models.Menu) []models.Menu {
	if len(menus) == 0 {
		return nil
	}
	selected := []models.Menu{menus[0]}
	limit := 1.0 - d.minDistance
	for _, candidate := range menus[1:] {
		if len(selected) >= d.maxProposals {
			break
		}
		diverse := true
		for _, kept := range selected {
			if similarity.MenuSimilarity(candidate, kept) >= limit {
				diverse = false
				break
			}
		}
		if diverse {
			selected = append(selected, candidate)
		}
	}
	if len(selected) > d.maxProposals {
		selected = selected[:d.maxProposals]
	}
	return selected
}

// DiversityScore is 1 minus the mean pairwise menu similarity, defined as
// 1.0 for zero or one menus.
func DiversityScore(menus []models.Menu) float64 {
	if len(menus) <= 1 {
		return 1.0
	}
	var total float64
	pairs := 0
	for i := 0; i < len(menus); i++ {
		for j := i + 1; j < len(menus); j++ {
			total += similarity.MenuSimilarity(menus[i], menus[j])
			pairs++
		}
	}
	return 1.0 - total/float64(pairs)
}
