package knowledge

import (
	"fmt"

	"github.com/calbisu/menumind/internal/models"
)

// Substitution records one ingredient replacement and why it was made.
type Substitution struct {
	Original    string
	Replacement string
	Reason      string
	Confidence  float64
}

type ingredientInfo struct {
	cultures     []string // lowercase tradition names, may include "universal"
	nonCompliant []string // diet labels this ingredient violates
}

// SubstitutionTable maps ingredients to culinary groups, cultural traditions
// and the diet labels they violate. Substitutions only ever stay within the
// same group so the dish keeps its gastronomic identity; a missing mapping
// is a normal "cannot substitute" outcome.
type SubstitutionTable struct {
	groups          map[string][]string
	ingredients     map[string]ingredientInfo
	ingredientGroup map[string]string
}

func NewSubstitutionTable() *SubstitutionTable {
	t := &SubstitutionTable{
		groups:      defaultGroups,
		ingredients: defaultIngredients,
	}
	t.ingredientGroup = make(map[string]string, len(t.ingredients))
	for name, members := range t.groups {
		for _, ing := range members {
			t.ingredientGroup[ing] = name
		}
	}
	return t
}

// ViolatesDiet reports whether an ingredient breaks a dietary label.
// Unknown ingredients are assumed compliant.
func (t *SubstitutionTable) ViolatesDiet(ingredient, diet string) bool {
	info, ok := t.ingredients[ingredient]
	if !ok {
		return false
	}
	for _, label := range info.nonCompliant {
		if label == diet {
			return true
		}
	}
	return false
}

func (t *SubstitutionTable) violatesAny(ingredient string, diets []string) []string {
	var violated []string
	for _, d := range diets {
		if t.ViolatesDiet(ingredient, d) {
			violated = append(violated, d)
		}
	}
	return violated
}

// ForDiet finds a same-group replacement satisfying every given diet.
// Returns ok=false when the ingredient already complies or no compliant
// group member exists.
func (t *SubstitutionTable) ForDiet(ingredient string, diets []string) (Substitution, bool) {
	violated := t.violatesAny(ingredient, diets)
	if len(violated) == 0 {
		return Substitution{}, false
	}
	group, ok := t.ingredientGroup[ingredient]
	if !ok {
		return Substitution{}, false
	}
	for _, candidate := range t.groups[group] {
		if candidate == ingredient {
			continue
		}
		if len(t.violatesAny(candidate, diets)) == 0 {
			return Substitution{
				Original:    ingredient,
				Replacement: candidate,
				Reason:      fmt.Sprintf("dietary: violates %v, same group (%s)", violated, group),
				Confidence:  0.9,
			}, true
		}
	}
	return Substitution{}, false
}

// ForExclusion finds a same-group replacement for an ingredient the client
// cannot be served at all (allergen), avoiding every excluded ingredient
// and respecting the required diets.
func (t *SubstitutionTable) ForExclusion(ingredient string, excluded []string, diets []string) (Substitution, bool) {
	group, ok := t.ingredientGroup[ingredient]
	if !ok {
		return Substitution{}, false
	}
	isExcluded := func(name string) bool {
		for _, e := range excluded {
			if e == name {
				return true
			}
		}
		return false
	}
	for _, candidate := range t.groups[group] {
		if candidate == ingredient || isExcluded(candidate) {
			continue
		}
		if len(t.violatesAny(candidate, diets)) == 0 {
			return Substitution{
				Original:    ingredient,
				Replacement: candidate,
				Reason:      fmt.Sprintf("restricted ingredient, same group (%s)", group),
				Confidence:  0.9,
			}, true
		}
	}
	return Substitution{}, false
}

func (t *SubstitutionTable) isCultural(ingredient string, culture string) bool {
	info, ok := t.ingredients[ingredient]
	if !ok {
		return false
	}
	for _, c := range info.cultures {
		if c == culture || c == "universal" {
			return true
		}
	}
	return false
}

// ForCulture finds a same-group ingredient fitting the target tradition,
// never proposing an excluded ingredient. Falls back to a universal group
// member; universal originals stay as they are.
func (t *SubstitutionTable) ForCulture(ingredient string, target models.CulturalTradition, excluded []string) (Substitution, bool) {
	culture := string(target)
	if t.isCultural(ingredient, culture) {
		return Substitution{}, false
	}
	group, ok := t.ingredientGroup[ingredient]
	if !ok {
		return Substitution{}, false
	}
	isExcluded := func(name string) bool {
		for _, e := range excluded {
			if e == name {
				return true
			}
		}
		return false
	}
	var universal string
	for _, candidate := range t.groups[group] {
		if candidate == ingredient || isExcluded(candidate) {
			continue
		}
		info := t.ingredients[candidate]
		for _, c := range info.cultures {
			if c == culture {
				return Substitution{
					Original:    ingredient,
					Replacement: candidate,
					Reason:      fmt.Sprintf("cultural: same group (%s), specific to %s cuisine", group, culture),
					Confidence:  0.9,
				}, true
			}
			if c == "universal" && universal == "" {
				universal = candidate
			}
		}
	}
	if universal != "" {
		return Substitution{
			Original:    ingredient,
			Replacement: universal,
			Reason:      fmt.Sprintf("cultural: same group (%s), universal ingredient", group),
			Confidence:  0.7,
		}, true
	}
	return Substitution{}, false
}

var defaultGroups = map[string][]string{
	"proteins":   {"beef", "pork", "lamb", "chicken", "duck", "jamon iberico", "tofu", "seitan", "chickpeas"},
	"seafood":    {"cod", "hake", "monkfish", "salmon", "prawns", "mussels", "octopus", "tuna", "hearts of palm"},
	"dairy":      {"cream", "milk", "butter", "mascarpone", "manchego cheese", "parmesan", "coconut cream", "oat milk", "olive oil"},
	"grains":     {"wheat flour", "breadcrumbs", "pasta", "bomba rice", "arborio rice", "rice flour", "cornmeal", "polenta"},
	"eggs":       {"egg", "aquafaba"},
	"sweeteners": {"sugar", "honey", "agave syrup"},
	"stocks":     {"chicken stock", "fish stock", "vegetable stock"},
	"vegetables": {"tomato", "onion", "garlic", "red pepper", "mushrooms", "artichoke", "asparagus", "spinach", "zucchini", "potato"},
	"fruits":     {"strawberries", "peach", "orange", "lemon", "seasonal fruit", "apple"},
}

var defaultIngredients = map[string]ingredientInfo{
	"beef":          {cultures: []string{"universal"}, nonCompliant: []string{models.DietVegan, models.DietVegetarian}},
	"pork":          {cultures: []string{"spanish"}, nonCompliant: []string{models.DietVegan, models.DietVegetarian, models.DietHalal, models.DietKosher}},
	"lamb":          {cultures: []string{"spanish", "basque"}, nonCompliant: []string{models.DietVegan, models.DietVegetarian}},
	"chicken":       {cultures: []string{"universal"}, nonCompliant: []string{models.DietVegan, models.DietVegetarian}},
	"duck":          {cultures: []string{"french"}, nonCompliant: []string{models.DietVegan, models.DietVegetarian}},
	"jamon iberico": {cultures: []string{"spanish"}, nonCompliant: []string{models.DietVegan, models.DietVegetarian, models.DietHalal, models.DietKosher}},
	"tofu":          {cultures: []string{"universal"}},
	"seitan":        {cultures: []string{"universal"}, nonCompliant: []string{models.DietGlutenFree}},
	"chickpeas":     {cultures: []string{"spanish", "universal"}},

	"cod":            {cultures: []string{"basque", "galician"}, nonCompliant: []string{models.DietVegan, models.DietVegetarian}},
	"hake":           {cultures: []string{"basque", "galician"}, nonCompliant: []string{models.DietVegan, models.DietVegetarian}},
	"monkfish":       {cultures: []string{"galician"}, nonCompliant: []string{models.DietVegan, models.DietVegetarian}},
	"salmon":         {cultures: []string{"universal"}, nonCompliant: []string{models.DietVegan, models.DietVegetarian}},
	"prawns":         {cultures: []string{"spanish", "catalan"}, nonCompliant: []string{models.DietVegan, models.DietVegetarian, models.DietKosher}},
	"mussels":        {cultures: []string{"galician", "catalan"}, nonCompliant: []string{models.DietVegan, models.DietVegetarian, models.DietKosher}},
	"octopus":        {cultures: []string{"galician"}, nonCompliant: []string{models.DietVegan, models.DietVegetarian, models.DietKosher}},
	"tuna":           {cultures: []string{"basque", "universal"}, nonCompliant: []string{models.DietVegan, models.DietVegetarian}},
	"hearts of palm": {cultures: []string{"universal"}},

	"cream":           {cultures: []string{"universal"}, nonCompliant: []string{models.DietVegan, models.DietLactoseFree}},
	"milk":            {cultures: []string{"universal"}, nonCompliant: []string{models.DietVegan, models.DietLactoseFree}},
	"butter":          {cultures: []string{"french", "universal"}, nonCompliant: []string{models.DietVegan, models.DietLactoseFree}},
	"mascarpone":      {cultures: []string{"italian"}, nonCompliant: []string{models.DietVegan, models.DietLactoseFree}},
	"manchego cheese": {cultures: []string{"spanish"}, nonCompliant: []string{models.DietVegan, models.DietLactoseFree}},
	"parmesan":        {cultures: []string{"italian"}, nonCompliant: []string{models.DietVegan, models.DietLactoseFree}},
	"coconut cream":   {cultures: []string{"universal"}},
	"oat milk":        {cultures: []string{"universal"}},
	"olive oil":       {cultures: []string{"spanish", "catalan", "italian", "universal"}},

	"wheat flour":  {cultures: []string{"universal"}, nonCompliant: []string{models.DietGlutenFree}},
	"breadcrumbs":  {cultures: []string{"universal"}, nonCompliant: []string{models.DietGlutenFree}},
	"pasta":        {cultures: []string{"italian"}, nonCompliant: []string{models.DietGlutenFree}},
	"bomba rice":   {cultures: []string{"spanish", "catalan"}},
	"arborio rice": {cultures: []string{"italian"}},
	"rice flour":   {cultures: []string{"universal"}},
	"cornmeal":     {cultures: []string{"universal"}},
	"polenta":      {cultures: []string{"italian"}},

	"egg":      {cultures: []string{"universal"}, nonCompliant: []string{models.DietVegan}},
	"aquafaba": {cultures: []string{"universal"}},

	"sugar":       {cultures: []string{"universal"}},
	"honey":       {cultures: []string{"universal"}, nonCompliant: []string{models.DietVegan}},
	"agave syrup": {cultures: []string{"universal"}},

	"chicken stock":   {cultures: []string{"universal"}, nonCompliant: []string{models.DietVegan, models.DietVegetarian}},
	"fish stock":      {cultures: []string{"galician", "universal"}, nonCompliant: []string{models.DietVegan, models.DietVegetarian}},
	"vegetable stock": {cultures: []string{"universal"}},

	"tomato":     {cultures: []string{"spanish", "italian", "universal"}},
	"onion":      {cultures: []string{"universal"}},
	"garlic":     {cultures: []string{"spanish", "universal"}},
	"red pepper": {cultures: []string{"spanish", "basque"}},
	"mushrooms":  {cultures: []string{"catalan", "french", "universal"}},
	"artichoke":  {cultures: []string{"spanish", "italian"}},
	"asparagus":  {cultures: []string{"spanish", "universal"}},
	"spinach":    {cultures: []string{"universal"}},
	"zucchini":   {cultures: []string{"universal"}},
	"potato":     {cultures: []string{"spanish", "galician", "universal"}},

	"strawberries":   {cultures: []string{"universal"}},
	"peach":          {cultures: []string{"universal"}},
	"orange":         {cultures: []string{"spanish", "universal"}},
	"lemon":          {cultures: []string{"universal"}},
	"seasonal fruit": {cultures: []string{"universal"}},
	"apple":          {cultures: []string{"universal"}},
}
