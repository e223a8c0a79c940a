package factories

import (
	"fmt"
	"time"

	"github.com/calbisu/menumind/internal/casebase"
	"github.com/calbisu/menumind/internal/models"
)

// SeedCaseBase loads the curated catering catalog and the initial cases.
func SeedCaseBase(cb *casebase.CaseBase) {
	for _, d := range SeedDishes() {
		cb.AddDish(d)
	}
	for _, b := range SeedBeverages() {
		cb.AddBeverage(b)
	}
	for _, c := range SeedCases(cb) {
		cb.AddCase(c)
	}
}

// SeedDishes is the curated dish catalog: Spanish and international
// catering repertoire across the three courses.
func SeedDishes() []models.Dish {
	return []models.Dish{
		// Starters
		{
			ID: "gazpacho-andaluz", Name: "Gazpacho Andaluz",
			Course: models.CourseStarter, Price: 15.0, Category: models.CategorySoup,
			Styles:  []models.CulinaryStyle{models.StyleTraditional, models.StyleMediterranean},
			Seasons: []models.Season{models.SeasonSummer},
			Temperature: models.TempCold, Complexity: models.ComplexityLow,
			Calories: 95, MaxGuests: 400,
			Flavors:     []models.Flavor{models.FlavorFresh, models.FlavorSour},
			Diets:       []string{models.DietVegan, models.DietVegetarian, models.DietGlutenFree, models.DietLactoseFree},
			Ingredients: []string{"tomato", "red pepper", "garlic", "olive oil", "onion"},
			BeverageIDs: []string{"albarino-rias-baixas", "lemonade"},
			CulturalTags: []models.CulturalTradition{models.TraditionSpanish},
		},
		{
			ID: "seafood-salad-citrus", Name: "Seafood Salad with Citrus Dressing",
			Course: models.CourseStarter, Price: 24.0, Category: models.CategorySeafood,
			Styles:  []models.CulinaryStyle{models.StyleGourmet, models.StyleModern},
			Seasons: []models.Season{models.SeasonSummer, models.SeasonSpring},
			Temperature: models.TempCold, Complexity: models.ComplexityMedium,
			Calories: 150, MaxGuests: 300,
			Flavors:     []models.Flavor{models.FlavorFresh, models.FlavorCitrus, models.FlavorSalty},
			Diets:       []string{models.DietGlutenFree, models.DietLactoseFree},
			Ingredients: []string{"prawns", "mussels", "lemon", "olive oil", "onion"},
			BeverageIDs: []string{"albarino-rias-baixas", "cava-brut-nature"},
			CulturalTags: []models.CulturalTradition{models.TraditionGalician, models.TraditionCatalan},
		},
		{
			ID: "crema-calabaza", Name: "Roasted Pumpkin Cream",
			Course: models.CourseStarter, Price: 12.0, Category: models.CategorySoup,
			Styles:  []models.CulinaryStyle{models.StyleTraditional, models.StyleRustic},
			Seasons: []models.Season{models.SeasonAutumn, models.SeasonWinter},
			Temperature: models.TempHot, Complexity: models.ComplexityLow,
			Calories: 180, MaxGuests: 400,
			Flavors:     []models.Flavor{models.FlavorCreamy, models.FlavorSweet},
			Diets:       []string{models.DietVegetarian, models.DietGlutenFree},
			Ingredients: []string{"zucchini", "onion", "cream", "vegetable stock"},
			BeverageIDs: []string{"verdejo-rueda", "sparkling-water"},
			CulturalTags: []models.CulturalTradition{models.TraditionSpanish},
		},
		{
			ID: "ensalada-templada-setas", Name: "Warm Mushroom and Asparagus Salad",
			Course: models.CourseStarter, Price: 16.0, Category: models.CategorySalad,
			Styles:  []models.CulinaryStyle{models.StyleModern, models.StyleMediterranean},
			Seasons: []models.Season{models.SeasonSpring, models.SeasonAutumn},
			Temperature: models.TempWarm, Complexity: models.ComplexityMedium,
			Calories: 140, MaxGuests: 350,
			Flavors:     []models.Flavor{models.FlavorEarthy, models.FlavorHerbal},
			Diets:       []string{models.DietVegan, models.DietVegetarian, models.DietGlutenFree, models.DietLactoseFree},
			Ingredients: []string{"mushrooms", "asparagus", "olive oil", "garlic"},
			BeverageIDs: []string{"verdejo-rueda"},
			CulturalTags: []models.CulturalTradition{models.TraditionCatalan},
		},
		{
			ID: "foie-terrine-fig", Name: "Foie Terrine with Fig Compote",
			Course: models.CourseStarter, Price: 45.0, Category: models.CategoryMeat,
			Styles:  []models.CulinaryStyle{models.StyleGourmet},
			Seasons: []models.Season{models.SeasonAutumn, models.SeasonWinter},
			Temperature: models.TempCold, Complexity: models.ComplexityHigh,
			Calories: 320, MaxGuests: 200,
			Flavors:     []models.Flavor{models.FlavorRich, models.FlavorSweet, models.FlavorUmami},
			Diets:       []string{models.DietGlutenFree},
			Ingredients: []string{"duck", "apple", "butter"},
			BeverageIDs: []string{"pedro-ximenez", "cava-brut-nature"},
			CulturalTags: []models.CulturalTradition{models.TraditionFrench},
		},
		{
			ID: "sopa-pescado-donostia", Name: "Basque Fish Soup",
			Course: models.CourseStarter, Price: 18.0, Category: models.CategorySoup,
			Styles:  []models.CulinaryStyle{models.StyleTraditional, models.StyleRustic},
			Seasons: []models.Season{models.SeasonWinter, models.SeasonAutumn},
			Temperature: models.TempHot, Complexity: models.ComplexityMedium,
			Calories: 210, MaxGuests: 300,
			Flavors:     []models.Flavor{models.FlavorSalty, models.FlavorUmami},
			Diets:       []string{models.DietGlutenFree, models.DietLactoseFree},
			Ingredients: []string{"hake", "fish stock", "tomato", "garlic", "onion"},
			BeverageIDs: []string{"albarino-rias-baixas"},
			CulturalTags: []models.CulturalTradition{models.TraditionBasque},
		},

		// Mains
		{
			ID: "grilled-sea-bass", Name: "Grilled Sea Bass with Herbs",
			Course: models.CourseMain, Price: 32.0, Category: models.CategoryFish,
			Styles:  []models.CulinaryStyle{models.StyleGourmet, models.StyleMediterranean},
			Seasons: []models.Season{models.SeasonAll},
			Temperature: models.TempHot, Complexity: models.ComplexityMedium,
			Calories: 280, MaxGuests: 300,
			Flavors:     []models.Flavor{models.FlavorSalty, models.FlavorHerbal, models.FlavorLight},
			Diets:       []string{models.DietGlutenFree, models.DietLactoseFree},
			Ingredients: []string{"hake", "lemon", "olive oil", "garlic"},
			BeverageIDs: []string{"albarino-rias-baixas", "verdejo-rueda"},
			CulturalTags: []models.CulturalTradition{models.TraditionSpanish},
		},
		{
			ID: "beef-wellington", Name: "Beef Wellington",
			Course: models.CourseMain, Price: 55.0, Category: models.CategoryMeat,
			Styles:  []models.CulinaryStyle{models.StyleGourmet},
			Seasons: []models.Season{models.SeasonAutumn, models.SeasonWinter},
			Temperature: models.TempHot, Complexity: models.ComplexityHigh,
			Calories: 580, MaxGuests: 150,
			Flavors:     []models.Flavor{models.FlavorUmami, models.FlavorRich, models.FlavorSalty},
			Diets:       []string{},
			Ingredients: []string{"beef", "mushrooms", "wheat flour", "butter", "egg"},
			BeverageIDs: []string{"rioja-reserva"},
			CulturalTags: []models.CulturalTradition{models.TraditionFrench},
		},
		{
			ID: "risotto-funghi", Name: "Risotto ai Funghi Porcini",
			Course: models.CourseMain, Price: 26.0, Category: models.CategoryRice,
			Styles:  []models.CulinaryStyle{models.StyleTraditional, models.StyleInternational},
			Seasons: []models.Season{models.SeasonAutumn, models.SeasonWinter},
			Temperature: models.TempHot, Complexity: models.ComplexityMedium,
			Calories: 380, MaxGuests: 300,
			Flavors:     []models.Flavor{models.FlavorUmami, models.FlavorCreamy, models.FlavorEarthy},
			Diets:       []string{models.DietVegetarian, models.DietGlutenFree},
			Ingredients: []string{"arborio rice", "mushrooms", "parmesan", "butter", "onion", "vegetable stock"},
			BeverageIDs: []string{"verdejo-rueda", "rioja-reserva"},
			CulturalTags: []models.CulturalTradition{models.TraditionItalian},
		},
		{
			ID: "bacalao-pil-pil", Name: "Bacalao al Pil-Pil",
			Course: models.CourseMain, Price: 38.0, Category: models.CategoryFish,
			Styles:  []models.CulinaryStyle{models.StyleTraditional, models.StyleGourmet},
			Seasons: []models.Season{models.SeasonAll},
			Temperature: models.TempHot, Complexity: models.ComplexityHigh,
			Calories: 320, MaxGuests: 200,
			Flavors:     []models.Flavor{models.FlavorSalty, models.FlavorUmami, models.FlavorRich},
			Diets:       []string{models.DietGlutenFree, models.DietLactoseFree},
			Ingredients: []string{"cod", "olive oil", "garlic"},
			BeverageIDs: []string{"albarino-rias-baixas"},
			CulturalTags: []models.CulturalTradition{models.TraditionBasque},
		},
		{
			ID: "cordero-asado", Name: "Roast Lamb with Rosemary",
			Course: models.CourseMain, Price: 42.0, Category: models.CategoryMeat,
			Styles:  []models.CulinaryStyle{models.StyleTraditional, models.StyleRustic},
			Seasons: []models.Season{models.SeasonSpring, models.SeasonWinter},
			Temperature: models.TempHot, Complexity: models.ComplexityMedium,
			Calories: 450, MaxGuests: 250,
			Flavors:     []models.Flavor{models.FlavorUmami, models.FlavorRich, models.FlavorHerbal},
			Diets:       []string{models.DietGlutenFree, models.DietLactoseFree},
			Ingredients: []string{"lamb", "garlic", "potato", "olive oil"},
			BeverageIDs: []string{"rioja-reserva"},
			CulturalTags: []models.CulturalTradition{models.TraditionSpanish},
		},
		{
			ID: "verduras-brasa-romesco", Name: "Grilled Vegetables with Romesco",
			Course: models.CourseMain, Price: 22.0, Category: models.CategoryVegetable,
			Styles:  []models.CulinaryStyle{models.StyleMediterranean, models.StyleModern},
			Seasons: []models.Season{models.SeasonAll},
			Temperature: models.TempHot, Complexity: models.ComplexityLow,
			Calories: 260, MaxGuests: 400,
			Flavors:     []models.Flavor{models.FlavorSmoky, models.FlavorEarthy, models.FlavorHerbal},
			Diets:       []string{models.DietVegan, models.DietVegetarian, models.DietGlutenFree, models.DietLactoseFree},
			Ingredients: []string{"artichoke", "zucchini", "red pepper", "olive oil", "garlic"},
			BeverageIDs: []string{"verdejo-rueda", "lemonade"},
			CulturalTags: []models.CulturalTradition{models.TraditionCatalan},
		},
		{
			ID: "paella-valenciana", Name: "Paella Valenciana",
			Course: models.CourseMain, Price: 28.0, Category: models.CategoryRice,
			Styles:  []models.CulinaryStyle{models.StyleTraditional, models.StyleMediterranean},
			Seasons: []models.Season{models.SeasonSummer, models.SeasonSpring},
			Temperature: models.TempHot, Complexity: models.ComplexityMedium,
			Calories: 420, MaxGuests: 500,
			Flavors:     []models.Flavor{models.FlavorUmami, models.FlavorSalty},
			Diets:       []string{models.DietGlutenFree, models.DietLactoseFree},
			Ingredients: []string{"bomba rice", "chicken", "prawns", "red pepper", "olive oil"},
			BeverageIDs: []string{"albarino-rias-baixas", "rioja-reserva"},
			CulturalTags: []models.CulturalTradition{models.TraditionSpanish},
		},

		// Desserts
		{
			ID: "tiramisu-classic", Name: "Tiramisu Classico",
			Course: models.CourseDessert, Price: 18.0, Category: models.CategoryCream,
			Styles:  []models.CulinaryStyle{models.StyleTraditional, models.StyleInternational},
			Seasons: []models.Season{models.SeasonAll},
			Temperature: models.TempCold, Complexity: models.ComplexityMedium,
			Calories: 350, MaxGuests: 300,
			Flavors:     []models.Flavor{models.FlavorSweet, models.FlavorCreamy, models.FlavorBitter},
			Diets:       []string{models.DietVegetarian},
			Ingredients: []string{"mascarpone", "egg", "sugar", "wheat flour"},
			BeverageIDs: []string{"pedro-ximenez"},
			CulturalTags: []models.CulturalTradition{models.TraditionItalian},
		},
		{
			ID: "crema-catalana", Name: "Crema Catalana",
			Course: models.CourseDessert, Price: 14.0, Category: models.CategoryCream,
			Styles:  []models.CulinaryStyle{models.StyleTraditional},
			Seasons: []models.Season{models.SeasonAll},
			Temperature: models.TempCold, Complexity: models.ComplexityLow,
			Calories: 280, MaxGuests: 400,
			Flavors:     []models.Flavor{models.FlavorSweet, models.FlavorCreamy, models.FlavorCitrus},
			Diets:       []string{models.DietVegetarian, models.DietGlutenFree},
			Ingredients: []string{"milk", "egg", "sugar", "lemon"},
			BeverageIDs: []string{"pedro-ximenez", "cava-brut-nature"},
			CulturalTags: []models.CulturalTradition{models.TraditionCatalan},
		},
		{
			ID: "tarta-santiago", Name: "Tarta de Santiago",
			Course: models.CourseDessert, Price: 16.0, Category: models.CategoryCake,
			Styles:  []models.CulinaryStyle{models.StyleTraditional, models.StyleRustic},
			Seasons: []models.Season{models.SeasonAll},
			Temperature: models.TempWarm, Complexity: models.ComplexityLow,
			Calories: 390, MaxGuests: 350,
			Flavors:     []models.Flavor{models.FlavorSweet, models.FlavorRich},
			Diets:       []string{models.DietVegetarian, models.DietGlutenFree, models.DietLactoseFree},
			Ingredients: []string{"egg", "sugar", "lemon"},
			BeverageIDs: []string{"pedro-ximenez"},
			CulturalTags: []models.CulturalTradition{models.TraditionGalician},
		},
		{
			ID: "chocolate-fondant", Name: "Chocolate Fondant",
			Course: models.CourseDessert, Price: 22.0, Category: models.CategoryChocolate,
			Styles:  []models.CulinaryStyle{models.StyleGourmet, models.StyleModern},
			Seasons: []models.Season{models.SeasonAutumn, models.SeasonWinter},
			Temperature: models.TempHot, Complexity: models.ComplexityHigh,
			Calories: 450, MaxGuests: 200,
			Flavors:     []models.Flavor{models.FlavorSweet, models.FlavorRich, models.FlavorBitter},
			Diets:       []string{models.DietVegetarian},
			Ingredients: []string{"egg", "butter", "sugar", "wheat flour"},
			BeverageIDs: []string{"pedro-ximenez", "cava-brut-nature"},
			CulturalTags: []models.CulturalTradition{models.TraditionFrench},
		},
		{
			ID: "fresh-fruit-platter", Name: "Seasonal Fruit Platter",
			Course: models.CourseDessert, Price: 12.0, Category: models.CategoryFruit,
			Styles:  []models.CulinaryStyle{models.StyleMediterranean, models.StyleModern},
			Seasons: []models.Season{models.SeasonAll},
			Temperature: models.TempCold, Complexity: models.ComplexityLow,
			Calories: 120, MaxGuests: 500,
			Flavors:     []models.Flavor{models.FlavorFresh, models.FlavorFruity, models.FlavorLight},
			Diets:       []string{models.DietVegan, models.DietVegetarian, models.DietGlutenFree, models.DietLactoseFree},
			Ingredients: []string{"seasonal fruit", "orange", "strawberries"},
			BeverageIDs: []string{"cava-brut-nature", "lemonade"},
			CulturalTags: []models.CulturalTradition{models.TraditionInternational},
		},
	}
}

// SeedBeverages covers wines for every pairing plus non-alcoholic options.
func SeedBeverages() []models.Beverage {
	return []models.Beverage{
		{ID: "albarino-rias-baixas", Name: "Albarino Rias Baixas", Alcoholic: true, Price: 9.0,
			Style: models.BeverageWine, Subtype: "dry",
			Flavors: []models.Flavor{models.FlavorFresh, models.FlavorCitrus, models.FlavorSalty}},
		{ID: "verdejo-rueda", Name: "Verdejo de Rueda", Alcoholic: true, Price: 7.0,
			Style: models.BeverageWine, Subtype: "young",
			Flavors: []models.Flavor{models.FlavorFresh, models.FlavorHerbal, models.FlavorLight}},
		{ID: "rioja-reserva", Name: "Rioja Reserva", Alcoholic: true, Price: 12.0,
			Style: models.BeverageWine, Subtype: "full-bodied",
			Flavors: []models.Flavor{models.FlavorRich, models.FlavorUmami, models.FlavorEarthy}},
		{ID: "cava-brut-nature", Name: "Cava Brut Nature", Alcoholic: true, Price: 10.0,
			Style: models.BeverageCava, Subtype: "sparkling",
			Flavors: []models.Flavor{models.FlavorFresh, models.FlavorCitrus, models.FlavorCreamy}},
		{ID: "pedro-ximenez", Name: "Pedro Ximenez", Alcoholic: true, Price: 8.0,
			Style: models.BeverageFortified, Subtype: "sweet",
			Flavors: []models.Flavor{models.FlavorSweet, models.FlavorRich, models.FlavorFruity}},
		{ID: "sparkling-water", Name: "Sparkling Water", Alcoholic: false, Price: 2.0,
			Style: models.BeverageWater, Subtype: "sparkling",
			Flavors: []models.Flavor{models.FlavorFresh, models.FlavorLight}},
		{ID: "lemonade", Name: "Homemade Lemonade", Alcoholic: false, Price: 3.5,
			Style: models.BeverageJuice, Subtype: "fruity",
			Flavors: []models.Flavor{models.FlavorCitrus, models.FlavorFresh, models.FlavorSweet}},
		{ID: "grape-juice", Name: "White Grape Juice", Alcoholic: false, Price: 4.0,
			Style: models.BeverageJuice, Subtype: "sweet",
			Flavors: []models.Flavor{models.FlavorSweet, models.FlavorFruity}},
	}
}

type seedCaseSpec struct {
	id       string
	event    models.EventType
	season   models.Season
	guests   int
	priceMin float64
	priceMax float64
	wine     bool
	style    models.CulinaryStyle
	theme    models.CulturalTradition
	starter  string
	main     string
	dessert  string
	beverage string
	score    float64
}

// SeedCases builds the initial precedents from the curated catalog.
func SeedCases(cb *casebase.CaseBase) []*models.Case {
	specs := []seedCaseSpec{
		{id: "case-wedding-summer-gourmet", event: models.EventWedding, season: models.SeasonSummer,
			guests: 120, priceMin: 60, priceMax: 110, wine: true, style: models.StyleGourmet,
			starter: "seafood-salad-citrus", main: "grilled-sea-bass", dessert: "fresh-fruit-platter",
			beverage: "cava-brut-nature", score: 4.7},
		{id: "case-wedding-winter-classic", event: models.EventWedding, season: models.SeasonWinter,
			guests: 150, priceMin: 90, priceMax: 150, wine: true, style: models.StyleGourmet,
			starter: "foie-terrine-fig", main: "beef-wellington", dessert: "chocolate-fondant",
			beverage: "rioja-reserva", score: 4.5},
		{id: "case-communion-spring", event: models.EventCommunion, season: models.SeasonSpring,
			guests: 60, priceMin: 45, priceMax: 80, wine: true, style: models.StyleTraditional,
			starter: "ensalada-templada-setas", main: "cordero-asado", dessert: "crema-catalana",
			beverage: "rioja-reserva", score: 4.2},
		{id: "case-christening-summer", event: models.EventChristening, season: models.SeasonSummer,
			guests: 40, priceMin: 40, priceMax: 70, wine: false, style: models.StyleTraditional,
			starter: "gazpacho-andaluz", main: "paella-valenciana", dessert: "fresh-fruit-platter",
			beverage: "lemonade", score: 4.4},
		{id: "case-familiar-summer", event: models.EventFamiliar, season: models.SeasonSummer,
			guests: 25, priceMin: 35, priceMax: 65, wine: true, style: models.StyleMediterranean,
			starter: "gazpacho-andaluz", main: "grilled-sea-bass", dessert: "crema-catalana",
			beverage: "albarino-rias-baixas", score: 4.0},
		{id: "case-familiar-autumn", event: models.EventFamiliar, season: models.SeasonAutumn,
			guests: 30, priceMin: 40, priceMax: 70, wine: true, style: models.StyleRustic,
			starter: "crema-calabaza", main: "cordero-asado", dessert: "tarta-santiago",
			beverage: "rioja-reserva", score: 4.1},
		{id: "case-corporate-all", event: models.EventCorporate, season: models.SeasonAll,
			guests: 200, priceMin: 50, priceMax: 90, wine: true, style: models.StyleModern,
			starter: "ensalada-templada-setas", main: "bacalao-pil-pil", dessert: "tiramisu-classic",
			beverage: "verdejo-rueda", score: 4.3},
		{id: "case-congress-all", event: models.EventCongress, season: models.SeasonAll,
			guests: 300, priceMin: 40, priceMax: 75, wine: false, style: models.StyleInternational,
			starter: "crema-calabaza", main: "verduras-brasa-romesco", dessert: "fresh-fruit-platter",
			beverage: "sparkling-water", score: 3.9},
		{id: "case-wedding-autumn-basque", event: models.EventWedding, season: models.SeasonAutumn,
			guests: 100, priceMin: 70, priceMax: 120, wine: true, style: models.StyleGourmet,
			theme: models.TraditionBasque,
			starter: "sopa-pescado-donostia", main: "bacalao-pil-pil", dessert: "tarta-santiago",
			beverage: "albarino-rias-baixas", score: 4.6},
		{id: "case-communion-winter-veg", event: models.EventCommunion, season: models.SeasonWinter,
			guests: 50, priceMin: 40, priceMax: 75, wine: true, style: models.StyleTraditional,
			starter: "crema-calabaza", main: "risotto-funghi", dessert: "crema-catalana",
			beverage: "verdejo-rueda", score: 4.0},
	}

	cases, err := buildSeedCases(cb, specs)
	if err != nil {
		panic(fmt.Sprintf("factories: malformed seed case table: %v", err))
	}
	return cases
}

// buildSeedCases resolves every catalog reference in the compiled-in case
// table. A missing id is a broken table, reported rather than skipped.
func buildSeedCases(cb *casebase.CaseBase, specs []seedCaseSpec) ([]*models.Case, error) {
	cases := make([]*models.Case, 0, len(specs))
	for _, s := range specs {
		starter, err := cb.GetDishByID(s.starter)
		if err != nil {
			return nil, fmt.Errorf("case %s: starter: %w", s.id, err)
		}
		main, err := cb.GetDishByID(s.main)
		if err != nil {
			return nil, fmt.Errorf("case %s: main: %w", s.id, err)
		}
		dessert, err := cb.GetDishByID(s.dessert)
		if err != nil {
			return nil, fmt.Errorf("case %s: dessert: %w", s.id, err)
		}
		beverage, err := cb.GetBeverageByID(s.beverage)
		if err != nil {
			return nil, fmt.Errorf("case %s: beverage: %w", s.id, err)
		}
		lastUsed := time.Now().AddDate(0, 0, -14)
		cases = append(cases, &models.Case{
			ID: s.id,
			Request: models.Request{
				EventType:          s.event,
				Season:             s.season,
				NumGuests:          s.guests,
				PriceMin:           s.priceMin,
				PriceMax:           s.priceMax,
				WantsWine:          s.wine,
				PreferredStyle:     s.style,
				CulturalPreference: s.theme,
			},
			Menu: models.Menu{
				ID:            "menu-" + s.id,
				Starter:       starter,
				Main:          main,
				Dessert:       dessert,
				Beverage:      beverage,
				DominantStyle: s.style,
				CulturalTheme: s.theme,
			},
			Success:       true,
			FeedbackScore: s.score,
			Source:        models.CaseSourceInitial,
			UsageCount:    3,
			LastUsed:      &lastUsed,
		})
	}
	return cases, nil
}
