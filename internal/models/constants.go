package models

type EventType string

const (
	EventWedding     EventType = "wedding"
	EventCommunion   EventType = "communion"
	EventChristening EventType = "christening"
	EventFamiliar    EventType = "familiar"
	EventCorporate   EventType = "corporate"
	EventCongress    EventType = "congress"
)

// AllEventTypes is the closed set used for eager index initialization.
var AllEventTypes = []EventType{
	EventWedding, EventCommunion, EventChristening,
	EventFamiliar, EventCorporate, EventCongress,
}

type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
	SeasonAll    Season = "all"
)

var AllSeasons = []Season{
	SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter, SeasonAll,
}

type CourseType string

const (
	CourseStarter CourseType = "starter"
	CourseMain    CourseType = "main"
	CourseDessert CourseType = "dessert"
)

type DishCategory string

const (
	CategoryMeat      DishCategory = "meat"
	CategoryFish      DishCategory = "fish"
	CategorySeafood   DishCategory = "seafood"
	CategoryVegetable DishCategory = "vegetable"
	CategoryPasta     DishCategory = "pasta"
	CategoryRice      DishCategory = "rice"
	CategorySoup      DishCategory = "soup"
	CategorySalad     DishCategory = "salad"
	CategoryCake      DishCategory = "cake"
	CategoryFruit     DishCategory = "fruit"
	CategoryCream     DishCategory = "cream"
	CategoryChocolate DishCategory = "chocolate"
)

type CulinaryStyle string

const (
	StyleTraditional   CulinaryStyle = "traditional"
	StyleModern        CulinaryStyle = "modern"
	StyleGourmet       CulinaryStyle = "gourmet"
	StyleRustic        CulinaryStyle = "rustic"
	StyleMediterranean CulinaryStyle = "mediterranean"
	StyleInternational CulinaryStyle = "international"
	StyleFusion        CulinaryStyle = "fusion"
)

var AllStyles = []CulinaryStyle{
	StyleTraditional, StyleModern, StyleGourmet, StyleRustic,
	StyleMediterranean, StyleInternational, StyleFusion,
}

type Temperature string

const (
	TempHot  Temperature = "hot"
	TempWarm Temperature = "warm"
	TempCold Temperature = "cold"
)

type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

type Flavor string

const (
	FlavorSweet  Flavor = "sweet"
	FlavorSalty  Flavor = "salty"
	FlavorSour   Flavor = "sour"
	FlavorBitter Flavor = "bitter"
	FlavorUmami  Flavor = "umami"
	FlavorSmoky  Flavor = "smoky"
	FlavorSpicy  Flavor = "spicy"
	FlavorFresh  Flavor = "fresh"
	FlavorCreamy Flavor = "creamy"
	FlavorCitrus Flavor = "citrus"
	FlavorFruity Flavor = "fruity"
	FlavorEarthy Flavor = "earthy"
	FlavorHerbal Flavor = "herbal"
	FlavorRich   Flavor = "rich"
	FlavorLight  Flavor = "light"
)

const (
	DietVegan       = "vegan"
	DietVegetarian  = "vegetarian"
	DietGlutenFree  = "gluten-free"
	DietLactoseFree = "lactose-free"
	DietHalal       = "halal"
	DietKosher      = "kosher"
)

type CulturalTradition string

const (
	TraditionSpanish       CulturalTradition = "spanish"
	TraditionBasque        CulturalTradition = "basque"
	TraditionCatalan       CulturalTradition = "catalan"
	TraditionGalician      CulturalTradition = "galician"
	TraditionFrench        CulturalTradition = "french"
	TraditionItalian       CulturalTradition = "italian"
	TraditionInternational CulturalTradition = "international"
)

type BeverageStyle string

const (
	BeverageWine      BeverageStyle = "wine"
	BeverageCava      BeverageStyle = "cava"
	BeverageBeer      BeverageStyle = "beer"
	BeverageSoft      BeverageStyle = "soft"
	BeverageWater     BeverageStyle = "water"
	BeverageJuice     BeverageStyle = "juice"
	BeverageFortified BeverageStyle = "fortified"
)

const (
	CaseSourceInitial = "initial"
	CaseSourceLearned = "learned"
)

// Similarity dimension names shared by the engine, the weight learner and
// retrieval breakdown reporting.
const (
	DimEventMatch        = "event_match"
	DimSeasonMatch       = "season_match"
	DimGuestCount        = "guest_count"
	DimPriceRange        = "price_range"
	DimDietCompatibility = "diet_compatibility"
	DimCulturalMatch     = "cultural_match"
	DimStyleMatch        = "style_match"
	DimWinePreference    = "wine_preference"
)

var AllDimensions = []string{
	DimEventMatch, DimSeasonMatch, DimGuestCount, DimPriceRange,
	DimDietCompatibility, DimCulturalMatch, DimStyleMatch, DimWinePreference,
}

// Price brackets used by the case base index.
const (
	PriceBracketLow     = "low"     // < 30
	PriceBracketMedium  = "medium"  // [30, 60)
	PriceBracketHigh    = "high"    // [60, 100)
	PriceBracketPremium = "premium" // >= 100
)

var AllPriceBrackets = []string{
	PriceBracketLow, PriceBracketMedium, PriceBracketHigh, PriceBracketPremium,
}

// RetentionAction values returned by the retainer.
const (
	RetentionAddNew         = "add_new"
	RetentionUpdateExisting = "update_existing"
	RetentionDiscard        = "discard"
)

// Validation statuses and issue severities.
const (
	ValidationValid   = "valid"
	ValidationWarning = "warning"
	ValidationInvalid = "invalid"

	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)
