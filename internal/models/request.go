package models

import "time"

// Request describes one inbound menu query. Transient, constructed per
// call.
type Request struct {
	EventType             EventType         `json:"event_type"`
	Season                Season            `json:"season"`
	NumGuests             int               `json:"num_guests"`
	PriceMin              float64           `json:"price_min"`
	PriceMax              float64           `json:"price_max"`
	WantsWine             bool              `json:"wants_wine"`
	RequiredDiets         []string          `json:"required_diets,omitempty"`
	RestrictedIngredients []string          `json:"restricted_ingredients,omitempty"`
	PreferredStyle        CulinaryStyle     `json:"preferred_style,omitempty"`
	CulturalPreference    CulturalTradition `json:"cultural_preference,omitempty"`
}

func (r Request) Clone() Request {
	c := r
	c.RequiredDiets = append([]string(nil), r.RequiredDiets...)
	c.RestrictedIngredients = append([]string(nil), r.RestrictedIngredients...)
	return c
}

// Case pairs a request with the menu that served it and the outcome.
type Case struct {
	ID               string     `json:"id"`
	Request          Request    `json:"request"`
	Menu             Menu       `json:"menu"`
	Success          bool       `json:"success"`
	FeedbackScore    float64    `json:"feedback_score"`
	FeedbackComments string     `json:"feedback_comments,omitempty"`
	Source           string     `json:"source"`
	UsageCount       int        `json:"usage_count"`
	LastUsed         *time.Time `json:"last_used,omitempty"`
	AdaptationNotes  []string   `json:"adaptation_notes,omitempty"`
}

// Touch records one more use of the case.
func (c *Case) Touch(now time.Time) {
	c.UsageCount++
	c.LastUsed = &now
}

// FeedbackData is supplied by the caller after a proposal was served.
// Satisfaction fields are on the 0-5 scale; nil means not reported.
type FeedbackData struct {
	MenuID               string   `json:"menu_id"`
	Success              bool     `json:"success"`
	Score                float64  `json:"score"`
	Comments             string   `json:"comments,omitempty"`
	WouldRecommend       bool     `json:"would_recommend"`
	PriceSatisfaction    *float64 `json:"price_satisfaction,omitempty"`
	CulturalSatisfaction *float64 `json:"cultural_satisfaction,omitempty"`
	FlavorSatisfaction   *float64 `json:"flavor_satisfaction,omitempty"`
	DietarySatisfaction  *float64 `json:"dietary_satisfaction,omitempty"`
}

type ValidationIssue struct {
	Severity string `json:"severity"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

type ValidationResult struct {
	Status       string            `json:"status"`
	Score        float64           `json:"score"`
	Issues       []ValidationIssue `json:"issues,omitempty"`
	Explanations []string          `json:"explanations,omitempty"`
}

// IsValid reports whether the menu is acceptable. Warnings are surfaced
// but do not block acceptance.
func (v ValidationResult) IsValid() bool {
	return v.Status == ValidationValid || v.Status == ValidationWarning
}

type RetentionDecision struct {
	ShouldRetain         bool    `json:"should_retain"`
	Reason               string  `json:"reason"`
	SimilarityToExisting float64 `json:"similarity_to_existing"`
	MostSimilarCase      *Case   `json:"-"`
	Action               string  `json:"action"`
}
