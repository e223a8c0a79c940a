package similarity

import "github.com/calbisu/menumind/internal/models"

// Weights holds one scalar per similarity dimension. Mutated only by the
// AdaptiveWeightLearner; everything else reads through Snapshot or Get.
type Weights struct {
	values map[string]float64
}

// DefaultWeights reflect the relative importance of each dimension before
// any learning has happened. Event type and budget dominate, wine and guest
// scale matter least.
func DefaultWeights() *Weights {
	return &Weights{values: map[string]float64{
		models.DimEventMatch:        0.20,
		models.DimSeasonMatch:       0.12,
		models.DimPriceRange:        0.18,
		models.DimStyleMatch:        0.12,
		models.DimCulturalMatch:     0.08,
		models.DimDietCompatibility: 0.15,
		models.DimGuestCount:        0.05,
		models.DimWinePreference:    0.05,
	}}
}

// NewWeights builds a weight set from explicit values, falling back to the
// default for any missing dimension. Used when initial_weights is set in
// configuration.
func NewWeights(initial map[string]float64) *Weights {
	w := DefaultWeights()
	for dim, v := range initial {
		if _, ok := w.values[dim]; ok {
			w.values[dim] = v
		}
	}
	return w
}

func (w *Weights) Get(dimension string) float64 {
	return w.values[dimension]
}

func (w *Weights) set(dimension string, value float64) {
	if _, ok := w.values[dimension]; ok {
		w.values[dimension] = value
	}
}

// Snapshot returns a defensive copy of the current values.
func (w *Weights) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(w.values))
	for dim, v := range w.values {
		out[dim] = v
	}
	return out
}
