package game

import (
	"fmt"
	"math"
	"sort"
)

// EvaluateScore returns the current game score.
func EvaluateScore(s State) float64 {
	return pursuitState(s).Score()
}

type Feature string

const (
	FeatureScore                Feature = "score"
	FeatureChaserDistance       Feature = "chaser_distance"        // Runner to chaser while the chaser is dangerous
	FeatureScaredChaserDistance Feature = "scared_chaser_distance" // Runner to chaser while the chaser is scared
	FeatureNearestFood          Feature = "nearest_food"           // Runner to the closest food, 0 when none is left
	FeatureFoodRemaining        Feature = "food_remaining"
	FeatureCapsulesRemaining    Feature = "capsules_remaining"
)

// featureOrder fixes the summation order of Linear so that equal states
// always evaluate to the same float.
var featureOrder = []Feature{
	FeatureScore,
	FeatureChaserDistance,
	FeatureScaredChaserDistance,
	FeatureNearestFood,
	FeatureFoodRemaining,
	FeatureCapsulesRemaining,
}

var knownFeatures = func() map[Feature]bool {
	known := make(map[Feature]bool, len(featureOrder))
	for _, f := range featureOrder {
		known[f] = true
	}
	return known
}()

// Weights is a linear evaluation: the sum of each feature times its weight.
// Missing features weigh 0.
type Weights map[Feature]float64

var (
	RunnerWeights = Weights{
		FeatureScore:                1,
		FeatureChaserDistance:       0.5,
		FeatureScaredChaserDistance: -2.5,
		FeatureNearestFood:          -1,
		FeatureFoodRemaining:        -10,
		FeatureCapsulesRemaining:    -50,
	}

	ChaserWeights = Weights{
		FeatureScore:                -0.1,
		FeatureChaserDistance:       -2,
		FeatureScaredChaserDistance: 1,
		FeatureCapsulesRemaining:    5,
	}
)

// ParseWeights converts a name to weight table, rejecting unknown features.
func ParseWeights(raw map[string]float64) (Weights, error) {
	w := make(Weights, len(raw))
	for name, weight := range raw {
		f := Feature(name)
		if !knownFeatures[f] {
			return nil, fmt.Errorf("unknown evaluation feature %q", name)
		}
		w[f] = weight
	}
	return w, nil
}

// Names lists the weighted features in sorted order.
func (w Weights) Names() []string {
	names := make([]string, 0, len(w))
	for f := range w {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// Features extracts every known feature of s.
func Features(s *PursuitState) map[Feature]float64 {
	features := map[Feature]float64{
		FeatureScore:             s.Score(),
		FeatureFoodRemaining:     float64(s.FoodLeft()),
		FeatureCapsulesRemaining: float64(len(s.capsules)),
	}

	distance := float64(Manhattan(s.Runner(), s.Chaser()))
	if s.ScaredTimer() > 0 {
		features[FeatureScaredChaserDistance] = distance
	} else {
		features[FeatureChaserDistance] = distance
	}

	nearest := 0
	for i, food := range s.Food() {
		if d := Manhattan(s.Runner(), food); i == 0 || d < nearest {
			nearest = d
		}
	}
	features[FeatureNearestFood] = float64(nearest)

	return features
}

// Linear returns the weighted feature sum of s.
func (w Weights) Linear(s *PursuitState) float64 {
	features := Features(s)
	total := 0.0
	for _, f := range featureOrder {
		if weight, ok := w[f]; ok {
			total += weight * features[f]
		}
	}
	return total
}

// NewWeightedEvaluation scores states with w from the point of view of
// perspective: a game won by that agent is +Inf, a game lost is -Inf.
func NewWeightedEvaluation(w Weights, perspective int) Evaluate {
	if perspective != Runner && perspective != Chaser {
		panic(fmt.Sprintf("unknown agent index %d", perspective))
	}
	return func(state State) float64 {
		s := pursuitState(state)
		won, lost := s.IsWin(), s.IsLose()
		if perspective == Chaser {
			won, lost = lost, won
		}
		if lost {
			return math.Inf(-1)
		}
		if won {
			return math.Inf(1)
		}
		return w.Linear(s)
	}
}

func pursuitState(s State) *PursuitState {
	ps, ok := s.(*PursuitState)
	if !ok {
		panic("unexpected state type")
	}
	return ps
}
