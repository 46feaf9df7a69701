package engine

import (
	"math"
	"strings"

	"github.com/poruwalabs/poruwa-backend/internal/types"
)

// RuleOutcome is the full set of suggestions attached to one training sample
// and, after traversal, to one prediction.
type RuleOutcome struct {
	BrideColourMapped string `json:"bride_colour_mapped"`
	GroomColour       string `json:"groom_colour"`
	BridesmaidsColour string `json:"bridesmaids_colour"`
	BestMenColour     string `json:"best_men_colour"`
	FlowerDecoColour  string `json:"flower_deco_colour"`
	HallDecorColour   string `json:"hall_decor_colour"`
	FoodMenu          string `json:"food_menu"`
	Drinks            string `json:"drinks"`
	PreShootLocations string `json:"pre_shoot_locations"`
}

const (
	placeholderFoodMenu  = "Menu suggestions will be provided based on your wedding type."
	placeholderDrinks    = "Drink suggestions will be provided based on your wedding type."
	placeholderLocations = "Location suggestions will be provided based on your wedding type."
)

// sample is one row of training data: the two splittable features plus the
// outcome carried down to the leaf.
type sample struct {
	weddingType string
	brideColour string
	outcome     RuleOutcome
}

type node struct {
	// Leaf fields. A leaf is any node with left == nil && right == nil.
	prediction *sample

	// Split fields.
	feature string // "wedding_type" or "bride_colour"
	value   string // folded feature value tested at this node
	left    *node  // feature != value
	right   *node  // feature == value
}

func (n *node) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// trainingData inner-joins ColorRules with FoodLocations into flat samples.
// Rules whose bride colour is restricted for the type are excluded so the
// tree can never suggest a restricted color; rules with no food row are not
// trained on and are served by the direct fallback instead.
func trainingData(s *Snapshot) []sample {
	var samples []sample
	for i := range s.ColorRules {
		rule := &s.ColorRules[i]
		if s.IsRestricted(rule.WeddingType, rule.BrideColour) {
			continue
		}
		fl := s.foodByType[fold(rule.WeddingType)]
		if fl == nil {
			continue
		}
		samples = append(samples, sample{
			weddingType: fold(rule.WeddingType),
			brideColour: fold(rule.BrideColour),
			outcome: RuleOutcome{
				BrideColourMapped: rule.BrideColour,
				GroomColour:       rule.GroomColour,
				BridesmaidsColour: rule.BridesmaidsColour,
				BestMenColour:     rule.BestMenColour,
				FlowerDecoColour:  rule.FlowerDecoColour,
				HallDecorColour:   rule.HallDecorColour,
				FoodMenu:          fl.FoodMenu,
				Drinks:            fl.Drinks,
				PreShootLocations: fl.PreShootLocations,
			},
		})
	}
	return samples
}

// entropy over the wedding_type label of the sample set.
func entropy(samples []sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	counts := make(map[string]int)
	for _, s := range samples {
		counts[s.weddingType]++
	}
	total := float64(len(samples))
	e := 0.0
	for _, c := range counts {
		p := float64(c) / total
		e -= p * math.Log2(p)
	}
	return e
}

func featureValue(s *sample, feature string) string {
	if feature == "wedding_type" {
		return s.weddingType
	}
	return s.brideColour
}

// distinctValues returns the feature's values in first-appearance order so
// the build is deterministic for a given sample ordering.
func distinctValues(samples []sample, feature string) []string {
	seen := make(map[string]bool)
	var values []string
	for i := range samples {
		v := featureValue(&samples[i], feature)
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	return values
}

const maxTreeDepth = 10

// buildNode grows the tree recursively. Splits are equality tests on a single
// feature value, chosen by information gain over the wedding-type label; ties
// keep the first candidate examined. Recursion stops on empty or singleton
// sets, exhausted features, or the depth cap.
func buildNode(samples []sample, features []string, depth int) *node {
	if len(samples) == 0 {
		return nil
	}
	if len(samples) == 1 {
		return &node{prediction: &samples[0]}
	}
	if len(features) == 0 || depth > maxTreeDepth {
		return &node{prediction: &samples[0]}
	}

	baseEntropy := entropy(samples)
	// Start below zero so the first candidate is always taken; sets that are
	// already pure on the label (all gains zero) still split down to
	// singleton leaves instead of collapsing to the first sample.
	bestGain := -1.0
	bestFeature := ""
	bestValue := ""
	var bestLeft, bestRight []sample

	for _, feature := range features {
		for _, value := range distinctValues(samples, feature) {
			var left, right []sample
			for i := range samples {
				if featureValue(&samples[i], feature) == value {
					right = append(right, samples[i])
				} else {
					left = append(left, samples[i])
				}
			}
			gain := 0.0
			if len(left) > 0 && len(right) > 0 {
				total := float64(len(samples))
				weighted := float64(len(left))/total*entropy(left) +
					float64(len(right))/total*entropy(right)
				gain = baseEntropy - weighted
			}
			if gain > bestGain {
				bestGain = gain
				bestFeature = feature
				bestValue = value
				bestLeft = left
				bestRight = right
			}
		}
	}

	if bestFeature == "" {
		return &node{prediction: &samples[0]}
	}

	var remaining []string
	for _, f := range features {
		if f != bestFeature {
			remaining = append(remaining, f)
		}
	}

	// The chosen feature is spent on both sides.
	return &node{
		feature: bestFeature,
		value:   bestValue,
		left:    buildNode(bestLeft, remaining, depth+1),
		right:   buildNode(bestRight, remaining, depth+1),
	}
}

// traverse descends the tree for a folded (wedding type, bride colour) query.
// At each split only the branch matching the test is followed; a nil branch
// propagates up as no prediction.
func traverse(n *node, weddingType, brideColour string) *sample {
	if n == nil {
		return nil
	}
	if n.isLeaf() {
		return n.prediction
	}
	query := brideColour
	if n.feature == "wedding_type" {
		query = weddingType
	}
	if query == n.value {
		return traverse(n.right, weddingType, brideColour)
	}
	return traverse(n.left, weddingType, brideColour)
}

// directFallback answers from the rule tables when traversal misses or the
// leaf fails colour validation: exact rule lookup, then a near-miss bride
// colour retry (substring containment, only when the colour actually has a
// cultural entry so a typo in the rules does not redirect arbitrary input),
// then the same two steps under a substring-similar wedding type. A blind
// first-rule answer is never given; a miss here is a real miss.
func directFallback(s *Snapshot, weddingType, brideColour string) *RuleOutcome {
	rule := s.lookupRule(weddingType, brideColour)
	if rule == nil {
		ft := fold(weddingType)
		for _, name := range s.typeNames {
			fn := fold(name)
			if fn == ft || !containsEither(fn, ft) {
				continue
			}
			if rule = s.lookupRule(name, brideColour); rule != nil {
				break
			}
		}
	}
	if rule == nil {
		return nil
	}

	outcome := &RuleOutcome{
		BrideColourMapped: rule.BrideColour,
		GroomColour:       rule.GroomColour,
		BridesmaidsColour: rule.BridesmaidsColour,
		BestMenColour:     rule.BestMenColour,
		FlowerDecoColour:  rule.FlowerDecoColour,
		HallDecorColour:   rule.HallDecorColour,
		FoodMenu:          placeholderFoodMenu,
		Drinks:            placeholderDrinks,
		PreShootLocations: placeholderLocations,
	}
	if fl := s.foodFor(weddingType); fl != nil {
		outcome.FoodMenu = fl.FoodMenu
		outcome.Drinks = fl.Drinks
		outcome.PreShootLocations = fl.PreShootLocations
	}
	return outcome
}

func (s *Snapshot) lookupRule(weddingType, brideColour string) *types.ColorRule {
	if rule, ok := s.ruleFor(weddingType, brideColour); ok {
		return rule
	}
	rules := s.rulesByType[fold(weddingType)]
	if len(rules) == 0 {
		return nil
	}
	if _, exists := s.culturalColorFor(weddingType, brideColour); !exists {
		return nil
	}
	fc := fold(brideColour)
	for i := range rules {
		if containsEither(fold(rules[i].BrideColour), fc) {
			return &rules[i]
		}
	}
	return nil
}

func containsEither(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
