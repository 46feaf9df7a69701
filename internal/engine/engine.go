package engine

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/poruwalabs/poruwa-backend/internal/logger"
)

// ColorDetail is the resolved display detail for one suggestion slot.
type ColorDetail struct {
	Name         string   `json:"name"`
	RGB          *string  `json:"rgb"`
	Hex          *string  `json:"hex"`
	IsRestricted bool     `json:"is_restricted"`
	Swatches     []Swatch `json:"swatches"`
}

// Metadata records how a prediction was derived.
type Metadata struct {
	OriginalBrideColour string  `json:"original_bride_colour"`
	MappedBrideColour   string  `json:"mapped_bride_colour"`
	WeddingType         string  `json:"wedding_type"`
	OriginalWeddingType string  `json:"original_wedding_type"`
	TreeBuildTime       string  `json:"tree_build_time"`
	ConfidenceScore     float64 `json:"confidence_score"`
}

// Suggestion is the full engine answer for one (wedding type, bride colour)
// query.
type Suggestion struct {
	WeddingType          string                 `json:"wedding_type"`
	BrideColour          string                 `json:"bride_colour_mapped"`
	OriginalBrideColour  string                 `json:"original_bride_colour,omitempty"`
	GroomColour          string                 `json:"groom_colour"`
	BridesmaidsColour    string                 `json:"bridesmaids_colour"`
	BestMenColour        string                 `json:"best_men_colour"`
	FlowerDecoColour     string                 `json:"flower_deco_colour"`
	HallDecorColour      string                 `json:"hall_decor_colour"`
	FoodMenu             string                 `json:"food_menu"`
	Drinks               string                 `json:"drinks"`
	PreShootLocations    string                 `json:"pre_shoot_locations"`
	CulturalSignificance string                 `json:"cultural_significance,omitempty"`
	RestrictionMessage   string                 `json:"restriction_message,omitempty"`
	SuggestionConfidence float64                `json:"suggestion_confidence"`
	ColorDetails         map[string]ColorDetail `json:"color_details"`
	PredictionMetadata   Metadata               `json:"prediction_metadata"`
}

// SnapshotLoader fetches a fresh snapshot of the rule tables. The engine owns
// when it is called; implementations just read and assemble.
type SnapshotLoader func(ctx context.Context) (*Snapshot, error)

// index is one immutable build product, swapped in atomically.
type index struct {
	snapshot  *Snapshot
	root      *node
	builtAt   time.Time
	buildTime time.Duration
}

// Engine holds the decision-tree index and serves predictions against it.
// Reads are lock-free against the current index; rebuilds are serialized.
type Engine struct {
	log  *logger.Logger
	load SnapshotLoader

	idx     atomic.Pointer[index]
	buildMu sync.Mutex
}

func NewEngine(log *logger.Logger, load SnapshotLoader) *Engine {
	return &Engine{
		log:  log.With("service", "Engine"),
		load: load,
	}
}

// IsBuilt reports whether an index is available without triggering a build.
func (e *Engine) IsBuilt() bool {
	return e.idx.Load() != nil
}

// LastBuildTime returns when the current index was built, zero when unbuilt.
func (e *Engine) LastBuildTime() time.Time {
	if idx := e.idx.Load(); idx != nil {
		return idx.builtAt
	}
	return time.Time{}
}

// TreeInfo describes the current index for diagnostics.
type TreeInfo struct {
	Built       bool      `json:"built"`
	BuiltAt     time.Time `json:"built_at"`
	BuildTime   string    `json:"build_time"`
	SampleCount int       `json:"sample_count"`
	TypeCount   int       `json:"type_count"`
	RuleCount   int       `json:"rule_count"`
}

func (e *Engine) Info() TreeInfo {
	idx := e.idx.Load()
	if idx == nil {
		return TreeInfo{}
	}
	return TreeInfo{
		Built:       true,
		BuiltAt:     idx.builtAt,
		BuildTime:   idx.buildTime.String(),
		SampleCount: countSamples(idx.root),
		TypeCount:   len(idx.snapshot.typeNames),
		RuleCount:   len(idx.snapshot.ColorRules),
	}
}

func countSamples(n *node) int {
	if n == nil {
		return 0
	}
	if n.isLeaf() {
		return 1
	}
	return countSamples(n.left) + countSamples(n.right)
}

// Rebuild loads a fresh snapshot and swaps in a new index. In-flight
// predictions keep reading the old index until the swap.
func (e *Engine) Rebuild(ctx context.Context) error {
	e.buildMu.Lock()
	defer e.buildMu.Unlock()
	return e.build(ctx)
}

func (e *Engine) build(ctx context.Context) error {
	start := time.Now()
	snapshot, err := e.load(ctx)
	if err != nil {
		return fmt.Errorf("loading rule snapshot: %w", err)
	}
	samples := trainingData(snapshot)
	root := buildNode(samples, []string{"wedding_type", "bride_colour"}, 0)
	built := &index{
		snapshot:  snapshot,
		root:      root,
		builtAt:   time.Now(),
		buildTime: time.Since(start),
	}
	e.idx.Store(built)
	e.log.Info("decision tree built",
		"samples", len(samples),
		"wedding_types", len(snapshot.typeNames),
		"build_time", built.buildTime.String(),
	)
	return nil
}

// ensureBuilt builds the index on first use. Double-checked so concurrent
// first callers block once and reuse the same build.
func (e *Engine) ensureBuilt(ctx context.Context) (*index, error) {
	if idx := e.idx.Load(); idx != nil {
		return idx, nil
	}
	e.buildMu.Lock()
	defer e.buildMu.Unlock()
	if idx := e.idx.Load(); idx != nil {
		return idx, nil
	}
	if err := e.build(ctx); err != nil {
		return nil, err
	}
	return e.idx.Load(), nil
}

// Snapshot exposes the current snapshot for read-only callers such as the
// wedding-type listing. Builds on first use.
func (e *Engine) Snapshot(ctx context.Context) (*Snapshot, error) {
	idx, err := e.ensureBuilt(ctx)
	if err != nil {
		return nil, err
	}
	return idx.snapshot, nil
}

// Predict runs the full pipeline: normalize the wedding type, resolve the
// bride colour, traverse the tree, validate the leaf against the query type,
// and fall back to direct rule lookup before failing.
func (e *Engine) Predict(ctx context.Context, rawWeddingType, rawBrideColour string) (*Suggestion, error) {
	idx, err := e.ensureBuilt(ctx)
	if err != nil {
		return nil, err
	}
	s := idx.snapshot

	canonical := s.Normalize(rawWeddingType)
	mapped, note := s.ResolveColor(rawBrideColour, canonical)

	foldedType := fold(canonical)
	foldedColour := fold(mapped)

	var outcome *RuleOutcome
	if leaf := traverse(idx.root, foldedType, foldedColour); leaf != nil &&
		fold(leaf.outcome.BrideColourMapped) == foldedColour {
		// A leaf whose bride colour disagrees with the query is a degenerate
		// first-sample leaf reached through shared structure; discard it and
		// answer from the tables instead.
		out := leaf.outcome
		outcome = &out
	}
	if outcome == nil {
		outcome = directFallback(s, canonical, foldedColour)
	}
	if outcome == nil {
		if !s.hasAnyData(canonical) {
			return nil, fmt.Errorf("%w: %q", ErrWeddingTypeNotFound, rawWeddingType)
		}
		return nil, fmt.Errorf("%w: %q / %q", ErrNoRuleForCombination, rawWeddingType, rawBrideColour)
	}

	suggestion := &Suggestion{
		WeddingType:          canonical,
		BrideColour:          outcome.BrideColourMapped,
		GroomColour:          outcome.GroomColour,
		BridesmaidsColour:    outcome.BridesmaidsColour,
		BestMenColour:        outcome.BestMenColour,
		FlowerDecoColour:     outcome.FlowerDecoColour,
		HallDecorColour:      outcome.HallDecorColour,
		FoodMenu:             outcome.FoodMenu,
		Drinks:               outcome.Drinks,
		PreShootLocations:    outcome.PreShootLocations,
		CulturalSignificance: s.CulturalSignificance(canonical, mapped),
		RestrictionMessage:   note,
		SuggestionConfidence: s.Confidence(canonical, mapped),
		ColorDetails:         s.ColorDetails(canonical, outcome),
		PredictionMetadata: Metadata{
			OriginalBrideColour: rawBrideColour,
			MappedBrideColour:   mapped,
			WeddingType:         canonical,
			OriginalWeddingType: rawWeddingType,
			TreeBuildTime:       idx.builtAt.UTC().Format(time.RFC3339),
			ConfidenceScore:     s.Confidence(canonical, mapped),
		},
	}
	if note != "" {
		suggestion.OriginalBrideColour = rawBrideColour
	}
	return suggestion, nil
}

// ColorDetails builds the display detail block for every color slot of an
// outcome, keyed by the slot's JSON field name.
func (s *Snapshot) ColorDetails(weddingType string, outcome *RuleOutcome) map[string]ColorDetail {
	slots := map[string]string{
		"bride_colour":       outcome.BrideColourMapped,
		"groom_colour":       outcome.GroomColour,
		"bridesmaids_colour": outcome.BridesmaidsColour,
		"best_men_colour":    outcome.BestMenColour,
		"flower_deco_colour": outcome.FlowerDecoColour,
		"hall_decor_colour":  outcome.HallDecorColour,
	}
	details := make(map[string]ColorDetail, len(slots))
	for slot, name := range slots {
		detail := ColorDetail{
			Name:         name,
			IsRestricted: s.IsRestricted(weddingType, name),
			Swatches:     s.Swatches(name),
		}
		if rgb, ok := s.RGBForName(name); ok {
			detail.RGB = &rgb
			if hex, hok := RGBToHex(rgb); hok {
				detail.Hex = &hex
			}
		}
		details[slot] = detail
	}
	return details
}
