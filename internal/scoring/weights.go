package scoring

import (
	"fmt"
	"sort"
)

// Mode selects how the user supplies weights for a pass.
type Mode string

const (
	// ModeThemes takes one weight per theme group, split evenly across its
	// member metrics.
	ModeThemes Mode = "themes"
	// ModeMetrics takes an independent weight per metric.
	ModeMetrics Mode = "metrics"
)

// Scheme is the flat metric → weight mapping consumed by the scorer.
// Keys that do not name a catalog metric are ignored at scoring time.
type Scheme map[string]float64

// Validate rejects negative weights. Weights need not sum to 1.
func (s Scheme) Validate() error {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if s[k] < 0 {
			return fmt.Errorf("negative weight for %q: %f", k, s[k])
		}
	}
	return nil
}

// ThemeWeights holds one slider weight per theme group.
type ThemeWeights struct {
	STRPerformance float64 `yaml:"str_performance" json:"str_performance"`
	LTRSafetyNet   float64 `yaml:"ltr_safety_net" json:"ltr_safety_net"`
	EntryValue     float64 `yaml:"entry_value" json:"entry_value"`
	Fundamentals   float64 `yaml:"fundamentals" json:"fundamentals"`
}

func (w ThemeWeights) byGroup() map[string]float64 {
	return map[string]float64{
		GroupSTRPerformance: w.STRPerformance,
		GroupLTRSafetyNet:   w.LTRSafetyNet,
		GroupEntryValue:     w.EntryValue,
		GroupFundamentals:   w.Fundamentals,
	}
}

// Validate rejects negative group weights.
func (w ThemeWeights) Validate() error {
	byGroup := w.byGroup()
	for _, g := range Groups() {
		if v := byGroup[g.ID]; v < 0 {
			return fmt.Errorf("negative weight for group %q: %f", g.ID, v)
		}
	}
	return nil
}

// Resolve splits each group weight evenly across the group's metrics.
func (w ThemeWeights) Resolve() Scheme {
	scheme := make(Scheme, len(catalog))
	byGroup := w.byGroup()
	for _, g := range Groups() {
		for _, id := range g.Metrics {
			scheme[id] = byGroup[g.ID] / float64(len(g.Metrics))
		}
	}
	return scheme
}

// PresetNames lists the built-in theme presets in menu order.
var PresetNames = []string{"balanced", "cash_flow_heavy", "appreciation_first"}

var presets = map[string]ThemeWeights{
	"balanced": {
		STRPerformance: 0.40,
		LTRSafetyNet:   0.25,
		EntryValue:     0.15,
		Fundamentals:   0.20,
	},
	"cash_flow_heavy": {
		STRPerformance: 0.50,
		LTRSafetyNet:   0.30,
		EntryValue:     0.10,
		Fundamentals:   0.10,
	},
	"appreciation_first": {
		STRPerformance: 0.30,
		LTRSafetyNet:   0.20,
		EntryValue:     0.20,
		Fundamentals:   0.30,
	},
}

// Preset returns a built-in theme preset by name.
func Preset(name string) (ThemeWeights, bool) {
	w, ok := presets[name]
	return w, ok
}

// ResolveWeights turns the user's weighting choice into a flat scheme.
// Exactly one of themes/metrics is consulted depending on mode.
func ResolveWeights(mode Mode, themes ThemeWeights, metrics Scheme) (Scheme, error) {
	switch mode {
	case ModeThemes, "":
		if err := themes.Validate(); err != nil {
			return nil, err
		}
		return themes.Resolve(), nil
	case ModeMetrics:
		if err := metrics.Validate(); err != nil {
			return nil, err
		}
		scheme := make(Scheme, len(metrics))
		for k, v := range metrics {
			scheme[k] = v
		}
		return scheme, nil
	default:
		return nil, fmt.Errorf("unknown weight mode %q", mode)
	}
}
