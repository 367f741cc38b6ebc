// Package benchmark holds the reference entities scored by the alignment index.
package benchmark

import (
	"fmt"

	"github.com/klogins-hash/collectiv-intelligence/internal/scoring"
)

// Entity is a literal benchmark record, validated when loaded.
type Entity struct {
	Name       string
	Group      string
	EntryExit  float64
	Governance float64
	Economics  float64
	Agency     float64
	Culture    float64
}

// Groups used to annotate the benchmark set.
const (
	GroupZionPole    = "zion_pole"
	GroupBabylonPole = "babylon_pole"
	GroupExtractive  = "extractive"
	GroupPolitical   = "political"
)

// Entities returns the benchmark set in registration order.
func Entities() []Entity {
	return []Entity{
		{Name: "The Collectiv (Ideal)", Group: GroupZionPole,
			EntryExit: 10, Governance: 10, Economics: 10, Agency: 10, Culture: 10},

		{Name: "Totalitarian State (NK)", Group: GroupBabylonPole,
			EntryExit: -10, Governance: -10, Economics: -10, Agency: -10, Culture: -10},
		{Name: "Nazi Germany (1940)", Group: GroupBabylonPole,
			EntryExit: -10, Governance: -10, Economics: -8, Agency: -10, Culture: -10},

		{Name: "Meta (Zuckerberg)", Group: GroupExtractive,
			EntryExit: 2, Governance: -8, Economics: -9, Agency: -8, Culture: -5},
		{Name: "Amazon (Bezos Era)", Group: GroupExtractive,
			EntryExit: 4, Governance: -7, Economics: -9, Agency: -2, Culture: -3},
		{Name: "X (Elon Musk)", Group: GroupExtractive,
			EntryExit: 5, Governance: -9, Economics: -5, Agency: 2, Culture: -6},

		{Name: "Putin's Russia", Group: GroupPolitical,
			EntryExit: -6, Governance: -10, Economics: -8, Agency: -9, Culture: -7},
		{Name: "Trumpism (MAGA)", Group: GroupPolitical,
			EntryExit: 5, Governance: -6, Economics: -4, Agency: 2, Culture: -8},
	}
}

// Dimensions validates e and returns its scoring dimensions.
func (e Entity) Dimensions() (scoring.Dimensions, error) {
	return scoring.NewDimensions(e.EntryExit, e.Governance, e.Economics, e.Agency, e.Culture)
}

// Load validates every entity before registering any of them, so a bad
// record leaves s untouched.
func Load(s *scoring.Scorer, entities []Entity) error {
	dims := make([]scoring.Dimensions, len(entities))
	for i, e := range entities {
		d, err := e.Dimensions()
		if err != nil {
			return fmt.Errorf("entity %q: %w", e.Name, err)
		}
		dims[i] = d
	}

	for i, e := range entities {
		if err := s.AddEntity(e.Name, dims[i]); err != nil {
			return fmt.Errorf("entity %q: %w", e.Name, err)
		}
	}
	return nil
}
