package setup

import (
	"encoding/json"
	"fmt"

	"github.com/uhrsim/uhrsim/pkg/utils"
)

var actorType = struct {
	statistics string
	hits       string
	adder      string
}{
	statistics: "SimulationStatisticsActor",
	hits:       "DigitizerHitsCollectionActor",
	adder:      "DigitizerAdderActor",
}

var actorTypeMapping = map[string]func() interface{}{
	actorType.statistics: func() interface{} { return &StatisticsActor{} },
	actorType.hits:       func() interface{} { return &HitsCollectionActor{} },
	actorType.adder:      func() interface{} { return &AdderActor{} },
}

// Actor describes what is recorded during the simulation.
type Actor struct {
	Name   string      `json:"name"`
	Config ActorConfig `json:"config"`
}

// ActorKind is implemented by every actor configuration.
type ActorKind interface {
	validate() E
}

// ActorConfig is a type-tagged ActorKind.
type ActorConfig struct {
	ActorKind
}

// MarshalJSON ...
func (a ActorConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.ActorKind)
}

// UnmarshalJSON ...
func (a *ActorConfig) UnmarshalJSON(b []byte) error {
	if utils.IsJSONNull(b) {
		a.ActorKind = nil
		return nil
	}
	kind, err := utils.TypeBasedUnmarshallJSON(b, actorTypeMapping)
	if err != nil {
		return err
	}
	a.ActorKind = kind.(ActorKind)
	return nil
}

// StatisticsActor counts events, tracks and steps.
type StatisticsActor struct {
	TrackTypesFlag bool `json:"trackTypesFlag"`
}

// MarshalJSON json.Marshaller implementation.
func (s StatisticsActor) MarshalJSON() ([]byte, error) {
	type Alias StatisticsActor
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  actorType.statistics,
		Alias: Alias(s),
	})
}

func (s StatisticsActor) validate() E {
	return E{}
}

// Hit attributes recorded by a HitsCollectionActor.
const (
	AttrPostPosition          = "PostPosition"
	AttrPrePosition           = "PrePosition"
	AttrTotalEnergyDeposit    = "TotalEnergyDeposit"
	AttrPreStepUniqueVolumeID = "PreStepUniqueVolumeID"
	AttrGlobalTime            = "GlobalTime"
	AttrLocalTime             = "LocalTime"
	AttrKineticEnergy         = "KineticEnergy"
	AttrTrackID               = "TrackID"
	AttrEventID               = "EventID"
	AttrParticleName          = "ParticleName"
)

var knownHitAttributes = map[string]bool{
	AttrPostPosition:          true,
	AttrPrePosition:           true,
	AttrTotalEnergyDeposit:    true,
	AttrPreStepUniqueVolumeID: true,
	AttrGlobalTime:            true,
	AttrLocalTime:             true,
	AttrKineticEnergy:         true,
	AttrTrackID:               true,
	AttrEventID:               true,
	AttrParticleName:          true,
}

// HitsCollectionActor records a hit per step inside Mother.
type HitsCollectionActor struct {
	Mother     string   `json:"mother"`
	Output     string   `json:"output"`
	Attributes []string `json:"attributes"`
}

// MarshalJSON json.Marshaller implementation.
func (h HitsCollectionActor) MarshalJSON() ([]byte, error) {
	type Alias HitsCollectionActor
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  actorType.hits,
		Alias: Alias(h),
	})
}

func (h HitsCollectionActor) validate() E {
	result := E{}
	if h.Mother == "" {
		result["mother"] = fmt.Errorf("is required")
	}
	if h.Output == "" {
		result["output"] = fmt.Errorf("is required")
	}
	if len(h.Attributes) == 0 {
		result["attributes"] = fmt.Errorf("at least one attribute is required")
	}
	seen := map[string]bool{}
	for _, attr := range h.Attributes {
		if !knownHitAttributes[attr] {
			result["attributes"] = fmt.Errorf("unknown attribute %q", attr)
			break
		}
		if seen[attr] {
			result["attributes"] = fmt.Errorf("duplicated attribute %q", attr)
			break
		}
		seen[attr] = true
	}
	return result
}

// AdderPolicy decides where a single is placed.
type AdderPolicy string

// Known adder policies.
const (
	EnergyWinnerPosition           AdderPolicy = "EnergyWinnerPosition"
	EnergyWeightedCentroidPosition AdderPolicy = "EnergyWeightedCentroidPosition"
)

// AdderActor sums the hits of one volume in one event into a single.
type AdderActor struct {
	InputDigiCollection string      `json:"inputDigiCollection"`
	Policy              AdderPolicy `json:"policy"`
	Output              string      `json:"output"`
}

// MarshalJSON json.Marshaller implementation.
func (a AdderActor) MarshalJSON() ([]byte, error) {
	type Alias AdderActor
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  actorType.adder,
		Alias: Alias(a),
	})
}

func (a AdderActor) validate() E {
	result := E{}
	if a.InputDigiCollection == "" {
		result["inputDigiCollection"] = fmt.Errorf("is required")
	}
	switch a.Policy {
	case EnergyWinnerPosition, EnergyWeightedCentroidPosition:
	default:
		result["policy"] = fmt.Errorf("unknown policy %q", a.Policy)
	}
	if a.Output == "" {
		result["output"] = fmt.Errorf("is required")
	}
	return result
}

// TypeName returns the engine name of the actor type.
func (a Actor) TypeName() string {
	switch a.Config.ActorKind.(type) {
	case StatisticsActor, *StatisticsActor:
		return actorType.statistics
	case HitsCollectionActor, *HitsCollectionActor:
		return actorType.hits
	case AdderActor, *AdderActor:
		return actorType.adder
	}
	return ""
}
