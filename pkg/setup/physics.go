package setup

import (
	"fmt"
)

// Physics selects the engine's physics list and production cuts.
type Physics struct {
	ListName       string          `json:"physicsListName"`
	ProductionCuts []ProductionCut `json:"productionCuts"`
}

// ProductionCut is the range cut of Particle inside Volume. Particle "all"
// applies to gamma, e-, e+ and proton at once.
type ProductionCut struct {
	Volume   string  `json:"volume"`
	Particle string  `json:"particle"`
	Value    float64 `json:"value"`
}

// DefaultPhysics ...
var DefaultPhysics = Physics{
	ListName:       "QGSP_BERT_EMV",
	ProductionCuts: []ProductionCut{},
}

var knownPhysicsLists = map[string]bool{
	"QGSP_BERT_EMV":               true,
	"QGSP_BIC_EMZ":                true,
	"FTFP_BERT":                   true,
	"G4EmStandardPhysics":         true,
	"G4EmStandardPhysics_option1": true,
	"G4EmStandardPhysics_option2": true,
	"G4EmStandardPhysics_option3": true,
	"G4EmStandardPhysics_option4": true,
	"G4EmLivermorePhysics":        true,
	"G4EmPenelopePhysics":         true,
}

var knownCutParticles = map[string]bool{
	"all":    true,
	"gamma":  true,
	"e-":     true,
	"e+":     true,
	"proton": true,
}

// Validate ...
func (p Physics) Validate(volumes VolumeMap) error {
	result := E{}

	if !knownPhysicsLists[p.ListName] {
		result["physicsListName"] = fmt.Errorf("unknown physics list %q", p.ListName)
	}
	for i, cut := range p.ProductionCuts {
		key := fmt.Sprintf("productionCuts[%d]", i)
		switch {
		case !volumeExists(volumes, cut.Volume):
			result[key] = fmt.Errorf("volume %q does not exist", cut.Volume)
		case !knownCutParticles[cut.Particle]:
			result[key] = fmt.Errorf("unknown particle %q", cut.Particle)
		case cut.Value <= 0:
			result[key] = fmt.Errorf("should be positive value")
		}
	}

	return result.OrNil()
}
