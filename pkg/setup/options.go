package setup

import (
	"fmt"
	"math"
)

// UserInfo holds the engine run options.
type UserInfo struct {
	VerboseLevel        string `json:"verboseLevel"`
	RunningVerboseLevel string `json:"runningVerboseLevel"`
	G4Verbose           bool   `json:"g4Verbose"`
	G4VerboseLevel      int    `json:"g4VerboseLevel"`
	VisuType            string `json:"visuType"`
	Visu                bool   `json:"visu"`
	VisuVerbose         bool   `json:"visuVerbose"`
	RandomEngine        string `json:"randomEngine"`
	RandomSeed          int64  `json:"randomSeed"`
	NumberOfThreads     int    `json:"numberOfThreads"`
}

// DefaultRandomSeed ...
const DefaultRandomSeed = 20231205

// DefaultUserInfo ...
var DefaultUserInfo = UserInfo{
	VerboseLevel:        "INFO",
	RunningVerboseLevel: "DEBUG",
	G4Verbose:           false,
	G4VerboseLevel:      1,
	VisuType:            "vrml",
	Visu:                false,
	VisuVerbose:         true,
	RandomEngine:        "MersenneTwister",
	RandomSeed:          DefaultRandomSeed,
	NumberOfThreads:     1,
}

var knownVerboseLevels = map[string]bool{
	"NONE": true, "DEBUG": true, "INFO": true, "WARNING": true, "ERROR": true, "CRITICAL": true,
}

var knownVisuTypes = map[string]bool{"vrml": true, "vrml_file_only": true, "qt": true, "gdml": true}

var knownRandomEngines = map[string]bool{"MersenneTwister": true, "MixMaxRng": true}

// Validate ...
func (u UserInfo) Validate() error {
	result := E{}

	if !knownVerboseLevels[u.VerboseLevel] {
		result["verboseLevel"] = fmt.Errorf("unknown level %q", u.VerboseLevel)
	}
	if !knownVerboseLevels[u.RunningVerboseLevel] {
		result["runningVerboseLevel"] = fmt.Errorf("unknown level %q", u.RunningVerboseLevel)
	}
	if u.G4VerboseLevel < 0 {
		result["g4VerboseLevel"] = fmt.Errorf("should be positive value")
	}
	if !knownVisuTypes[u.VisuType] {
		result["visuType"] = fmt.Errorf("unknown visualization type %q", u.VisuType)
	}
	if !knownRandomEngines[u.RandomEngine] {
		result["randomEngine"] = fmt.Errorf("unknown random engine %q", u.RandomEngine)
	}
	if u.NumberOfThreads < 1 {
		result["numberOfThreads"] = fmt.Errorf("at least one thread is required")
	}

	return result.OrNil()
}

// TimeInterval is a [start, end] run interval in engine time units.
type TimeInterval [2]float64

// ValidateTimeIntervals checks that intervals are well formed, increasing and
// do not overlap.
func ValidateTimeIntervals(intervals []TimeInterval) error {
	previousEnd := math.Inf(-1)
	for i, interval := range intervals {
		start, end := interval[0], interval[1]
		if start < 0 || end <= start {
			return fmt.Errorf("interval %d [%v, %v] is empty or negative", i, start, end)
		}
		if start < previousEnd {
			return fmt.Errorf("interval %d starts at %v before previous end %v", i, start, previousEnd)
		}
		previousEnd = end
	}
	return nil
}
