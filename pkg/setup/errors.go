package setup

import (
	"fmt"
	"sort"
	"strings"
)

type makeNewNameErrorFuncType = func(name string, message string, formatedValues ...interface{}) error

// VolumeError ...
var VolumeError = makeNewNameErrorFunc("Volume")

// SourceError ...
var SourceError = makeNewNameErrorFunc("Source")

// ActorError ...
var ActorError = makeNewNameErrorFunc("Actor")

func makeNewNameErrorFunc(modelName string) makeNewNameErrorFuncType {
	return func(name string, message string, formatedValues ...interface{}) error {
		header := fmt.Sprintf("[setup] %s{Name: %q}: ", modelName, name)
		return fmt.Errorf(header+message, formatedValues...)
	}
}

// Error aggregates every problem found in a Setup.
type Error struct {
	Volumes  map[string]error `json:"volumes,omitempty"`
	Sources  map[string]error `json:"sources,omitempty"`
	Actors   map[string]error `json:"actors,omitempty"`
	Physics  error            `json:"physics,omitempty"`
	UserInfo error            `json:"userInfo,omitempty"`
	Timing   error            `json:"runTimingIntervals,omitempty"`
}

func (e Error) empty() bool {
	return len(e.Volumes) == 0 && len(e.Sources) == 0 && len(e.Actors) == 0 &&
		e.Physics == nil && e.UserInfo == nil && e.Timing == nil
}

// Error ...
func (e Error) Error() string {
	parts := []string{}
	appendMap := func(section string, m map[string]error) {
		for _, key := range sortedKeys(m) {
			parts = append(parts, fmt.Sprintf("%s[%s]: %v", section, key, m[key]))
		}
	}
	appendMap("volumes", e.Volumes)
	appendMap("sources", e.Sources)
	appendMap("actors", e.Actors)
	if e.Physics != nil {
		parts = append(parts, fmt.Sprintf("physics: %v", e.Physics))
	}
	if e.UserInfo != nil {
		parts = append(parts, fmt.Sprintf("userInfo: %v", e.UserInfo))
	}
	if e.Timing != nil {
		parts = append(parts, fmt.Sprintf("runTimingIntervals: %v", e.Timing))
	}
	return "[setup] invalid setup: " + strings.Join(parts, "; ")
}

// E collects field errors of a single model.
type E map[string]error

// Error ...
func (e E) Error() string {
	parts := make([]string, 0, len(e))
	for _, key := range sortedKeys(e) {
		parts = append(parts, fmt.Sprintf("%s: %v", key, e[key]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// OrNil returns nil when no field error was collected.
func (e E) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func sortedKeys(m map[string]error) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
