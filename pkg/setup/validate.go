package setup

import (
	"fmt"

	"github.com/uhrsim/uhrsim/pkg/geometry"
	"github.com/uhrsim/uhrsim/pkg/validate"
)

const rotationTolerance = 1e-6

// Validate checks every model of the setup and the references between them.
// It returns a setup.Error or nil.
func (s Setup) Validate() error {
	result := Error{
		Volumes: map[string]error{},
		Sources: map[string]error{},
		Actors:  map[string]error{},
	}

	for name, volume := range s.Volumes {
		if err := s.validateVolume(name, volume); err != nil {
			result.Volumes[name] = err
		}
	}
	if _, ok := s.Volumes[WorldName]; !ok {
		result.Volumes[WorldName] = VolumeError(WorldName, "root volume is missing")
	}

	for name, source := range s.Sources {
		if err := s.validateSource(name, source); err != nil {
			result.Sources[name] = err
		}
	}
	for name, actor := range s.Actors {
		if err := s.validateActor(name, actor); err != nil {
			result.Actors[name] = err
		}
	}

	if err := s.Physics.Validate(s.Volumes); err != nil {
		result.Physics = err
	}
	if err := s.UserInfo.Validate(); err != nil {
		result.UserInfo = err
	}
	if err := ValidateTimeIntervals(s.RunTimingIntervals); err != nil {
		result.Timing = err
	}

	if result.empty() {
		return nil
	}
	return result
}

func (s Setup) validateVolume(key string, v Volume) error {
	result := E{}

	if v.Name != key {
		result["name"] = fmt.Errorf("registered as %q", key)
	}
	if v.Name == WorldName {
		if v.Mother != "" {
			result["mother"] = fmt.Errorf("root volume cannot have a mother")
		}
	} else if err := s.checkMotherChain(v); err != nil {
		result["mother"] = err
	}
	if v.Material == "" {
		result["material"] = fmt.Errorf("is required")
	}
	if _, err := BoundingLimits(v.Shape); err != nil {
		result["shape"] = err
	}
	if !validate.Finite(v.Translation.X, v.Translation.Y, v.Translation.Z) {
		result["translation"] = fmt.Errorf("should be finite")
	}
	if err := checkRotation(v.Rotation); err != nil {
		result["rotation"] = err
	}
	for _, c := range v.Color {
		if !validate.InUnitRange(c) {
			result["color"] = fmt.Errorf("components should be between 0 and 1")
			break
		}
	}
	for i, p := range v.Repeat {
		if err := checkRotation(p.Rotation); err != nil {
			result[fmt.Sprintf("repeat[%d].rotation", i)] = err
		}
	}

	if len(result) == 0 {
		return nil
	}
	return VolumeError(v.Name, "%v", result)
}

func (s Setup) checkMotherChain(v Volume) error {
	visited := map[string]bool{v.Name: true}
	current := v
	for current.Name != WorldName {
		if current.Mother == "" {
			return fmt.Errorf("volume %q has no mother", current.Name)
		}
		mother, ok := s.Volumes[current.Mother]
		if !ok {
			return fmt.Errorf("mother %q does not exist", current.Mother)
		}
		if visited[mother.Name] {
			return fmt.Errorf("mother chain has a cycle through %q", mother.Name)
		}
		visited[mother.Name] = true
		current = mother
	}
	return nil
}

func (s Setup) validateSource(key string, src Source) error {
	result := E{}
	if src.Name != key {
		result["name"] = fmt.Errorf("registered as %q", key)
	}
	if err := src.Validate(); err != nil {
		result["fields"] = err
	}
	if src.Mother != "" && !volumeExists(s.Volumes, src.Mother) {
		result["mother"] = fmt.Errorf("volume %q does not exist", src.Mother)
	}
	if src.Position.Confine != "" && !volumeExists(s.Volumes, src.Position.Confine) {
		result["position.confine"] = fmt.Errorf("volume %q does not exist", src.Position.Confine)
	}
	if len(result) == 0 {
		return nil
	}
	return SourceError(src.Name, "%v", result)
}

func (s Setup) validateActor(key string, a Actor) error {
	result := E{}
	if a.Name != key {
		result["name"] = fmt.Errorf("registered as %q", key)
	}
	if a.Config.ActorKind == nil {
		result["config"] = fmt.Errorf("is required")
		return ActorError(a.Name, "%v", result)
	}
	for field, err := range a.Config.validate() {
		result[field] = err
	}

	if hits, ok := asHitsCollection(a.Config.ActorKind); ok {
		if hits.Mother != "" && !volumeExists(s.Volumes, hits.Mother) {
			result["mother"] = fmt.Errorf("volume %q does not exist", hits.Mother)
		}
	}
	if adder, ok := asAdder(a.Config.ActorKind); ok && adder.InputDigiCollection != "" {
		input, exists := s.Actors[adder.InputDigiCollection]
		if !exists {
			result["inputDigiCollection"] = fmt.Errorf("actor %q does not exist", adder.InputDigiCollection)
		} else if _, isHits := asHitsCollection(input.Config.ActorKind); !isHits {
			result["inputDigiCollection"] = fmt.Errorf("actor %q is not a hits collection", adder.InputDigiCollection)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return ActorError(a.Name, "%v", result)
}

func asHitsCollection(kind ActorKind) (HitsCollectionActor, bool) {
	switch h := kind.(type) {
	case HitsCollectionActor:
		return h, true
	case *HitsCollectionActor:
		return *h, true
	}
	return HitsCollectionActor{}, false
}

func asAdder(kind ActorKind) (AdderActor, bool) {
	switch a := kind.(type) {
	case AdderActor:
		return a, true
	case *AdderActor:
		return *a, true
	}
	return AdderActor{}, false
}

func volumeExists(volumes VolumeMap, name string) bool {
	_, ok := volumes[name]
	return ok
}

// checkRotation rejects placements the engine cannot build: non-orthonormal
// matrices and reflections.
func checkRotation(r geometry.Rotation) error {
	if !r.IsOrthonormal(rotationTolerance) {
		return fmt.Errorf("should be orthonormal")
	}
	if !r.IsProper(rotationTolerance) {
		return fmt.Errorf("should not be a reflection")
	}
	return nil
}
