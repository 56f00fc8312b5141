// Package export writes a scene as the input files of the simulation engine.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/uhrsim/uhrsim/pkg/material"
	"github.com/uhrsim/uhrsim/pkg/setup"
)

// SceneFileName is the name of the scene document.
const SceneFileName = "scene.json"

// Units of every dimensioned value in the scene document.
var Units = map[string]string{
	"length":   "mm",
	"time":     "ns",
	"energy":   "MeV",
	"activity": "1/ns",
}

// Document is the scene as read by the engine. Volumes are listed mothers
// first, sources and actors by name.
type Document struct {
	RunID              string               `json:"runId"`
	Units              map[string]string    `json:"units"`
	UserInfo           setup.UserInfo       `json:"userInfo"`
	MaterialDatabases  []string             `json:"materialDatabases"`
	Volumes            []setup.Volume       `json:"volumes"`
	Sources            []setup.Source       `json:"sources"`
	Actors             []documentActor      `json:"actors"`
	Physics            setup.Physics        `json:"physics"`
	RunTimingIntervals []setup.TimeInterval `json:"runTimingIntervals"`
}

type documentActor struct {
	Type string `json:"type"`
	setup.Actor
}

type serializeFunc func(s setup.Setup, runID string) (string, error)

var serializers = map[string]serializeFunc{
	SceneFileName:     serializeScene,
	material.FileName: serializeMaterials,
}

// Files returns the engine input files for s, keyed by file name.
func Files(s setup.Setup, runID string) (map[string]string, error) {
	files := map[string]string{}
	for fileName, serialize := range serializers {
		content, err := serialize(s, runID)
		if err != nil {
			return nil, fmt.Errorf("[export] %s: %w", fileName, err)
		}
		files[fileName] = content
	}
	return files, nil
}

// NewDocument orders the content of s for serialization.
func NewDocument(s setup.Setup, runID string) (Document, error) {
	volumes, err := s.OrderedVolumes()
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		RunID:              runID,
		Units:              Units,
		UserInfo:           s.UserInfo,
		MaterialDatabases:  s.MaterialDatabases,
		Volumes:            volumes,
		Sources:            make([]setup.Source, 0, len(s.Sources)),
		Actors:             make([]documentActor, 0, len(s.Actors)),
		Physics:            s.Physics,
		RunTimingIntervals: s.RunTimingIntervals,
	}
	if doc.RunTimingIntervals == nil {
		doc.RunTimingIntervals = []setup.TimeInterval{}
	}

	for _, name := range sortedKeys(s.Sources) {
		doc.Sources = append(doc.Sources, s.Sources[name])
	}
	for _, name := range sortedKeys(s.Actors) {
		actor := s.Actors[name]
		doc.Actors = append(doc.Actors, documentActor{Type: actor.TypeName(), Actor: actor})
	}
	return doc, nil
}

func serializeScene(s setup.Setup, runID string) (string, error) {
	doc, err := NewDocument(s, runID)
	if err != nil {
		return "", err
	}
	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(content) + "\n", nil
}

func serializeMaterials(s setup.Setup, _ string) (string, error) {
	db := material.Default()
	if err := db.Validate(); err != nil {
		return "", err
	}
	return material.Serialize(db), nil
}

// WriteFiles writes files into dir, creating it when needed.
func WriteFiles(dir string, files map[string]string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("[export] create %s: %w", dir, err)
	}
	for _, name := range sortedKeys(files) {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(files[name]), 0o644); err != nil {
			return fmt.Errorf("[export] write %s: %w", path, err)
		}
		log.Debugf("[export] wrote %s (%d bytes)", path, len(files[name]))
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
