package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhrsim/uhrsim/pkg/geometry"
	"github.com/uhrsim/uhrsim/pkg/material"
	"github.com/uhrsim/uhrsim/pkg/setup"
	test "github.com/uhrsim/uhrsim/pkg/test"
)

func smallSetup(t *testing.T) setup.Setup {
	t.Helper()
	s := setup.NewEmptySetup()
	s.AddMaterialDatabase(material.FileName)

	box := setup.NewVolume("box", setup.WorldName, material.LYSO, setup.BoxShape{Size: geometry.Vec3D{X: 1, Y: 1, Z: 1}})
	require.NoError(t, s.AddVolume(box))
	inner := setup.NewVolume("inner", "box", material.LYSO, setup.BoxShape{Size: geometry.Vec3D{X: 0.5, Y: 0.5, Z: 0.5}})
	require.NoError(t, s.AddVolume(inner))
	require.NoError(t, s.AddVolume(setup.NewVolume("another", setup.WorldName, material.Air, setup.BoxShape{Size: geometry.Vec3D{X: 1, Y: 1, Z: 1}})))

	src := setup.NewGenericSource("src", "box", "gamma")
	src.N = 10
	src.Energy.Mono = 1
	require.NoError(t, s.AddSource(src))

	require.NoError(t, s.AddActor(setup.Actor{Name: "Stats", Config: setup.ActorConfig{ActorKind: setup.StatisticsActor{}}}))
	require.NoError(t, s.AddActor(setup.Actor{Name: "Hits", Config: setup.ActorConfig{ActorKind: setup.HitsCollectionActor{
		Mother: "inner", Output: "out.root", Attributes: []string{setup.AttrGlobalTime},
	}}}))
	return s
}

func TestFiles(t *testing.T) {
	files, err := Files(smallSetup(t), "run-1")
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, material.Serialize(material.Default()), files[material.FileName])

	var doc struct {
		RunID   string `json:"runId"`
		Volumes []struct {
			Name string `json:"name"`
		} `json:"volumes"`
		Actors []struct {
			Type string `json:"type"`
			Name string `json:"name"`
		} `json:"actors"`
		RunTimingIntervals []interface{} `json:"runTimingIntervals"`
	}
	require.NoError(t, json.Unmarshal([]byte(files[SceneFileName]), &doc))

	assert.Equal(t, "run-1", doc.RunID)
	names := []string{}
	for _, v := range doc.Volumes {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"world", "another", "box", "inner"}, names)
	require.Len(t, doc.Actors, 2)
	assert.Equal(t, "Hits", doc.Actors[0].Name)
	assert.Equal(t, "DigitizerHitsCollectionActor", doc.Actors[0].Type)
	assert.Equal(t, "SimulationStatisticsActor", doc.Actors[1].Type)
	assert.NotNil(t, doc.RunTimingIntervals)
}

func TestSceneSource(t *testing.T) {
	doc, err := NewDocument(smallSetup(t), "run-1")
	require.NoError(t, err)
	require.Len(t, doc.Sources, 1)

	raw, err := json.Marshal(doc.Sources[0])
	require.NoError(t, err)
	expected := `{
		"name": "src",
		"type": "GenericSource",
		"mother": "box",
		"particle": "gamma",
		"n": 10,
		"energy": {"type": "mono", "mono": 1},
		"direction": {"type": "iso"},
		"position": {
			"type": "point",
			"size": {"x": 0, "y": 0, "z": 0},
			"translation": {"x": 0, "y": 0, "z": 0}
		}
	}`
	if diff := test.DiffJSON(t, []byte(expected), raw); diff != "" {
		t.Errorf("actual != expected\n%s", diff)
	}
}

func TestFilesDetachedVolume(t *testing.T) {
	s := smallSetup(t)
	require.NoError(t, s.AddVolume(setup.NewVolume("lost", "ghost", material.Air, setup.BoxShape{Size: geometry.Vec3D{X: 1, Y: 1, Z: 1}})))

	_, err := Files(s, "run-1")
	assert.Error(t, err)
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	require.NoError(t, WriteFiles(dir, map[string]string{"a.txt": "alpha", "b.txt": "beta"}))

	content, err := os.ReadFile(filepath.Join(dir, "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "beta", string(content))
}
