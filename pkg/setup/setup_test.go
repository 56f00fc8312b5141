package setup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhrsim/uhrsim/pkg/geometry"
	"github.com/uhrsim/uhrsim/pkg/tree"
)

func cube(size float64) BoxShape {
	return BoxShape{Size: geometry.Vec3D{X: size, Y: size, Z: size}}
}

func validSetup(t *testing.T) Setup {
	t.Helper()
	s := NewEmptySetup()

	rod := NewVolume("rod", WorldName, "Aluminium", TubsShape{RMax: 1.5, DZ: 10})
	rod.Translation = geometry.Vec3D{X: 7.5}
	rod.Rotation = geometry.MustRotationFromEuler("x", 90)
	require.NoError(t, s.AddVolume(rod))

	source := NewGenericSource("src", "rod", "gamma")
	source.Activity = 37e6 * geometry.Bq
	source.Energy.Mono = 661.7 * geometry.KeV
	source.Position = SourcePosition{Type: "box", Size: geometry.Vec3D{X: 0.2, Y: 0.2, Z: 20}, Confine: "rod"}
	require.NoError(t, s.AddSource(source))

	require.NoError(t, s.AddActor(Actor{Name: "Stats", Config: ActorConfig{StatisticsActor{TrackTypesFlag: true}}}))
	require.NoError(t, s.AddActor(Actor{Name: "Hits", Config: ActorConfig{HitsCollectionActor{
		Mother:     "rod",
		Output:     "out.root",
		Attributes: []string{AttrPostPosition, AttrTotalEnergyDeposit},
	}}}))
	require.NoError(t, s.AddActor(Actor{Name: "Singles", Config: ActorConfig{AdderActor{
		InputDigiCollection: "Hits",
		Policy:              EnergyWinnerPosition,
		Output:              "out.root",
	}}}))
	return s
}

func TestNewEmptySetup(t *testing.T) {
	s := NewEmptySetup()

	require.Contains(t, s.Volumes, WorldName)
	assert.Equal(t, "G4_AIR", s.Volumes[WorldName].Material)
	assert.Equal(t, cube(3*geometry.M), s.Volumes[WorldName].Shape.ShapeType)
	assert.Equal(t, int64(DefaultRandomSeed), s.UserInfo.RandomSeed)
	assert.NoError(t, s.Validate())
}

func TestAddRejectsDuplicates(t *testing.T) {
	s := validSetup(t)

	err := s.AddVolume(NewVolume("rod", WorldName, "G4_AIR", cube(1)))
	assert.EqualError(t, err, `[setup] Volume{Name: "rod"}: volume already exists`)
	assert.Error(t, s.AddSource(NewGenericSource("src", "rod", "gamma")))
	assert.Error(t, s.AddActor(Actor{Name: "Hits"}))
	assert.Error(t, s.AddVolume(Volume{}))
}

func TestSetProductionCut(t *testing.T) {
	s := NewEmptySetup()
	s.SetProductionCut(WorldName, "all", 1*geometry.M)
	s.SetProductionCut(WorldName, "all", 2*geometry.M)
	s.SetProductionCut(WorldName, "gamma", 1)

	assert.Equal(t, []ProductionCut{
		{Volume: WorldName, Particle: "all", Value: 2 * geometry.M},
		{Volume: WorldName, Particle: "gamma", Value: 1},
	}, s.Physics.ProductionCuts)
}

func TestValidate(t *testing.T) {
	require.NoError(t, validSetup(t).Validate())

	type section int
	const (
		volumes section = iota
		sources
		actors
		physics
		userInfo
		timing
	)

	for _, tc := range []struct {
		Name    string
		Mutate  func(s *Setup)
		Section section
		Key     string
	}{
		{"UnknownMother", func(s *Setup) {
			v := s.Volumes["rod"]
			v.Mother = "ghost"
			s.Volumes["rod"] = v
		}, volumes, "rod"},
		{"MotherCycle", func(s *Setup) {
			s.Volumes["a"] = NewVolume("a", "b", "G4_AIR", cube(1))
			s.Volumes["b"] = NewVolume("b", "a", "G4_AIR", cube(1))
		}, volumes, "a"},
		{"EmptyMaterial", func(s *Setup) {
			v := s.Volumes["rod"]
			v.Material = ""
			s.Volumes["rod"] = v
		}, volumes, "rod"},
		{"NotOrthonormal", func(s *Setup) {
			v := s.Volumes["rod"]
			v.Rotation = geometry.Rotation{}
			s.Volumes["rod"] = v
		}, volumes, "rod"},
		{"Reflection", func(s *Setup) {
			v := s.Volumes["rod"]
			v.Rotation = geometry.Rotation{{-1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
			s.Volumes["rod"] = v
		}, volumes, "rod"},
		{"ColorOutOfRange", func(s *Setup) {
			v := s.Volumes["rod"]
			v.Color = Color{2, 0, 0, 1}
			s.Volumes["rod"] = v
		}, volumes, "rod"},
		{"InvalidShape", func(s *Setup) {
			v := s.Volumes["rod"]
			v.Shape = Shape{cube(0)}
			s.Volumes["rod"] = v
		}, volumes, "rod"},
		{"MissingWorld", func(s *Setup) {
			delete(s.Volumes, WorldName)
		}, volumes, WorldName},
		{"BothNAndActivity", func(s *Setup) {
			src := s.Sources["src"]
			src.N = 15
			s.Sources["src"] = src
		}, sources, "src"},
		{"NeitherNNorActivity", func(s *Setup) {
			src := s.Sources["src"]
			src.Activity = 0
			s.Sources["src"] = src
		}, sources, "src"},
		{"UnknownConfine", func(s *Setup) {
			src := s.Sources["src"]
			src.Position.Confine = "ghost"
			s.Sources["src"] = src
		}, sources, "src"},
		{"UnknownParticle", func(s *Setup) {
			src := s.Sources["src"]
			src.Particle = "graviton"
			s.Sources["src"] = src
		}, sources, "src"},
		{"AdderInputNotHits", func(s *Setup) {
			s.Actors["Singles"] = Actor{Name: "Singles", Config: ActorConfig{AdderActor{
				InputDigiCollection: "Stats",
				Policy:              EnergyWinnerPosition,
				Output:              "out.root",
			}}}
		}, actors, "Singles"},
		{"UnknownPolicy", func(s *Setup) {
			s.Actors["Singles"] = Actor{Name: "Singles", Config: ActorConfig{AdderActor{
				InputDigiCollection: "Hits",
				Policy:              "Random",
				Output:              "out.root",
			}}}
		}, actors, "Singles"},
		{"UnknownHitAttribute", func(s *Setup) {
			s.Actors["Hits"] = Actor{Name: "Hits", Config: ActorConfig{HitsCollectionActor{
				Mother:     "rod",
				Output:     "out.root",
				Attributes: []string{"Spin"},
			}}}
		}, actors, "Hits"},
		{"UnknownPhysicsList", func(s *Setup) {
			s.Physics.ListName = "Magic"
		}, physics, ""},
		{"CutOnUnknownVolume", func(s *Setup) {
			s.SetProductionCut("ghost", "all", 1)
		}, physics, ""},
		{"NoThreads", func(s *Setup) {
			s.UserInfo.NumberOfThreads = 0
		}, userInfo, ""},
		{"OverlappingIntervals", func(s *Setup) {
			s.RunTimingIntervals = []TimeInterval{{0, 2}, {1, 3}}
		}, timing, ""},
	} {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			s := validSetup(t)
			tc.Mutate(&s)

			err := s.Validate()
			require.Error(t, err)
			var setupErr Error
			require.True(t, errors.As(err, &setupErr))
			assert.Contains(t, err.Error(), "[setup] invalid setup: ")

			switch tc.Section {
			case volumes:
				assert.Contains(t, setupErr.Volumes, tc.Key)
			case sources:
				assert.Contains(t, setupErr.Sources, tc.Key)
			case actors:
				assert.Contains(t, setupErr.Actors, tc.Key)
			case physics:
				assert.Error(t, setupErr.Physics)
			case userInfo:
				assert.Error(t, setupErr.UserInfo)
			case timing:
				assert.Error(t, setupErr.Timing)
			}
		})
	}
}

func TestValidateRotation(t *testing.T) {
	s := validSetup(t)
	v := s.Volumes["rod"]
	v.Rotation = geometry.Rotation{{1, 0, 0}, {0, -1, 0}, {0, 0, 1}}
	v.Repeat = []Placement{{Name: "rod_0", Rotation: geometry.Rotation{{1, 0, 0}, {0, 1, 0}, {0, 0, 2}}}}
	s.Volumes["rod"] = v

	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rotation: should not be a reflection")
	assert.Contains(t, err.Error(), "repeat[0].rotation: should be orthonormal")
}

func TestValidateTimeIntervals(t *testing.T) {
	assert.NoError(t, ValidateTimeIntervals(nil))
	assert.NoError(t, ValidateTimeIntervals([]TimeInterval{{0, 1 * geometry.S}, {1 * geometry.S, 2 * geometry.S}}))
	assert.Error(t, ValidateTimeIntervals([]TimeInterval{{0, 0}}))
	assert.Error(t, ValidateTimeIntervals([]TimeInterval{{-1, 1}}))
	assert.Error(t, ValidateTimeIntervals([]TimeInterval{{2, 3}, {0, 1}}))
}

func TestErrorMessageIsSorted(t *testing.T) {
	err := E{
		"b": errors.New("second"),
		"a": errors.New("first"),
	}
	assert.Equal(t, "{a: first, b: second}", err.Error())
	assert.Nil(t, E{}.OrNil())
}

func nestedSetup(t *testing.T) Setup {
	t.Helper()
	s := NewEmptySetup()

	matrix := NewVolume("matrix", WorldName, "G4_AIR", BoxShape{Size: geometry.Vec3D{X: 4, Y: 8, Z: 2}})
	matrix.Repeat = RepeatArray("matrix", geometry.Vec3DInt{X: 2, Y: 1, Z: 1}, geometry.Vec3D{X: 10})
	require.NoError(t, s.AddVolume(matrix))

	crystal := NewVolume("crystal", "matrix", "LYSO", cube(1))
	crystal.Repeat = RepeatArray("crystal", geometry.Vec3DInt{X: 1, Y: 2, Z: 1}, geometry.Vec3D{Y: 3})
	require.NoError(t, s.AddVolume(crystal))
	return s
}

func TestVolumeTree(t *testing.T) {
	root, err := nestedSetup(t).VolumeTree()
	require.NoError(t, err)

	assert.Equal(t, WorldName, root.Name)
	assert.Equal(t, 7, root.Size())
	require.Len(t, root.Children, 2)
	assert.Equal(t, "matrix_0", root.Children[0].Name)
	assert.Equal(t, "matrix_1", root.Children[1].Name)
	assert.Equal(t, geometry.Vec3D{X: 5}, *root.Children[1].Translation)

	for _, matrix := range root.Children {
		require.Len(t, matrix.Children, 2)
		assert.Equal(t, "crystal_0", matrix.Children[0].Name)
		assert.Equal(t, "crystal_1", matrix.Children[1].Name)
		assert.Equal(t, geometry.Vec3D{Y: 1.5}, *matrix.Children[1].Translation)
	}
	assert.NotSame(t, root.Children[0].Children[0], root.Children[1].Children[0])
	assert.NotSame(t, root.Children[0].Limits, root.Children[1].Limits)
}

func TestVolumeTreeErrors(t *testing.T) {
	t.Run("Orphan", func(t *testing.T) {
		s := NewEmptySetup()
		require.NoError(t, s.AddVolume(NewVolume("lost", "ghost", "G4_AIR", cube(1))))
		_, err := s.VolumeTree()
		assert.EqualError(t, err, `[setup] volumes not attached to "world": lost`)
	})

	t.Run("InvalidShape", func(t *testing.T) {
		s := NewEmptySetup()
		require.NoError(t, s.AddVolume(NewVolume("flat", WorldName, "G4_AIR", cube(0))))
		_, err := s.VolumeTree()
		assert.Error(t, err)
	})

	t.Run("MissingWorld", func(t *testing.T) {
		s := NewEmptySetup()
		delete(s.Volumes, WorldName)
		_, err := s.VolumeTree()
		assert.Error(t, err)
	})
}

func TestContentSize(t *testing.T) {
	// matrix copies reach |x| = 5 + 2, |y| = 4; crystals stay inside them.
	size, err := nestedSetup(t).ContentSize(WorldName)
	require.NoError(t, err)
	assert.InDelta(t, 14, size.X, 1e-9)
	assert.InDelta(t, 8, size.Y, 1e-9)
	assert.InDelta(t, 2, size.Z, 1e-9)

	_, err = nestedSetup(t).ContentSize("matrix")
	assert.True(t, errors.Is(err, tree.ErrNotFound))

	_, err = nestedSetup(t).ContentSize("crystal_0")
	assert.True(t, errors.Is(err, tree.ErrAmbiguous))
}

func TestSizeWorld(t *testing.T) {
	s := NewEmptySetup()
	box := NewVolume("box", WorldName, "G4_AIR", cube(2))
	box.Translation = geometry.Vec3D{X: 5}
	require.NoError(t, s.AddVolume(box))

	size, err := SizeWorld(&s, geometry.Vec3D{X: 1, Y: 1, Z: 1})
	require.NoError(t, err)

	assert.InDelta(t, 13, size.X, 1e-9)
	assert.InDelta(t, 3, size.Y, 1e-9)
	assert.InDelta(t, 3, size.Z, 1e-9)
	assert.Equal(t, BoxShape{Size: size}, s.Volumes[WorldName].Shape.ShapeType)
}

func TestSizeWorldMissingShape(t *testing.T) {
	s := NewEmptySetup()
	require.NoError(t, s.AddVolume(Volume{Name: "bare", Mother: WorldName, Material: "G4_AIR", Rotation: geometry.Identity()}))

	_, err := SizeWorld(&s, geometry.Vec3D{})
	assert.True(t, errors.Is(err, tree.ErrMalformedNode))
	assert.Equal(t, cube(3*geometry.M), s.Volumes[WorldName].Shape.ShapeType, "world left untouched")
}

func TestOrderedVolumes(t *testing.T) {
	s := nestedSetup(t)
	require.NoError(t, s.AddVolume(NewVolume("absorber", WorldName, "G4_Pb", cube(1))))

	ordered, err := s.OrderedVolumes()
	require.NoError(t, err)
	names := []string{}
	for _, v := range ordered {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{WorldName, "absorber", "matrix", "crystal"}, names)

	require.NoError(t, s.AddVolume(NewVolume("lost", "ghost", "G4_AIR", cube(1))))
	_, err = s.OrderedVolumes()
	assert.EqualError(t, err, `[setup] 1 volumes not attached to "world"`)
}
