package phantom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhrsim/uhrsim/pkg/geometry"
	"github.com/uhrsim/uhrsim/pkg/setup"
)

func TestHollowRodVolume(t *testing.T) {
	rod := NewHollowRod("rod", setup.WorldName)
	rod.Translation = geometry.Vec3D{X: 7.5}
	v := rod.Volume()

	assert.Equal(t, "Aluminium", v.Material)
	assert.Equal(t, RodColor, v.Color)
	assert.Equal(t, geometry.Vec3D{X: 7.5}, v.Translation)

	limits, err := setup.BoundingLimits(v.Shape)
	require.NoError(t, err)
	size := limits.Size()
	assert.InDelta(t, 3, size.X, 1e-9)
	assert.InDelta(t, 3, size.Y, 1e-9)
	assert.InDelta(t, 123.444, size.Z, 1e-9)

	inner, err := rod.InnerSize()
	require.NoError(t, err)
	assert.InDelta(t, 0.2, inner.X, 1e-9)
	assert.InDelta(t, 0.2, inner.Y, 1e-9)
	assert.InDelta(t, 119.38, inner.Z, 1e-9)
}

func TestHollowRodLiesAlongY(t *testing.T) {
	s := setup.NewEmptySetup()
	_, err := AddCesiumSource(&s, CesiumSource{Name: "cs", Rod: NewHollowRod("rod", setup.WorldName), N: 10})
	require.NoError(t, err)

	size, err := s.ContentSize(setup.WorldName)
	require.NoError(t, err)
	assert.InDelta(t, 3, size.X, 1e-6)
	assert.InDelta(t, 123.444, size.Y, 1e-6)
	assert.InDelta(t, 3, size.Z, 1e-6)
}

func TestAddCesiumSource(t *testing.T) {
	t.Run("Activity", func(t *testing.T) {
		s := setup.NewEmptySetup()
		rod, err := AddCesiumSource(&s, CesiumSource{
			Name:     "cs",
			Rod:      NewHollowRod("rod", setup.WorldName),
			Activity: 37e6 * geometry.Bq,
		})
		require.NoError(t, err)
		require.NoError(t, s.Validate())

		src := s.Sources["cs"]
		assert.Equal(t, rod.Name, src.Mother)
		assert.Equal(t, "gamma", src.Particle)
		assert.Equal(t, Cs137GammaEnergy, src.Energy.Mono)
		assert.Equal(t, "iso", src.Direction.Type)
		assert.Equal(t, "box", src.Position.Type)
		assert.Equal(t, "rod", src.Position.Confine)
		assert.Zero(t, src.N)
		assert.InDelta(t, 119.38, src.Position.Size.Z, 1e-9)
	})

	t.Run("N", func(t *testing.T) {
		s := setup.NewEmptySetup()
		_, err := AddCesiumSource(&s, CesiumSource{Name: "cs", Rod: NewHollowRod("rod", setup.WorldName), N: 15})
		require.NoError(t, err)
		assert.Equal(t, int64(15), s.Sources["cs"].N)
		assert.Zero(t, s.Sources["cs"].Activity)
	})

	for name, src := range map[string]CesiumSource{
		"Both":    {Name: "cs", Rod: NewHollowRod("rod", setup.WorldName), N: 15, Activity: 1},
		"Neither": {Name: "cs", Rod: NewHollowRod("rod", setup.WorldName)},
	} {
		src := src
		t.Run(name, func(t *testing.T) {
			s := setup.NewEmptySetup()
			_, err := AddCesiumSource(&s, src)
			assert.True(t, errors.Is(err, ErrEmission))
			assert.NotContains(t, s.Volumes, "rod", "nothing added on error")
		})
	}

	t.Run("DuplicateRod", func(t *testing.T) {
		s := setup.NewEmptySetup()
		_, err := AddCesiumSource(&s, CesiumSource{Name: "a", Rod: NewHollowRod("rod", setup.WorldName), N: 1})
		require.NoError(t, err)
		_, err = AddCesiumSource(&s, CesiumSource{Name: "b", Rod: NewHollowRod("rod", setup.WorldName), N: 1})
		assert.Error(t, err)
	})
}
