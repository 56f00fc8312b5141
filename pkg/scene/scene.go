// Package scene composes the full detector scene from a run configuration.
package scene

import (
	log "github.com/sirupsen/logrus"

	"github.com/uhrsim/uhrsim/config"
	"github.com/uhrsim/uhrsim/pkg/geometry"
	"github.com/uhrsim/uhrsim/pkg/material"
	"github.com/uhrsim/uhrsim/pkg/phantom"
	"github.com/uhrsim/uhrsim/pkg/setup"
	"github.com/uhrsim/uhrsim/pkg/uhr"
)

// Actor names.
const (
	StatsActor   = "Stats"
	HitsActor    = "Hits"
	SinglesActor = "Singles"
)

// PhysicsList used for every run.
const PhysicsList = "G4EmStandardPhysics_option4"

// WorldCut is the production cut applied to every particle in the world.
const WorldCut = 1 * geometry.M

// HitAttributes recorded for each step in a crystal.
var HitAttributes = []string{
	setup.AttrPostPosition,
	setup.AttrTotalEnergyDeposit,
	setup.AttrPreStepUniqueVolumeID,
	setup.AttrGlobalTime,
}

// SourceName is the name of the source filling the named rod.
func SourceName(rod string) string {
	return "source_" + rod
}

// Build returns the validated scene described by conf: the detector layout,
// one Cs-137 rod per configured rod, the readout actors and a world sized to
// fit its content plus conf.WorldMargin.
func Build(conf config.Config) (setup.Setup, error) {
	s := setup.NewEmptySetup()
	s.AddMaterialDatabase(material.FileName)

	s.UserInfo.Visu = conf.Visu
	s.UserInfo.RandomSeed = conf.Seed
	s.UserInfo.NumberOfThreads = conf.Threads

	layout, err := uhr.ByName(conf.Layout)
	if err != nil {
		return setup.Setup{}, err
	}
	if err := layout.Add(&s, setup.WorldName); err != nil {
		return setup.Setup{}, err
	}

	for _, r := range conf.Rods {
		rod := phantom.NewHollowRod(r.Name, setup.WorldName)
		rod.Translation = r.Position
		src := phantom.CesiumSource{Name: SourceName(r.Name), Rod: rod}
		if conf.Visu {
			src.N = conf.VisuParticles
		} else {
			src.Activity = conf.Activity * geometry.Bq
		}
		if _, err := phantom.AddCesiumSource(&s, src); err != nil {
			return setup.Setup{}, err
		}
	}

	if err := addActors(&s, layout.CrystalName(), conf.Output); err != nil {
		return setup.Setup{}, err
	}

	s.Physics.ListName = PhysicsList
	s.SetProductionCut(setup.WorldName, "all", WorldCut)

	if conf.Time > 0 {
		s.RunTimingIntervals = []setup.TimeInterval{{0, conf.Time * geometry.S}}
	}

	size, err := setup.SizeWorld(&s, conf.WorldMargin)
	if err != nil {
		return setup.Setup{}, err
	}
	log.WithFields(log.Fields{
		"x": size.X,
		"y": size.Y,
		"z": size.Z,
	}).Debug("world sized to content")

	if err := checkMaterials(s, material.Default()); err != nil {
		return setup.Setup{}, err
	}
	if err := s.Validate(); err != nil {
		return setup.Setup{}, err
	}
	return s, nil
}

func addActors(s *setup.Setup, crystal, output string) error {
	actors := []setup.Actor{
		{
			Name:   StatsActor,
			Config: setup.ActorConfig{ActorKind: setup.StatisticsActor{TrackTypesFlag: true}},
		},
		{
			Name: HitsActor,
			Config: setup.ActorConfig{ActorKind: setup.HitsCollectionActor{
				Mother:     crystal,
				Output:     output,
				Attributes: append([]string(nil), HitAttributes...),
			}},
		},
		{
			Name: SinglesActor,
			Config: setup.ActorConfig{ActorKind: setup.AdderActor{
				InputDigiCollection: HitsActor,
				Policy:              setup.EnergyWeightedCentroidPosition,
				Output:              output,
			}},
		},
	}
	for _, actor := range actors {
		if err := s.AddActor(actor); err != nil {
			return err
		}
	}
	return nil
}

func checkMaterials(s setup.Setup, db material.Database) error {
	if err := db.Validate(); err != nil {
		return err
	}
	for name, v := range s.Volumes {
		if !db.Provides(v.Material) {
			return setup.VolumeError(name, "material %q is neither defined in %s nor a NIST material", v.Material, material.FileName)
		}
	}
	return nil
}
