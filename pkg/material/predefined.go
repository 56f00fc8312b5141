package material

// Material names used by the detector and the phantoms.
const (
	LYSO      = "LYSO"
	Plastic   = "Plastic"
	Aluminium = "Aluminium"
	Air       = "G4_AIR"
)

var elements = []Element{
	{Name: "Hydrogen", Symbol: "H", Z: 1, A: 1.01},
	{Name: "Carbon", Symbol: "C", Z: 6, A: 12.01},
	{Name: "Oxygen", Symbol: "O", Z: 8, A: 16.00},
	{Name: "Aluminium", Symbol: "Al", Z: 13, A: 26.98},
	{Name: "Silicon", Symbol: "Si", Z: 14, A: 28.09},
	{Name: "Yttrium", Symbol: "Y", Z: 39, A: 88.91},
	{Name: "Lutetium", Symbol: "Lu", Z: 71, A: 174.97},
}

var materials = []Material{
	{
		Name:    LYSO,
		Density: 7.1,
		State:   Solid,
		Components: []Component{
			{Element: "Lutetium", N: 18},
			{Element: "Yttrium", N: 2},
			{Element: "Silicon", N: 10},
			{Element: "Oxygen", N: 50},
		},
	},
	{
		Name:    Plastic,
		Density: 1.18,
		State:   Solid,
		Components: []Component{
			{Element: "Carbon", N: 5},
			{Element: "Hydrogen", N: 8},
			{Element: "Oxygen", N: 2},
		},
	},
	{
		Name:       Aluminium,
		Density:    2.7,
		State:      Solid,
		Components: []Component{{Element: AutoElement, N: 1}},
	},
}

// Default returns a copy of the scene's material database.
func Default() Database {
	db := Database{
		Elements:  append([]Element(nil), elements...),
		Materials: make([]Material, 0, len(materials)),
	}
	for _, m := range materials {
		m.Components = append([]Component(nil), m.Components...)
		db.Materials = append(db.Materials, m)
	}
	return db
}
