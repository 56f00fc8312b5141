package material

import (
	"bytes"
	"fmt"
	"io"
)

// FileName is the name the engine expects for the database.
const FileName = "materials.db"

// Serialize writes db in the engine's [Elements]/[Materials] text format.
func Serialize(db Database) string {
	writer := &bytes.Buffer{}

	fmt.Fprintln(writer, "[Elements]")
	for _, element := range db.Elements {
		serializeElement(writer, element)
	}
	fmt.Fprintln(writer)

	fmt.Fprintln(writer, "[Materials]")
	for _, material := range db.Materials {
		serializeMaterial(writer, material)
	}

	return writer.String()
}

func serializeElement(writer io.Writer, element Element) {
	fmt.Fprintf(writer, "%s: S= %s ; Z= %d. ; A= %.2f g/mole\n",
		element.Name, element.Symbol, element.Z, element.A)
}

func serializeMaterial(writer io.Writer, material Material) {
	fmt.Fprintf(writer, "%s: d=%g g/cm3 ; n=%d", material.Name, material.Density, len(material.Components))
	if material.State != "" {
		fmt.Fprintf(writer, " ; state=%s", material.State)
	}
	fmt.Fprintln(writer)

	for _, component := range material.Components {
		fmt.Fprintf(writer, "\t+el: name=%s ; n=%d\n", component.Element, component.N)
	}
	fmt.Fprintln(writer)
}
