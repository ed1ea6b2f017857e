package model

// TableType is the heuristic category of a table, derived from its
// header row. It is recomputed on demand and never stored alongside
// the table.
type TableType int

const (
	// TableTypeUnknown indicates a table that could not be classified
	// (typically an empty table).
	TableTypeUnknown TableType = iota
	// TableTypeChemistry indicates a chemical composition table
	// (element percentage columns such as "C %", "Mn %").
	TableTypeChemistry
	// TableTypeMechanical indicates a mechanical properties table
	// (yield/tensile columns such as "Rp0.2", "Rm", "A5").
	TableTypeMechanical
	// TableTypeGeneric indicates a table that matched no known category.
	TableTypeGeneric
)

// String returns the string representation of the table type.
func (tt TableType) String() string {
	switch tt {
	case TableTypeChemistry:
		return "chemistry"
	case TableTypeMechanical:
		return "mechanical"
	case TableTypeGeneric:
		return "generic"
	default:
		return "unknown"
	}
}
