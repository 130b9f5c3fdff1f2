package model

// Sector tags a company with its industry for narrative calibration.
type Sector string

const (
	SectorDefense      Sector = "defense"
	SectorConstruction Sector = "construction"
	SectorElectrical   Sector = "electrical"
	SectorEnergy       Sector = "energy"
)

// ParseSector returns the sector for tag, falling back to defense for unknown
// tags rather than failing.
func ParseSector(tag string) Sector {
	switch Sector(tag) {
	case SectorDefense, SectorConstruction, SectorElectrical, SectorEnergy:
		return Sector(tag)
	default:
		return SectorDefense
	}
}
