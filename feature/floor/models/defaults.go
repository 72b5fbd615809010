package models

// Default pixel sizes for newly added elements.
var (
	tableSizes = map[TableType][2]float64{
		TableCircle: {60, 60},
		TableBox:    {80, 50},
	}
	poiSizes = map[POIType][2]float64{
		POIBar:    {120, 40},
		POISofa:   {90, 40},
		POIDoor:   {40, 10},
		POIStairs: {60, 80},
		POIStage:  {160, 80},
	}
)

// DefaultTableSize returns the intrinsic size of a table shape.
func DefaultTableSize(t TableType) (width, height float64) {
	if s, ok := tableSizes[t]; ok {
		return s[0], s[1]
	}
	return tableSizes[TableBox][0], tableSizes[TableBox][1]
}

// DefaultPOISize returns the intrinsic size of a point of interest category.
func DefaultPOISize(t POIType) (width, height float64) {
	if s, ok := poiSizes[t]; ok {
		return s[0], s[1]
	}
	return 50, 50
}
