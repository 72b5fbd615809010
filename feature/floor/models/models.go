package models

import "slices"

// ElementKind identifies which collection of a floor an id belongs to.
type ElementKind string

const (
	KindNone  ElementKind = ""
	KindTable ElementKind = "table"
	KindPOI   ElementKind = "poi"
	KindWall  ElementKind = "wall"
)

// Placeable reports whether elements of this kind can be dragged, resized and rotated.
func (k ElementKind) Placeable() bool {
	return k == KindTable || k == KindPOI
}

// TableStatus is the booking state of a table.
type TableStatus string

const (
	StatusAvailable TableStatus = "available"
	StatusReserved  TableStatus = "reserved"
	StatusOccupied  TableStatus = "occupied"
)

// Valid reports whether s is a known status.
func (s TableStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusOccupied:
		return true
	}
	return false
}

// TableType is the shape category of a table.
type TableType string

const (
	TableCircle TableType = "circle"
	TableBox    TableType = "box"
)

// Valid reports whether t is a known table shape.
func (t TableType) Valid() bool {
	return t == TableCircle || t == TableBox
}

// POIType is the furniture category of a point of interest.
type POIType string

const (
	POIBar        POIType = "bar"
	POISofa       POIType = "sofa"
	POIDoor       POIType = "door"
	POIStairs     POIType = "stairs"
	POIWindow     POIType = "window"
	POIRestroom   POIType = "restroom"
	POIStage      POIType = "stage"
	POIKitchen    POIType = "kitchen"
	POIDanceFloor POIType = "dancefloor"
	POIPlant      POIType = "plant"
)

// Valid reports whether t is a known category.
func (t POIType) Valid() bool {
	switch t {
	case POIBar, POISofa, POIDoor, POIStairs, POIWindow,
		POIRestroom, POIStage, POIKitchen, POIDanceFloor, POIPlant:
		return true
	}
	return false
}

// WallStyle is the stroke style of a wall.
type WallStyle string

const (
	WallSolid  WallStyle = "solid"
	WallDotted WallStyle = "dotted"
	WallDashed WallStyle = "dashed"
)

// Valid reports whether s is a known wall style.
func (s WallStyle) Valid() bool {
	return s == WallSolid || s == WallDotted || s == WallDashed
}

// Placement is the geometry shared by every placeable element.
// XAxis and YAxis are percentages of the container, Width and Height are
// pixels and Rotation is in degrees.
type Placement struct {
	XAxis    float64 `json:"xAxis"`
	YAxis    float64 `json:"yAxis"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
}

// Table is a bookable table on a floor.
type Table struct {
	ID string `json:"id"`
	Placement
	TableNumber int         `json:"tableNumber"`
	Capacity    int         `json:"capacity"`
	Price       float64     `json:"price"`
	Status      TableStatus `json:"status"`
	TableType   TableType   `json:"tableType"`
	Description string      `json:"description"`
}

// PointOfInterest is a non-table fixture such as a bar or a door.
type PointOfInterest struct {
	ID string `json:"id"`
	Placement
	Type POIType `json:"type"`
	Name string  `json:"name"`
}

// Wall is a single boundary segment.
type Wall struct {
	ID        string    `json:"id"`
	StartX    float64   `json:"startX"`
	StartY    float64   `json:"startY"`
	EndX      float64   `json:"endX"`
	EndY      float64   `json:"endY"`
	Thickness float64   `json:"thickness"`
	Color     string    `json:"color"`
	Style     WallStyle `json:"style"`
}

// Floor is one venue layout.
type Floor struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	BackgroundImage  string            `json:"backgroundImage,omitempty"`
	Tables           []Table           `json:"tables"`
	PointsOfInterest []PointOfInterest `json:"pointsOfInterest"`
	Walls            []Wall            `json:"walls"`
}

// FloorSummary is the listing view of a floor.
type FloorSummary struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	BackgroundImage string `json:"backgroundImage,omitempty"`
	Tables          int    `json:"tables"`
	Points          int    `json:"pointsOfInterest"`
	Walls           int    `json:"walls"`
}

// Clone returns a deep copy of f.
func (f Floor) Clone() Floor {
	f.Tables = slices.Clone(f.Tables)
	f.PointsOfInterest = slices.Clone(f.PointsOfInterest)
	f.Walls = slices.Clone(f.Walls)
	return f
}

// HasElement reports whether id is used by any table or point of interest.
func (f Floor) HasElement(id string) bool {
	for _, t := range f.Tables {
		if t.ID == id {
			return true
		}
	}
	for _, p := range f.PointsOfInterest {
		if p.ID == id {
			return true
		}
	}
	return false
}

// DuplicateIDs returns ids that appear more than once across tables and
// points of interest.
func (f Floor) DuplicateIDs() []string {
	seen := make(map[string]int, len(f.Tables)+len(f.PointsOfInterest))
	for _, t := range f.Tables {
		seen[t.ID]++
	}
	for _, p := range f.PointsOfInterest {
		seen[p.ID]++
	}
	var dups []string
	for id, n := range seen {
		if n > 1 {
			dups = append(dups, id)
		}
	}
	slices.Sort(dups)
	return dups
}
