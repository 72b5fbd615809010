package models

import "time"

// FloorRow represents the 'floors' table.
type FloorRow struct {
	ID              string    `gorm:"column:id;primaryKey;size:64"`
	Name            string    `gorm:"column:name;size:255"`
	BackgroundImage string    `gorm:"column:background_image;size:512"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name for floors.
func (FloorRow) TableName() string {
	return "floors"
}

// TableRow represents the 'floor_tables' table.
type TableRow struct {
	FloorID     string  `gorm:"column:floor_id;primaryKey;size:64"`
	ID          string  `gorm:"column:id;primaryKey;size:64"`
	XAxis       float64 `gorm:"column:x_axis"`
	YAxis       float64 `gorm:"column:y_axis"`
	Width       float64 `gorm:"column:width"`
	Height      float64 `gorm:"column:height"`
	Rotation    float64 `gorm:"column:rotation"`
	TableNumber int     `gorm:"column:table_number"`
	Capacity    int     `gorm:"column:capacity"`
	Price       float64 `gorm:"column:price"`
	Status      string  `gorm:"column:status;size:16"`
	TableType   string  `gorm:"column:table_type;size:16"`
	Description string  `gorm:"column:description;size:1024"`
}

// TableName overrides the table name for tables.
func (TableRow) TableName() string {
	return "floor_tables"
}

// POIRow represents the 'points_of_interest' table.
type POIRow struct {
	FloorID  string  `gorm:"column:floor_id;primaryKey;size:64"`
	ID       string  `gorm:"column:id;primaryKey;size:64"`
	XAxis    float64 `gorm:"column:x_axis"`
	YAxis    float64 `gorm:"column:y_axis"`
	Width    float64 `gorm:"column:width"`
	Height   float64 `gorm:"column:height"`
	Rotation float64 `gorm:"column:rotation"`
	Type     string  `gorm:"column:type;size:32"`
	Name     string  `gorm:"column:name;size:255"`
}

// TableName overrides the table name for points of interest.
func (POIRow) TableName() string {
	return "points_of_interest"
}

// WallRow represents the 'walls' table. Seq orders walls by creation so the
// most recent one can be undone.
type WallRow struct {
	FloorID   string  `gorm:"column:floor_id;primaryKey;size:64"`
	ID        string  `gorm:"column:id;primaryKey;size:64"`
	Seq       int64   `gorm:"column:seq;index"`
	StartX    float64 `gorm:"column:start_x"`
	StartY    float64 `gorm:"column:start_y"`
	EndX      float64 `gorm:"column:end_x"`
	EndY      float64 `gorm:"column:end_y"`
	Thickness float64 `gorm:"column:thickness"`
	Color     string  `gorm:"column:color;size:32"`
	Style     string  `gorm:"column:style;size:16"`
}

// TableName overrides the table name for walls.
func (WallRow) TableName() string {
	return "walls"
}

// NewTableRow converts a domain table into its row.
func NewTableRow(floorID string, t Table) TableRow {
	return TableRow{
		FloorID:     floorID,
		ID:          t.ID,
		XAxis:       t.XAxis,
		YAxis:       t.YAxis,
		Width:       t.Width,
		Height:      t.Height,
		Rotation:    t.Rotation,
		TableNumber: t.TableNumber,
		Capacity:    t.Capacity,
		Price:       t.Price,
		Status:      string(t.Status),
		TableType:   string(t.TableType),
		Description: t.Description,
	}
}

// ToDomain converts the row into a domain table.
func (r TableRow) ToDomain() Table {
	return Table{
		ID: r.ID,
		Placement: Placement{
			XAxis:    r.XAxis,
			YAxis:    r.YAxis,
			Width:    r.Width,
			Height:   r.Height,
			Rotation: r.Rotation,
		},
		TableNumber: r.TableNumber,
		Capacity:    r.Capacity,
		Price:       r.Price,
		Status:      TableStatus(r.Status),
		TableType:   TableType(r.TableType),
		Description: r.Description,
	}
}

// NewPOIRow converts a domain point of interest into its row.
func NewPOIRow(floorID string, p PointOfInterest) POIRow {
	return POIRow{
		FloorID:  floorID,
		ID:       p.ID,
		XAxis:    p.XAxis,
		YAxis:    p.YAxis,
		Width:    p.Width,
		Height:   p.Height,
		Rotation: p.Rotation,
		Type:     string(p.Type),
		Name:     p.Name,
	}
}

// ToDomain converts the row into a domain point of interest.
func (r POIRow) ToDomain() PointOfInterest {
	return PointOfInterest{
		ID: r.ID,
		Placement: Placement{
			XAxis:    r.XAxis,
			YAxis:    r.YAxis,
			Width:    r.Width,
			Height:   r.Height,
			Rotation: r.Rotation,
		},
		Type: POIType(r.Type),
		Name: r.Name,
	}
}

// NewWallRow converts a domain wall into its row.
func NewWallRow(floorID string, seq int64, w Wall) WallRow {
	return WallRow{
		FloorID:   floorID,
		ID:        w.ID,
		Seq:       seq,
		StartX:    w.StartX,
		StartY:    w.StartY,
		EndX:      w.EndX,
		EndY:      w.EndY,
		Thickness: w.Thickness,
		Color:     w.Color,
		Style:     string(w.Style),
	}
}

// ToDomain converts the row into a domain wall.
func (r WallRow) ToDomain() Wall {
	return Wall{
		ID:        r.ID,
		StartX:    r.StartX,
		StartY:    r.StartY,
		EndX:      r.EndX,
		EndY:      r.EndY,
		Thickness: r.Thickness,
		Color:     r.Color,
		Style:     WallStyle(r.Style),
	}
}
