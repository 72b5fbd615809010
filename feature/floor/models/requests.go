package models

import (
	"fmt"
	"math"
)

// CreateFloorRequest is the body of a floor creation. Elements are optional.
type CreateFloorRequest struct {
	Name             string            `json:"name"`
	Tables           []Table           `json:"tables"`
	PointsOfInterest []PointOfInterest `json:"pointsOfInterest"`
	Walls            []Wall            `json:"walls"`
}

// UpdateFloorRequest renames a floor.
type UpdateFloorRequest struct {
	Name string `json:"name"`
}

// AddTableRequest adds a table. Empty fields take defaults from the table type.
type AddTableRequest struct {
	ID          string     `json:"id"`
	TableNumber int        `json:"tableNumber"`
	Capacity    int        `json:"capacity"`
	Price       float64    `json:"price"`
	TableType   TableType  `json:"tableType"`
	Description string     `json:"description"`
	Placement   *Placement `json:"placement,omitempty"`
}

// AddPOIRequest adds a point of interest. Size defaults from the category.
type AddPOIRequest struct {
	ID        string     `json:"id"`
	Type      POIType    `json:"type"`
	Name      string     `json:"name"`
	Placement *Placement `json:"placement,omitempty"`
}

// PlacementPatch changes some geometry fields.
type PlacementPatch struct {
	XAxis    *float64 `json:"xAxis,omitempty"`
	YAxis    *float64 `json:"yAxis,omitempty"`
	Width    *float64 `json:"width,omitempty"`
	Height   *float64 `json:"height,omitempty"`
	Rotation *float64 `json:"rotation,omitempty"`
}

// Apply writes the set fields onto p.
func (pp PlacementPatch) Apply(p *Placement) {
	if pp.XAxis != nil {
		p.XAxis = *pp.XAxis
	}
	if pp.YAxis != nil {
		p.YAxis = *pp.YAxis
	}
	if pp.Width != nil {
		p.Width = *pp.Width
	}
	if pp.Height != nil {
		p.Height = *pp.Height
	}
	if pp.Rotation != nil {
		p.Rotation = *pp.Rotation
	}
}

// Empty reports whether no field is set.
func (pp PlacementPatch) Empty() bool {
	return pp.XAxis == nil && pp.YAxis == nil && pp.Width == nil && pp.Height == nil && pp.Rotation == nil
}

// TablePatch is a partial table update.
type TablePatch struct {
	PlacementPatch
	TableNumber *int         `json:"tableNumber,omitempty"`
	Capacity    *int         `json:"capacity,omitempty"`
	Price       *float64     `json:"price,omitempty"`
	Status      *TableStatus `json:"status,omitempty"`
	TableType   *TableType   `json:"tableType,omitempty"`
	Description *string      `json:"description,omitempty"`
}

// StatusOnly reports whether the patch touches nothing but the booking status.
func (tp TablePatch) StatusOnly() bool {
	return tp.Status != nil && tp.PlacementPatch.Empty() && tp.TableNumber == nil &&
		tp.Capacity == nil && tp.Price == nil && tp.TableType == nil && tp.Description == nil
}

// Apply writes the set fields onto t.
func (tp TablePatch) Apply(t *Table) {
	tp.PlacementPatch.Apply(&t.Placement)
	if tp.TableNumber != nil {
		t.TableNumber = *tp.TableNumber
	}
	if tp.Capacity != nil {
		t.Capacity = *tp.Capacity
	}
	if tp.Price != nil {
		t.Price = *tp.Price
	}
	if tp.Status != nil {
		t.Status = *tp.Status
	}
	if tp.TableType != nil {
		t.TableType = *tp.TableType
	}
	if tp.Description != nil {
		t.Description = *tp.Description
	}
}

// POIPatch is a partial point of interest update.
type POIPatch struct {
	PlacementPatch
	Type *POIType `json:"type,omitempty"`
	Name *string  `json:"name,omitempty"`
}

// Apply writes the set fields onto p.
func (pp POIPatch) Apply(p *PointOfInterest) {
	pp.PlacementPatch.Apply(&p.Placement)
	if pp.Type != nil {
		p.Type = *pp.Type
	}
	if pp.Name != nil {
		p.Name = *pp.Name
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Validate checks position range, positive size and finite rotation.
func (p Placement) Validate() error {
	if !finite(p.XAxis, p.YAxis, p.Width, p.Height, p.Rotation) {
		return fmt.Errorf("placement values must be finite: %w", ErrInvalid)
	}
	if p.XAxis < 0 || p.XAxis > 100 || p.YAxis < 0 || p.YAxis > 100 {
		return fmt.Errorf("position must be within 0..100 percent: %w", ErrInvalid)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("size must be positive: %w", ErrInvalid)
	}
	return nil
}

// Validate checks a table.
func (t Table) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("table id is required: %w", ErrInvalid)
	}
	if !t.TableType.Valid() {
		return fmt.Errorf("unknown table type %q: %w", t.TableType, ErrInvalid)
	}
	if !t.Status.Valid() {
		return fmt.Errorf("unknown table status %q: %w", t.Status, ErrInvalid)
	}
	if t.Capacity < 0 || t.Price < 0 {
		return fmt.Errorf("capacity and price must not be negative: %w", ErrInvalid)
	}
	return t.Placement.Validate()
}

// Validate checks a point of interest.
func (p PointOfInterest) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("point of interest id is required: %w", ErrInvalid)
	}
	if !p.Type.Valid() {
		return fmt.Errorf("unknown point of interest type %q: %w", p.Type, ErrInvalid)
	}
	return p.Placement.Validate()
}

// Validate checks a wall segment.
func (w Wall) Validate() error {
	if w.ID == "" {
		return fmt.Errorf("wall id is required: %w", ErrInvalid)
	}
	if !finite(w.StartX, w.StartY, w.EndX, w.EndY, w.Thickness) {
		return fmt.Errorf("wall coordinates must be finite: %w", ErrInvalid)
	}
	if w.Thickness <= 0 {
		return fmt.Errorf("wall thickness must be positive: %w", ErrInvalid)
	}
	if !w.Style.Valid() {
		return fmt.Errorf("unknown wall style %q: %w", w.Style, ErrInvalid)
	}
	return nil
}
