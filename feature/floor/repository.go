package floor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"floorplan/core/database"
	"floorplan/feature/floor/models"

	"gorm.io/gorm"
)

// Repository stores floors and their elements with GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the floor tables.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&models.FloorRow{}, &models.TableRow{}, &models.POIRow{}, &models.WallRow{}); err != nil {
		return fmt.Errorf("failed to migrate floor tables: %w", err)
	}
	return nil
}

var expectedColumns = map[string][]string{
	"floors":             {"id", "name", "background_image"},
	"floor_tables":       {"floor_id", "id", "x_axis", "y_axis", "width", "height", "rotation", "table_number", "capacity", "status", "table_type"},
	"points_of_interest": {"floor_id", "id", "x_axis", "y_axis", "width", "height", "rotation", "type", "name"},
	"walls":              {"floor_id", "id", "seq", "start_x", "start_y", "end_x", "end_y", "thickness", "color", "style"},
}

// Verify checks that every floor table carries the columns the repository writes.
func (r *Repository) Verify() error {
	var problems []string
	for _, table := range []string{"floors", "floor_tables", "points_of_interest", "walls"} {
		missing, err := database.MissingColumns(r.db, table, expectedColumns[table])
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			problems = append(problems, fmt.Sprintf("%s: %s", table, strings.Join(missing, ", ")))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("floor schema is missing columns (%s)", strings.Join(problems, "; "))
	}
	return nil
}

// ListFloors returns every floor with element counts.
func (r *Repository) ListFloors(ctx context.Context) ([]models.FloorSummary, error) {
	var rows []models.FloorRow
	if err := r.db.WithContext(ctx).Order("name, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list floors: %w", err)
	}

	out := make([]models.FloorSummary, 0, len(rows))
	for _, row := range rows {
		s := models.FloorSummary{ID: row.ID, Name: row.Name, BackgroundImage: row.BackgroundImage}
		var n int64
		if err := r.db.WithContext(ctx).Model(&models.TableRow{}).Where("floor_id = ?", row.ID).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("failed to count tables: %w", err)
		}
		s.Tables = int(n)
		if err := r.db.WithContext(ctx).Model(&models.POIRow{}).Where("floor_id = ?", row.ID).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("failed to count points of interest: %w", err)
		}
		s.Points = int(n)
		if err := r.db.WithContext(ctx).Model(&models.WallRow{}).Where("floor_id = ?", row.ID).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("failed to count walls: %w", err)
		}
		s.Walls = int(n)
		out = append(out, s)
	}
	return out, nil
}

// GetFloor loads a floor with all its elements. Walls come back in drawing order.
func (r *Repository) GetFloor(ctx context.Context, id string) (*models.Floor, error) {
	db := r.db.WithContext(ctx)

	var row models.FloorRow
	if err := db.Where("id = ?", id).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("floor %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load floor: %w", err)
	}

	var tables []models.TableRow
	if err := db.Where("floor_id = ?", id).Order("table_number, id").Find(&tables).Error; err != nil {
		return nil, fmt.Errorf("failed to load tables: %w", err)
	}
	var pois []models.POIRow
	if err := db.Where("floor_id = ?", id).Order("id").Find(&pois).Error; err != nil {
		return nil, fmt.Errorf("failed to load points of interest: %w", err)
	}
	var walls []models.WallRow
	if err := db.Where("floor_id = ?", id).Order("seq").Find(&walls).Error; err != nil {
		return nil, fmt.Errorf("failed to load walls: %w", err)
	}

	f := &models.Floor{
		ID:               row.ID,
		Name:             row.Name,
		BackgroundImage:  row.BackgroundImage,
		Tables:           make([]models.Table, 0, len(tables)),
		PointsOfInterest: make([]models.PointOfInterest, 0, len(pois)),
		Walls:            make([]models.Wall, 0, len(walls)),
	}
	for _, t := range tables {
		f.Tables = append(f.Tables, t.ToDomain())
	}
	for _, p := range pois {
		f.PointsOfInterest = append(f.PointsOfInterest, p.ToDomain())
	}
	for _, w := range walls {
		f.Walls = append(f.Walls, w.ToDomain())
	}
	return f, nil
}

// CreateFloor inserts a floor and its elements in one transaction.
func (r *Repository) CreateFloor(ctx context.Context, f models.Floor) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := models.FloorRow{ID: f.ID, Name: f.Name, BackgroundImage: f.BackgroundImage}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to create floor: %w", err)
		}
		return insertElements(tx, f)
	})
}

// UpdateFloor changes the descriptive fields of a floor.
func (r *Repository) UpdateFloor(ctx context.Context, id string, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&models.FloorRow{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("failed to update floor: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return r.requireFloor(r.db.WithContext(ctx), id)
	}
	return nil
}

// DeleteFloor removes a floor and every element on it.
func (r *Repository) DeleteFloor(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteElements(tx, id); err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.FloorRow{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete floor: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("floor %s: %w", id, models.ErrNotFound)
		}
		return nil
	})
}

// CreateTable inserts a table on an existing floor.
func (r *Repository) CreateTable(ctx context.Context, floorID string, t models.Table) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.requireFloor(tx, floorID); err != nil {
			return err
		}
		if err := requireUnused(tx, floorID, t.ID); err != nil {
			return err
		}
		row := models.NewTableRow(floorID, t)
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
		return nil
	})
}

// CreatePOI inserts a point of interest on an existing floor.
func (r *Repository) CreatePOI(ctx context.Context, floorID string, p models.PointOfInterest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.requireFloor(tx, floorID); err != nil {
			return err
		}
		if err := requireUnused(tx, floorID, p.ID); err != nil {
			return err
		}
		row := models.NewPOIRow(floorID, p)
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to create point of interest: %w", err)
		}
		return nil
	})
}

// GetTable loads a single table.
func (r *Repository) GetTable(ctx context.Context, floorID, id string) (*models.Table, error) {
	var row models.TableRow
	if err := r.db.WithContext(ctx).Where("floor_id = ? AND id = ?", floorID, id).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("table %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load table: %w", err)
	}
	t := row.ToDomain()
	return &t, nil
}

// GetPOI loads a single point of interest.
func (r *Repository) GetPOI(ctx context.Context, floorID, id string) (*models.PointOfInterest, error) {
	var row models.POIRow
	if err := r.db.WithContext(ctx).Where("floor_id = ? AND id = ?", floorID, id).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("point of interest %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load point of interest: %w", err)
	}
	p := row.ToDomain()
	return &p, nil
}

// SaveTable overwrites every column of an existing table.
func (r *Repository) SaveTable(ctx context.Context, floorID string, t models.Table) error {
	row := models.NewTableRow(floorID, t)
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return fmt.Errorf("failed to save table: %w", err)
	}
	return nil
}

// SavePOI overwrites every column of an existing point of interest.
func (r *Repository) SavePOI(ctx context.Context, floorID string, p models.PointOfInterest) error {
	row := models.NewPOIRow(floorID, p)
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return fmt.Errorf("failed to save point of interest: %w", err)
	}
	return nil
}

func placementFields(p models.Placement) map[string]any {
	return map[string]any{
		"x_axis":   p.XAxis,
		"y_axis":   p.YAxis,
		"width":    p.Width,
		"height":   p.Height,
		"rotation": p.Rotation,
	}
}

// UpdatePlacement writes the geometry of a table or point of interest.
func (r *Repository) UpdatePlacement(ctx context.Context, floorID string, kind models.ElementKind, id string, p models.Placement) error {
	model, err := modelFor(kind)
	if err != nil {
		return err
	}
	if kind == models.KindWall {
		return fmt.Errorf("walls have no placement: %w", models.ErrInvalid)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(model).Where("floor_id = ? AND id = ?", floorID, id).Count(&n).Error; err != nil {
			return fmt.Errorf("failed to look up %s: %w", kind, err)
		}
		if n == 0 {
			return fmt.Errorf("%s %s: %w", kind, id, models.ErrNotFound)
		}
		if err := tx.Model(model).Where("floor_id = ? AND id = ?", floorID, id).Updates(placementFields(p)).Error; err != nil {
			return fmt.Errorf("failed to update %s placement: %w", kind, err)
		}
		return nil
	})
}

// DeleteElement removes a table, point of interest or wall.
func (r *Repository) DeleteElement(ctx context.Context, floorID string, kind models.ElementKind, id string) error {
	model, err := modelFor(kind)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Where("floor_id = ? AND id = ?", floorID, id).Delete(model)
	if res.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", kind, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, models.ErrNotFound)
	}
	return nil
}

// AddWalls appends walls after the newest wall of the floor, preserving
// their order.
func (r *Repository) AddWalls(ctx context.Context, floorID string, walls []models.Wall) error {
	if len(walls) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.requireFloor(tx, floorID); err != nil {
			return err
		}
		next, err := nextWallSeq(tx, floorID)
		if err != nil {
			return err
		}
		rows := make([]models.WallRow, 0, len(walls))
		for i, w := range walls {
			rows = append(rows, models.NewWallRow(floorID, next+int64(i), w))
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to add walls: %w", err)
		}
		return nil
	})
}

// LastWall returns the most recently added wall of a floor.
func (r *Repository) LastWall(ctx context.Context, floorID string) (*models.Wall, error) {
	var row models.WallRow
	err := r.db.WithContext(ctx).Where("floor_id = ?", floorID).Order("seq DESC").Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("floor %s has no walls: %w", floorID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load last wall: %w", err)
	}
	w := row.ToDomain()
	return &w, nil
}

// ReplaceElements swaps every table, point of interest and wall of a floor
// for the ones in f. Name and background are left alone.
func (r *Repository) ReplaceElements(ctx context.Context, f models.Floor) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.requireFloor(tx, f.ID); err != nil {
			return err
		}
		if err := deleteElements(tx, f.ID); err != nil {
			return err
		}
		return insertElements(tx, f)
	})
}

func (r *Repository) requireFloor(tx *gorm.DB, id string) error {
	var n int64
	if err := tx.Model(&models.FloorRow{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to look up floor: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("floor %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// requireUnused rejects ids already taken by a table or point of interest.
func requireUnused(tx *gorm.DB, floorID, id string) error {
	for _, model := range []any{&models.TableRow{}, &models.POIRow{}} {
		var n int64
		if err := tx.Model(model).Where("floor_id = ? AND id = ?", floorID, id).Count(&n).Error; err != nil {
			return fmt.Errorf("failed to check element id: %w", err)
		}
		if n > 0 {
			return fmt.Errorf("element %s: %w", id, models.ErrDuplicateID)
		}
	}
	return nil
}

func nextWallSeq(tx *gorm.DB, floorID string) (int64, error) {
	var top int64
	if err := tx.Model(&models.WallRow{}).Where("floor_id = ?", floorID).Select("COALESCE(MAX(seq), 0)").Scan(&top).Error; err != nil {
		return 0, fmt.Errorf("failed to read wall sequence: %w", err)
	}
	return top + 1, nil
}

func modelFor(kind models.ElementKind) (any, error) {
	switch kind {
	case models.KindTable:
		return &models.TableRow{}, nil
	case models.KindPOI:
		return &models.POIRow{}, nil
	case models.KindWall:
		return &models.WallRow{}, nil
	}
	return nil, fmt.Errorf("unknown element kind %q: %w", kind, models.ErrInvalid)
}

func deleteElements(tx *gorm.DB, floorID string) error {
	for _, model := range []any{&models.TableRow{}, &models.POIRow{}, &models.WallRow{}} {
		if err := tx.Where("floor_id = ?", floorID).Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear floor elements: %w", err)
		}
	}
	return nil
}

func insertElements(tx *gorm.DB, f models.Floor) error {
	if len(f.Tables) > 0 {
		rows := make([]models.TableRow, 0, len(f.Tables))
		for _, t := range f.Tables {
			rows = append(rows, models.NewTableRow(f.ID, t))
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to insert tables: %w", err)
		}
	}
	if len(f.PointsOfInterest) > 0 {
		rows := make([]models.POIRow, 0, len(f.PointsOfInterest))
		for _, p := range f.PointsOfInterest {
			rows = append(rows, models.NewPOIRow(f.ID, p))
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to insert points of interest: %w", err)
		}
	}
	if len(f.Walls) > 0 {
		rows := make([]models.WallRow, 0, len(f.Walls))
		for i, w := range f.Walls {
			rows = append(rows, models.NewWallRow(f.ID, int64(i+1), w))
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to insert walls: %w", err)
		}
	}
	return nil
}
