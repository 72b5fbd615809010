package floor

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"floorplan/core/storage"
	"floorplan/feature/floor/models"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service handles floor operations. It is also the store behind editing
// sessions: it loads the floors they start from and persists their intents.
type Service struct {
	repo   *Repository
	client storage.Client
	bucket string
	logger *zap.Logger
	newID  func() string
}

// NewService creates a new floor service. client may be nil, in which case
// background images are unavailable.
func NewService(repo *Repository, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		client: client,
		bucket: bucket,
		logger: logger,
		newID:  uuid.NewString,
	}
}

// ListFloors returns all floors.
func (s *Service) ListFloors(ctx context.Context) ([]models.FloorSummary, error) {
	return s.repo.ListFloors(ctx)
}

// GetFloor returns a floor with its elements.
func (s *Service) GetFloor(ctx context.Context, id string) (*models.Floor, error) {
	return s.repo.GetFloor(ctx, id)
}

// CreateFloor validates and stores a new floor. Missing element ids are generated.
func (s *Service) CreateFloor(ctx context.Context, req models.CreateFloorRequest) (*models.Floor, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("floor name is required: %w", models.ErrInvalid)
	}

	f := models.Floor{
		ID:               s.newID(),
		Name:             name,
		Tables:           append([]models.Table{}, req.Tables...),
		PointsOfInterest: append([]models.PointOfInterest{}, req.PointsOfInterest...),
		Walls:            append([]models.Wall{}, req.Walls...),
	}
	for i := range f.Tables {
		s.fillTable(&f.Tables[i])
	}
	for i := range f.PointsOfInterest {
		s.fillPOI(&f.PointsOfInterest[i])
	}
	for i := range f.Walls {
		if f.Walls[i].ID == "" {
			f.Walls[i].ID = s.newID()
		}
	}
	if err := validateElements(f); err != nil {
		return nil, err
	}

	if err := s.repo.CreateFloor(ctx, f); err != nil {
		return nil, err
	}
	s.logger.Info("Floor created", zap.String("floor_id", f.ID), zap.String("name", f.Name))
	return &f, nil
}

// RenameFloor changes the name of a floor.
func (s *Service) RenameFloor(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("floor name is required: %w", models.ErrInvalid)
	}
	return s.repo.UpdateFloor(ctx, id, map[string]any{"name": name})
}

// DeleteFloor removes a floor and its background image.
func (s *Service) DeleteFloor(ctx context.Context, id string) error {
	f, err := s.repo.GetFloor(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteFloor(ctx, id); err != nil {
		return err
	}
	if f.BackgroundImage != "" && s.client != nil {
		if err := s.client.RemoveObject(ctx, s.bucket, f.BackgroundImage, minio.RemoveObjectOptions{}); err != nil {
			// The floor is gone; an orphaned image is only logged.
			s.logger.Warn("Failed to remove floor background", zap.String("floor_id", id), zap.String("key", f.BackgroundImage), zap.Error(err))
		}
	}
	s.logger.Info("Floor deleted", zap.String("floor_id", id))
	return nil
}

func (s *Service) fillTable(t *models.Table) {
	if t.ID == "" {
		t.ID = s.newID()
	}
	if t.TableType == "" {
		t.TableType = models.TableBox
	}
	if t.Status == "" {
		t.Status = models.StatusAvailable
	}
	if t.Width == 0 && t.Height == 0 {
		t.Width, t.Height = models.DefaultTableSize(t.TableType)
	}
}

func (s *Service) fillPOI(p *models.PointOfInterest) {
	if p.ID == "" {
		p.ID = s.newID()
	}
	if p.Width == 0 && p.Height == 0 {
		p.Width, p.Height = models.DefaultPOISize(p.Type)
	}
}

func validateElements(f models.Floor) error {
	for _, t := range f.Tables {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	for _, p := range f.PointsOfInterest {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	for _, w := range f.Walls {
		if err := w.Validate(); err != nil {
			return err
		}
	}
	if dups := f.DuplicateIDs(); len(dups) > 0 {
		return fmt.Errorf("elements %s: %w", strings.Join(dups, ", "), models.ErrDuplicateID)
	}
	return nil
}

// newPlacement is where added elements appear when no placement is given.
func newPlacement(width, height float64) models.Placement {
	return models.Placement{XAxis: 10, YAxis: 10, Width: width, Height: height}
}

// AddTable adds a table to a floor.
func (s *Service) AddTable(ctx context.Context, floorID string, req models.AddTableRequest) (*models.Table, error) {
	t := models.Table{
		ID:          req.ID,
		TableNumber: req.TableNumber,
		Capacity:    req.Capacity,
		Price:       req.Price,
		TableType:   req.TableType,
		Description: req.Description,
	}
	if t.TableType == "" {
		t.TableType = models.TableBox
	}
	if req.Placement != nil {
		t.Placement = *req.Placement
	} else {
		w, h := models.DefaultTableSize(t.TableType)
		t.Placement = newPlacement(w, h)
	}
	s.fillTable(&t)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.CreateTable(ctx, floorID, t); err != nil {
		return nil, err
	}
	return &t, nil
}

// AddPOI adds a point of interest to a floor.
func (s *Service) AddPOI(ctx context.Context, floorID string, req models.AddPOIRequest) (*models.PointOfInterest, error) {
	p := models.PointOfInterest{ID: req.ID, Type: req.Type, Name: req.Name}
	if req.Placement != nil {
		p.Placement = *req.Placement
	} else {
		w, h := models.DefaultPOISize(p.Type)
		p.Placement = newPlacement(w, h)
	}
	s.fillPOI(&p)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.CreatePOI(ctx, floorID, p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateTable applies a partial update to a table.
func (s *Service) UpdateTable(ctx context.Context, floorID, id string, patch models.TablePatch) (*models.Table, error) {
	t, err := s.repo.GetTable(ctx, floorID, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(t)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.SaveTable(ctx, floorID, *t); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdatePOI applies a partial update to a point of interest.
func (s *Service) UpdatePOI(ctx context.Context, floorID, id string, patch models.POIPatch) (*models.PointOfInterest, error) {
	p, err := s.repo.GetPOI(ctx, floorID, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(p)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.SavePOI(ctx, floorID, *p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdatePlacement stores the geometry an editing gesture settled on.
func (s *Service) UpdatePlacement(ctx context.Context, floorID string, kind models.ElementKind, id string, p models.Placement) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return s.repo.UpdatePlacement(ctx, floorID, kind, id, p)
}

// DeleteElement removes a table, point of interest or wall.
func (s *Service) DeleteElement(ctx context.Context, floorID string, kind models.ElementKind, id string) error {
	return s.repo.DeleteElement(ctx, floorID, kind, id)
}

// AddWalls stores the segments of a finished wall polyline.
func (s *Service) AddWalls(ctx context.Context, floorID string, walls []models.Wall) error {
	for i := range walls {
		if walls[i].ID == "" {
			walls[i].ID = s.newID()
		}
		if err := walls[i].Validate(); err != nil {
			return err
		}
	}
	return s.repo.AddWalls(ctx, floorID, walls)
}

// UndoWall removes the most recently added wall of a floor.
func (s *Service) UndoWall(ctx context.Context, floorID string) (*models.Wall, error) {
	w, err := s.repo.LastWall(ctx, floorID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.DeleteElement(ctx, floorID, models.KindWall, w.ID); err != nil {
		return nil, err
	}
	return w, nil
}

// ReplaceElements overwrites the elements of a floor with the given snapshot.
func (s *Service) ReplaceElements(ctx context.Context, f models.Floor) error {
	if err := validateElements(f); err != nil {
		return err
	}
	return s.repo.ReplaceElements(ctx, f)
}

// BackgroundKey is the object key of a floor background image.
func BackgroundKey(floorID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("floors/%s/background%s", floorID, ext)
}

var backgroundTypes = map[string]bool{
	"image/png":     true,
	"image/jpeg":    true,
	"image/svg+xml": true,
	"image/webp":    true,
}

// UploadBackground stores a background image and links it to the floor.
func (s *Service) UploadBackground(ctx context.Context, floorID, filename, contentType string, r io.Reader, size int64) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("object storage is not configured")
	}
	if !backgroundTypes[contentType] {
		return "", fmt.Errorf("unsupported background type %q: %w", contentType, models.ErrInvalid)
	}
	if _, err := s.repo.GetFloor(ctx, floorID); err != nil {
		return "", err
	}

	key := BackgroundKey(floorID, filename)
	if _, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return "", fmt.Errorf("failed to upload background: %w", err)
	}
	if err := s.repo.UpdateFloor(ctx, floorID, map[string]any{"background_image": key}); err != nil {
		return "", err
	}
	return key, nil
}

// Background opens the background image of a floor.
func (s *Service) Background(ctx context.Context, floorID string) (io.ReadCloser, string, error) {
	if s.client == nil {
		return nil, "", fmt.Errorf("object storage is not configured")
	}
	f, err := s.repo.GetFloor(ctx, floorID)
	if err != nil {
		return nil, "", err
	}
	if f.BackgroundImage == "" {
		return nil, "", fmt.Errorf("floor %s has no background: %w", floorID, models.ErrNotFound)
	}
	obj, err := s.client.GetObject(ctx, s.bucket, f.BackgroundImage, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to open background: %w", err)
	}
	return obj, contentTypeFor(f.BackgroundImage), nil
}

func contentTypeFor(key string) string {
	switch strings.ToLower(path.Ext(key)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".svg":
		return "image/svg+xml"
	case ".webp":
		return "image/webp"
	}
	return "application/octet-stream"
}
