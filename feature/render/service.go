package render

import (
	"context"
	"errors"
	"fmt"

	"floorplan/core/storage"
	"floorplan/feature/floor/models"

	"go.uber.org/zap"
)

// Format is an output image format.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	return f == FormatSVG || f == FormatPNG
}

// ErrUnsupportedFormat is returned for formats other than svg and png.
var ErrUnsupportedFormat = errors.New("unsupported render format")

// FloorSource loads floors to render.
type FloorSource interface {
	GetFloor(ctx context.Context, id string) (*models.Floor, error)
}

// Encode renders f in the given format.
func Encode(f models.Floor, format Format, width, height int) ([]byte, error) {
	switch format {
	case FormatSVG:
		return SVG(f, width, height), nil
	case FormatPNG:
		return PNG(f, width, height)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Service renders stored floors and publishes renders to object storage.
type Service struct {
	cfg    Config
	floors FloorSource
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new render service. client may be nil, in which case
// publishing is unavailable.
func NewService(cfg Config, floors FloorSource, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{cfg: cfg, floors: floors, client: client, bucket: bucket, logger: logger}
}

// Render loads a floor and renders it. Zero sizes take the configured defaults.
func (s *Service) Render(ctx context.Context, floorID string, format Format, width, height int) ([]byte, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	f, err := s.floors.GetFloor(ctx, floorID)
	if err != nil {
		return nil, err
	}
	w, h := s.cfg.Size(width, height)
	return Encode(*f, format, w, h)
}

func (s *Service) floorPrefix(floorID string) string {
	prefix := s.cfg.Prefix
	if prefix == "" {
		prefix = "renders"
	}
	return fmt.Sprintf("%s/%s/", prefix, floorID)
}

// ObjectKey is where a published render of a floor is stored.
func (s *Service) ObjectKey(floorID string, format Format) string {
	return s.floorPrefix(floorID) + "floor." + string(format)
}

// Publish renders a floor and uploads it, returning the object key.
func (s *Service) Publish(ctx context.Context, floorID string, format Format, width, height int) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("object storage is not configured")
	}
	data, err := s.Render(ctx, floorID, format, width, height)
	if err != nil {
		return "", err
	}
	key := s.ObjectKey(floorID, format)
	if err := storage.PutBytes(ctx, s.client, s.bucket, key, data, format.ContentType()); err != nil {
		return "", err
	}
	s.logger.Info("Render published", zap.String("floor_id", floorID), zap.String("key", key), zap.Int("bytes", len(data)))
	return key, nil
}

// Published lists the published renders of a floor.
func (s *Service) Published(ctx context.Context, floorID string) ([]string, error) {
	if s.client == nil {
		return nil, fmt.Errorf("object storage is not configured")
	}
	return storage.ListKeys(ctx, s.client, s.bucket, s.floorPrefix(floorID))
}
