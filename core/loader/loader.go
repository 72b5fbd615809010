package loader

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Feature is a module that registers its routes on the application.
type Feature interface {
	Name() string
	IsEnabled() bool
	Load(app fiber.Router) error
}

// Closer is implemented by features holding background resources.
type Closer interface {
	Close(ctx context.Context) error
}

// Manager keeps the registered features in registration order.
type Manager struct {
	features []Feature
	loaded   []Feature
}

// NewManager creates an empty feature manager.
func NewManager() *Manager {
	return &Manager{}
}

// Register adds a feature. Registration order is load order.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// Features returns the registered features.
func (m *Manager) Features() []Feature {
	return m.features
}

// LoadAll loads every enabled feature and stops at the first failure.
func (m *Manager) LoadAll(app fiber.Router) error {
	for _, f := range m.features {
		if !f.IsEnabled() {
			continue
		}
		if err := f.Load(app); err != nil {
			return fmt.Errorf("failed to load feature %s: %w", f.Name(), err)
		}
		m.loaded = append(m.loaded, f)
	}
	return nil
}

// CloseAll closes loaded features in reverse load order and joins the errors.
func (m *Manager) CloseAll(ctx context.Context) error {
	var errs []error
	for i := len(m.loaded) - 1; i >= 0; i-- {
		c, ok := m.loaded[i].(Closer)
		if !ok {
			continue
		}
		if err := c.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to close feature %s: %w", m.loaded[i].Name(), err))
		}
	}
	m.loaded = nil
	return errors.Join(errs...)
}
