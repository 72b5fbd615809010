package editor

import (
	"time"

	"floorplan/core/geometry"
	"floorplan/feature/floor/models"
)

// Config holds the editor settings loaded from configuration.
type Config struct {
	// GridSize is the grid pitch in percent used by the precise-grid modifier.
	GridSize float64 `mapstructure:"grid_size" default:"2.5"`
	// DoubleClickMS is the window in milliseconds in which a second wall click finishes the wall.
	DoubleClickMS int `mapstructure:"double_click_ms" default:"300"`
	// MinWidth is the smallest width in pixels a resize may produce.
	MinWidth float64 `mapstructure:"min_width" default:"30"`
	// MinHeight is the smallest height in pixels a resize may produce.
	MinHeight float64 `mapstructure:"min_height" default:"20"`
	// WallThickness is the initial thickness of drawn walls.
	WallThickness float64 `mapstructure:"wall_thickness" default:"4"`
	// WallColor is the initial color of drawn walls.
	WallColor string `mapstructure:"wall_color" default:"#333333"`
	// WallStyle is the initial stroke style of drawn walls (solid, dotted, dashed).
	WallStyle string `mapstructure:"wall_style" default:"solid"`
	// SessionTTLMinutes is how long an untouched editing session is kept.
	SessionTTLMinutes int `mapstructure:"session_ttl_minutes" default:"30"`
	// JanitorSpec is the cron schedule of the idle session sweep.
	JanitorSpec string `mapstructure:"janitor_spec" default:"@every 1m"`
	// PersistWorkers is the number of background persistence workers.
	PersistWorkers int `mapstructure:"persist_workers" default:"4"`
}

// Settings are the tunables the state machine reads.
type Settings struct {
	GridSize          float64
	SnapAngles        []float64
	DoubleClickWindow time.Duration
	MinWidth          float64
	MinHeight         float64
}

// DefaultSettings returns the stock editor behavior.
func DefaultSettings() Settings {
	return Settings{
		GridSize:          geometry.DefaultGridSize,
		SnapAngles:        geometry.DefaultSnapAngles,
		DoubleClickWindow: 300 * time.Millisecond,
		MinWidth:          30,
		MinHeight:         20,
	}
}

// Settings converts the configuration into state machine settings.
// Zero values fall back to the defaults.
func (c Config) Settings() Settings {
	s := DefaultSettings()
	if c.GridSize > 0 {
		s.GridSize = c.GridSize
	}
	if c.DoubleClickMS > 0 {
		s.DoubleClickWindow = time.Duration(c.DoubleClickMS) * time.Millisecond
	}
	if c.MinWidth > 0 {
		s.MinWidth = c.MinWidth
	}
	if c.MinHeight > 0 {
		s.MinHeight = c.MinHeight
	}
	return s
}

// WallDefaults returns the initial wall styling of a session.
func (c Config) WallDefaults() WallSettings {
	w := WallSettings{Thickness: 4, Color: "#333333", Style: models.WallSolid}
	if c.WallThickness > 0 {
		w.Thickness = c.WallThickness
	}
	if c.WallColor != "" {
		w.Color = c.WallColor
	}
	if s := models.WallStyle(c.WallStyle); s.Valid() {
		w.Style = s
	}
	return w
}

// SessionTTL returns the idle timeout of a session.
func (c Config) SessionTTL() time.Duration {
	if c.SessionTTLMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}
