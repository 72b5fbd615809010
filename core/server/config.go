package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// Mode selects the editing capability of the canvas (admin, booking).
	Mode string `mapstructure:"mode" default:"admin"`
}

const (
	// ModeAdmin allows moving, resizing, rotating and deleting elements and drawing walls.
	ModeAdmin = "admin"
	// ModeBooking only allows selecting elements and hovering walls.
	ModeBooking = "booking"
)

// IsValidMode checks if the configured mode is valid.
func (c Config) IsValidMode() bool {
	switch c.Mode {
	case ModeAdmin, ModeBooking:
		return true
	default:
		return false
	}
}

// AllowEdit reports whether sessions may mutate the floor.
func (c Config) AllowEdit() bool {
	return c.Mode != ModeBooking
}
