package render

// Config holds the render defaults.
type Config struct {
	// Width is the canvas width in pixels when a request gives none.
	Width int `mapstructure:"width" default:"1000"`
	// Height is the canvas height in pixels when a request gives none.
	Height int `mapstructure:"height" default:"500"`
	// Prefix is the object key prefix of published renders.
	Prefix string `mapstructure:"prefix" default:"renders"`
}

const maxSide = 8000

// Size resolves a requested canvas size against the defaults.
func (c Config) Size(width, height int) (int, int) {
	w, h := c.Width, c.Height
	if w <= 0 {
		w = 1000
	}
	if h <= 0 {
		h = 500
	}
	if width > 0 {
		w = width
	}
	if height > 0 {
		h = height
	}
	return min(w, maxSide), min(h, maxSide)
}
