package editor

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"floorplan/core/geometry"
	"floorplan/core/viewport"
	"floorplan/feature/floor/models"
)

// ErrUnknownEvent is returned when an envelope names no known event.
var ErrUnknownEvent = errors.New("unknown event type")

// EventEnvelope is the wire form of an Event.
type EventEnvelope struct {
	Type      string        `json:"type"`
	Target    Target        `json:"target"`
	ClientX   float64       `json:"clientX,omitempty"`
	ClientY   float64       `json:"clientY,omitempty"`
	Rect      viewport.Rect `json:"rect"`
	Modifiers Modifiers     `json:"modifiers"`
	// At is the event time in Unix milliseconds. Zero leaves the event untimed.
	At        int64       `json:"at,omitempty"`
	Key       string      `json:"key,omitempty"`
	ID        string      `json:"id,omitempty"`
	Mode      DrawingMode `json:"mode,omitempty"`
	Style     string      `json:"style,omitempty"`
	Thickness float64     `json:"thickness,omitempty"`
	Color     string      `json:"color,omitempty"`
}

// Decode converts the envelope into an Event. Untimed clicks never pair into
// a double-click.
func (env EventEnvelope) Decode() (Event, error) {
	client := geometry.Point{X: env.ClientX, Y: env.ClientY}

	switch env.Type {
	case EventPointerDown:
		var at time.Time
		if env.At != 0 {
			at = time.UnixMilli(env.At)
		}
		return PointerDown{Target: env.Target, Client: client, Rect: env.Rect, Modifiers: env.Modifiers, At: at}, nil
	case EventPointerMove:
		return PointerMove{Client: client, Rect: env.Rect, Modifiers: env.Modifiers}, nil
	case EventPointerUp:
		return PointerUp{Client: client, Rect: env.Rect}, nil
	case EventPointerEnter:
		return PointerEnter{Target: env.Target}, nil
	case EventPointerLeave:
		return PointerLeave{Target: env.Target}, nil
	case EventKeyDown:
		return KeyDown{Key: env.Key}, nil
	case EventRotate:
		return Rotate{ID: env.ID}, nil
	case EventDelete:
		return Delete{ID: env.ID}, nil
	case EventSelect:
		return Select{ID: env.ID}, nil
	case EventFinishWall:
		return FinishWall{}, nil
	case EventCancelWall:
		return CancelWall{}, nil
	case EventUndoWall:
		return UndoWall{}, nil
	case EventSetDrawingMode:
		if !env.Mode.Valid() {
			return nil, fmt.Errorf("invalid drawing mode %q", env.Mode)
		}
		return SetDrawingMode{Mode: env.Mode}, nil
	case EventSetWallStyle:
		style := models.WallStyle(env.Style)
		if !style.Valid() {
			return nil, fmt.Errorf("invalid wall style %q", env.Style)
		}
		return SetWallStyle{Style: style}, nil
	case EventSetWallThickness:
		if env.Thickness <= 0 {
			return nil, fmt.Errorf("wall thickness must be positive, got %v", env.Thickness)
		}
		return SetWallThickness{Thickness: env.Thickness}, nil
	case EventSetWallColor:
		if env.Color == "" {
			return nil, errors.New("wall color is required")
		}
		return SetWallColor{Color: env.Color}, nil
	case EventTeardown:
		return Teardown{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, env.Type)
}

// DecodeEvents decodes a batch of envelopes, stopping at the first invalid one.
func DecodeEvents(envs []EventEnvelope) ([]Event, error) {
	events := make([]Event, 0, len(envs))
	for i, env := range envs {
		ev, err := env.Decode()
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// ParseEvents decodes a JSON array of envelopes.
func ParseEvents(data []byte) ([]Event, error) {
	var envs []EventEnvelope
	if err := json.Unmarshal(data, &envs); err != nil {
		return nil, fmt.Errorf("failed to parse events: %w", err)
	}
	return DecodeEvents(envs)
}

// Intent is the wire form of an Effect.
type Intent struct {
	Type    string `json:"type"`
	Payload Effect `json:"payload"`
}

// Intents wraps effects for transport.
func Intents(effects []Effect) []Intent {
	out := make([]Intent, 0, len(effects))
	for _, eff := range effects {
		out = append(out, Intent{Type: eff.EffectName(), Payload: eff})
	}
	return out
}
