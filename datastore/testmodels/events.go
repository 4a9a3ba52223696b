package testmodels

import "github.com/go-openapi/strfmt"

// Event is the abstract base record stored for every campaign event.
type Event struct {

	// Unique identifier for the event.
	// Required: true
	ID *string `json:"Id"`

	// Discriminator naming the concrete event type.
	// Required: true
	Type *string `json:"Type"`

	// Timestamp when the event was recorded.
	// Required: true
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"CreatedAt"`
}

// MatchEvent is an Event describing a match, further discriminated by Sub.
type MatchEvent struct {
	Event

	// Second-level discriminator selecting the match flavor.
	Sub string `json:"Sub,omitempty"`

	// Court where the match takes place.
	Court string `json:"Court,omitempty"`
}

// SinglesMatchEvent is a MatchEvent between two players.
type SinglesMatchEvent struct {
	MatchEvent

	// player a
	PlayerA string `json:"PlayerA,omitempty"`

	// player b
	PlayerB string `json:"PlayerB,omitempty"`
}

// DoublesMatchEvent is a MatchEvent between two pairs.
type DoublesMatchEvent struct {
	MatchEvent

	// team a
	TeamA []string `json:"TeamA,omitempty"`

	// team b
	TeamB []string `json:"TeamB,omitempty"`
}

// RatingEvent is an Event adjusting a player rating.
type RatingEvent struct {
	Event

	// Player whose rating changed.
	Player string `json:"Player,omitempty"`

	// Rating delta applied.
	Delta int `json:"Delta,omitempty"`

	// Timestamp when the adjustment was applied.
	// Format: date-time
	AppliedAt *strfmt.DateTime `json:"AppliedAt,omitempty"`
}
