package transition

import "ashfall/internal/domain/world"

type Request struct {
	Edge world.ExitEdge
}

type Response struct {
	Moved        bool        `json:"moved"`
	Transitioned bool        `json:"transitioned"`
	PreviousZone string      `json:"previous_zone,omitempty"`
	CurrentZone  string      `json:"current_zone"`
	Fresh        bool        `json:"fresh,omitempty"`
	Traveler     world.Point `json:"traveler"`
	Creatures    int         `json:"creatures"`
	Characters   int         `json:"characters"`
}
