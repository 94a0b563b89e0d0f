package models

import "github.com/google/uuid"

// Candidate is a prospective nearby professional loaded from the profile store.
type Candidate struct {
	ID                uuid.UUID   `json:"id"`
	Position          Coordinates `json:"position"`
	Name              string      `json:"name"`
	Role              string      `json:"role,omitempty"`
	Company           string      `json:"company,omitempty"`
	AvatarURL         string      `json:"avatar_url,omitempty"`
	MutualConnections int         `json:"mutual_connections"`
}

// ScoredCandidate is a Candidate annotated by one proximity pass. It is never persisted.
type ScoredCandidate struct {
	Candidate
	DistanceMeters float64 `json:"distance_meters"`
	MatchScore     int     `json:"match_score"`
	ColorTag       string  `json:"color_tag"`
}
