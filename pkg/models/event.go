package models

import "github.com/specularhq/specular/ent"

// EventsResponse contains the events on a channel since a given ID
type EventsResponse struct {
	Events []*ent.AuditEvent `json:"events"`
}
