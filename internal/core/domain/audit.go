package domain

import "time"

// Audit actions recorded in the activity trail.
const (
	AuditUserRegistered   = "user.registered"
	AuditListingCreated   = "listing.created"
	AuditExpertPromoted   = "expert.promoted"
	AuditServiceRequested = "service.requested"
)

// AuditEvent is a single entry in the marketplace activity trail.
// Events are written asynchronously; the trail is best-effort.
type AuditEvent struct {
	ID        int64     `json:"id"`
	ActorID   int64     `json:"actor_id"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  int64     `json:"entity_id"`
	CreatedAt time.Time `json:"created_at"`
}
