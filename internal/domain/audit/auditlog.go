package audit

import (
	"errors"
	"time"
)

// Entry is an append-only audit record. Entries are written by every
// state-changing operation and never mutated or deleted; the audit log is a
// write-only sink from this service's perspective.
type Entry struct {
	id           uint
	userID       *uint
	action       string
	resourceType string
	resourceID   uint
	metadata     map[string]interface{}
	performedAt  time.Time
}

// NewEntry creates an audit entry. userID is nil for system-initiated actions.
func NewEntry(userID *uint, action, resourceType string, resourceID uint) (*Entry, error) {
	if action == "" {
		return nil, errors.New("audit action cannot be empty")
	}
	if resourceType == "" {
		return nil, errors.New("audit resource type cannot be empty")
	}

	return &Entry{
		userID:       userID,
		action:       action,
		resourceType: resourceType,
		resourceID:   resourceID,
		metadata:     map[string]interface{}{},
		performedAt:  time.Now().UTC(),
	}, nil
}

// ReconstructEntry rebuilds an audit entry from persistence.
func ReconstructEntry(id uint, userID *uint, action, resourceType string, resourceID uint,
	metadata map[string]interface{}, performedAt time.Time) (*Entry, error) {
	if id == 0 {
		return nil, errors.New("audit entry ID cannot be zero")
	}
	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	return &Entry{
		id:           id,
		userID:       userID,
		action:       action,
		resourceType: resourceType,
		resourceID:   resourceID,
		metadata:     metadata,
		performedAt:  performedAt,
	}, nil
}

func (e *Entry) ID() uint {
	return e.id
}

func (e *Entry) UserID() *uint {
	return e.userID
}

func (e *Entry) Action() string {
	return e.action
}

func (e *Entry) ResourceType() string {
	return e.resourceType
}

func (e *Entry) ResourceID() uint {
	return e.resourceID
}

func (e *Entry) PerformedAt() time.Time {
	return e.performedAt
}

// Metadata returns a copy of the entry metadata.
func (e *Entry) Metadata() map[string]interface{} {
	out := make(map[string]interface{}, len(e.metadata))
	for k, v := range e.metadata {
		out[k] = v
	}
	return out
}

// AddMetadata attaches a key to the entry before it is recorded.
func (e *Entry) AddMetadata(key string, value interface{}) {
	if e.metadata == nil {
		e.metadata = map[string]interface{}{}
	}
	e.metadata[key] = value
}
