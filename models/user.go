package models

import "time"

// Identity is the authenticated caller as asserted by the external OAuth
// identity provider. The email is the stable key every user record is
// stored under; name and picture are passed through to the record on each
// push so the profile stays current.
type Identity struct {
	// Email is the unique, stable user key.
	Email string `json:"email"`

	// Name is the display name from the identity claims.
	Name string `json:"name,omitempty"`

	// Picture is an opaque avatar reference from the identity claims.
	Picture string `json:"picture,omitempty"`
}

// UserRecord is the single document the cloud keeps per authenticated
// identity: the current payload, the bounded snapshot history, and
// profile metadata refreshed on every accepted push.
type UserRecord struct {
	// Email is the record key.
	Email string `json:"email"`

	// Name is the display name, refreshed from identity claims on push.
	Name string `json:"name,omitempty"`

	// Image is the avatar reference, refreshed from identity claims on push.
	Image string `json:"image,omitempty"`

	// Data is the current payload, replaced wholesale on every push.
	// Nil means the identity has never pushed.
	Data *Payload `json:"data"`

	// LastSync is the timestamp of the most recent accepted write.
	// Monotonically non-decreasing.
	LastSync *time.Time `json:"lastSync,omitempty"`

	// Snapshots is the retained history, oldest first, at most
	// MaxSnapshots entries.
	Snapshots []Snapshot `json:"snapshots,omitempty"`

	// CreatedAt is set once on first push and never overwritten.
	CreatedAt time.Time `json:"createdAt"`
}

// MaxSnapshots bounds the retained history per user. When a push would
// exceed it, the oldest snapshots are dropped first.
const MaxSnapshots = 20

// TableName returns the name of the database table
// associated with the UserRecord model.
func (u UserRecord) TableName() string {
	return "users"
}
