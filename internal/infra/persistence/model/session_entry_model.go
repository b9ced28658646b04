// Package model holds the GORM-specific structs mapped to database tables.
package model

import "time"

// SessionEntryModel is the GORM-specific struct for the 'session_entries'
// table. Key is the role-prefixed session key; Value is the serialized
// identity snapshot.
type SessionEntryModel struct {
	Key       string `gorm:"primaryKey;size:128"`
	Value     []byte `gorm:"type:bytea;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionEntryModel) TableName() string {
	return "session_entries"
}
