package postgres

import "time"

// EntryDTO is one stored key. Values are JSON documents kept as text.
type EntryDTO struct {
	Key       string `gorm:"primaryKey;size:128"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName specifies the database table name for key-value entries.
func (EntryDTO) TableName() string {
	return "kv_entries"
}
