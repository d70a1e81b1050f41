package model

import (
	"time"

	"github.com/google/uuid"
)

// BroadcastModel is the GORM-specific struct for the 'broadcasts' table.
// It is the audit record of one broadcast dispatch.
type BroadcastModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ActorUID         string    `gorm:"type:text;not null;index"`
	Title            string    `gorm:"type:text;not null"`
	Body             string    `gorm:"type:text;not null"`
	LinkURL          string    `gorm:"type:text;not null;default:'/'"`
	Kind             string    `gorm:"type:text;not null;default:'broadcast'"`
	Attempted        int       `gorm:"not null;default:0"`
	Succeeded        int       `gorm:"not null;default:0"`
	Failed           int       `gorm:"not null;default:0"`
	DuplicatesPruned int       `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (BroadcastModel) TableName() string {
	return "broadcasts"
}

// BroadcastFailureLogModel is the GORM-specific struct for the
// 'broadcast_failure_logs' table. Only token previews are stored.
type BroadcastFailureLogModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BroadcastID  uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenPreview string    `gorm:"type:text;not null"`
	ErrorCode    string    `gorm:"type:text"`
	ErrorMessage string    `gorm:"type:text"`
	Permanent    bool      `gorm:"not null;default:false"`
	SentAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (BroadcastFailureLogModel) TableName() string {
	return "broadcast_failure_logs"
}
