package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// CommunityGroup is a citizen group citizens can join and leave. The joined
// flag exposed per viewer and the member count always move together.
type CommunityGroup struct {
	ID           string         `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	Description  string         `json:"description"`
	Category     string         `gorm:"index" json:"category"`
	Members      int            `gorm:"default:0" json:"members"`
	Tags         pq.StringArray `gorm:"type:text[]" json:"tags,omitempty"`
	LastActivity time.Time      `json:"last_activity"`
	CreatedAt    time.Time      `json:"created_at"`
}

func (g *CommunityGroup) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	return nil
}

// GroupMembership records that a user belongs to a group.
type GroupMembership struct {
	GroupID   string    `gorm:"primaryKey" json:"group_id"`
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// GroupView is a community group as seen by one viewer.
type GroupView struct {
	CommunityGroup
	IsJoined bool `json:"is_joined"`
}

// CommunityPost is a message published inside a group.
type CommunityPost struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	GroupID   string    `gorm:"index" json:"group_id"`
	GroupName string    `json:"group_name"`
	Author    string    `json:"author"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `json:"content"`
	Likes     int       `gorm:"default:0" json:"likes"`
	Comments  int       `gorm:"default:0" json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *CommunityPost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
