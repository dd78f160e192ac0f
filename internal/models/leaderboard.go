package models

import "time"

// Contributor is one row of the complaint-contribution leaderboard.
type Contributor struct {
	Rank                int    `json:"rank"`
	UserID              uint   `json:"user_id"`
	Name                string `json:"name"`
	ComplaintsSubmitted int    `json:"complaints_submitted"`
	ResolvedComplaints  int    `json:"resolved_complaints"`
	IsCurrentUser       bool   `json:"is_current_user"`
}

// MonthlyHero highlights a citizen for a notable community contribution.
type MonthlyHero struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Rank         int       `json:"rank"`
	Name         string    `gorm:"not null" json:"name"`
	Contribution string    `json:"contribution"`
	Impact       string    `json:"impact"`
	Category     string    `json:"category"`
	Month        string    `gorm:"index" json:"month"`
	CreatedAt    time.Time `json:"-"`
}

// LeaderboardSummary aggregates portal-wide activity for the current month.
type LeaderboardSummary struct {
	CurrentMonth      string `json:"current_month"`
	TotalActiveUsers  int64  `json:"total_active_users"`
	TotalComplaints   int64  `json:"total_complaints"`
	ResolvedThisMonth int64  `json:"resolved_this_month"`
}

// DashboardStats summarizes a citizen's view of the portal.
type DashboardStats struct {
	ServicesAvailable int    `json:"services_available"`
	ActiveComplaints  int64  `json:"active_complaints"`
	CommunityGroups   int64  `json:"community_groups"`
	LeaderboardRank   int    `json:"leaderboard_rank"`
}

// Activity is one entry of the dashboard's recent activity feed.
type Activity struct {
	Name   string    `json:"name"`
	Status string    `json:"status"`
	Date   time.Time `json:"date"`
	Type   string    `json:"type"`
}
