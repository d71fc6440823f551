// internal/models/lead.go
package models

import "strings"

// Lead is a prospect record as stored in the CRM.
type Lead struct {
	ID          string  `json:"id" db:"id"`
	UserID      string  `json:"userId" db:"user_id"`
	Name        string  `json:"name" db:"name"`
	OwnerName   string  `json:"ownerName" db:"owner_name"`
	Category    string  `json:"category" db:"category"`
	City        string  `json:"city" db:"city"`
	Website     string  `json:"website" db:"website"`
	Phone       string  `json:"phone" db:"phone"`
	Email       string  `json:"email" db:"email"`
	Instagram   string  `json:"instagram" db:"instagram"`
	Facebook    string  `json:"facebook" db:"facebook"`
	TikTok      string  `json:"tiktok" db:"tiktok"`
	LinkedIn    string  `json:"linkedin" db:"linkedin"`
	Rating      float64 `json:"rating" db:"rating"`
	ReviewCount int     `json:"reviewCount" db:"review_count"`
	LeadScore   int     `json:"leadScore" db:"lead_score"`
	AIBriefing  string  `json:"aiBriefing" db:"ai_briefing"`
}

// HasWebsite reports whether the lead has any web presence recorded.
func (l *Lead) HasWebsite() bool {
	return strings.TrimSpace(l.Website) != ""
}
