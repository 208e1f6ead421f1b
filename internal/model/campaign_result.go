// internal/model/campaign_result.go
package model

import "time"

// CampaignResult records the outcome of one send attempt within a
// campaign. Rows are append-only; re-dispatching a campaign adds new
// rows rather than updating old ones.
type CampaignResult struct {
    ID             string     `db:"id" json:"id"`
    CampaignID     string     `db:"campaign_id" json:"campaign_id"`
    OrganizationID string     `db:"organization_id" json:"organization_id"`
    Status         string     `db:"status" json:"status"` // sent, failed
    SentAt         *time.Time `db:"sent_at" json:"sent_at,omitempty"`
    OpenedAt       *time.Time `db:"opened_at" json:"opened_at,omitempty"`
    RepliedAt      *time.Time `db:"replied_at" json:"replied_at,omitempty"`
    ErrorMessage   string     `db:"error_message" json:"error_message,omitempty"`
    CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}
