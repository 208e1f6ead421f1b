// internal/model/campaign.go
package model

import "time"

type Campaign struct {
    ID             string     `db:"id" json:"id"`
    Name           string     `db:"name" json:"name"`
    Subject        string     `db:"subject" json:"subject"`
    TargetIndustry string     `db:"target_industry" json:"target_industry"`
    Status         string     `db:"status" json:"status"`
    SentCount      int        `db:"sent_count" json:"sent_count"`
    OpenedCount    int        `db:"opened_count" json:"opened_count"`
    RepliedCount   int        `db:"replied_count" json:"replied_count"`
    UserID         string     `db:"user_id" json:"user_id"`
    CreatedAt      time.Time  `db:"created_at" json:"created_at"`
    UpdatedAt      *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
