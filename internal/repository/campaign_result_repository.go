package repository

import (
    "database/sql"
    "time"

    "github.com/google/uuid"

    "github.com/soundreach/outreach-backend/internal/model"
)

type CampaignResultRepositoryInterface interface {
    Create(res *model.CampaignResult) error
    ListByCampaign(campaignID string) ([]model.CampaignResult, error)
    CountByStatus(campaignID string) (map[string]int, error)
}

// CampaignResultRepository persists per-recipient dispatch outcomes.
// Rows are append-only; a re-dispatch adds rows, nothing is updated.
type CampaignResultRepository struct {
    DB *sql.DB
}

func (r *CampaignResultRepository) Create(res *model.CampaignResult) error {
    if res.ID == "" {
        res.ID = uuid.NewString()
    }
    res.CreatedAt = time.Now()

    query := `
        INSERT INTO campaign_results
            (id, campaign_id, organization_id, status, sent_at, error_message, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
    return r.DB.QueryRow(query,
        res.ID, res.CampaignID, res.OrganizationID, res.Status,
        res.SentAt, res.ErrorMessage, res.CreatedAt,
    ).Scan(&res.ID)
}

func (r *CampaignResultRepository) ListByCampaign(campaignID string) ([]model.CampaignResult, error) {
    query := `
        SELECT id, campaign_id, organization_id, status, sent_at, opened_at, replied_at, error_message, created_at
        FROM campaign_results
        WHERE campaign_id=$1
        ORDER BY created_at ASC
    `
    rows, err := r.DB.Query(query, campaignID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    results := []model.CampaignResult{}
    for rows.Next() {
        var res model.CampaignResult
        if err := rows.Scan(
            &res.ID, &res.CampaignID, &res.OrganizationID, &res.Status,
            &res.SentAt, &res.OpenedAt, &res.RepliedAt, &res.ErrorMessage,
            &res.CreatedAt,
        ); err != nil {
            return nil, err
        }
        results = append(results, res)
    }
    return results, rows.Err()
}

func (r *CampaignResultRepository) CountByStatus(campaignID string) (map[string]int, error) {
    query := `SELECT status, COUNT(*) FROM campaign_results WHERE campaign_id=$1 GROUP BY status`
    rows, err := r.DB.Query(query, campaignID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    stats := map[string]int{"sent": 0, "failed": 0}
    for rows.Next() {
        var status string
        var count int
        if err := rows.Scan(&status, &count); err != nil {
            return nil, err
        }
        stats[status] = count
    }
    return stats, rows.Err()
}

var _ CampaignResultRepositoryInterface = (*CampaignResultRepository)(nil)
