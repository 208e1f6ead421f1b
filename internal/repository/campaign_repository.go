package repository

import (
    "database/sql"
    "fmt"
    "time"

    "github.com/google/uuid"

    appErrors "github.com/soundreach/outreach-backend/internal/errors"
    "github.com/soundreach/outreach-backend/internal/model"
)

type CampaignRepositoryInterface interface {
    Create(c *model.Campaign) error
    GetByID(id string) (*model.Campaign, error)
    ListCampaigns(offset, limit int, status, targetIndustry string) ([]*model.Campaign, int, error)
    UpdateStatus(campaignID, status string) error
    FinishSend(campaignID string, sentCount int) error
}

type CampaignRepository struct {
    DB *sql.DB
}

// ====================== Campaign CRUD ======================

func (r *CampaignRepository) Create(c *model.Campaign) error {
    if c.ID == "" {
        c.ID = uuid.NewString()
    }
    c.CreatedAt = time.Now()
    if c.Status == "" {
        c.Status = "draft"
    }
    query := `
        INSERT INTO campaigns (id, name, subject, target_industry, status, sent_count, opened_count, replied_count, user_id, created_at)
        VALUES ($1, $2, $3, $4, $5, 0, 0, 0, $6, $7)
        RETURNING id
    `
    return r.DB.QueryRow(query, c.ID, c.Name, c.Subject, c.TargetIndustry, c.Status, c.UserID, c.CreatedAt).Scan(&c.ID)
}

func (r *CampaignRepository) GetByID(id string) (*model.Campaign, error) {
    query := `
        SELECT id, name, subject, target_industry, status, sent_count, opened_count, replied_count, user_id, created_at, updated_at
        FROM campaigns WHERE id=$1
    `
    var c model.Campaign
    err := r.DB.QueryRow(query, id).Scan(
        &c.ID, &c.Name, &c.Subject, &c.TargetIndustry, &c.Status,
        &c.SentCount, &c.OpenedCount, &c.RepliedCount, &c.UserID,
        &c.CreatedAt, &c.UpdatedAt,
    )
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewCampaignNotFound(id)
        }
        return nil, err
    }
    return &c, nil
}

func (r *CampaignRepository) ListCampaigns(offset, limit int, status, targetIndustry string) ([]*model.Campaign, int, error) {
    campaigns := []*model.Campaign{}
    query := `SELECT id, name, subject, target_industry, status, sent_count, opened_count, replied_count, user_id, created_at, updated_at FROM campaigns WHERE 1=1`
    args := []interface{}{}
    argPos := 1

    if status != "" {
        query += fmt.Sprintf(" AND status=$%d", argPos)
        args = append(args, status)
        argPos++
    }
    if targetIndustry != "" {
        query += fmt.Sprintf(" AND target_industry=$%d", argPos)
        args = append(args, targetIndustry)
        argPos++
    }

    query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
    args = append(args, limit, offset)

    rows, err := r.DB.Query(query, args...)
    if err != nil {
        return nil, 0, err
    }
    defer rows.Close()

    for rows.Next() {
        c := &model.Campaign{}
        if err := rows.Scan(
            &c.ID, &c.Name, &c.Subject, &c.TargetIndustry, &c.Status,
            &c.SentCount, &c.OpenedCount, &c.RepliedCount, &c.UserID,
            &c.CreatedAt, &c.UpdatedAt,
        ); err != nil {
            return nil, 0, err
        }
        campaigns = append(campaigns, c)
    }

    // Count total
    countQuery := `SELECT COUNT(*) FROM campaigns WHERE 1=1`
    argsCount := []interface{}{}
    argPosCount := 1
    if status != "" {
        countQuery += fmt.Sprintf(" AND status=$%d", argPosCount)
        argsCount = append(argsCount, status)
        argPosCount++
    }
    if targetIndustry != "" {
        countQuery += fmt.Sprintf(" AND target_industry=$%d", argPosCount)
        argsCount = append(argsCount, targetIndustry)
    }

    var total int
    if err := r.DB.QueryRow(countQuery, argsCount...).Scan(&total); err != nil {
        return nil, 0, err
    }

    return campaigns, total, nil
}

func (r *CampaignRepository) UpdateStatus(campaignID, status string) error {
    query := `UPDATE campaigns SET status=$1, updated_at=$2 WHERE id=$3`
    _, err := r.DB.Exec(query, status, time.Now(), campaignID)
    return err
}

// FinishSend records the outcome of a dispatch run: sent_count is set
// to this run's success count (not incremented) and the campaign is
// marked completed.
func (r *CampaignRepository) FinishSend(campaignID string, sentCount int) error {
    query := `UPDATE campaigns SET sent_count=$1, status='completed', updated_at=NOW() WHERE id=$2`
    _, err := r.DB.Exec(query, sentCount, campaignID)
    return err
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
