// internal/service/campaign_service.go
package service

import (
    "fmt"
    "log"
    "strings"
    "time"

    "github.com/soundreach/outreach-backend/internal/model"
    "github.com/soundreach/outreach-backend/internal/repository"
)

type CampaignService struct {
    CampaignRepo repository.CampaignRepositoryInterface
    OrgRepo      repository.OrganizationRepositoryInterface
    ResultRepo   repository.CampaignResultRepositoryInterface
}

type CampaignDetails struct {
    ID             string         `json:"id"`
    Name           string         `json:"name"`
    Subject        string         `json:"subject"`
    TargetIndustry string         `json:"target_industry"`
    Status         string         `json:"status"`
    SentCount      int            `json:"sent_count"`
    OpenedCount    int            `json:"opened_count"`
    RepliedCount   int            `json:"replied_count"`
    CreatedAt      time.Time      `json:"created_at"`
    UpdatedAt      *time.Time     `json:"updated_at,omitempty"`
    Stats          map[string]int `json:"stats"`
}

// RenderedPreview is the outcome of a personalized preview: the
// campaign content rendered for one organization, nothing sent.
type RenderedPreview struct {
    Subject        string `json:"subject"`
    Content        string `json:"content"`
    OrganizationID string `json:"organization_id"`
}

func (s *CampaignService) CreateCampaign(name, subject, targetIndustry, userID string) (*model.Campaign, error) {
    if strings.TrimSpace(name) == "" {
        return nil, fmt.Errorf("campaign name cannot be empty")
    }
    if strings.TrimSpace(subject) == "" {
        return nil, fmt.Errorf("campaign subject cannot be empty")
    }

    c := &model.Campaign{
        Name:           name,
        Subject:        subject,
        TargetIndustry: targetIndustry,
        UserID:         userID,
        Status:         "draft",
    }
    if err := s.CampaignRepo.Create(c); err != nil {
        return nil, err
    }
    return c, nil
}

// ListCampaigns fetches campaigns with pagination
func (s *CampaignService) ListCampaigns(page, pageSize int, status, targetIndustry string) ([]model.Campaign, map[string]int, error) {
    if page < 1 {
        page = 1
    }
    if pageSize < 1 {
        pageSize = 20
    }
    if pageSize > 100 {
        pageSize = 100
    }
    offset := (page - 1) * pageSize

    ptrs, total, err := s.CampaignRepo.ListCampaigns(offset, pageSize, status, targetIndustry)
    if err != nil {
        return nil, nil, err
    }

    campaigns := make([]model.Campaign, len(ptrs))
    for i, c := range ptrs {
        campaigns[i] = *c
    }

    totalPages := (total + pageSize - 1) / pageSize
    pagination := map[string]int{
        "page":        page,
        "page_size":   pageSize,
        "total_count": total,
        "total_pages": totalPages,
    }

    return campaigns, pagination, nil
}

// GetCampaignDetailsWithStats fetches a campaign and aggregates its
// result rows by status.
func (s *CampaignService) GetCampaignDetailsWithStats(campaignID string) (*CampaignDetails, error) {
    campaign, err := s.CampaignRepo.GetByID(campaignID)
    if err != nil {
        log.Println("⚠️ failed to fetch campaign:", err)
        return nil, err
    }

    stats, err := s.ResultRepo.CountByStatus(campaignID)
    if err != nil {
        return nil, err
    }
    total := 0
    for _, count := range stats {
        total += count
    }
    stats["total"] = total

    return &CampaignDetails{
        ID:             campaign.ID,
        Name:           campaign.Name,
        Subject:        campaign.Subject,
        TargetIndustry: campaign.TargetIndustry,
        Status:         campaign.Status,
        SentCount:      campaign.SentCount,
        OpenedCount:    campaign.OpenedCount,
        RepliedCount:   campaign.RepliedCount,
        CreatedAt:      campaign.CreatedAt,
        UpdatedAt:      campaign.UpdatedAt,
        Stats:          stats,
    }, nil
}

// ListCampaignResults returns the per-recipient outcome rows.
func (s *CampaignService) ListCampaignResults(campaignID string) ([]model.CampaignResult, error) {
    if _, err := s.CampaignRepo.GetByID(campaignID); err != nil {
        return nil, err
    }
    return s.ResultRepo.ListByCampaign(campaignID)
}

// RenderPreview renders the campaign's subject and the supplied
// content for one organization without sending anything. An override
// subject takes precedence over the stored one.
func (s *CampaignService) RenderPreview(campaignID, organizationID, content string, overrideSubject *string) (*RenderedPreview, error) {
    campaign, err := s.CampaignRepo.GetByID(campaignID)
    if err != nil {
        return nil, err
    }

    org, err := s.OrgRepo.GetByID(organizationID)
    if err != nil {
        return nil, err
    }

    subject := campaign.Subject
    if overrideSubject != nil && strings.TrimSpace(*overrideSubject) != "" {
        subject = *overrideSubject
    }

    if strings.TrimSpace(content) == "" {
        return nil, fmt.Errorf("content cannot be empty")
    }

    return &RenderedPreview{
        Subject:        RenderTemplate(subject, org),
        Content:        RenderTemplate(content, org),
        OrganizationID: org.ID,
    }, nil
}
