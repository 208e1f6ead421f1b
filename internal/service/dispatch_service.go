// internal/service/dispatch_service.go
package service

import (
    "context"
    "log"
    "time"

    "github.com/soundreach/outreach-backend/internal/mailer"
    "github.com/soundreach/outreach-backend/internal/model"
    "github.com/soundreach/outreach-backend/internal/repository"
)

type DispatchService struct {
    CampaignRepo repository.CampaignRepositoryInterface
    OrgRepo      repository.OrganizationRepositoryInterface
    ResultRepo   repository.CampaignResultRepositoryInterface
    Mailer       mailer.Sender
}

// DispatchResult summarizes one campaign send invocation.
type DispatchResult struct {
    Sent   int `json:"sent"`
    Failed int `json:"failed"`
    Total  int `json:"total"`
}

// SendCampaign sends one personalized email per organization,
// sequentially, in the order the caller supplied the IDs. A failed
// send is recorded as a failed result row and processing continues;
// only the initial fetches can fail the call as a whole. Re-invoking
// with the same input appends new result rows — sends are not
// idempotent.
func (s *DispatchService) SendCampaign(ctx context.Context, campaignID string, organizationIDs []string, subject, content string) (*DispatchResult, error) {
    campaign, err := s.CampaignRepo.GetByID(campaignID)
    if err != nil {
        return nil, err
    }

    log.Printf("📨 Sending campaign %s to %d organizations\n", campaign.ID, len(organizationIDs))

    orgs, err := s.OrgRepo.GetByIDs(organizationIDs)
    if err != nil {
        return nil, err
    }
    byID := make(map[string]*model.Organization, len(orgs))
    for i := range orgs {
        byID[orgs[i].ID] = &orgs[i]
    }

    result := &DispatchResult{Total: len(organizationIDs)}

    for _, orgID := range organizationIDs {
        org, ok := byID[orgID]
        if !ok {
            log.Println("⚠️ organization not found, skipping:", orgID)
            continue
        }

        renderedSubject := RenderTemplate(subject, org)
        renderedContent := RenderTemplate(content, org)

        greeting := org.ContactPerson
        if greeting == "" {
            greeting = org.Name
        }

        sendErr := s.Mailer.Send(ctx, &mailer.Email{
            To:      org.Email,
            Subject: renderedSubject,
            HTML:    mailer.HTMLBody(greeting, renderedContent, org.Email),
            Text:    renderedContent,
        })

        res := &model.CampaignResult{
            CampaignID:     campaignID,
            OrganizationID: org.ID,
        }
        if sendErr != nil {
            log.Println("⚠️ failed to send to", org.Name, ":", sendErr)
            res.Status = "failed"
            res.ErrorMessage = sendErr.Error()
            result.Failed++
        } else {
            log.Printf("✉️ Email sent to %s (%s)\n", org.Name, org.Email)
            now := time.Now()
            res.Status = "sent"
            res.SentAt = &now
            result.Sent++
        }

        if err := s.ResultRepo.Create(res); err != nil {
            log.Println("⚠️ failed to record campaign result:", err)
        }
    }

    if err := s.CampaignRepo.FinishSend(campaignID, result.Sent); err != nil {
        return result, err
    }

    log.Printf("✅ Campaign completed: %d sent, %d failed\n", result.Sent, result.Failed)
    return result, nil
}
