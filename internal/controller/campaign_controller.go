// internal/controller/campaign_controller.go
package controller

import (
    "encoding/json"
    "net/http"
    "strconv"

    "github.com/go-chi/chi/v5"

    "github.com/soundreach/outreach-backend/internal/service"
)

type CampaignController struct {
    CampaignService *service.CampaignService
    DispatchService *service.DispatchService
    // MailAPIKey gates dispatch: without the provider credential the
    // endpoint fails fast with 400 before any work begins.
    MailAPIKey string
}

func (c *CampaignController) CreateCampaign(w http.ResponseWriter, r *http.Request) {
    var body struct {
        Name           string `json:"name"`
        Subject        string `json:"subject"`
        TargetIndustry string `json:"target_industry"`
        UserID         string `json:"user_id"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
        return
    }

    campaign, err := c.CampaignService.CreateCampaign(body.Name, body.Subject, body.TargetIndustry, body.UserID)
    if err != nil {
        writeError(w, http.StatusInternalServerError, err.Error())
        return
    }

    writeJSON(w, http.StatusOK, campaign)
}

func (c *CampaignController) ListCampaigns(w http.ResponseWriter, r *http.Request) {
    page, _ := strconv.Atoi(r.URL.Query().Get("page"))
    pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
    status := r.URL.Query().Get("status")
    targetIndustry := r.URL.Query().Get("target_industry")

    campaigns, pagination, err := c.CampaignService.ListCampaigns(page, pageSize, status, targetIndustry)
    if err != nil {
        writeError(w, http.StatusInternalServerError, err.Error())
        return
    }

    writeJSON(w, http.StatusOK, map[string]interface{}{
        "data":       campaigns,
        "pagination": pagination,
    })
}

func (c *CampaignController) GetCampaignWithStats(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")

    details, err := c.CampaignService.GetCampaignDetailsWithStats(id)
    if err != nil {
        writeError(w, http.StatusInternalServerError, err.Error())
        return
    }

    writeJSON(w, http.StatusOK, details)
}

func (c *CampaignController) ListCampaignResults(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")

    results, err := c.CampaignService.ListCampaignResults(id)
    if err != nil {
        writeError(w, http.StatusInternalServerError, err.Error())
        return
    }

    writeJSON(w, http.StatusOK, map[string]interface{}{
        "data":  results,
        "count": len(results),
    })
}

func (c *CampaignController) PersonalizedPreview(w http.ResponseWriter, r *http.Request) {
    campaignID := chi.URLParam(r, "id")

    var body struct {
        OrganizationID  string  `json:"organization_id"`
        Content         string  `json:"content"`
        OverrideSubject *string `json:"override_subject"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
        return
    }

    preview, err := c.CampaignService.RenderPreview(campaignID, body.OrganizationID, body.Content, body.OverrideSubject)
    if err != nil {
        writeError(w, http.StatusInternalServerError, err.Error())
        return
    }

    writeJSON(w, http.StatusOK, preview)
}

// SendCampaign dispatches one personalized email per selected
// organization and reports aggregate counts.
func (c *CampaignController) SendCampaign(w http.ResponseWriter, r *http.Request) {
    var body struct {
        CampaignID      string   `json:"campaignId"`
        OrganizationIDs []string `json:"organizationIds"`
        Subject         string   `json:"subject"`
        Content         string   `json:"content"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
        return
    }

    if c.MailAPIKey == "" {
        writeError(w, http.StatusBadRequest, "mail provider API key is not configured")
        return
    }

    result, err := c.DispatchService.SendCampaign(r.Context(), body.CampaignID, body.OrganizationIDs, body.Subject, body.Content)
    if err != nil {
        writeError(w, http.StatusInternalServerError, err.Error())
        return
    }

    writeJSON(w, http.StatusOK, map[string]interface{}{
        "success": true,
        "sent":    result.Sent,
        "failed":  result.Failed,
        "total":   result.Total,
    })
}
