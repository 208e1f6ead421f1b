package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/soundreach/outreach-backend/internal/errors"
	"github.com/soundreach/outreach-backend/internal/controller"
	"github.com/soundreach/outreach-backend/internal/mailer"
	"github.com/soundreach/outreach-backend/internal/model"
	"github.com/soundreach/outreach-backend/internal/service"
)

// --- Mock repositories ---

type stubOrgRepo struct {
	orgs []model.Organization
}

func (m *stubOrgRepo) UpsertByEmail(o *model.Organization) error {
	o.ID = fmt.Sprintf("org-%d", len(m.orgs)+1)
	m.orgs = append(m.orgs, *o)
	return nil
}

func (m *stubOrgRepo) GetByID(id string) (*model.Organization, error) {
	for _, o := range m.orgs {
		if o.ID == id {
			clone := o
			return &clone, nil
		}
	}
	return nil, appErrors.NewOrganizationNotFound(id)
}

func (m *stubOrgRepo) GetByIDs(ids []string) ([]model.Organization, error) {
	wanted := map[string]bool{}
	for _, id := range ids {
		wanted[id] = true
	}
	matches := []model.Organization{}
	for _, o := range m.orgs {
		if wanted[o.ID] {
			matches = append(matches, o)
		}
	}
	return matches, nil
}

func (m *stubOrgRepo) ListAll() ([]model.Organization, error) { return m.orgs, nil }

type stubCampaignRepo struct {
	campaign *model.Campaign
}

func (m *stubCampaignRepo) Create(c *model.Campaign) error { c.ID = "camp-1"; return nil }
func (m *stubCampaignRepo) GetByID(id string) (*model.Campaign, error) {
	if m.campaign != nil && m.campaign.ID == id {
		return m.campaign, nil
	}
	return nil, appErrors.NewCampaignNotFound(id)
}
func (m *stubCampaignRepo) ListCampaigns(offset, limit int, status, targetIndustry string) ([]*model.Campaign, int, error) {
	return []*model.Campaign{}, 0, nil
}
func (m *stubCampaignRepo) UpdateStatus(campaignID, status string) error { return nil }
func (m *stubCampaignRepo) FinishSend(campaignID string, sentCount int) error {
	m.campaign.SentCount = sentCount
	m.campaign.Status = "completed"
	return nil
}

type stubResultRepo struct {
	rows []model.CampaignResult
}

func (m *stubResultRepo) Create(res *model.CampaignResult) error {
	m.rows = append(m.rows, *res)
	return nil
}
func (m *stubResultRepo) ListByCampaign(campaignID string) ([]model.CampaignResult, error) {
	return m.rows, nil
}
func (m *stubResultRepo) CountByStatus(campaignID string) (map[string]int, error) {
	stats := map[string]int{"sent": 0, "failed": 0}
	for _, row := range m.rows {
		stats[row.Status]++
	}
	return stats, nil
}

type stubSender struct {
	failFor map[string]bool
	sent    int
}

func (s *stubSender) Send(_ context.Context, email *mailer.Email) error {
	if s.failFor[email.To] {
		return fmt.Errorf("provider error for %s", email.To)
	}
	s.sent++
	return nil
}

func newSendFixture() (*controller.CampaignController, *stubResultRepo) {
	orgRepo := &stubOrgRepo{orgs: []model.Organization{
		{ID: "org-1", Name: "Acme", Email: "a@acme.se", ContactPerson: "Jon", Industry: "bil"},
		{ID: "org-2", Name: "Bolag", Email: "b@bolag.se", Industry: "mat"},
	}}
	campaignRepo := &stubCampaignRepo{campaign: &model.Campaign{ID: "camp-1", Subject: "Hej", Status: "draft"}}
	resultRepo := &stubResultRepo{}

	dispatchSvc := &service.DispatchService{
		CampaignRepo: campaignRepo,
		OrgRepo:      orgRepo,
		ResultRepo:   resultRepo,
		Mailer:       &stubSender{failFor: map[string]bool{}},
	}
	campaignSvc := &service.CampaignService{
		CampaignRepo: campaignRepo,
		OrgRepo:      orgRepo,
		ResultRepo:   resultRepo,
	}

	return &controller.CampaignController{
		CampaignService: campaignSvc,
		DispatchService: dispatchSvc,
		MailAPIKey:      "re_test_key",
	}, resultRepo
}

// --- Tests ---

func TestSendCampaignHandler(t *testing.T) {
	ctrl, resultRepo := newSendFixture()

	body, _ := json.Marshal(map[string]interface{}{
		"campaignId":      "camp-1",
		"organizationIds": []string{"org-1", "org-2"},
		"subject":         "Till [FÖRETAG]",
		"content":         "Hej [KONTAKTPERSON]",
	})
	req := httptest.NewRequest("POST", "/send-campaign", bytes.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.SendCampaign(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var res struct {
		Success bool `json:"success"`
		Sent    int  `json:"sent"`
		Failed  int  `json:"failed"`
		Total   int  `json:"total"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !res.Success || res.Sent != 2 || res.Failed != 0 || res.Total != 2 {
		t.Errorf("unexpected response: %+v", res)
	}
	if len(resultRepo.rows) != 2 {
		t.Errorf("expected 2 result rows, got %d", len(resultRepo.rows))
	}
}

func TestSendCampaignHandlerMissingAPIKey(t *testing.T) {
	ctrl, _ := newSendFixture()
	ctrl.MailAPIKey = ""

	body, _ := json.Marshal(map[string]interface{}{
		"campaignId":      "camp-1",
		"organizationIds": []string{"org-1"},
		"subject":         "Hej",
		"content":         "Hej",
	})
	req := httptest.NewRequest("POST", "/send-campaign", bytes.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.SendCampaign(w, req)

	if w.Result().StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Result().StatusCode)
	}
	var res map[string]string
	json.NewDecoder(w.Result().Body).Decode(&res)
	if res["error"] == "" {
		t.Errorf("expected an error message in the body")
	}
}

func TestSendCampaignHandlerInvalidBody(t *testing.T) {
	ctrl, _ := newSendFixture()

	req := httptest.NewRequest("POST", "/send-campaign", strings.NewReader("not json"))
	w := httptest.NewRecorder()

	ctrl.SendCampaign(w, req)

	if w.Result().StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Result().StatusCode)
	}
}

func TestPersonalizedPreviewHandler(t *testing.T) {
	ctrl, _ := newSendFixture()

	body, _ := json.Marshal(map[string]interface{}{
		"organization_id": "org-1",
		"content":         "Hej [KONTAKTPERSON] på [FÖRETAG]",
	})
	req := httptest.NewRequest("POST", "/campaigns/camp-1/personalized-preview", bytes.NewReader(body))

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "camp-1")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	w := httptest.NewRecorder()
	ctrl.PersonalizedPreview(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var res struct {
		Subject string `json:"subject"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(res.Content, "Jon") || !strings.Contains(res.Content, "Acme") {
		t.Errorf("expected personalized content, got %q", res.Content)
	}
	if strings.Contains(res.Content, "[KONTAKTPERSON]") {
		t.Errorf("token left unsubstituted: %q", res.Content)
	}
}

func TestGetCampaignWithStatsHandler(t *testing.T) {
	ctrl, resultRepo := newSendFixture()
	resultRepo.rows = []model.CampaignResult{
		{CampaignID: "camp-1", OrganizationID: "org-1", Status: "sent"},
		{CampaignID: "camp-1", OrganizationID: "org-2", Status: "failed"},
	}

	req := httptest.NewRequest("GET", "/campaigns/camp-1", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "camp-1")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	w := httptest.NewRecorder()
	ctrl.GetCampaignWithStats(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var res struct {
		Stats map[string]int `json:"stats"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if res.Stats["sent"] != 1 || res.Stats["failed"] != 1 || res.Stats["total"] != 2 {
		t.Errorf("unexpected stats: %+v", res.Stats)
	}
}
