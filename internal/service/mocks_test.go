package service_test

import (
	"context"
	"fmt"
	"time"

	appErrors "github.com/soundreach/outreach-backend/internal/errors"
	"github.com/soundreach/outreach-backend/internal/mailer"
	"github.com/soundreach/outreach-backend/internal/model"
)

// --- In-memory organization repository ---

type memOrgRepo struct {
	byEmail    map[string]*model.Organization
	order      []string // emails in insertion order
	upsertErrs map[string]error
	getErr     error
	nextID     int
}

func newMemOrgRepo() *memOrgRepo {
	return &memOrgRepo{
		byEmail:    map[string]*model.Organization{},
		upsertErrs: map[string]error{},
	}
}

func (r *memOrgRepo) UpsertByEmail(o *model.Organization) error {
	if err := r.upsertErrs[o.Email]; err != nil {
		return err
	}
	if existing, ok := r.byEmail[o.Email]; ok {
		id, createdAt := existing.ID, existing.CreatedAt
		*existing = *o
		existing.ID = id
		existing.CreatedAt = createdAt
		o.ID = id
		return nil
	}
	r.nextID++
	o.ID = fmt.Sprintf("org-%04d", r.nextID)
	o.CreatedAt = time.Now()
	clone := *o
	r.byEmail[o.Email] = &clone
	r.order = append(r.order, o.Email)
	return nil
}

func (r *memOrgRepo) GetByID(id string) (*model.Organization, error) {
	for _, email := range r.order {
		if r.byEmail[email].ID == id {
			clone := *r.byEmail[email]
			return &clone, nil
		}
	}
	return nil, appErrors.NewOrganizationNotFound(id)
}

// GetByIDs returns matches in store (insertion) order, like the SQL
// implementation does.
func (r *memOrgRepo) GetByIDs(ids []string) ([]model.Organization, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	wanted := map[string]bool{}
	for _, id := range ids {
		wanted[id] = true
	}
	orgs := []model.Organization{}
	for _, email := range r.order {
		if wanted[r.byEmail[email].ID] {
			orgs = append(orgs, *r.byEmail[email])
		}
	}
	return orgs, nil
}

func (r *memOrgRepo) ListAll() ([]model.Organization, error) {
	orgs := []model.Organization{}
	for _, email := range r.order {
		orgs = append(orgs, *r.byEmail[email])
	}
	return orgs, nil
}

func (r *memOrgRepo) mustAdd(o model.Organization) string {
	if err := r.UpsertByEmail(&o); err != nil {
		panic(err)
	}
	return o.ID
}

// --- In-memory campaign repository ---

type finishCall struct {
	campaignID string
	sentCount  int
}

type memCampaignRepo struct {
	byID     map[string]*model.Campaign
	finished []finishCall
}

func newMemCampaignRepo(campaigns ...*model.Campaign) *memCampaignRepo {
	r := &memCampaignRepo{byID: map[string]*model.Campaign{}}
	for _, c := range campaigns {
		r.byID[c.ID] = c
	}
	return r
}

func (r *memCampaignRepo) Create(c *model.Campaign) error {
	if c.ID == "" {
		c.ID = fmt.Sprintf("campaign-%04d", len(r.byID)+1)
	}
	c.CreatedAt = time.Now()
	if c.Status == "" {
		c.Status = "draft"
	}
	r.byID[c.ID] = c
	return nil
}

func (r *memCampaignRepo) GetByID(id string) (*model.Campaign, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, appErrors.NewCampaignNotFound(id)
	}
	return c, nil
}

func (r *memCampaignRepo) ListCampaigns(offset, limit int, status, targetIndustry string) ([]*model.Campaign, int, error) {
	return []*model.Campaign{}, 0, nil
}

func (r *memCampaignRepo) UpdateStatus(campaignID, status string) error {
	if c, ok := r.byID[campaignID]; ok {
		c.Status = status
	}
	return nil
}

func (r *memCampaignRepo) FinishSend(campaignID string, sentCount int) error {
	r.finished = append(r.finished, finishCall{campaignID, sentCount})
	if c, ok := r.byID[campaignID]; ok {
		c.SentCount = sentCount
		c.Status = "completed"
	}
	return nil
}

// --- In-memory campaign result repository ---

type memResultRepo struct {
	rows []model.CampaignResult
}

func (r *memResultRepo) Create(res *model.CampaignResult) error {
	res.ID = fmt.Sprintf("result-%04d", len(r.rows)+1)
	res.CreatedAt = time.Now()
	r.rows = append(r.rows, *res)
	return nil
}

func (r *memResultRepo) ListByCampaign(campaignID string) ([]model.CampaignResult, error) {
	results := []model.CampaignResult{}
	for _, row := range r.rows {
		if row.CampaignID == campaignID {
			results = append(results, row)
		}
	}
	return results, nil
}

func (r *memResultRepo) CountByStatus(campaignID string) (map[string]int, error) {
	stats := map[string]int{"sent": 0, "failed": 0}
	for _, row := range r.rows {
		if row.CampaignID == campaignID {
			stats[row.Status]++
		}
	}
	return stats, nil
}

// --- Fake mail sender ---

type fakeSender struct {
	failFor map[string]bool // recipient email -> force failure
	sent    []mailer.Email  // every accepted email, in send order
}

func newFakeSender() *fakeSender {
	return &fakeSender{failFor: map[string]bool{}}
}

func (s *fakeSender) Send(_ context.Context, email *mailer.Email) error {
	if s.failFor[email.To] {
		return fmt.Errorf("mail provider rejected %s", email.To)
	}
	s.sent = append(s.sent, *email)
	return nil
}
