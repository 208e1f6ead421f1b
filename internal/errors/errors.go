// internal/errors/errors.go
package appErrors

import "fmt"

// ErrCampaignNotFound is a sentinel error
type ErrCampaignNotFound struct {
    CampaignID string
}

func (e *ErrCampaignNotFound) Error() string {
    return fmt.Sprintf("campaign with ID %s not found", e.CampaignID)
}

// Helper constructor
func NewCampaignNotFound(id string) error {
    return &ErrCampaignNotFound{CampaignID: id}
}

type ErrOrganizationNotFound struct {
    OrganizationID string
}

func (e *ErrOrganizationNotFound) Error() string {
    return fmt.Sprintf("organization with ID %s not found", e.OrganizationID)
}

func NewOrganizationNotFound(id string) error {
    return &ErrOrganizationNotFound{OrganizationID: id}
}

type ErrTemplateNotFound struct {
    TemplateID string
}

func (e *ErrTemplateNotFound) Error() string {
    return fmt.Sprintf("email template with ID %s not found", e.TemplateID)
}

func NewTemplateNotFound(id string) error {
    return &ErrTemplateNotFound{TemplateID: id}
}
