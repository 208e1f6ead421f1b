// internal/service/search_service.go
package service

import (
    "log"

    "github.com/soundreach/outreach-backend/internal/catalog"
    "github.com/soundreach/outreach-backend/internal/model"
    "github.com/soundreach/outreach-backend/internal/repository"
)

// DefaultSearchLimit caps results when the caller omits a limit.
const DefaultSearchLimit = 100

type SearchService struct {
    OrgRepo repository.OrganizationRepositoryInterface
    Catalog *catalog.Catalog
}

// SearchCompanies matches the industry string against the catalog,
// stamps the caller's industry onto every hit, truncates to limit and
// upserts each record into the store keyed by email. A failed upsert
// is logged and skipped; it never fails the call.
func (s *SearchService) SearchCompanies(industry, location, companySize string, limit int) ([]model.Organization, error) {
    if limit <= 0 {
        limit = DefaultSearchLimit
    }

    log.Println("🔍 Searching companies for industry:", industry)

    entries := s.Catalog.Match(industry)
    if len(entries) > limit {
        entries = entries[:limit]
    }

    orgs := make([]model.Organization, 0, len(entries))
    for _, entry := range entries {
        org := model.Organization{
            Name:          entry.Name,
            Email:         entry.Email,
            Website:       entry.Website,
            Industry:      industry,
            Location:      entry.Location,
            ContactPerson: entry.ContactPerson,
            CompanySize:   entry.CompanySize,
            Notes:         entry.Notes,
        }
        // Caller hints only fill gaps in the catalog entry
        if org.Location == "" {
            org.Location = location
        }
        if org.CompanySize == "" {
            org.CompanySize = companySize
        }

        // A failed save is logged and skipped; the record is still
        // returned, it just carries no store ID.
        if err := s.OrgRepo.UpsertByEmail(&org); err != nil {
            log.Println("⚠️ failed to save organization", org.Email, ":", err)
        }
        orgs = append(orgs, org)
    }

    log.Printf("✅ Found and saved %d companies\n", len(orgs))
    return orgs, nil
}
