package repository

import (
    "database/sql"
    "time"

    "github.com/google/uuid"
    "github.com/lib/pq"

    appErrors "github.com/soundreach/outreach-backend/internal/errors"
    "github.com/soundreach/outreach-backend/internal/model"
)

// OrganizationRepositoryInterface defines methods used by services
type OrganizationRepositoryInterface interface {
    UpsertByEmail(o *model.Organization) error
    GetByID(id string) (*model.Organization, error)
    GetByIDs(ids []string) ([]model.Organization, error)
    ListAll() ([]model.Organization, error)
}

// OrganizationRepository is the concrete implementation
type OrganizationRepository struct {
    DB *sql.DB
}

// UpsertByEmail inserts an organization or, when a row with the same
// email already exists, overwrites its descriptive fields. The email
// column is the natural dedup key across repeated lookups.
func (r *OrganizationRepository) UpsertByEmail(o *model.Organization) error {
    if o.ID == "" {
        o.ID = uuid.NewString()
    }
    query := `
        INSERT INTO organizations
            (id, name, email, website, industry, location, contact_person, company_size, notes, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
        ON CONFLICT (email) DO UPDATE SET
            name = EXCLUDED.name,
            website = EXCLUDED.website,
            industry = EXCLUDED.industry,
            location = EXCLUDED.location,
            contact_person = EXCLUDED.contact_person,
            company_size = EXCLUDED.company_size,
            notes = EXCLUDED.notes,
            updated_at = NOW()
        RETURNING id, created_at
    `
    return r.DB.QueryRow(query,
        o.ID, o.Name, o.Email, o.Website, o.Industry,
        o.Location, o.ContactPerson, o.CompanySize, o.Notes,
    ).Scan(&o.ID, &o.CreatedAt)
}

func (r *OrganizationRepository) GetByID(id string) (*model.Organization, error) {
    query := `
        SELECT id, name, email, website, industry, location, contact_person, company_size, notes, created_at, updated_at
        FROM organizations
        WHERE id = $1
    `
    var o model.Organization
    err := r.DB.QueryRow(query, id).Scan(
        &o.ID, &o.Name, &o.Email, &o.Website, &o.Industry,
        &o.Location, &o.ContactPerson, &o.CompanySize, &o.Notes,
        &o.CreatedAt, &o.UpdatedAt,
    )
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewOrganizationNotFound(id)
        }
        return nil, err
    }
    return &o, nil
}

// GetByIDs fetches all organizations whose id is in ids. Rows come
// back in store order; callers that care about ordering re-sort.
func (r *OrganizationRepository) GetByIDs(ids []string) ([]model.Organization, error) {
    query := `
        SELECT id, name, email, website, industry, location, contact_person, company_size, notes, created_at, updated_at
        FROM organizations
        WHERE id = ANY($1)
    `
    rows, err := r.DB.Query(query, pq.Array(ids))
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    return scanOrganizations(rows)
}

func (r *OrganizationRepository) ListAll() ([]model.Organization, error) {
    query := `
        SELECT id, name, email, website, industry, location, contact_person, company_size, notes, created_at, updated_at
        FROM organizations
        ORDER BY created_at DESC
    `
    rows, err := r.DB.Query(query)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    return scanOrganizations(rows)
}

func scanOrganizations(rows *sql.Rows) ([]model.Organization, error) {
    orgs := []model.Organization{}
    for rows.Next() {
        var o model.Organization
        var updatedAt *time.Time
        if err := rows.Scan(
            &o.ID, &o.Name, &o.Email, &o.Website, &o.Industry,
            &o.Location, &o.ContactPerson, &o.CompanySize, &o.Notes,
            &o.CreatedAt, &updatedAt,
        ); err != nil {
            return nil, err
        }
        o.UpdatedAt = updatedAt
        orgs = append(orgs, o)
    }
    return orgs, rows.Err()
}

var _ OrganizationRepositoryInterface = (*OrganizationRepository)(nil)
