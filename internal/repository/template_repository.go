package repository

import (
    "database/sql"
    "time"

    "github.com/google/uuid"

    appErrors "github.com/soundreach/outreach-backend/internal/errors"
    "github.com/soundreach/outreach-backend/internal/model"
)

type TemplateRepositoryInterface interface {
    Create(t *model.EmailTemplate) error
    GetByID(id string) (*model.EmailTemplate, error)
    List(industry string) ([]model.EmailTemplate, error)
}

type TemplateRepository struct {
    DB *sql.DB
}

func (r *TemplateRepository) Create(t *model.EmailTemplate) error {
    if t.ID == "" {
        t.ID = uuid.NewString()
    }
    t.CreatedAt = time.Now()
    query := `
        INSERT INTO email_templates (id, name, industry, subject, content, user_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
    return r.DB.QueryRow(query, t.ID, t.Name, t.Industry, t.Subject, t.Content, t.UserID, t.CreatedAt).Scan(&t.ID)
}

func (r *TemplateRepository) GetByID(id string) (*model.EmailTemplate, error) {
    query := `
        SELECT id, name, industry, subject, content, user_id, created_at, updated_at
        FROM email_templates WHERE id=$1
    `
    var t model.EmailTemplate
    err := r.DB.QueryRow(query, id).Scan(
        &t.ID, &t.Name, &t.Industry, &t.Subject, &t.Content, &t.UserID,
        &t.CreatedAt, &t.UpdatedAt,
    )
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewTemplateNotFound(id)
        }
        return nil, err
    }
    return &t, nil
}

// List returns templates, optionally filtered by industry.
func (r *TemplateRepository) List(industry string) ([]model.EmailTemplate, error) {
    query := `
        SELECT id, name, industry, subject, content, user_id, created_at, updated_at
        FROM email_templates
    `
    args := []interface{}{}
    if industry != "" {
        query += ` WHERE industry=$1`
        args = append(args, industry)
    }
    query += ` ORDER BY created_at DESC`

    rows, err := r.DB.Query(query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    templates := []model.EmailTemplate{}
    for rows.Next() {
        var t model.EmailTemplate
        if err := rows.Scan(
            &t.ID, &t.Name, &t.Industry, &t.Subject, &t.Content, &t.UserID,
            &t.CreatedAt, &t.UpdatedAt,
        ); err != nil {
            return nil, err
        }
        templates = append(templates, t)
    }
    return templates, rows.Err()
}

var _ TemplateRepositoryInterface = (*TemplateRepository)(nil)
