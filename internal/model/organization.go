// internal/model/organization.go
package model

import "time"

// Organization is a prospective email recipient. Email is the natural
// key: repeated searches upsert on it instead of inserting duplicates.
type Organization struct {
    ID            string     `db:"id" json:"id"`
    Name          string     `db:"name" json:"name"`
    Email         string     `db:"email" json:"email"`
    Website       string     `db:"website" json:"website,omitempty"`
    Industry      string     `db:"industry" json:"industry"`
    Location      string     `db:"location" json:"location,omitempty"`
    ContactPerson string     `db:"contact_person" json:"contact_person,omitempty"`
    CompanySize   string     `db:"company_size" json:"company_size,omitempty"`
    Notes         string     `db:"notes" json:"notes,omitempty"`
    CreatedAt     time.Time  `db:"created_at" json:"created_at"`
    UpdatedAt     *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
