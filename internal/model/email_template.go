// internal/model/email_template.go
package model

import "time"

type EmailTemplate struct {
    ID        string     `db:"id" json:"id"`
    Name      string     `db:"name" json:"name"`
    Industry  string     `db:"industry" json:"industry"`
    Subject   string     `db:"subject" json:"subject"`
    Content   string     `db:"content" json:"content"`
    UserID    string     `db:"user_id" json:"user_id"`
    CreatedAt time.Time  `db:"created_at" json:"created_at"`
    UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
