// internal/service/template_service.go
package service

import (
    "strings"

    "github.com/soundreach/outreach-backend/internal/model"
)

// The placeholder tokens recognized in campaign subjects and bodies.
// Substitution is a literal find/replace over this closed set; brackets
// anywhere else in the content are left untouched.
const (
    TokenCompany  = "[FÖRETAG]"
    TokenContact  = "[KONTAKTPERSON]"
    TokenIndustry = "[BRANSCH]"
)

// DefaultContact stands in for [KONTAKTPERSON] when the organization
// has no contact person on record.
const DefaultContact = "Hej"

// RenderTemplate substitutes the placeholder tokens with the
// organization's values.
func RenderTemplate(template string, org *model.Organization) string {
    contact := org.ContactPerson
    if contact == "" {
        contact = DefaultContact
    }

    result := template
    result = strings.ReplaceAll(result, TokenCompany, org.Name)
    result = strings.ReplaceAll(result, TokenContact, contact)
    result = strings.ReplaceAll(result, TokenIndustry, org.Industry)
    return result
}
