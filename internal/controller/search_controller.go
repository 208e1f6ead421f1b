// internal/controller/search_controller.go
package controller

import (
    "encoding/json"
    "net/http"

    "github.com/soundreach/outreach-backend/internal/service"
)

type SearchController struct {
    SearchService *service.SearchService
    // APIKey gates the endpoint: the downstream company-search
    // provider credential must be configured even though the current
    // catalog is served locally.
    APIKey string
}

func (c *SearchController) SearchCompanies(w http.ResponseWriter, r *http.Request) {
    var body struct {
        Industry    string `json:"industry"`
        Location    string `json:"location"`
        CompanySize string `json:"companySize"`
        Limit       int    `json:"limit"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
        return
    }

    if c.APIKey == "" {
        writeError(w, http.StatusBadRequest, "company search API key is not configured")
        return
    }

    companies, err := c.SearchService.SearchCompanies(body.Industry, body.Location, body.CompanySize, body.Limit)
    if err != nil {
        writeError(w, http.StatusInternalServerError, err.Error())
        return
    }

    writeJSON(w, http.StatusOK, map[string]interface{}{
        "success":   true,
        "companies": companies,
        "count":     len(companies),
    })
}
