// internal/controller/template_controller.go
package controller

import (
    "encoding/json"
    "net/http"

    "github.com/soundreach/outreach-backend/internal/model"
    "github.com/soundreach/outreach-backend/internal/repository"
)

type TemplateController struct {
    Repo repository.TemplateRepositoryInterface
}

func (c *TemplateController) ListTemplates(w http.ResponseWriter, r *http.Request) {
    industry := r.URL.Query().Get("industry")

    templates, err := c.Repo.List(industry)
    if err != nil {
        writeError(w, http.StatusInternalServerError, err.Error())
        return
    }

    writeJSON(w, http.StatusOK, map[string]interface{}{
        "data":  templates,
        "count": len(templates),
    })
}

func (c *TemplateController) CreateTemplate(w http.ResponseWriter, r *http.Request) {
    var body struct {
        Name     string `json:"name"`
        Industry string `json:"industry"`
        Subject  string `json:"subject"`
        Content  string `json:"content"`
        UserID   string `json:"user_id"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
        return
    }
    if body.Name == "" || body.Content == "" {
        writeError(w, http.StatusBadRequest, "template name and content are required")
        return
    }

    t := &model.EmailTemplate{
        Name:     body.Name,
        Industry: body.Industry,
        Subject:  body.Subject,
        Content:  body.Content,
        UserID:   body.UserID,
    }
    if err := c.Repo.Create(t); err != nil {
        writeError(w, http.StatusInternalServerError, err.Error())
        return
    }

    writeJSON(w, http.StatusOK, t)
}
