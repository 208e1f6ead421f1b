// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/soundreach/outreach-backend/internal/catalog"
	"github.com/soundreach/outreach-backend/internal/controller"
	"github.com/soundreach/outreach-backend/internal/db"
	"github.com/soundreach/outreach-backend/internal/mailer"
	"github.com/soundreach/outreach-backend/internal/repository"
	"github.com/soundreach/outreach-backend/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	// Init DB
	db.Init()

	orgRepo := &repository.OrganizationRepository{DB: db.DB}
	campaignRepo := &repository.CampaignRepository{DB: db.DB}
	resultRepo := &repository.CampaignResultRepository{DB: db.DB}
	templateRepo := &repository.TemplateRepository{DB: db.DB}

	resendKey := os.Getenv("RESEND_API_KEY")
	sender := mailer.NewResendSender(resendKey, os.Getenv("MAIL_FROM"))

	searchService := &service.SearchService{
		OrgRepo: orgRepo,
		Catalog: catalog.Default(),
	}
	campaignService := &service.CampaignService{
		CampaignRepo: campaignRepo,
		OrgRepo:      orgRepo,
		ResultRepo:   resultRepo,
	}
	dispatchService := &service.DispatchService{
		CampaignRepo: campaignRepo,
		OrgRepo:      orgRepo,
		ResultRepo:   resultRepo,
		Mailer:       sender,
	}

	searchController := &controller.SearchController{
		SearchService: searchService,
		APIKey:        os.Getenv("COMPANY_SEARCH_API_KEY"),
	}
	campaignController := &controller.CampaignController{
		CampaignService: campaignService,
		DispatchService: dispatchService,
		MailAPIKey:      resendKey,
	}
	templateController := &controller.TemplateController{
		Repo: templateRepo,
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Client-Info", "Apikey"},
	}))

	// Lookup and dispatch
	r.Post("/search-companies", searchController.SearchCompanies)
	r.Post("/send-campaign", campaignController.SendCampaign)

	// Campaign routes
	r.Post("/campaigns", campaignController.CreateCampaign)
	r.Get("/campaigns", campaignController.ListCampaigns)
	r.Get("/campaigns/{id}", campaignController.GetCampaignWithStats)
	r.Get("/campaigns/{id}/results", campaignController.ListCampaignResults)
	r.Post("/campaigns/{id}/personalized-preview", campaignController.PersonalizedPreview)

	// Template routes
	r.Get("/templates", templateController.ListTemplates)
	r.Post("/templates", templateController.CreateTemplate)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Server running on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
