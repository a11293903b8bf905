package api

import (
	"context"
	"net/http"
	"time"

	"github.com/samandr77/microservices/crmwidget/internal/entity"
	"github.com/samandr77/microservices/crmwidget/pkg/config"
)

// @title CRM Widget API
// @version 2.0.0
// @description Proxy between the SalesIQ chat widget and the HubSpot CRM
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const widgetVersion = "2.0.0"

var supportedFeatures = []string{
	"contact_search",
	"lead_conversion",
	"deal_creation",
	"contact_updates",
	"chat_integration",
	"notes_management",
	"activity_timeline",
	"quick_actions",
	"task_management",
	"company_association",
}

type Service interface {
	Mode() config.Mode
	SearchContact(ctx context.Context, email string) (entity.Contact, int, error)
	CreateContact(ctx context.Context, c entity.NewContact) (entity.Created, error)
	UpdateContact(ctx context.Context, id string, p entity.ContactPatch) (entity.Updated, error)
	CreateDeal(ctx context.Context, d entity.NewDeal) (entity.Created, error)
	Deals(ctx context.Context, contactID string) ([]entity.Deal, int, error)
	CreateNote(ctx context.Context, n entity.NewNote) (entity.Created, error)
	Notes(ctx context.Context, contactID string) ([]entity.Note, int, error)
	Activities(ctx context.Context, contactID string) ([]entity.Activity, int, error)
	QuickAction(ctx context.Context, contactID, action, value string) (string, error)
	LogActivity(ctx context.Context, contactID, activityType, description string) (string, error)
	CreateTask(ctx context.Context, t entity.NewTask) (entity.Created, error)
	ContactOwner(ctx context.Context, contactID string) (entity.Owner, error)
	Owners(ctx context.Context) ([]entity.Owner, error)
	TagContact(ctx context.Context, contactID string, tags []string) (string, error)
	SearchCompany(ctx context.Context, domain string) (entity.Company, error)
	AssociateCompany(ctx context.Context, contactID, companyID string) (string, error)
	Passthrough(ctx context.Context, method, path, rawQuery string, body []byte) (int, []byte, error)
	RecordChatEvent(ctx context.Context, kind entity.ChatEventKind, payload []byte) (entity.ChatEvent, error)
	ChatEvents(ctx context.Context, filter entity.ChatEventFilter) ([]entity.ChatEvent, error)
}

type Handler struct {
	s   Service
	now func() time.Time
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s:   s,
		now: time.Now,
	}
}

type HealthResponse struct {
	Status       string    `json:"status"`
	Mode         string    `json:"mode"`
	SalesIQReady bool      `json:"salesiqReady"`
	Timestamp    time.Time `json:"timestamp"`
}

// Health reports liveness and the data mode.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, HealthResponse{
		Status:       "OK",
		Mode:         h.s.Mode().String(),
		SalesIQReady: true,
		Timestamp:    h.now().UTC(),
	})
}

type IntegrationStatusResponse struct {
	Status            string    `json:"status"`
	WidgetVersion     string    `json:"widgetVersion"`
	HubSpotConnected  bool      `json:"hubspotConnected"`
	SupportedFeatures []string  `json:"supportedFeatures"`
	Timestamp         time.Time `json:"timestamp"`
}

// IntegrationStatus describes the widget integration for SalesIQ.
// @Summary SalesIQ integration status
// @Tags salesiq
// @Produce json
// @Success 200 {object} IntegrationStatusResponse
// @Router /salesiq/integration-status [get]
func (h *Handler) IntegrationStatus(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, IntegrationStatusResponse{
		Status:            "active",
		WidgetVersion:     widgetVersion,
		HubSpotConnected:  h.s.Mode() == config.ModeLive,
		SupportedFeatures: supportedFeatures,
		Timestamp:         h.now().UTC(),
	})
}
