package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/crmwidget/internal/entity"
	"github.com/samandr77/microservices/crmwidget/pkg/config"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

// CRM is implemented by both the live HubSpot client and the mock fixture set.
// List methods also return the number of records dropped because their detail fetch failed.
type CRM interface {
	SearchContactByEmail(ctx context.Context, email string) (entity.Contact, int, error)
	CreateContact(ctx context.Context, c entity.NewContact) (string, error)
	UpdateContact(ctx context.Context, id string, p entity.ContactPatch) (map[string]any, error)
	UpdateContactProperties(ctx context.Context, id string, props map[string]string) error
	CreateDeal(ctx context.Context, d entity.NewDeal) (string, error)
	ListDeals(ctx context.Context, contactID string) ([]entity.Deal, int, error)
	CreateNote(ctx context.Context, n entity.NewNote) (string, error)
	ListNotes(ctx context.Context, contactID string) ([]entity.Note, int, error)
	ListActivities(ctx context.Context, contactID string) ([]entity.Activity, int, error)
	CreateTask(ctx context.Context, t entity.NewTask) (string, error)
	SearchCompanyByDomain(ctx context.Context, domain string) (entity.Company, error)
	AssociateCompany(ctx context.Context, contactID, companyID string) error
	ContactOwner(ctx context.Context, contactID string) (entity.Owner, error)
	Owners(ctx context.Context) ([]entity.Owner, error)
	Passthrough(ctx context.Context, method, path, rawQuery string, body []byte) (int, []byte, error)
}

type Repository interface {
	SaveChatEvent(ctx context.Context, e entity.ChatEvent) error
	ChatEvents(ctx context.Context, filter entity.ChatEventFilter) ([]entity.ChatEvent, error)
}

type Producer interface {
	SendChatEvent(ctx context.Context, e entity.ChatEvent)
}

const defaultChatEventsLimit = 50

type Service struct {
	crm      CRM
	mode     config.Mode
	repo     Repository
	producer Producer
	now      func() time.Time
}

// New builds the service. repo and producer are optional and may be nil.
func New(crm CRM, mode config.Mode, repo Repository, producer Producer) *Service {
	return &Service{
		crm:      crm,
		mode:     mode,
		repo:     repo,
		producer: producer,
		now:      time.Now,
	}
}

func (s *Service) Mode() config.Mode {
	return s.mode
}

func (s *Service) message(msg string) string {
	if s.mode == config.ModeMock {
		return msg + " (mock)"
	}

	return msg
}

func (s *Service) SearchContact(ctx context.Context, email string) (entity.Contact, int, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return entity.Contact{}, 0, entity.InvalidArgument("email parameter is required")
	}

	contact, skipped, err := s.crm.SearchContactByEmail(ctx, email)
	if err != nil {
		return entity.Contact{}, 0, err
	}

	if skipped > 0 {
		slog.WarnContext(ctx, "contact returned with partial deals", "contact_id", contact.ID, "skipped", skipped)
	}

	return contact, skipped, nil
}

func (s *Service) CreateContact(ctx context.Context, c entity.NewContact) (entity.Created, error) {
	c.Email = strings.TrimSpace(c.Email)

	if c.Email == "" {
		return entity.Created{}, entity.InvalidArgument("email is required")
	}

	if !strfmt.IsEmail(c.Email) {
		return entity.Created{}, entity.InvalidArgument("invalid email %q", c.Email)
	}

	id, err := s.crm.CreateContact(ctx, c)
	if err != nil {
		return entity.Created{}, err
	}

	return entity.Created{ID: id, Message: s.message("Contact created successfully")}, nil
}

func (s *Service) UpdateContact(ctx context.Context, id string, p entity.ContactPatch) (entity.Updated, error) {
	if id == "" {
		return entity.Updated{}, entity.InvalidArgument("contact id is required")
	}

	contact, err := s.crm.UpdateContact(ctx, id, p)
	if err != nil {
		return entity.Updated{}, err
	}

	return entity.Updated{Message: s.message("Contact updated successfully"), Contact: contact}, nil
}

func (s *Service) CreateDeal(ctx context.Context, d entity.NewDeal) (entity.Created, error) {
	switch {
	case d.ContactID == "":
		return entity.Created{}, entity.InvalidArgument("contactId is required")
	case strings.TrimSpace(d.Name) == "":
		return entity.Created{}, entity.InvalidArgument("dealName is required")
	case d.Amount.IsNegative():
		return entity.Created{}, entity.InvalidArgument("amount must not be negative")
	}

	id, err := s.crm.CreateDeal(ctx, d)
	if err != nil {
		return entity.Created{}, err
	}

	return entity.Created{ID: id, Message: s.message("Deal created successfully")}, nil
}

func (s *Service) Deals(ctx context.Context, contactID string) ([]entity.Deal, int, error) {
	if contactID == "" {
		return nil, 0, entity.InvalidArgument("contact id is required")
	}

	return s.crm.ListDeals(ctx, contactID)
}

func (s *Service) CreateNote(ctx context.Context, n entity.NewNote) (entity.Created, error) {
	switch {
	case n.ContactID == "":
		return entity.Created{}, entity.InvalidArgument("contactId is required")
	case strings.TrimSpace(n.Body) == "":
		return entity.Created{}, entity.InvalidArgument("noteBody is required")
	}

	id, err := s.crm.CreateNote(ctx, n)
	if err != nil {
		return entity.Created{}, err
	}

	return entity.Created{ID: id, Message: s.message("Note created successfully")}, nil
}

func (s *Service) Notes(ctx context.Context, contactID string) ([]entity.Note, int, error) {
	if contactID == "" {
		return nil, 0, entity.InvalidArgument("contact id is required")
	}

	return s.crm.ListNotes(ctx, contactID)
}

func (s *Service) Activities(ctx context.Context, contactID string) ([]entity.Activity, int, error) {
	if contactID == "" {
		return nil, 0, entity.InvalidArgument("contact id is required")
	}

	return s.crm.ListActivities(ctx, contactID)
}

// QuickAction applies one of the fixed contact mutations. Unknown actions never reach the CRM.
func (s *Service) QuickAction(ctx context.Context, contactID, action, value string) (string, error) {
	if contactID == "" {
		return "", entity.InvalidArgument("contact id is required")
	}

	a, err := entity.ParseQuickAction(action)
	if err != nil {
		return "", err
	}

	props, err := a.Properties(value, s.now())
	if err != nil {
		return "", err
	}

	if props == nil {
		if s.mode == config.ModeMock {
			return s.message(fmt.Sprintf("%s completed successfully", a)), nil
		}

		return entity.ListManagementMessage, nil
	}

	err = s.crm.UpdateContactProperties(ctx, contactID, props)
	if err != nil {
		return "", fmt.Errorf("quick action %s: %w", a, err)
	}

	return s.message(fmt.Sprintf("%s completed successfully", a)), nil
}

// LogActivity stores a widget event as a prefixed note on the contact timeline.
func (s *Service) LogActivity(ctx context.Context, contactID, activityType, description string) (string, error) {
	if contactID == "" {
		return "", entity.InvalidArgument("contactId is required")
	}

	t, err := entity.ParseActivityType(activityType)
	if err != nil {
		return "", err
	}

	_, err = s.crm.CreateNote(ctx, entity.NewNote{
		ContactID: contactID,
		Body:      entity.ActivityNotePrefix + description,
	})
	if err != nil {
		return "", fmt.Errorf("log %s activity: %w", t, err)
	}

	return s.message("Activity logged successfully"), nil
}

func (s *Service) CreateTask(ctx context.Context, t entity.NewTask) (entity.Created, error) {
	switch {
	case t.ContactID == "":
		return entity.Created{}, entity.InvalidArgument("contactId is required")
	case strings.TrimSpace(t.Title) == "":
		return entity.Created{}, entity.InvalidArgument("title is required")
	}

	priority, err := entity.ParseTaskPriority(t.Priority)
	if err != nil {
		return entity.Created{}, err
	}

	t.Priority = string(priority)

	id, err := s.crm.CreateTask(ctx, t)
	if err != nil {
		return entity.Created{}, err
	}

	return entity.Created{ID: id, Message: s.message("Task created successfully")}, nil
}

func (s *Service) ContactOwner(ctx context.Context, contactID string) (entity.Owner, error) {
	if contactID == "" {
		return entity.Owner{}, entity.InvalidArgument("contact id is required")
	}

	return s.crm.ContactOwner(ctx, contactID)
}

func (s *Service) Owners(ctx context.Context) ([]entity.Owner, error) {
	return s.crm.Owners(ctx)
}

// TagContact replaces the contact's tags with the given set.
func (s *Service) TagContact(ctx context.Context, contactID string, tags []string) (string, error) {
	if contactID == "" {
		return "", entity.InvalidArgument("contact id is required")
	}

	clean := make([]string, 0, len(tags))

	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			clean = append(clean, t)
		}
	}

	if len(clean) == 0 {
		return "", entity.InvalidArgument("at least one tag is required")
	}

	err := s.crm.UpdateContactProperties(ctx, contactID, map[string]string{"hs_tag": strings.Join(clean, ";")})
	if err != nil {
		return "", fmt.Errorf("tag contact: %w", err)
	}

	return s.message("Tags updated successfully"), nil
}

func (s *Service) SearchCompany(ctx context.Context, domain string) (entity.Company, error) {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return entity.Company{}, entity.InvalidArgument("domain parameter is required")
	}

	return s.crm.SearchCompanyByDomain(ctx, domain)
}

func (s *Service) AssociateCompany(ctx context.Context, contactID, companyID string) (string, error) {
	switch {
	case contactID == "":
		return "", entity.InvalidArgument("contact id is required")
	case companyID == "":
		return "", entity.InvalidArgument("companyId is required")
	}

	err := s.crm.AssociateCompany(ctx, contactID, companyID)
	if err != nil {
		return "", err
	}

	return s.message("Contact associated with company"), nil
}

func (s *Service) Passthrough(ctx context.Context, method, path, rawQuery string, body []byte) (int, []byte, error) {
	if s.mode == config.ModeMock {
		return 0, nil, entity.ErrNotConfigured
	}

	return s.crm.Passthrough(ctx, method, path, rawQuery, body)
}

type chatPayload struct {
	VisitorInfo struct {
		Email string `json:"email"`
	} `json:"visitor_info"`
	Visitor struct {
		Email string `json:"email"`
	} `json:"visitor"`
}

// RecordChatEvent stores and publishes a SalesIQ webhook delivery when storage
// or a broker is configured. Without either the event is only logged.
func (s *Service) RecordChatEvent(ctx context.Context, kind entity.ChatEventKind, payload []byte) (entity.ChatEvent, error) {
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	var p chatPayload

	err := json.Unmarshal(payload, &p)
	if err != nil {
		return entity.ChatEvent{}, entity.InvalidArgument("malformed webhook payload: %s", err)
	}

	email := p.VisitorInfo.Email
	if email == "" {
		email = p.Visitor.Email
	}

	e := entity.ChatEvent{
		ID:           uuid.Must(uuid.NewV4()),
		Kind:         kind,
		VisitorEmail: strings.ToLower(strings.TrimSpace(email)),
		Payload:      json.RawMessage(payload),
		ReceivedAt:   s.now().UTC(),
	}

	slog.InfoContext(ctx, "chat event received", "kind", kind, "event_id", e.ID, "visitor_email", e.VisitorEmail)

	if s.repo != nil {
		err = s.repo.SaveChatEvent(ctx, e)
		if err != nil {
			return entity.ChatEvent{}, fmt.Errorf("save chat event: %w", err)
		}
	}

	if s.producer != nil {
		s.producer.SendChatEvent(ctx, e)
	}

	return e, nil
}

func (s *Service) ChatEvents(ctx context.Context, filter entity.ChatEventFilter) ([]entity.ChatEvent, error) {
	if s.repo == nil {
		return []entity.ChatEvent{}, nil
	}

	if filter.Limit == 0 {
		filter.Limit = defaultChatEventsLimit
	}

	filter.VisitorEmail = strings.ToLower(strings.TrimSpace(filter.VisitorEmail))

	events, err := s.repo.ChatEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list chat events: %w", err)
	}

	return events, nil
}
