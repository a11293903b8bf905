// Package widget is the agent-facing side of the integration: a session-scoped
// controller that drives the widget API, renders results and emits host events.
package widget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/crmwidget/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=controller.go -destination=../mocks/widget.go -package=mocks

type APIClient interface {
	SearchContact(ctx context.Context, email string) (entity.Contact, error)
	CreateContact(ctx context.Context, nc entity.NewContact) (entity.Created, error)
	UpdateContact(ctx context.Context, id string, p entity.ContactPatch) (entity.Updated, error)
	CreateDeal(ctx context.Context, d entity.NewDeal) (entity.Created, error)
	CreateNote(ctx context.Context, n entity.NewNote) (entity.Created, error)
	Notes(ctx context.Context, contactID string) ([]entity.Note, error)
	Activities(ctx context.Context, contactID string) ([]entity.Activity, error)
	QuickAction(ctx context.Context, contactID, action, value string) (string, error)
	LogActivity(ctx context.Context, contactID string, t entity.ActivityType, description string) error
	CreateTask(ctx context.Context, t entity.NewTask) (entity.Created, error)
	TagContact(ctx context.Context, contactID string, tags []string) (string, error)
	SearchCompany(ctx context.Context, domain string) (entity.Company, error)
	AssociateCompany(ctx context.Context, contactID, companyID string) (string, error)
	ContactOwner(ctx context.Context, contactID string) (entity.Owner, error)
}

type View interface {
	ShowContact(c entity.Contact, company *entity.Company)
	ShowNoResults(email string)
	ShowNotes(notes []entity.Note)
	ShowActivities(activities []entity.Activity)
	ShowOwner(owner *entity.Owner)
	ShowChatContext(cc ChatContext)
}

type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Emitter delivers widget events to the host. Delivery is best-effort.
type Emitter interface {
	Emit(ctx context.Context, e Event) error
}

var ErrNoContact = errors.New("no contact selected")

const (
	defaultRefreshDelay = time.Second
	customerStage       = "customer"
)

// Controller serialises widget operations on one Session.
type Controller struct {
	l        *slog.Logger
	mu       sync.Mutex
	session  *Session
	api      APIClient
	view     View
	notifier Notifier
	emitter  Emitter

	refreshDelay time.Duration
	refreshes    sync.WaitGroup
	now          func() time.Time

	// associatedWith is the contact id the session company was linked to.
	associatedWith string
}

func NewController(
	l *slog.Logger,
	session *Session,
	api APIClient,
	view View,
	notifier Notifier,
	emitter Emitter,
) *Controller {
	return &Controller{
		l:            l.WithGroup("widget"),
		session:      session,
		api:          api,
		view:         view,
		notifier:     notifier,
		emitter:      emitter,
		refreshDelay: defaultRefreshDelay,
		now:          time.Now,
	}
}

// Session returns a copy of the current session state.
func (c *Controller) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.session.clone()
}

func (c *Controller) SetSettings(s Settings) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session.Settings = s
}

// Wait blocks until every scheduled refresh has run.
func (c *Controller) Wait() {
	c.refreshes.Wait()
}

func (c *Controller) Search(ctx context.Context, email string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.search(ctx, email)
}

// HandleChatMessage searches for the first email address in a visitor message
// unless it is the one already looked up.
func (c *Controller) HandleChatMessage(ctx context.Context, text string) error {
	email := ExtractEmail(text)
	if email == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if strings.EqualFold(email, c.session.LastEmail) {
		return nil
	}

	return c.search(ctx, email)
}

// HandleVisitor stores the visitor and chat context, shows the context and
// looks the visitor up by email.
func (c *Controller) HandleVisitor(ctx context.Context, v Visitor, cc ChatContext) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session.Visitor = v
	c.session.ChatContext = cc

	if cc != (ChatContext{}) {
		c.view.ShowChatContext(cc)
	}

	if v.Email == "" || strings.EqualFold(v.Email, c.session.LastEmail) {
		return nil
	}

	return c.search(ctx, v.Email)
}

func (c *Controller) CreateContact(ctx context.Context, nc entity.NewContact) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	nc.Email = strings.TrimSpace(nc.Email)
	if !strfmt.IsEmail(nc.Email) {
		return c.invalid("Please enter a valid email address")
	}

	if nc.Company == "" {
		company, err := c.api.SearchCompany(ctx, EmailDomain(nc.Email))
		if err == nil {
			nc.Company = company.Name
		}
	}

	created, err := c.api.CreateContact(ctx, nc)
	if err != nil {
		return c.fail(ctx, "create contact", err)
	}

	c.notifier.Success(created.Message)

	err = c.search(ctx, nc.Email)
	if err != nil {
		return err
	}

	c.logActivity(ctx, entity.ActivityContactCreated, "Contact created via SalesIQ widget")
	c.emit(ctx, EventContactCreated, map[string]any{
		"contactId": created.ID,
		"email":     nc.Email,
	})

	return nil
}

func (c *Controller) UpdateContact(ctx context.Context, p entity.ContactPatch) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	contact, err := c.current()
	if err != nil {
		return err
	}

	updated, err := c.api.UpdateContact(ctx, contact.ID, p)
	if err != nil {
		return c.fail(ctx, "update contact", err)
	}

	applyPatch(contact, p)

	c.notifier.Success(updated.Message)
	c.logActivity(ctx, entity.ActivityContactUpdated, "Contact details updated via SalesIQ widget")
	c.view.ShowContact(*contact, c.session.Company)
	c.emit(ctx, EventContactUpdated, map[string]any{
		"contactId":    contact.ID,
		"contactEmail": contact.Email,
		"updates":      p,
	})

	return nil
}

// ConvertToCustomer moves the current contact to the customer lifecycle stage.
func (c *Controller) ConvertToCustomer(ctx context.Context) error {
	stage := customerStage
	return c.UpdateContact(ctx, entity.ContactPatch{LifecycleStage: &stage})
}

// CreateDeal creates a deal for the current contact. A zero amount or an empty
// stage is taken from the settings.
func (c *Controller) CreateDeal(ctx context.Context, d entity.NewDeal) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	contact, err := c.current()
	if err != nil {
		return err
	}

	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return c.invalid("Please enter a deal name")
	}

	if d.Amount.IsNegative() {
		return c.invalid("Deal amount must not be negative")
	}

	if d.Amount.IsZero() {
		d.Amount = entity.Amount{Decimal: decimal.NewFromFloat(c.session.Settings.DefaultDealAmount)}
	}

	if d.Stage == "" {
		d.Stage = c.session.Settings.DefaultDealStage
	}

	d.ContactID = contact.ID

	created, err := c.api.CreateDeal(ctx, d)
	if err != nil {
		return c.fail(ctx, "create deal", err)
	}

	c.notifier.Success(created.Message)
	c.logActivity(ctx, entity.ActivityDealCreated, fmt.Sprintf("Created deal: %s ($%s)", d.Name, d.Amount.String()))
	c.scheduleRefresh(ctx)
	c.emit(ctx, EventDealCreated, map[string]any{
		"dealId":       created.ID,
		"dealName":     d.Name,
		"amount":       d.Amount,
		"contactEmail": contact.Email,
	})

	return nil
}

func (c *Controller) AddNote(ctx context.Context, body string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	contact, err := c.current()
	if err != nil {
		return err
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return c.invalid("Please enter a note")
	}

	created, err := c.api.CreateNote(ctx, entity.NewNote{ContactID: contact.ID, Body: body})
	if err != nil {
		return c.fail(ctx, "create note", err)
	}

	c.notifier.Success(created.Message)
	c.logActivity(ctx, entity.ActivityNoteCreated, "Note added via SalesIQ widget")

	return c.loadNotes(ctx, contact.ID)
}

func (c *Controller) LoadNotes(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	contact, err := c.current()
	if err != nil {
		return err
	}

	return c.loadNotes(ctx, contact.ID)
}

func (c *Controller) LoadActivities(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	contact, err := c.current()
	if err != nil {
		return err
	}

	activities, err := c.api.Activities(ctx, contact.ID)
	if err != nil {
		return c.fail(ctx, "load activities", err)
	}

	c.view.ShowActivities(activities)

	return nil
}

func (c *Controller) LoadOwner(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	contact, err := c.current()
	if err != nil {
		return err
	}

	owner, err := c.api.ContactOwner(ctx, contact.ID)

	switch {
	case errors.Is(err, entity.ErrNoOwner):
		c.view.ShowOwner(nil)
	case err != nil:
		return c.fail(ctx, "load owner", err)
	default:
		c.view.ShowOwner(&owner)
	}

	return nil
}

func (c *Controller) QuickAction(ctx context.Context, action, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	contact, err := c.current()
	if err != nil {
		return err
	}

	a, err := entity.ParseQuickAction(action)
	if err != nil {
		return c.invalid(fmt.Sprintf("Unknown quick action: %s", action))
	}

	msg, err := c.api.QuickAction(ctx, contact.ID, a.String(), value)
	if err != nil {
		return c.fail(ctx, "quick action", err)
	}

	c.notifier.Success(msg)
	c.logActivity(ctx, entity.ActivityQuickAction, "Quick action performed: "+a.String())
	c.scheduleRefresh(ctx)

	return nil
}

func (c *Controller) CreateTask(ctx context.Context, t entity.NewTask) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	contact, err := c.current()
	if err != nil {
		return err
	}

	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return c.invalid("Please enter a task title")
	}

	priority, err := entity.ParseTaskPriority(t.Priority)
	if err != nil {
		return c.invalid(fmt.Sprintf("Unknown task priority: %s", t.Priority))
	}

	t.Priority = string(priority)
	t.ContactID = contact.ID

	created, err := c.api.CreateTask(ctx, t)
	if err != nil {
		return c.fail(ctx, "create task", err)
	}

	c.notifier.Success(created.Message)
	c.logActivity(ctx, entity.ActivityTaskCreated, "Created task: "+t.Title)
	c.scheduleRefresh(ctx)

	return nil
}

// AddTags tags the current contact with a comma separated list.
func (c *Controller) AddTags(ctx context.Context, raw string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	contact, err := c.current()
	if err != nil {
		return err
	}

	tags := SplitTags(raw)
	if len(tags) == 0 {
		return c.invalid("Please enter at least one tag")
	}

	msg, err := c.api.TagContact(ctx, contact.ID, tags)
	if err != nil {
		return c.fail(ctx, "tag contact", err)
	}

	c.notifier.Success(msg)
	c.logActivity(ctx, entity.ActivityTagsUpdated, "Tags added: "+strings.Join(tags, ", "))
	c.scheduleRefresh(ctx)

	return nil
}

func SplitTags(raw string) []string {
	var tags []string

	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}

	return tags
}

func (c *Controller) search(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if !strfmt.IsEmail(email) {
		return c.invalid("Please enter a valid email address")
	}

	c.session.LastEmail = email

	contact, err := c.api.SearchContact(ctx, email)

	switch {
	case errors.Is(err, entity.ErrNotFound):
		c.session.Contact = nil
		c.session.Company = nil
		c.view.ShowNoResults(email)
		c.emit(ctx, EventContactNotFound, map[string]any{"email": email})

		return nil
	case err != nil:
		return c.fail(ctx, "search contact", err)
	}

	if c.associatedWith != contact.ID {
		c.session.Company = nil
	}

	c.session.Contact = &contact

	if contact.Company == "" && c.session.Company == nil {
		c.autoFillCompany(ctx, &contact)
	}

	c.view.ShowContact(contact, c.session.Company)
	c.emit(ctx, EventContactFound, map[string]any{
		"email":   email,
		"contact": contact,
	})

	return nil
}

// autoFillCompany links the contact to the company owning its email domain.
func (c *Controller) autoFillCompany(ctx context.Context, contact *entity.Contact) {
	domain := EmailDomain(contact.Email)
	if domain == "" {
		return
	}

	company, err := c.api.SearchCompany(ctx, domain)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			c.l.WarnContext(ctx, "search company", "domain", domain, "error", err)
		}

		return
	}

	_, err = c.api.AssociateCompany(ctx, contact.ID, company.ID)
	if err != nil {
		c.l.WarnContext(ctx, "associate company", "contact_id", contact.ID, "error", err)
		return
	}

	c.session.Company = &company
	c.associatedWith = contact.ID
	c.logActivity(ctx, entity.ActivityCompanyAssociated, "Contact associated with company")
}

func (c *Controller) loadNotes(ctx context.Context, contactID string) error {
	notes, err := c.api.Notes(ctx, contactID)
	if err != nil {
		return c.fail(ctx, "load notes", err)
	}

	c.view.ShowNotes(notes)

	return nil
}

func (c *Controller) current() (*entity.Contact, error) {
	if c.session.Contact == nil {
		c.notifier.Error("Search for a contact first")
		return nil, ErrNoContact
	}

	return c.session.Contact, nil
}

// logActivity is best-effort: a failure never fails the action that triggered it.
func (c *Controller) logActivity(ctx context.Context, t entity.ActivityType, description string) {
	if c.session.Contact == nil {
		return
	}

	err := c.api.LogActivity(ctx, c.session.Contact.ID, t, description)
	if err != nil {
		c.l.WarnContext(ctx, "log activity", "type", t, "error", err)
	}
}

func (c *Controller) emit(ctx context.Context, name EventName, data any) {
	err := c.emitter.Emit(ctx, Event{
		Type:      EventType,
		Event:     name,
		Data:      data,
		Timestamp: c.now().UTC(),
	})
	if err != nil {
		c.l.WarnContext(ctx, "emit event", "event", name, "error", err)
	}
}

// scheduleRefresh re-runs the search for the current contact after refreshDelay.
func (c *Controller) scheduleRefresh(ctx context.Context) {
	if !c.session.Settings.AutoRefresh || c.session.Contact == nil {
		return
	}

	email := c.session.Contact.Email
	ctx = context.WithoutCancel(ctx)

	c.refreshes.Add(1)
	time.AfterFunc(c.refreshDelay, func() {
		defer c.refreshes.Done()

		c.mu.Lock()
		defer c.mu.Unlock()

		_ = c.search(ctx, email)
	})
}

func (c *Controller) invalid(msg string) error {
	c.notifier.Error(msg)
	return entity.InvalidArgument("%s", msg)
}

func (c *Controller) fail(ctx context.Context, action string, err error) error {
	c.l.ErrorContext(ctx, action, "error", err)

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.notifier.Error(apiErr.Error())
	} else {
		c.notifier.Error("Error: " + err.Error())
	}

	return fmt.Errorf("%s: %w", action, err)
}

func applyPatch(c *entity.Contact, p entity.ContactPatch) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}

	set(&c.FirstName, p.FirstName)
	set(&c.LastName, p.LastName)
	set(&c.Phone, p.Phone)
	set(&c.Company, p.Company)
	set(&c.JobTitle, p.JobTitle)
	set(&c.LifecycleStage, p.LifecycleStage)
}
