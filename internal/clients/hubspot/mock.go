package hubspot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samandr77/microservices/crmwidget/internal/entity"
)

const (
	hour = time.Hour
	day  = 24 * time.Hour
)

// Mock answers every call with fixed sample data and never touches the network.
type Mock struct {
	now func() time.Time
}

func NewMock() *Mock {
	return &Mock{now: time.Now}
}

// fixtures are keyed by lower-cased email.
func (m *Mock) fixtures() map[string]entity.Contact {
	lastActivity := m.now().UTC().Format(time.RFC3339)

	return map[string]entity.Contact{
		"john.doe@example.com": {
			ID:             "12345",
			Email:          "john.doe@example.com",
			FirstName:      "John",
			LastName:       "Doe",
			Phone:          "+1-555-0123",
			Company:        "Acme Corporation",
			JobTitle:       "Marketing Manager",
			LifecycleStage: entity.LifecycleStageLead,
			CreateDate:     "2024-01-15T10:00:00Z",
			LastActivity:   lastActivity,
			Deals: []entity.Deal{{
				ID:        "deal1",
				Name:      "Q4 Marketing Package",
				Amount:    entity.NewAmount(15000),
				Stage:     "qualification",
				CloseDate: "2024-12-31",
			}},
		},
		"jane.smith@techcorp.com": {
			ID:             "67890",
			Email:          "jane.smith@techcorp.com",
			FirstName:      "Jane",
			LastName:       "Smith",
			Phone:          "+1-555-0456",
			Company:        "TechCorp Solutions",
			JobTitle:       "CTO",
			LifecycleStage: "customer",
			CreateDate:     "2023-08-20T14:00:00Z",
			LastActivity:   lastActivity,
			Deals: []entity.Deal{
				{ID: "deal2", Name: "Enterprise License", Amount: entity.NewAmount(50000), Stage: "closed-won", CloseDate: "2024-10-15"},
				{ID: "deal3", Name: "Support Package", Amount: entity.NewAmount(12000), Stage: "negotiation", CloseDate: "2024-12-20"},
			},
		},
	}
}

func (m *Mock) SearchContactByEmail(_ context.Context, email string) (entity.Contact, int, error) {
	c, ok := m.fixtures()[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return entity.Contact{}, 0, fmt.Errorf("contact %s: %w", email, entity.ErrNotFound)
	}

	return c, 0, nil
}

func (m *Mock) CreateContact(_ context.Context, _ entity.NewContact) (string, error) {
	return m.id("mock-"), nil
}

func (m *Mock) UpdateContact(_ context.Context, id string, _ entity.ContactPatch) (map[string]any, error) {
	return map[string]any{"id": id}, nil
}

func (m *Mock) UpdateContactProperties(_ context.Context, _ string, _ map[string]string) error {
	return nil
}

func (m *Mock) CreateDeal(_ context.Context, _ entity.NewDeal) (string, error) {
	return m.id("mock-deal-"), nil
}

func (m *Mock) ListDeals(_ context.Context, contactID string) ([]entity.Deal, int, error) {
	for _, c := range m.fixtures() {
		if c.ID == contactID {
			return c.Deals, 0, nil
		}
	}

	return []entity.Deal{}, 0, nil
}

func (m *Mock) CreateNote(_ context.Context, _ entity.NewNote) (string, error) {
	return m.id("mock-note-"), nil
}

func (m *Mock) ListNotes(_ context.Context, _ string) ([]entity.Note, int, error) {
	return []entity.Note{{
		ID:        "note1",
		Body:      "Customer interested in premium plan",
		Timestamp: m.now().Add(-day).UnixMilli(),
	}}, 0, nil
}

func (m *Mock) ListActivities(_ context.Context, _ string) ([]entity.Activity, int, error) {
	now := m.now()

	return []entity.Activity{
		{Type: "note", Body: "Customer called about pricing", Timestamp: now.Add(-hour).UnixMilli()},
		{Type: "deal", Body: "Deal created: Premium Package", Timestamp: now.Add(-2 * hour).UnixMilli()},
	}, 0, nil
}

func (m *Mock) CreateTask(_ context.Context, _ entity.NewTask) (string, error) {
	return m.id("mock-task-"), nil
}

func (m *Mock) SearchCompanyByDomain(_ context.Context, domain string) (entity.Company, error) {
	return entity.Company{ID: "mock-company", Name: "Example Corp", Domain: domain}, nil
}

func (m *Mock) AssociateCompany(_ context.Context, _, _ string) error {
	return nil
}

func (m *Mock) ContactOwner(_ context.Context, _ string) (entity.Owner, error) {
	return entity.Owner{FirstName: "John", LastName: "Doe", Email: "john@example.com"}, nil
}

func (m *Mock) Owners(_ context.Context) ([]entity.Owner, error) {
	return []entity.Owner{{ID: "123", FirstName: "John", LastName: "Doe", Email: "john@example.com"}}, nil
}

// Passthrough needs a real CRM behind it.
func (m *Mock) Passthrough(_ context.Context, _, _, _ string, _ []byte) (int, []byte, error) {
	return 0, nil, entity.ErrNotConfigured
}

func (m *Mock) id(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, m.now().UnixMilli())
}
