package widget

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/samandr77/microservices/crmwidget/internal/entity"
	"github.com/samandr77/microservices/crmwidget/pkg/transport"
)

// APIError is a non-2xx answer of the widget API.
type APIError struct {
	Status      int    `json:"-"`
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}

	if e.Description != "" {
		return msg + ": " + e.Description
	}

	return msg
}

func (e *APIError) Is(target error) bool {
	switch target {
	case entity.ErrNotFound:
		return e.Status == http.StatusNotFound
	case entity.ErrInvalidArgument:
		return e.Status == http.StatusBadRequest
	case entity.ErrUpstream:
		return e.Status >= http.StatusInternalServerError
	default:
		return false
	}
}

// Client calls the widget API router.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: transport.NewBearerRoundTripper(http.DefaultTransport, token),
		},
	}
}

func (c *Client) SearchContact(ctx context.Context, email string) (entity.Contact, error) {
	var contact entity.Contact

	err := c.do(ctx, http.MethodGet, "/api/contacts/search?email="+url.QueryEscape(email), nil, &contact)
	if err != nil {
		return entity.Contact{}, err
	}

	return contact, nil
}

func (c *Client) CreateContact(ctx context.Context, nc entity.NewContact) (entity.Created, error) {
	var created entity.Created

	err := c.do(ctx, http.MethodPost, "/api/contacts", nc, &created)
	if err != nil {
		return entity.Created{}, err
	}

	return created, nil
}

func (c *Client) UpdateContact(ctx context.Context, id string, p entity.ContactPatch) (entity.Updated, error) {
	var updated entity.Updated

	err := c.do(ctx, http.MethodPatch, "/api/contacts/"+url.PathEscape(id), p, &updated)
	if err != nil {
		return entity.Updated{}, err
	}

	return updated, nil
}

func (c *Client) CreateDeal(ctx context.Context, d entity.NewDeal) (entity.Created, error) {
	var created entity.Created

	err := c.do(ctx, http.MethodPost, "/api/deals", d, &created)
	if err != nil {
		return entity.Created{}, err
	}

	return created, nil
}

func (c *Client) CreateNote(ctx context.Context, n entity.NewNote) (entity.Created, error) {
	var created entity.Created

	err := c.do(ctx, http.MethodPost, "/api/notes", n, &created)
	if err != nil {
		return entity.Created{}, err
	}

	return created, nil
}

func (c *Client) Notes(ctx context.Context, contactID string) ([]entity.Note, error) {
	var notes []entity.Note

	err := c.do(ctx, http.MethodGet, "/api/contacts/"+url.PathEscape(contactID)+"/notes", nil, &notes)
	if err != nil {
		return nil, err
	}

	return notes, nil
}

func (c *Client) Activities(ctx context.Context, contactID string) ([]entity.Activity, error) {
	var activities []entity.Activity

	err := c.do(ctx, http.MethodGet, "/api/contacts/"+url.PathEscape(contactID)+"/activities", nil, &activities)
	if err != nil {
		return nil, err
	}

	return activities, nil
}

type messageResponse struct {
	Message string `json:"message"`
}

func (c *Client) QuickAction(ctx context.Context, contactID, action, value string) (string, error) {
	req := struct {
		Action string `json:"action"`
		Value  string `json:"value,omitempty"`
	}{Action: action, Value: value}

	var resp messageResponse

	err := c.do(ctx, http.MethodPost, "/api/contacts/"+url.PathEscape(contactID)+"/quick-action", req, &resp)
	if err != nil {
		return "", err
	}

	return resp.Message, nil
}

func (c *Client) LogActivity(ctx context.Context, contactID string, t entity.ActivityType, description string) error {
	req := struct {
		ContactID    string `json:"contactId"`
		ActivityType string `json:"activityType"`
		Description  string `json:"description"`
	}{ContactID: contactID, ActivityType: string(t), Description: description}

	return c.do(ctx, http.MethodPost, "/api/activities/log", req, nil)
}

func (c *Client) CreateTask(ctx context.Context, t entity.NewTask) (entity.Created, error) {
	var created entity.Created

	err := c.do(ctx, http.MethodPost, "/api/tasks", t, &created)
	if err != nil {
		return entity.Created{}, err
	}

	return created, nil
}

func (c *Client) TagContact(ctx context.Context, contactID string, tags []string) (string, error) {
	req := struct {
		Tags []string `json:"tags"`
	}{Tags: tags}

	var resp messageResponse

	err := c.do(ctx, http.MethodPost, "/api/contacts/"+url.PathEscape(contactID)+"/tags", req, &resp)
	if err != nil {
		return "", err
	}

	return resp.Message, nil
}

func (c *Client) SearchCompany(ctx context.Context, domain string) (entity.Company, error) {
	var company entity.Company

	err := c.do(ctx, http.MethodGet, "/api/companies/search?domain="+url.QueryEscape(domain), nil, &company)
	if err != nil {
		return entity.Company{}, err
	}

	return company, nil
}

func (c *Client) AssociateCompany(ctx context.Context, contactID, companyID string) (string, error) {
	req := struct {
		CompanyID string `json:"companyId"`
	}{CompanyID: companyID}

	var resp messageResponse

	err := c.do(ctx, http.MethodPost, "/api/contacts/"+url.PathEscape(contactID)+"/associate-company", req, &resp)
	if err != nil {
		return "", err
	}

	return resp.Message, nil
}

// ContactOwner returns entity.ErrNoOwner when the API answers with a bare message.
func (c *Client) ContactOwner(ctx context.Context, contactID string) (entity.Owner, error) {
	var resp struct {
		entity.Owner
		Message string `json:"message"`
	}

	err := c.do(ctx, http.MethodGet, "/api/contacts/"+url.PathEscape(contactID)+"/owner", nil, &resp)
	if err != nil {
		return entity.Owner{}, err
	}

	if resp.Message != "" && resp.Owner.Email == "" {
		return entity.Owner{}, entity.ErrNoOwner
	}

	return resp.Owner, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader

	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}

		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		_ = json.Unmarshal(b, apiErr)

		return apiErr
	}

	if out == nil || len(b) == 0 {
		return nil
	}

	err = json.Unmarshal(b, out)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
