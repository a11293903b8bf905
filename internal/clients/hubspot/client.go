package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/samandr77/microservices/crmwidget/internal/entity"
	"github.com/samandr77/microservices/crmwidget/pkg/config"
	"github.com/samandr77/microservices/crmwidget/pkg/transport"
)

// Association type ids defined by HubSpot for the HUBSPOT_DEFINED category.
const (
	AssociationDealToContact    = 3
	AssociationNoteToContact    = 202
	AssociationTaskToContact    = 204
	AssociationContactToCompany = 280

	associationCategory = "HUBSPOT_DEFINED"

	defaultCloseDateOffset = 30 * 24 * time.Hour
	activityNotesLimit     = 5
)

var contactProperties = []string{
	"email", "firstname", "lastname", "phone", "company",
	"jobtitle", "lifecyclestage", "createdate", "lastmodifieddate",
}

type Client struct {
	baseURL string
	http    *http.Client
	strict  bool
	now     func() time.Time
}

// NewClient builds a client signing every call with the static API key.
// There is no timeout and no retry: the caller's context bounds the call.
func NewClient(cfg config.HubSpot) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Transport: transport.NewBearerRoundTripper(http.DefaultTransport, cfg.APIKey),
		},
		strict: cfg.StrictAssociations,
		now:    time.Now,
	}
}

type (
	Object struct {
		ID         string            `json:"id"`
		Properties map[string]string `json:"properties"`
	}

	ListResponse[T any] struct {
		Total   int `json:"total,omitempty"`
		Results []T `json:"results"`
	}

	SearchRequest struct {
		FilterGroups []FilterGroup `json:"filterGroups"`
		Properties   []string      `json:"properties,omitempty"`
		Limit        int           `json:"limit,omitempty"`
	}

	FilterGroup struct {
		Filters []Filter `json:"filters"`
	}

	Filter struct {
		PropertyName string `json:"propertyName"`
		Operator     string `json:"operator"`
		Value        string `json:"value"`
	}

	CreateRequest struct {
		Properties   map[string]string `json:"properties"`
		Associations []Association     `json:"associations,omitempty"`
	}

	UpdateRequest struct {
		Properties map[string]string `json:"properties"`
	}

	Association struct {
		To    AssociationTarget `json:"to"`
		Types []AssociationType `json:"types"`
	}

	AssociationTarget struct {
		ID string `json:"id"`
	}

	AssociationType struct {
		Category string `json:"associationCategory"`
		TypeID   int    `json:"associationTypeId"`
	}

	AssociatedID struct {
		ID   string `json:"id"`
		Type string `json:"type,omitempty"`
	}

	Owner struct {
		ID        string `json:"id"`
		Email     string `json:"email"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		UserID    int64  `json:"userId"`
	}

	ErrorResponse struct {
		Status   string `json:"status"`
		Message  string `json:"message"`
		Category string `json:"category"`
	}
)

func (c *Client) SearchContactByEmail(ctx context.Context, email string) (entity.Contact, int, error) {
	var res ListResponse[Object]

	err := c.do(ctx, http.MethodPost, "/crm/v3/objects/contacts/search", nil, SearchRequest{
		FilterGroups: []FilterGroup{{Filters: []Filter{{PropertyName: "email", Operator: "EQ", Value: email}}}},
		Properties:   contactProperties,
	}, &res)
	if err != nil {
		return entity.Contact{}, 0, fmt.Errorf("search contact: %w", err)
	}

	if len(res.Results) == 0 {
		return entity.Contact{}, 0, fmt.Errorf("contact %s: %w", email, entity.ErrNotFound)
	}

	contact := contactFromAPI(res.Results[0])

	deals, skipped, err := c.ListDeals(ctx, contact.ID)
	if err != nil {
		if c.strict {
			return entity.Contact{}, 0, err
		}

		slog.WarnContext(ctx, "fetch contact deals", "contact_id", contact.ID, "error", err)

		skipped++
	}

	contact.Deals = deals

	return contact, skipped, nil
}

func (c *Client) CreateContact(ctx context.Context, nc entity.NewContact) (string, error) {
	var res Object

	err := c.do(ctx, http.MethodPost, "/crm/v3/objects/contacts", nil, CreateRequest{
		Properties: map[string]string{
			"email":          nc.Email,
			"firstname":      nc.FirstName,
			"lastname":       nc.LastName,
			"phone":          nc.Phone,
			"company":        nc.Company,
			"jobtitle":       nc.JobTitle,
			"lifecyclestage": entity.LifecycleStageLead,
		},
	}, &res)
	if err != nil {
		return "", fmt.Errorf("create contact: %w", err)
	}

	return res.ID, nil
}

// UpdateContact sends only the fields present in the patch. An empty patch is not sent.
func (c *Client) UpdateContact(ctx context.Context, id string, p entity.ContactPatch) (map[string]any, error) {
	if p.IsEmpty() {
		return map[string]any{"id": id}, nil
	}

	props := make(map[string]string)

	set := func(key string, v *string) {
		if v != nil {
			props[key] = *v
		}
	}

	set("firstname", p.FirstName)
	set("lastname", p.LastName)
	set("phone", p.Phone)
	set("company", p.Company)
	set("jobtitle", p.JobTitle)
	set("lifecyclestage", p.LifecycleStage)

	var res map[string]any

	err := c.do(ctx, http.MethodPatch, "/crm/v3/objects/contacts/"+url.PathEscape(id), nil,
		UpdateRequest{Properties: props}, &res)
	if err != nil {
		return nil, fmt.Errorf("update contact %s: %w", id, err)
	}

	return res, nil
}

func (c *Client) UpdateContactProperties(ctx context.Context, id string, props map[string]string) error {
	err := c.do(ctx, http.MethodPatch, "/crm/v3/objects/contacts/"+url.PathEscape(id), nil,
		UpdateRequest{Properties: props}, nil)
	if err != nil {
		return fmt.Errorf("update contact %s properties: %w", id, err)
	}

	return nil
}

func (c *Client) CreateDeal(ctx context.Context, d entity.NewDeal) (string, error) {
	stage := d.Stage
	if stage == "" {
		stage = entity.DefaultDealStage
	}

	closeDate := d.CloseDate
	if closeDate == "" {
		closeDate = c.now().Add(defaultCloseDateOffset).UTC().Format(time.RFC3339)
	}

	var res Object

	err := c.do(ctx, http.MethodPost, "/crm/v3/objects/deals", nil, CreateRequest{
		Properties: map[string]string{
			"dealname":  d.Name,
			"amount":    d.Amount.String(),
			"dealstage": stage,
			"closedate": closeDate,
		},
		Associations: associateWith(d.ContactID, AssociationDealToContact),
	}, &res)
	if err != nil {
		return "", fmt.Errorf("create deal: %w", err)
	}

	return res.ID, nil
}

// ListDeals resolves the contact's deals one by one. Deals whose detail fetch
// fails are dropped and counted unless strict mode is on.
func (c *Client) ListDeals(ctx context.Context, contactID string) ([]entity.Deal, int, error) {
	ids, err := c.associatedIDs(ctx, contactID, "deals")
	if err != nil {
		return []entity.Deal{}, 0, err
	}

	deals := make([]entity.Deal, 0, len(ids))
	skipped := 0

	for _, id := range ids {
		obj, err := c.object(ctx, "deals", id, "dealname,amount,dealstage,closedate")
		if err != nil {
			if c.strict {
				return nil, 0, err
			}

			slog.WarnContext(ctx, "skip deal", "deal_id", id, "error", err)

			skipped++

			continue
		}

		deals = append(deals, dealFromAPI(obj))
	}

	return deals, skipped, nil
}

func (c *Client) CreateNote(ctx context.Context, n entity.NewNote) (string, error) {
	var res Object

	err := c.do(ctx, http.MethodPost, "/crm/v3/objects/notes", nil, CreateRequest{
		Properties: map[string]string{
			"hs_timestamp": strconv.FormatInt(c.now().UnixMilli(), 10),
			"hs_note_body": n.Body,
		},
		Associations: associateWith(n.ContactID, AssociationNoteToContact),
	}, &res)
	if err != nil {
		return "", fmt.Errorf("create note: %w", err)
	}

	return res.ID, nil
}

func (c *Client) ListNotes(ctx context.Context, contactID string) ([]entity.Note, int, error) {
	ids, err := c.associatedIDs(ctx, contactID, "notes")
	if err != nil {
		return nil, 0, err
	}

	return c.notesByID(ctx, ids)
}

// ListActivities returns the contact's timeline, newest first.
// Only notes are tracked; the first few associations are resolved.
// A failed association lookup yields an empty timeline.
func (c *Client) ListActivities(ctx context.Context, contactID string) ([]entity.Activity, int, error) {
	ids, err := c.associatedIDs(ctx, contactID, "notes")
	if err != nil {
		slog.WarnContext(ctx, "activities unavailable", "contact_id", contactID, "error", err)
		return []entity.Activity{}, 0, nil
	}

	if len(ids) > activityNotesLimit {
		ids = ids[:activityNotesLimit]
	}

	notes, skipped, err := c.notesByID(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	activities := make([]entity.Activity, 0, len(notes))

	for _, n := range notes {
		ts := n.Timestamp
		if ts == 0 {
			ts = c.now().UnixMilli()
		}

		activities = append(activities, entity.Activity{Type: "note", ID: n.ID, Body: n.Body, Timestamp: ts})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Timestamp > activities[j].Timestamp
	})

	if len(activities) > entity.MaxActivities {
		activities = activities[:entity.MaxActivities]
	}

	return activities, skipped, nil
}

func (c *Client) notesByID(ctx context.Context, ids []string) ([]entity.Note, int, error) {
	notes := make([]entity.Note, 0, len(ids))
	skipped := 0

	for _, id := range ids {
		obj, err := c.object(ctx, "notes", id, "hs_note_body,hs_timestamp")
		if err != nil {
			if c.strict {
				return nil, 0, err
			}

			slog.WarnContext(ctx, "skip note", "note_id", id, "error", err)

			skipped++

			continue
		}

		notes = append(notes, entity.Note{
			ID:        obj.ID,
			Body:      obj.Properties["hs_note_body"],
			Timestamp: parseTimestamp(obj.Properties["hs_timestamp"]),
		})
	}

	return notes, skipped, nil
}

func (c *Client) CreateTask(ctx context.Context, t entity.NewTask) (string, error) {
	priority := t.Priority
	if priority == "" {
		priority = string(entity.TaskPriorityMedium)
	}

	var res Object

	err := c.do(ctx, http.MethodPost, "/crm/v3/objects/tasks", nil, CreateRequest{
		Properties: map[string]string{
			"hs_task_subject":  t.Title,
			"hs_task_body":     t.Notes,
			"hs_task_status":   entity.TaskStatusNotStarted,
			"hs_task_priority": priority,
			"hs_timestamp":     strconv.FormatInt(t.DueDate, 10),
		},
		Associations: associateWith(t.ContactID, AssociationTaskToContact),
	}, &res)
	if err != nil {
		return "", fmt.Errorf("create task: %w", err)
	}

	return res.ID, nil
}

func (c *Client) SearchCompanyByDomain(ctx context.Context, domain string) (entity.Company, error) {
	var res ListResponse[Object]

	err := c.do(ctx, http.MethodPost, "/crm/v3/objects/companies/search", nil, SearchRequest{
		FilterGroups: []FilterGroup{{Filters: []Filter{{PropertyName: "domain", Operator: "EQ", Value: domain}}}},
		Properties:   []string{"name", "domain", "industry"},
	}, &res)
	if err != nil {
		return entity.Company{}, fmt.Errorf("search company: %w", err)
	}

	if len(res.Results) == 0 {
		return entity.Company{}, fmt.Errorf("company %s: %w", domain, entity.ErrNotFound)
	}

	obj := res.Results[0]

	return entity.Company{
		ID:       obj.ID,
		Name:     obj.Properties["name"],
		Domain:   obj.Properties["domain"],
		Industry: obj.Properties["industry"],
	}, nil
}

func (c *Client) AssociateCompany(ctx context.Context, contactID, companyID string) error {
	path := fmt.Sprintf("/crm/v3/objects/contacts/%s/associations/companies/%s/%d",
		url.PathEscape(contactID), url.PathEscape(companyID), AssociationContactToCompany)

	err := c.do(ctx, http.MethodPut, path, nil, struct{}{}, nil)
	if err != nil {
		return fmt.Errorf("associate company: %w", err)
	}

	return nil
}

func (c *Client) ContactOwner(ctx context.Context, contactID string) (entity.Owner, error) {
	obj, err := c.object(ctx, "contacts", contactID, "hubspot_owner_id")
	if err != nil {
		if isNotFound(err) {
			return entity.Owner{}, fmt.Errorf("contact %s: %w", contactID, entity.ErrNotFound)
		}

		return entity.Owner{}, err
	}

	ownerID := obj.Properties["hubspot_owner_id"]
	if ownerID == "" {
		return entity.Owner{}, entity.ErrNoOwner
	}

	var o Owner

	err = c.do(ctx, http.MethodGet, "/crm/v3/owners/"+url.PathEscape(ownerID), nil, nil, &o)
	if err != nil {
		return entity.Owner{}, fmt.Errorf("get owner %s: %w", ownerID, err)
	}

	return ownerFromAPI(o), nil
}

func (c *Client) Owners(ctx context.Context) ([]entity.Owner, error) {
	var res ListResponse[Owner]

	err := c.do(ctx, http.MethodGet, "/crm/v3/owners", nil, nil, &res)
	if err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}

	owners := make([]entity.Owner, 0, len(res.Results))
	for _, o := range res.Results {
		owners = append(owners, ownerFromAPI(o))
	}

	return owners, nil
}

// Passthrough forwards a raw request and returns the CRM status and body as is.
func (c *Client) Passthrough(
	ctx context.Context,
	method, path, rawQuery string,
	body []byte,
) (int, []byte, error) {
	reqURL := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if rawQuery != "" {
		reqURL += "?" + rawQuery
	}

	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}

	return resp.StatusCode, respBody, nil
}

func (c *Client) associatedIDs(ctx context.Context, contactID, kind string) ([]string, error) {
	var res ListResponse[AssociatedID]

	path := fmt.Sprintf("/crm/v3/objects/contacts/%s/associations/%s", url.PathEscape(contactID), kind)

	err := c.do(ctx, http.MethodGet, path, nil, nil, &res)
	if err != nil {
		return nil, fmt.Errorf("list %s associations: %w", kind, err)
	}

	ids := make([]string, 0, len(res.Results))
	for _, v := range res.Results {
		ids = append(ids, v.ID)
	}

	return ids, nil
}

func (c *Client) object(ctx context.Context, kind, id, properties string) (Object, error) {
	var obj Object

	err := c.do(ctx, http.MethodGet, "/crm/v3/objects/"+kind+"/"+url.PathEscape(id),
		url.Values{"properties": {properties}}, nil, &obj)
	if err != nil {
		return Object{}, fmt.Errorf("get %s %s: %w", kind, id, err)
	}

	return obj, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var body io.Reader

	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}

		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return upstreamError(resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}

	err = json.Unmarshal(respBody, out)
	if err != nil {
		return fmt.Errorf("decode response: %w", &entity.UpstreamError{Status: resp.StatusCode, Detail: err.Error()})
	}

	return nil
}

func upstreamError(status int, body []byte) error {
	var data ErrorResponse

	err := json.Unmarshal(body, &data)
	if err != nil || data.Message == "" {
		return &entity.UpstreamError{Status: status, Detail: strings.TrimSpace(string(body))}
	}

	return &entity.UpstreamError{Status: status, Detail: data.Message}
}

func associateWith(contactID string, typeID int) []Association {
	return []Association{{
		To:    AssociationTarget{ID: contactID},
		Types: []AssociationType{{Category: associationCategory, TypeID: typeID}},
	}}
}

func contactFromAPI(obj Object) entity.Contact {
	p := obj.Properties

	stage := p["lifecyclestage"]
	if stage == "" {
		stage = entity.LifecycleStageLead
	}

	return entity.Contact{
		ID:             obj.ID,
		Email:          p["email"],
		FirstName:      p["firstname"],
		LastName:       p["lastname"],
		Phone:          p["phone"],
		Company:        p["company"],
		JobTitle:       p["jobtitle"],
		LifecycleStage: stage,
		CreateDate:     p["createdate"],
		LastActivity:   p["lastmodifieddate"],
		Deals:          []entity.Deal{},
	}
}

func dealFromAPI(obj Object) entity.Deal {
	return entity.Deal{
		ID:        obj.ID,
		Name:      obj.Properties["dealname"],
		Amount:    entity.ParseAmount(obj.Properties["amount"]),
		Stage:     obj.Properties["dealstage"],
		CloseDate: obj.Properties["closedate"],
	}
}

func ownerFromAPI(o Owner) entity.Owner {
	return entity.Owner{
		ID:        o.ID,
		Email:     o.Email,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		UserID:    o.UserID,
	}
}

// parseTimestamp accepts epoch millis or an RFC 3339 date, as HubSpot returns either.
func parseTimestamp(s string) int64 {
	if s == "" {
		return 0
	}

	ms, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return ms
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return 0
	}

	return t.UnixMilli()
}

func isNotFound(err error) bool {
	var ue *entity.UpstreamError
	return errors.As(err, &ue) && ue.Status == http.StatusNotFound
}
