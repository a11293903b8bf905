package hubspot_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/crmwidget/internal/clients/hubspot"
	"github.com/samandr77/microservices/crmwidget/internal/entity"
	"github.com/samandr77/microservices/crmwidget/pkg/config"
)

type fakeCRM struct {
	t   *testing.T
	mux *http.ServeMux
	srv *httptest.Server

	mu     sync.Mutex
	bodies map[string][]byte
	calls  []string
}

func newFakeCRM(t *testing.T) *fakeCRM {
	t.Helper()

	f := &fakeCRM{t: t, mux: http.NewServeMux(), bodies: make(map[string][]byte)}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		f.mu.Lock()
		f.bodies[r.Method+" "+r.URL.Path] = b
		f.calls = append(f.calls, r.Method+" "+r.URL.Path)
		f.mu.Unlock()

		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		f.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.srv.Close)

	return f
}

func (f *fakeCRM) handle(pattern string, status int, body string) {
	f.mux.HandleFunc(pattern, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

func (f *fakeCRM) body(key string) map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()

	var m map[string]any
	require.NoError(f.t, json.Unmarshal(f.bodies[key], &m))

	return m
}

func (f *fakeCRM) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.calls)
}

func (f *fakeCRM) client(strict bool) *hubspot.Client {
	c := hubspot.NewClient(config.HubSpot{APIKey: "test-key", BaseURL: f.srv.URL, StrictAssociations: strict})
	c.SetNow(func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) })

	return c
}

const contactSearchResult = `{"total":1,"results":[{"id":"501","properties":{
	"email":"ann@example.com","firstname":"Ann","lastname":"Lee","phone":"+1",
	"company":"Acme","jobtitle":"CEO","lifecyclestage":"","createdate":"2024-01-01T00:00:00Z"}}]}`

func TestClient_SearchContactByEmail(t *testing.T) {
	t.Parallel()

	f := newFakeCRM(t)
	f.handle("POST /crm/v3/objects/contacts/search", http.StatusOK, contactSearchResult)
	f.handle("GET /crm/v3/objects/contacts/501/associations/deals", http.StatusOK,
		`{"results":[{"id":"d1","type":"contact_to_deal"},{"id":"d2","type":"contact_to_deal"}]}`)
	f.handle("GET /crm/v3/objects/deals/d1", http.StatusOK,
		`{"id":"d1","properties":{"dealname":"Big","amount":"2500.50","dealstage":"qualification","closedate":"2025-01-01"}}`)
	f.handle("GET /crm/v3/objects/deals/d2", http.StatusOK,
		`{"id":"d2","properties":{"dealname":"Small","amount":"10","dealstage":"closedwon"}}`)

	contact, skipped, err := f.client(false).SearchContactByEmail(context.Background(), "ann@example.com")
	require.NoError(t, err)
	require.Zero(t, skipped)
	require.Equal(t, "501", contact.ID)
	require.Equal(t, "Ann Lee", contact.FullName())
	require.Equal(t, entity.LifecycleStageLead, contact.LifecycleStage)
	require.Len(t, contact.Deals, 2)
	require.Equal(t, "d1", contact.Deals[0].ID)
	require.Equal(t, "2500.5", contact.Deals[0].Amount.String())
	require.Equal(t, "d2", contact.Deals[1].ID)

	search := f.body("POST /crm/v3/objects/contacts/search")
	groups := search["filterGroups"].([]any)
	filter := groups[0].(map[string]any)["filters"].([]any)[0].(map[string]any)
	require.Equal(t, "email", filter["propertyName"])
	require.Equal(t, "EQ", filter["operator"])
	require.Equal(t, "ann@example.com", filter["value"])
}

func TestClient_SearchContactByEmail_NotFound(t *testing.T) {
	t.Parallel()

	f := newFakeCRM(t)
	f.handle("POST /crm/v3/objects/contacts/search", http.StatusOK, `{"total":0,"results":[]}`)

	_, _, err := f.client(false).SearchContactByEmail(context.Background(), "nobody@nowhere.com")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestClient_SearchContactByEmail_PartialDeals(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) *fakeCRM {
		t.Helper()

		f := newFakeCRM(t)
		f.handle("POST /crm/v3/objects/contacts/search", http.StatusOK, contactSearchResult)
		f.handle("GET /crm/v3/objects/contacts/501/associations/deals", http.StatusOK,
			`{"results":[{"id":"d1"},{"id":"d2"}]}`)
		f.handle("GET /crm/v3/objects/deals/d1", http.StatusInternalServerError, `{"message":"boom"}`)
		f.handle("GET /crm/v3/objects/deals/d2", http.StatusOK,
			`{"id":"d2","properties":{"dealname":"Small","amount":"10"}}`)

		return f
	}

	t.Run("lenient", func(t *testing.T) {
		t.Parallel()

		contact, skipped, err := setup(t).client(false).SearchContactByEmail(context.Background(), "ann@example.com")
		require.NoError(t, err)
		require.Equal(t, 1, skipped)
		require.Len(t, contact.Deals, 1)
		require.Equal(t, "d2", contact.Deals[0].ID)
	})

	t.Run("strict", func(t *testing.T) {
		t.Parallel()

		_, _, err := setup(t).client(true).SearchContactByEmail(context.Background(), "ann@example.com")
		require.ErrorIs(t, err, entity.ErrUpstream)
	})
}

func TestClient_SearchContactByEmail_AssociationFailure(t *testing.T) {
	t.Parallel()

	f := newFakeCRM(t)
	f.handle("POST /crm/v3/objects/contacts/search", http.StatusOK, contactSearchResult)
	f.handle("GET /crm/v3/objects/contacts/501/associations/deals", http.StatusBadGateway, `bad gateway`)

	contact, skipped, err := f.client(false).SearchContactByEmail(context.Background(), "ann@example.com")
	require.NoError(t, err)
	require.Equal(t, 1, skipped)
	require.NotNil(t, contact.Deals)
	require.Empty(t, contact.Deals)
}

func TestClient_CreateContact(t *testing.T) {
	t.Parallel()

	f := newFakeCRM(t)
	f.handle("POST /crm/v3/objects/contacts", http.StatusCreated, `{"id":"777","properties":{}}`)

	id, err := f.client(false).CreateContact(context.Background(), entity.NewContact{
		Email:     "new@example.com",
		FirstName: "New",
		Company:   "Example",
	})
	require.NoError(t, err)
	require.Equal(t, "777", id)

	props := f.body("POST /crm/v3/objects/contacts")["properties"].(map[string]any)
	require.Equal(t, "lead", props["lifecyclestage"])
	require.Equal(t, "new@example.com", props["email"])
	require.Equal(t, "New", props["firstname"])
	require.Equal(t, "Example", props["company"])
}

func TestClient_UpdateContact(t *testing.T) {
	t.Parallel()

	t.Run("empty patch makes no call", func(t *testing.T) {
		t.Parallel()

		f := newFakeCRM(t)

		res, err := f.client(false).UpdateContact(context.Background(), "501", entity.ContactPatch{})
		require.NoError(t, err)
		require.Equal(t, map[string]any{"id": "501"}, res)
		require.Zero(t, f.callCount())
	})

	t.Run("only present fields are sent", func(t *testing.T) {
		t.Parallel()

		f := newFakeCRM(t)
		f.handle("PATCH /crm/v3/objects/contacts/501", http.StatusOK, `{"id":"501","properties":{"phone":"+2"}}`)

		phone := "+2"
		empty := ""

		res, err := f.client(false).UpdateContact(context.Background(), "501", entity.ContactPatch{
			Phone:    &phone,
			JobTitle: &empty,
		})
		require.NoError(t, err)
		require.Equal(t, "501", res["id"])

		props := f.body("PATCH /crm/v3/objects/contacts/501")["properties"].(map[string]any)
		require.Equal(t, map[string]any{"phone": "+2", "jobtitle": ""}, props)
	})
}

func TestClient_CreateWithAssociations(t *testing.T) {
	t.Parallel()

	f := newFakeCRM(t)
	f.handle("POST /crm/v3/objects/deals", http.StatusCreated, `{"id":"d9"}`)
	f.handle("POST /crm/v3/objects/notes", http.StatusCreated, `{"id":"n9"}`)
	f.handle("POST /crm/v3/objects/tasks", http.StatusCreated, `{"id":"t9"}`)

	c := f.client(false)
	ctx := context.Background()

	dealID, err := c.CreateDeal(ctx, entity.NewDeal{ContactID: "501", Name: "Deal", Amount: entity.ParseAmount("1200.75")})
	require.NoError(t, err)
	require.Equal(t, "d9", dealID)

	noteID, err := c.CreateNote(ctx, entity.NewNote{ContactID: "501", Body: "hello"})
	require.NoError(t, err)
	require.Equal(t, "n9", noteID)

	taskID, err := c.CreateTask(ctx, entity.NewTask{ContactID: "501", Title: "Call", DueDate: 1000})
	require.NoError(t, err)
	require.Equal(t, "t9", taskID)

	assocType := func(key string) float64 {
		assoc := f.body(key)["associations"].([]any)[0].(map[string]any)
		require.Equal(t, "501", assoc["to"].(map[string]any)["id"])

		typ := assoc["types"].([]any)[0].(map[string]any)
		require.Equal(t, "HUBSPOT_DEFINED", typ["associationCategory"])

		return typ["associationTypeId"].(float64)
	}

	require.InDelta(t, 3, assocType("POST /crm/v3/objects/deals"), 0)
	require.InDelta(t, 202, assocType("POST /crm/v3/objects/notes"), 0)
	require.InDelta(t, 204, assocType("POST /crm/v3/objects/tasks"), 0)

	deal := f.body("POST /crm/v3/objects/deals")["properties"].(map[string]any)
	require.Equal(t, "1200.75", deal["amount"])
	require.Equal(t, entity.DefaultDealStage, deal["dealstage"])
	require.Equal(t, "2025-03-31T12:00:00Z", deal["closedate"])

	note := f.body("POST /crm/v3/objects/notes")["properties"].(map[string]any)
	require.Equal(t, "hello", note["hs_note_body"])
	require.Equal(t, "1740830400000", note["hs_timestamp"])

	task := f.body("POST /crm/v3/objects/tasks")["properties"].(map[string]any)
	require.Equal(t, "NOT_STARTED", task["hs_task_status"])
	require.Equal(t, "MEDIUM", task["hs_task_priority"])
	require.Equal(t, "1000", task["hs_timestamp"])
}

func TestClient_DealAmountRoundTrip(t *testing.T) {
	t.Parallel()

	f := newFakeCRM(t)

	var (
		mu     sync.Mutex
		stored string
	)

	f.mux.HandleFunc("POST /crm/v3/objects/deals", func(w http.ResponseWriter, _ *http.Request) {
		props := f.body("POST /crm/v3/objects/deals")["properties"].(map[string]any)

		mu.Lock()
		stored = props["amount"].(string)
		mu.Unlock()

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"d1"}`))
	})
	f.handle("GET /crm/v3/objects/contacts/501/associations/deals", http.StatusOK, `{"results":[{"id":"d1"}]}`)
	f.mux.HandleFunc("GET /crm/v3/objects/deals/d1", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "dealname,amount,dealstage,closedate", r.URL.Query().Get("properties"))

		mu.Lock()
		amount := stored
		mu.Unlock()

		_, _ = w.Write([]byte(`{"id":"d1","properties":{"dealname":"Deal","amount":"` + amount + `"}}`))
	})

	c := f.client(false)
	ctx := context.Background()

	_, err := c.CreateDeal(ctx, entity.NewDeal{ContactID: "501", Name: "Deal", Amount: entity.ParseAmount("15000")})
	require.NoError(t, err)

	deals, skipped, err := c.ListDeals(ctx, "501")
	require.NoError(t, err)
	require.Zero(t, skipped)
	require.Len(t, deals, 1)

	b, err := json.Marshal(deals[0].Amount)
	require.NoError(t, err)
	require.Equal(t, "15000", string(b))
}

func TestClient_ListActivities(t *testing.T) {
	t.Parallel()

	f := newFakeCRM(t)
	f.handle("GET /crm/v3/objects/contacts/501/associations/notes", http.StatusOK,
		`{"results":[{"id":"n1"},{"id":"n2"},{"id":"n3"},{"id":"n4"},{"id":"n5"},{"id":"n6"}]}`)

	for i, ts := range []string{"1000", "3000", "2024-01-01T00:00:00Z", "2000", "", "9999"} {
		id := "n" + string(rune('1'+i))
		f.handle("GET /crm/v3/objects/notes/"+id, http.StatusOK,
			`{"id":"`+id+`","properties":{"hs_note_body":"body `+id+`","hs_timestamp":"`+ts+`"}}`)
	}

	activities, skipped, err := f.client(false).ListActivities(context.Background(), "501")
	require.NoError(t, err)
	require.Zero(t, skipped)
	require.Len(t, activities, 5)

	ids := make([]string, 0, len(activities))
	for _, a := range activities {
		require.Equal(t, "note", a.Type)
		ids = append(ids, a.ID)
	}

	// n5 has no timestamp and is stamped with the current time; n6 is beyond the limit.
	require.Equal(t, []string{"n5", "n3", "n2", "n4", "n1"}, ids)
}

func TestClient_ListActivitiesAssociationFailure(t *testing.T) {
	t.Parallel()

	f := newFakeCRM(t)
	f.handle("GET /crm/v3/objects/contacts/501/associations/notes", http.StatusInternalServerError,
		`{"message":"boom"}`)

	activities, skipped, err := f.client(true).ListActivities(context.Background(), "501")
	require.NoError(t, err)
	require.Zero(t, skipped)
	require.NotNil(t, activities)
	require.Empty(t, activities)

	_, _, err = f.client(false).ListNotes(context.Background(), "501")
	require.ErrorIs(t, err, entity.ErrUpstream)
}

func TestClient_Company(t *testing.T) {
	t.Parallel()

	f := newFakeCRM(t)
	f.mux.HandleFunc("POST /crm/v3/objects/companies/search", func(w http.ResponseWriter, _ *http.Request) {
		search := f.body("POST /crm/v3/objects/companies/search")
		filter := search["filterGroups"].([]any)[0].(map[string]any)["filters"].([]any)[0].(map[string]any)

		if filter["value"] == "acme.com" {
			_, _ = w.Write([]byte(`{"results":[{"id":"c1","properties":{"name":"Acme","domain":"acme.com","industry":"TECH"}}]}`))
			return
		}

		_, _ = w.Write([]byte(`{"results":[]}`))
	})
	f.handle("PUT /crm/v3/objects/contacts/501/associations/companies/c1/280", http.StatusOK, `{}`)

	c := f.client(false)
	ctx := context.Background()

	company, err := c.SearchCompanyByDomain(ctx, "acme.com")
	require.NoError(t, err)
	require.Equal(t, entity.Company{ID: "c1", Name: "Acme", Domain: "acme.com", Industry: "TECH"}, company)

	_, err = c.SearchCompanyByDomain(ctx, "unknown.org")
	require.ErrorIs(t, err, entity.ErrNotFound)

	require.NoError(t, c.AssociateCompany(ctx, "501", "c1"))
}

func TestClient_ContactOwner(t *testing.T) {
	t.Parallel()

	f := newFakeCRM(t)
	f.handle("GET /crm/v3/objects/contacts/1", http.StatusOK, `{"id":"1","properties":{"hubspot_owner_id":"42"}}`)
	f.handle("GET /crm/v3/objects/contacts/2", http.StatusOK, `{"id":"2","properties":{}}`)
	f.handle("GET /crm/v3/objects/contacts/3", http.StatusNotFound, `{"status":"error","message":"resource not found"}`)
	f.handle("GET /crm/v3/owners/42", http.StatusOK,
		`{"id":"42","email":"owner@example.com","firstName":"Olga","lastName":"Ng","userId":7}`)

	c := f.client(false)
	ctx := context.Background()

	owner, err := c.ContactOwner(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, entity.Owner{ID: "42", Email: "owner@example.com", FirstName: "Olga", LastName: "Ng", UserID: 7}, owner)

	_, err = c.ContactOwner(ctx, "2")
	require.ErrorIs(t, err, entity.ErrNoOwner)

	_, err = c.ContactOwner(ctx, "3")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestClient_UpstreamError(t *testing.T) {
	t.Parallel()

	f := newFakeCRM(t)
	f.handle("POST /crm/v3/objects/contacts", http.StatusConflict,
		`{"status":"error","message":"Contact already exists. Existing ID: 12","category":"CONFLICT"}`)
	f.handle("GET /crm/v3/owners", http.StatusServiceUnavailable, `upstream down`)

	c := f.client(false)

	_, err := c.CreateContact(context.Background(), entity.NewContact{Email: "dup@example.com"})
	require.ErrorIs(t, err, entity.ErrUpstream)

	var ue *entity.UpstreamError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, http.StatusConflict, ue.Status)
	require.Equal(t, "Contact already exists. Existing ID: 12", ue.Detail)

	_, err = c.Owners(context.Background())
	require.ErrorAs(t, err, &ue)
	require.Equal(t, "upstream down", ue.Detail)
}

func TestClient_Passthrough(t *testing.T) {
	t.Parallel()

	f := newFakeCRM(t)
	f.mux.HandleFunc("GET /crm/v3/objects/contacts", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "limit=1", r.URL.RawQuery)

		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"raw":true}`))
	})

	status, body, err := f.client(false).Passthrough(context.Background(), http.MethodGet, "crm/v3/objects/contacts", "limit=1", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusTeapot, status)
	require.JSONEq(t, `{"raw":true}`, string(body))
}
