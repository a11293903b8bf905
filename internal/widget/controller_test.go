package widget_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/crmwidget/internal/entity"
	"github.com/samandr77/microservices/crmwidget/internal/mocks"
	"github.com/samandr77/microservices/crmwidget/internal/widget"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	api      *mocks.MockAPIClient
	view     *mocks.MockView
	notifier *mocks.MockNotifier
	emitter  *mocks.MockEmitter
	c        *widget.Controller
	events   []widget.Event
}

func newFixture(t *testing.T, settings widget.Settings) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		api:      mocks.NewMockAPIClient(ctrl),
		view:     mocks.NewMockView(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
		emitter:  mocks.NewMockEmitter(ctrl),
	}

	f.emitter.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e widget.Event) error {
		f.events = append(f.events, e)
		return nil
	}).AnyTimes()

	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.c = widget.NewController(l, widget.NewSession(settings), f.api, f.view, f.notifier, f.emitter)
	f.c.SetRefreshDelay(0)
	f.c.SetNow(func() time.Time { return fixedNow })

	return f
}

func (f *fixture) eventNames() []widget.EventName {
	names := make([]widget.EventName, 0, len(f.events))
	for _, e := range f.events {
		names = append(names, e.Event)
	}

	return names
}

func noRefresh() widget.Settings {
	s := widget.DefaultSettings()
	s.AutoRefresh = false

	return s
}

var john = entity.Contact{
	ID:             "12345",
	Email:          "john.doe@example.com",
	FirstName:      "John",
	LastName:       "Doe",
	Company:        "Acme Corporation",
	LifecycleStage: "lead",
}

// selectJohn runs a successful search so that mutations have a current contact.
func (f *fixture) selectJohn(t *testing.T) {
	t.Helper()

	f.api.EXPECT().SearchContact(gomock.Any(), john.Email).Return(john, nil)
	f.view.EXPECT().ShowContact(john, nil)

	require.NoError(t, f.c.Search(context.Background(), john.Email))
}

func TestController_SearchFound(t *testing.T) {
	t.Parallel()

	f := newFixture(t, noRefresh())
	f.selectJohn(t)

	s := f.c.Session()
	require.NotNil(t, s.Contact)
	require.Equal(t, "12345", s.Contact.ID)
	require.Equal(t, john.Email, s.LastEmail)

	require.Len(t, f.events, 1)
	require.Equal(t, widget.EventType, f.events[0].Type)
	require.Equal(t, widget.EventContactFound, f.events[0].Event)
	require.Equal(t, fixedNow, f.events[0].Timestamp)
	require.Equal(t, map[string]any{"email": john.Email, "contact": john}, f.events[0].Data)
}

func TestController_SearchNotFound(t *testing.T) {
	t.Parallel()

	f := newFixture(t, noRefresh())
	f.selectJohn(t)

	f.api.EXPECT().SearchContact(gomock.Any(), "nobody@nowhere.com").
		Return(entity.Contact{}, &widget.APIError{Status: http.StatusNotFound, Message: "Contact not found"})
	f.view.EXPECT().ShowNoResults("nobody@nowhere.com")

	require.NoError(t, f.c.Search(context.Background(), " nobody@nowhere.com "))
	require.Nil(t, f.c.Session().Contact)
	require.Equal(t, []widget.EventName{widget.EventContactFound, widget.EventContactNotFound}, f.eventNames())
	require.Equal(t, map[string]any{"email": "nobody@nowhere.com"}, f.events[1].Data)
}

func TestController_SearchInvalidEmail(t *testing.T) {
	t.Parallel()

	f := newFixture(t, noRefresh())
	f.notifier.EXPECT().Error("Please enter a valid email address").Times(2)

	require.ErrorIs(t, f.c.Search(context.Background(), ""), entity.ErrInvalidArgument)
	require.ErrorIs(t, f.c.Search(context.Background(), "not-an-email"), entity.ErrInvalidArgument)
	require.Empty(t, f.events)
}

func TestController_SearchUpstreamError(t *testing.T) {
	t.Parallel()

	f := newFixture(t, noRefresh())

	f.api.EXPECT().SearchContact(gomock.Any(), john.Email).Return(entity.Contact{}, &widget.APIError{
		Status:      http.StatusInternalServerError,
		Message:     "Failed to search contact",
		Description: "rate limited",
	})
	f.notifier.EXPECT().Error("Failed to search contact: rate limited")

	err := f.c.Search(context.Background(), john.Email)
	require.ErrorIs(t, err, entity.ErrUpstream)
	require.Empty(t, f.events)
}

func TestController_SearchAutoFillsCompany(t *testing.T) {
	t.Parallel()

	f := newFixture(t, noRefresh())

	contact := john
	contact.Company = ""
	company := entity.Company{ID: "c1", Name: "Example Corp", Domain: "example.com"}

	gomock.InOrder(
		f.api.EXPECT().SearchContact(gomock.Any(), john.Email).Return(contact, nil),
		f.api.EXPECT().SearchCompany(gomock.Any(), "example.com").Return(company, nil),
		f.api.EXPECT().AssociateCompany(gomock.Any(), "12345", "c1").Return("Contact associated with company", nil),
		f.api.EXPECT().LogActivity(gomock.Any(), "12345", entity.ActivityCompanyAssociated, "Contact associated with company").Return(nil),
		f.view.EXPECT().ShowContact(contact, &company),
	)

	require.NoError(t, f.c.Search(context.Background(), john.Email))
	require.Equal(t, &company, f.c.Session().Company)

	// A second search of the same contact keeps the association.
	f.api.EXPECT().SearchContact(gomock.Any(), john.Email).Return(contact, nil)
	f.view.EXPECT().ShowContact(contact, &company)

	require.NoError(t, f.c.Search(context.Background(), john.Email))
}

func TestController_CreateContact(t *testing.T) {
	t.Parallel()

	f := newFixture(t, noRefresh())

	gomock.InOrder(
		f.api.EXPECT().SearchCompany(gomock.Any(), "example.com").
			Return(entity.Company{ID: "c1", Name: "Acme Corporation"}, nil),
		f.api.EXPECT().CreateContact(gomock.Any(), entity.NewContact{Email: john.Email, Company: "Acme Corporation"}).
			Return(entity.Created{ID: "12345", Message: "Contact created successfully"}, nil),
		f.notifier.EXPECT().Success("Contact created successfully"),
		f.api.EXPECT().SearchContact(gomock.Any(), john.Email).Return(john, nil),
		f.view.EXPECT().ShowContact(john, nil),
		f.api.EXPECT().LogActivity(gomock.Any(), "12345", entity.ActivityContactCreated, "Contact created via SalesIQ widget").Return(nil),
	)

	require.NoError(t, f.c.CreateContact(context.Background(), entity.NewContact{Email: " john.doe@example.com"}))
	require.Equal(t, []widget.EventName{widget.EventContactFound, widget.EventContactCreated}, f.eventNames())
	require.Equal(t, map[string]any{"contactId": "12345", "email": john.Email}, f.events[1].Data)
}

func TestController_CreateDealDefaultsAndRefresh(t *testing.T) {
	t.Parallel()

	f := newFixture(t, widget.DefaultSettings())
	f.selectJohn(t)

	f.api.EXPECT().CreateDeal(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d entity.NewDeal) (entity.Created, error) {
			require.Equal(t, "12345", d.ContactID)
			require.Equal(t, "Q4 Package", d.Name)
			require.Equal(t, "1000", d.Amount.String())
			require.Equal(t, entity.DefaultDealStage, d.Stage)

			return entity.Created{ID: "d1", Message: "Deal created successfully"}, nil
		})
	f.notifier.EXPECT().Success("Deal created successfully")
	f.api.EXPECT().LogActivity(gomock.Any(), "12345", entity.ActivityDealCreated, "Created deal: Q4 Package ($1000)").Return(nil)

	// auto-refresh
	f.api.EXPECT().SearchContact(gomock.Any(), john.Email).Return(john, nil)
	f.view.EXPECT().ShowContact(john, nil)

	require.NoError(t, f.c.CreateDeal(context.Background(), entity.NewDeal{Name: " Q4 Package "}))
	f.c.Wait()

	require.Equal(t, []widget.EventName{
		widget.EventContactFound,
		widget.EventDealCreated,
		widget.EventContactFound,
	}, f.eventNames())

	data, ok := f.events[1].Data.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "d1", data["dealId"])
	require.Equal(t, john.Email, data["contactEmail"])
}

func TestController_CreateDealValidation(t *testing.T) {
	t.Parallel()

	f := newFixture(t, noRefresh())

	f.notifier.EXPECT().Error("Search for a contact first")
	require.ErrorIs(t, f.c.CreateDeal(context.Background(), entity.NewDeal{Name: "x"}), widget.ErrNoContact)

	f.selectJohn(t)

	f.notifier.EXPECT().Error("Please enter a deal name")
	require.ErrorIs(t, f.c.CreateDeal(context.Background(), entity.NewDeal{Name: "  "}), entity.ErrInvalidArgument)

	f.notifier.EXPECT().Error("Deal amount must not be negative")
	require.ErrorIs(t, f.c.CreateDeal(context.Background(), entity.NewDeal{
		Name:   "x",
		Amount: entity.NewAmount(-5),
	}), entity.ErrInvalidArgument)
}

func TestController_UpdateContact(t *testing.T) {
	t.Parallel()

	f := newFixture(t, noRefresh())
	f.selectJohn(t)

	stage := "customer"
	want := john
	want.LifecycleStage = "customer"

	gomock.InOrder(
		f.api.EXPECT().UpdateContact(gomock.Any(), "12345", entity.ContactPatch{LifecycleStage: &stage}).
			Return(entity.Updated{Message: "Contact updated successfully"}, nil),
		f.notifier.EXPECT().Success("Contact updated successfully"),
		f.api.EXPECT().LogActivity(gomock.Any(), "12345", entity.ActivityContactUpdated, gomock.Any()).Return(nil),
		f.view.EXPECT().ShowContact(want, nil),
	)

	require.NoError(t, f.c.ConvertToCustomer(context.Background()))
	require.Equal(t, "customer", f.c.Session().Contact.LifecycleStage)
	require.Equal(t, widget.EventContactUpdated, f.events[len(f.events)-1].Event)
}

func TestController_QuickAction(t *testing.T) {
	t.Parallel()

	f := newFixture(t, noRefresh())
	f.selectJohn(t)

	f.notifier.EXPECT().Error("Unknown quick action: bogus_action")
	require.ErrorIs(t, f.c.QuickAction(context.Background(), "bogus_action", ""), entity.ErrInvalidArgument)

	gomock.InOrder(
		f.api.EXPECT().QuickAction(gomock.Any(), "12345", "mark_hot_lead", "").
			Return("mark_hot_lead completed successfully", nil),
		f.notifier.EXPECT().Success("mark_hot_lead completed successfully"),
		f.api.EXPECT().LogActivity(gomock.Any(), "12345", entity.ActivityQuickAction, "Quick action performed: mark_hot_lead").Return(nil),
	)

	require.NoError(t, f.c.QuickAction(context.Background(), "mark_hot_lead", ""))
}

func TestController_CreateTask(t *testing.T) {
	t.Parallel()

	f := newFixture(t, noRefresh())
	f.selectJohn(t)

	f.notifier.EXPECT().Error("Unknown task priority: URGENT")
	require.ErrorIs(t, f.c.CreateTask(context.Background(), entity.NewTask{Title: "Call", Priority: "URGENT"}),
		entity.ErrInvalidArgument)

	due := fixedNow.Add(-24 * time.Hour).UnixMilli()

	gomock.InOrder(
		f.api.EXPECT().CreateTask(gomock.Any(), entity.NewTask{
			ContactID: "12345",
			Title:     "Call back",
			DueDate:   due,
			Priority:  "HIGH",
		}).Return(entity.Created{ID: "t1", Message: "Task created successfully"}, nil),
		f.notifier.EXPECT().Success("Task created successfully"),
		f.api.EXPECT().LogActivity(gomock.Any(), "12345", entity.ActivityTaskCreated, "Created task: Call back").Return(nil),
	)

	require.NoError(t, f.c.CreateTask(context.Background(), entity.NewTask{Title: "Call back", DueDate: due, Priority: "high"}))
}

func TestController_AddTagsIgnoresActivityLogFailure(t *testing.T) {
	t.Parallel()

	f := newFixture(t, noRefresh())
	f.selectJohn(t)

	f.notifier.EXPECT().Error("Please enter at least one tag")
	require.ErrorIs(t, f.c.AddTags(context.Background(), " , ,"), entity.ErrInvalidArgument)

	gomock.InOrder(
		f.api.EXPECT().TagContact(gomock.Any(), "12345", []string{"vip", "webinar"}).
			Return("Tags updated successfully", nil),
		f.notifier.EXPECT().Success("Tags updated successfully"),
		f.api.EXPECT().LogActivity(gomock.Any(), "12345", entity.ActivityTagsUpdated, "Tags added: vip, webinar").
			Return(errors.New("connection refused")),
	)

	require.NoError(t, f.c.AddTags(context.Background(), "vip, ,webinar"))
}

func TestController_AddNoteReloadsNotes(t *testing.T) {
	t.Parallel()

	f := newFixture(t, noRefresh())
	f.selectJohn(t)

	notes := []entity.Note{{ID: "n1", Body: "Follow up", Timestamp: fixedNow.UnixMilli()}}

	gomock.InOrder(
		f.api.EXPECT().CreateNote(gomock.Any(), entity.NewNote{ContactID: "12345", Body: "Follow up"}).
			Return(entity.Created{ID: "n1", Message: "Note created successfully"}, nil),
		f.notifier.EXPECT().Success("Note created successfully"),
		f.api.EXPECT().LogActivity(gomock.Any(), "12345", entity.ActivityNoteCreated, gomock.Any()).Return(nil),
		f.api.EXPECT().Notes(gomock.Any(), "12345").Return(notes, nil),
		f.view.EXPECT().ShowNotes(notes),
	)

	require.NoError(t, f.c.AddNote(context.Background(), "Follow up"))
}

func TestController_LoadOwner(t *testing.T) {
	t.Parallel()

	f := newFixture(t, noRefresh())
	f.selectJohn(t)

	f.api.EXPECT().ContactOwner(gomock.Any(), "12345").Return(entity.Owner{}, entity.ErrNoOwner)
	f.view.EXPECT().ShowOwner(nil)
	require.NoError(t, f.c.LoadOwner(context.Background()))

	owner := entity.Owner{ID: "1", Email: "owner@example.com"}
	f.api.EXPECT().ContactOwner(gomock.Any(), "12345").Return(owner, nil)
	f.view.EXPECT().ShowOwner(&owner)
	require.NoError(t, f.c.LoadOwner(context.Background()))
}

func TestController_HandleChatMessage(t *testing.T) {
	t.Parallel()

	f := newFixture(t, noRefresh())

	f.api.EXPECT().SearchContact(gomock.Any(), john.Email).Return(john, nil).Times(1)
	f.view.EXPECT().ShowContact(john, nil).Times(1)

	ctx := context.Background()

	require.NoError(t, f.c.HandleChatMessage(ctx, "hello there"))
	require.NoError(t, f.c.HandleChatMessage(ctx, "Sure, it's john.doe@example.com."))
	require.NoError(t, f.c.HandleChatMessage(ctx, "again: JOHN.DOE@example.com"))
}

func TestController_HandleVisitor(t *testing.T) {
	t.Parallel()

	f := newFixture(t, noRefresh())

	cc := widget.ChatContext{ChatID: "chat-1", Duration: 75}

	gomock.InOrder(
		f.view.EXPECT().ShowChatContext(cc),
		f.api.EXPECT().SearchContact(gomock.Any(), john.Email).Return(john, nil),
		f.view.EXPECT().ShowContact(john, nil),
	)

	err := f.c.HandleVisitor(context.Background(), widget.Visitor{Name: "John", Email: john.Email}, cc)
	require.NoError(t, err)

	s := f.c.Session()
	require.Equal(t, "chat-1", s.ChatContext.ChatID)
	require.Equal(t, "John", s.Visitor.Name)

	// Same visitor again without a chat context: nothing to show, no new lookup.
	require.NoError(t, f.c.HandleVisitor(context.Background(), widget.Visitor{Email: john.Email}, widget.ChatContext{}))
}

func TestTerminalView_ShowChatContext(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	v := widget.NewTerminalView(&out)
	v.ShowChatContext(widget.ChatContext{ChatID: "chat-9", Duration: 125})
	v.ShowChatContext(widget.ChatContext{Duration: 5})

	require.Contains(t, out.String(), "Chat ID: chat-9 | Duration: 2:05")
	require.Contains(t, out.String(), "Chat ID: Unknown | Duration: 0:05")
}

func TestController_EmitFailureIsDropped(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPIClient(ctrl)
	view := mocks.NewMockView(ctrl)
	emitter := mocks.NewMockEmitter(ctrl)

	api.EXPECT().SearchContact(gomock.Any(), john.Email).Return(john, nil)
	view.EXPECT().ShowContact(john, nil)
	emitter.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := widget.NewController(l, widget.NewSession(noRefresh()), api, view, mocks.NewMockNotifier(ctrl), emitter)

	require.NoError(t, c.Search(context.Background(), john.Email))
}
