package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/samandr77/microservices/crmwidget/internal/entity"
)

// CreateDeal creates a deal associated with the contact.
// @Summary Create deal
// @Tags deals
// @Accept json
// @Produce json
// @Param NewDeal body entity.NewDeal true "Deal"
// @Success 200 {object} entity.Created
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Failed to create deal"
// @Router /deals [post]
// @Security BearerAuth
func (h *Handler) CreateDeal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.NewDeal

	err := readJSON(r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	created, err := h.s.CreateDeal(ctx, req)
	if err != nil {
		sendServiceErr(ctx, w, err, "", "Failed to create deal")
		return
	}

	SendJSON(ctx, w, http.StatusOK, created)
}

// Deals lists the contact's deals.
// @Summary Contact deals
// @Tags deals
// @Produce json
// @Param id path string true "Contact id"
// @Success 200 {array} entity.Deal
// @Header 200 {integer} X-Partial-Failures "Deals that could not be fetched"
// @Failure 500 {object} ErrorResponse "Failed to fetch deals"
// @Router /contacts/{id}/deals [get]
// @Security BearerAuth
func (h *Handler) Deals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deals, skipped, err := h.s.Deals(ctx, chi.URLParam(r, "id"))
	if err != nil {
		sendServiceErr(ctx, w, err, "", "Failed to fetch deals")
		return
	}

	setPartialFailures(ctx, w, skipped)
	SendJSON(ctx, w, http.StatusOK, deals)
}

// CreateNote adds a note to the contact.
// @Summary Create note
// @Tags notes
// @Accept json
// @Produce json
// @Param NewNote body entity.NewNote true "Note"
// @Success 200 {object} entity.Created
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Failed to create note"
// @Router /notes [post]
// @Security BearerAuth
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.NewNote

	err := readJSON(r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	created, err := h.s.CreateNote(ctx, req)
	if err != nil {
		sendServiceErr(ctx, w, err, "", "Failed to create note")
		return
	}

	SendJSON(ctx, w, http.StatusOK, created)
}

// Notes lists the contact's notes.
// @Summary Contact notes
// @Tags notes
// @Produce json
// @Param id path string true "Contact id"
// @Success 200 {array} entity.Note
// @Failure 500 {object} ErrorResponse "Failed to fetch notes"
// @Router /contacts/{id}/notes [get]
// @Security BearerAuth
func (h *Handler) Notes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	notes, skipped, err := h.s.Notes(ctx, chi.URLParam(r, "id"))
	if err != nil {
		sendServiceErr(ctx, w, err, "", "Failed to fetch notes")
		return
	}

	setPartialFailures(ctx, w, skipped)
	SendJSON(ctx, w, http.StatusOK, notes)
}

// Activities returns the contact timeline, newest first.
// @Summary Contact activities
// @Tags activities
// @Produce json
// @Param id path string true "Contact id"
// @Success 200 {array} entity.Activity
// @Failure 500 {object} ErrorResponse "Failed to fetch activities"
// @Router /contacts/{id}/activities [get]
// @Security BearerAuth
func (h *Handler) Activities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	activities, skipped, err := h.s.Activities(ctx, chi.URLParam(r, "id"))
	if err != nil {
		sendServiceErr(ctx, w, err, "", "Failed to fetch activities")
		return
	}

	setPartialFailures(ctx, w, skipped)
	SendJSON(ctx, w, http.StatusOK, activities)
}

type LogActivityRequest struct {
	ContactID    string `json:"contactId"`
	ActivityType string `json:"activityType"`
	Description  string `json:"description"`
}

// LogActivity records a widget action on the contact timeline.
// @Summary Log activity
// @Tags activities
// @Accept json
// @Produce json
// @Param LogActivityRequest body LogActivityRequest true "Activity"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Unknown activity type"
// @Failure 500 {object} ErrorResponse "Failed to log activity"
// @Router /activities/log [post]
// @Security BearerAuth
func (h *Handler) LogActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LogActivityRequest

	err := readJSON(r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	msg, err := h.s.LogActivity(ctx, req.ContactID, req.ActivityType, req.Description)
	if err != nil {
		sendServiceErr(ctx, w, err, "", "Failed to log activity")
		return
	}

	SendJSON(ctx, w, http.StatusOK, MessageResponse{Message: msg})
}

// CreateTask creates a follow-up task for the contact.
// @Summary Create task
// @Tags tasks
// @Accept json
// @Produce json
// @Param NewTask body entity.NewTask true "Task"
// @Success 200 {object} entity.Created
// @Failure 400 {object} ErrorResponse "Invalid priority"
// @Failure 500 {object} ErrorResponse "Failed to create task"
// @Router /tasks [post]
// @Security BearerAuth
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.NewTask

	err := readJSON(r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	created, err := h.s.CreateTask(ctx, req)
	if err != nil {
		sendServiceErr(ctx, w, err, "", "Failed to create task")
		return
	}

	SendJSON(ctx, w, http.StatusOK, created)
}
