package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/samandr77/microservices/crmwidget/internal/entity"
)

// SearchContact finds a contact and its deals by email.
// @Summary Search contact by email
// @Tags contacts
// @Produce json
// @Param email query string true "Contact email"
// @Success 200 {object} entity.Contact
// @Failure 400 {object} ErrorResponse "Email parameter is required"
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Failure 500 {object} ErrorResponse "Failed to search contact"
// @Router /contacts/search [get]
// @Security BearerAuth
func (h *Handler) SearchContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	contact, skipped, err := h.s.SearchContact(ctx, r.URL.Query().Get("email"))
	if err != nil {
		sendServiceErr(ctx, w, err, "Contact not found", "Failed to search contact")
		return
	}

	setPartialFailures(ctx, w, skipped)
	SendJSON(ctx, w, http.StatusOK, contact)
}

// CreateContact creates a lead.
// @Summary Create contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param NewContact body entity.NewContact true "Contact fields"
// @Success 200 {object} entity.Created
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Failed to create contact"
// @Router /contacts [post]
// @Security BearerAuth
func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.NewContact

	err := readJSON(r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	created, err := h.s.CreateContact(ctx, req)
	if err != nil {
		sendServiceErr(ctx, w, err, "", "Failed to create contact")
		return
	}

	SendJSON(ctx, w, http.StatusOK, created)
}

// UpdateContact patches only the fields present in the body.
// @Summary Update contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact id"
// @Param ContactPatch body entity.ContactPatch true "Fields to change"
// @Success 200 {object} entity.Updated
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Failure 500 {object} ErrorResponse "Failed to update contact"
// @Router /contacts/{id} [patch]
// @Security BearerAuth
func (h *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.ContactPatch

	err := readJSON(r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	updated, err := h.s.UpdateContact(ctx, chi.URLParam(r, "id"), req)
	if err != nil {
		sendServiceErr(ctx, w, err, "Contact not found", "Failed to update contact")
		return
	}

	SendJSON(ctx, w, http.StatusOK, updated)
}

type QuickActionRequest struct {
	Action string `json:"action"`
	Value  string `json:"value,omitempty"`
}

// QuickAction applies one of mark_hot_lead, increase_score, add_to_list, assign_owner.
// @Summary Quick action
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact id"
// @Param QuickActionRequest body QuickActionRequest true "Action"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Unknown action"
// @Failure 500 {object} ErrorResponse "Failed to perform quick action"
// @Router /contacts/{id}/quick-action [post]
// @Security BearerAuth
func (h *Handler) QuickAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req QuickActionRequest

	err := readJSON(r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	msg, err := h.s.QuickAction(ctx, chi.URLParam(r, "id"), req.Action, req.Value)
	if err != nil {
		sendServiceErr(ctx, w, err, "Contact not found", "Failed to perform quick action")
		return
	}

	SendJSON(ctx, w, http.StatusOK, MessageResponse{Message: msg})
}

type TagsRequest struct {
	Tags []string `json:"tags"`
}

// TagContact replaces the contact's tags.
// @Summary Tag contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact id"
// @Param TagsRequest body TagsRequest true "Tags"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Failed to update tags"
// @Router /contacts/{id}/tags [post]
// @Security BearerAuth
func (h *Handler) TagContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req TagsRequest

	err := readJSON(r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	msg, err := h.s.TagContact(ctx, chi.URLParam(r, "id"), req.Tags)
	if err != nil {
		sendServiceErr(ctx, w, err, "Contact not found", "Failed to update tags")
		return
	}

	SendJSON(ctx, w, http.StatusOK, MessageResponse{Message: msg})
}

// ContactOwner returns the owner assigned to the contact.
// @Summary Contact owner
// @Tags owners
// @Produce json
// @Param id path string true "Contact id"
// @Success 200 {object} entity.Owner
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Failure 500 {object} ErrorResponse "Failed to fetch owner"
// @Router /contacts/{id}/owner [get]
// @Security BearerAuth
func (h *Handler) ContactOwner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	owner, err := h.s.ContactOwner(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, entity.ErrNoOwner) {
			SendJSON(ctx, w, http.StatusOK, MessageResponse{Message: "No owner assigned"})
			return
		}

		sendServiceErr(ctx, w, err, "Contact not found", "Failed to fetch owner")

		return
	}

	SendJSON(ctx, w, http.StatusOK, owner)
}

// Owners lists CRM users that can own contacts.
// @Summary Owners
// @Tags owners
// @Produce json
// @Success 200 {array} entity.Owner
// @Failure 500 {object} ErrorResponse "Failed to fetch owners"
// @Router /owners [get]
// @Security BearerAuth
func (h *Handler) Owners(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	owners, err := h.s.Owners(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "", "Failed to fetch owners")
		return
	}

	SendJSON(ctx, w, http.StatusOK, owners)
}

type AssociateCompanyRequest struct {
	CompanyID string `json:"companyId"`
}

// AssociateCompany links the contact to a company.
// @Summary Associate company
// @Tags companies
// @Accept json
// @Produce json
// @Param id path string true "Contact id"
// @Param AssociateCompanyRequest body AssociateCompanyRequest true "Company"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Failed to associate company"
// @Router /contacts/{id}/associate-company [post]
// @Security BearerAuth
func (h *Handler) AssociateCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AssociateCompanyRequest

	err := readJSON(r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	msg, err := h.s.AssociateCompany(ctx, chi.URLParam(r, "id"), req.CompanyID)
	if err != nil {
		sendServiceErr(ctx, w, err, "Contact or company not found", "Failed to associate company")
		return
	}

	SendJSON(ctx, w, http.StatusOK, MessageResponse{Message: msg})
}

// SearchCompany finds a company by its domain.
// @Summary Search company by domain
// @Tags companies
// @Produce json
// @Param domain query string true "Company domain"
// @Success 200 {object} entity.Company
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Company not found"
// @Failure 500 {object} ErrorResponse "Failed to search company"
// @Router /companies/search [get]
// @Security BearerAuth
func (h *Handler) SearchCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	company, err := h.s.SearchCompany(ctx, r.URL.Query().Get("domain"))
	if err != nil {
		sendServiceErr(ctx, w, err, "Company not found", "Failed to search company")
		return
	}

	SendJSON(ctx, w, http.StatusOK, company)
}
