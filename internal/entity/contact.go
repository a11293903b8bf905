package entity

const LifecycleStageLead = "lead"

type Contact struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Phone          string `json:"phone"`
	Company        string `json:"company"`
	JobTitle       string `json:"jobTitle"`
	LifecycleStage string `json:"lifecycleStage"`
	CreateDate     string `json:"createDate,omitempty"`
	LastActivity   string `json:"lastActivity,omitempty"`
	Deals          []Deal `json:"deals"`
}

func (c Contact) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	default:
		return c.FirstName + " " + c.LastName
	}
}

// NewContact holds the fields accepted on contact creation.
type NewContact struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	JobTitle  string `json:"jobTitle"`
}

// ContactPatch is a partial update. Nil fields are left untouched remotely.
type ContactPatch struct {
	FirstName      *string `json:"firstName,omitempty"`
	LastName       *string `json:"lastName,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Company        *string `json:"company,omitempty"`
	JobTitle       *string `json:"jobTitle,omitempty"`
	LifecycleStage *string `json:"lifecycleStage,omitempty"`
}

func (p ContactPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Phone == nil &&
		p.Company == nil && p.JobTitle == nil && p.LifecycleStage == nil
}

// Created is the result of any create operation.
type Created struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type Updated struct {
	Message string         `json:"message"`
	Contact map[string]any `json:"contact"`
}
