package widget

import (
	"regexp"
	"strings"

	"github.com/samandr77/microservices/crmwidget/internal/entity"
)

// Visitor is the chat visitor as reported by SalesIQ.
type Visitor struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type ChatContext struct {
	ChatID     string `json:"chat_id,omitempty"`
	Department string `json:"department,omitempty"`
	// Duration is in seconds.
	Duration int `json:"duration,omitempty"`
}

// Session is the state of one widget instance. Only the controller mutates it.
type Session struct {
	Contact     *entity.Contact
	Company     *entity.Company
	Visitor     Visitor
	ChatContext ChatContext
	Settings    Settings
	// LastEmail is the last address searched for.
	LastEmail string
}

func NewSession(settings Settings) *Session {
	return &Session{Settings: settings}
}

func (s *Session) clone() Session {
	out := *s

	if s.Contact != nil {
		c := *s.Contact
		c.Deals = append([]entity.Deal(nil), s.Contact.Deals...)
		out.Contact = &c
	}

	if s.Company != nil {
		c := *s.Company
		out.Company = &c
	}

	return out
}

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._-]+@[a-zA-Z0-9._-]+\.[a-zA-Z0-9_-]+`)

// ExtractEmail returns the first email address found in a chat message.
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// EmailDomain returns the lower-cased part after the @, or "" if there is none.
func EmailDomain(email string) string {
	_, domain, ok := strings.Cut(email, "@")
	if !ok {
		return ""
	}

	return strings.ToLower(strings.TrimSpace(domain))
}
