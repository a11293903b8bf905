package widget

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/samandr77/microservices/crmwidget/internal/entity"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Width(16)

	stageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dealStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			PaddingLeft(2)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

const timeLayout = "2006-01-02 15:04"

// TerminalView renders the widget panels and notifications to a writer.
type TerminalView struct {
	mu  sync.Mutex
	out io.Writer
}

func NewTerminalView(out io.Writer) *TerminalView {
	return &TerminalView{out: out}
}

func (v *TerminalView) ShowContact(c entity.Contact, company *entity.Company) {
	var b strings.Builder

	name := c.FullName()
	if name == "" {
		name = c.Email
	}

	b.WriteString(headerStyle.Render(name) + "\n")
	writeField(&b, "Email", c.Email)
	writeField(&b, "Phone", c.Phone)

	companyName := c.Company
	if companyName == "" && company != nil {
		companyName = company.Name
	}

	writeField(&b, "Company", companyName)
	writeField(&b, "Job title", c.JobTitle)
	b.WriteString(labelStyle.Render("Stage") + stageStyle.Render(c.LifecycleStage) + "\n")

	if len(c.Deals) == 0 {
		b.WriteString(mutedStyle.Render("No deals") + "\n")
	}

	for _, d := range c.Deals {
		b.WriteString(dealStyle.Render(fmt.Sprintf("%s  $%s  %s", d.Name, d.Amount.StringFixed(2), d.Stage)) + "\n")
	}

	v.write(b.String())
}

func (v *TerminalView) ShowNoResults(email string) {
	v.write(mutedStyle.Render(fmt.Sprintf("No contact found for %s", email)) + "\n")
}

func (v *TerminalView) ShowNotes(notes []entity.Note) {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Notes") + "\n")

	if len(notes) == 0 {
		b.WriteString(mutedStyle.Render("No notes") + "\n")
	}

	for _, n := range notes {
		b.WriteString(mutedStyle.Render(formatMillis(n.Timestamp)) + "  " + n.Body + "\n")
	}

	v.write(b.String())
}

func (v *TerminalView) ShowActivities(activities []entity.Activity) {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Recent activity") + "\n")

	if len(activities) == 0 {
		b.WriteString(mutedStyle.Render("No activity") + "\n")
	}

	for _, a := range activities {
		b.WriteString(mutedStyle.Render(formatMillis(a.Timestamp)) + "  " + labelStyle.Render(a.Type) + a.Body + "\n")
	}

	v.write(b.String())
}

func (v *TerminalView) Success(msg string) {
	v.write(successStyle.Render("✓ "+msg) + "\n")
}

func (v *TerminalView) Error(msg string) {
	v.write(errorStyle.Render("✗ "+msg) + "\n")
}

func (v *TerminalView) write(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	_, _ = io.WriteString(v.out, s)
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		value = mutedStyle.Render("-")
	}

	b.WriteString(labelStyle.Render(label) + value + "\n")
}

func formatMillis(ms int64) string {
	if ms == 0 {
		return "-"
	}

	return time.UnixMilli(ms).Local().Format(timeLayout)
}

func (v *TerminalView) ShowChatContext(cc ChatContext) {
	id := cc.ChatID
	if id == "" {
		id = "Unknown"
	}

	line := fmt.Sprintf("Chat ID: %s | Duration: %s", id, FormatChatDuration(cc.Duration))
	if cc.Department != "" {
		line += " | " + cc.Department
	}

	v.write(mutedStyle.Render(line) + "\n")
}

// FormatChatDuration renders seconds as m:ss.
func FormatChatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func (v *TerminalView) ShowOwner(owner *entity.Owner) {
	if owner == nil {
		v.write(mutedStyle.Render("No owner assigned") + "\n")
		return
	}

	name := strings.TrimSpace(owner.FirstName + " " + owner.LastName)
	v.write(labelStyle.Render("Owner") + fmt.Sprintf("%s <%s>", name, owner.Email) + "\n")
}
