package main

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/samandr77/microservices/crmwidget/internal/entity"
	"github.com/samandr77/microservices/crmwidget/internal/widget"
)

func (a *app) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <email>",
		Short: "Look up a contact by email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, done := a.controller()
			defer done()

			return c.Search(cmd.Context(), args[0])
		},
	}
}

type visitorFlags struct {
	name, email, chatID, department string
	duration                        int
}

func (f *visitorFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "visitor-name", "", "chat visitor name")
	cmd.Flags().StringVar(&f.email, "visitor-email", "", "chat visitor email")
	cmd.Flags().StringVar(&f.chatID, "chat-id", "", "SalesIQ chat id")
	cmd.Flags().StringVar(&f.department, "department", "", "SalesIQ department")
	cmd.Flags().IntVar(&f.duration, "duration", 0, "chat duration in seconds")
}

func (f visitorFlags) values() (widget.Visitor, widget.ChatContext) {
	return widget.Visitor{Name: f.name, Email: f.email},
		widget.ChatContext{ChatID: f.chatID, Department: f.department, Duration: f.duration}
}

func (f visitorFlags) empty() bool {
	return f == visitorFlags{}
}

func (a *app) visitorCmd() *cobra.Command {
	var f visitorFlags

	cmd := &cobra.Command{
		Use:   "visitor",
		Short: "Show the chat context and look the visitor up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.empty() {
				return fmt.Errorf("%w: no visitor or chat flags given", entity.ErrInvalidArgument)
			}

			c, done := a.controller()
			defer done()

			v, cc := f.values()

			return c.HandleVisitor(cmd.Context(), v, cc)
		},
	}

	f.register(cmd)

	return cmd
}

func (a *app) watchCmd() *cobra.Command {
	var f visitorFlags

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Read chat messages from stdin and look up any email address they mention",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, done := a.controller()
			defer done()

			if !f.empty() {
				v, cc := f.values()
				_ = c.HandleVisitor(cmd.Context(), v, cc)
			}

			sc := bufio.NewScanner(a.in)
			for sc.Scan() {
				// failures are already shown to the agent
				_ = c.HandleChatMessage(cmd.Context(), sc.Text())
			}

			return sc.Err()
		},
	}

	f.register(cmd)

	return cmd
}

type contactFlags struct {
	firstName, lastName, phone, company, jobTitle, stage string
}

func (f *contactFlags) register(cmd *cobra.Command, withStage bool) {
	cmd.Flags().StringVar(&f.firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&f.lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&f.phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&f.company, "company", "", "company name")
	cmd.Flags().StringVar(&f.jobTitle, "job-title", "", "job title")

	if withStage {
		cmd.Flags().StringVar(&f.stage, "stage", "", "lifecycle stage")
	}
}

func (a *app) createCmd() *cobra.Command {
	var f contactFlags

	cmd := &cobra.Command{
		Use:   "create <email>",
		Short: "Create a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, done := a.controller()
			defer done()

			return c.CreateContact(cmd.Context(), entity.NewContact{
				Email:     args[0],
				FirstName: f.firstName,
				LastName:  f.lastName,
				Phone:     f.phone,
				Company:   f.company,
				JobTitle:  f.jobTitle,
			})
		},
	}

	f.register(cmd, false)

	return cmd
}

func (a *app) updateCmd() *cobra.Command {
	var f contactFlags

	cmd := &cobra.Command{
		Use:   "update <email>",
		Short: "Update the fields given as flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p entity.ContactPatch

			changed := func(name string, v string) *string {
				if !cmd.Flags().Changed(name) {
					return nil
				}

				return &v
			}

			p.FirstName = changed("first-name", f.firstName)
			p.LastName = changed("last-name", f.lastName)
			p.Phone = changed("phone", f.phone)
			p.Company = changed("company", f.company)
			p.JobTitle = changed("job-title", f.jobTitle)
			p.LifecycleStage = changed("stage", f.stage)

			if p.IsEmpty() {
				return fmt.Errorf("%w: nothing to update", entity.ErrInvalidArgument)
			}

			return a.withContact(cmd.Context(), args[0], func(c *widget.Controller) error {
				return c.UpdateContact(cmd.Context(), p)
			})
		},
	}

	f.register(cmd, true)

	return cmd
}

func (a *app) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <email>",
		Short: "Move a lead to the customer stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withContact(cmd.Context(), args[0], func(c *widget.Controller) error {
				return c.ConvertToCustomer(cmd.Context())
			})
		},
	}
}

func (a *app) dealCmd() *cobra.Command {
	var name, amount, stage, closeDate string

	cmd := &cobra.Command{
		Use:   "deal <email>",
		Short: "Create a deal for a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := entity.NewDeal{Name: name, Stage: stage, CloseDate: closeDate}

			if amount != "" {
				v, err := decimal.NewFromString(amount)
				if err != nil {
					return fmt.Errorf("%w: amount %q", entity.ErrInvalidArgument, amount)
				}

				d.Amount = entity.Amount{Decimal: v}
			}

			return a.withContact(cmd.Context(), args[0], func(c *widget.Controller) error {
				return c.CreateDeal(cmd.Context(), d)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "deal name")
	cmd.Flags().StringVar(&amount, "amount", "", "deal amount (default from settings)")
	cmd.Flags().StringVar(&stage, "stage", "", "deal stage (default from settings)")
	cmd.Flags().StringVar(&closeDate, "close-date", "", "close date, YYYY-MM-DD")

	return cmd
}

func (a *app) noteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "note <email> <text>...",
		Short: "Add a note to a contact",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withContact(cmd.Context(), args[0], func(c *widget.Controller) error {
				return c.AddNote(cmd.Context(), strings.Join(args[1:], " "))
			})
		},
	}
}

func (a *app) notesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notes <email>",
		Short: "List a contact's notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withContact(cmd.Context(), args[0], func(c *widget.Controller) error {
				return c.LoadNotes(cmd.Context())
			})
		},
	}
}

func (a *app) activitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activities <email>",
		Short: "Show a contact's recent activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withContact(cmd.Context(), args[0], func(c *widget.Controller) error {
				return c.LoadActivities(cmd.Context())
			})
		},
	}
}

func (a *app) ownerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "owner <email>",
		Short: "Show the contact owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withContact(cmd.Context(), args[0], func(c *widget.Controller) error {
				return c.LoadOwner(cmd.Context())
			})
		},
	}
}

func (a *app) actionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "action <email> <mark_hot_lead|increase_score|add_to_list|assign_owner> [value]",
		Short: "Run a quick action on a contact",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var value string
			if len(args) == 3 {
				value = args[2]
			}

			return a.withContact(cmd.Context(), args[0], func(c *widget.Controller) error {
				return c.QuickAction(cmd.Context(), args[1], value)
			})
		},
	}
}

const dateLayout = "2006-01-02"

func parseDue(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return now.Add(24 * time.Hour), nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}

	t, err = time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: due date %q", entity.ErrInvalidArgument, s)
	}

	return t, nil
}

func (a *app) taskCmd() *cobra.Command {
	var title, due, priority, notes string

	cmd := &cobra.Command{
		Use:   "task <email>",
		Short: "Create a follow-up task for a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dueAt, err := parseDue(due, time.Now())
			if err != nil {
				return err
			}

			t := entity.NewTask{
				Title:    title,
				DueDate:  dueAt.UnixMilli(),
				Priority: priority,
				Notes:    notes,
			}

			return a.withContact(cmd.Context(), args[0], func(c *widget.Controller) error {
				return c.CreateTask(cmd.Context(), t)
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "task title")
	cmd.Flags().StringVar(&due, "due", "", "due date, YYYY-MM-DD or RFC3339 (default: in 24h)")
	cmd.Flags().StringVar(&priority, "priority", "MEDIUM", "LOW, MEDIUM or HIGH")
	cmd.Flags().StringVar(&notes, "notes", "", "task notes")

	return cmd
}

func (a *app) tagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags <email> <tag,tag,...>",
		Short: "Tag a contact",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withContact(cmd.Context(), args[0], func(c *widget.Controller) error {
				return c.AddTags(cmd.Context(), args[1])
			})
		},
	}
}

func (a *app) settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change widget settings",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.printSettings(cmd)
		},
	}

	var s widget.Settings

	set := &cobra.Command{
		Use:   "set",
		Short: "Change settings given as flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()

			if flags.Changed("default-deal-amount") {
				if s.DefaultDealAmount < 0 {
					return fmt.Errorf("%w: default deal amount must not be negative", entity.ErrInvalidArgument)
				}

				a.settings.DefaultDealAmount = s.DefaultDealAmount
			}

			if flags.Changed("default-deal-stage") {
				a.settings.DefaultDealStage = s.DefaultDealStage
			}

			if flags.Changed("auto-refresh") {
				a.settings.AutoRefresh = s.AutoRefresh
			}

			err := widget.SaveSettings(a.settingsPath, a.settings)
			if err != nil {
				return err
			}

			return a.printSettings(cmd)
		},
	}

	set.Flags().Float64Var(&s.DefaultDealAmount, "default-deal-amount", 0, "amount used when a deal has none")
	set.Flags().StringVar(&s.DefaultDealStage, "default-deal-stage", "", "stage used when a deal has none")
	set.Flags().BoolVar(&s.AutoRefresh, "auto-refresh", true, "reload the contact after each change")

	cmd.AddCommand(show, set)

	return cmd
}

func (a *app) printSettings(cmd *cobra.Command) error {
	b, err := yaml.Marshal(a.settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", a.settingsPath, b)

	return err
}
