package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/samandr77/microservices/crmwidget/internal/entity"
	"github.com/samandr77/microservices/crmwidget/internal/widget"
	"github.com/samandr77/microservices/crmwidget/pkg/broker"
	"github.com/samandr77/microservices/crmwidget/pkg/config"
	"github.com/samandr77/microservices/crmwidget/pkg/logger"
)

type app struct {
	out io.Writer
	in  io.Reader

	envPath      string
	apiURL       string
	settingsPath string

	cfg      config.Widget
	l        *slog.Logger
	settings widget.Settings
}

func newRootCmd(out io.Writer, in io.Reader) *cobra.Command {
	a := &app{out: out, in: in}

	root := &cobra.Command{
		Use:   "crmwidget",
		Short: "HubSpot contact panel for SalesIQ chats",
		Long: `crmwidget looks up chat visitors in HubSpot through the widget API
and lets an agent create contacts, deals, notes and tasks from the terminal.

Quick Start:
  crmwidget search john.doe@example.com
  crmwidget deal john.doe@example.com --name "Q4 Package" --amount 15000
  crmwidget watch < transcript.txt`,
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
	}

	root.SetOut(out)
	root.SetIn(in)

	root.PersistentFlags().StringVar(&a.envPath, "env", ".env", "dotenv file to load")
	root.PersistentFlags().StringVar(&a.apiURL, "api-url", "", "widget API base URL (overrides WIDGET_API_URL)")
	root.PersistentFlags().StringVar(&a.settingsPath, "settings", "", "settings file (default: XDG config dir)")

	root.AddCommand(
		a.searchCmd(),
		a.watchCmd(),
		a.visitorCmd(),
		a.createCmd(),
		a.updateCmd(),
		a.convertCmd(),
		a.dealCmd(),
		a.noteCmd(),
		a.notesCmd(),
		a.activitiesCmd(),
		a.ownerCmd(),
		a.actionCmd(),
		a.taskCmd(),
		a.tagsCmd(),
		a.settingsCmd(),
	)

	return root
}

func (a *app) init(_ *cobra.Command, _ []string) error {
	cfg, err := config.NewWidget(a.envPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if a.apiURL != "" {
		cfg.APIURL = a.apiURL
	}

	a.cfg = cfg

	a.l, err = logger.NewWithWriter(os.Stderr, cfg.Logger.Level, "text")
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	if a.settingsPath == "" {
		a.settingsPath, err = widget.SettingsPath()
		if err != nil {
			return err
		}
	}

	a.settings, err = widget.LoadSettings(a.settingsPath)
	if err != nil {
		return err
	}

	return nil
}

// controller builds a controller for one command run. The returned func waits
// for pending refreshes and releases the event producer.
func (a *app) controller() (*widget.Controller, func()) {
	view := widget.NewTerminalView(a.out)

	var (
		emitter widget.Emitter = widget.NewLogEmitter(a.l)
		closeFn                = func() {}
	)

	if a.cfg.Kafka.Enabled() {
		p := broker.NewProducer(a.l, a.cfg.Kafka.Brokers, a.cfg.Kafka.WidgetEventsTopic)
		emitter = widget.NewKafkaEmitter(p)
		closeFn = p.Close
	}

	c := widget.NewController(a.l,
		widget.NewSession(a.settings),
		widget.NewClient(a.cfg.APIURL, a.cfg.APIToken),
		view, view, emitter,
	)

	return c, func() {
		c.Wait()
		closeFn()
	}
}

// withContact selects the contact by email and runs fn on it.
func (a *app) withContact(ctx context.Context, email string, fn func(c *widget.Controller) error) error {
	c, done := a.controller()
	defer done()

	err := c.Search(ctx, email)
	if err != nil {
		return err
	}

	if c.Session().Contact == nil {
		return fmt.Errorf("contact %s: %w", email, entity.ErrNotFound)
	}

	return fn(c)
}
