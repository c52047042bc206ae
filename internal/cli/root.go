package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	gcal "google.golang.org/api/calendar/v3"

	"koyomi/internal/auth"
	"koyomi/internal/config"
	"koyomi/internal/google/calendar"
	"koyomi/internal/history"
	"koyomi/internal/paths"
	"koyomi/internal/timeparse"
)

type App struct {
	Config      *config.Config
	ConfigPath  string
	HistoryPath string
	Calendar    *calendar.Client
	Location    *time.Location
}

// Now returns the current time in the app's configured location.
// Always use this instead of caching time at startup.
func (a *App) Now() time.Time {
	return time.Now().In(a.Location)
}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "koyomi",
		Short: "Capture clipboard text into Google Calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			return startCapture(app)
		},
	}
	cmd.PersistentFlags().String("config", "", "Path to config.json (defaults to ~/.config/koyomi/config.json)")
	cmd.PersistentFlags().String("credentials", "", "Path to OAuth credentials.json (defaults to ~/.config/koyomi/credentials.json)")

	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newParseCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newUndoCmd())
	cmd.AddCommand(newSetupCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initLocalApp loads config and location only; commands that never touch
// the network (parse, history, config) use this and skip auth entirely.
func initLocalApp(cmd *cobra.Command) (*App, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		var err error
		cfgPath, err = paths.ConfigPath()
		if err != nil {
			return nil, err
		}
	}
	cfg, err := config.LoadOrCreate(cfgPath)
	if err != nil {
		return nil, err
	}
	loc, err := timeparse.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	historyPath, err := paths.HistoryPath()
	if err != nil {
		return nil, err
	}
	return &App{
		Config:      cfg,
		ConfigPath:  cfgPath,
		HistoryPath: historyPath,
		Location:    loc,
	}, nil
}

func initApp(cmd *cobra.Command) (*App, error) {
	app, err := initLocalApp(cmd)
	if err != nil {
		return nil, err
	}
	credPath, _ := cmd.Flags().GetString("credentials")
	if credPath == "" {
		credPath, err = paths.CredentialsPath()
		if err != nil {
			return nil, err
		}
	}
	tokenPath, err := paths.TokenPath()
	if err != nil {
		return nil, err
	}
	ctx := context.Background()
	httpClient, err := auth.Client(ctx, credPath, tokenPath)
	if err != nil {
		return nil, fmt.Errorf("auth failed: %w", err)
	}
	calendarClient, err := calendar.New(ctx, httpClient)
	if err != nil {
		return nil, err
	}
	app.Calendar = calendarClient
	return app, nil
}

func (a *App) SaveConfig() error {
	if a == nil || a.Config == nil || a.ConfigPath == "" {
		return fmt.Errorf("config is not initialized")
	}
	return config.Save(a.ConfigPath, a.Config)
}

// registerEvent inserts the event and records it in the local history log.
// A history write failure never fails the registration.
func registerEvent(app *App, event *gcal.Event, allDay bool) (history.Entry, error) {
	created, err := app.Calendar.InsertEvent(app.Config.CalendarID, event)
	if err != nil {
		return history.Entry{}, err
	}
	entry := history.Entry{
		EventID:    created.Id,
		CalendarID: app.Config.CalendarID,
		Summary:    event.Summary,
		Start:      boundText(event.Start),
		End:        boundText(event.End),
		AllDay:     allDay,
		HTMLLink:   created.HtmlLink,
		CreatedAt:  app.Now().Format(time.RFC3339),
	}
	if log, err := history.Load(app.HistoryPath); err == nil {
		log.Add(entry, app.Config.HistorySize)
		_ = history.Save(app.HistoryPath, log)
	}
	return entry, nil
}

func boundText(dt *gcal.EventDateTime) string {
	if dt == nil {
		return ""
	}
	if dt.Date != "" {
		return dt.Date
	}
	return dt.DateTime
}
