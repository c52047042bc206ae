package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"koyomi/internal/clipboard"
	"koyomi/internal/clipparse"
	"koyomi/internal/eventbody"
	"koyomi/internal/timeparse"
)

func newAddCmd() *cobra.Command {
	var (
		title   string
		dateStr string
		allDay  bool
		dryRun  bool
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register the clipboard as an event without opening the TUI",
		Long:  "Reads the clipboard, parses it and registers the event immediately.\nBind `koyomi add` to a desktop hotkey for one-keystroke capture.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var app *App
			var err error
			if dryRun {
				app, err = initLocalApp(cmd)
			} else {
				app, err = initApp(cmd)
			}
			if err != nil {
				return err
			}

			raw, err := clipboard.Read()
			if err != nil {
				return err
			}

			var parsed *clipparse.Parsed
			var ok bool
			if dateStr != "" {
				base, err := timeparse.ParseDate(dateStr, app.Now(), app.Location)
				if err != nil {
					return fmt.Errorf("invalid --date %q: %w", dateStr, err)
				}
				parsed, ok = clipparse.ParseWithDate(raw, base)
			} else {
				parsed, ok = clipparse.Parse(raw, app.Now())
			}
			if !ok {
				return fmt.Errorf("no date or time found in clipboard text")
			}

			in := eventbody.Input{
				Title:     parsed.Title,
				AllDay:    parsed.AllDay,
				StartText: parsed.Start,
				EndText:   parsed.End,
			}
			if strings.TrimSpace(title) != "" {
				in.Title = title
			}
			if strings.TrimSpace(in.Title) == "" {
				in.Title = app.Config.DefaultTitle
			}
			if allDay && !in.AllDay {
				// Drop the recognized times and keep the date alone.
				if start, err := timeparse.ParseDateTime(in.StartText, app.Location); err == nil {
					in.StartText = timeparse.FormatDate(start)
				}
				in.EndText = ""
				in.AllDay = true
			}

			event, err := eventbody.Build(in, app.Config.Timezone, app.Location)
			if err != nil {
				return err
			}

			if dryRun {
				body, err := json.MarshalIndent(event, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(renderHighlights(parsed.Text, parsed.Highlights))
				fmt.Println(string(body))
				return nil
			}

			entry, err := registerEvent(app, event, in.AllDay)
			if err != nil {
				return err
			}
			fmt.Println("📅 Event created:", entry.Summary)
			if entry.HTMLLink != "" {
				fmt.Println("   " + gray(entry.HTMLLink))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Event title (overrides the first clipboard line)")
	cmd.Flags().StringVar(&dateStr, "date", "", "Date override (natural language, e.g. 'tomorrow')")
	cmd.Flags().BoolVar(&allDay, "all-day", false, "Force an all-day event, ignoring recognized times")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the request body instead of registering")
	return cmd
}
