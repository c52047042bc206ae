package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"koyomi/internal/timeparse"
)

func newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Choose the target calendar and defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			return runSetup(app)
		},
	}
}

type calendarChoice struct {
	Label string
	ID    string
}

func runSetup(app *App) error {
	printSection("Calendar")
	cals, err := app.Calendar.ListCalendars()
	if err != nil {
		return fmt.Errorf("list calendars: %w", err)
	}
	choices := make([]calendarChoice, 0, len(cals))
	for _, c := range cals {
		label := c.Summary
		if c.Primary {
			label = fmt.Sprintf("%s (primary)", label)
		}
		choices = append(choices, calendarChoice{Label: label, ID: c.Id})
	}
	sort.SliceStable(choices, func(i, j int) bool { return choices[i].Label < choices[j].Label })
	labels := make([]string, 0, len(choices))
	for _, c := range choices {
		labels = append(labels, c.Label)
	}

	var selected string
	prompt := &survey.Select{
		Message:  "Register events in which calendar?",
		Options:  labels,
		PageSize: 12,
	}
	if err := survey.AskOne(prompt, &selected, survey.WithValidator(survey.Required)); err != nil {
		return err
	}
	for _, c := range choices {
		if c.Label == selected {
			app.Config.CalendarID = c.ID
			break
		}
	}

	printSection("Defaults")
	title, err := askLabel("Default event title", app.Config.DefaultTitle)
	if err != nil {
		return err
	}
	app.Config.DefaultTitle = title

	for {
		tz, err := askLabel("Timezone", app.Config.Timezone)
		if err != nil {
			return err
		}
		if _, err := timeparse.LoadLocation(tz); err != nil {
			fmt.Println("Unknown timezone, try again (e.g. Asia/Tokyo).")
			continue
		}
		app.Config.Timezone = tz
		break
	}

	if err := app.SaveConfig(); err != nil {
		return err
	}
	fmt.Println("\n✅ Setup complete")
	return nil
}

func askLabel(message, defaultValue string) (string, error) {
	var input string
	prompt := &survey.Input{Message: message, Default: defaultValue}
	if err := survey.AskOne(prompt, &input, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func printSection(title string) {
	fmt.Printf("\n\033[1m%s\033[0m\n", title)
}
