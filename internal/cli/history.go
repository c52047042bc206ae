package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"koyomi/internal/history"
)

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List recently registered events",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initLocalApp(cmd)
			if err != nil {
				return err
			}
			log, err := history.Load(app.HistoryPath)
			if err != nil {
				return err
			}
			if len(log.Entries) == 0 {
				fmt.Println("No events registered yet.")
				return nil
			}
			for _, e := range log.Entries {
				bounds := e.Start
				if e.End != "" {
					bounds = fmt.Sprintf("%s – %s", e.Start, e.End)
				}
				if e.AllDay {
					bounds += " (all-day)"
				}
				fmt.Printf("%s  %s  %s\n", e.Summary, bounds, gray("["+e.EventID+"]"))
			}
			return nil
		},
	}
}

func newUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Delete the most recently registered event",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			log, err := history.Load(app.HistoryPath)
			if err != nil {
				return err
			}
			entry, ok := log.Pop()
			if !ok {
				fmt.Println("Nothing to undo.")
				return nil
			}
			if err := app.Calendar.DeleteEvent(entry.CalendarID, entry.EventID); err != nil {
				return fmt.Errorf("delete event: %w", err)
			}
			if err := history.Save(app.HistoryPath, log); err != nil {
				return err
			}
			fmt.Println("🗑  Event deleted:", entry.Summary)
			return nil
		},
	}
}
