package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"koyomi/internal/timeparse"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or edit the configuration",
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSetCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initLocalApp(cmd)
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(app.Config, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			fmt.Println(gray(app.ConfigPath))
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set calendar_id, timezone, default_title or history_size",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initLocalApp(cmd)
			if err != nil {
				return err
			}
			key, value := args[0], args[1]
			switch key {
			case "calendar_id":
				app.Config.CalendarID = value
			case "timezone":
				if _, err := timeparse.LoadLocation(value); err != nil {
					return fmt.Errorf("unknown timezone: %s", value)
				}
				app.Config.Timezone = value
			case "default_title":
				app.Config.DefaultTitle = value
			case "history_size":
				n, err := strconv.Atoi(value)
				if err != nil || n <= 0 {
					return fmt.Errorf("history_size must be a positive number")
				}
				app.Config.HistorySize = n
			default:
				return fmt.Errorf("unknown key: %s", key)
			}
			if err := app.SaveConfig(); err != nil {
				return err
			}
			fmt.Println("✅ Config updated")
			return nil
		},
	}
}
