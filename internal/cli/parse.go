package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"koyomi/internal/clipboard"
	"koyomi/internal/clipparse"
)

func newParseCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "parse [text]",
		Short: "Parse text (or the clipboard) and print the draft without registering",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initLocalApp(cmd)
			if err != nil {
				return err
			}
			text := strings.Join(args, " ")
			if text == "" {
				text, err = clipboard.Read()
				if err != nil {
					return err
				}
			}
			parsed, ok := clipparse.Parse(text, app.Now())
			if !ok {
				return fmt.Errorf("no date or time found")
			}
			if asJSON {
				data, err := json.MarshalIndent(parsed, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}
			printParsed(parsed)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the draft as JSON")
	return cmd
}

func printParsed(p *clipparse.Parsed) {
	title := p.Title
	if title == "" {
		title = gray("(none)")
	}
	end := p.End
	if end == "" {
		end = gray("(none)")
	}
	allDay := "no"
	if p.AllDay {
		allDay = "yes"
	}
	fmt.Println("Title:  ", title)
	fmt.Println("Start:  ", p.Start)
	fmt.Println("End:    ", end)
	fmt.Println("All-day:", allDay)
	fmt.Println()
	fmt.Println(renderHighlights(p.Text, p.Highlights))
	for _, h := range p.Highlights {
		fmt.Printf("  %s %s %q\n", h.Kind, gray(fmt.Sprintf("[%d:%d)", h.Start, h.End)), runeSlice(p.Text, h.Start, h.End))
	}
}

func runeSlice(text string, start, end int) string {
	runes := []rune(text)
	start = clamp(start, 0, len(runes))
	end = clamp(end, start, len(runes))
	return string(runes[start:end])
}
