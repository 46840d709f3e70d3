// Command remindctl inspects the reminder database from the terminal.
//
// Usage:
//
//	./remindctl                 # List all reminders
//	./remindctl -status pending # List only pending reminders
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"remindagent/internal/config"
	"remindagent/internal/reminder"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("222"))

	importantStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Strikethrough(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

func main() {
	configPath := flag.String("config", config.GetDefaultConfigPath(), "Path to configuration file")
	status := flag.String("status", "", "Filter by status (pending, completed)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	store, err := reminder.NewStore(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	records, err := store.List(*status)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to list reminders: %v\n", err)
		os.Exit(1)
	}

	if len(records) == 0 {
		fmt.Println(dimStyle.Render("No reminders."))
		return
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("📋 %d reminder(s)", len(records))))
	for _, r := range records {
		fmt.Println(formatRecord(r))
	}
}

func formatRecord(r reminder.Record) string {
	message := r.Message
	if r.Status == reminder.StatusCompleted {
		message = doneStyle.Render(message)
	}

	line := fmt.Sprintf("%s %s %s",
		dimStyle.Render(fmt.Sprintf("#%d", r.ID)),
		timeStyle.Render(r.RemindTime),
		message)

	if r.IsImportant {
		line += " " + importantStyle.Render("[!]")
	}

	return line
}
