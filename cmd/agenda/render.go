package main

import (
	"fmt"
	"strings"

	"github.com/2beens/practicetracker/internal/tracker/calendar"
	"github.com/2beens/practicetracker/internal/tracker/program"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))
	todayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))
	dayStyle = lipgloss.NewStyle().
			Bold(true)
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
)

var statusMarks = map[program.SessionStatus]string{
	program.StatusInProgress: "[~]",
	program.StatusCompleted:  "[x]",
	program.StatusSkipped:    "[-]",
	program.StatusPartial:    "[/]",
}

func render(agenda *agendaResponse, width int) string {
	blocks := []string{titleStyle.Render("Practice agenda")}
	if len(agenda.Days) == 0 {
		blocks = append(blocks, mutedStyle.Render("nothing scheduled"))
	}
	for _, day := range agenda.Days {
		blocks = append(blocks, renderDay(day, day.Date == agenda.Today))
	}
	return boxStyle.Width(max(20, width)).Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

func renderDay(day calendar.DayAgenda, isToday bool) string {
	heading := fmt.Sprintf("%s %s", day.Date.Weekday().String()[:3], day.Date)
	if isToday {
		heading = todayStyle.Render(heading + " (today)")
	} else {
		heading = dayStyle.Render(heading)
	}

	lines := []string{heading}
	for _, entry := range day.Sessions {
		lines = append(lines, "  "+sessionLine(entry))
		if entry.Workout != nil {
			for _, ex := range entry.Workout.Exercises {
				lines = append(lines, mutedStyle.Render(
					fmt.Sprintf("      %s %s %dx%d @ %g", ex.Tier, ex.Name, ex.Sets, ex.Reps, ex.Weight),
				))
			}
		}
	}
	return strings.Join(lines, "\n")
}

func sessionLine(entry calendar.ScheduledSession) string {
	mark := "[ ]"
	if entry.Session != nil {
		if m, ok := statusMarks[entry.Session.Status]; ok {
			mark = m
		}
	}
	line := fmt.Sprintf("%s %s (%s)", mark, entry.ProgramName, entry.ProgramType)
	if entry.Workout != nil {
		line += " " + entry.Workout.Name
	}
	return line
}
