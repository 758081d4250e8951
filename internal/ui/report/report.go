package report

import (
	"fmt"
	"strings"

	worklogdto "rodomopo/internal/modules/worklog/dto"
	"rodomopo/internal/ui/theme"
)

// Event renders the line printed after one engine step.
func Event(out worklogdto.StepOutput) string {
	switch out.Event {
	case worklogdto.EventSessionOpened:
		return theme.Good.Render("Opening timestamp. Time for deep work!")
	case worklogdto.EventStaleSessionDiscarded:
		return theme.Hot.Render(fmt.Sprintf("You left a timestamp open %d minutes ago.", out.ElapsedMinutes)) + "\n" +
			theme.Muted.Render("I am assuming it is not valid: I will delete it and open a new timestamp.")
	case worklogdto.EventBlockTooShort:
		return theme.Bad.Render(fmt.Sprintf("Not enough time has passed. You have been working only for %d minutes", out.ElapsedMinutes))
	case worklogdto.EventSessionClosed:
		return theme.Good.Render("Closing timestamp. Time for a break!")
	default:
		return fmt.Sprintf("unknown event %q", out.Event)
	}
}

func ForcedClose() string {
	return theme.Hot.Render("Betraying your principles and closing timestamp. Time for a break!")
}

func KeptOpen() string {
	return theme.Good.Render("Good! Keep working!")
}

// Progress renders the bar and the "<n> minutes out of <goal>" summary.
func Progress(out worklogdto.ProgressOutput, today bool) string {
	day := "today"
	if !today {
		day = "on " + out.Date.Format("02/01/2006")
	}
	summary := fmt.Sprintf("%d minutes out of %d worked %s.", out.WorkedMinutes, out.GoalMinutes, day)
	return colorBar(out.Bar) + "\n" + theme.Muted.Render(summary)
}

func Status(out worklogdto.StatusOutput) string {
	if !out.Open {
		return theme.Title.Render("No session in progress.")
	}
	return theme.Title.Render(fmt.Sprintf("Session open since %s (%d minutes).", out.StartedAt.Format("15:04:05"), out.ElapsedMinutes))
}

func Init(out worklogdto.InitOutput, statusPath, historyPath string, configWritten bool, configPath string) string {
	lines := []string{
		created(statusPath, out.StatusCreated),
		created(historyPath, out.HistoryCreated),
		created(configPath, configWritten),
	}
	return strings.Join(lines, "\n")
}

func created(path string, ok bool) string {
	if ok {
		return theme.Good.Render("created ") + path
	}
	return theme.Muted.Render("exists  ") + path
}

// colorBar styles the done and remaining parts without changing the glyphs.
func colorBar(bar string) string {
	cursor := strings.Index(bar, ">")
	if cursor < 0 || !strings.HasPrefix(bar, "[") || !strings.HasSuffix(bar, "]") {
		return bar
	}
	done := bar[1 : cursor+1]
	todo := bar[cursor+1 : len(bar)-1]
	return "[" + theme.BarDone.Render(done) + theme.BarTodo.Render(todo) + "]"
}
