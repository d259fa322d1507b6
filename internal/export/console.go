package export

import (
	"encoding/json"
	"fmt"
	"io"

	"jobsearch-engine/internal/domain"
	"jobsearch-engine/internal/events"
)

func sourceIcon(source string) string {
	switch source {
	case domain.SourceLinkedIn:
		return "💼"
	case domain.SourceTimesJobs:
		return "📰"
	default:
		return "🔍"
	}
}

// Render prints the final record list the way the CLI always has:
// numbered entries, one labeled line per field, description only when
// present.
func Render(w io.Writer, jobs []domain.JobRecord) {
	fmt.Fprintln(w, "\n📋 Job Results:")
	fmt.Fprintln(w, "============================================================")

	for i, j := range jobs {
		fmt.Fprintf(w, "\n%d. %s [%s %s]\n", i+1, j.Title, sourceIcon(j.Source), j.Source)
		fmt.Fprintf(w, "   🏢 Company: %s\n", j.Company)
		fmt.Fprintf(w, "   📍 Location: %s\n", j.Location)
		fmt.Fprintf(w, "   💼 Experience: %s\n", j.Experience)
		fmt.Fprintf(w, "   💰 Salary: %s\n", j.Salary)
		if j.Description != "" {
			fmt.Fprintf(w, "   📝 Description: %s\n", j.Description)
		}
		fmt.Fprintf(w, "   🔗 Apply: %s\n", j.ApplyURL)
	}
}

// ProgressPrinter adapts pipeline events into short console lines, so the
// CLI gets live feedback without the pipeline printing anything itself.
func ProgressPrinter(w io.Writer) func(string) {
	return func(raw string) {
		var e events.Event
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return
		}
		var data map[string]any
		_ = json.Unmarshal(e.Data, &data)

		switch e.Type {
		case "search_started":
			fmt.Fprintf(w, "🚀 Searching %v sources for %v in %v\n", data["sources"], data["title"], data["location"])
		case "source_done":
			fmt.Fprintf(w, "✅ %v: %v candidates\n", data["source"], data["candidates"])
		case "search_done":
			fmt.Fprintf(w, "🎉 %v jobs after dedup and merge\n", data["count"])
		}
	}
}
