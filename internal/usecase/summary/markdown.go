package summary

import (
	"fmt"
	"strings"

	"github.com/boardwatchnyc/boardwatch/internal/domain/entities"
)

// SynthesizeMarkdown builds a summary document in the parser's dialect from
// a structured analysis. It is the template-fill used when the backend
// returned only structured JSON without a pre-rendered summary_markdown.
//
// The output is deliberately restricted to the constructs Parse understands:
// global fields become the header block, each main topic becomes a numbered
// section, and the flat keyDecisions/publicConcerns/nextSteps lists become
// trailing numbered sections of their own.
func SynthesizeMarkdown(a *entities.Analysis) string {
	if a == nil {
		return ""
	}

	var b strings.Builder

	date := ""
	if len(a.ImportantDates) > 0 {
		date = a.ImportantDates[0]
	}
	if date != "" {
		fmt.Fprintf(&b, "# Meeting Summary — %s\n\n", date)
	} else {
		b.WriteString("# Meeting Summary\n\n")
	}

	if a.Summary != "" {
		b.WriteString("## Meeting Overview\n\n")
		b.WriteString(a.Summary)
		b.WriteString("\n\n")
	}

	var stats []string
	if a.Sentiment != "" {
		stats = append(stats, fmt.Sprintf("**Overall Sentiment:** %s", a.Sentiment))
	}
	if a.Attendance != "" {
		stats = append(stats, fmt.Sprintf("**Attendance:** %s", a.Attendance))
	}
	if len(stats) > 0 {
		b.WriteString(strings.Join(stats, " | "))
		b.WriteString("\n\n")
	}

	n := 0
	for _, topic := range a.MainTopics {
		topic = strings.TrimSpace(topic)
		if topic == "" {
			continue
		}
		n++
		fmt.Fprintf(&b, "## %d. %s\n\n", n, topic)
	}

	if len(a.KeyDecisions) > 0 {
		n++
		fmt.Fprintf(&b, "## %d. Key Decisions\n\n### Decisions\n", n)
		for _, d := range a.KeyDecisions {
			b.WriteString("- ")
			b.WriteString(formatDecision(d))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(a.PublicConcerns) > 0 {
		n++
		fmt.Fprintf(&b, "## %d. Public Concerns\n\n### Summary\n", n)
		for _, concern := range a.PublicConcerns {
			b.WriteString(concern)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(a.NextSteps) > 0 {
		n++
		fmt.Fprintf(&b, "## %d. Next Steps\n\n### Action Items\n", n)
		for _, step := range a.NextSteps {
			b.WriteString("- ")
			b.WriteString(step)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// formatDecision flattens one keyDecisions record into a single bullet.
func formatDecision(d entities.KeyDecision) string {
	text := d.Item
	if d.Outcome != "" {
		text = fmt.Sprintf("%s — %s", text, d.Outcome)
	}
	if d.Vote != "" {
		text = fmt.Sprintf("%s (%s)", text, d.Vote)
	}
	if d.Details != "" {
		text = fmt.Sprintf("%s. %s", text, d.Details)
	}
	return text
}

// DocumentFor returns the summary document for an analysis, preferring the
// backend's pre-rendered markdown over synthesis.
func DocumentFor(a *entities.Analysis) string {
	if a == nil {
		return ""
	}
	if strings.TrimSpace(a.SummaryMarkdown) != "" {
		return a.SummaryMarkdown
	}
	return SynthesizeMarkdown(a)
}
