package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardwatchnyc/boardwatch/internal/domain/entities"
)

func sampleAnalysis() *entities.Analysis {
	return &entities.Analysis{
		Summary: "The board discussed zoning and approved two resolutions.",
		KeyDecisions: []entities.KeyDecision{
			{Item: "Hotel special permit", Outcome: "Approved", Vote: "30-2"},
		},
		PublicConcerns: []string{"Construction noise on weekends"},
		NextSteps:      []string{"Send letter to DOT"},
		Sentiment:      "Positive",
		Attendance:     "Board Members: 35",
		MainTopics:     []string{"Zoning", "Transportation"},
		ImportantDates: []string{"2025-03-04"},
	}
}

func TestSynthesizeMarkdown_RoundTripsThroughParser(t *testing.T) {
	doc := SynthesizeMarkdown(sampleAnalysis())
	ms := NewParser().Parse(doc)

	assert.Equal(t, "2025-03-04", ms.MeetingDate)
	assert.Equal(t, "The board discussed zoning and approved two resolutions.", ms.Overview)
	assert.Equal(t, "Positive", ms.OverallSentiment)
	assert.Equal(t, "Board Members: 35", ms.Attendance)

	require.Len(t, ms.Topics, 5)
	assert.Equal(t, "Zoning", ms.Topics[0].Title)
	assert.Equal(t, "Transportation", ms.Topics[1].Title)

	decisions := ms.Topics[2]
	assert.Equal(t, "Key Decisions", decisions.Title)
	require.Len(t, decisions.Decisions, 1)
	assert.Equal(t, "Hotel special permit — Approved (30-2)", decisions.Decisions[0])

	concerns := ms.Topics[3]
	assert.Equal(t, "Public Concerns", concerns.Title)
	assert.Equal(t, "Construction noise on weekends", concerns.Summary)

	steps := ms.Topics[4]
	assert.Equal(t, "Next Steps", steps.Title)
	require.Len(t, steps.ActionItems, 1)
	assert.Equal(t, "Send letter to DOT", steps.ActionItems[0].Task)
}

func TestSynthesizeMarkdown_NilAndEmpty(t *testing.T) {
	assert.Empty(t, SynthesizeMarkdown(nil))

	doc := SynthesizeMarkdown(&entities.Analysis{})
	ms := NewParser().Parse(doc)
	assert.Empty(t, ms.Topics)
	assert.Equal(t, entities.NotSpecified, ms.OverallSentiment)
}

func TestDocumentFor_PrefersPreRenderedMarkdown(t *testing.T) {
	a := sampleAnalysis()
	a.SummaryMarkdown = "# Meeting Summary — override\n"

	assert.Equal(t, a.SummaryMarkdown, DocumentFor(a))

	a.SummaryMarkdown = "   "
	assert.Equal(t, SynthesizeMarkdown(a), DocumentFor(a))

	assert.Empty(t, DocumentFor(nil))
}
