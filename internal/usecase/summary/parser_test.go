package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardwatchnyc/boardwatch/internal/domain/entities"
)

const sampleDocument = `# Meeting Summary — March 4, 2025

## Meeting Overview

The board reviewed the rezoning proposal and heard public testimony on bus lane changes.

**Overall Sentiment:** Mixed | **Attendance:** Board Members: 38, Public: 120

## 1. Zoning

**Speakers:** Jane Doe, Richard Roe
**Sentiment:** Positive

### Summary
The committee presented the draft rezoning framework.
Public comment focused on affordability requirements.

### Decisions
- Approved the draft framework 28-4

### Action Items
- Form housing working group
  - Owner: Jane Doe
  - Due: March 2025

## 2. Transportation

### Summary
DOT presented the amended bus lane design.

### Decisions
- Tabled the resolution pending DOT follow-up

## 3. Parks

### Action Items
- Schedule joint walkthrough of the playground site
`

func TestParse_FullDocument(t *testing.T) {
	p := NewParser()
	ms := p.Parse(sampleDocument)

	assert.Equal(t, "March 4, 2025", ms.MeetingDate)
	assert.Equal(t, "The board reviewed the rezoning proposal and heard public testimony on bus lane changes.", ms.Overview)
	assert.Equal(t, "Mixed", ms.OverallSentiment)
	assert.Equal(t, "Board Members: 38, Public: 120", ms.Attendance)

	require.Len(t, ms.Topics, 3)
	zoning := ms.Topics[0]
	assert.Equal(t, 1, zoning.Number)
	assert.Equal(t, "Zoning", zoning.Title)
	assert.Equal(t, "Jane Doe, Richard Roe", zoning.Speakers)
	assert.Equal(t, "Positive", zoning.Sentiment)
	assert.Equal(t, "The committee presented the draft rezoning framework. Public comment focused on affordability requirements.", zoning.Summary)
	assert.Equal(t, []string{"Approved the draft framework 28-4"}, zoning.Decisions)
}

func TestParse_Idempotent(t *testing.T) {
	p := NewParser()
	first := p.Parse(sampleDocument)
	second := p.Parse(sampleDocument)
	assert.Equal(t, first, second)
}

func TestParse_TopicOrderPreserved(t *testing.T) {
	p := NewParser()
	ms := p.Parse(sampleDocument)

	require.Len(t, ms.Topics, 3)
	titles := []string{ms.Topics[0].Title, ms.Topics[1].Title, ms.Topics[2].Title}
	assert.Equal(t, []string{"Zoning", "Transportation", "Parks"}, titles)
	for i, topic := range ms.Topics {
		assert.Equal(t, i+1, topic.Number)
	}
}

func TestParse_FieldDefaults(t *testing.T) {
	p := NewParser()
	ms := p.Parse("## 1. Budget\n### Summary\nShort discussion.\n")

	assert.Equal(t, entities.NotSpecified, ms.OverallSentiment)
	assert.Equal(t, entities.NotSpecified, ms.Attendance)
	assert.Empty(t, ms.MeetingDate)
	assert.Empty(t, ms.Overview)
}

func TestParse_ActionItemAttachment(t *testing.T) {
	doc := strings.Join([]string{
		"## 1. Housing",
		"### Action Items",
		"- Form housing working group",
		"Owner: Jane Doe",
		"Due: March 2025",
	}, "\n")

	ms := NewParser().Parse(doc)

	require.Len(t, ms.Topics, 1)
	require.Len(t, ms.Topics[0].ActionItems, 1)
	item := ms.Topics[0].ActionItems[0]
	assert.Equal(t, "Form housing working group", item.Task)
	assert.Equal(t, "Jane Doe", item.Owner)
	assert.Equal(t, "March 2025", item.Due)
}

func TestParse_IndentedOwnerDueBullets(t *testing.T) {
	doc := strings.Join([]string{
		"## 1. Housing",
		"### Action Items",
		"- Draft the letter of support",
		"  - Owner: Richard Roe",
		"  - Due: 2025-04-01",
	}, "\n")

	ms := NewParser().Parse(doc)

	require.Len(t, ms.Topics[0].ActionItems, 1)
	item := ms.Topics[0].ActionItems[0]
	assert.Equal(t, "Richard Roe", item.Owner)
	assert.Equal(t, "2025-04-01", item.Due)
}

func TestParse_OrphanOwnerDueNotAttached(t *testing.T) {
	doc := strings.Join([]string{
		"## 1. Housing",
		"### Action Items",
		"Owner: Nobody",
		"Due: Never",
		"- Real task",
	}, "\n")

	ms := NewParser().Parse(doc)

	require.Len(t, ms.Topics[0].ActionItems, 1)
	item := ms.Topics[0].ActionItems[0]
	assert.Equal(t, "Real task", item.Task)
	assert.Empty(t, item.Owner)
	assert.Empty(t, item.Due)
}

func TestParse_SubsectionIsolation(t *testing.T) {
	doc := strings.Join([]string{
		"## 1. Zoning",
		"### Decisions",
		"- Approved variance",
		"### Action Items",
		"- Notify applicants",
	}, "\n")

	ms := NewParser().Parse(doc)

	topic := ms.Topics[0]
	assert.Equal(t, []string{"Approved variance"}, topic.Decisions)
	require.Len(t, topic.ActionItems, 1)
	assert.Equal(t, "Notify applicants", topic.ActionItems[0].Task)
}

func TestParse_BulletsBeforeSubsectionDropped(t *testing.T) {
	doc := strings.Join([]string{
		"## 1. Zoning",
		"- stray bullet before any subsection",
		"### Decisions",
		"- Approved variance",
	}, "\n")

	ms := NewParser().Parse(doc)

	assert.Equal(t, []string{"Approved variance"}, ms.Topics[0].Decisions)
	assert.Empty(t, ms.Topics[0].ActionItems)
}

func TestParse_EmptyTopicTolerated(t *testing.T) {
	doc := "## 1. Zoning\n## 2. Transportation\n"

	ms := NewParser().Parse(doc)

	require.Len(t, ms.Topics, 2)
	first := ms.Topics[0]
	assert.Equal(t, "Zoning", first.Title)
	assert.Empty(t, first.Summary)
	assert.Empty(t, first.Decisions)
	assert.Empty(t, first.ActionItems)
}

func TestParse_EmptyAndGarbageInput(t *testing.T) {
	p := NewParser()

	for _, doc := range []string{"", "\n\n\n", "just some prose\nwith no markers"} {
		ms := p.Parse(doc)
		assert.NotNil(t, ms)
		assert.Empty(t, ms.Topics)
		assert.Equal(t, entities.NotSpecified, ms.OverallSentiment)
	}
}

func TestParse_DateLineFallback(t *testing.T) {
	doc := "# Meeting Summary\n**Date:** 2025-03-04\n"
	ms := NewParser().Parse(doc)
	assert.Equal(t, "2025-03-04", ms.MeetingDate)
}

func TestParse_TitleDateWinsOverDateLine(t *testing.T) {
	doc := "# Meeting Summary — March 4\n**Date:** something else\n"
	ms := NewParser().Parse(doc)
	assert.Equal(t, "March 4", ms.MeetingDate)
}

func TestParse_OverviewIsSingleLine(t *testing.T) {
	doc := strings.Join([]string{
		"## Meeting Overview",
		"",
		"**Decisions Made:** 2",
		"First overview paragraph.",
		"Second paragraph must not be appended.",
	}, "\n")

	ms := NewParser().Parse(doc)
	assert.Equal(t, "First overview paragraph.", ms.Overview)
}

func TestParse_SummaryWhitespaceNormalized(t *testing.T) {
	doc := strings.Join([]string{
		"## 1. Parks",
		"### Summary",
		"Line   with    extra  spaces.",
		"   Indented continuation.   ",
	}, "\n")

	ms := NewParser().Parse(doc)
	assert.Equal(t, "Line with extra spaces. Indented continuation.", ms.Topics[0].Summary)
}
