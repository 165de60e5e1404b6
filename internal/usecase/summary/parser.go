package summary

import (
	"regexp"
	"strings"

	"github.com/boardwatchnyc/boardwatch/internal/domain/entities"
)

// Parser converts the backend's fixed summary dialect into a structured
// MeetingSummary. The dialect is producer-controlled (the backend's own
// rendering step emits it), so parsing is permissive: unrecognized input
// yields empty or defaulted fields and never an error.
//
// Recognized lines, in precedence order:
//
//	# Meeting Summary — <date>
//	## Meeting Overview            (next plain line becomes the overview)
//	**Overall Sentiment:** <text>  (anywhere, also inside pipe-joined stat lines)
//	**Attendance:** <text>
//	## <n>. <topic title>
//	**Speakers:** / **Sentiment:** (inside a topic)
//	### Summary / ### Decisions / ### Action Items
//	- <bullet>                     (interpreted per active subsection)
type Parser struct{}

// NewParser creates a new Parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// subsection is the parser's cursor within the current topic.
type subsection int

const (
	subNone subsection = iota
	subSummary
	subDecisions
	subActionItems
)

var (
	titleRe       = regexp.MustCompile(`(?i)^#\s+Meeting Summary\s*(?:[-—–:]\s*)?(.*)$`)
	overviewRe    = regexp.MustCompile(`(?i)^##\s+Meeting Overview\s*$`)
	topicRe       = regexp.MustCompile(`^##\s*(\d+)\.\s*(.+)$`)
	subSummaryRe  = regexp.MustCompile(`(?i)^###\s+Summary\s*$`)
	subDecisionRe = regexp.MustCompile(`(?i)^###\s+Decisions\s*$`)
	subActionRe   = regexp.MustCompile(`(?i)^###\s+Action Items\s*$`)

	sentimentRe  = regexp.MustCompile(`\*\*Overall Sentiment:\*\*\s*([^|]*)`)
	attendanceRe = regexp.MustCompile(`\*\*Attendance:\*\*\s*([^|]*)`)
	dateRe       = regexp.MustCompile(`\*\*Date:\*\*\s*([^|]*)`)
	speakersRe   = regexp.MustCompile(`^\*\*Speakers:\*\*\s*(.*)$`)
	topicSentRe  = regexp.MustCompile(`^\*\*Sentiment:\*\*\s*(.*)$`)
)

// Parse scans the document once, left to right. It is safe for concurrent
// use: all state is local to the call.
func (p *Parser) Parse(document string) *entities.MeetingSummary {
	ms := entities.NewMeetingSummary()

	lines := strings.Split(document, "\n")

	var (
		cur          *entities.Topic
		sub          = subNone
		summaryParts []string
		wantOverview bool
	)

	flush := func() {
		if cur == nil {
			return
		}
		cur.Summary = strings.Join(summaryParts, " ")
		ms.Topics = append(ms.Topics, *cur)
		cur = nil
		summaryParts = nil
	}

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		if m := titleRe.FindStringSubmatch(line); m != nil {
			ms.MeetingDate = strings.TrimSpace(m[1])
			continue
		}

		if overviewRe.MatchString(line) {
			wantOverview = true
			continue
		}

		// Document-level bold metadata. The backend may join several of
		// these on one line separated by " | ", so they are matched as
		// substrings rather than line prefixes.
		if p.scanDocumentMetadata(line, ms) {
			continue
		}

		if m := topicRe.FindStringSubmatch(line); m != nil {
			flush()
			cur = &entities.Topic{
				Number:      len(ms.Topics) + 1,
				Title:       strings.TrimSpace(m[2]),
				Decisions:   make([]string, 0),
				ActionItems: make([]entities.ActionItem, 0),
			}
			sub = subNone
			wantOverview = false
			continue
		}

		if cur != nil {
			if m := speakersRe.FindStringSubmatch(line); m != nil {
				cur.Speakers = strings.TrimSpace(m[1])
				continue
			}
			if m := topicSentRe.FindStringSubmatch(line); m != nil {
				cur.Sentiment = strings.TrimSpace(m[1])
				continue
			}

			switch {
			case subSummaryRe.MatchString(line):
				sub = subSummary
				continue
			case subDecisionRe.MatchString(line):
				sub = subDecisions
				continue
			case subActionRe.MatchString(line):
				sub = subActionItems
				continue
			}

			if strings.HasPrefix(line, "- ") {
				item := strings.TrimSpace(strings.TrimPrefix(line, "- "))
				switch sub {
				case subDecisions:
					cur.Decisions = append(cur.Decisions, item)
				case subActionItems:
					i = p.consumeActionItem(lines, i, item, cur)
				case subSummary:
					summaryParts = append(summaryParts, normalizeSpace(item))
				}
				// Bullets before any subsection marker are dropped.
				continue
			}

			if sub == subSummary {
				summaryParts = append(summaryParts, normalizeSpace(line))
			}
			// Anything else inside a topic is dropped silently.
			continue
		}

		if wantOverview {
			if strings.HasPrefix(line, "**") {
				continue
			}
			ms.Overview = normalizeSpace(line)
			wantOverview = false
		}
	}

	flush()
	return ms
}

// scanDocumentMetadata assigns document-level bold fields. Returns true
// when the line carried at least one known key and is therefore consumed.
func (p *Parser) scanDocumentMetadata(line string, ms *entities.MeetingSummary) bool {
	handled := false
	if m := sentimentRe.FindStringSubmatch(line); m != nil {
		ms.OverallSentiment = strings.TrimSpace(m[1])
		handled = true
	}
	if m := attendanceRe.FindStringSubmatch(line); m != nil {
		ms.Attendance = strings.TrimSpace(m[1])
		handled = true
	}
	if m := dateRe.FindStringSubmatch(line); m != nil {
		if ms.MeetingDate == "" {
			ms.MeetingDate = strings.TrimSpace(m[1])
		}
		handled = true
	}
	return handled
}

// consumeActionItem builds an ActionItem from a task bullet at index i and
// consumes immediately following Owner:/Due: detail lines. Detail lines are
// only honored as lookahead here; a free-floating Owner:/Due: line anywhere
// else is never attached to an item. Returns the index of the last consumed
// line.
func (p *Parser) consumeActionItem(lines []string, i int, task string, topic *entities.Topic) int {
	item := entities.ActionItem{Task: task}
	for i+1 < len(lines) {
		next := strings.TrimSpace(lines[i+1])
		if v, ok := detailValue(next, "Owner:"); ok && item.Owner == "" {
			item.Owner = v
			i++
			continue
		}
		if v, ok := detailValue(next, "Due:"); ok && item.Due == "" {
			item.Due = v
			i++
			continue
		}
		break
	}
	topic.ActionItems = append(topic.ActionItems, item)
	return i
}

// detailValue extracts the text following a "Owner:"-style marker. The
// marker may sit inside an indented sub-bullet ("  - Owner: Jane").
func detailValue(line, marker string) (string, bool) {
	idx := strings.Index(line, marker)
	if idx < 0 {
		return "", false
	}
	return strings.TrimSpace(line[idx+len(marker):]), true
}

// normalizeSpace collapses runs of whitespace into single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
