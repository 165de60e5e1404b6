package entities

// NotSpecified is the default label for summary fields the backend did not fill in.
const NotSpecified = "Not specified"

// ActionItem is a task extracted from meeting discussion, optionally
// attributed to an owner and a due date.
type ActionItem struct {
	Task  string `json:"task"`
	Owner string `json:"owner,omitempty"`
	Due   string `json:"due,omitempty"`
}

// Topic is one discussion segment within a meeting summary. Topics are
// numbered 1..N in the order they appear in the source document.
type Topic struct {
	Number      int          `json:"number"`
	Title       string       `json:"title"`
	Speakers    string       `json:"speakers,omitempty"`
	Sentiment   string       `json:"sentiment,omitempty"`
	Summary     string       `json:"summary,omitempty"`
	Decisions   []string     `json:"decisions"`
	ActionItems []ActionItem `json:"action_items"`
}

// MeetingSummary is the structured form of one summary document. It is
// built fresh per document and never mutated afterwards.
type MeetingSummary struct {
	MeetingDate      string  `json:"meeting_date,omitempty"`
	Overview         string  `json:"overview"`
	OverallSentiment string  `json:"overall_sentiment"`
	Attendance       string  `json:"attendance"`
	Topics           []Topic `json:"topics"`
}

// NewMeetingSummary creates a MeetingSummary with defaulted fields.
func NewMeetingSummary() *MeetingSummary {
	return &MeetingSummary{
		OverallSentiment: NotSpecified,
		Attendance:       NotSpecified,
		Topics:           make([]Topic, 0),
	}
}
