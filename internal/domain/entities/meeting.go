package entities

// KeyDecision is one decision record in the backend's analysis JSON.
type KeyDecision struct {
	Item    string `json:"item"`
	Outcome string `json:"outcome"`
	Vote    string `json:"vote,omitempty"`
	Details string `json:"details,omitempty"`
}

// Analysis is the structured output of the backend's AI analysis step.
// SummaryMarkdown, when present, is the pre-rendered summary document in
// the fixed dialect the parser understands; when absent an equivalent
// document is synthesized from the remaining fields.
type Analysis struct {
	Summary         string        `json:"summary"`
	KeyDecisions    []KeyDecision `json:"keyDecisions"`
	PublicConcerns  []string      `json:"publicConcerns"`
	NextSteps       []string      `json:"nextSteps"`
	Sentiment       string        `json:"sentiment"`
	Attendance      string        `json:"attendance"`
	MainTopics      []string      `json:"mainTopics"`
	ImportantDates  []string      `json:"importantDates,omitempty"`
	SummaryMarkdown string        `json:"summary_markdown,omitempty"`
}

// MeetingRecord is one entry of the backend's meetings listing.
type MeetingRecord struct {
	VideoID     string    `json:"video_id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	PublishedAt string    `json:"published_at,omitempty"`
	ProcessedAt string    `json:"processed_at,omitempty"`
	Status      string    `json:"status"`
	CBNumber    int       `json:"cb_number,omitempty"`
	Analysis    *Analysis `json:"analysis,omitempty"`
}

// Processing job statuses as reported by the backend.
const (
	JobStatusPending    = "pending"
	JobStatusProcessing = "processing"
	JobStatusCompleted  = "completed"
	JobStatusFailed     = "failed"
)

// ProcessingJob tracks one submitted video through the backend pipeline.
type ProcessingJob struct {
	JobID    string    `json:"job_id"`
	VideoID  string    `json:"video_id,omitempty"`
	Title    string    `json:"title,omitempty"`
	URL      string    `json:"url,omitempty"`
	Status   string    `json:"status"`
	Error    string    `json:"error,omitempty"`
	Analysis *Analysis `json:"analysis,omitempty"`
}

// Done reports whether the job reached a terminal state.
func (j *ProcessingJob) Done() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusFailed
}
