package meeting

import (
	"github.com/boardwatchnyc/boardwatch/internal/domain/entities"
	"github.com/boardwatchnyc/boardwatch/internal/usecase/board"
	"github.com/boardwatchnyc/boardwatch/internal/usecase/report"
)

// JobResponse describes a processing job submission or status check
type JobResponse struct {
	JobID   string `json:"job_id"`
	VideoID string `json:"video_id,omitempty"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

// NewJobResponse converts a processing job to its response shape
func NewJobResponse(job *entities.ProcessingJob) *JobResponse {
	return &JobResponse{
		JobID:   job.JobID,
		VideoID: job.VideoID,
		Status:  job.Status,
		Error:   job.Error,
	}
}

// BoardResponse describes one community board
type BoardResponse struct {
	Number   int    `json:"number"`
	Name     string `json:"name"`
	District string `json:"district"`
	Channel  string `json:"channel,omitempty"`
}

// ListBoardsResponse contains all known community boards
type ListBoardsResponse struct {
	Boards []BoardResponse `json:"boards"`
	Total  int             `json:"total"`
}

// NewListBoardsResponse builds the boards listing from the registry
func NewListBoardsResponse(boards []entities.Board) *ListBoardsResponse {
	items := make([]BoardResponse, 0, len(boards))
	for _, b := range boards {
		items = append(items, BoardResponse{
			Number:   b.Number,
			Name:     b.Name,
			District: b.District,
			Channel:  b.Channel,
		})
	}
	return &ListBoardsResponse{Boards: items, Total: len(items)}
}

// MeetingItem represents one processed meeting in a listing
type MeetingItem struct {
	VideoID     string `json:"video_id"`
	Title       string `json:"title"`
	URL         string `json:"url,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
	ProcessedAt string `json:"processed_at,omitempty"`
	Status      string `json:"status"`
	Board       string `json:"board"`
	Summary     string `json:"summary,omitempty"`
}

// ListMeetingsResponse contains processed meetings for one board
type ListMeetingsResponse struct {
	Board    string        `json:"board"`
	Meetings []MeetingItem `json:"meetings"`
	Total    int           `json:"total"`
}

// NewListMeetingsResponse converts meeting records to their listing shape.
// The board label is recomputed from each title so mislabeled backend
// records still surface their own attribution.
func NewListMeetingsResponse(boardNumber int, meetings []entities.MeetingRecord) *ListMeetingsResponse {
	items := make([]MeetingItem, 0, len(meetings))
	for _, m := range meetings {
		item := MeetingItem{
			VideoID:     m.VideoID,
			Title:       m.Title,
			URL:         m.URL,
			PublishedAt: m.PublishedAt,
			ProcessedAt: m.ProcessedAt,
			Status:      m.Status,
			Board:       board.Label(m.Title),
		}
		if m.Analysis != nil {
			item.Summary = m.Analysis.Summary
		}
		items = append(items, item)
	}
	return &ListMeetingsResponse{
		Board:    board.LabelForNumber(boardNumber),
		Meetings: items,
		Total:    len(items),
	}
}

// ReportResponse is the full report for one analyzed meeting
type ReportResponse struct {
	VideoID     string                   `json:"video_id,omitempty"`
	Title       string                   `json:"title"`
	Board       string                   `json:"board"`
	BoardNumber int                      `json:"board_number,omitempty"`
	Markdown    string                   `json:"markdown"`
	HTML        string                   `json:"html"`
	Summary     *entities.MeetingSummary `json:"summary"`
}

// NewReportResponse converts a built report to its response shape
func NewReportResponse(r *report.Report) *ReportResponse {
	return &ReportResponse{
		VideoID:     r.VideoID,
		Title:       r.Title,
		Board:       r.Board,
		BoardNumber: r.BoardNumber,
		Markdown:    r.Markdown,
		HTML:        r.HTML,
		Summary:     r.Summary,
	}
}
