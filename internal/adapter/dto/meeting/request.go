package meeting

// ProcessYouTubeRequest represents the request to process a YouTube video
type ProcessYouTubeRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// ListMeetingsRequest represents query parameters for listing meetings
type ListMeetingsRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}
