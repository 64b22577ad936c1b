package model

// Video represents one entry of the portfolio video catalog.
type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Thumbnail   string `json:"thumbnail"`
	URL         string `json:"url"`
	Views       int    `json:"views"`
	Likes       int    `json:"likes"`
	Date        string `json:"date"` // ISO date, e.g. 2025-01-15
}

// VideoRequest is the API request body for creating or replacing a video.
type VideoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Thumbnail   string `json:"thumbnail"`
	URL         string `json:"url"`
	Views       int    `json:"views"`
	Likes       int    `json:"likes"`
	Date        string `json:"date,omitempty"`
}
