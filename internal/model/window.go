package model

import "time"

// OpenWindow is a positioned, titled window managed by the window manager.
// Windows are in-memory only; they are never persisted with the Document.
type OpenWindow struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"` // opaque content handle owned by the caller
	X        int       `json:"x"`
	Y        int       `json:"y"`
	Width    int       `json:"width"`
	Height   int       `json:"height"`
	Focused  bool      `json:"focused"`
	OpenedAt time.Time `json:"openedAt"`
}

// WindowSpec is the API request body for opening a window. The ID is
// assigned server-side when absent. Two opens with the same title yield
// two independent windows.
type WindowSpec struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"title"`
	Content string `json:"content"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

// WindowMoveRequest updates a window's position only.
type WindowMoveRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// WindowListResponse lists a session's windows. Z-order is derived:
// the focused window renders above all others, the rest keep insertion
// order.
type WindowListResponse struct {
	Windows   []OpenWindow `json:"windows"`
	FocusedID string       `json:"focusedId,omitempty"`
}
