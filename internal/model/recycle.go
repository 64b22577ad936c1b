package model

// Recycle item types.
const (
	RecycleImage  = "image"
	RecycleText   = "text"
	RecycleVideo  = "video"
	RecycleFolder = "folder"
)

// RecycleItem is a simulated "deleted file". Items are created manually
// through the admin surface; they are not the result of deleting records
// elsewhere in the system.
type RecycleItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Size         string `json:"size,omitempty"` // display string, not a byte count
	DateDeleted  string `json:"dateDeleted"`
	Content      string `json:"content,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
	VideoURL     string `json:"videoUrl,omitempty"`
	OriginalPath string `json:"originalPath,omitempty"`
	Thumbnail    string `json:"thumbnail,omitempty"`
}

// RecycleItemRequest is the API request body for adding an item to the bin.
// ID and deletion timestamp are generated server-side.
type RecycleItemRequest struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Size         string `json:"size,omitempty"`
	Content      string `json:"content,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
	VideoURL     string `json:"videoUrl,omitempty"`
	OriginalPath string `json:"originalPath,omitempty"`
	Thumbnail    string `json:"thumbnail,omitempty"`
}
