package model

// Review moderation states. A review starts pending and is moved to
// approved or rejected exactly once by the admin surface.
const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
	ReviewRejected = "rejected"
)

// Review is a client-submitted rating with a moderation status.
type Review struct {
	ID         string `json:"id"`
	ClientName string `json:"clientName"`
	Email      string `json:"email"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	AdminNote  string `json:"adminNote,omitempty"`
}

// ReviewRequest is the public submission body. Field-shape rules are
// expressed as validator tags; content rules (spam tokens, duplicate
// email, repeated runs) are checked by the review service.
type ReviewRequest struct {
	ClientName string `json:"clientName" validate:"required,min=2,max=50"`
	Email      string `json:"email" validate:"required,email"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" validate:"required,min=10,max=1000"`
}

// ReviewListResponse is the public review listing: approved reviews only,
// plus their average rating.
type ReviewListResponse struct {
	Reviews       []Review `json:"reviews"`
	AverageRating float64  `json:"averageRating"`
}
