package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/model"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/store"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/pkg/ident"
)

var ErrReviewNotFound = errors.New("review not found")

// Spam tokens rejected in both the client name and the comment
// (case-insensitive substring match).
var spamTokens = []string{"fake", "spam", "bot", "test123", "aaaaaa", "lorem ipsum"}

// repeatedRunLimit is the length of a same-character run that marks a
// comment as spam.
const repeatedRunLimit = 5

// ReviewService handles public review submission and admin moderation.
type ReviewService struct {
	store    *store.DocumentStore
	validate *validator.Validate
}

func NewReviewService(st *store.DocumentStore) *ReviewService {
	return &ReviewService{
		store:    st,
		validate: validator.New(),
	}
}

// Submit validates a public submission and, when clean, appends a
// pending review and persists. All violated rules are reported together;
// on any violation nothing is mutated.
func (s *ReviewService) Submit(ctx context.Context, req model.ReviewRequest) (model.Review, []string) {
	violations := s.validateRequest(req)
	if len(violations) > 0 {
		return model.Review{}, violations
	}

	review := model.Review{
		ID:         ident.NewID(),
		ClientName: req.ClientName,
		Email:      req.Email,
		Rating:     req.Rating,
		Comment:    req.Comment,
		Date:       time.Now().UTC().Format("2006-01-02"),
		Status:     model.ReviewPending,
	}

	doc := s.store.Document()
	reviews := append(doc.Reviews, review)
	s.store.Save(ctx, model.DocumentPatch{Reviews: &reviews})
	return review, nil
}

func (s *ReviewService) validateRequest(req model.ReviewRequest) []string {
	var violations []string

	if err := s.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				violations = append(violations, fieldMessage(fe))
			}
		} else {
			violations = append(violations, "invalid submission")
		}
	}

	if containsSpamToken(req.ClientName) || containsSpamToken(req.Comment) {
		violations = append(violations, "content flagged as spam")
	}

	if s.emailAlreadyUsed(req.Email) {
		violations = append(violations, "a review already exists for this email address")
	}

	if hasRepeatedRun(req.Comment, repeatedRunLimit) {
		violations = append(violations, "comment contains repeated characters")
	}

	return violations
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.StructField() {
	case "ClientName":
		return "client name must be between 2 and 50 characters"
	case "Email":
		return "email must be a valid address"
	case "Rating":
		return "rating must be between 1 and 5"
	case "Comment":
		return "comment must be between 10 and 1000 characters"
	default:
		return "invalid field: " + fe.Field()
	}
}

func containsSpamToken(text string) bool {
	lower := strings.ToLower(text)
	for _, token := range spamTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

// hasRepeatedRun reports whether s contains the same rune repeated
// limit or more times in a row.
func hasRepeatedRun(s string, limit int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
			if run >= limit {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

func (s *ReviewService) emailAlreadyUsed(email string) bool {
	for _, r := range s.store.Document().Reviews {
		if r.Email == email {
			return true
		}
	}
	return false
}

// All returns every review regardless of status (admin listing).
func (s *ReviewService) All() []model.Review {
	return s.store.Document().Reviews
}

// Approved returns the public listing: approved reviews and their
// average rating.
func (s *ReviewService) Approved() model.ReviewListResponse {
	var approved []model.Review
	sum := 0
	for _, r := range s.store.Document().Reviews {
		if r.Status == model.ReviewApproved {
			approved = append(approved, r)
			sum += r.Rating
		}
	}
	resp := model.ReviewListResponse{Reviews: approved}
	if len(approved) > 0 {
		resp.AverageRating = float64(sum) / float64(len(approved))
	}
	if resp.Reviews == nil {
		resp.Reviews = []model.Review{}
	}
	return resp
}

// Approve moves a pending review to approved. Reviews in any other
// status are left untouched (idempotent no-op).
func (s *ReviewService) Approve(ctx context.Context, id, adminNote string) (model.Review, error) {
	return s.transition(ctx, id, model.ReviewApproved, adminNote)
}

// Reject moves a pending review to rejected, same no-op rule as Approve.
func (s *ReviewService) Reject(ctx context.Context, id, adminNote string) (model.Review, error) {
	return s.transition(ctx, id, model.ReviewRejected, adminNote)
}

func (s *ReviewService) transition(ctx context.Context, id, status, adminNote string) (model.Review, error) {
	doc := s.store.Document()
	for i, r := range doc.Reviews {
		if r.ID != id {
			continue
		}
		if r.Status != model.ReviewPending {
			return r, nil
		}
		doc.Reviews[i].Status = status
		if adminNote != "" {
			doc.Reviews[i].AdminNote = adminNote
		}
		s.store.Save(ctx, model.DocumentPatch{Reviews: &doc.Reviews})
		return doc.Reviews[i], nil
	}
	return model.Review{}, ErrReviewNotFound
}

// Delete removes a review regardless of status.
func (s *ReviewService) Delete(ctx context.Context, id string) error {
	doc := s.store.Document()
	reviews := make([]model.Review, 0, len(doc.Reviews))
	found := false
	for _, r := range doc.Reviews {
		if r.ID == id {
			found = true
			continue
		}
		reviews = append(reviews, r)
	}
	if !found {
		return ErrReviewNotFound
	}
	s.store.Save(ctx, model.DocumentPatch{Reviews: &reviews})
	return nil
}

// Purge removes every review with the given status and returns how many
// were dropped.
func (s *ReviewService) Purge(ctx context.Context, status string) int {
	doc := s.store.Document()
	kept := make([]model.Review, 0, len(doc.Reviews))
	removed := 0
	for _, r := range doc.Reviews {
		if r.Status == status {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	if removed > 0 {
		s.store.Save(ctx, model.DocumentPatch{Reviews: &kept})
	}
	return removed
}
