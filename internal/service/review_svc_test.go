package service

import (
	"context"
	"strings"
	"testing"

	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/model"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/storage"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/store"
)

func newTestStore(t *testing.T) *store.DocumentStore {
	t.Helper()
	s := store.New(storage.NewMemoryBackend())
	s.Load(context.Background())
	return s
}

func validReview() model.ReviewRequest {
	return model.ReviewRequest{
		ClientName: "Al",
		Email:      "al@example.com",
		Rating:     5,
		Comment:    "Great work on my project!!",
	}
}

func hasViolation(violations []string, substr string) bool {
	for _, v := range violations {
		if strings.Contains(v, substr) {
			return true
		}
	}
	return false
}

func TestSubmit_ValidReviewIsPending(t *testing.T) {
	st := newTestStore(t)
	svc := NewReviewService(st)

	review, violations := svc.Submit(context.Background(), validReview())
	if len(violations) != 0 {
		t.Fatalf("unexpected violations: %v", violations)
	}
	if review.ID == "" {
		t.Error("submitted review should get an id")
	}
	if review.Status != model.ReviewPending {
		t.Errorf("status = %q, want pending", review.Status)
	}
	if review.Date == "" {
		t.Error("submitted review should be dated")
	}

	if got := len(st.Document().Reviews); got != 4 {
		t.Errorf("stored reviews = %d, want 4 (3 defaults + 1)", got)
	}
}

func TestSubmit_DuplicateEmailSingleViolation(t *testing.T) {
	st := newTestStore(t)
	svc := NewReviewService(st)

	req := validReview()
	req.Email = "gamemaster.yt@gmail.com" // already on a default review

	_, violations := svc.Submit(context.Background(), req)
	if len(violations) != 1 {
		t.Fatalf("violations = %v, want exactly the duplicate-email one", violations)
	}
	if !hasViolation(violations, "already exists") {
		t.Errorf("violations = %v, want duplicate-email message", violations)
	}
	if got := len(st.Document().Reviews); got != 3 {
		t.Errorf("stored reviews = %d, want 3 (rejected submission must not mutate)", got)
	}
}

func TestSubmit_RuleViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.ReviewRequest)
		want   string
	}{
		{"name too short", func(r *model.ReviewRequest) { r.ClientName = "A" }, "client name"},
		{"name too long", func(r *model.ReviewRequest) { r.ClientName = strings.Repeat("x", 51) }, "client name"},
		{"invalid email", func(r *model.ReviewRequest) { r.Email = "not-an-email" }, "email"},
		{"rating zero", func(r *model.ReviewRequest) { r.Rating = 0 }, "rating"},
		{"rating six", func(r *model.ReviewRequest) { r.Rating = 6 }, "rating"},
		{"comment too short", func(r *model.ReviewRequest) { r.Comment = "too short" }, "comment"},
		{"comment too long", func(r *model.ReviewRequest) { r.Comment = strings.Repeat("x", 1001) }, "comment"},
		{"spam token in name", func(r *model.ReviewRequest) { r.ClientName = "FakeClient" }, "spam"},
		{"spam token in comment", func(r *model.ReviewRequest) { r.Comment = "lorem ipsum dolor sit amet" }, "spam"},
		{"spam token case insensitive", func(r *model.ReviewRequest) { r.Comment = "this is totally SPAM content" }, "spam"},
		{"repeated characters", func(r *model.ReviewRequest) { r.Comment = "Sooooo good, highly recommend" }, "repeated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestStore(t)
			svc := NewReviewService(st)

			req := validReview()
			tt.mutate(&req)

			_, violations := svc.Submit(context.Background(), req)
			if len(violations) == 0 {
				t.Fatal("expected violations, got none")
			}
			if !hasViolation(violations, tt.want) {
				t.Errorf("violations = %v, want one mentioning %q", violations, tt.want)
			}
			if got := len(st.Document().Reviews); got != 3 {
				t.Errorf("stored reviews = %d, want 3 unchanged", got)
			}
		})
	}
}

func TestSubmit_AllViolationsReportedTogether(t *testing.T) {
	st := newTestStore(t)
	svc := NewReviewService(st)

	req := model.ReviewRequest{
		ClientName: "F", // too short
		Email:      "bad",
		Rating:     0,
		Comment:    "spam!", // too short and a spam token
	}

	_, violations := svc.Submit(context.Background(), req)
	if len(violations) < 4 {
		t.Errorf("violations = %v, want every broken rule reported", violations)
	}
}

func TestHasRepeatedRun(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"five in a row", "aaaaa", true},
		{"four in a row", "aaaab", false},
		{"run mid string", "good griiiiief", true},
		{"alternating", "ababababab", false},
		{"empty", "", false},
		{"unicode run", "ууууу", true},
		{"spaces run", "a     b", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasRepeatedRun(tt.input, repeatedRunLimit); got != tt.want {
				t.Errorf("hasRepeatedRun(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestApprove_PendingOnly(t *testing.T) {
	st := newTestStore(t)
	svc := NewReviewService(st)

	review, _ := svc.Submit(context.Background(), validReview())

	approved, err := svc.Approve(context.Background(), review.ID, "looks genuine")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != model.ReviewApproved {
		t.Errorf("status = %q, want approved", approved.Status)
	}
	if approved.AdminNote != "looks genuine" {
		t.Errorf("adminNote = %q, want the moderation note", approved.AdminNote)
	}

	// Second approve is a no-op, not an error
	again, err := svc.Approve(context.Background(), review.ID, "second pass")
	if err != nil {
		t.Fatalf("re-approve: %v", err)
	}
	if again.AdminNote != "looks genuine" {
		t.Error("re-approving must not rewrite the review")
	}

	// Rejecting an approved review is also a no-op
	still, err := svc.Reject(context.Background(), review.ID, "")
	if err != nil {
		t.Fatalf("reject approved: %v", err)
	}
	if still.Status != model.ReviewApproved {
		t.Errorf("status = %q, approved review must stay approved", still.Status)
	}
}

func TestReject_Pending(t *testing.T) {
	st := newTestStore(t)
	svc := NewReviewService(st)

	review, _ := svc.Submit(context.Background(), validReview())
	rejected, err := svc.Reject(context.Background(), review.ID, "")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != model.ReviewRejected {
		t.Errorf("status = %q, want rejected", rejected.Status)
	}
}

func TestModeration_UnknownID(t *testing.T) {
	svc := NewReviewService(newTestStore(t))

	if _, err := svc.Approve(context.Background(), "missing", ""); err != ErrReviewNotFound {
		t.Errorf("approve unknown = %v, want ErrReviewNotFound", err)
	}
	if _, err := svc.Reject(context.Background(), "missing", ""); err != ErrReviewNotFound {
		t.Errorf("reject unknown = %v, want ErrReviewNotFound", err)
	}
}

func TestApproved_AverageRating(t *testing.T) {
	svc := NewReviewService(newTestStore(t))

	resp := svc.Approved()
	if len(resp.Reviews) != 3 {
		t.Fatalf("approved = %d, want the 3 defaults", len(resp.Reviews))
	}
	// Default ratings are 5, 5, 4
	want := 14.0 / 3.0
	if resp.AverageRating < want-0.001 || resp.AverageRating > want+0.001 {
		t.Errorf("averageRating = %f, want %f", resp.AverageRating, want)
	}
}

func TestApproved_ExcludesPendingAndRejected(t *testing.T) {
	st := newTestStore(t)
	svc := NewReviewService(st)

	pending, _ := svc.Submit(context.Background(), validReview())

	resp := svc.Approved()
	for _, r := range resp.Reviews {
		if r.ID == pending.ID {
			t.Error("pending review leaked into the public listing")
		}
	}
}

func TestApproved_EmptyListIsNotNil(t *testing.T) {
	st := newTestStore(t)
	none := []model.Review{}
	st.Save(context.Background(), model.DocumentPatch{Reviews: &none})

	resp := NewReviewService(st).Approved()
	if resp.Reviews == nil {
		t.Error("empty listing must serialize as [], not null")
	}
	if resp.AverageRating != 0 {
		t.Errorf("averageRating = %f, want 0 with no reviews", resp.AverageRating)
	}
}

func TestDelete_AnyStatus(t *testing.T) {
	st := newTestStore(t)
	svc := NewReviewService(st)

	if err := svc.Delete(context.Background(), "1"); err != nil {
		t.Fatalf("delete approved default: %v", err)
	}
	if got := len(st.Document().Reviews); got != 2 {
		t.Errorf("reviews = %d, want 2", got)
	}
	if err := svc.Delete(context.Background(), "1"); err != ErrReviewNotFound {
		t.Errorf("second delete = %v, want ErrReviewNotFound", err)
	}
}

func TestPurge_RemovesOnlyMatchingStatus(t *testing.T) {
	st := newTestStore(t)
	svc := NewReviewService(st)

	first, _ := svc.Submit(context.Background(), validReview())
	second := validReview()
	second.Email = "other@example.com"
	svc.Submit(context.Background(), second)
	svc.Reject(context.Background(), first.ID, "")

	if removed := svc.Purge(context.Background(), model.ReviewPending); removed != 1 {
		t.Errorf("purge pending = %d, want 1", removed)
	}
	if removed := svc.Purge(context.Background(), model.ReviewRejected); removed != 1 {
		t.Errorf("purge rejected = %d, want 1", removed)
	}
	if removed := svc.Purge(context.Background(), model.ReviewPending); removed != 0 {
		t.Errorf("re-purge = %d, want 0", removed)
	}
	if got := len(st.Document().Reviews); got != 3 {
		t.Errorf("reviews = %d, approved defaults must survive purges", got)
	}
}
