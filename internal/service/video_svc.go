package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/model"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/store"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/pkg/ident"
)

var ErrVideoNotFound = errors.New("video not found")

// VideoService implements the admin CRUD over the video catalog. Every
// mutation replaces the whole videos slice through the store and
// recomputes the advisory analytics snapshot.
type VideoService struct {
	store *store.DocumentStore
}

func NewVideoService(st *store.DocumentStore) *VideoService {
	return &VideoService{store: st}
}

// List returns the catalog in insertion order; display order is the
// caller's choice.
func (s *VideoService) List() []model.Video {
	return s.store.Document().Videos
}

// Create appends a new video with a generated id and today's date when
// none is given.
func (s *VideoService) Create(ctx context.Context, req model.VideoRequest) model.Video {
	video := model.Video{
		ID:          ident.NewID(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Thumbnail:   req.Thumbnail,
		URL:         req.URL,
		Views:       req.Views,
		Likes:       req.Likes,
		Date:        req.Date,
	}
	if video.Date == "" {
		video.Date = time.Now().UTC().Format("2006-01-02")
	}

	doc := s.store.Document()
	videos := append(doc.Videos, video)
	s.persist(ctx, videos, doc.Analytics)
	return video
}

// Update fully replaces the video with the matching id.
func (s *VideoService) Update(ctx context.Context, id string, req model.VideoRequest) (model.Video, error) {
	doc := s.store.Document()
	for i, v := range doc.Videos {
		if v.ID == id {
			updated := model.Video{
				ID:          id,
				Title:       req.Title,
				Description: req.Description,
				Category:    req.Category,
				Thumbnail:   req.Thumbnail,
				URL:         req.URL,
				Views:       req.Views,
				Likes:       req.Likes,
				Date:        req.Date,
			}
			if updated.Date == "" {
				updated.Date = v.Date
			}
			doc.Videos[i] = updated
			s.persist(ctx, doc.Videos, doc.Analytics)
			return updated, nil
		}
	}
	return model.Video{}, ErrVideoNotFound
}

// Delete removes the video with the matching id. Deleting a video does
// not create a recycle-bin entry; the two subsystems are independent.
func (s *VideoService) Delete(ctx context.Context, id string) error {
	doc := s.store.Document()
	videos := make([]model.Video, 0, len(doc.Videos))
	found := false
	for _, v := range doc.Videos {
		if v.ID == id {
			found = true
			continue
		}
		videos = append(videos, v)
	}
	if !found {
		return ErrVideoNotFound
	}
	s.persist(ctx, videos, doc.Analytics)
	return nil
}

func (s *VideoService) persist(ctx context.Context, videos []model.Video, prev model.Analytics) {
	analytics := ComputeAnalytics(videos, prev)
	s.store.Save(ctx, model.DocumentPatch{
		Videos:    &videos,
		Analytics: &analytics,
	})
}

// ComputeAnalytics rebuilds the derived snapshot from the catalog:
// totals and the category histogram sorted by count (name breaks ties).
// The monthly-views series has no source of truth in the catalog and is
// carried over unchanged.
func ComputeAnalytics(videos []model.Video, prev model.Analytics) model.Analytics {
	out := model.Analytics{
		TotalVideos:  len(videos),
		MonthlyViews: prev.MonthlyViews,
	}

	counts := make(map[string]int)
	for _, v := range videos {
		out.TotalViews += v.Views
		out.TotalLikes += v.Likes
		if v.Category != "" {
			counts[v.Category]++
		}
	}

	out.TopCategories = make([]model.CategoryCount, 0, len(counts))
	for name, count := range counts {
		out.TopCategories = append(out.TopCategories, model.CategoryCount{Name: name, Count: count})
	}
	sort.Slice(out.TopCategories, func(i, j int) bool {
		if out.TopCategories[i].Count != out.TopCategories[j].Count {
			return out.TopCategories[i].Count > out.TopCategories[j].Count
		}
		return out.TopCategories[i].Name < out.TopCategories[j].Name
	})

	return out
}
