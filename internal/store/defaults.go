package store

import (
	"time"

	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/model"
)

// SchemaVersion is carried through export/import for forward
// compatibility checks. It never gates acceptance of a snapshot.
const SchemaVersion = "1.0.0"

// DefaultDocument returns the seed Document used on first run and as the
// merge base for loads and imports.
func DefaultDocument() model.Document {
	return model.Document{
		Videos: []model.Video{
			{
				ID:          "1",
				Title:       "Brookhaven RP - Dream house build",
				Description: "Building and decorating the perfect house in Brookhaven RP",
				Category:    "Building",
				Thumbnail:   "https://images.pexels.com/photos/2835436/pexels-photo-2835436.jpeg",
				URL:         "https://www.youtube.com/watch?v=example1",
				Views:       245000,
				Likes:       12400,
				Date:        "2025-01-15",
			},
			{
				ID:          "2",
				Title:       "Adopt Me - Trading legendary pets",
				Description: "Trading session with my rarest pets!",
				Category:    "Gaming",
				Thumbnail:   "https://images.pexels.com/photos/2835436/pexels-photo-2835436.jpeg",
				URL:         "https://www.youtube.com/watch?v=example2",
				Views:       180000,
				Likes:       9200,
				Date:        "2025-01-10",
			},
			{
				ID:          "3",
				Title:       "Doors - Surviving the impossible floors",
				Description: "Full guide to beating the hardest floors",
				Category:    "Horror",
				Thumbnail:   "https://images.pexels.com/photos/2835436/pexels-photo-2835436.jpeg",
				URL:         "https://www.youtube.com/watch?v=example3",
				Views:       320000,
				Likes:       18500,
				Date:        "2025-01-05",
			},
		},
		RecycleBin: []model.RecycleItem{
			{
				ID:          "1",
				Name:        "screenshot_brookhaven.png",
				Type:        model.RecycleImage,
				Thumbnail:   "https://images.pexels.com/photos/2835436/pexels-photo-2835436.jpeg",
				DateDeleted: "2025-01-20",
			},
			{
				ID:          "2",
				Name:        "old_notes.txt",
				Type:        model.RecycleText,
				Content:     "Draft ideas for the next montage.\nNote: demo content.",
				DateDeleted: "2025-01-18",
			},
			{
				ID:          "3",
				Name:        "old_intro_video.mp4",
				Type:        model.RecycleVideo,
				Thumbnail:   "https://images.pexels.com/photos/2835436/pexels-photo-2835436.jpeg",
				DateDeleted: "2025-01-15",
			},
			{
				ID:          "4",
				Name:        "Templates",
				Type:        model.RecycleFolder,
				DateDeleted: "2025-01-12",
			},
		},
		Analytics: model.Analytics{
			TotalViews:  1000000,
			TotalVideos: 35,
			TotalLikes:  45000,
			MonthlyViews: []int{
				45000, 52000, 48000, 67000, 71000, 65000,
				82000, 78000, 89000, 95000, 88000, 92000,
			},
			TopCategories: []model.CategoryCount{
				{Name: "Gaming", Count: 15},
				{Name: "Building", Count: 8},
				{Name: "Horror", Count: 6},
				{Name: "Tutorial", Count: 4},
				{Name: "Comedy", Count: 2},
			},
		},
		Reviews: []model.Review{
			{
				ID:         "1",
				ClientName: "GameMaster_YT",
				Email:      "gamemaster.yt@gmail.com",
				Rating:     5,
				Comment:    "Incredible editing! My Brookhaven clips were turned into a masterpiece. Smooth transitions, perfect effects, beyond my expectations.",
				Date:       "2025-01-18",
				Status:     model.ReviewApproved,
				AdminNote:  "Verified client - excellent feedback",
			},
			{
				ID:         "2",
				ClientName: "RobloxPro_2024",
				Email:      "robloxpro.2024@outlook.fr",
				Rating:     5,
				Comment:    "Fast and professional. My Adopt Me edit gained 50K extra views thanks to this work. A true gaming content expert!",
				Date:       "2025-01-15",
				Status:     model.ReviewApproved,
				AdminNote:  "Proven results - premium client",
			},
			{
				ID:         "3",
				ClientName: "NoobGamer_FR",
				Email:      "noobgamer.fr@yahoo.com",
				Rating:     4,
				Comment:    "Great work on my horror games montage. Asked for a few small tweaks but the final result is excellent. Top communication!",
				Date:       "2025-01-12",
				Status:     model.ReviewApproved,
				AdminNote:  "Returning client - constructive feedback",
			},
		},
		Settings: model.Settings{
			AutoSave:       true,
			Theme:          "default",
			Notifications:  true,
			SyncInterval:   30000,
			ProfilePicture: "https://images.pexels.com/photos/2338407/pexels-photo-2338407.jpeg",
			DisplayName:    "Linolvt",
		},
		LastSaved: time.Now().UTC().Format(time.RFC3339),
		Version:   SchemaVersion,
	}
}
