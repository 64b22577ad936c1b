package model

// Document is the root aggregate holding all persisted application state.
// It is the single source of truth: every surface reads and writes through
// the document store, never through private copies.
type Document struct {
	Videos     []Video       `json:"videos"`
	RecycleBin []RecycleItem `json:"recycleBin"`
	Analytics  Analytics     `json:"analytics"`
	Reviews    []Review      `json:"reviews"`
	Settings   Settings      `json:"settings"`
	LastSaved  string        `json:"lastSaved"`
	Version    string        `json:"version"`
}

// DocumentPatch is a partial Document for top-level shallow merges.
// Array fields are whole replacement values, not deltas.
type DocumentPatch struct {
	Videos     *[]Video       `json:"videos,omitempty"`
	RecycleBin *[]RecycleItem `json:"recycleBin,omitempty"`
	Analytics  *Analytics     `json:"analytics,omitempty"`
	Reviews    *[]Review      `json:"reviews,omitempty"`
	Settings   *Settings      `json:"settings,omitempty"`
}

// Settings is the mutable singleton nested in the Document.
type Settings struct {
	AutoSave       bool   `json:"autoSave"`
	Theme          string `json:"theme"`
	Notifications  bool   `json:"notifications"`
	SyncInterval   int    `json:"syncInterval"` // milliseconds
	ProfilePicture string `json:"profilePicture"`
	DisplayName    string `json:"displayName"`
}

// Analytics is a derived snapshot of catalog aggregates. It is advisory
// only and is not required to stay perfectly in sync with the catalog.
type Analytics struct {
	TotalViews    int             `json:"totalViews"`
	TotalVideos   int             `json:"totalVideos"`
	TotalLikes    int             `json:"totalLikes"`
	MonthlyViews  []int           `json:"monthlyViews"`
	TopCategories []CategoryCount `json:"topCategories"`
}

// CategoryCount is one bucket of the category histogram.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Clone returns a deep copy of the Document so callers can hand it out
// without exposing the store's internal slices.
func (d Document) Clone() Document {
	out := d
	out.Videos = append([]Video(nil), d.Videos...)
	out.RecycleBin = append([]RecycleItem(nil), d.RecycleBin...)
	out.Reviews = append([]Review(nil), d.Reviews...)
	out.Analytics.MonthlyViews = append([]int(nil), d.Analytics.MonthlyViews...)
	out.Analytics.TopCategories = append([]CategoryCount(nil), d.Analytics.TopCategories...)
	return out
}
