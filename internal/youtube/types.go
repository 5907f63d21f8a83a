package youtube

// VideoRecord is one row of a channel's video grid, normalized from the
// page's renderer tree. Text fields carry the source's display strings
// ("3 days ago", "12K views", "10:32") verbatim.
type VideoRecord struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	PublishedAt  string `json:"published_at"`
	ViewCount    string `json:"view_count"`
	Duration     string `json:"duration"`
	URL          string `json:"url"`
}

// ChannelVideosResult is the full response for one channel request.
type ChannelVideosResult struct {
	ChannelID         string        `json:"channel_id"`
	ChannelName       string        `json:"channel_name,omitempty"`
	Videos            []VideoRecord `json:"videos"`
	ContinuationToken string        `json:"continuation_token,omitempty"`
}
