package youtube

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

const watchURLFormat = "https://www.youtube.com/watch?v=%s"

// initialDataRe captures the JSON literal assigned to ytInitialData. The
// blob runs up to the closing script tag, so a lazy match against
// ";</script>" is the only boundary needed. Matched once per document,
// against the raw text.
var initialDataRe = regexp.MustCompile(`(?s)var ytInitialData = (.+?);</script>`)

// Extractor turns a raw channel page into a ChannelVideosResult. It does
// no I/O; the logger is its diagnostics sink for non-fatal anomalies.
type Extractor struct {
	log zerolog.Logger
}

// NewExtractor creates an extractor writing diagnostics to log.
func NewExtractor(log zerolog.Logger) *Extractor {
	return &Extractor{log: log}
}

// Extract locates the embedded data blob and walks it for the video grid.
//
// A page without a parseable blob is a hard failure (ErrNoDataBlob). A
// blob without a recognizable "Videos" tab yields an empty result with no
// error: the page loaded, its structure just isn't one we know. A single
// malformed grid item is skipped with a logged warning and never aborts
// the rest of the page.
func (e *Extractor) Extract(page, channelID string) (ChannelVideosResult, error) {
	result := ChannelVideosResult{
		ChannelID: channelID,
		Videos:    []VideoRecord{},
	}
	result.ChannelName = e.channelName(page, channelID)

	data, err := parseInitialData(page)
	if err != nil {
		e.log.Error().Str("channel_id", channelID).Msg("could not extract ytInitialData from page")
		return ChannelVideosResult{}, err
	}

	items, ok := videosTabContents(data)
	if !ok {
		e.log.Warn().Str("channel_id", channelID).Msg("no Videos tab found in initial data")
		return result, nil
	}

	for i, item := range items {
		if renderer, ok := dig(item, "richItemRenderer", "content", "videoRenderer").(map[string]any); ok {
			record, ok := videoFromRenderer(renderer)
			if !ok {
				e.log.Warn().
					Str("channel_id", channelID).
					Str("path", fmt.Sprintf("contents[%d].richItemRenderer.content.videoRenderer", i)).
					Msg("skipping malformed video item")
				continue
			}
			result.Videos = append(result.Videos, record)
		}

		// At most one continuation is expected per page; last one wins.
		if token, ok := dig(item, "continuationItemRenderer", "continuationEndpoint", "continuationCommand", "token").(string); ok && token != "" {
			result.ContinuationToken = token
		}
	}

	return result, nil
}

// channelName pulls the og:title metadata. Best effort: any failure here
// leaves the name empty and the request proceeds.
func (e *Extractor) channelName(page, channelID string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		e.log.Warn().Str("channel_id", channelID).Err(err).Msg("failed to extract channel name")
		return ""
	}
	name, _ := doc.Find(`meta[property="og:title"]`).Attr("content")
	return name
}

func parseInitialData(page string) (map[string]any, error) {
	m := initialDataRe.FindStringSubmatch(page)
	if m == nil {
		return nil, ErrNoDataBlob
	}
	var data map[string]any
	if err := json.Unmarshal([]byte(m[1]), &data); err != nil {
		return nil, ErrNoDataBlob
	}
	return data, nil
}

// videosTabContents walks the fixed path to the video grid. The tab title
// match is exact: that is what the source emits for the videos tab, and
// parity with observed behavior beats cleverness here.
func videosTabContents(data map[string]any) ([]any, bool) {
	tabs, _ := dig(data, "contents", "twoColumnBrowseResultsRenderer", "tabs").([]any)
	for _, tab := range tabs {
		title, _ := dig(tab, "tabRenderer", "title").(string)
		if title != "Videos" {
			continue
		}
		items, ok := dig(tab, "tabRenderer", "content", "richGridRenderer", "contents").([]any)
		return items, ok
	}
	return nil, false
}

// videoFromRenderer maps one videoRenderer to a record. Every lookup is
// optional-chained; only videoId is required.
func videoFromRenderer(m map[string]any) (VideoRecord, bool) {
	id, _ := m["videoId"].(string)
	if id == "" {
		return VideoRecord{}, false
	}

	title, _ := dig(m, "title", "runs", 0, "text").(string)
	if title == "" {
		title = "Untitled Video"
	}

	// Thumbnail candidates are ordered by ascending resolution; take the
	// last one.
	thumb := ""
	if thumbs, ok := dig(m, "thumbnail", "thumbnails").([]any); ok && len(thumbs) > 0 {
		thumb, _ = dig(thumbs[len(thumbs)-1], "url").(string)
	}

	views, _ := dig(m, "viewCountText", "simpleText").(string)
	if views == "" {
		views, _ = dig(m, "viewCountText", "runs", 0, "text").(string)
	}

	published, _ := dig(m, "publishedTimeText", "simpleText").(string)

	// Livestreams have no lengthText; duration stays empty.
	duration, _ := dig(m, "lengthText", "simpleText").(string)

	return VideoRecord{
		VideoID:      id,
		Title:        title,
		ThumbnailURL: thumb,
		PublishedAt:  published,
		ViewCount:    views,
		Duration:     duration,
		URL:          fmt.Sprintf(watchURLFormat, id),
	}, true
}

// dig walks a decoded JSON value by map keys and slice indexes, returning
// nil on any miss or type mismatch.
func dig(v any, keys ...any) any {
	cur := v
	for _, k := range keys {
		switch key := k.(type) {
		case string:
			if m, ok := cur.(map[string]any); ok {
				cur = m[key]
			} else {
				return nil
			}
		case int:
			if a, ok := cur.([]any); ok {
				if key >= 0 && key < len(a) {
					cur = a[key]
				} else {
					return nil
				}
			} else {
				return nil
			}
		}
	}
	return cur
}
