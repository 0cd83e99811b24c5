package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/glean-dev/glean"
)

// videoProviders maps a src substring to the provider name reported on the
// extracted Video.
var videoProviders = []struct {
	match    string
	provider string
}{
	{"youtube.com", "youtube"},
	{"youtu.be", "youtube"},
	{"vimeo.com", "vimeo"},
	{"dailymotion.com", "dailymotion"},
	{"player.twitch.tv", "twitch"},
}

// Videos discovers embedded videos inside the content subtree, in document
// order. Embeds without a recognizable provider are still reported with an
// empty provider so callers can apply their own policy.
func (e *Extractor) Videos(node *goquery.Selection) []glean.Video {
	if node == nil {
		return nil
	}

	var videos []glean.Video
	node.Find("iframe, embed, object, video").Each(func(_ int, sel *goquery.Selection) {
		src, ok := sel.Attr("src")
		if !ok || src == "" {
			src, _ = sel.Attr("data")
		}
		if src == "" {
			return
		}

		video := glean.Video{
			Src:      src,
			EmbedTag: goquery.NodeName(sel),
			Width:    intAttr(sel, "width"),
			Height:   intAttr(sel, "height"),
		}
		for _, p := range videoProviders {
			if strings.Contains(src, p.match) {
				video.Provider = p.provider
				break
			}
		}
		videos = append(videos, video)
	})
	return videos
}

// intAttr returns the attribute parsed as an int, or 0.
func intAttr(sel *goquery.Selection, name string) int {
	v, ok := sel.Attr(name)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(v), "px"))
	if err != nil {
		return 0
	}
	return n
}
