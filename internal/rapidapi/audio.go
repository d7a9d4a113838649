package rapidapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// AudioLink is the youtube-mp36 answer for a video.
type AudioLink struct {
	Link     string      `json:"link"`
	Title    string      `json:"title"`
	FileSize json.Number `json:"filesize"`
	Status   string      `json:"status"`
	Msg      string      `json:"msg"`
}

// AudioSource resolves YouTube video IDs to downloadable MP3 links.
type AudioSource struct {
	client *Client
	host   string
}

func NewAudioSource(c *Client, host string) *AudioSource {
	return &AudioSource{client: c, host: host}
}

// FetchAudioLink looks up the MP3 link for videoID. An empty Link in a
// successful response means the service had nothing to offer.
func (a *AudioSource) FetchAudioLink(ctx context.Context, videoID string) (AudioLink, error) {
	var link AudioLink
	path := "/dl?id=" + url.QueryEscape(videoID)
	if err := a.client.do(ctx, http.MethodGet, a.host, path, "", &link); err != nil {
		return AudioLink{}, err
	}
	return link, nil
}
