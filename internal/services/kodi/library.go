package kodi

import (
	"context"
	"fmt"
	"strconv"
)

// TVShow is the subset of Kodi TV show data the scrobbler needs.
type TVShow struct {
	TVShowID int               `json:"tvshowid"`
	Label    string            `json:"label"`
	UniqueID map[string]string `json:"uniqueid"`
}

// Episode is the subset of Kodi episode data the scrobbler needs.
type Episode struct {
	EpisodeID int    `json:"episodeid"`
	TVShowID  int    `json:"tvshowid"`
	Label     string `json:"label"`
	Season    int    `json:"season"`
	Episode   int    `json:"episode"`
	Playcount int    `json:"playcount"`
}

// FilterRule is a single Kodi library filter clause.
type FilterRule struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// Filter is a conjunction of library filter clauses.
type Filter struct {
	And []FilterRule `json:"and"`
}

// UnwatchedEpisodeFilter matches a specific unwatched season/episode pair.
func UnwatchedEpisodeFilter(season, episode int) *Filter {
	return &Filter{And: []FilterRule{
		{Field: "season", Operator: "is", Value: strconv.Itoa(season)},
		{Field: "episode", Operator: "is", Value: strconv.Itoa(episode)},
		{Field: "playcount", Operator: "is", Value: "0"},
	}}
}

// TVShows returns all TV shows from the Kodi library, sorted by label.
func (c *Client) TVShows(ctx context.Context) ([]TVShow, error) {
	params := map[string]any{
		"properties": []string{"uniqueid"},
		"sort":       map[string]string{"order": "ascending", "method": "label"},
	}
	var result struct {
		TVShows []TVShow `json:"tvshows"`
	}
	if err := c.Call(ctx, "VideoLibrary.GetTVShows", params, &result); err != nil {
		return nil, err
	}
	if len(result.TVShows) == 0 {
		return nil, fmt.Errorf("%w: library has no TV shows", ErrNoData)
	}
	return result.TVShows, nil
}

// Episodes returns episodes of a TV show, optionally narrowed by a filter.
func (c *Client) Episodes(ctx context.Context, tvshowID int, filter *Filter) ([]Episode, error) {
	params := map[string]any{
		"tvshowid":   tvshowID,
		"properties": []string{"season", "episode", "playcount", "tvshowid"},
	}
	if filter != nil {
		params["filter"] = filter
	}
	var result struct {
		Episodes []Episode `json:"episodes"`
	}
	if err := c.Call(ctx, "VideoLibrary.GetEpisodes", params, &result); err != nil {
		return nil, err
	}
	if len(result.Episodes) == 0 {
		return nil, fmt.Errorf("%w: TV show %d has no episodes", ErrNoData, tvshowID)
	}
	return result.Episodes, nil
}

// RecentEpisodes returns the recently added episodes.
func (c *Client) RecentEpisodes(ctx context.Context) ([]Episode, error) {
	params := map[string]any{
		"properties": []string{"playcount", "tvshowid", "season", "episode"},
	}
	var result struct {
		Episodes []Episode `json:"episodes"`
	}
	if err := c.Call(ctx, "VideoLibrary.GetRecentlyAddedEpisodes", params, &result); err != nil {
		return nil, err
	}
	if len(result.Episodes) == 0 {
		return nil, fmt.Errorf("%w: library has no recent episodes", ErrNoData)
	}
	return result.Episodes, nil
}

// TVShowDetails returns details for a single TV show.
func (c *Client) TVShowDetails(ctx context.Context, tvshowID int) (TVShow, error) {
	params := map[string]any{
		"tvshowid":   tvshowID,
		"properties": []string{"uniqueid"},
	}
	var result struct {
		TVShowDetails TVShow `json:"tvshowdetails"`
	}
	if err := c.Call(ctx, "VideoLibrary.GetTVShowDetails", params, &result); err != nil {
		return TVShow{}, err
	}
	return result.TVShowDetails, nil
}

// EpisodeDetails returns details for a single episode.
func (c *Client) EpisodeDetails(ctx context.Context, episodeID int) (Episode, error) {
	params := map[string]any{
		"episodeid":  episodeID,
		"properties": []string{"playcount", "tvshowid", "season", "episode", "uniqueid"},
	}
	var result struct {
		EpisodeDetails Episode `json:"episodedetails"`
	}
	if err := c.Call(ctx, "VideoLibrary.GetEpisodeDetails", params, &result); err != nil {
		return Episode{}, err
	}
	return result.EpisodeDetails, nil
}

// SetEpisodePlaycount updates an episode's playcount. The write is skipped
// when the boolean watch state already matches, so repeated syncs do not
// churn the library database.
func (c *Client) SetEpisodePlaycount(ctx context.Context, episodeID, playcount int) error {
	details, err := c.EpisodeDetails(ctx, episodeID)
	if err != nil {
		return err
	}

	current := 0
	if details.Playcount > 0 {
		current = 1
	}
	if playcount == current {
		return nil
	}

	params := map[string]any{
		"episodeid": episodeID,
		"playcount": playcount,
	}
	return c.Call(ctx, "VideoLibrary.SetEpisodeDetails", params, nil)
}

// SetShowUniqueID stores a TVmaze show ID in the show's uniqueid dict,
// preserving the IDs from other providers.
func (c *Client) SetShowUniqueID(ctx context.Context, tvshowID, tvmazeID int) error {
	details, err := c.TVShowDetails(ctx, tvshowID)
	if err != nil {
		return err
	}

	uniqueID := make(map[string]string, len(details.UniqueID)+1)
	for provider, id := range details.UniqueID {
		uniqueID[provider] = id
	}
	uniqueID["tvmaze"] = strconv.Itoa(tvmazeID)

	params := map[string]any{
		"tvshowid": tvshowID,
		"uniqueid": uniqueID,
	}
	return c.Call(ctx, "VideoLibrary.SetTVShowDetails", params, nil)
}
