package anilist

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Title holds the localized names of a media entry. Either may be null.
type Title struct {
	Romaji  *string `json:"romaji"`
	English *string `json:"english"`
}

// Media is the subset of an AniList media object the schedule needs.
type Media struct {
	Title *Title `json:"title"`
}

// AiringSchedule is a single airing as returned by the API.
type AiringSchedule struct {
	AiringAt *int64 `json:"airingAt"`
	Episode  *int   `json:"episode"`
	Media    *Media `json:"media"`
}

// PageInfo describes pagination state.
type PageInfo struct {
	CurrentPage int  `json:"currentPage"`
	HasNextPage bool `json:"hasNextPage"`
}

// AiringPage is one page of airing schedules.
type AiringPage struct {
	PageInfo        PageInfo         `json:"pageInfo"`
	AiringSchedules []AiringSchedule `json:"airingSchedules"`
}

// GraphQLError is an entry of the response errors array.
type GraphQLError struct {
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
}

type airingPageResponse struct {
	Data *struct {
		Page *AiringPage `json:"Page"`
	} `json:"data"`
	Errors []GraphQLError `json:"errors"`
}

// ParseAiringPage decodes a GraphQL response body carrying a Page of airing schedules.
func ParseAiringPage(data []byte) (AiringPage, error) {
	var resp airingPageResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return AiringPage{}, fmt.Errorf("anilist: decode response: %w", err)
	}

	if len(resp.Errors) > 0 {
		msgs := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			msgs = append(msgs, e.Message)
		}
		return AiringPage{}, fmt.Errorf("anilist: graphql errors: %s", strings.Join(msgs, "; "))
	}

	if resp.Data == nil || resp.Data.Page == nil {
		return AiringPage{}, fmt.Errorf("anilist: response missing data.Page")
	}
	return *resp.Data.Page, nil
}
