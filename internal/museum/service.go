package museum

import (
	"context"
	"log"
	"net/url"
	"strconv"

	"museum-api/internal/artwork"
	"museum-api/internal/scrape"
	"museum-api/internal/timeline"
)

const searchPath = "/recherche"

// Service runs the request-scoped pipeline: one outbound fetch through the
// Client, a synchronous transform, a reshaped result. It holds no mutable
// state, so any number of requests may use it concurrently.
type Service struct {
	client   Client
	baseURL  string
	apiPath  string
	pageSize int
	logger   *log.Logger
}

func NewService(client Client, baseURL, apiPath string, pageSize int, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}

	return &Service{
		client:   client,
		baseURL:  baseURL,
		apiPath:  apiPath,
		pageSize: pageSize,
		logger:   logger,
	}
}

type SearchResult struct {
	Query        string            `json:"query"`
	Page         int               `json:"page"`
	TotalResults int               `json:"totalResults"`
	TotalPages   int               `json:"totalPages"`
	Artworks     []artwork.Summary `json:"artworks"`
	NextPage     *int              `json:"nextPage"`
	PrevPage     *int              `json:"prevPage"`
}

type ImageResult struct {
	ID    string `json:"id"`
	Total int    `json:"total"`
	artwork.Selection
}

type TimelineResult struct {
	Artist       string            `json:"artist"`
	TotalWorks   int               `json:"total_works"`
	Timeline     timeline.Timeline `json:"timeline"`
	EarliestWork *artwork.Summary  `json:"earliest_work"`
	LatestWork   *artwork.Summary  `json:"latest_work"`
}

// Search fetches one page of search results and reshapes it with pagination
// metadata. nextPage/prevPage are nil at the respective edges.
func (s *Service) Search(ctx context.Context, query string, page int) (SearchResult, error) {
	if page < 1 {
		page = 1
	}

	body, err := s.client.FetchHTML(ctx, s.searchURL(query, page))
	if err != nil {
		s.logger.Printf("search %q page %d: %v", query, page, err)
		return SearchResult{}, err
	}

	parsed, err := scrape.ParseSearchPage(body, s.baseURL)
	if err != nil {
		s.logger.Printf("search %q page %d: %v", query, page, err)
		return SearchResult{}, err
	}

	totalPages := (parsed.TotalResults + s.pageSize - 1) / s.pageSize

	result := SearchResult{
		Query:        query,
		Page:         page,
		TotalResults: parsed.TotalResults,
		TotalPages:   totalPages,
		Artworks:     parsed.Artworks,
	}
	if result.Artworks == nil {
		result.Artworks = []artwork.Summary{}
	}
	if page < totalPages {
		next := page + 1
		result.NextPage = &next
	}
	if page > 1 {
		prev := page - 1
		result.PrevPage = &prev
	}

	return result, nil
}

// Detail fetches one artwork's JSON record and maps it to the canonical
// shape.
func (s *Service) Detail(ctx context.Context, id string) (artwork.Detail, error) {
	body, err := s.client.FetchJSON(ctx, s.apiPath+"/"+id, nil)
	if err != nil {
		s.logger.Printf("detail %s: %v", id, err)
		return artwork.Detail{}, err
	}

	detail, err := artwork.MapDetail(body, s.baseURL, s.apiPath, id)
	if err != nil {
		s.logger.Printf("detail %s: %v", id, err)
		return artwork.Detail{}, err
	}
	return detail, nil
}

// Images fetches the full detail record and selects from its image list
// locally; the two steps are sequential since selection depends on the
// fetched record.
func (s *Service) Images(ctx context.Context, id, typ, position string) (ImageResult, error) {
	detail, err := s.Detail(ctx, id)
	if err != nil {
		return ImageResult{}, err
	}

	selection, err := artwork.SelectImages(detail.Image, typ, position)
	if err != nil {
		return ImageResult{}, err
	}

	return ImageResult{
		ID:        detail.ID,
		Total:     len(detail.Image),
		Selection: selection,
	}, nil
}

// ArtistTimeline searches the site for an artist's works and aggregates the
// extracted cards into a sorted, decade-bucketed timeline.
func (s *Service) ArtistTimeline(ctx context.Context, artist, sortBy string) (TimelineResult, error) {
	body, err := s.client.FetchHTML(ctx, s.searchURL(artist, 1))
	if err != nil {
		s.logger.Printf("timeline %q: %v", artist, err)
		return TimelineResult{}, err
	}

	parsed, err := scrape.ParseTimelinePage(body, s.baseURL)
	if err != nil {
		s.logger.Printf("timeline %q: %v", artist, err)
		return TimelineResult{}, err
	}

	total := parsed.TotalWorks
	if total == 0 {
		total = len(parsed.Artworks)
	}

	t := timeline.Build(parsed.Artworks, sortBy)
	if t.Chronological == nil {
		t.Chronological = []artwork.Summary{}
	}

	return TimelineResult{
		Artist:       artist,
		TotalWorks:   total,
		Timeline:     t,
		EarliestWork: t.Earliest,
		LatestWork:   t.Latest,
	}, nil
}

func (s *Service) searchURL(query string, page int) string {
	params := url.Values{}
	params.Set("q", query)
	params.Set("page", strconv.Itoa(page))
	return s.baseURL + searchPath + "?" + params.Encode()
}
