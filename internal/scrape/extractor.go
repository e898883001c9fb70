package scrape

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"museum-api/internal/artwork"
)

// Selectors for the site's search-results markup. Every miss degrades to an
// empty field; a malformed card never aborts the page.
const (
	selCard        = ".search__results .card__outer"
	selCardLink    = "a[href]"
	selCardImage   = "img"
	selCardTitle   = ".card__title a"
	selCardAuthor  = ".card__author"
	selCardDate    = ".card__date"
	selSearchCount = ".search__results-count"
	selWorksCount  = ".artworks__count"

	attrImageSrc   = "data-src"
	attrPopularity = "data-popularity"
)

var nonDigitRe = regexp.MustCompile(`\D`)

// SearchPage is the extraction result for the search path.
type SearchPage struct {
	TotalResults int
	Artworks     []artwork.Summary
}

// TimelinePage is the extraction result for the artist-timeline path; cards
// additionally carry a date label, a derived year and a popularity score.
type TimelinePage struct {
	TotalWorks int
	Artworks   []artwork.Summary
}

func ParseSearchPage(body []byte, baseURL string) (SearchPage, error) {
	doc, err := newDocument(body)
	if err != nil {
		return SearchPage{}, err
	}

	page := SearchPage{
		TotalResults: parseCount(doc.Find(selSearchCount).First().Text()),
	}
	doc.Find(selCard).Each(func(_ int, card *goquery.Selection) {
		page.Artworks = append(page.Artworks, extractCard(card, baseURL, false))
	})

	return page, nil
}

func ParseTimelinePage(body []byte, baseURL string) (TimelinePage, error) {
	doc, err := newDocument(body)
	if err != nil {
		return TimelinePage{}, err
	}

	page := TimelinePage{
		TotalWorks: parseCount(doc.Find(selWorksCount).First().Text()),
	}
	doc.Find(selCard).Each(func(_ int, card *goquery.Selection) {
		page.Artworks = append(page.Artworks, extractCard(card, baseURL, true))
	})

	return page, nil
}

func newDocument(body []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse results page: %w", err)
	}
	return doc, nil
}

// extractCard pulls one artwork summary out of a card element. Every field
// is best-effort: a missing selector or attribute yields an empty value.
func extractCard(card *goquery.Selection, baseURL string, withDate bool) artwork.Summary {
	var s artwork.Summary

	href, _ := card.Find(selCardLink).First().Attr("href")
	s.ID = lastPathSegment(href)
	s.URL = absoluteURL(baseURL, href)

	img := card.Find(selCardImage).First()
	src, _ := img.Attr(attrImageSrc)
	s.ImageURL = absoluteURL(baseURL, src)
	s.FullTitle, _ = img.Attr("title")

	s.Title = strings.TrimSpace(card.Find(selCardTitle).First().Text())
	s.Author = strings.TrimSpace(card.Find(selCardAuthor).First().Text())

	if withDate {
		s.Date = strings.TrimSpace(card.Find(selCardDate).First().Text())
		s.Year = ParseYear(s.Date)
		if raw, ok := card.Attr(attrPopularity); ok {
			s.Popularity, _ = strconv.Atoi(strings.TrimSpace(raw))
		}
	}

	return s
}

// lastPathSegment derives an artwork id from a detail link: the substring
// after the final "/", or "" when there is no link.
func lastPathSegment(href string) string {
	if href == "" {
		return ""
	}
	return href[strings.LastIndex(href, "/")+1:]
}

// absoluteURL prefixes the site origin onto relative references. Empty stays
// empty so downstream consumers can tell "no image" from a broken link.
func absoluteURL(baseURL, ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return strings.TrimRight(baseURL, "/") + ref
}

// parseCount strips everything but digits out of a result-count label,
// e.g. "3 091 résultats" -> 3091. No digits means 0.
func parseCount(text string) int {
	digits := nonDigitRe.ReplaceAllString(text, "")
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}
