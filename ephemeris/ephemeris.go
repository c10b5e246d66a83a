/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package ephemeris looks up sunrise and sunset for a course's area. The
// times are shown next to a schedule; they never influence it.
package ephemeris

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/mikeb26/teetimes/internal"
	"github.com/mikeb26/teetimes/teetime"
)

var (
	ErrUnknownArea = errors.New("ephemeris: unknown area")
	ErrNoData      = errors.New("ephemeris: no data for date")

	PlaceholderSunrise = teetime.MustParseClock("06:00")
	PlaceholderSunset  = teetime.MustParseClock("20:00")
)

var clockRe = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*(am|pm)?`)

type SunTimes struct {
	Area    string        `json:"area"`
	Date    string        `json:"date"`
	Sunrise teetime.Clock `json:"sunrise"`
	Sunset  teetime.Clock `json:"sunset"`
	// Placeholder is set when the lookup failed and the times are the
	// built-in defaults.
	Placeholder bool `json:"placeholder"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	bucket     string
	logger     *zap.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the cached client NewClient would build.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithCacheBucket names the S3 bucket for the response cache. An empty
// bucket keeps the cache in memory.
func WithCacheBucket(b string) Option {
	return func(c *Client) { c.bucket = b }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = internal.OrNop(l) }
}

func NewClient(ctx context.Context, opts ...Option) *Client {
	c := &Client{
		baseURL: internal.EphemerisBaseURL,
		bucket:  internal.WebCacheBucket,
		logger:  zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	if c.httpClient == nil {
		c.httpClient = internal.NewCachedHttpClient(ctx, internal.CacheOptions{
			Bucket: c.bucket,
			MaxAge: internal.EphemerisCacheTTL,
			Logger: c.logger,
		})
	}

	return c
}

// MonthURL is the page holding the sun table of date's month for area.
func (c *Client) MonthURL(area string, date time.Time) (string, error) {
	path, ok := areaPath(area)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownArea, area)
	}
	q := url.Values{}
	q.Set("month", strconv.Itoa(int(date.Month())))
	q.Set("year", strconv.Itoa(date.Year()))

	return fmt.Sprintf("%v/%v?%v", c.baseURL, path, q.Encode()), nil
}

// Lookup returns sunrise and sunset for area on date.
func (c *Client) Lookup(ctx context.Context, area string,
	date time.Time) (SunTimes, error) {

	u, err := c.MonthURL(area, date)
	if err != nil {
		return SunTimes{}, err
	}
	doc, err := c.fetchDoc(ctx, u)
	if err != nil {
		return SunTimes{}, fmt.Errorf("ephemeris.Lookup: %w", err)
	}

	st, err := parseMonth(doc, date.Day())
	if err != nil {
		return SunTimes{}, fmt.Errorf("ephemeris.Lookup: %v %v: %w", area,
			date.Format(time.DateOnly), err)
	}
	st.Area = strings.ToUpper(strings.TrimSpace(area))
	st.Date = date.Format(time.DateOnly)

	return st, nil
}

// LookupOrDefault is Lookup that never fails: on any error it logs and
// returns the placeholder times.
func (c *Client) LookupOrDefault(ctx context.Context, area string,
	date time.Time) SunTimes {

	st, err := c.Lookup(ctx, area, date)
	if err == nil {
		return st
	}
	c.logger.Warn("ephemeris.LookupOrDefault: using placeholder times",
		zap.String("area", area), zap.Error(err))

	return SunTimes{
		Area:        strings.ToUpper(strings.TrimSpace(area)),
		Date:        date.Format(time.DateOnly),
		Sunrise:     PlaceholderSunrise,
		Sunset:      PlaceholderSunset,
		Placeholder: true,
	}
}

func (c *Client) fetchDoc(ctx context.Context, u string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d fetching %s", resp.StatusCode, u)
	}
	c.logger.Debug("ephemeris.fetchDoc", zap.String("url", u),
		zap.Bool("cached", resp.Header.Get("X-From-Cache") == "1"))

	return goquery.NewDocumentFromReader(resp.Body)
}

// parseMonth finds day's row in the month table. The row header holds the
// day of month; the first two cells carrying a time are sunrise and sunset.
func parseMonth(doc *goquery.Document, day int) (SunTimes, error) {
	var st SunTimes
	found := false

	doc.Find("table#as-monthsun tbody tr").EachWithBreak(func(_ int,
		row *goquery.Selection) bool {

		d, err := strconv.Atoi(strings.TrimSpace(row.Find("th").First().Text()))
		if err != nil || d != day {
			return true
		}

		var times []teetime.Clock
		row.Find("td").EachWithBreak(func(_ int, cell *goquery.Selection) bool {
			if t, ok := parseCellTime(cell.Text()); ok {
				times = append(times, t)
			}
			return len(times) < 2
		})
		if len(times) == 2 {
			st.Sunrise, st.Sunset = times[0], times[1]
			found = true
		}
		return false
	})

	if !found {
		return SunTimes{}, ErrNoData
	}
	return st, nil
}

// parseCellTime reads the first clock time in s, in either 24h or am/pm
// notation.
func parseCellTime(s string) (teetime.Clock, bool) {
	m := clockRe.FindStringSubmatch(strings.ToLower(s))
	if m == nil {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	switch m[3] {
	case "pm":
		if h < 12 {
			h += 12
		}
	case "am":
		if h == 12 {
			h = 0
		}
	}
	if h > 23 || mm > 59 {
		return 0, false
	}
	return teetime.Clock(h*60 + mm), true
}
