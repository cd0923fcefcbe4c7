package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/yzho285/public-holidays-display/internal/model"
)

const (
	// DefaultBaseURL is the authoritative Canadian holidays API.
	DefaultBaseURL = "https://canada-holidays.ca/api/v1"

	// DefaultTimeout bounds each per-year request.
	DefaultTimeout = 5 * time.Second
)

// ClientConfig configures the HTTP fetcher.
type ClientConfig struct {
	BaseURL string        // default: DefaultBaseURL
	Timeout time.Duration // per-request bound, default: DefaultTimeout
}

// Client fetches holidays over HTTP, one request per (province, year).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an HTTP fetcher with per-request timeouts.
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// FetchYears requests each year sequentially. The first failing year aborts
// the attempt: no partial remote results are ever returned.
func (c *Client) FetchYears(ctx context.Context, provinceCode string, years []int) FetchResult {
	var all []model.Holiday
	for _, year := range years {
		holidays, err := c.fetchYear(ctx, provinceCode, year)
		if err != nil {
			log.Printf("[remote] fetch %s/%d failed: %v", provinceCode, year, err)
			return Failure(fmt.Errorf("fetch %s/%d: %w", provinceCode, year, err))
		}
		all = append(all, holidays...)
	}
	return Success(all)
}

func (c *Client) fetchYear(ctx context.Context, provinceCode string, year int) ([]model.Holiday, error) {
	url := fmt.Sprintf("%s/provinces/%s?year=%d", c.baseURL, provinceCode, year)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var payload yearResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	holidays := make([]model.Holiday, 0, len(payload.Province.Holidays))
	for _, rec := range payload.Province.Holidays {
		h, err := rec.normalize(provinceCode)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, nil
}

// yearResponse mirrors GET /provinces/{code}?year=Y.
type yearResponse struct {
	Province struct {
		Holidays []record `json:"holidays"`
	} `json:"province"`
}

// record is one remote holiday row. The source omits fields freely, so
// everything but the date is optional.
type record struct {
	ID           flexID        `json:"id"`
	NameEn       string        `json:"nameEn"`
	Name         string        `json:"name"`
	Date         string        `json:"date"`
	ObservedDate string        `json:"observedDate"`
	Federal      int           `json:"federal"`
	Provinces    []provinceRef `json:"provinces"`
}

// normalize maps a remote record into the Holiday shape: the federal flag
// becomes the category, a missing provinces list defaults to the requesting
// province, and a missing id is synthesized from date and name.
func (r record) normalize(provinceCode string) (model.Holiday, error) {
	name := r.NameEn
	if name == "" {
		name = r.Name
	}

	date, err := model.ParseDate(r.Date)
	if err != nil {
		return model.Holiday{}, err
	}

	var observed time.Time
	if r.ObservedDate != "" {
		observed, err = model.ParseDate(r.ObservedDate)
		if err != nil {
			return model.Holiday{}, err
		}
	}

	id := string(r.ID)
	if id == "" {
		if name != "" {
			id = fmt.Sprintf("%s-%s", r.Date, name)
		} else {
			id = uuid.NewString()
		}
	}

	category := model.CategoryProvincial
	if r.Federal == 1 {
		category = model.CategoryFederal
	}

	scope := model.InProvinces(provinceCode)
	if len(r.Provinces) > 0 {
		codes := make([]string, 0, len(r.Provinces))
		for _, p := range r.Provinces {
			codes = append(codes, p.ID)
		}
		scope = model.InProvinces(codes...)
	}

	return model.Holiday{
		ID:           id,
		Name:         name,
		Date:         date,
		ObservedDate: observed,
		Category:     category,
		Provinces:    scope,
		Description:  name,
		Statutory:    r.Federal == 1,
	}, nil
}

// flexID tolerates the id arriving as a JSON number or string.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id is neither string nor number: %s", data)
	}
	*f = flexID(n.String())
	return nil
}

// provinceRef tolerates province entries arriving as bare code strings or as
// objects carrying an "id" field.
type provinceRef struct {
	ID string `json:"id"`
}

func (p *provinceRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.ID = s
		return nil
	}
	type alias provinceRef
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	p.ID = a.ID
	return nil
}
