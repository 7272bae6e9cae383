package countries

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/alizaidi-dev/tripbudget/internal/core/domain"
)

const defaultBaseURL = "https://restcountries.com/v3.1"

// Client fetches the country directory from restcountries.com.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type countryPayload struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	CCA2       string   `json:"cca2"`
	Capital    []string `json:"capital"`
	Region     string   `json:"region"`
	Flag       string   `json:"flag"`
	Currencies map[string]struct {
		Name string `json:"name"`
	} `json:"currencies"`
}

func (c *Client) ListCountries(ctx context.Context) ([]domain.Country, error) {
	url := c.baseURL + "/all?fields=name,cca2,capital,region,flag,currencies"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("countries request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("countries api status %d", resp.StatusCode)
	}

	var payload []countryPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("countries response: %w", err)
	}

	out := make([]domain.Country, 0, len(payload))
	for _, p := range payload {
		country := domain.Country{
			Name:   p.Name.Common,
			Code:   p.CCA2,
			Region: p.Region,
			Flag:   p.Flag,
		}
		if len(p.Capital) > 0 {
			country.Capital = p.Capital[0]
		}
		for code := range p.Currencies {
			country.Currency = code
			break
		}
		out = append(out, country)
	}

	return out, nil
}
