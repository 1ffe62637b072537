// Package isda fetches soil property readings from the iSDAsoil API.
package isda

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"

	"github.com/kipkoech/shamba/internal/common"
	"github.com/kipkoech/shamba/internal/model"
)

const (
	// DefaultBaseURL is the production iSDAsoil API endpoint.
	DefaultBaseURL = "https://api.isda-africa.com"

	// topsoilDepth selects the 0-20cm layer; the service reports other
	// depths but recommendations are based on topsoil only.
	topsoilDepth = "0-20"

	defaultTimeout = 15 * time.Second
)

// propertyFields maps iSDAsoil response field names to our properties.
var propertyFields = map[model.Property]string{
	model.PropertyNitrogen:   "nitrogen_total",
	model.PropertyPhosphorus: "phosphorous_extractable",
	model.PropertyPotassium:  "potassium_extractable",
	model.PropertyPH:         "ph",
}

// Config holds iSDAsoil client configuration.
type Config struct {
	Username string
	Password string
	BaseURL  string
	Timeout  time.Duration
}

// Client queries the iSDAsoil API. Authentication happens per fetch: the
// access token is acquired immediately before the property query and not
// retained afterwards.
type Client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	password   string
}

// New creates an iSDAsoil client from the given configuration.
func New(cfg Config) (*Client, error) {
	if cfg.Username == "" || cfg.Password == "" {
		return nil, fmt.Errorf("%w: iSDAsoil username and password are required", common.ErrMissingConfig)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:  baseURL,
		username: cfg.Username,
		password: cfg.Password,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// FetchProperties retrieves the four soil property values for a coordinate.
// Either all four values are obtained or the call fails as a whole.
func (c *Client) FetchProperties(ctx context.Context, coord model.Coordinate) (model.SoilReading, error) {
	if err := coord.Validate(); err != nil {
		return model.SoilReading{}, fmt.Errorf("%w: %v", common.ErrDataUnavailable, err)
	}

	token, err := c.authenticate(ctx)
	if err != nil {
		return model.SoilReading{}, err
	}

	u, err := url.Parse(c.baseURL + "/isdasoil/v2/soilproperty")
	if err != nil {
		return model.SoilReading{}, fmt.Errorf("failed to parse URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))
	q.Set("depth", topsoilDepth)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return model.SoilReading{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Accept", "application/json")

	slog.Debug("requesting soil properties",
		"coordinate", coord.String(),
		"depth", topsoilDepth)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.SoilReading{}, fmt.Errorf("%w: %v", common.ErrDataUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		body, _ := io.ReadAll(resp.Body)
		return model.SoilReading{}, fmt.Errorf("%w: token rejected: %s", common.ErrAuthentication, string(body))
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return model.SoilReading{}, fmt.Errorf("%w: iSDAsoil API error (status %d): %s", common.ErrDataUnavailable, resp.StatusCode, string(body))
	}

	var response soilPropertyResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return model.SoilReading{}, fmt.Errorf("%w: failed to decode response: %v", common.ErrDataUnavailable, err)
	}

	return response.toReading()
}

// authenticate obtains a bearer token via the resource-owner password
// grant the iSDAsoil /login endpoint implements. No refresh: an expired
// token surfaces as an authentication failure on the next run.
func (c *Client) authenticate(ctx context.Context) (*oauth2.Token, error) {
	conf := &oauth2.Config{
		Endpoint: oauth2.Endpoint{
			TokenURL:  c.baseURL + "/login",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	token, err := conf.PasswordCredentialsToken(ctx, c.username, c.password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrAuthentication, err)
	}

	slog.Debug("authenticated with iSDAsoil API")

	return token, nil
}

// soilPropertyResponse mirrors the nested iSDAsoil response shape:
// each property holds a list of depth layers, each with a wrapped value.
type soilPropertyResponse struct {
	Property map[string][]propertyLayer `json:"property"`
}

type propertyLayer struct {
	Value struct {
		Value float64 `json:"value"`
	} `json:"value"`
}

// toReading extracts the four required values. A missing property means
// the coordinate is outside coverage or the service changed shape; the
// reading fails as a whole rather than returning partial data.
func (r soilPropertyResponse) toReading() (model.SoilReading, error) {
	var reading model.SoilReading

	for property, field := range propertyFields {
		layers, ok := r.Property[field]
		if !ok || len(layers) == 0 {
			return model.SoilReading{}, fmt.Errorf("%w: property %q missing from response", common.ErrDataUnavailable, field)
		}

		// First layer is the requested 0-20cm depth.
		value := layers[0].Value.Value

		switch property {
		case model.PropertyNitrogen:
			reading.Nitrogen = value
		case model.PropertyPhosphorus:
			reading.Phosphorus = value
		case model.PropertyPotassium:
			reading.Potassium = value
		case model.PropertyPH:
			reading.PH = value
		}
	}

	return reading, nil
}
