package youtube

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"creatorhub/internal/apperr"
	"creatorhub/internal/config"
)

const (
	authEndpoint     = "https://accounts.google.com/o/oauth2/v2/auth"
	tokenEndpoint    = "https://oauth2.googleapis.com/token"
	channelsEndpoint = "https://www.googleapis.com/youtube/v3/channels"

	// RequestTimeout bounds every outbound provider call.
	RequestTimeout = 20 * time.Second
)

// Scopes requested during the consent flow.
var Scopes = []string{
	"https://www.googleapis.com/auth/youtube.readonly",
	"openid",
	"email",
	"profile",
}

// Client drives the Google OAuth2 authorization-code exchange and the
// YouTube Data API channel lookup. Endpoint URLs are overridable in tests.
type Client struct {
	AuthURL     string
	TokenURL    string
	ChannelsURL string

	clientID     string
	clientSecret string
	redirectURI  string
	httpClient   *http.Client
	log          *logrus.Logger
}

// NewClient builds a provider client from configuration.
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		AuthURL:      authEndpoint,
		TokenURL:     tokenEndpoint,
		ChannelsURL:  channelsEndpoint,
		clientID:     cfg.GoogleClientID,
		clientSecret: cfg.GoogleClientSecret,
		redirectURI:  cfg.RedirectURI(),
		httpClient:   &http.Client{Timeout: RequestTimeout},
		log:          log,
	}
}

// AuthCodeURL builds the provider consent URL for the given state.
func (c *Client) AuthCodeURL(state string) string {
	params := url.Values{}
	params.Set("client_id", c.clientID)
	params.Set("redirect_uri", c.redirectURI)
	params.Set("response_type", "code")
	params.Set("scope", strings.Join(Scopes, " "))
	params.Set("access_type", "offline")
	params.Set("prompt", "consent")
	params.Set("state", state)
	return c.AuthURL + "?" + params.Encode()
}

// TokenResponse is the subset of the token endpoint response we consume.
// The refresh token is optional; Google only returns one on first consent.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
	Scope        string `json:"scope"`
}

// Exchange trades an authorization code for provider tokens.
func (c *Client) Exchange(ctx context.Context, code string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("code", code)
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", c.redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, apperr.Upstream("Token exchange failed")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warnf("Token exchange request failed: %v", err)
		return nil, apperr.Upstream("Token exchange failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warnf("Token exchange returned status %d", resp.StatusCode)
		return nil, apperr.Upstream("Token exchange failed")
	}

	tokens := &TokenResponse{}
	if err := json.NewDecoder(resp.Body).Decode(tokens); err != nil {
		c.log.Warnf("Failed to decode token response: %v", err)
		return nil, apperr.Upstream("Token exchange failed")
	}
	if tokens.AccessToken == "" {
		return nil, apperr.Upstream("No access token returned")
	}
	return tokens, nil
}

// Channel is the partial shape of one channels.list result item.
type Channel struct {
	ID      string `json:"id"`
	Snippet struct {
		Title string `json:"title"`
	} `json:"snippet"`
}

type channelListResponse struct {
	Items []Channel `json:"items"`
}

// MyChannel fetches the channel owned by the account behind accessToken.
func (c *Client) MyChannel(ctx context.Context, accessToken string) (*Channel, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ChannelsURL, nil)
	if err != nil {
		return nil, apperr.Upstream("Failed to fetch channel info")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	query := req.URL.Query()
	query.Set("part", "snippet")
	query.Set("mine", "true")
	req.URL.RawQuery = query.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warnf("Channel fetch request failed: %v", err)
		return nil, apperr.Upstream("Failed to fetch channel info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warnf("Channel fetch returned status %d", resp.StatusCode)
		return nil, apperr.Upstream("Failed to fetch channel info")
	}

	list := &channelListResponse{}
	if err := json.NewDecoder(resp.Body).Decode(list); err != nil {
		c.log.Warnf("Failed to decode channel list: %v", err)
		return nil, apperr.Upstream("Failed to fetch channel info")
	}
	if len(list.Items) == 0 {
		return nil, apperr.Upstream("No channel found on this account")
	}
	return &list.Items[0], nil
}

// WatchURL returns the canonical public URL for a channel id.
func WatchURL(channelID string) string {
	return "https://www.youtube.com/channel/" + channelID
}
