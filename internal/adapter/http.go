package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/oauth2"

	"github.com/MKhiriev/go-lms-offline/internal/config"
	"github.com/MKhiriev/go-lms-offline/internal/logger"
	"github.com/MKhiriev/go-lms-offline/internal/utils"
	"github.com/MKhiriev/go-lms-offline/models"
)

const (
	accessTokenParam = "access_token"
	apiKeyParam      = "api_key"

	defaultRetryBase = 500 * time.Millisecond
)

type httpServerAdapter struct {
	api       *utils.HTTPClient
	downloads *utils.HTTPClient

	settings *config.Settings
	oauth    *oauth2.Config
	tokens   *http.Client
	margin   time.Duration

	retries   uint64
	retryBase time.Duration

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. Routes are resolved through settings; the api key is
// posted to the token endpoint as api_key and as the OAuth2 client id.
//
// API requests share adapterCfg.RequestTimeout and the rate limit with
// downloads; downloads have no overall timeout since archives can be large.
//
// Returns an error if the auth route is missing or is not an absolute URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, settings *config.Settings, logger *logger.Logger) (ServerAdapter, error) {
	tokenURL, err := settings.Route(config.RouteAuth)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if err = checkAbsoluteURL(tokenURL); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	api := utils.NewHTTPClient().WithRateLimit(adapterCfg.RateLimit)
	api.SetTimeout(adapterCfg.RequestTimeout)

	tokens := *api.GetClient()
	tokens.Transport = &apiKeyTransport{base: tokens.Transport, apiKey: appCfg.APIKey}

	return &httpServerAdapter{
		api:       api,
		downloads: api.Sibling(),
		settings:  settings,
		oauth: &oauth2.Config{
			ClientID: appCfg.APIKey,
			Endpoint: oauth2.Endpoint{
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		tokens:    &tokens,
		margin:    appCfg.TokenSafetyMargin,
		retries:   adapterCfg.DownloadRetries,
		retryBase: defaultRetryBase,
		logger:    logger,
	}, nil
}

func checkAbsoluteURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("address must include host and scheme: %q", raw)
	}
	return nil
}

// Authenticate implements [ServerAdapter].
func (h *httpServerAdapter) Authenticate(ctx context.Context, credentials models.Credentials) (models.UserAccess, error) {
	log := logger.FromContext(ctx)

	if err := h.api.Wait(ctx); err != nil {
		return models.UserAccess{}, fmt.Errorf("%w: %w", ErrServerUnreachable, err)
	}

	tokenCtx := context.WithValue(ctx, oauth2.HTTPClient, h.tokens)
	token, err := h.oauth.PasswordCredentialsToken(tokenCtx, credentials.Login, credentials.Password)
	if err != nil {
		err = mapTokenError(err)
		log.Err(err).Str("func", "*httpServerAdapter.Authenticate").Str("login", credentials.Login).Msg("password grant failed")
		return models.UserAccess{}, err
	}

	access := models.UserAccess{
		Login:        credentials.Login,
		Password:     credentials.Password,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.Type(),
	}
	if !token.Expiry.IsZero() {
		access.ExpiresAt = token.Expiry.Add(-h.margin)
	}

	return access, nil
}

// GetUserInfo implements [ServerAdapter].
func (h *httpServerAdapter) GetUserInfo(ctx context.Context, access models.UserAccess) (models.UserProfile, error) {
	var profile models.UserProfile
	if err := h.get(ctx, access, config.RouteUserInfo, "", &profile); err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

// GetCourses implements [ServerAdapter].
func (h *httpServerAdapter) GetCourses(ctx context.Context, access models.UserAccess) ([]models.Course, error) {
	var courses []models.Course
	if err := h.get(ctx, access, config.RouteCourses, "", &courses); err != nil {
		return nil, err
	}

	for i := range courses {
		courses[i].Status = models.StatusRemote
	}
	return courses, nil
}

// GetCourseInfo implements [ServerAdapter]. The course ref_id is appended
// to the courseinfo route.
func (h *httpServerAdapter) GetCourseInfo(ctx context.Context, access models.UserAccess, courseRefID int64) ([]models.LearningModule, error) {
	var modules []models.LearningModule
	if err := h.get(ctx, access, config.RouteCourseInfo, strconv.FormatInt(courseRefID, 10), &modules); err != nil {
		return nil, err
	}

	for i := range modules {
		modules[i].Status = models.StatusRemote
	}
	return modules, nil
}

// DownloadURL implements [ServerAdapter].
func (h *httpServerAdapter) DownloadURL(access models.UserAccess, moduleRefID int64) (string, error) {
	route, err := h.settings.Route(config.RouteDownload)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	u, err := url.Parse(route + strconv.FormatInt(moduleRefID, 10))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	q := u.Query()
	q.Set(accessTokenParam, access.AccessToken)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Fetch implements [ServerAdapter]. Transport errors and 5xx replies are
// retried with exponential backoff; other replies fail at once.
func (h *httpServerAdapter) Fetch(ctx context.Context, rawURL string, headers map[string]string) (io.ReadCloser, error) {
	log := logger.FromContext(ctx)

	var body io.ReadCloser
	backoff := retry.WithMaxRetries(h.retries, retry.NewExponential(h.retryBase))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		resp, err := h.downloads.R().
			SetContext(ctx).
			SetHeaders(headers).
			SetDoNotParseResponse(true).
			Get(rawURL)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("%w: %w", ErrServerUnreachable, err))
		}

		if status := resp.StatusCode(); !isSuccess(status) {
			raw := resp.RawBody()
			msg, _ := io.ReadAll(io.LimitReader(raw, 512))
			_ = raw.Close()

			err = mapStatus(status, strings.TrimSpace(string(msg)))
			if status >= http.StatusInternalServerError {
				log.Warn().Str("func", "*httpServerAdapter.Fetch").Int("status", status).Msg("download failed, retrying")
				return retry.RetryableError(err)
			}
			return err
		}

		body = resp.RawBody()
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*httpServerAdapter.Fetch").Msg("download failed")
		return nil, err
	}

	return body, nil
}

// get sends an authenticated GET to route+suffix and decodes the JSON
// reply into dest.
func (h *httpServerAdapter) get(ctx context.Context, access models.UserAccess, route, suffix string, dest any) error {
	log := logger.FromContext(ctx)

	endpoint, err := h.settings.Route(route)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	resp, err := h.api.R().
		SetContext(ctx).
		SetQueryParam(accessTokenParam, access.AccessToken).
		SetHeader("Accept", "application/json").
		Get(endpoint + suffix)
	if err != nil {
		log.Err(err).Str("func", "*httpServerAdapter.get").Str("route", route).Msg("request failed")
		return fmt.Errorf("%w: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*httpServerAdapter.get").Str("route", route).Int("status", resp.StatusCode()).Msg("server rejected request")
		return err
	}

	if err = json.Unmarshal(resp.Body(), dest); err != nil {
		log.Err(err).Str("func", "*httpServerAdapter.get").Str("route", route).Msg("error decoding response")
		return fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	return nil
}

// apiKeyTransport adds the api key to the form body of token requests.
type apiKeyTransport struct {
	base   http.RoundTripper
	apiKey string
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	if req.Body == nil || req.Method != http.MethodPost {
		return base.RoundTrip(req)
	}

	raw, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return nil, err
	}
	form, err := url.ParseQuery(string(raw))
	if err != nil {
		return nil, err
	}
	form.Set(apiKeyParam, t.apiKey)
	body := form.Encode()

	out := req.Clone(req.Context())
	out.Body = io.NopCloser(strings.NewReader(body))
	out.ContentLength = int64(len(body))
	out.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(body)), nil
	}
	return base.RoundTrip(out)
}
