package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/models"
)

// HTTPClient implements Client over the REST+JSON API.
type HTTPClient struct {
	baseURL string
	tokens  TokenSource
	hc      *http.Client
}

// NewHTTPClient builds a client for baseURL (e.g. "http://localhost:8080/api").
// tokens may be nil for a client that only uses public endpoints; hc may be
// nil to use http.DefaultClient.
func NewHTTPClient(baseURL string, tokens TokenSource, hc *http.Client) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	if tokens == nil {
		tokens = StaticToken("")
	}
	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/"), tokens: tokens, hc: hc}, nil
}

// HTTP exposes the underlying *http.Client, e.g. for presigned uploads.
func (c *HTTPClient) HTTP() *http.Client {
	return c.hc
}

// send performs one request and turns non-2xx answers into *HTTPError.
func (c *HTTPClient) send(ctx context.Context, method, path string, body any, auth bool) (*http.Response, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil || auth {
		req.Header.Set("Content-Type", "application/json")
	}

	if auth {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("read session token: %w", err)
		}
		if token != "" {
			req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
		}
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		text, _ := io.ReadAll(resp.Body)
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(text))}
	}
	return resp, nil
}

// call sends a request and unwraps the {message, code, data} envelope.
// An empty 2xx body yields the zero value.
func call[T any](ctx context.Context, c *HTTPClient, method, path string, body any, auth bool) (T, error) {
	var zero T

	resp, err := c.send(ctx, method, path, body, auth)
	if err != nil {
		return zero, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("read response: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return zero, nil
	}

	var env models.Envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return env.Data, nil
}

func list[T any](ctx context.Context, c *HTTPClient, res models.Resource) ([]T, error) {
	items, err := call[[]T](ctx, c, http.MethodGet, "/"+string(res), nil, true)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func create[T any](ctx context.Context, c *HTTPClient, res models.Resource, v T) (T, error) {
	return call[T](ctx, c, http.MethodPost, "/"+string(res)+"/create", v, true)
}

func update[T models.Entity](ctx context.Context, c *HTTPClient, res models.Resource, v T) (T, error) {
	return call[T](ctx, c, http.MethodPost, "/"+string(res)+"/update/"+url.PathEscape(v.EntityID().String()), v, true)
}

func remove(ctx context.Context, c *HTTPClient, res models.Resource, id models.ID) error {
	_, err := call[json.RawMessage](ctx, c, http.MethodPost, "/"+string(res)+"/delete/"+url.PathEscape(id.String()), nil, true)
	return err
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	resp, err := call[*models.LoginResponse](ctx, c, http.MethodPost, "/auth/login",
		models.LoginRequest{Username: username, Password: password}, false)
	if err != nil {
		return nil, err
	}
	if resp == nil || resp.Token == "" {
		return nil, fmt.Errorf("login response carries no token: %w", ErrUnauthorized)
	}
	return resp, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	resp, err := c.send(ctx, http.MethodGet, "/health", nil, false)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// GetProfile reads the /profiles list and keeps its first element; the
// backend models the singleton profile as a list.
func (c *HTTPClient) GetProfile(ctx context.Context) (*models.Profile, error) {
	profiles, err := list[models.Profile](ctx, c, models.ResourceProfiles)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, nil
	}
	p := profiles[0]
	return &p, nil
}

func (c *HTTPClient) CreateProfile(ctx context.Context, p models.Profile) (models.Profile, error) {
	return create(ctx, c, models.ResourceProfiles, p)
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, p models.Profile) (models.Profile, error) {
	return update(ctx, c, models.ResourceProfiles, p)
}

func (c *HTTPClient) DeleteProfile(ctx context.Context, id models.ID) error {
	return remove(ctx, c, models.ResourceProfiles, id)
}

func (c *HTTPClient) ListEducations(ctx context.Context) ([]models.Education, error) {
	return list[models.Education](ctx, c, models.ResourceEducations)
}

func (c *HTTPClient) CreateEducation(ctx context.Context, e models.Education) (models.Education, error) {
	return create(ctx, c, models.ResourceEducations, e)
}

func (c *HTTPClient) UpdateEducation(ctx context.Context, e models.Education) (models.Education, error) {
	return update(ctx, c, models.ResourceEducations, e)
}

func (c *HTTPClient) DeleteEducation(ctx context.Context, id models.ID) error {
	return remove(ctx, c, models.ResourceEducations, id)
}

func (c *HTTPClient) ListSkills(ctx context.Context) ([]models.Skill, error) {
	return list[models.Skill](ctx, c, models.ResourceSkills)
}

func (c *HTTPClient) CreateSkill(ctx context.Context, s models.Skill) (models.Skill, error) {
	return create(ctx, c, models.ResourceSkills, s)
}

func (c *HTTPClient) UpdateSkill(ctx context.Context, s models.Skill) (models.Skill, error) {
	return update(ctx, c, models.ResourceSkills, s)
}

func (c *HTTPClient) DeleteSkill(ctx context.Context, id models.ID) error {
	return remove(ctx, c, models.ResourceSkills, id)
}

func (c *HTTPClient) ListProjects(ctx context.Context) ([]models.Project, error) {
	return list[models.Project](ctx, c, models.ResourceProjects)
}

// GetProject fetches one project. Some backends answer a by-id request with a
// one-element array instead of an object; both shapes are accepted.
func (c *HTTPClient) GetProject(ctx context.Context, id models.ID) (*models.Project, error) {
	raw, err := call[json.RawMessage](ctx, c, http.MethodGet, "/"+string(models.ResourceProjects)+"/"+url.PathEscape(id.String()), nil, false)
	if err != nil {
		return nil, err
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] == '[' {
		var projects []models.Project
		if err := json.Unmarshal(raw, &projects); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		if len(projects) == 0 {
			return nil, nil
		}
		return &projects[0], nil
	}

	var p models.Project
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode project: %w", err)
	}
	return &p, nil
}

func (c *HTTPClient) CreateProject(ctx context.Context, p models.Project) (models.Project, error) {
	return create(ctx, c, models.ResourceProjects, p)
}

func (c *HTTPClient) UpdateProject(ctx context.Context, p models.Project) (models.Project, error) {
	return update(ctx, c, models.ResourceProjects, p)
}

func (c *HTTPClient) DeleteProject(ctx context.Context, id models.ID) error {
	return remove(ctx, c, models.ResourceProjects, id)
}

func (c *HTTPClient) ListExperiences(ctx context.Context) ([]models.Experience, error) {
	return list[models.Experience](ctx, c, models.ResourceExperiences)
}

func (c *HTTPClient) CreateExperience(ctx context.Context, e models.Experience) (models.Experience, error) {
	return create(ctx, c, models.ResourceExperiences, e)
}

func (c *HTTPClient) UpdateExperience(ctx context.Context, e models.Experience) (models.Experience, error) {
	return update(ctx, c, models.ResourceExperiences, e)
}

func (c *HTTPClient) DeleteExperience(ctx context.Context, id models.ID) error {
	return remove(ctx, c, models.ResourceExperiences, id)
}

func (c *HTTPClient) ListSocialLinks(ctx context.Context) ([]models.SocialLink, error) {
	return list[models.SocialLink](ctx, c, models.ResourceSocialLinks)
}

func (c *HTTPClient) CreateSocialLink(ctx context.Context, l models.SocialLink) (models.SocialLink, error) {
	return create(ctx, c, models.ResourceSocialLinks, l)
}

func (c *HTTPClient) UpdateSocialLink(ctx context.Context, l models.SocialLink) (models.SocialLink, error) {
	return update(ctx, c, models.ResourceSocialLinks, l)
}

func (c *HTTPClient) DeleteSocialLink(ctx context.Context, id models.ID) error {
	return remove(ctx, c, models.ResourceSocialLinks, id)
}

// SendContactMessage posts the public contact form. It carries no token.
func (c *HTTPClient) SendContactMessage(ctx context.Context, req models.ContactMessageRequest) error {
	_, err := call[json.RawMessage](ctx, c, http.MethodPost, "/contact/send", req, false)
	return err
}

func (c *HTTPClient) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	return list[models.ContactMessage](ctx, c, models.ResourceContact)
}

func (c *HTTPClient) DeleteMessage(ctx context.Context, id models.ID) error {
	return remove(ctx, c, models.ResourceContact, id)
}

func (c *HTTPClient) MarkMessageRead(ctx context.Context, id models.ID) error {
	_, err := call[json.RawMessage](ctx, c, http.MethodPost, "/contact/read/"+url.PathEscape(id.String()), nil, true)
	return err
}

func (c *HTTPClient) PresignUpload(ctx context.Context, req models.UploadRequest) (models.UploadTicket, error) {
	ticket, err := call[models.UploadTicket](ctx, c, http.MethodPost, "/uploads/presign", req, true)
	if err != nil {
		return models.UploadTicket{}, err
	}
	if ticket.UploadURL == "" {
		return models.UploadTicket{}, errors.New("presign response carries no upload url")
	}
	return ticket, nil
}
