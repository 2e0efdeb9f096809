package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	authdomain "github.com/lsweb/lsweb-api/internal/auth/domain"
	contactdomain "github.com/lsweb/lsweb-api/internal/contact/domain"
)

// Store talks to the Supabase REST interface. PostgREST has no native
// temporal type on the wire, so timestamps travel as RFC 3339 strings.
type Store struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewStore(baseURL, apiKey string) *Store {
	return &Store{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// NewStoreWithClient is used by tests to point the store at a local server.
func NewStoreWithClient(baseURL, apiKey string, client *http.Client) *Store {
	s := NewStore(baseURL, apiKey)
	s.client = client
	return s
}

type contactRow struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Company     string `json:"company,omitempty"`
	ProjectType string `json:"project_type"`
	Budget      string `json:"budget,omitempty"`
	Timeline    string `json:"timeline,omitempty"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	Status      string `json:"status"`
}

type userRow struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
	CreatedAt    string `json:"created_at"`
}

func (s *Store) Insert(ctx context.Context, req *contactdomain.ContactRequest) error {
	row := contactRow{
		ID:          req.ID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		ProjectType: req.ProjectType,
		Budget:      req.Budget,
		Timeline:    req.Timeline,
		Description: req.Description,
		CreatedAt:   req.CreatedAt.Format(time.RFC3339),
		Status:      req.Status,
	}

	return s.post(ctx, "/rest/v1/contact_requests", row)
}

func (s *Store) List(ctx context.Context, limit int) ([]contactdomain.ContactRequest, error) {
	path := fmt.Sprintf("/rest/v1/contact_requests?order=created_at.desc&limit=%d", limit)

	var rows []contactRow
	if err := s.get(ctx, path, &rows); err != nil {
		return nil, fmt.Errorf("failed to list contact requests: %w", err)
	}

	requests := make([]contactdomain.ContactRequest, 0, len(rows))
	for _, row := range rows {
		createdAt, err := time.Parse(time.RFC3339, row.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid created_at %q: %w", row.CreatedAt, err)
		}
		requests = append(requests, contactdomain.ContactRequest{
			ID:          row.ID,
			Name:        row.Name,
			Email:       row.Email,
			Phone:       row.Phone,
			Company:     row.Company,
			ProjectType: row.ProjectType,
			Budget:      row.Budget,
			Timeline:    row.Timeline,
			Description: row.Description,
			CreatedAt:   createdAt,
			Status:      row.Status,
		})
	}

	return requests, nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*authdomain.User, error) {
	path := fmt.Sprintf("/rest/v1/users?email=eq.%s&limit=1", url.QueryEscape(email))

	var rows []userRow
	if err := s.get(ctx, path, &rows); err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	row := rows[0]
	createdAt, err := time.Parse(time.RFC3339, row.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at %q: %w", row.CreatedAt, err)
	}

	return &authdomain.User{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         row.Role,
		CreatedAt:    createdAt,
	}, nil
}

func (s *Store) Create(ctx context.Context, user *authdomain.User) error {
	row := userRow{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		CreatedAt:    user.CreatedAt.Format(time.RFC3339),
	}

	return s.post(ctx, "/rest/v1/users", row)
}

func (s *Store) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	s.setHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	return nil
}

func (s *Store) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return err
	}
	s.setHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	return json.Unmarshal(data, out)
}

func (s *Store) setHeaders(req *http.Request) {
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")
}
