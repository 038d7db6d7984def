package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jask/coursedeck/internal/catalog"
)

// ErrUnexpectedStatus is returned for any non-2xx catalog response.
var ErrUnexpectedStatus = errors.New("unexpected status")

const maxBodyBytes = 8 << 20

// HTTPSource reads the catalog from three JSON endpoints.
type HTTPSource struct {
	BaseURL         string
	DepartmentsPath string
	SemestersPath   string
	SubjectsPath    string

	Client *http.Client
	Log    zerolog.Logger
}

// NewHTTPSource uses the default endpoint paths and a client with timeout.
func NewHTTPSource(baseURL string, timeout time.Duration, log zerolog.Logger) *HTTPSource {
	return &HTTPSource{
		BaseURL:         baseURL,
		DepartmentsPath: "/departments",
		SemestersPath:   "/semesters",
		SubjectsPath:    "/subjects",
		Client:          &http.Client{Timeout: timeout},
		Log:             log,
	}
}

func (s *HTTPSource) Departments(ctx context.Context) ([]catalog.Department, error) {
	return fetchList[catalog.Department](ctx, s, catalog.Departments, s.DepartmentsPath)
}

func (s *HTTPSource) Semesters(ctx context.Context) ([]catalog.Semester, error) {
	return fetchList[catalog.Semester](ctx, s, catalog.Semesters, s.SemestersPath)
}

func (s *HTTPSource) Subjects(ctx context.Context) ([]catalog.Subject, error) {
	return fetchList[catalog.Subject](ctx, s, catalog.Subjects, s.SubjectsPath)
}

func (s *HTTPSource) url(path string) string {
	return strings.TrimRight(s.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

func fetchList[T any](ctx context.Context, s *HTTPSource, c catalog.Collection, path string) ([]T, error) {
	url := s.url(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", c, err)
	}
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c, err)
	}
	defer resp.Body.Close()

	s.Log.Debug().Str("collection", string(c)).Str("url", url).Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).Msg("catalog fetch")

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", c, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s: %w %d", c, ErrUnexpectedStatus, resp.StatusCode)
	}

	list, err := decodeList[T](body)
	if err != nil {
		return nil, fmt.Errorf("%s: decode: %w", c, err)
	}
	if err := catalog.ValidateAll(string(c), list); err != nil {
		return nil, err
	}
	return list, nil
}

// decodeList accepts a bare JSON array or an object with a "data" array.
func decodeList[T any](body []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, errors.New("empty body")
	}
	var out []T
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
	var env struct {
		Data *[]T `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, errors.New(`expected an array or an object with "data"`)
	}
	return *env.Data, nil
}
