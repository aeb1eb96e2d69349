// Package catalog serves scheme detail, category browsing, plain text lookup
// and catalog statistics.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/sahayata/internal/domain"
	"github.com/kailas-cloud/sahayata/internal/domain/language"
	"github.com/kailas-cloud/sahayata/internal/domain/scheme"
)

// Browse limits.
const (
	DefaultCategoryLimit = 50
	DefaultSearchLimit   = 20
	MaxLimit             = 100
	MinSearchLength      = 2
)

// Service browses the catalog.
type Service struct {
	repo Repository
}

// New creates a catalog service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns one scheme or domain.ErrSchemeNotFound.
func (s *Service) Get(ctx context.Context, id int64) (scheme.Scheme, error) {
	sch, err := s.repo.Get(ctx, id)
	if err != nil {
		return scheme.Scheme{}, fmt.Errorf("get scheme %d: %w", id, err)
	}
	return sch, nil
}

// ByCategory returns schemes whose category contains name, case-insensitively.
func (s *Service) ByCategory(ctx context.Context, name string, limit int) ([]scheme.Scheme, error) {
	limit, err := clampLimit(limit, DefaultCategoryLimit)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil, fmt.Errorf("%w: category name is required", domain.ErrInvalidQuery)
	}
	return s.filter(ctx, limit, func(sch *scheme.Scheme) bool {
		return strings.Contains(strings.ToLower(sch.Category), needle)
	})
}

// Search looks text up in the localized name and description; English also
// covers beneficiary tags. Unlike chat search the language must be supported.
func (s *Service) Search(ctx context.Context, text, lang string, limit int) ([]scheme.Scheme, error) {
	needle := strings.ToLower(strings.TrimSpace(text))
	if utf8.RuneCountInString(needle) < MinSearchLength {
		return nil, fmt.Errorf("%w: query must be at least %d characters", domain.ErrInvalidQuery, MinSearchLength)
	}
	l := language.Language(lang)
	if lang == "" {
		l = language.English
	}
	if !l.IsValid() {
		return nil, fmt.Errorf("%w: unsupported language %q", domain.ErrInvalidQuery, lang)
	}
	limit, err := clampLimit(limit, DefaultSearchLimit)
	if err != nil {
		return nil, err
	}

	return s.filter(ctx, limit, func(sch *scheme.Scheme) bool {
		t := sch.In(l)
		if strings.Contains(strings.ToLower(t.Name), needle) ||
			strings.Contains(strings.ToLower(t.Description), needle) {
			return true
		}
		return l == language.English && strings.Contains(strings.ToLower(sch.BeneficiaryTags), needle)
	})
}

// Statistics counts schemes by origin and category.
func (s *Service) Statistics(ctx context.Context) (Statistics, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return Statistics{}, fmt.Errorf("list catalog: %w", err)
	}
	return summarize(all), nil
}

func (s *Service) filter(ctx context.Context, limit int, keep func(*scheme.Scheme) bool) ([]scheme.Scheme, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	out := make([]scheme.Scheme, 0)
	for i := range all {
		if len(out) == limit {
			break
		}
		if keep(&all[i]) {
			out = append(out, all[i])
		}
	}
	return out, nil
}

func clampLimit(limit, def int) (int, error) {
	switch {
	case limit == 0:
		return def, nil
	case limit < 0 || limit > MaxLimit:
		return 0, fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrInvalidQuery, MaxLimit)
	}
	return limit, nil
}
