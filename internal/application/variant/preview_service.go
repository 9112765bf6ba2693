package variant

import (
	"context"
	"slices"
	"strings"

	"github.com/erp/variants/internal/domain/shared"
	"github.com/erp/variants/internal/domain/variant"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// PreviewService recomputes a variant list from a complete editor state.
// It keeps nothing between calls.
type PreviewService struct {
	settings  Settings
	publisher shared.EventPublisher
	logger    *zap.Logger
	validate  *validator.Validate
}

// NewPreviewService creates a new PreviewService
func NewPreviewService(settings Settings, publisher shared.EventPublisher, logger *zap.Logger) *PreviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PreviewService{
		settings:  settings.withDefaults(),
		publisher: publisher,
		logger:    logger,
		validate:  newValidator(),
	}
}

// Settings returns the effective settings
func (s *PreviewService) Settings() Settings {
	return s.settings
}

// Preview replays req against a fresh session: saved variants are hydrated,
// the selections are brought in line with Colors and Sizes, then overrides
// and pricing are applied in that order.
//
// A nil Colors or Sizes keeps the hydrated selection of that dimension.
// Values missing from a non-nil list are deselected and their overrides dropped.
func (s *PreviewService) Preview(ctx context.Context, req PreviewRequest) (*ProjectionResponse, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}
	if count := requestedCount(req); count > s.settings.MaxCombinations {
		return nil, shared.Errorf(shared.CodeTooManyCombinations,
			"Selection produces %d variants, at most %d are allowed", count, s.settings.MaxCombinations)
	}

	session, err := NewSession(ctx, s.settings, s.publisher, s.logger, OpenSessionRequest{
		BasePrice: req.BasePrice,
		BaseSKU:   req.BaseSKU,
		Variants:  req.Variants,
	})
	if err != nil {
		return nil, err
	}

	if req.Colors != nil {
		if err := s.syncSelection(ctx, session, variant.DimensionColor, req.Colors); err != nil {
			return nil, err
		}
	}
	if req.Sizes != nil {
		if err := s.syncSelection(ctx, session, variant.DimensionSize, req.Sizes); err != nil {
			return nil, err
		}
	}

	for _, o := range req.Overrides {
		if _, err := session.SetOverride(ctx, o); err != nil {
			return nil, err
		}
	}

	if req.Pricing != nil {
		if _, err := session.SetPricing(ctx, *req.Pricing); err != nil {
			return nil, err
		}
	}

	resp := session.Projection()
	s.logger.Debug("Variant preview computed",
		zap.String("session_id", session.ID().String()),
		zap.Int("variant_count", resp.VariantCount),
		zap.String("pricing_mode", resp.PricingMode),
	)
	return resp, nil
}

// Suggestions returns the suggested-value catalog
func (s *PreviewService) Suggestions() *SuggestionsResponse {
	return &SuggestionsResponse{
		Colors: variant.SuggestedColors(),
		Sizes:  variant.SuggestedSizes(),
	}
}

// syncSelection deselects values not in want, then selects want in order
func (s *PreviewService) syncSelection(ctx context.Context, session *Session, dim variant.Dimension, want []string) error {
	for _, current := range session.Configurator().Selected(dim) {
		if slices.Contains(want, current) {
			continue
		}
		if _, err := session.Deselect(ctx, SelectValueRequest{Dimension: dim.String(), Value: current}); err != nil {
			return err
		}
	}
	for _, v := range want {
		if strings.TrimSpace(v) == "" {
			continue
		}
		if _, err := session.Select(ctx, SelectValueRequest{Dimension: dim.String(), Value: v}); err != nil {
			return err
		}
	}
	return nil
}

// requestedCount is the variant count the explicit selections describe,
// counting each distinct non-blank value once
func requestedCount(req PreviewRequest) int {
	count := 0
	for _, values := range [][]string{req.Colors, req.Sizes} {
		n := 0
		seen := make(map[string]struct{}, len(values))
		for _, v := range values {
			if _, dup := seen[v]; dup || strings.TrimSpace(v) == "" {
				continue
			}
			seen[v] = struct{}{}
			n++
		}
		if n == 0 {
			continue
		}
		if count == 0 {
			count = 1
		}
		count *= n
	}
	return count
}
