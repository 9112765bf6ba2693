package variant

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/erp/variants/internal/domain/shared"
	"github.com/erp/variants/internal/domain/variant"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session is one product editing session. It validates requests, drives the
// configurator and publishes the domain events each change raises.
//
// A Session is not safe for concurrent use; each editor owns its own.
type Session struct {
	id           uuid.UUID
	configurator *variant.Configurator
	settings     Settings
	publisher    shared.EventPublisher
	logger       *zap.Logger
	validate     *validator.Validate
}

// NewSession opens a session, hydrating it from the saved variants in req.
// publisher and logger may be nil.
func NewSession(
	ctx context.Context,
	settings Settings,
	publisher shared.EventPublisher,
	logger *zap.Logger,
	req OpenSessionRequest,
	opts ...variant.Option,
) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if publisher == nil {
		publisher = shared.NopPublisher{}
	}
	s := &Session{
		id:        uuid.New(),
		settings:  settings.withDefaults(),
		publisher: publisher,
		validate:  newValidator(),
	}
	s.logger = logger.With(zap.String("session_id", s.id.String()))

	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}
	if err := checkAmounts(namedAmount{"base_price", &req.BasePrice}); err != nil {
		return nil, err
	}
	for i := range req.Variants {
		if err := checkAmounts(
			namedAmount{fmt.Sprintf("variants[%d].price", i), &req.Variants[i].Price},
			namedAmount{fmt.Sprintf("variants[%d].sale_price", i), req.Variants[i].SalePrice},
		); err != nil {
			return nil, err
		}
	}

	if s.settings.DefaultPricingMode != variant.PricingUniform {
		opts = append([]variant.Option{variant.WithPricing(s.settings.DefaultPricingMode, req.BasePrice)}, opts...)
	}
	s.configurator = variant.NewConfigurator(req.BasePrice, req.BaseSKU, opts...)

	if len(req.Variants) > 0 {
		saved := make([]variant.SavedVariant, len(req.Variants))
		for i, v := range req.Variants {
			saved[i] = toSavedVariant(v)
		}
		s.configurator.Hydrate(saved)
		if count := s.configurator.CombinationCount(); count > s.settings.MaxCombinations {
			return nil, s.tooMany(count)
		}
	}

	s.logger.Debug("Variant session opened",
		zap.String("base_sku", req.BaseSKU),
		zap.String("base_price", req.BasePrice.String()),
		zap.Int("saved_variants", len(req.Variants)),
		zap.Int("variant_count", s.configurator.CombinationCount()),
	)
	s.flush(ctx)
	return s, nil
}

// ID returns the session ID
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Configurator exposes the underlying configurator for read access
func (s *Session) Configurator() *variant.Configurator {
	return s.configurator
}

// Projection returns the current variant list
func (s *Session) Projection() *ProjectionResponse {
	return ToProjectionResponse(s.configurator.Recompute(), s.configurator.Pricing(), s.settings.Currency)
}

// Select adds a value to a dimension. Re-selecting an existing value is a no-op.
func (s *Session) Select(ctx context.Context, req SelectValueRequest) (*ProjectionResponse, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}
	dim, err := s.dimension(req.Dimension)
	if err != nil {
		return nil, err
	}
	if count := s.countWith(dim, req.Value); count > s.settings.MaxCombinations {
		return nil, s.tooMany(count)
	}

	if s.configurator.SelectValue(dim, req.Value) {
		s.logger.Debug("Variant value selected",
			zap.String("dimension", dim.String()),
			zap.String("value", req.Value),
			zap.Int("variant_count", s.configurator.CombinationCount()),
		)
		s.flush(ctx)
	}
	return s.Projection(), nil
}

// Deselect removes a value from a dimension, deleting the overrides of every
// variant that used it
func (s *Session) Deselect(ctx context.Context, req SelectValueRequest) (*ProjectionResponse, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}
	dim, err := s.dimension(req.Dimension)
	if err != nil {
		return nil, err
	}

	before := s.configurator.OverrideCount()
	if s.configurator.DeselectValue(dim, req.Value) {
		if removed := before - s.configurator.OverrideCount(); removed > 0 {
			s.logger.Info("Variant overrides removed with deselected value",
				zap.String("dimension", dim.String()),
				zap.String("value", req.Value),
				zap.Int("removed", removed),
			)
		}
		s.logger.Debug("Variant value deselected",
			zap.String("dimension", dim.String()),
			zap.String("value", req.Value),
			zap.Int("variant_count", s.configurator.CombinationCount()),
		)
		s.flush(ctx)
	}
	return s.Projection(), nil
}

// SetOverride edits fields of one variant
func (s *Session) SetOverride(ctx context.Context, req OverrideRequest) (*ProjectionResponse, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}
	if err := checkAmounts(
		namedAmount{"price", req.Price},
		namedAmount{"sale_price", req.SalePrice},
	); err != nil {
		return nil, err
	}

	patch := toOverride(req)
	if patch.IsEmpty() {
		return s.Projection(), nil
	}
	id := s.identity(req.Color, req.Size)
	s.configurator.SetOverride(id, patch)
	s.logger.Debug("Variant override set",
		zap.String("identity", id.String()),
		zap.Any("fields", patch.Fields()),
	)
	s.flush(ctx)
	return s.Projection(), nil
}

// ClearOverride resets fields of one variant to their computed defaults
func (s *Session) ClearOverride(ctx context.Context, req ClearOverrideRequest) (*ProjectionResponse, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}

	id := s.identity(req.Color, req.Size)
	if s.configurator.ClearOverrideFields(id, toFields(req.Fields)...) {
		s.logger.Debug("Variant override cleared",
			zap.String("identity", id.String()),
			zap.Strings("fields", req.Fields),
		)
		s.flush(ctx)
	}
	return s.Projection(), nil
}

// SetPricing switches the pricing mode. Stored per-variant prices survive
// a round trip through uniform mode.
func (s *Session) SetPricing(ctx context.Context, req PricingRequest) (*ProjectionResponse, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}
	if err := checkAmounts(namedAmount{"uniform_price", req.UniformPrice}); err != nil {
		return nil, err
	}
	mode, ok := variant.ParsePricingMode(req.Mode)
	if !ok {
		return nil, shared.Errorf(shared.CodeInvalidInput, "Invalid input: unknown pricing mode %q", req.Mode)
	}

	price := s.configurator.BasePrice()
	if req.UniformPrice != nil {
		price = *req.UniformPrice
	} else if current := s.configurator.Pricing(); current.Mode == variant.PricingUniform {
		price = current.UniformPrice
	}
	if mode == variant.PricingPerVariant && req.UniformPrice == nil {
		price = s.configurator.Pricing().UniformPrice
	}

	if s.configurator.SetPricingMode(mode, price) {
		s.logger.Debug("Variant pricing mode changed",
			zap.String("mode", string(mode)),
			zap.String("uniform_price", price.String()),
		)
		s.flush(ctx)
	}
	return s.Projection(), nil
}

// SetBase updates the product base price and SKU used for variant defaults
func (s *Session) SetBase(ctx context.Context, req BaseRequest) (*ProjectionResponse, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}
	if err := checkAmounts(namedAmount{"base_price", &req.BasePrice}); err != nil {
		return nil, err
	}
	s.configurator.SetBase(req.BasePrice, req.BaseSKU)
	s.flush(ctx)
	return s.Projection(), nil
}

// Suggestions lists catalog values not yet selected in a dimension
func (s *Session) Suggestions(dimension string) ([]string, error) {
	dim, err := s.dimension(dimension)
	if err != nil {
		return nil, err
	}
	return s.configurator.SuggestedValues(dim), nil
}

func (s *Session) dimension(name string) (variant.Dimension, error) {
	dim := variant.Dimension(strings.ToLower(strings.TrimSpace(name)))
	if !s.configurator.HasDimension(dim) {
		return "", shared.Errorf(shared.CodeUnknownDimension, "Unknown attribute dimension %q", name)
	}
	return dim, nil
}

func (s *Session) identity(color, size string) variant.Identity {
	return s.configurator.Combination(map[variant.Dimension]string{
		variant.DimensionColor: color,
		variant.DimensionSize:  size,
	}).Identity()
}

// countWith returns the variant count the selection would have with value added to dim
func (s *Session) countWith(dim variant.Dimension, value string) int {
	count := 0
	for _, d := range s.configurator.Dimensions() {
		n := len(s.configurator.Selected(d))
		if d == dim && strings.TrimSpace(value) != "" && !slices.Contains(s.configurator.Selected(d), value) {
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

func (s *Session) tooMany(count int) error {
	return shared.Errorf(shared.CodeTooManyCombinations,
		"Selection produces %d variants, at most %d are allowed", count, s.settings.MaxCombinations)
}

// flush publishes the events raised since the last flush.
// Publishing failures are logged; the change itself has already been applied.
func (s *Session) flush(ctx context.Context) {
	events := s.configurator.PullDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish variant events",
			zap.Int("event_count", len(events)),
			zap.Error(err),
		)
	}
}
