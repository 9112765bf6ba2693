package variant

import (
	"github.com/erp/variants/internal/domain/shared/valueobject"
	"github.com/erp/variants/internal/domain/variant"
)

// Settings are the engine limits and defaults shared by every session
type Settings struct {
	Currency           valueobject.Currency
	MaxCombinations    int
	DefaultPricingMode variant.PricingMode
}

// DefaultSettings returns the settings used when no configuration is given
func DefaultSettings() Settings {
	return Settings{
		Currency:           valueobject.DefaultCurrency,
		MaxCombinations:    500,
		DefaultPricingMode: variant.PricingUniform,
	}
}

func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.Currency == "" {
		s.Currency = d.Currency
	}
	if s.MaxCombinations <= 0 {
		s.MaxCombinations = d.MaxCombinations
	}
	if !s.DefaultPricingMode.IsValid() {
		s.DefaultPricingMode = d.DefaultPricingMode
	}
	return s
}
