package variant

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfigurator(opts ...Option) *Configurator {
	return NewConfigurator(decimal.NewFromInt(500), "SKU1", opts...)
}

func ids(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestConfigurator_SelectValues(t *testing.T) {
	c := newTestConfigurator()
	c.SelectValue(DimensionColor, "Red")
	c.SelectValue(DimensionColor, "Blue")
	c.SelectValue(DimensionSize, "S")
	c.SelectValue(DimensionSize, "M")

	p := c.Recompute()
	require.Len(t, p.Records, 4)
	assert.Equal(t, []string{"sku1-red-s", "sku1-red-m", "sku1-blue-s", "sku1-blue-m"}, ids(p.Records))

	for _, r := range p.Records {
		assert.Equal(t, r.ID, r.SKU)
		assert.Equal(t, 0, r.StockQuantity)
		assert.True(t, r.Available)
		assert.True(t, r.Price.Equal(decimal.NewFromInt(500)))
		assert.Nil(t, r.SalePrice)
		assert.NotNil(t, r.Images)
		assert.Empty(t, r.Images)
	}
	assert.Equal(t, []string{"Red", "Blue"}, p.Colors())
	assert.Equal(t, []string{"S", "M"}, p.Sizes())
}

func TestConfigurator_SelectValue_Rejections(t *testing.T) {
	c := newTestConfigurator()
	require.True(t, c.SelectValue(DimensionColor, "Red"))
	version := c.GetVersion()

	assert.False(t, c.SelectValue(DimensionColor, "Red"))
	assert.False(t, c.SelectValue(DimensionColor, "   "))
	assert.False(t, c.SelectValue("material", "Cotton"))
	assert.Equal(t, version, c.GetVersion())
	assert.Equal(t, []string{"Red"}, c.Selected(DimensionColor))
}

func TestConfigurator_SingleDimension(t *testing.T) {
	c := newTestConfigurator()
	c.SelectValue(DimensionSize, "XL")

	p := c.Recompute()
	require.Len(t, p.Records, 1)
	assert.Equal(t, "", p.Records[0].Color())
	assert.Equal(t, "XL", p.Records[0].Size())
	assert.Equal(t, "sku1-xl", p.Records[0].SKU)
}

func TestConfigurator_NoSelection(t *testing.T) {
	c := newTestConfigurator()
	p := c.Recompute()
	assert.NotNil(t, p.Records)
	assert.Empty(t, p.Records)
	assert.Equal(t, 0, c.CombinationCount())
}

func TestConfigurator_OverridesSurviveRecompute(t *testing.T) {
	c := newTestConfigurator()
	c.SelectValue(DimensionColor, "Red")
	c.SelectValue(DimensionSize, "M")

	id := NewIdentity("Red", "M")
	c.SetOverride(id, Override{StockQuantity: Ptr(5)})

	c.SelectValue(DimensionSize, "L")
	c.SelectValue(DimensionColor, "Blue")

	p := c.Recompute()
	require.Len(t, p.Records, 4)
	for _, r := range p.Records {
		if r.Identity == id {
			assert.Equal(t, 5, r.StockQuantity)
		} else {
			assert.Equal(t, 0, r.StockQuantity)
		}
	}
}

func TestConfigurator_DeselectCascades(t *testing.T) {
	c := newTestConfigurator()
	c.SelectValue(DimensionColor, "Red")
	c.SelectValue(DimensionColor, "Blue")
	c.SelectValue(DimensionSize, "M")
	c.SelectValue(DimensionSize, "L")

	c.SetOverrideFor(Combination{"Red", "M"}, Override{StockQuantity: Ptr(1)})
	c.SetOverrideFor(Combination{"Red", "L"}, Override{StockQuantity: Ptr(2)})
	c.SetOverrideFor(Combination{"Blue", "M"}, Override{StockQuantity: Ptr(3)})
	c.ClearDomainEvents()

	require.True(t, c.DeselectValue(DimensionSize, "M"))

	assert.Equal(t, 1, c.OverrideCount())
	assert.True(t, c.HasOverride(NewIdentity("Red", "L")))
	assert.False(t, c.HasOverride(NewIdentity("Red", "M")))
	assert.False(t, c.HasOverride(NewIdentity("Blue", "M")))

	events := c.PullDomainEvents()
	require.Len(t, events, 1)
	deselected, ok := events[0].(*ValueDeselectedEvent)
	require.True(t, ok)
	assert.Equal(t, []Identity{NewIdentity("Red", "M"), NewIdentity("Blue", "M")}, deselected.Cascaded)

	t.Run("re-adding does not revive deleted overrides", func(t *testing.T) {
		c.SelectValue(DimensionSize, "M")
		p := c.Recompute()
		for _, r := range p.Records {
			if r.Size() == "M" {
				assert.Equal(t, 0, r.StockQuantity)
			}
		}
		// new value goes to the end
		assert.Equal(t, []string{"L", "M"}, c.Selected(DimensionSize))
	})
}

func TestConfigurator_AddingDimensionStartsFreshOverride(t *testing.T) {
	c := newTestConfigurator()
	c.SelectValue(DimensionColor, "Red")
	c.SetOverrideFor(Combination{"Red", ""}, Override{StockQuantity: Ptr(9)})

	p := c.Recompute()
	require.Len(t, p.Records, 1)
	assert.Equal(t, 9, p.Records[0].StockQuantity)

	c.SelectValue(DimensionSize, "M")
	p = c.Recompute()
	require.Len(t, p.Records, 1)
	assert.Equal(t, "sku1-red-m", p.Records[0].ID)
	assert.Equal(t, 0, p.Records[0].StockQuantity)

	// the size-less override is kept, just no longer reachable
	require.True(t, c.HasOverride(NewIdentity("Red", "")))
	assert.Equal(t, 9, *c.Override(NewIdentity("Red", "")).StockQuantity)
}

func TestConfigurator_DeselectUnknown(t *testing.T) {
	c := newTestConfigurator()
	c.SelectValue(DimensionColor, "Red")
	assert.False(t, c.DeselectValue(DimensionColor, "Blue"))
	assert.False(t, c.DeselectValue("material", "Red"))
	assert.Equal(t, []string{"Red"}, c.Selected(DimensionColor))
}

func TestConfigurator_DeselectDoesNotMatchSimilarValues(t *testing.T) {
	c := newTestConfigurator()
	c.SelectValue(DimensionColor, "White")
	c.SelectValue(DimensionColor, "Off-White")
	c.SelectValue(DimensionSize, "M")
	c.SetOverrideFor(Combination{"Off-White", "M"}, Override{StockQuantity: Ptr(4)})

	c.DeselectValue(DimensionColor, "White")

	p := c.Recompute()
	require.Len(t, p.Records, 1)
	assert.Equal(t, 4, p.Records[0].StockQuantity)
}

func TestConfigurator_UniformPricing(t *testing.T) {
	c := newTestConfigurator()
	c.SelectValue(DimensionColor, "Red")
	c.SelectValue(DimensionColor, "Blue")
	require.True(t, c.SetPricingMode(PricingPerVariant, decimal.Zero))

	c.SetOverrideFor(Combination{"Red", ""}, Override{Price: Ptr(decimal.NewFromInt(750))})

	p := c.Recompute()
	assert.True(t, p.Records[0].Price.Equal(decimal.NewFromInt(750)))
	assert.True(t, p.Records[1].Price.Equal(decimal.NewFromInt(500)))

	require.True(t, c.SetPricingMode(PricingUniform, decimal.NewFromInt(999)))
	for _, r := range c.Recompute().Records {
		assert.True(t, r.Price.Equal(decimal.NewFromInt(999)))
	}

	require.True(t, c.SetPricingMode(PricingPerVariant, decimal.Zero))
	p = c.Recompute()
	assert.True(t, p.Records[0].Price.Equal(decimal.NewFromInt(750)))
	assert.True(t, p.Records[1].Price.Equal(decimal.NewFromInt(500)))
}

func TestConfigurator_SetPricingMode_NoOp(t *testing.T) {
	c := newTestConfigurator()
	assert.Equal(t, PricingUniform, c.Pricing().Mode)
	assert.True(t, c.Pricing().UniformPrice.Equal(decimal.NewFromInt(500)))

	assert.False(t, c.SetPricingMode(PricingUniform, decimal.NewFromInt(500)))
	assert.False(t, c.SetPricingMode("tiered", decimal.NewFromInt(1)))
}

func TestConfigurator_RecomputeIsIdempotent(t *testing.T) {
	c := newTestConfigurator()
	c.SelectValue(DimensionColor, "Red")
	c.SelectValue(DimensionSize, "S")
	c.SetOverrideFor(Combination{"Red", "S"}, Override{Images: []string{"a.jpg"}, SalePrice: Ptr(decimal.NewFromInt(400))})

	version := c.GetVersion()
	first := c.Recompute()
	second := c.Recompute()
	assert.Equal(t, first, second)
	assert.Equal(t, version, c.GetVersion())
}

func TestConfigurator_OnChange(t *testing.T) {
	var (
		calls  int
		last   []Record
		colors []string
		sizes  []string
	)
	c := newTestConfigurator(WithOnChange(func(records []Record, cs, ss []string) {
		calls++
		last = records
		colors = cs
		sizes = ss
	}))

	c.SelectValue(DimensionColor, "Red")
	assert.Equal(t, 1, calls)
	require.Len(t, last, 1)
	assert.Equal(t, []string{"Red"}, colors)
	assert.Empty(t, sizes)

	c.SelectValue(DimensionSize, "S")
	assert.Equal(t, 2, calls)
	assert.Equal(t, "sku1-red-s", last[0].ID)

	c.SelectValue(DimensionSize, "S")
	assert.Equal(t, 2, calls, "rejected mutation must not notify")

	c.DeselectValue(DimensionColor, "Red")
	assert.Equal(t, 3, calls)
	require.Len(t, last, 1)
	assert.Equal(t, "", last[0].Color())
}

func TestConfigurator_ClearOverrideFields(t *testing.T) {
	c := newTestConfigurator()
	c.SelectValue(DimensionColor, "Red")
	id := NewIdentity("Red", "")
	c.SetOverride(id, Override{SKU: Ptr("custom"), StockQuantity: Ptr(3)})

	require.True(t, c.ClearOverrideFields(id, FieldSKU))
	r := c.Recompute().Records[0]
	assert.Equal(t, "sku1-red", r.SKU)
	assert.Equal(t, 3, r.StockQuantity)

	assert.False(t, c.ClearOverrideFields(NewIdentity("Blue", ""), FieldSKU))
}

func TestConfigurator_SavedIDAndAvailability(t *testing.T) {
	c := newTestConfigurator()
	c.SelectValue(DimensionColor, "Red")
	c.SetOverrideFor(Combination{"Red", ""}, Override{ID: Ptr("v-123"), Available: Ptr(false)})

	r := c.Recompute().Records[0]
	assert.Equal(t, "v-123", r.ID)
	assert.Equal(t, "sku1-red", r.SKU)
	assert.False(t, r.Available)
}

func TestConfigurator_SetBase(t *testing.T) {
	c := newTestConfigurator(WithPricing(PricingPerVariant, decimal.Zero))
	c.SelectValue(DimensionColor, "Red")

	c.SetBase(decimal.NewFromInt(650), "TEE")

	r := c.Recompute().Records[0]
	assert.Equal(t, "tee-red", r.SKU)
	assert.True(t, r.Price.Equal(decimal.NewFromInt(650)))
}

func TestConfigurator_Hydrate(t *testing.T) {
	t.Run("same saved prices stay uniform", func(t *testing.T) {
		c := newTestConfigurator()
		c.Hydrate([]SavedVariant{
			{ID: "v1", Attributes: map[Dimension]string{DimensionColor: "Red", DimensionSize: "S"}, Price: decimal.NewFromInt(800), SKU: "A-1", StockQuantity: 4, Available: true},
			{ID: "v2", Attributes: map[Dimension]string{DimensionColor: "Blue", DimensionSize: "S"}, Price: decimal.NewFromInt(800), SKU: "A-2", StockQuantity: 0, Available: false},
		})

		assert.Equal(t, []string{"Red", "Blue"}, c.Selected(DimensionColor))
		assert.Equal(t, []string{"S"}, c.Selected(DimensionSize))
		assert.Equal(t, PricingUniform, c.Pricing().Mode)
		assert.True(t, c.Pricing().UniformPrice.Equal(decimal.NewFromInt(800)))

		p := c.Recompute()
		require.Len(t, p.Records, 2)
		assert.Equal(t, "v1", p.Records[0].ID)
		assert.Equal(t, "A-1", p.Records[0].SKU)
		assert.Equal(t, 4, p.Records[0].StockQuantity)
		assert.False(t, p.Records[1].Available)
	})

	t.Run("differing saved prices switch to per-variant", func(t *testing.T) {
		c := newTestConfigurator()
		c.Hydrate([]SavedVariant{
			{Attributes: map[Dimension]string{DimensionColor: "Red"}, Price: decimal.NewFromInt(800), SKU: "A-1", Available: true},
			{Attributes: map[Dimension]string{DimensionColor: "Blue"}, Price: decimal.NewFromInt(900), SKU: "A-2", Available: true},
		})

		assert.Equal(t, PricingPerVariant, c.Pricing().Mode)
		assert.Empty(t, c.Selected(DimensionSize))

		p := c.Recompute()
		require.Len(t, p.Records, 2)
		assert.True(t, p.Records[0].Price.Equal(decimal.NewFromInt(800)))
		assert.True(t, p.Records[1].Price.Equal(decimal.NewFromInt(900)))
		assert.Equal(t, "sku1-red", p.Records[0].ID)
	})

	t.Run("empty saved sku keeps the derived sku", func(t *testing.T) {
		c := newTestConfigurator()
		c.Hydrate([]SavedVariant{
			{Attributes: map[Dimension]string{DimensionColor: "Red"}, Price: decimal.NewFromInt(500), Available: true},
		})

		p := c.Recompute()
		require.Len(t, p.Records, 1)
		assert.Equal(t, "sku1-red", p.Records[0].ID)
		assert.Equal(t, "sku1-red", p.Records[0].SKU)
	})

	t.Run("per-variant mode survives agreeing saved prices", func(t *testing.T) {
		c := newTestConfigurator(WithPricing(PricingPerVariant, decimal.NewFromInt(500)))
		c.Hydrate([]SavedVariant{
			{Attributes: map[Dimension]string{DimensionColor: "Red"}, Price: decimal.NewFromInt(800), Available: true},
			{Attributes: map[Dimension]string{DimensionColor: "Blue"}, Price: decimal.NewFromInt(800), Available: true},
		})

		assert.Equal(t, PricingPerVariant, c.Pricing().Mode)
		p := c.Recompute()
		require.Len(t, p.Records, 2)
		assert.True(t, p.Records[0].Price.Equal(decimal.NewFromInt(800)))
		assert.True(t, p.Records[1].Price.Equal(decimal.NewFromInt(800)))
	})

	t.Run("nothing saved is a no-op", func(t *testing.T) {
		c := newTestConfigurator()
		version := c.GetVersion()
		c.Hydrate(nil)
		assert.Equal(t, version, c.GetVersion())
	})
}

func TestConfigurator_Events(t *testing.T) {
	c := newTestConfigurator()
	c.SelectValue(DimensionColor, "Red")
	c.SetOverrideFor(Combination{"Red", ""}, Override{StockQuantity: Ptr(2)})
	c.SetPricingMode(PricingPerVariant, decimal.Zero)
	assert.Equal(t, 3, c.PendingEvents())

	events := c.PullDomainEvents()
	require.Len(t, events, 3)
	assert.Equal(t, EventTypeValueSelected, events[0].EventType())
	assert.Equal(t, EventTypeOverrideChanged, events[1].EventType())
	assert.Equal(t, EventTypePricingModeChanged, events[2].EventType())
	for _, e := range events {
		assert.Equal(t, c.ID, e.AggregateID())
		assert.Equal(t, AggregateTypeConfigurator, e.AggregateType())
	}

	changed := events[1].(*OverrideChangedEvent)
	assert.Equal(t, []Field{FieldStockQuantity}, changed.Fields)

	pricing := events[2].(*PricingModeChangedEvent)
	assert.Equal(t, PricingUniform, pricing.OldMode)
	assert.Equal(t, PricingPerVariant, pricing.NewMode)

	assert.Zero(t, c.PendingEvents())
	assert.Equal(t, 4, c.GetVersion())
}

func TestConfigurator_CustomDimensions(t *testing.T) {
	c := newTestConfigurator(WithDimensions("material", DimensionColor))
	c.SelectValue("material", "Cotton")
	c.SelectValue(DimensionColor, "Red")
	c.SelectValue(DimensionColor, "Blue")

	assert.False(t, c.HasDimension(DimensionSize))
	assert.Equal(t, 2, c.CombinationCount())
	p := c.Recompute()
	assert.Equal(t, []string{"sku1-cotton-red", "sku1-cotton-blue"}, ids(p.Records))
	assert.Equal(t, Combination{"Cotton", "Red"}, c.Combination(map[Dimension]string{DimensionColor: "Red", "material": "Cotton"}))
}
