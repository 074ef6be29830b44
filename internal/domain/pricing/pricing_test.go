package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rateboard/internal/domain/shared/dates"
)

func TestDayPriceFor(t *testing.T) {
	p := DayPrice{Weekday: 100000, Friday: 120000, Saturday: 350000, Sunday: 110000}

	assert.Equal(t, 100000, p.For(dates.Weekday))
	assert.Equal(t, 120000, p.For(dates.Friday))
	assert.Equal(t, 350000, p.For(dates.Saturday))
	assert.Equal(t, 110000, p.For(dates.Sunday))
}

func TestDayConfigurationFor(t *testing.T) {
	t.Run("nil configuration is safe", func(t *testing.T) {
		var cfg *DayConfiguration
		assert.Nil(t, cfg.For(dates.Saturday))
	})

	t.Run("only the configured slot answers", func(t *testing.T) {
		cfg := &DayConfiguration{Saturday: &Configuration{Method: Percentage, Value: 30}}
		assert.Nil(t, cfg.For(dates.Weekday))
		if assert.NotNil(t, cfg.For(dates.Saturday)) {
			assert.Equal(t, 30, cfg.For(dates.Saturday).Value)
		}
	})
}

func TestFromPercentage(t *testing.T) {
	assert.Equal(t, 1820000, FromPercentage(1400000, 30))
	assert.Equal(t, 90000, FromPercentage(100000, -10))
	assert.Equal(t, 100000, FromPercentage(100000, 0))
	// rounds to nearest whole amount
	assert.Equal(t, 117, FromPercentage(111, 5))
}

func TestApplyChange(t *testing.T) {
	t.Run("percentage increase rounds", func(t *testing.T) {
		assert.Equal(t, 115000, ApplyChange(100000, PercentageIncrease, 15))
		assert.Equal(t, 117, ApplyChange(111, PercentageIncrease, 5))
	})

	t.Run("percentage decrease rounds", func(t *testing.T) {
		assert.Equal(t, 85000, ApplyChange(100000, PercentageDecrease, 15))
	})

	t.Run("amount operations are literal", func(t *testing.T) {
		assert.Equal(t, 130000, ApplyChange(100000, AmountIncrease, 30000))
		assert.Equal(t, 70000, ApplyChange(100000, AmountDecrease, 30000))
	})

	t.Run("amount decrease can go negative until clamped", func(t *testing.T) {
		assert.Equal(t, -20000, ApplyChange(10000, AmountDecrease, 30000))
		assert.Equal(t, 0, Clamp(ApplyChange(10000, AmountDecrease, 30000)))
	})

	t.Run("fixed replaces the rate", func(t *testing.T) {
		assert.Equal(t, 500000, ApplyChange(100000, Fixed, 500000))
	})

	t.Run("unknown operation leaves the rate untouched", func(t *testing.T) {
		assert.Equal(t, 100000, ApplyChange(100000, ChangeType("mystery"), 42))
	})
}

func TestChangeTypeValid(t *testing.T) {
	for _, op := range []ChangeType{PercentageIncrease, PercentageDecrease, AmountIncrease, AmountDecrease, Fixed} {
		assert.True(t, op.Valid(), string(op))
	}
	assert.False(t, ChangeType("half-price-tuesdays").Valid())
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 123000, RoundTo(123400, 1000))
	assert.Equal(t, 124000, RoundTo(123500, 1000))
	assert.Equal(t, 120000, RoundTo(123400, 10000))
	assert.Equal(t, 123400, RoundTo(123400, 0))
}
