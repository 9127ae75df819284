package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrencyIndianGrouping(t *testing.T) {
	assert.Equal(t, "₹800", Currency(800))
	assert.Equal(t, "₹1,600", Currency(1600))
	assert.Equal(t, "₹12,500", Currency(12500))
	assert.Equal(t, "₹1,25,000", Currency(125000))
	assert.Equal(t, "₹12,34,56,789", Currency(123456789))
	assert.Equal(t, "₹0", Currency(0))
	assert.Equal(t, "-₹1,600", Currency(-1600))
}

func TestTwelveHourTime(t *testing.T) {
	assert.Equal(t, "6:00 AM", Time("06:00"))
	assert.Equal(t, "6:30 PM", Time("18:30"))
	assert.Equal(t, "12:00 PM", Time("12:00"))
	assert.Equal(t, "12:15 AM", Time("00:15"))
	assert.Equal(t, "garbage", Time("garbage"))
}
