package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalRevenueExcludesOnlyCanceled(t *testing.T) {
	snap := Snapshot{Orders: []Order{
		{ID: "o-1", Amount: 100, Status: OrderStatusNew},
		{ID: "o-2", Amount: 50, Status: OrderStatusCanceled},
		{ID: "o-3", Amount: 30, Status: OrderStatusPaid},
	}}

	assert.Equal(t, 130.0, snap.TotalRevenue())
}

func TestTotalRevenueCountsDanglingReferences(t *testing.T) {
	snap := Snapshot{
		Clients: []Client{{ID: "c-1", Name: "Aidar"}},
		Orders: []Order{
			{ID: "o-1", ClientID: "c-1", Amount: 100, Status: OrderStatusPaid},
			{ID: "o-2", ClientID: "gone", Amount: 40, Status: OrderStatusNew},
		},
	}

	assert.Equal(t, 140.0, snap.TotalRevenue())
	_, ok := snap.ClientName("gone")
	assert.False(t, ok)
}

func TestOrdersInWindowBounds(t *testing.T) {
	now := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	snap := Snapshot{Orders: []Order{
		{ID: "inside", CreatedAt: now.Add(-6 * 24 * time.Hour)},
		{ID: "edge", CreatedAt: now.Add(-7 * 24 * time.Hour)},
		{ID: "outside", CreatedAt: now.Add(-7*24*time.Hour - time.Minute)},
		{ID: "future", CreatedAt: now.Add(time.Hour)},
	}}

	assert.Equal(t, 2, snap.OrdersInWindow(now, 7))
}

func TestDailyOrderSeriesCalendarBuckets(t *testing.T) {
	now := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	snap := Snapshot{Orders: []Order{
		{ID: "late", CreatedAt: time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)},
		{ID: "early", CreatedAt: time.Date(2024, 1, 2, 0, 1, 0, 0, time.UTC)},
	}}

	series := snap.DailyOrderSeries(now, 6)
	require.Len(t, series, 7)

	assert.Equal(t, time.Date(2023, 12, 27, 0, 0, 0, 0, time.UTC), series[0].Day)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), series[6].Day)
	assert.Equal(t, 1, series[5].Count)
	assert.Equal(t, 1, series[6].Count)
	for _, p := range series[:5] {
		assert.Zero(t, p.Count)
	}
}

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want OrderStatus
		ok   bool
	}{
		{name: "new", raw: "new", want: OrderStatusNew, ok: true},
		{name: "paid", raw: "paid", want: OrderStatusPaid, ok: true},
		{name: "canceled", raw: "canceled", want: OrderStatusCanceled, ok: true},
		{name: "empty defaults to new", raw: "", want: OrderStatusNew, ok: true},
		{name: "unknown rejected", raw: "bogus", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseOrderStatus(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCoerceAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  float64
		want float64
	}{
		{name: "positive kept", raw: 12.5, want: 12.5},
		{name: "zero kept", raw: 0, want: 0},
		{name: "negative coerced", raw: -3, want: 0},
		{name: "nan coerced", raw: math.NaN(), want: 0},
		{name: "inf coerced", raw: math.Inf(1), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceAmount(tt.raw))
		})
	}
}

func TestModuleEnabledFailsOpen(t *testing.T) {
	s := Settings{ModuleClients: false, ModuleSales: true}

	assert.False(t, s.ModuleEnabled("clients"))
	assert.True(t, s.ModuleEnabled("sales"))
	assert.True(t, s.ModuleEnabled("dashboard"))
	assert.True(t, s.ModuleEnabled("settings"))
}

func TestDefaultSettingsAllEnabled(t *testing.T) {
	s := DefaultSettings()
	for _, name := range ModuleNames {
		assert.True(t, s.ModuleEnabled(name), name)
	}
}
