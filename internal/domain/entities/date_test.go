package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_MarshalJSON(t *testing.T) {
	d := NewDate(2026, time.March, 5)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-05"`, string(data))
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-12-31"`), &d))
	assert.Equal(t, NewDate(2026, time.December, 31), d)

	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20261231`), &d))
}

func TestDate_AddDays(t *testing.T) {
	d := NewDate(2026, time.January, 31)

	assert.Equal(t, NewDate(2026, time.February, 1), d.AddDays(1))
	assert.Equal(t, NewDate(2025, time.November, 2), d.AddDays(-90))
	assert.Equal(t, NewDate(2026, time.July, 30), d.AddDays(180))
}

func TestDate_Ordering(t *testing.T) {
	earlier := NewDate(2026, time.May, 1)
	later := NewDate(2026, time.May, 2)

	assert.True(t, earlier.Before(later))
	assert.True(t, later.After(earlier))
	assert.False(t, earlier.Before(earlier))
}

func TestAsset_SerializesDueDateAsCalendarDate(t *testing.T) {
	asset := Asset{
		ID:           "asset-001",
		NominalValue: 1234.56,
		Status:       AssetStatusActive,
		DueDate:      NewDate(2026, time.April, 9),
	}

	data, err := json.Marshal(asset)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"asset-001","nominal_value":1234.56,"status":"active","due_date":"2026-04-09"}`, string(data))
}

func TestAssetStatus_IsValid(t *testing.T) {
	assert.True(t, AssetStatusActive.IsValid())
	assert.True(t, AssetStatusDefaulted.IsValid())
	assert.True(t, AssetStatusPaid.IsValid())
	assert.False(t, AssetStatus("overdue").IsValid())
	assert.False(t, AssetStatus("").IsValid())
}
