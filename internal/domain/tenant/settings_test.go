package tenant

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsSyncEntitlementsPreservesLocalKeys(t *testing.T) {
	s := NewSettings()
	require.True(t, s.Set("theme", "dark"))
	require.True(t, s.Set("beta_opt_in", true))

	s.SyncEntitlements([]string{"api"}, map[string]int64{"seats": 5})
	s.SyncEntitlements([]string{"api", "sso"}, map[string]int64{"seats": 10, "projects": 3})

	assert.Equal(t, []string{"api", "sso"}, s.Features)
	assert.Equal(t, map[string]int64{"seats": 10, "projects": 3}, s.Limits)

	v, ok := s.Get("theme")
	require.True(t, ok)
	assert.Equal(t, "dark", v)
	v, ok = s.Get("beta_opt_in")
	require.True(t, ok)
	assert.Equal(t, true, v)
}

func TestSettingsSuspendedMarker(t *testing.T) {
	s := NewSettings()
	assert.False(t, s.IsSuspended())

	s.MarkSuspended()
	assert.True(t, s.IsSuspended())

	s.ClearSuspended()
	assert.False(t, s.IsSuspended())

	// Clearing when not suspended is harmless.
	s.ClearSuspended()
	assert.False(t, s.IsSuspended())
}

func TestSettingsCloneIsDeep(t *testing.T) {
	s := NewSettings()
	s.SyncEntitlements([]string{"api"}, map[string]int64{"seats": 5})
	s.Set("theme", "dark")

	clone := s.Clone()
	clone.Features[0] = "mutated"
	clone.Limits["seats"] = 999
	clone.Extra["theme"] = "light"

	assert.Equal(t, []string{"api"}, s.Features)
	assert.Equal(t, int64(5), s.Limits["seats"])
	v, _ := s.Get("theme")
	assert.Equal(t, "dark", v)
}

func TestSettingsJSONFlattening(t *testing.T) {
	s := NewSettings()
	s.SyncEntitlements([]string{"api"}, map[string]int64{"seats": 5})
	s.Set("theme", "dark")
	s.MarkSuspended()

	data, err := json.Marshal(s)
	require.NoError(t, err)

	// The blob is flat: well-known and tenant-local keys side by side.
	var flat map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &flat))
	assert.Contains(t, flat, "features")
	assert.Contains(t, flat, "limits")
	assert.Equal(t, "dark", flat["theme"])
	assert.Equal(t, true, flat["suspended"])

	var back Settings
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, []string{"api"}, back.Features)
	assert.Equal(t, int64(5), back.Limits["seats"])
	assert.True(t, back.IsSuspended())
	v, ok := back.Get("theme")
	require.True(t, ok)
	assert.Equal(t, "dark", v)
}

func TestSettingsUnmarshalEmptyBlob(t *testing.T) {
	var s Settings
	require.NoError(t, json.Unmarshal([]byte(`{}`), &s))
	assert.NotNil(t, s.Features)
	assert.NotNil(t, s.Limits)
	assert.False(t, s.IsSuspended())
}
