package tenant

import (
	"encoding/json"
	"slices"
)

// Well-known settings keys. Everything else in the blob is tenant-local and
// must survive plan updates untouched.
const (
	settingsKeyFeatures  = "features"
	settingsKeyLimits    = "limits"
	settingsKeySuspended = "suspended"
)

// Settings is the tenant settings blob. Features and Limits mirror the
// assigned plan's entitlements at time of last sync; Extra holds arbitrary
// tenant-local keys that entitlement syncs never touch.
type Settings struct {
	Features []string
	Limits   map[string]int64
	Extra    map[string]interface{}
}

// NewSettings creates an empty settings blob.
func NewSettings() Settings {
	return Settings{
		Features: []string{},
		Limits:   map[string]int64{},
		Extra:    map[string]interface{}{},
	}
}

// Clone returns a deep copy of the settings.
func (s Settings) Clone() Settings {
	out := Settings{
		Features: slices.Clone(s.Features),
		Limits:   make(map[string]int64, len(s.Limits)),
		Extra:    make(map[string]interface{}, len(s.Extra)),
	}
	for k, v := range s.Limits {
		out.Limits[k] = v
	}
	for k, v := range s.Extra {
		out.Extra[k] = v
	}
	return out
}

// SyncEntitlements overwrites the features and limits keys with the plan's
// current values. All other keys are left untouched.
func (s *Settings) SyncEntitlements(features []string, limits map[string]int64) {
	s.Features = slices.Clone(features)
	copied := make(map[string]int64, len(limits))
	for k, v := range limits {
		copied[k] = v
	}
	s.Limits = copied
}

// MarkSuspended records the suspension marker without touching entitlements.
func (s *Settings) MarkSuspended() {
	if s.Extra == nil {
		s.Extra = map[string]interface{}{}
	}
	s.Extra[settingsKeySuspended] = true
}

// ClearSuspended removes the suspension marker.
func (s *Settings) ClearSuspended() {
	delete(s.Extra, settingsKeySuspended)
}

// IsSuspended reports whether the suspension marker is set.
func (s Settings) IsSuspended() bool {
	v, ok := s.Extra[settingsKeySuspended]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// Set stores a tenant-local key. Well-known keys cannot be shadowed.
func (s *Settings) Set(key string, value interface{}) bool {
	if key == settingsKeyFeatures || key == settingsKeyLimits {
		return false
	}
	if s.Extra == nil {
		s.Extra = map[string]interface{}{}
	}
	s.Extra[key] = value
	return true
}

// Get returns a tenant-local key.
func (s Settings) Get(key string) (interface{}, bool) {
	v, ok := s.Extra[key]
	return v, ok
}

// MarshalJSON flattens the blob: features and limits as well-known keys,
// tenant-local keys at the top level alongside them.
func (s Settings) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(s.Extra)+2)
	for k, v := range s.Extra {
		out[k] = v
	}
	out[settingsKeyFeatures] = s.Features
	out[settingsKeyLimits] = s.Limits
	return json.Marshal(out)
}

// UnmarshalJSON splits the flat blob back into well-known and tenant-local keys.
func (s *Settings) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*s = NewSettings()
	for key, value := range raw {
		switch key {
		case settingsKeyFeatures:
			if err := json.Unmarshal(value, &s.Features); err != nil {
				return err
			}
		case settingsKeyLimits:
			if err := json.Unmarshal(value, &s.Limits); err != nil {
				return err
			}
		default:
			var v interface{}
			if err := json.Unmarshal(value, &v); err != nil {
				return err
			}
			s.Extra[key] = v
		}
	}
	if s.Features == nil {
		s.Features = []string{}
	}
	if s.Limits == nil {
		s.Limits = map[string]int64{}
	}
	return nil
}
