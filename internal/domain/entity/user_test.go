package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_EffectiveSearchRadiusKm(t *testing.T) {
	ptr := func(v float64) *float64 { return &v }

	tests := []struct {
		name   string
		pref   *float64
		legacy *float64
		want   float64
	}{
		{name: "neither set falls back to default", pref: nil, legacy: nil, want: DefaultSearchRadiusKm},
		{name: "preference only", pref: ptr(10), legacy: nil, want: 10},
		{name: "legacy only", pref: nil, legacy: ptr(20), want: 20},
		{name: "preference wins over divergent legacy", pref: ptr(10), legacy: ptr(20), want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &User{
				Preferences:    Preferences{SearchRadiusKm: tt.pref},
				SearchRadiusKm: tt.legacy,
			}

			assert.InDelta(t, tt.want, user.EffectiveSearchRadiusKm(), 0.0001)
		})
	}
}

func TestUser_EffectiveSearchRadiusKm_NilUser(t *testing.T) {
	var user *User

	assert.InDelta(t, DefaultSearchRadiusKm, user.EffectiveSearchRadiusKm(), 0.0001)
}

func TestUser_SetSearchRadiusKm_SyncsLegacyMirror(t *testing.T) {
	user := &User{}
	user.SetSearchRadiusKm(42)

	if assert.NotNil(t, user.Preferences.SearchRadiusKm) {
		assert.InDelta(t, 42.0, *user.Preferences.SearchRadiusKm, 0.0001)
	}
	if assert.NotNil(t, user.SearchRadiusKm) {
		assert.InDelta(t, 42.0, *user.SearchRadiusKm, 0.0001)
	}
}
