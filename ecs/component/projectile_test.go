package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImpactBehavior(t *testing.T) {
	tests := []struct {
		in      string
		want    ImpactBehavior
		wantErr bool
	}{
		{"", ImpactDie, false},
		{"die", ImpactDie, false},
		{" Bounce ", ImpactBounce, false},
		{"BOUNCE", ImpactBounce, false},
		{"explode", ImpactDie, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseImpactBehavior(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestImpactBehaviorRoundTrip(t *testing.T) {
	for _, b := range []ImpactBehavior{ImpactDie, ImpactBounce} {
		got, err := ParseImpactBehavior(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
	assert.Less(t, ImpactDie, ImpactBounce)
	assert.Equal(t, "ImpactBehavior(7)", ImpactBehavior(7).String())
}

func TestDefaultProjectile(t *testing.T) {
	p := DefaultProjectile()
	assert.Equal(t, ImpactDie, p.OnHit)
	assert.Equal(t, ImpactDie, p.OnImpact)
	assert.Equal(t, Projectile{}, p)
}
