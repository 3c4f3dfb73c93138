package models

import (
	"testing"

	"github.com/specularhq/specular/ent"
	"github.com/stretchr/testify/assert"
)

func TestEffectiveDescription(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	tests := []struct {
		name    string
		company *ent.Company
		want    string
	}{
		{
			name: "final description wins when present",
			company: &ent.Company{
				Description:         "baseline",
				OriginalDescription: strPtr("user-authored"),
				FinalDescription:    strPtr("enriched"),
			},
			want: "enriched",
		},
		{
			name: "original description when no final",
			company: &ent.Company{
				Description:         "baseline",
				OriginalDescription: strPtr("user-authored"),
			},
			want: "user-authored",
		},
		{
			name: "baseline when neither override is set",
			company: &ent.Company{
				Description: "baseline",
			},
			want: "baseline",
		},
		{
			name: "empty final falls through to original",
			company: &ent.Company{
				Description:         "baseline",
				OriginalDescription: strPtr("user-authored"),
				FinalDescription:    strPtr(""),
			},
			want: "user-authored",
		},
		{
			name: "empty overrides fall through to baseline",
			company: &ent.Company{
				Description:         "baseline",
				OriginalDescription: strPtr(""),
				FinalDescription:    strPtr(""),
			},
			want: "baseline",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveDescription(tt.company))
		})
	}
}
