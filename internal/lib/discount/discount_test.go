package discount

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantKind  Kind
		wantValue string
		wantErr   error
	}{
		{name: "percentage", raw: "10%", wantKind: Percent, wantValue: "10"},
		{name: "percentage with spaces", raw: " 15 % ", wantKind: Percent, wantValue: "15"},
		{name: "fractional percentage", raw: "12.5%", wantKind: Percent, wantValue: "12.5"},
		{name: "full price off", raw: "100%", wantKind: Percent, wantValue: "100"},
		{name: "flat amount", raw: "100", wantKind: Fixed, wantValue: "100"},
		{name: "flat amount with cents", raw: "99.90", wantKind: Fixed, wantValue: "99.9"},
		{name: "empty", raw: "  ", wantErr: ErrEmpty},
		{name: "not a number", raw: "ten", wantErr: ErrInvalid},
		{name: "only percent sign", raw: "%", wantErr: ErrInvalid},
		{name: "zero", raw: "0", wantErr: ErrInvalid},
		{name: "negative", raw: "-5%", wantErr: ErrInvalid},
		{name: "over a hundred percent", raw: "150%", wantErr: ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantValue, got.Value.String())
		})
	}
}

func TestDiscount_LabelAndString(t *testing.T) {
	percent, err := Parse("10%")
	require.NoError(t, err)
	assert.Equal(t, "10%", percent.Label())
	assert.Equal(t, "10%", percent.String())

	fixed, err := Parse("100")
	require.NoError(t, err)
	assert.Equal(t, "100 EGP", fixed.Label())
	assert.Equal(t, "100", fixed.String())
}
