package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Number
		wantErr bool
	}{
		{name: "целое число", input: `180`, want: "180"},
		{name: "дробное число", input: `80.5`, want: "80.5"},
		{name: "строка с числом", input: `"180"`, want: "180"},
		{name: "нечисловая строка", input: `"tall"`, want: "tall"},
		{name: "null", input: `null`, want: ""},
		{name: "логическое значение", input: `true`, wantErr: true},
		{name: "объект", input: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d UserDraft
			err := json.Unmarshal([]byte(`{"height":`+tt.input+`}`), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Height)
		})
	}
}
