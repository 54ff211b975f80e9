package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/brewhub/internal/money"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "integer", input: "200", want: 20000},
		{name: "two decimals", input: "161.00", want: 16100},
		{name: "one decimal", input: "48.5", want: 4850},
		{name: "leading whitespace", input: " 10.00 ", want: 1000},
		{name: "zero", input: "0", want: 0},
		{name: "negative parses", input: "-5.00", want: -500},
		{name: "empty", input: "", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "trailing junk", input: "12.00x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "161.00", money.Format(16100))
	assert.Equal(t, "39.00", money.Format(3900))
	assert.Equal(t, "0.00", money.Format(0))
	assert.Equal(t, "48.50", money.Format(4850))
}
