package premium

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name  string
		price string
		rate  string
		want  string
	}{
		{"whole result", "100000", "5", "5000"},
		{"fractional rate", "100000", "5.5", "5500"},
		{"rounds half away from zero", "350", "5", "18"},
		{"rounds up above half", "333", "5", "17"},
		{"rounds down below half", "2008", "5", "100"},
		{"empty price", "", "5", ""},
		{"empty rate", "100000", "", ""},
		{"zero price treated as absent", "0", "5", ""},
		{"zero rate treated as absent", "100000", "0", ""},
		{"unparseable price", "Rp 100", "5", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Derive(tt.price, tt.rate))
		})
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	first := Derive("123456789", "2.75")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Derive("123456789", "2.75"))
	}
}
