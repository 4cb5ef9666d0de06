package common

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsk(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"maybe\n", false},
	}
	for _, tc := range tests {
		t.Run(strings.TrimSpace(tc.answer), func(t *testing.T) {
			var out bytes.Buffer
			got := Ask("Hapus data ini?", strings.NewReader(tc.answer), &out)
			assert.Equal(t, tc.want, got)
			assert.Contains(t, out.String(), "Hapus data ini? [y/N]")
		})
	}
}

func TestAskEOFDeclines(t *testing.T) {
	var out bytes.Buffer
	assert.False(t, Ask("Hapus data ini?", strings.NewReader(""), &out))
}

func TestConfirmAssumeYes(t *testing.T) {
	gate := Confirm("Hapus data ini?", true)
	assert.True(t, gate())
}
