package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLStripper_StripHTML(t *testing.T) {
	s := NewHTMLStripper()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "Swedish Massage", "Swedish Massage"},
		{"script removed", `Deep Tissue<script>alert("x")</script>`, "Deep Tissue"},
		{"tags removed", "<b>Hot</b> Stone", "Hot Stone"},
		{"ampersand kept", "Hot & Cold Therapy", "Hot & Cold Therapy"},
		{"trimmed", "  Sports Massage  ", "Sports Massage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.StripHTML(tt.input))
		})
	}
}
