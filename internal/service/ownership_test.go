package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwnsAdvice(t *testing.T) {
	cases := []struct {
		name     string
		callerID string
		targetID string
		want     bool
	}{
		{"owner", "u1", "u1", true},
		{"other user", "u2", "u1", false},
		{"empty caller", "", "u1", false},
		{"both empty", "", "", false},
		{"empty target", "u1", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, OwnsAdvice(tc.callerID, tc.targetID))
		})
	}
}
