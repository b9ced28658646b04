package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  Decision
	}{
		{
			name:  "pending while loading",
			state: State{Loading: true},
			want:  Decision{Kind: DecisionPending},
		},
		{
			name:  "pending while loading even if authenticated",
			state: State{Loading: true, Authenticated: true},
			want:  Decision{Kind: DecisionPending},
		},
		{
			name:  "allow when authenticated",
			state: State{Authenticated: true},
			want:  Decision{Kind: DecisionAllow},
		},
		{
			name:  "redirect when unauthenticated",
			state: State{},
			want:  Decision{Kind: DecisionRedirect, RedirectPath: "/merchant/login"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.state, "/merchant/login"))
		})
	}
}
