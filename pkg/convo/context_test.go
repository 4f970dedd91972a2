package convo

import "testing"

func TestBuildEffectiveQuery(t *testing.T) {
	history := []Turn{
		{Role: RoleUser, Content: "how do I reset my password?"},
		{Role: RoleAssistant, Content: "Go to Settings → Account → Reset Password."},
	}

	tests := []struct {
		name    string
		history []Turn
		current string
		want    string
	}{
		{
			name:    "short follow-up expands with last user turn",
			history: history,
			current: "fix it please",
			want:    "how do I reset my password? fix it please",
		},
		{
			name:    "referent word triggers expansion even when long",
			history: history,
			current: "I still cannot figure out where exactly the setting lives in the dashboard",
			want:    "how do I reset my password? I still cannot figure out where exactly the setting lives in the dashboard",
		},
		{
			name:    "long standalone message is unchanged",
			history: history,
			current: "my team needs more seats on the current subscription plan before friday",
			want:    "my team needs more seats on the current subscription plan before friday",
		},
		{
			name:    "short message without history stays as-is",
			history: nil,
			current: "help me",
			want:    "help me",
		},
		{
			name:    "assistant-only history stays as-is",
			history: []Turn{{Role: RoleAssistant, Content: "Hello!"}},
			current: "help me",
			want:    "help me",
		},
		{
			name:    "odd-length history is tolerated",
			history: []Turn{{Role: RoleUser, Content: "do you offer refunds?"}},
			current: "and returns?",
			want:    "do you offer refunds? and returns?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildEffectiveQuery(tt.history, tt.current)
			if got != tt.want {
				t.Errorf("BuildEffectiveQuery = %q, want %q", got, tt.want)
			}
		})
	}
}
