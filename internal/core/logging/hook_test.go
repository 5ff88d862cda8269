package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestContextHook_Run(t *testing.T) {
	tests := []struct {
		name      string
		setupCtx  func() context.Context
		wantKeys  []string
		wantEmpty []string
	}{
		{
			name: "both repo_dir and command",
			setupCtx: func() context.Context {
				ctx := context.Background()
				ctx = WithRepoDir(ctx, "/src/project")
				ctx = WithCommand(ctx, "branch")
				return ctx
			},
			wantKeys: []string{"repo_dir", "command"},
		},
		{
			name: "only repo_dir",
			setupCtx: func() context.Context {
				return WithRepoDir(context.Background(), "/src/project")
			},
			wantKeys:  []string{"repo_dir"},
			wantEmpty: []string{"command"},
		},
		{
			name: "only command",
			setupCtx: func() context.Context {
				return WithCommand(context.Background(), "email")
			},
			wantKeys:  []string{"command"},
			wantEmpty: []string{"repo_dir"},
		},
		{
			name:      "no context values",
			setupCtx:  context.Background,
			wantEmpty: []string{"repo_dir", "command"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := tt.setupCtx()

			logger := zerolog.New(&buf).Hook(ContextHook{})
			logger.Info().Ctx(ctx).Msg("test")

			var logEntry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
				t.Fatalf("failed to parse log: %v", err)
			}

			for _, key := range tt.wantKeys {
				if _, ok := logEntry[key]; !ok {
					t.Errorf("expected %s to be present in log", key)
				}
			}

			for _, key := range tt.wantEmpty {
				if _, ok := logEntry[key]; ok {
					t.Errorf("expected %s to be absent from log", key)
				}
			}
		})
	}
}
