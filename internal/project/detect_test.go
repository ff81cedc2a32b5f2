package project

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name       string
		dirs       []string
		start      string
		wantRoot   string
		wantMarker MarkerType
	}{
		{
			name:       "metaagent dir in start",
			dirs:       []string{"/repo/.metaagent", "/repo/.git"},
			start:      "/repo",
			wantRoot:   "/repo",
			wantMarker: MarkerMetaAgent,
		},
		{
			name:       "metaagent dir above git",
			dirs:       []string{"/work/.metaagent", "/work/svc/.git", "/work/svc/pkg"},
			start:      "/work/svc/pkg",
			wantRoot:   "/work",
			wantMarker: MarkerMetaAgent,
		},
		{
			name:       "nearest git wins without metaagent",
			dirs:       []string{"/mono/.git", "/mono/apps/web/.git", "/mono/apps/web/src"},
			start:      "/mono/apps/web/src",
			wantRoot:   "/mono/apps/web",
			wantMarker: MarkerGit,
		},
		{
			name:       "no markers",
			dirs:       []string{"/tmp/scratch"},
			start:      "/tmp/scratch",
			wantRoot:   "/tmp/scratch",
			wantMarker: MarkerNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			for _, d := range tt.dirs {
				if err := fs.MkdirAll(d, 0o755); err != nil {
					t.Fatal(err)
				}
			}

			ctx, err := NewDetector(fs).Detect(tt.start)
			if err != nil {
				t.Fatalf("Detect() error = %v", err)
			}
			if ctx.RootPath != filepath.Clean(tt.wantRoot) {
				t.Errorf("RootPath = %q, want %q", ctx.RootPath, tt.wantRoot)
			}
			if ctx.MarkerType != tt.wantMarker {
				t.Errorf("MarkerType = %v, want %v", ctx.MarkerType, tt.wantMarker)
			}
			if got := ctx.HasMetaAgentDir(); got != (tt.wantMarker == MarkerMetaAgent) {
				t.Errorf("HasMetaAgentDir() = %v", got)
			}
		})
	}
}

func TestMarkerType_String(t *testing.T) {
	for m, want := range map[MarkerType]string{
		MarkerNone:      "none",
		MarkerMetaAgent: ".metaagent",
		MarkerGit:       ".git",
		MarkerType(99):  "unknown",
	} {
		if got := m.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", m, got, want)
		}
	}
}
