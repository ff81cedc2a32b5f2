package policy

import (
	"testing"

	"github.com/spf13/afero"
)

func TestLoader_LoadAll(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = fs.MkdirAll("/project/.metaagent/policies/team", 0755)

	_ = afero.WriteFile(fs, "/project/.metaagent/policies/tone.rego", []byte("package metaagent.policy\n"), 0644)
	_ = afero.WriteFile(fs, "/project/.metaagent/policies/team/finance.rego", []byte("package metaagent.policy\n"), 0644)
	_ = afero.WriteFile(fs, "/project/.metaagent/policies/README.md", []byte("# Policies"), 0644)

	loader := NewLoader(fs, GetPoliciesPath("/project"))

	policies, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(policies) != 2 {
		t.Fatalf("LoadAll() returned %d policies, want 2", len(policies))
	}

	// sorted by path
	if policies[0].Name != "finance" || policies[1].Name != "tone" {
		t.Errorf("names = %s, %s; want finance, tone", policies[0].Name, policies[1].Name)
	}
	if policies[1].Content != "package metaagent.policy\n" {
		t.Errorf("Content = %q", policies[1].Content)
	}
}

func TestLoader_MissingDirectory(t *testing.T) {
	loader := NewLoader(afero.NewMemMapFs(), "/nowhere")

	policies, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(policies) != 0 {
		t.Errorf("LoadAll() returned %d policies, want 0", len(policies))
	}
}

func TestLoader_LoadFile_Missing(t *testing.T) {
	loader := NewLoader(afero.NewMemMapFs(), "/p")
	if _, err := loader.LoadFile("/p/missing.rego"); err == nil {
		t.Error("LoadFile() expected error for missing file")
	}
}
