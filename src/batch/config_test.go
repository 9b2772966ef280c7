package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "results", cfg.ResultsDir)
	assert.Len(t, cfg.Pairs(), 8)
}

func TestPairsOrder(t *testing.T) {
	cfg := Config{Methods: []string{"m1", "m2"}, Prefixes: []string{"p1", "p2"}, ResultsDir: "r"}
	assert.Equal(t, []Pair{
		{Prefix: "p1", Method: "m1"},
		{Prefix: "p2", Method: "m1"},
		{Prefix: "p1", Method: "m2"},
		{Prefix: "p2", Method: "m2"},
	}, cfg.Pairs())
	assert.Equal(t, "p2_m1", cfg.Pairs()[1].Name())
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeConfig(t, "plots.yaml", `
methods: [neumann, nystrom]
prefixes:
  - rational
results_dir: out/results
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Methods:    []string{"neumann", "nystrom"},
		Prefixes:   []string{"rational"},
		ResultsDir: "out/results",
	}, cfg)
}

func TestLoadConfig_JSONCPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "plots.jsonc", `// only override the prefixes
{
  // solver run with the exponential kernel only
  "prefixes": ["exponent"]
}
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"exponent"}, cfg.Prefixes)
	assert.Equal(t, DefaultConfig().Methods, cfg.Methods)
	assert.Equal(t, "results", cfg.ResultsDir)
}

func TestLoadConfig_Errors(t *testing.T) {
	cases := []struct {
		name, file, body string
	}{
		{"empty methods", "c.yml", "methods: []\n"},
		{"slash in prefix", "c.json", `{"prefixes": ["../x"]}`},
		{"broken yaml", "c.yaml", "methods: [a\n"},
		{"broken json", "c.json", "{"},
		{"unknown extension", "c.toml", "methods = []"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.file, tc.body))
			require.ErrorIs(t, err, ErrConfig)
		})
	}
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, ErrConfig)
}

func TestStripJSONC(t *testing.T) {
	path := writeConfig(t, "x.jsonc", "// header\n{\n  \"results_dir\": \"//server/share\"\n}\n")
	b, err := StripJSONC(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"results_dir\": \"//server/share\"\n}\n", string(b))
}
