package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const siteYAML = `
options:
  blogname: Example Blog
  show_on_front: page
  page_on_front: 2
posts:
  - id: 2
    title: Home
    content: "<p>Welcome to the home page.</p>"
  - id: 10
    title: Custom
    meta:
      _genesis_description: Search custom.
      _twitter_description: Fish & chips.
  - id: 20
    title: Long
    content: "<p>First sentence here. Second sentence continues with many more words that go on and on.</p>"
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("SEODESC_CONFIG", "")
	t.Setenv("SEODESC_SUFFIX", "")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCLI(t, "")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "usage: seodesc")

	code, _, stderr = runCLI(t, "", "bogus")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, `unknown command "bogus"`)

	code, stdout, _ := runCLI(t, "", "help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "commands:")
}

func TestRun_Trim(t *testing.T) {
	code, stdout, _ := runCLI(t, "This is a sentence. This is another.", "trim", "-max", "20")
	assert.Equal(t, 0, code)
	assert.Equal(t, "This is a sentence.\n", stdout)
}

func TestRun_TrimFileWithHTML(t *testing.T) {
	path := writeTemp(t, "post.html", "<p>Fish &amp; chips.</p>\nhttps://example.com/embed\n")

	code, stdout, _ := runCLI(t, "", "trim", "-html", path)
	assert.Equal(t, 0, code)
	assert.Equal(t, "Fish & chips.\n", stdout)

	code, stdout, _ = runCLI(t, "", "trim", "-html", "-escape", path)
	assert.Equal(t, 0, code)
	assert.Equal(t, "Fish &amp; chips.\n", stdout)
}

func TestRun_TrimExplain(t *testing.T) {
	code, _, stderr := runCLI(t, "Intro, then some more words here", "trim", "-explain")
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "rule=long_tail truncated=true chars=8 grade=too_short")
}

func TestRun_TrimDefaultsToGuideline(t *testing.T) {
	input := strings.Repeat("lorem ipsum dolor sit amet ", 30)

	_, stdout, _ := runCLI(t, input, "trim")
	assert.LessOrEqual(t, len([]rune(strings.TrimSpace(stdout))), 160+1+3)

	cfg := writeTemp(t, "seo.yaml", "guidelines:\n  twitter:\n    good_lower: 20\n    lower: 10\n    good_upper: 40\n    upper: 50\n")
	_, stdout, _ = runCLI(t, input, "trim", "-config", cfg, "-kind", "twitter")
	assert.LessOrEqual(t, len([]rune(strings.TrimSpace(stdout))), 40+1+3)
}

func TestRun_TrimErrors(t *testing.T) {
	code, _, stderr := runCLI(t, "", "trim", "a", "b")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "at most one input file")

	code, _, _ = runCLI(t, "", "trim", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, 1, code)

	code, _, _ = runCLI(t, "", "trim", "-nope")
	assert.Equal(t, 2, code)

	code, _, stderr = runCLI(t, "x", "trim", "-config", writeTemp(t, "seo.ini", ""))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unsupported settings format")
}

func TestRun_Describe(t *testing.T) {
	site := writeTemp(t, "site.yaml", siteYAML)

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name: "all kinds by id",
			args: []string{"-site", site, "-id", "10"},
			expected: "search\ttoo_short\tSearch custom.\n" +
				"opengraph\ttoo_short\tSearch custom.\n" +
				"twitter\ttoo_short\tFish &amp; chips.\n",
		},
		{
			name:     "single kind unescaped",
			args:     []string{"-site", site, "-id", "10", "-kind", "twitter", "-escape=false"},
			expected: "twitter\ttoo_short\tFish & chips.\n",
		},
		{
			name:     "front page query",
			args:     []string{"-site", site, "-page", "front", "-kind", "search"},
			expected: "search\ttoo_short\tWelcome to the home page.\n",
		},
		{
			name:     "good length",
			args:     []string{"-site", site, "-id", "20", "-kind", "og"},
			expected: "opengraph\tgood\tFirst sentence here. Second sentence continues with many more words that go on and on.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, "", append([]string{"describe"}, tt.args...)...)
			require.Equal(t, 0, code, stderr)
			assert.Equal(t, tt.expected, stdout)
		})
	}
}

func TestRun_DescribeMetrics(t *testing.T) {
	site := writeTemp(t, "site.yaml", siteYAML)
	code, stdout, _ := runCLI(t, "", "describe", "-site", site, "-id", "20", "-kind", "search", "-metrics")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, `seo_descriptions_total{kind="search",source="generated"} 1`)
	assert.Contains(t, stdout, `seo_excerpt_trims_total{kind="search",rule="hard_stop",truncated="false"} 1`)
}

func TestRun_DescribeErrors(t *testing.T) {
	code, _, stderr := runCLI(t, "", "describe", "-id", "1")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "-site is required")

	site := writeTemp(t, "site.yaml", siteYAML)
	code, _, stderr = runCLI(t, "", "describe", "-site", site, "-page", "galaxy")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, `unknown page type "galaxy"`)

	code, _, _ = runCLI(t, "", "describe", "-site", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 1, code)
}

func TestRun_Schema(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "schema")
	require.Equal(t, 0, code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Contains(t, doc["properties"], "guidelines")
}

// syncBuffer is a bytes.Buffer safe for one writer and one reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRun_Watch(t *testing.T) {
	t.Setenv("SEODESC_SUFFIX", "")
	site := writeTemp(t, "site.yaml", siteYAML)
	cfgPath := writeTemp(t, "seo.yaml", "guidelines:\n  search:\n    lower: 10\n    good_lower: 20\n    good_upper: 30\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var stdout, stderr syncBuffer
	done := make(chan int, 1)
	go func() {
		done <- run(ctx, []string{"watch", "-site", site, "-config", cfgPath, "-id", "20", "-kind", "search", "-escape=false"},
			strings.NewReader(""), &stdout, &stderr)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(stdout.String(), "First sentence here. Second...")
	}, 5*time.Second, 20*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(cfgPath,
		[]byte("suffix: \" [more]\"\nguidelines:\n  search:\n    lower: 10\n    good_lower: 20\n    good_upper: 30\n"), 0o644))

	require.Eventually(t, func() bool {
		return strings.Contains(stdout.String(), "First sentence here. Second [more]")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case code := <-done:
		assert.Equal(t, 0, code)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestRun_WatchNeedsConfig(t *testing.T) {
	site := writeTemp(t, "site.yaml", siteYAML)
	code, _, stderr := runCLI(t, "", "watch", "-site", site)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "-config is required")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, parseLevel("info"))
	assert.Equal(t, slog.LevelError, parseLevel(" error "))
	assert.Equal(t, slog.LevelWarn, parseLevel(""))
	assert.Equal(t, slog.LevelWarn, parseLevel("loud"))
}
