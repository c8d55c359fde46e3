package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation index is in sync with the files.
	// It checks two things:
	// 1. Every topic listed in docs/readme.md can be loaded.
	// 2. Every .md file in the docs directory (excluding readme.md itself) is listed in docs/readme.md.

	file, err := os.Open("readme.md")
	require.NoError(t, err)
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	require.NoError(t, scanner.Err())
	require.NotEmpty(t, topicsInReadme)

	// Check 1
	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			_, err := GetTopic(topic)
			assert.NoError(t, err)
		})
	}

	// Check 2
	files, err := filepath.Glob("*.md")
	require.NoError(t, err)
	for _, file := range files {
		base := strings.TrimSuffix(filepath.Base(file), ".md")
		if base == "readme" {
			continue
		}
		assert.True(t, slices.Contains(topicsInReadme, base), "topic %q is not listed in docs/readme.md", base)
	}
}

func TestGetAllTopics(t *testing.T) {
	topics, err := GetAllTopics()
	require.NoError(t, err)
	assert.Equal(t, []string{"config", "data", "holdings", "insights", "rebalancing"}, topics)
}

func TestGetTopics(t *testing.T) {
	doc, err := GetTopics("holdings", "rebalancing")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(doc, "# Holdings\n"))
	assert.Contains(t, doc, "\n# Rebalancing\n")

	all, err := GetTopics("*")
	require.NoError(t, err)
	for _, title := range []string{"# Configuration", "# Data", "# Holdings", "# Insights", "# Rebalancing"} {
		assert.Contains(t, all, title)
	}
	assert.NotContains(t, all, "## Topics", "the readme is not a topic")

	_, err = GetTopic("nope")
	assert.Error(t, err)
}
