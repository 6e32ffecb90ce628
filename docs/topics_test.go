package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with itself.
	// It checks two things:
	// 1. Every topic listed in readme.md can be loaded by GetTopic.
	// 2. Every .md file in this directory (excluding readme.md) is listed in readme.md.

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)

	for scanner.Scan() {
		matches := topicRegex.FindStringSubmatch(scanner.Text())
		if len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, f := range files {
		base := filepath.Base(f)
		if base == "readme.md" {
			continue
		}
		name := strings.TrimSuffix(base, ".md")
		found := false
		for _, topic := range topicsInReadme {
			if topic == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", name)
		}
	}
}

func TestGetAllTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	if len(topics) == 0 {
		t.Fatal("no topics found")
	}
	for _, topic := range topics {
		if topic == "readme" {
			t.Error("readme should not be listed as a topic")
		}
	}
	if !sortedStrings(topics) {
		t.Errorf("topics are not sorted: %v", topics)
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("expected an error for an unknown topic")
	}
}

// TestTopicStructure parses every topic and checks it is well formed
// markdown: exactly one level-1 heading, at the top of the document.
func TestTopicStructure(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("failed to read %s: %v", file, err)
			}

			root := goldmark.DefaultParser().Parse(text.NewReader(content))

			var h1 int
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
					h1++
				}
				return ast.WalkContinue, nil
			})

			if h1 != 1 {
				t.Errorf("%s has %d level-1 headings, want exactly 1", file, h1)
			}
			if !strings.HasPrefix(string(content), "# ") {
				t.Errorf("%s does not start with its title", file)
			}
		})
	}
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}
