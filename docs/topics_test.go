package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation index is in sync with the topics.
	// It checks two things:
	// 1. Every topic listed in readme.md can be loaded.
	// 2. Every .md file (excluding readme.md itself) is listed in readme.md.

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
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

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestGetTopics_Star(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	got, err := GetTopics("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		content, _ := GetTopic(topic)
		if !strings.Contains(got, content) {
			t.Errorf("GetTopics(*) is missing topic %q", topic)
		}
	}
	if _, err := GetTopics("sales", "nope"); err == nil {
		t.Error("GetTopics() with an unknown topic: want error")
	}
}

// TestHeadings checks that every topic starts with a single level 1 heading,
// so that concatenated topics read as sections.
func TestHeadings(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatal(err)
			}
			root := goldmark.DefaultParser().Parse(text.NewReader(content))

			first, ok := root.FirstChild().(*ast.Heading)
			if !ok || first.Level != 1 {
				t.Fatalf("%s: want a level 1 heading first", file)
			}
			h1 := 0
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if h, ok := n.(*ast.Heading); ok && entering && h.Level == 1 {
					h1++
				}
				return ast.WalkContinue, nil
			})
			if h1 != 1 {
				t.Errorf("%s: got %d level 1 headings, want 1", file, h1)
			}
		})
	}
}
