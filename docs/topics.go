// Package docs embeds the user manual of vendas, one markdown file per topic.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// Index is the topic listing every other topic.
const Index = "readme"

// GetTopic returns the content of a documentation topic.
func GetTopic(topic string) (string, error) {
	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns the content of multiple documentation topics concatenated together.
// "*" stands for every topic but the index.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		names := []string{topic}
		if topic == "*" {
			all, err := GetAllTopics()
			if err != nil {
				return "", err
			}
			names = all
		}
		for _, name := range names {
			content, err := GetTopic(name)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// GetAllTopics returns a sorted list of all available documentation topics.
func GetAllTopics() ([]string, error) {
	files, err := fs.Glob(docs, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, f := range files {
		if name := strings.TrimSuffix(path.Base(f), ".md"); name != Index {
			topics = append(topics, name)
		}
	}
	slices.Sort(topics)
	return topics, nil
}
