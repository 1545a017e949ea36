// Package docs holds the documentation topics of exalge, embedded in the binary.
//
// readme.md is the index: every line "* <name>: <description>" declares the
// topic stored in <name>.md.
package docs

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"regexp"
	"strings"
)

//go:embed *.md
var files embed.FS

// Index is the name of the topic listing all the others.
const Index = "readme"

// All names every topic of the index, in index order.
const All = "*"

// Topic is an entry of the index.
type Topic struct {
	Name        string
	Description string
}

var indexLine = regexp.MustCompile(`^\*\s+([^:\s]+):\s*(.*)$`)

// Topics returns the topics declared in the index, in order.
func Topics() ([]Topic, error) {
	content, err := files.ReadFile(Index + ".md")
	if err != nil {
		return nil, fmt.Errorf("cannot read the topic index: %w", err)
	}
	var topics []Topic
	sc := bufio.NewScanner(bytes.NewReader(content))
	for sc.Scan() {
		if m := indexLine.FindStringSubmatch(sc.Text()); m != nil {
			topics = append(topics, Topic{Name: m[1], Description: strings.TrimSpace(m[2])})
		}
	}
	return topics, sc.Err()
}

// GetTopic returns the markdown of a topic, the index included.
func GetTopic(name string) (string, error) {
	content, err := files.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("unknown topic %q, run 'exalge topic' for the list", name)
	}
	return string(content), nil
}

// GetTopics returns the markdown of several topics, separated by a blank line.
// All expands to every topic of the index.
func GetTopics(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		expanded := []string{name}
		if name == All {
			topics, err := Topics()
			if err != nil {
				return "", err
			}
			expanded = expanded[:0]
			for _, t := range topics {
				expanded = append(expanded, t.Name)
			}
		}
		for _, n := range expanded {
			content, err := GetTopic(n)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}
