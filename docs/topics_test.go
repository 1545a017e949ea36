package docs

import (
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	topics, err := Topics()
	if err != nil {
		t.Fatalf("Topics() error = %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("Topics() is empty")
	}

	var listed []string
	for _, topic := range topics {
		if topic.Description == "" {
			t.Errorf("topic %q has no description", topic.Name)
		}
		if _, err := GetTopic(topic.Name); err != nil {
			t.Errorf("GetTopic(%q) error = %v", topic.Name, err)
		}
		listed = append(listed, topic.Name)
	}

	embedded, err := fs.Glob(files, "*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range embedded {
		name := strings.TrimSuffix(file, ".md")
		if name != Index && !slices.Contains(listed, name) {
			t.Errorf("topic %q is not listed in %s.md", name, Index)
		}
	}
}

func TestGetTopics(t *testing.T) {
	all, err := GetTopics(All)
	if err != nil {
		t.Fatalf("GetTopics(%q) error = %v", All, err)
	}
	keys, _ := GetTopic("keys")
	if !strings.Contains(all, keys) {
		t.Errorf("GetTopics(%q) does not contain the keys topic", All)
	}
	if index, _ := GetTopic(Index); strings.Contains(all, index) {
		t.Errorf("GetTopics(%q) contains the index", All)
	}

	if _, err := GetTopics("keys", "missing"); err == nil {
		t.Error("GetTopics(keys, missing) succeeded, want an error")
	}
}

// Executable examples.
//
// Fenced blocks tagged "bash setup" start a scenario in a new directory,
// "bash run" blocks record their output, "console check" blocks compare it and
// "bash check" blocks must exit with success.
const (
	setupBlock   = "bash setup"
	runBlock     = "bash run"
	outputBlock  = "console check"
	commandBlock = "bash check"
)

// example is an executable fenced block.
type example struct {
	kind string
	code string
	pos  string // file:line, for messages
}

func TestExamples(t *testing.T) {
	sources, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	sources = append(sources, filepath.Join("..", "README.md"))

	bin := t.TempDir()
	build := exec.Command("go", "build", "-o", filepath.Join(bin, "exalge"), "../exalge")
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("cannot build exalge: %v\n%s", err, out)
	}

	// the global flags must not leak from the test environment.
	env := append(os.Environ(),
		"PATH="+bin+string(os.PathListSeparator)+os.Getenv("PATH"),
		"EXALGE_RULES=",
		"EXALGE_VERBOSE=",
	)
	for _, source := range sources {
		t.Run(filepath.Base(source), func(t *testing.T) {
			s := scenario{env: env, dir: t.TempDir()}
			for _, ex := range examples(t, source) {
				s.play(t, ex)
			}
		})
	}
}

// examples returns the executable blocks of a markdown file, in order.
func examples(t *testing.T, file string) []example {
	t.Helper()
	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("cannot read %s: %v", file, err)
	}

	var list []example
	root := goldmark.DefaultParser().Parse(text.NewReader(content))
	err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		block, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || block.Info == nil {
			return ast.WalkContinue, nil
		}
		kind := string(block.Info.Segment.Value(content))
		switch kind {
		case setupBlock, runBlock, outputBlock, commandBlock:
		default:
			return ast.WalkContinue, nil
		}
		var code strings.Builder
		for i := 0; i < block.Lines().Len(); i++ {
			line := block.Lines().At(i)
			code.Write(line.Value(content))
		}
		line := 1 + strings.Count(string(content[:block.Info.Segment.Start]), "\n")
		list = append(list, example{kind: kind, code: code.String(), pos: file + ":" + strconv.Itoa(line)})
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("cannot parse %s: %v", file, err)
	}
	return list
}

// scenario plays the examples of one file.
type scenario struct {
	env    []string
	dir    string
	output string // output of the last run block
}

func (s *scenario) play(t *testing.T, ex example) {
	t.Helper()
	if ex.kind == outputBlock {
		got, want := strings.TrimSpace(s.output), strings.TrimSpace(ex.code)
		if got != want {
			t.Errorf("%s: output mismatch:\ngot:\n%s\n\nwant:\n%s\n\ngot: %q\nwant:%q", ex.pos, got, want, got, want)
		}
		return
	}
	if ex.kind == setupBlock {
		s.dir = t.TempDir()
	}

	cmd := exec.Command("bash", "-c", "set -e; "+ex.code)
	cmd.Dir = s.dir
	cmd.Env = s.env
	out, err := cmd.CombinedOutput()
	if ex.kind == runBlock {
		s.output = string(out)
	}
	if err == nil {
		return
	}
	if ex.kind == commandBlock {
		t.Errorf("%s: check failed: %v\n%s", ex.pos, err, out)
		return
	}
	t.Fatalf("%s: %s failed: %v\n%s", ex.pos, ex.kind, err, out)
}
