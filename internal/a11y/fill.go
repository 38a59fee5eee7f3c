package a11y

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"
	"text/template"
)

// Values maps placeholder names to the fragments that replace them.
type Values map[string]string

// ErrBadPattern is returned for a pattern that cannot be filled.
var ErrBadPattern = errors.New("bad pattern")

var (
	placeholder = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

	templates sync.Map // pattern -> *template.Template
)

// Fill replaces every {{name}} in pattern with values[name]. Missing or empty values leave the
// placeholder blank; Compose tidies the result.
func Fill(pattern string, values Values) string {
	t, err := compile(pattern)
	if err != nil {
		return pattern
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, map[string]string(values)); err != nil {
		return pattern
	}
	return buf.String()
}

// checkPattern compiles pattern and fills it once with no values.
func checkPattern(pattern string) error {
	t, err := compile(pattern)
	if err == nil {
		err = t.Execute(io.Discard, map[string]string{})
	}
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrBadPattern, pattern, err)
	}
	return nil
}

func compile(pattern string) (*template.Template, error) {
	if t, ok := templates.Load(pattern); ok {
		return t.(*template.Template), nil
	}
	src := placeholder.ReplaceAllString(pattern, "{{index . \"$1\"}}")
	t, err := template.New("pattern").Option("missingkey=zero").Parse(src)
	if err != nil {
		return nil, err
	}
	templates.Store(pattern, t)
	return t, nil
}

var fold = strings.NewReplacer(" .", ".", ",.", ".", "..", ".", " ,", ",", ",,", ",")

// Compose tidies a filled pattern: runs of spaces collapse, punctuation orphaned by an empty
// fragment folds into its neighbour, a leading period goes and the ends are trimmed.
func Compose(s string) string {
	for {
		next := strings.Join(strings.Fields(s), " ")
		next = fold.Replace(next)
		next = strings.TrimLeft(next, ". ")
		if next == s {
			return next
		}
		s = next
	}
}

// FillCompose fills a pattern and tidies the result.
func FillCompose(pattern string, values Values) string {
	return Compose(Fill(pattern, values))
}

// FragmentToSentence ends a fragment with a period.
func (s Strings) FragmentToSentence(fragment string) string {
	return FillCompose(s.SingleStatementPattern, Values{"statement": fragment})
}
