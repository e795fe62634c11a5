package prompt

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/Conceptual-Machines/promptgram/internal/grammar"
	"github.com/Conceptual-Machines/promptgram/internal/logger"
	"github.com/Conceptual-Machines/promptgram/pkg/embedded"
)

// Loader resolves grammar names to parsed grammars. A configured path wins;
// an empty path falls back to the grammar embedded under the same name.
type Loader struct {
	paths    map[string]string
	embedded map[string][]byte
}

// NewLoader creates a loader for the given name -> path table.
func NewLoader(paths map[string]string) *Loader {
	return &Loader{
		paths:    paths,
		embedded: embedded.Grammars,
	}
}

// Load parses a single named grammar.
func (l *Loader) Load(name string) (*grammar.Grammar, error) {
	if path := l.paths[name]; path != "" {
		g, err := grammar.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s grammar: %w", name, err)
		}
		logger.Info("Loaded grammar", logger.Fields{"grammar": name, "source": path, "rules": g.RuleCount()})
		return g, nil
	}

	src, ok := l.embedded[name]
	if !ok {
		return nil, fmt.Errorf("no path configured for %s grammar and no embedded default: %w", name, ErrUnknownGrammar)
	}

	g, err := grammar.New(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded %s grammar: %w", name, err)
	}
	logger.Info("Loaded grammar", logger.Fields{"grammar": name, "source": "embedded", "rules": g.RuleCount()})
	return g, nil
}

// LoadAll parses every configured grammar plus every embedded default.
func (l *Loader) LoadAll() (map[string]*grammar.Grammar, error) {
	names := make(map[string]struct{})
	for name := range l.paths {
		names[name] = struct{}{}
	}
	for name := range l.embedded {
		names[name] = struct{}{}
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	out := make(map[string]*grammar.Grammar, len(sorted))
	for _, name := range sorted {
		g, err := l.Load(name)
		if err != nil {
			return nil, err
		}
		out[name] = g
	}
	return out, nil
}
