package prompt

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Conceptual-Machines/promptgram/internal/grammar"
	"github.com/Conceptual-Machines/promptgram/internal/logger"
	"github.com/Conceptual-Machines/promptgram/internal/metrics"
	"github.com/Conceptual-Machines/promptgram/internal/promptutil"
)

// Well-known grammar names
const (
	GrammarPrompt = "prompt"
	GrammarKarma  = "karma"
	GrammarMaker  = "maker"
)

// ErrUnknownGrammar is returned for names with no loaded grammar
var ErrUnknownGrammar = errors.New("unknown grammar")

// Service generates text from a fixed set of named grammars. It is safe for
// concurrent use: the grammars are read-only and the shared source is locked.
type Service struct {
	grammars map[string]*grammar.Grammar
	rng      grammar.Source
	recorder metrics.Recorder
}

// NewService wires grammars, a random source and a metrics recorder.
// A nil recorder disables metrics.
func NewService(grammars map[string]*grammar.Grammar, rng grammar.Source, recorder metrics.Recorder) *Service {
	if recorder == nil {
		recorder = metrics.Multi{}
	}
	return &Service{
		grammars: grammars,
		rng:      rng,
		recorder: recorder,
	}
}

// Names lists the loaded grammars in sorted order.
func (s *Service) Names() []string {
	names := make([]string, 0, len(s.grammars))
	for name := range s.grammars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Grammar returns the named grammar.
func (s *Service) Grammar(name string) (*grammar.Grammar, error) {
	g, ok := s.grammars[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGrammar, name)
	}
	return g, nil
}

// Generate expands start (grammar.DefaultStart when empty) in the named grammar.
func (s *Service) Generate(ctx context.Context, name, start string) (string, error) {
	g, err := s.Grammar(name)
	if err != nil {
		return "", err
	}
	if start == "" {
		start = grammar.DefaultStart
	}
	return s.generate(ctx, name, g, start), nil
}

// Inspire returns a fresh prompt from the prompt grammar.
func (s *Service) Inspire(ctx context.Context) (string, error) {
	return s.Generate(ctx, GrammarPrompt, "")
}

// Karma spins the karma wheel.
func (s *Service) Karma(ctx context.Context) (string, error) {
	return s.Generate(ctx, GrammarKarma, "")
}

// Fill completes template fields from the named grammar, see promptutil.TemplateFill.
func (s *Service) Fill(ctx context.Context, name string, fields map[string]*string, fill bool) (map[string]string, error) {
	g, err := s.Grammar(name)
	if err != nil {
		return nil, err
	}
	return promptutil.TemplateFill(fields, &recordingGenerator{s: s, ctx: ctx, name: name, g: g}, s.rng, fill), nil
}

func (s *Service) generate(ctx context.Context, name string, g *grammar.Grammar, start string) string {
	began := time.Now()
	tokens := g.Tokens(s.rng, start)
	text := grammar.Normalize(tokens)
	elapsed := time.Since(began)

	s.recorder.RecordGeneration(ctx, name, start, len(tokens), elapsed)
	logger.LogGeneration(ctx, name, start, elapsed, logger.Fields{"tokens": len(tokens)})

	return text
}

// recordingGenerator routes template fills through Service.generate so
// they are logged and counted like direct generations.
type recordingGenerator struct {
	s    *Service
	ctx  context.Context
	name string
	g    *grammar.Grammar
}

func (r *recordingGenerator) GenerateFrom(_ grammar.Source, start string) string {
	return r.s.generate(r.ctx, r.name, r.g, start)
}
