package embedded

import (
	_ "embed"
)

// Default grammars, used when no grammar file is configured
//
//go:embed data/grammars/prompt.grammar
var PromptGrammar []byte

//go:embed data/grammars/karma.grammar
var KarmaGrammar []byte

//go:embed data/grammars/maker.grammar
var MakerGrammar []byte

// Grammars maps grammar names to their embedded source
var Grammars = map[string][]byte{
	"prompt": PromptGrammar,
	"karma":  KarmaGrammar,
	"maker":  MakerGrammar,
}
