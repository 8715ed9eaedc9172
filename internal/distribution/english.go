package distribution

import (
	"sync"

	"github.com/mmrzaf/dsdgen/internal/random"
)

// English word-class distributions backing the sentence grammar, plus the
// syllable set used for deterministic word building.
var (
	adjectivesOnce   sync.Once
	adjectivesDist   *StringValues
	adverbsOnce      sync.Once
	adverbsDist      *StringValues
	articlesOnce     sync.Once
	articlesDist     *StringValues
	auxiliariesOnce  sync.Once
	auxiliariesDist  *StringValues
	nounsOnce        sync.Once
	nounsDist        *StringValues
	prepositionsOnce sync.Once
	prepositionsDist *StringValues
	verbsOnce        sync.Once
	verbsDist        *StringValues
	terminatorsOnce  sync.Once
	terminatorsDist  *StringValues
	sentencesOnce    sync.Once
	sentencesDist    *StringValues
	syllablesOnce    sync.Once
	syllablesDist    *StringValues
)

func adjectives() *StringValues {
	adjectivesOnce.Do(func() { adjectivesDist = mustLoadStringValues("adjectives.dst", 1, 1) })
	return adjectivesDist
}

func adverbs() *StringValues {
	adverbsOnce.Do(func() { adverbsDist = mustLoadStringValues("adverbs.dst", 1, 1) })
	return adverbsDist
}

func articles() *StringValues {
	articlesOnce.Do(func() { articlesDist = mustLoadStringValues("articles.dst", 1, 1) })
	return articlesDist
}

func auxiliaries() *StringValues {
	auxiliariesOnce.Do(func() { auxiliariesDist = mustLoadStringValues("auxiliaries.dst", 1, 1) })
	return auxiliariesDist
}

func nouns() *StringValues {
	nounsOnce.Do(func() { nounsDist = mustLoadStringValues("nouns.dst", 1, 1) })
	return nounsDist
}

func prepositions() *StringValues {
	prepositionsOnce.Do(func() { prepositionsDist = mustLoadStringValues("prepositions.dst", 1, 1) })
	return prepositionsDist
}

func verbs() *StringValues {
	verbsOnce.Do(func() { verbsDist = mustLoadStringValues("verbs.dst", 1, 1) })
	return verbsDist
}

func terminators() *StringValues {
	terminatorsOnce.Do(func() { terminatorsDist = mustLoadStringValues("terminators.dst", 1, 1) })
	return terminatorsDist
}

func sentences() *StringValues {
	sentencesOnce.Do(func() { sentencesDist = mustLoadStringValues("sentences.dst", 1, 1) })
	return sentencesDist
}

// Syllables exposes the syllable distribution for word generation.
func Syllables() *StringValues {
	syllablesOnce.Do(func() { syllablesDist = mustLoadStringValues("syllables.dst", 1, 1) })
	return syllablesDist
}

func PickRandomAdjective(s *random.Stream) (string, error) {
	return adjectives().PickRandomValue(0, 0, s)
}

func PickRandomAdverb(s *random.Stream) (string, error) {
	return adverbs().PickRandomValue(0, 0, s)
}

func PickRandomArticle(s *random.Stream) (string, error) {
	return articles().PickRandomValue(0, 0, s)
}

func PickRandomAuxiliary(s *random.Stream) (string, error) {
	return auxiliaries().PickRandomValue(0, 0, s)
}

func PickRandomNoun(s *random.Stream) (string, error) {
	return nouns().PickRandomValue(0, 0, s)
}

func PickRandomPreposition(s *random.Stream) (string, error) {
	return prepositions().PickRandomValue(0, 0, s)
}

func PickRandomVerb(s *random.Stream) (string, error) {
	return verbs().PickRandomValue(0, 0, s)
}

func PickRandomTerminator(s *random.Stream) (string, error) {
	return terminators().PickRandomValue(0, 0, s)
}

// PickRandomSentence draws a sentence syntax template.
func PickRandomSentence(s *random.Stream) (string, error) {
	return sentences().PickRandomValue(0, 0, s)
}
