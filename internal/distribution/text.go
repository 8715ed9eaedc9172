package distribution

import (
	"strings"
	"unicode"

	"github.com/mmrzaf/dsdgen/internal/random"
)

// RandomText builds a run of sentences whose combined length lands between
// minLength and maxLength. The first word of the text, and of every sentence
// that follows one ended by a period, is capitalized. Joining spaces count
// against the target length.
func RandomText(minLength, maxLength int32, s *random.Stream) (string, error) {
	var text strings.Builder
	sentenceBeginning := true
	targetLength := random.UniformInt(minLength, maxLength, s)

	for targetLength > 0 {
		generated, err := randomSentence(s)
		if err != nil {
			return "", err
		}
		if sentenceBeginning && generated != "" {
			generated = string(unicode.ToUpper(rune(generated[0]))) + generated[1:]
		}

		generatedLength := int32(len(generated))
		sentenceBeginning = strings.HasSuffix(generated, ".")

		if targetLength < generatedLength {
			generated = generated[:targetLength]
		}
		targetLength -= generatedLength

		text.WriteString(generated)
		if targetLength > 0 {
			text.WriteByte(' ')
			targetLength--
		}
	}
	return text.String(), nil
}

// randomSentence expands a syntax template drawn from the sentences
// distribution. Template characters name a word class to draw; anything else
// is copied through as punctuation or whitespace.
func randomSentence(s *random.Stream) (string, error) {
	syntax, err := PickRandomSentence(s)
	if err != nil {
		return "", err
	}

	var verbiage strings.Builder
	for _, ch := range syntax {
		var word string
		switch ch {
		case 'N':
			word, err = PickRandomNoun(s)
		case 'V':
			word, err = PickRandomVerb(s)
		case 'J':
			word, err = PickRandomAdjective(s)
		case 'D':
			word, err = PickRandomAdverb(s)
		case 'X':
			word, err = PickRandomAuxiliary(s)
		case 'P':
			word, err = PickRandomPreposition(s)
		case 'A':
			word, err = PickRandomArticle(s)
		case 'T':
			word, err = PickRandomTerminator(s)
		default:
			verbiage.WriteRune(ch)
			continue
		}
		if err != nil {
			return "", err
		}
		verbiage.WriteString(word)
	}
	return verbiage.String(), nil
}

// GenerateWord turns a numeric seed into a pronounceable word by peeling off
// base-N digits and mapping each to a syllable, stopping once the next
// syllable would push the word past maxChars.
func GenerateWord(seed int64, maxChars int32) string {
	syllables := Syllables()
	size := int64(syllables.Size())

	var word strings.Builder
	for seed > 0 {
		syllable, err := syllables.ValueAtIndex(0, int(seed%size))
		if err != nil {
			break
		}
		seed /= size

		if int32(word.Len()+len(syllable)) <= maxChars {
			word.WriteString(syllable)
		} else {
			break
		}
	}
	return word.String()
}

// RandomURL mirrors the reference generator, which hands every row the same
// address and draws nothing from its stream.
func RandomURL(_ *random.Stream) string {
	return "http://www.foo.com"
}
