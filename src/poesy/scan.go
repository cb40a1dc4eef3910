package poesy

import (
	"fmt"
	"strings"

	"github.com/kalexmills/poesy/src/dict"
)

// ScannedWord is a word of a line with the stress pattern of its first pronunciation.
type ScannedWord struct {
	Word     string
	Stresses StressPattern
}

func (w ScannedWord) String() string {
	return fmt.Sprintf("%s(%s)", w.Word, w.Stresses)
}

// Scan looks up the stress pattern of every word in line. It fails on the
// first word that is not in the lexicon.
func (l *Lexicon) Scan(line string) ([]ScannedWord, error) {
	var result []ScannedWord
	for _, word := range strings.Fields(line) {
		cleaned := dict.CleanToken(word)
		if cleaned == "" {
			continue
		}
		stresses, ok := l.Stresses(cleaned)
		if !ok {
			return nil, fmt.Errorf("unknown word %s", word)
		}
		result = append(result, ScannedWord{Word: cleaned, Stresses: stresses})
	}
	return result, nil
}

// Contour joins the stress patterns of words into the stress contour of the line.
func Contour(words []ScannedWord) StressPattern {
	var result StressPattern
	for _, w := range words {
		result = append(result, w.Stresses...)
	}
	return result
}
