// Package poesy builds metrical and rhyme structures out of a pronouncing
// dictionary and samples poem skeletons from them.
package poesy

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/kalexmills/poesy/src/dict"
)

// ErrNoStressedVowel is returned for pronunciations that carry no stress marker.
var ErrNoStressedVowel = errors.New("no stressed vowel")

// StressPattern holds one stress digit per vowel phone: 0 unstressed, 1
// primary and 2 secondary stress.
type StressPattern []int

func (p StressPattern) String() string {
	var b strings.Builder
	for _, s := range p {
		b.WriteByte(byte('0' + s))
	}
	return b.String()
}

// Equal reports whether p and other hold the same digits.
func (p StressPattern) Equal(other StressPattern) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// PrimaryFirst reports whether the first syllable carries primary stress.
func (p StressPattern) PrimaryFirst() bool {
	return len(p) > 0 && p[0] == 1
}

// HasPrimary reports whether any syllable carries primary stress.
func (p StressPattern) HasPrimary() bool {
	for _, s := range p {
		if s == 1 {
			return true
		}
	}
	return false
}

// ParseStressPattern reads patterns written as "0,1", "01" or "0 1".
func ParseStressPattern(s string) (StressPattern, error) {
	var result StressPattern
	for _, r := range s {
		switch {
		case r == ',' || r == ' ':
			continue
		case '0' <= r && r <= '2':
			result = append(result, int(r-'0'))
		default:
			return nil, errors.New("invalid stress digit " + strconv.QuoteRune(r))
		}
	}
	if len(result) == 0 {
		return nil, errors.New("empty stress pattern")
	}
	return result, nil
}

// RhymeKey is the tail of a pronunciation that has to match for two words to rhyme.
type RhymeKey []string

func (k RhymeKey) String() string {
	return strings.Join(k, " ")
}

var stressedPhone = regexp.MustCompile(`^([A-Z]+)([0-2])$`)

// ParsePronunciation computes the stress pattern and the rhyme key of phones.
// Only phones whose base symbol is in vowels contribute stress digits. The
// rhyme key starts at the last vowel with primary stress, or at the first
// phone if there is none.
func ParsePronunciation(phones []string, vowels dict.WordSet) (StressPattern, RhymeKey, error) {
	var (
		stresses StressPattern
		marked   bool
	)
	rhymeStart := 0
	for i, phone := range phones {
		m := stressedPhone.FindStringSubmatch(phone)
		if m == nil {
			continue
		}
		marked = true
		if !vowels.Has(m[1]) {
			continue
		}
		stress := int(m[2][0] - '0')
		stresses = append(stresses, stress)
		if stress == 1 {
			rhymeStart = i
		}
	}
	if !marked || len(stresses) == 0 {
		return nil, nil, ErrNoStressedVowel
	}
	return stresses, RhymeKey(phones[rhymeStart:]), nil
}

// PronunciationKey identifies an exact phone sequence.
func PronunciationKey(phones []string) string {
	return strings.Join(phones, " ")
}
