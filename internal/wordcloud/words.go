package wordcloud

import (
	"sort"
	"strings"
	"unicode"
)

// DefaultStopwords are dropped before counting: English filler words plus
// common Indonesian connectives found in item descriptions.
var DefaultStopwords = []string{
	"a", "an", "and", "are", "as", "at", "be", "by", "for", "from", "in", "is",
	"it", "of", "on", "or", "the", "to", "with",
	"dan", "di", "ke", "untuk", "yang",
}

// Word is a distinct token with its occurrence count and relative weight
type Word struct {
	Text   string
	Count  int
	Weight float64
}

// tokenize splits text into words of letters and digits. Apostrophes and
// hyphens are kept only between two word characters.
func tokenize(text string) []string {
	runes := []rune(text)
	var tokens []string
	var b strings.Builder

	flush := func() {
		if b.Len() == 0 {
			return
		}
		tok := b.String()
		b.Reset()
		if len([]rune(tok)) >= 2 {
			tokens = append(tokens, tok)
		}
	}

	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case (r == '\'' || r == '-') && b.Len() > 0 && i+1 < len(runes) &&
			(unicode.IsLetter(runes[i+1]) || unicode.IsDigit(runes[i+1])):
			b.WriteRune(r)
		default:
			flush()
		}
	}
	flush()
	return tokens
}

// countWords counts tokens case-insensitively, skipping stopwords and pure numbers.
// Each entry is reported under its most frequent spelling; ties go to the
// spelling seen first.
func countWords(text string, stopwords map[string]struct{}) []Word {
	type entry struct {
		count     int
		forms     map[string]int
		firstForm []string
	}

	entries := make(map[string]*entry)
	for _, tok := range tokenize(text) {
		key := strings.ToLower(tok)
		if _, skip := stopwords[key]; skip || isNumeric(key) {
			continue
		}
		e, ok := entries[key]
		if !ok {
			e = &entry{forms: make(map[string]int)}
			entries[key] = e
		}
		e.count++
		if e.forms[tok] == 0 {
			e.firstForm = append(e.firstForm, tok)
		}
		e.forms[tok]++
	}

	words := make([]Word, 0, len(entries))
	for _, e := range entries {
		best := e.firstForm[0]
		for _, form := range e.firstForm[1:] {
			if e.forms[form] > e.forms[best] {
				best = form
			}
		}
		words = append(words, Word{Text: best, Count: e.count})
	}

	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return strings.ToLower(words[i].Text) < strings.ToLower(words[j].Text)
	})
	return words
}

// Frequencies returns the ranked words of text with weights normalised to the
// most frequent word, truncated to maxWords when positive.
func Frequencies(text string, stopwords []string, maxWords int) []Word {
	words := countWords(text, stopwordSet(stopwords))
	if maxWords > 0 && len(words) > maxWords {
		words = words[:maxWords]
	}
	if len(words) == 0 {
		return words
	}
	top := float64(words[0].Count)
	for i := range words {
		words[i].Weight = float64(words[i].Count) / top
	}
	return words
}

func stopwordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
