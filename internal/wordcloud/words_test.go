package wordcloud

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected []string
	}{
		{"spaces", "Paracetamol Amoxicillin", []string{"Paracetamol", "Amoxicillin"}},
		{"punctuation", "Paracetamol, 500mg (tab).", []string{"Paracetamol", "500mg", "tab"}},
		{"inner hyphen kept", "anti-inflamasi -x", []string{"anti-inflamasi"}},
		{"inner apostrophe kept", "children's syrup", []string{"children's", "syrup"}},
		{"single letters dropped", "a b vitamin c", []string{"vitamin"}},
		{"empty", "", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tokenize(tc.text))
		})
	}
}

func TestFrequencies_CaseInsensitiveRanking(t *testing.T) {
	words := Frequencies("Paracetamol paracetamol PARACETAMOL Amoxicillin amoxicillin Ibuprofen", nil, 0)

	assert.Len(t, words, 3)
	assert.Equal(t, Word{Text: "Paracetamol", Count: 3, Weight: 1}, words[0])
	assert.Equal(t, "Amoxicillin", words[1].Text)
	assert.InDelta(t, 2.0/3.0, words[1].Weight, 1e-9)
	assert.Equal(t, "Ibuprofen", words[2].Text)
}

func TestFrequencies_TiesAreAlphabetical(t *testing.T) {
	words := Frequencies("zinc Amoxicillin Paracetamol", nil, 0)
	assert.Equal(t, []string{"Amoxicillin", "Paracetamol", "zinc"}, []string{words[0].Text, words[1].Text, words[2].Text})
}

func TestFrequencies_StopwordsAndNumbers(t *testing.T) {
	words := Frequencies("Obat untuk demam dan 500 mg", DefaultStopwords, 0)

	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
	}
	assert.ElementsMatch(t, []string{"Obat", "demam", "mg"}, texts)
}

func TestFrequencies_MaxWords(t *testing.T) {
	words := Frequencies("alpha alpha beta gamma delta", nil, 2)
	assert.Len(t, words, 2)
	assert.Equal(t, "alpha", words[0].Text)
}

func TestFrequencies_NoWords(t *testing.T) {
	assert.Empty(t, Frequencies("  , 12 ; ", DefaultStopwords, 10))
}
