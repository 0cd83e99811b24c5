package goquery

import "strings"

// englishStopwords is the word set used for content-cluster scoring.
// Boilerplate (navigation, captions, link farms) is grammar-poor, so the
// density of common function words separates prose from chrome better than
// raw length does.
var englishStopwords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		a about above after again against all am an and any are as at be
		because been before being below between both but by can did do does
		doing down during each few for from further had has have having he
		her here hers herself him himself his how i if in into is it its
		itself just me more most my myself no nor not now of off on once
		only or other our ours ourselves out over own same she should so
		some such than that the their theirs them themselves then there
		these they this those through to too under until up very was we
		were what when where which while who whom why will with you your
		yours yourself yourselves`) {
		englishStopwords[w] = struct{}{}
	}
}

// stopwordCount returns the number of stopwords in text, counted over
// lowercased whitespace-separated tokens with leading/trailing punctuation
// trimmed.
func stopwordCount(text string) int {
	count := 0
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		tok = strings.Trim(tok, `.,;:!?"'()[]{}`)
		if _, ok := englishStopwords[tok]; ok {
			count++
		}
	}
	return count
}

// wordCount returns the number of whitespace-separated words in text.
func wordCount(text string) int {
	return len(strings.Fields(text))
}
