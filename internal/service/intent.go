package service

import (
	"strings"
)

// Intent identifies which adapter(s) a chat turn should be routed to
type Intent string

const (
	IntentWeather Intent = "weather"
	IntentPrice   Intent = "price"
	IntentDisease Intent = "disease"
	IntentCrops   Intent = "crops"
	IntentGeneric Intent = "generic"
)

// intentOrder fixes the evaluation order so classification is
// deterministic when a message matches several intents
var intentOrder = []Intent{IntentDisease, IntentWeather, IntentPrice, IntentCrops}

// IntentClassifier matches user messages against a configurable
// keyword mapping. The mapping comes from configuration rather than
// hard-coded literals so deployments can tune it per region.
type IntentClassifier struct {
	keywords map[Intent][]string
}

// NewIntentClassifier builds a classifier from a keyword mapping keyed
// by intent name. Unknown intent names are ignored.
func NewIntentClassifier(mapping map[string][]string) *IntentClassifier {
	keywords := make(map[Intent][]string, len(mapping))
	for name, words := range mapping {
		intent := Intent(name)
		lowered := make([]string, 0, len(words))
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w != "" {
				lowered = append(lowered, w)
			}
		}
		keywords[intent] = lowered
	}
	return &IntentClassifier{keywords: keywords}
}

// Classify returns the intent of a user message. Messages that match
// no keyword set are generic and go to the language model.
func (c *IntentClassifier) Classify(message string) Intent {
	text := strings.ToLower(message)

	for _, intent := range intentOrder {
		for _, keyword := range c.keywords[intent] {
			if strings.Contains(text, keyword) {
				return intent
			}
		}
	}

	return IntentGeneric
}
