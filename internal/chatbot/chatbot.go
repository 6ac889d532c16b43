// Package chatbot implements the rule-based food chatbot: plain
// keyword matching over the input, with a random corpus suggestion as
// the fallback. No dialogue state is kept.
package chatbot

import (
	"math/rand"
	"strings"

	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/corpus"
)

// rule maps trigger keywords to a canned reply.
type rule struct {
	keywords []string
	reply    string
}

var rules = []rule{
	{[]string{"spicy", "hot"}, "Try Spicy Fried Rice or Masala Dosa!"},
	{[]string{"sweet", "dessert"}, "You might like Gulab Jamun or Chocolate Mousse!"},
	{[]string{"quick", "fast", "easy"}, "Try Grilled Cheese Sandwich or 15-Minute Tomato Pasta!"},
	{[]string{"healthy"}, "Quinoa Salad or Steamed Veggies are great healthy options!"},
}

// Bot answers food questions by keyword rules.
type Bot struct {
	snap *corpus.Snapshot
	rng  *rand.Rand
}

// New creates a chatbot backed by the corpus for fallback suggestions.
func New(snap *corpus.Snapshot, seed int64) *Bot {
	return &Bot{snap: snap, rng: rand.New(rand.NewSource(seed))}
}

// Reply returns the bot's answer for the input.
func (b *Bot) Reply(input string) string {
	input = strings.ToLower(strings.TrimSpace(input))

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(input, kw) {
				return r.reply
			}
		}
	}

	if b.snap.Len() == 0 {
		return "Not sure! Try searching for a recipe instead."
	}
	suggestion := b.snap.Recipe(b.rng.Intn(b.snap.Len())).Title
	return "Not sure, but you might like: " + suggestion
}
