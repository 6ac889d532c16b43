package chatbot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/corpus"
	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/models"
)

func testBot() *Bot {
	snap := corpus.NewSnapshot([]models.Recipe{
		{Title: "Spicy Fried Rice"},
		{Title: "Chocolate Cake"},
	})
	return New(snap, 1)
}

func TestReply_KeywordRules(t *testing.T) {
	bot := testBot()

	tests := []struct {
		input string
		want  string
	}{
		{"I want something SPICY today", "Spicy Fried Rice"},
		{"something hot please", "Masala Dosa"},
		{"craving a dessert", "Chocolate Mousse"},
		{"need a quick meal", "Tomato Pasta"},
		{"fast dinner ideas", "Grilled Cheese"},
		{"something healthy", "Quinoa Salad"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Contains(t, bot.Reply(tt.input), tt.want)
		})
	}
}

func TestReply_FallbackSuggestsCorpusTitle(t *testing.T) {
	bot := testBot()

	reply := bot.Reply("what should I cook")
	assert.Contains(t, reply, "you might like")

	suggested := strings.Contains(reply, "Spicy Fried Rice") || strings.Contains(reply, "Chocolate Cake")
	assert.True(t, suggested, "fallback should name a corpus recipe, got %q", reply)
}

func TestReply_EmptyCorpusFallback(t *testing.T) {
	bot := New(corpus.NewSnapshot(nil), 1)
	assert.NotEmpty(t, bot.Reply("anything"))
}
