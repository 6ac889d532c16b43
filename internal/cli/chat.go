package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/chatbot"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Ask the food chatbot",
	Long: `Ask the food chatbot.

A simple keyword-matching bot: mention "spicy", "sweet", "quick" or
"healthy" and it suggests something fitting; anything else gets a
random pick from the corpus. Type "exit" to leave.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	_, snap, err := setup()
	if err != nil {
		return err
	}

	bot := chatbot.New(snap, time.Now().UnixNano())

	fmt.Println("Ask me about food (type \"exit\" to leave):")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			break
		}
		fmt.Println(bot.Reply(input))
	}
	return scanner.Err()
}

// joinArgs joins command args back into the phrase the user typed.
func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
