// foodrec - AI food recipe recommendations
//
// Recommends recipes from a static corpus by free-text query (semantic
// embedding search) or by food photo (vision classifier plus keyword
// matching), with favorites and a small food chatbot on the side.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/cli"
	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/log"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	err := cli.Execute(ctx)
	_ = log.Close()
	if err != nil {
		os.Exit(1)
	}
}
