// Interactive terminal entry point. Shares the exact pipeline the HTTP
// service runs, but loads the corpus from the local snapshot file so it
// works without any databases.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tanyasbaking/bakery-assistant/backend/internal/assistant"
	"github.com/tanyasbaking/bakery-assistant/backend/internal/config"
	"github.com/tanyasbaking/bakery-assistant/backend/internal/corpus"
	"github.com/tanyasbaking/bakery-assistant/backend/internal/llm"
	"github.com/tanyasbaking/bakery-assistant/backend/internal/logger"
	"github.com/tanyasbaking/bakery-assistant/backend/internal/reviews"
	"github.com/tanyasbaking/bakery-assistant/backend/internal/websearch"
)

func main() {
	godotenv.Load()
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, "console")
	defer log.Sync()
	ctx := context.Background()

	index := corpus.NewIndex(corpus.FileProvider{Path: cfg.CorpusFile}, log)
	if err := index.Reload(ctx); err != nil {
		log.Fatal("load corpus", zap.Error(err), zap.String("file", cfg.CorpusFile))
	}

	webGateway := websearch.NewGateway(cfg.SerperURL, cfg.SerperAPIKey, log)
	reviewGateway := reviews.NewGateway(cfg.GoogleAPIKey, log)

	primary := llm.NewClient("openai", cfg.OpenAIURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, 0.2)
	fallback := llm.NewClient("openrouter", cfg.OpenRouterURL, cfg.OpenRouterAPIKey, cfg.OpenRouterModel, 0.3)
	generator := llm.NewFallbackGenerator(primary, fallback, log)

	pipeline := assistant.NewPipeline(index, webGateway, reviewGateway, generator, log)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("Ask Tanya's Baking assistant: ")
	for scanner.Scan() {
		question := strings.TrimSpace(scanner.Text())
		if question == "" || question == "exit" || question == "quit" {
			break
		}

		ans, err := pipeline.Answer(ctx, question)
		if err != nil {
			fmt.Fprintf(os.Stderr, "all models failed: %v\n", err)
			fmt.Print("\nAsk Tanya's Baking assistant: ")
			continue
		}

		fmt.Printf("\n[intent: %s]\n\n--- ANSWER ---\n\n%s\n", ans.Intent, ans.Text)
		printSources("SOURCES (LOCAL)", ans.Sources.Local)
		printSources("SOURCES (WEB - VERIFIED)", ans.Sources.WebVerified)
		printSources("SOURCES (WEB - UNVERIFIED / DROPPED)", ans.Sources.WebUnverified)

		fmt.Print("\nAsk Tanya's Baking assistant: ")
	}
}

func printSources(header string, sources []string) {
	fmt.Printf("\n--- %s ---\n\n", header)
	if len(sources) == 0 {
		fmt.Println("None")
		return
	}
	for _, s := range sources {
		fmt.Println(s)
	}
}
