package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/MargotLh/market-research-assistant/internal/application"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <industry>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Researches an industry and prints the report to stdout.\n")
		fmt.Fprintf(os.Stderr, "Requires GEMINI_API_KEY to be set.\n")
	}
	flag.Parse()

	industry := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if industry == "" {
		flag.Usage()
		os.Exit(2)
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable is required")
	}

	// Create application (contains all the clients)
	app, err := application.New()
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer app.Close()

	result, err := app.ResearchService.Process(context.Background(), industry, apiKey)
	if err != nil {
		log.Fatalf("Research failed: %v", err)
	}

	fmt.Println(result.Report.Text)
	fmt.Println()
	fmt.Println("Sources:")
	for i, page := range result.Pages {
		fmt.Printf("  [%d] %s\n      %s\n", i+1, page.Title, page.URL)
	}
	fmt.Printf("\n%d words, generated by %s\n", result.Report.WordCount, result.Report.Model)
}
