package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/mmohamedd-cyber/ai-report-generator/internal/config"
	"github.com/mmohamedd-cyber/ai-report-generator/internal/handle"
	"github.com/mmohamedd-cyber/ai-report-generator/internal/httpserver"
	"github.com/mmohamedd-cyber/ai-report-generator/internal/llm"
	"github.com/mmohamedd-cyber/ai-report-generator/internal/llm/gemini"
	"github.com/mmohamedd-cyber/ai-report-generator/internal/llm/openai"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, relying on process env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	httpc := &http.Client{Timeout: cfg.RequestTimeout()}
	engines := &llm.Engines{
		Gemini: gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel).
			WithAuthMode(cfg.GeminiAuthMode).
			WithHTTPClient(httpc),
		OpenAI: openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel).
			WithHTTPClient(httpc),
	}
	if _, err := engines.GetEngine(cfg.Provider); err != nil {
		log.Fatal(err)
	}

	h := handle.New(engines, cfg)
	log.Fatal(httpserver.Start(":"+cfg.Port, h))
}
