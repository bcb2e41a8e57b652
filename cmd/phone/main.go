package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/handset/internal/config"
	"github.com/jwebster45206/handset/internal/logger"
	"github.com/jwebster45206/handset/internal/services"
	"github.com/jwebster45206/handset/pkg/phone"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg)

	var backend services.ChatBackend
	var images services.ImageBackend

	if cfg.APIKey == "" {
		log.Warn("API_KEY is not set, messenger will be unavailable")
	} else {
		switch cfg.Provider {
		case "gemini":
			svc := services.NewGeminiService(cfg.APIKey, cfg.ModelName, cfg.ImageModelName, log)
			backend = svc
			images = svc
		case "openai":
			svc := services.NewOpenAIService(cfg.APIKey, cfg.ModelName, cfg.ImageModelName, log)
			backend = svc
			images = svc
		default:
			fmt.Fprintf(os.Stderr, "Unknown LLM_PROVIDER %q (expected \"gemini\" or \"openai\")\n", cfg.Provider)
			os.Exit(1)
		}
	}

	ctrl := phone.New(backend, images, cfg.Locale, log)
	defer ctrl.Close()

	p := tea.NewProgram(NewPhoneUI(ctrl),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())

	// State changes from background turns re-render the UI.
	ctrl.OnChange(func() {
		p.Send(stateChangedMsg{})
	})

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	ctrl.Close()
	ctrl.Wait()
}
