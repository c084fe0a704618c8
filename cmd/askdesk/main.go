// Command askdesk routes natural-language questions to company
// knowledge bases and prints grounded answers.
package main

import (
	"fmt"
	"os"

	"github.com/zava-labs/askdesk-cli/internal/adapters/driven/ai"
	"github.com/zava-labs/askdesk-cli/internal/adapters/driven/config/file"
	"github.com/zava-labs/askdesk-cli/internal/adapters/driving/cli"
	"github.com/zava-labs/askdesk-cli/internal/core/domain"
	"github.com/zava-labs/askdesk-cli/internal/core/services"
)

// version is set at build time:
// go build -ldflags "-X main.version=1.2.3"
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialising config: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)

	sessions := ai.NewDynamicSessionFactory(settingsService)
	router := services.NewRouter(domain.DefaultRouteRules(), domain.DefaultRoute)
	extractor := services.NewSourceExtractor(domain.DefaultFallbackSources())
	orchestrator := services.NewOrchestrator(sessions, router, extractor)

	cli.SetVersion(version)
	cli.SetServices(orchestrator, settingsService)

	return cli.Execute()
}
