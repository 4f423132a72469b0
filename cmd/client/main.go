package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/VladPetriv/category_manager/config"
	"github.com/VladPetriv/category_manager/internal/api/categories"
	"github.com/VladPetriv/category_manager/internal/client"
	"github.com/VladPetriv/category_manager/internal/tui"
	"github.com/VladPetriv/category_manager/pkg/logger"
	"github.com/spf13/cobra"
)

const defaultClientLogFile = "category_client.log"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCommand().ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := config.Get()

	var (
		apiURL  = cfg.Client.APIURL
		logFile = cfg.Logger.LogFilename
	)
	if logFile == "" {
		logFile = defaultClientLogFile
	}

	cmd := &cobra.Command{
		Use:          "categories",
		Short:        "Manage categories stored in the category store",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logger.New(logger.Options{
				LogLevel:       cfg.Logger.LogLevel,
				LogFile:        logFile,
				DisableConsole: true,
			})
			logger.Info().Str("apiURL", apiURL).Msg("starting categories client")

			screen := client.NewScreen(logger, categories.New(apiURL, cfg.Client.Timeout))

			return tui.Run(cmd.Context(), screen)
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", apiURL, "base url of the category store")
	cmd.Flags().StringVar(&logFile, "log-file", logFile, "file to write client logs to")

	return cmd
}
