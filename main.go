package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bookly/bookly/config"
	"github.com/bookly/bookly/log"
	"github.com/bookly/bookly/server"
	"github.com/bookly/bookly/store"
	"github.com/bookly/bookly/store/db"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	greetingBanner = `
██████   ██████   ██████  ██   ██ ██   ██    ██
██   ██ ██    ██ ██    ██ ██  ██  ██    ██  ██
██████  ██    ██ ██    ██ █████   ██     ████
██   ██ ██    ██ ██    ██ ██  ██  ██      ██
██████   ██████   ██████  ██   ██ ███████ ██
`
)

var (
	configFile string

	rootCmd = &cobra.Command{
		Use:   "bookly",
		Short: "Bookly is a mood-based book recommendation service",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			database, err := db.NewDB(config.Opts.DSN)
			if err != nil {
				log.Error("Error connecting to database", zap.Error(err))
				return
			}
			defer database.Close()
			if err := database.Migrate(ctx); err != nil {
				log.Error("Error migrating database", zap.Error(err))
				return
			}

			s := store.NewStore(database.DB)
			if err := s.Ping(); err != nil {
				log.Error("Error pinging database", zap.Error(err))
				return
			}

			httpServer, err := server.StartServer(ctx, s)
			if err != nil {
				log.Error("Error starting server", zap.Error(err))
				return
			}
			fmt.Print(greetingBanner)

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				log.Error("Error shutting down server", zap.Error(err))
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file")
	rootCmd.PersistentFlags().String("host", "", "host to listen on")
	rootCmd.PersistentFlags().Int("port", 0, "port to listen on")
	rootCmd.PersistentFlags().String("data", "", "data directory")

	cobra.OnInitialize(func() {
		if _, err := config.GetConfig(); err != nil {
			fmt.Println("Error loading config:", err)
			os.Exit(1)
		}
		if configFile != "" {
			if _, err := config.ParseFile(configFile); err != nil {
				fmt.Println("Error parsing config file:", err)
				os.Exit(1)
			}
		}
		if host, _ := rootCmd.PersistentFlags().GetString("host"); host != "" {
			config.Opts.Host = host
		}
		if port, _ := rootCmd.PersistentFlags().GetInt("port"); port != 0 {
			config.Opts.Port = port
		}
		if data, _ := rootCmd.PersistentFlags().GetString("data"); data != "" {
			config.Opts.Data = data
			config.Opts.DSN = filepath.Join(data, "bookly.db")
		}

		log.Logger = log.NewLogger()
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if log.Logger != nil {
		log.Logger.Sync()
	}
}
