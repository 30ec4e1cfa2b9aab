package main

import (
	"fmt"
	"os"

	"github.com/metinatakli/movie-discovery/internal/app"
	"github.com/metinatakli/movie-discovery/internal/vcs"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "movie-discovery",
	Short: "Browse now playing, top rated and upcoming movies",
	Long: `movie-discovery serves a movie browsing site backed by The Movie Database:
a hero banner, paginated category carousels and a details overlay per movie.`,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return app.Run(cfg)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version and exit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Version:\t%s\n", vcs.Version())
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	flags := serveCmd.Flags()
	flags.Int("port", 3000, "server port")
	flags.String("env", "dev", "Environment (dev|staging|prod)")
	flags.String("otel-collector-url", "", "OpenTelemetry collector gRPC endpoint")
	flags.String("tmdb-api-key", "", "TMDB API key")
	flags.String("tmdb-base-url", "", "TMDB API base URL")
	flags.String("tmdb-language", "en-US", "TMDB response language")
	flags.Duration("tmdb-timeout", 0, "TMDB request timeout")
	flags.String("redis-url", "", "Redis address")
	flags.Int("redis-max-open-conns", 25, "Redis max open connections")
	flags.Int("redis-max-idle-conns", 10, "Redis max idle connections")
	flags.Duration("redis-max-idle-time", 0, "Redis max idle time for connections")
	flags.Duration("cache-ttl", 0, "how long category listings stay cached")
	flags.Duration("session-idle-timeout", 0, "session idle timeout")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
