package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/keyturn/keyturn/pkg/config"
	"github.com/keyturn/keyturn/pkg/engine"
	"github.com/keyturn/keyturn/pkg/provision"
	"github.com/keyturn/keyturn/pkg/server"
	"github.com/keyturn/keyturn/pkg/server/endpoints"
	"github.com/keyturn/keyturn/pkg/store"
)

func defaultConfigPath() string {
	if path := os.Getenv("KEYTURN_CONFIG"); path != "" {
		return path
	}
	return config.DefaultConfigPath
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the keyturn application server",
	Long: `Run the keyturn application server.

The server needs a configuration file naming the administrative secret,
the registry files, and the provisioning script. Use --watch-config to
pick up an edited secret without a restart.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(1)
		}

		keys := store.Open("keys", cfg.KeysPath)
		users := store.Open("users", cfg.UsersPath)

		flush := store.NewAsyncScheduler()
		defer flush.Close()

		eng := engine.New(engine.Config{
			Keys:  keys,
			Users: users,
			Provisioner: &provision.ScriptProvisioner{
				Path:    cfg.ProvisionScript,
				Timeout: cfg.ProvisionTimeoutDuration(),
			},
			Flush:        flush,
			Secret:       cfg.SecretKey,
			ProxyAddress: cfg.ProxyAddress,
			ProxyPort:    cfg.ProxyPort,
		})

		if watch, _ := cmd.Flags().GetBool("watch-config"); watch {
			watcher, err := config.Watch(configPath, func(next *config.Config) {
				eng.SetSecret(next.SecretKey)
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to watch configuration: %v\n", err)
				os.Exit(1)
			}
			defer func() { _ = watcher.Close() }()
		}

		s := server.NewServer(eng, cfg.Addr())
		endpoints.RegisterAll(s)

		errc := make(chan error, 1)
		go func() { errc <- s.Start() }()
		log.Printf("Running server at http://%s...", cfg.Addr())

		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errc:
			log.Fatal(err)
		case sig := <-sigc:
			log.Printf("Received %s, shutting down...", sig)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := s.Shutdown(ctx); err != nil {
				log.Printf("Shutdown error: %v", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("config", "c", defaultConfigPath(), "configuration file path")
	serverCmd.Flags().Bool("watch-config", false, "reload the configuration file when it changes")
}
