// Command espeeswap is a small CLI over the swap API client, used for manual
// testing of the full flow: login, rates, banks, account resolution, and
// creating or inspecting swap transactions.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/espeeswap/espeeswap-go/pkg/espees"
)

const (
	envBaseURL = "ESPEES_BASE_URL"
	envToken   = "ESPEES_TOKEN"
)

func main() {
	// Load .env file if present (ignore error if missing).
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := &cobra.Command{
		Use:           "espeeswap",
		Short:         "Swap Espees to local currency from the command line",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(
		loginCmd(),
		ratesCmd(),
		banksCmd(),
		resolveCmd(),
		swapCmd(),
		transactionsCmd(),
		statusCmd(),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", espees.UserMessage(err))
		fmt.Fprintln(os.Stderr, "detail:", err)
		os.Exit(1)
	}
}

// newClient builds a client from the environment. The token persists under
// the user config dir so commands share the session across invocations.
func newClient() (*espees.Client, error) {
	baseURL := os.Getenv(envBaseURL)
	if baseURL == "" {
		return nil, fmt.Errorf("%s is not set", envBaseURL)
	}

	store, err := espees.NewFileTokenStore("", []byte(os.Getenv("ESPEES_TOKEN_SECRET")))
	if err != nil {
		// Fall back to in-memory when no config dir is available.
		store = nil
	}

	return espees.NewClient(&espees.ClientOptions{
		BaseURL:    baseURL,
		Token:      os.Getenv(envToken),
		TokenStore: store,
	})
}
