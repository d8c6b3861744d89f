package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/hongminglow/shift-assign/internal/api"
	"github.com/hongminglow/shift-assign/internal/config"
	"github.com/hongminglow/shift-assign/internal/logging"
	"github.com/hongminglow/shift-assign/internal/members"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := execute(context.Background(), newRootCmd(os.Stdout, os.Stderr), os.Stderr); err != nil {
		os.Exit(1)
	}
}

// reportedError marks an error the Store already surfaced through the notifier.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// execute runs cmd and prints any error the user has not already seen.
func execute(ctx context.Context, cmd *cobra.Command, stderr io.Writer) error {
	err := cmd.ExecuteContext(ctx)
	var rep *reportedError
	if err != nil && !errors.As(err, &rep) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return err
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var baseURL string

	root := &cobra.Command{
		Use:           "dashboard",
		Short:         "Smart Shift Assignment team dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			envErr := godotenv.Load()
			cfg := config.LoadClient()
			logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
			if envErr != nil {
				slog.Debug("no .env file found; relying on existing environment")
			}
			if baseURL == "" {
				baseURL = cfg.BaseURL
			}
		},
	}
	root.PersistentFlags().StringVar(&baseURL, "base-url", "", "gateway base URL (default $SHIFT_API_BASE_URL or http://localhost:8080)")

	// The store is built lazily so PersistentPreRun has resolved baseURL.
	session := func() *members.Store {
		notifier := members.NotifierFunc(func(n members.Notification) {
			printNotification(stdout, stderr, n)
		})
		return members.NewStore(api.NewClient(baseURL), notifier)
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Show summary tiles and every member card",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store := session()
				if err := store.Refresh(cmd.Context()); err != nil {
					return reported(err)
				}
				renderDashboard(stdout, store.Stats(), store.Members())
				return nil
			},
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Show the summary tiles",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store := session()
				if err := store.Refresh(cmd.Context()); err != nil {
					return reported(err)
				}
				renderStats(stdout, store.Stats())
				return nil
			},
		},
		newAddCmd(stdout, session),
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Remove a member",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid member id %q", args[0])
				}
				return mutate(cmd.Context(), stdout, session(), func(ctx context.Context, store *members.Store) error {
					return store.RemoveMember(ctx, id)
				})
			},
		},
	)
	return root
}

func newAddCmd(stdout io.Writer, session func() *members.Store) *cobra.Command {
	var name, phone string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd.Context(), stdout, session(), func(ctx context.Context, store *members.Store) error {
				_, err := store.AddMember(ctx, name, phone)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	return cmd
}

// mutate loads the list, applies op and re-renders. A failed initial load does
// not stop the mutation; the notifier has already reported it.
func mutate(ctx context.Context, stdout io.Writer, store *members.Store, op func(context.Context, *members.Store) error) error {
	_ = store.Refresh(ctx)
	if err := op(ctx, store); err != nil {
		return reported(err)
	}
	renderDashboard(stdout, store.Stats(), store.Members())
	return nil
}
