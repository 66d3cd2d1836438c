package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iudanet/postkeeper/internal/client/iocli"
	"github.com/iudanet/postkeeper/internal/config"
	"github.com/iudanet/postkeeper/internal/models"
	"github.com/iudanet/postkeeper/internal/validation"
)

// Opener builds a Cli for the command being executed
type Opener func(cmd *cobra.Command) (*Cli, error)

// DefaultOpener читает конфигурацию из флагов и окружения и открывает хранилище
func DefaultOpener(io iocli.IO) Opener {
	return func(cmd *cobra.Command) (*Cli, error) {
		cfg, err := config.LoadClient(cmd.Flags())
		if err != nil {
			return nil, err
		}
		logger := config.NewLogger(os.Stderr, cfg.LogLevel, false)
		return Open(cmd.Context(), cfg, io, logger)
	}
}

// Execute запускает CLI с аргументами args и закрывает хранилище по завершении
func Execute(ctx context.Context, io iocli.IO, version string, args []string) error {
	root, closeFn := NewRootCommand(io, version, DefaultOpener(io))
	defer func() {
		if err := closeFn(); err != nil {
			io.Errorf("Failed to close database: %v\n", err)
		}
	}()

	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. The returned func closes
// whatever the opener created.
func NewRootCommand(io iocli.IO, version string, open Opener) (*cobra.Command, func() error) {
	var app *Cli

	root := &cobra.Command{
		Use:           "postkeeper",
		Short:         "Offline-capable client for the postkeeper API",
		Long:          "Reads and edits posts. Changes made while the server is unreachable are queued locally and sent later with 'sync' or 'watch'.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			app, err = open(cmd)
			return err
		},
	}
	root.SetOut(io)
	config.RegisterClientFlags(root.PersistentFlags())

	get := func() *Cli { return app }

	root.AddCommand(
		newListCommand(get),
		newGetCommand(get),
		newCreateCommand(get),
		newUpdateCommand(get),
		newDeleteCommand(get),
		newUsersCommand(get),
		newSyncCommand(get),
		newStatusCommand(get),
		newQueueCommand(get),
		newWatchCommand(get),
	)

	closeFn := func() error {
		if app == nil {
			return nil
		}
		return app.Close()
	}
	return root, closeFn
}

func newListCommand(app func() *Cli) *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runList(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "Filter by title, body or author name")
	cmd.Flags().IntVarP(&opts.Page, "page", "p", 1, "Page number")
	cmd.Flags().BoolVar(&opts.All, "all", false, "Show all posts without paging")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "Fetch posts from the server even if the cache is fresh")
	return cmd
}

func newGetCommand(app func() *Cli) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := validation.ParseID(args[0])
			if err != nil {
				return err
			}
			return app().runGet(cmd.Context(), id)
		},
	}
}

func newCreateCommand(app func() *Cli) *cobra.Command {
	var draft models.PostDraft
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runCreate(cmd.Context(), draft)
		},
	}
	cmd.Flags().StringVar(&draft.Title, "title", "", "Post title")
	cmd.Flags().StringVar(&draft.Body, "body", "", "Post body")
	cmd.Flags().Int64Var(&draft.UserID, "user", 0, "Author user ID")
	return cmd
}

func newUpdateCommand(app func() *Cli) *cobra.Command {
	var title, body string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change title and/or body of a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := validation.ParseID(args[0])
			if err != nil {
				return err
			}

			// В patch попадают только явно переданные флаги
			var patch models.PostPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("body") {
				patch.Body = &body
			}
			if patch.IsEmpty() {
				return fmt.Errorf("nothing to update: pass --title and/or --body")
			}
			return app().runUpdate(cmd.Context(), id, patch)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&body, "body", "", "New body")
	return cmd
}

func newDeleteCommand(app func() *Cli) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a post after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := validation.ParseID(args[0])
			if err != nil {
				return err
			}
			return app().runDelete(cmd.Context(), id, yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func newUsersCommand(app func() *Cli) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runUsers(cmd.Context())
		},
	}
}

func newSyncCommand(app func() *Cli) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Send queued offline changes to the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runSync(cmd.Context())
		},
	}
}

func newStatusCommand(app func() *Cli) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show connectivity and offline queue status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runStatus(cmd.Context())
		},
	}
}

func newQueueCommand(app func() *Cli) *cobra.Command {
	return &cobra.Command{
		Use:   "queue",
		Short: "List queued offline changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runQueue(cmd.Context())
		},
	}
}

func newWatchCommand(app func() *Cli) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Probe the server and send queued changes whenever it comes back online",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runWatch(cmd.Context())
		},
	}
}
