package app

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readingctl/internal/api"
	"github.com/blackwell-systems/readingctl/internal/cache"
	"github.com/blackwell-systems/readingctl/internal/chat"
	"github.com/blackwell-systems/readingctl/internal/config"
	"github.com/blackwell-systems/readingctl/internal/session"
	"github.com/blackwell-systems/readingctl/internal/util"
)

var (
	cfg       *config.Config
	client    *api.Client
	assistant *chat.Client
	cacheMgr  *cache.Manager
	sessions  *session.Store
	current   session.State

	flagNoColor       bool
	flagNoInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "readingctl",
	Short: "Track your reading and get book recommendations",
	Long: `readingctl is a client for a personal reading tracker.

Search the catalog, keep a library with per-book reading progress,
review your reading statistics, and chat with the BookBot
recommendation assistant.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		client = api.New(cfg.Service.BaseURL)
		assistant = chat.NewClient(cfg.Assistant.BaseURL)
		cacheMgr = cache.New(cfg.Cache.Dir)
		sessions = session.NewStore(cfg.Session.Path)

		current, err = sessions.Load()
		if err != nil {
			warn("Could not read session state: %v", err)
			current = session.State{}
		}
		return nil
	}

	rootCmd.AddCommand(
		newLoginCmd(),
		newRegisterCmd(),
		newLogoutCmd(),
		newLibraryCmd(),
		newAddCmd(),
		newProgressCmd(),
		newRemoveCmd(),
		newSearchCmd(),
		newLookupCmd(),
		newStatsCmd(),
		newChatCmd(),
		newVersionCmd(),
	)
}

// requireLogin returns the signed-in user id or an error directing the
// user to the login command.
func requireLogin() (string, error) {
	if !current.LoggedIn || current.UserID == "" {
		return "", fmt.Errorf("not logged in — run 'readingctl login' first")
	}
	return current.UserID, nil
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}
