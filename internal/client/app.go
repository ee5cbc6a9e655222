package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/rexora-cms/internal/adapter"
	"github.com/MKhiriev/rexora-cms/internal/config"
	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/internal/service"
	"github.com/MKhiriev/rexora-cms/internal/store"
	"github.com/MKhiriev/rexora-cms/internal/tui"
	"github.com/MKhiriev/rexora-cms/models"
	"github.com/spf13/cobra"
)

// annotationOffline marks commands that run without the server and the
// local session store.
const annotationOffline = "offline"

var errNotSignedIn = errors.New("not signed in, run `rexora login` first")

type rootFlags struct {
	serverURL  string
	configPath string
	sessionDSN string
	logFile    string
}

// connectFunc builds the client services from the resolved configuration.
// The returned closer releases local storage.
type connectFunc func(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*service.ClientServices, io.Closer, error)

// App is the rexora admin client: a command tree for scripted use and an
// interactive panel started by the tui command or a bare invocation.
type App struct {
	buildInfo models.AppBuildInfo
	flags     rootFlags
	connect   connectFunc

	cfg      *config.ClientConfig
	services *service.ClientServices
	closer   io.Closer
	logger   *logger.Logger
}

func NewApp(buildInfo models.AppBuildInfo) *App {
	return &App{
		buildInfo: buildInfo,
		connect:   connectServices,
		logger:    logger.Nop(),
	}
}

// Run executes the command named by os.Args until it finishes or the
// process is interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.command().ExecuteContext(ctx)
}

func (a *App) command() *cobra.Command {
	root := &cobra.Command{
		Use:           "rexora",
		Short:         "Rexora CMS admin client",
		Version:       a.buildInfo.String(),
		Long:          "Manage the portfolio projects, site settings and reviews of a Rexora CMS server.\nWithout a command the interactive admin panel is started.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[annotationOffline] != "" {
				return nil
			}
			return a.setup(cmd.Context())
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.teardown()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTUI(cmd.Context())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.serverURL, "server", "s", "", "API base URL of the CMS server (env ADAPTER_SERVER_URL)")
	pf.StringVarP(&a.flags.configPath, "config", "c", "", "path to a JSON config file (env CONFIG)")
	pf.StringVar(&a.flags.sessionDSN, "session-db", "", "SQLite file holding the saved session (env STORAGE_SESSION_DSN)")
	pf.StringVar(&a.flags.logFile, "log-file", "", "append client logs to this file (env LOG_FILE)")

	root.AddCommand(
		a.loginCommand(),
		a.logoutCommand(),
		a.statusCommand(),
		a.versionCommand(),
		a.statsCommand(),
		a.projectsCommand(),
		a.settingsCommand(),
		a.reviewsCommand(),
		a.tuiCommand(),
	)

	return root
}

func (a *App) setup(ctx context.Context) error {
	overrides := &config.StructuredConfig{
		LogFile:      a.flags.logFile,
		JSONFilePath: a.flags.configPath,
	}
	overrides.Adapter.ServerURL = a.flags.serverURL
	overrides.Storage.Session.DSN = a.flags.sessionDSN

	cfg, err := config.GetClientConfig(overrides)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	a.cfg = cfg
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		return err
	}
	a.logger = logger.NewClientLogger("rexora-client", cfg.LogFile)

	services, closer, err := a.connect(ctx, cfg, a.logger)
	if err != nil {
		a.logger.Err(err).Msg("error creating client services")
		return err
	}
	a.services = services
	a.closer = closer

	return nil
}

func (a *App) teardown() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}

// signIn restores the saved session for commands that need one.
func (a *App) signIn(ctx context.Context) error {
	restored, err := a.services.SessionService.Restore(ctx)
	if err != nil {
		return err
	}
	if !restored {
		return errNotSignedIn
	}
	return nil
}

func (a *App) runTUI(ctx context.Context) error {
	ui, err := tui.New(a.services, a.buildInfo, a.logger)
	if err != nil {
		return fmt.Errorf("error creating ui: %w", err)
	}
	return ui.Run(ctx)
}

func connectServices(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*service.ClientServices, io.Closer, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating server adapter: %w", err)
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating local storage: %w", err)
	}

	return service.NewClientServices(localStorage, serverAdapter, log), localStorage, nil
}
