package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-lms-offline/internal/app"
	"github.com/MKhiriev/go-lms-offline/internal/client"
	"github.com/MKhiriev/go-lms-offline/internal/config"
	"github.com/MKhiriev/go-lms-offline/internal/logger"
	"github.com/MKhiriev/go-lms-offline/models"
)

const (
	envLogin    = "LMS_LOGIN"
	envPassword = "LMS_PASSWORD"
)

// state is what is shared by the subcommands of one invocation.
type state struct {
	flags *config.StructuredConfig
	creds models.Credentials

	app    *client.App
	logger *logger.Logger
}

func newRootCmd() *cobra.Command {
	rt := &state{}

	rootCmd := &cobra.Command{
		Use:   "lms-client",
		Short: "Offline-first LMS learning module client",
		Long: `Offline-first LMS learning module client.

Courses and learning modules are read from the LMS server when the device
is online and from the local store otherwise. Downloaded modules stay
readable without a connection.

Credentials are taken from --login/--password or from the LMS_LOGIN and
LMS_PASSWORD environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations["standalone"] == "true" {
				return nil
			}
			return rt.open(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return rt.close()
		},
	}

	rt.flags = config.BindFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().StringVarP(&rt.creds.Login, "login", "u", os.Getenv(envLogin), "LMS login")
	rootCmd.PersistentFlags().StringVarP(&rt.creds.Password, "password", "p", os.Getenv(envPassword), "LMS password")

	rootCmd.AddCommand(
		newLoginCmd(rt),
		newProfileCmd(rt),
		newCoursesCmd(rt),
		newModulesCmd(rt),
		newDownloadCmd(rt),
		newDesktopCmd(rt),
		newCleanCacheCmd(rt),
		newVersionCmd(),
	)

	return rootCmd
}

func (rt *state) open(cmd *cobra.Command) error {
	cfg, err := config.GetClientConfig(rt.flags)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "invalid configuration:", err)
		return err
	}

	rt.logger = logger.NewClientLogger("lms-client", cfg.App.LogFile)
	ctx := rt.logger.WithContext(cmd.Context())

	rt.app, err = client.NewApp(ctx, cfg, rt.logger)
	if err != nil {
		rt.logger.Err(err).Msg("cannot start client")
		return rt.fail(cmd, err)
	}

	rt.app.RunStartupWorkers(ctx)
	cmd.SetContext(ctx)
	return nil
}

func (rt *state) close() error {
	if rt.app == nil {
		return nil
	}
	return rt.app.Close()
}

// signIn logs the user in with the connection matching the current network
// state.
func (rt *state) signIn(cmd *cobra.Command) (models.User, error) {
	user, err := rt.app.Manager.Login(cmd.Context(), rt.creds)
	if err != nil {
		return models.User{}, rt.fail(cmd, err)
	}
	return user, nil
}

// fail reports err to the user with the message of its kind and returns it
// for the exit status.
func (rt *state) fail(cmd *cobra.Command, err error) error {
	if rt.logger != nil {
		rt.logger.Err(err).Str("command", cmd.Name()).Msg("command failed")
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "error:", app.UserMessage(err))
	return err
}
