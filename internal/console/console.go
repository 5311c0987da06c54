// Package console implements the braintacle command-line console: a cobra
// command tree that talks to the server through an [adapter.ServerAdapter]
// and prints lipgloss tables.
package console

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-braintacle/internal/adapter"
	"github.com/MKhiriev/go-braintacle/internal/logger"
	"github.com/MKhiriev/go-braintacle/models"
)

// Console holds what every command needs.
type Console struct {
	server adapter.ServerAdapter
	out    io.Writer
	logger *logger.Logger
}

func New(server adapter.ServerAdapter, out io.Writer, logger *logger.Logger) *Console {
	return &Console{server: server, out: out, logger: logger}
}

// NewRootCommand builds the "braintacle" command tree.
func NewRootCommand(c *Console, info models.AppBuildInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "braintacle",
		Short: "Braintacle console - client configuration management",
		Long: `braintacle manages the configuration of inventoried clients.

Options are resolved through a cascade: a client's own override, the
overrides of the groups it belongs to and the global value. Every command
talks to the braintacle server set by ADAPTER_ADDRESS and authenticates with
the token in ADAPTER_TOKEN (see "braintacle login").`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	rootCmd.SetOut(c.out)

	rootCmd.AddCommand(
		c.newLoginCommand(),
		c.newVersionCommand(info),
		c.newOptionsCommand(),
		c.newGlobalCommand(),
		c.newConfigCommand(),
		c.newSetCommand(),
		c.newEffectiveCommand(),
	)

	return rootCmd
}

func (c *Console) newLoginCommand() *cobra.Command {
	var login, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print an operator token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := c.server.Login(cmd.Context(), models.Operator{Login: login, Password: password})
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, successStyle.Render("logged in as "+login))
			fmt.Fprintln(c.out, helpStyle.Render("export ADAPTER_TOKEN="+token))
			return nil
		},
	}
	cmd.Flags().StringVarP(&login, "user", "u", "admin", "operator login")
	cmd.Flags().StringVarP(&password, "password", "p", "", "operator password")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (c *Console) newVersionCommand(info models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print console and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(c.out, "console: %s (commit: %s, built: %s)\n", info.Version, info.Commit, info.Date)

			serverVersion, err := c.server.Version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "server:  %s\n", serverVersion)
			return nil
		},
	}
}

func (c *Console) newOptionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List every recognized option",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := c.server.Options(cmd.Context())
			if err != nil {
				return err
			}
			renderOptions(c.out, infos)
			return nil
		},
	}
}

func (c *Console) newGlobalCommand() *cobra.Command {
	var unset bool

	cmd := &cobra.Command{
		Use:   "global [option] [value]",
		Short: "Show or change global configuration",
		Long: `Without arguments all global values are listed. With an option name
the value of that option is shown, with a value it is changed. --unset
restores the built-in default.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if len(args) == 2 || (len(args) == 1 && unset) {
				req, err := setValueRequest(args, unset)
				if err != nil {
					return err
				}
				if err = c.server.SetGlobal(ctx, req); err != nil {
					return err
				}
				fmt.Fprintln(c.out, successStyle.Render("global "+req.Option+" updated"))
				return nil
			}

			values, err := c.server.Globals(ctx)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				values = filterValues(values, args[0])
				if len(values) == 0 {
					return fmt.Errorf("unknown option %q", args[0])
				}
			}
			renderGlobals(c.out, values)
			return nil
		},
	}
	cmd.Flags().BoolVar(&unset, "unset", false, "restore the default value")

	return cmd
}

func (c *Console) newConfigCommand() *cobra.Command {
	var group bool

	cmd := &cobra.Command{
		Use:   "config <id> [option]",
		Short: "Show the configuration cascade of a client or group",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var views []models.ClientConfigView
			switch {
			case group && len(args) == 1:
				return fmt.Errorf("--group requires an option name")
			case group:
				view, err := c.server.GroupOption(ctx, id, args[1])
				if err != nil {
					return err
				}
				views = append(views, view)
			case len(args) == 2:
				view, err := c.server.ClientOption(ctx, id, args[1])
				if err != nil {
					return err
				}
				views = append(views, view)
			default:
				if views, err = c.server.ClientConfig(ctx, id); err != nil {
					return err
				}
			}

			title := "client " + args[0]
			if group {
				title = "group " + args[0]
			}
			renderCascade(c.out, title, views)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&group, "group", "g", false, "the id is a group id")

	return cmd
}

func (c *Console) newSetCommand() *cobra.Command {
	var group, unset bool

	cmd := &cobra.Command{
		Use:   "set <id> <option> [value]",
		Short: "Set or remove a client or group override",
		Long: `set writes an override for a client, or for a group with --group.
--unset removes the override so the value is inherited again.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			req, err := setValueRequest(args[1:], unset)
			if err != nil {
				return err
			}

			target := "client " + args[0]
			if group {
				target = "group " + args[0]
				err = c.server.SetGroupOption(ctx, id, req)
			} else {
				err = c.server.SetClientOption(ctx, id, req)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(c.out, successStyle.Render(target+": "+req.Option+" updated"))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&group, "group", "g", false, "the id is a group id")
	cmd.Flags().BoolVar(&unset, "unset", false, "remove the override")

	return cmd
}

func (c *Console) newEffectiveCommand() *cobra.Command {
	var optionNames []string

	cmd := &cobra.Command{
		Use:   "effective <client-id>...",
		Short: "Show effective values for several clients",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.EffectiveReportRequest{Options: optionNames}
			for _, arg := range args {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				req.ClientIDs = append(req.ClientIDs, id)
			}

			rows, err := c.server.EffectiveReport(cmd.Context(), req)
			if err != nil {
				return err
			}
			renderReport(c.out, rows)
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&optionNames, "option", "o", nil, "options to include (default all)")

	return cmd
}

// setValueRequest builds the request body from "option [value]". Values are
// sent as JSON strings; the server converts them to the option's kind.
func setValueRequest(args []string, unset bool) (models.SetValueRequest, error) {
	req := models.SetValueRequest{Option: args[0]}

	switch {
	case unset && len(args) > 1:
		return req, fmt.Errorf("--unset takes no value")
	case unset:
		req.Value = json.RawMessage("null")
	case len(args) < 2:
		return req, fmt.Errorf("missing value for %q", args[0])
	default:
		raw, err := json.Marshal(args[1])
		if err != nil {
			return req, err
		}
		req.Value = raw
	}
	return req, nil
}

func filterValues(values []models.OptionValue, option string) []models.OptionValue {
	for _, v := range values {
		if v.Option == option {
			return []models.OptionValue{v}
		}
	}
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
