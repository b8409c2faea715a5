package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/socketgraph/pkg/errors"
	"github.com/matzehuels/socketgraph/pkg/theme"
)

// themeCommand creates the theme management command.
func (c *CLI) themeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage the drawing theme",
	}

	cmd.AddCommand(c.themeInitCommand())
	cmd.AddCommand(c.themeShowCommand())

	return cmd
}

// themeInitCommand creates the "theme init" subcommand.
func (c *CLI) themeInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default theme to a TOML file",
		Long: `Write the default theme to a TOML file for editing.

Without a path the file is written to the user config directory, where every
command picks it up when --theme is not given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := themePath(args)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.New(errors.ErrCodeInvalidPath, "%s already exists (use --force to overwrite)", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
			}
			if err := theme.Save(path, theme.Default()); err != nil {
				return err
			}
			printSuccess("Wrote default theme")
			printFile(path)
			if len(args) == 0 {
				printNextStep("Preview it", appName+" render")
			} else {
				printNextStep("Preview it", appName+" render --theme "+path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

// themeShowCommand creates the "theme show" subcommand.
func (c *CLI) themeShowCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			th, source, err := theme.Resolve(path)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), StyleDim.Render("source: "+source))
			fmt.Fprintln(cmd.OutOrStdout(), themeTable(th).Render())
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "theme", "", "theme file to show instead of the configured one")
	return cmd
}

// themePath returns the explicit path argument or the configured location.
func themePath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	dir, err := theme.ConfigDir()
	if err != nil {
		return "", fmt.Errorf("get config dir: %w", err)
	}
	return filepath.Join(dir, theme.FileName), nil
}

// themeTable lists every theme value.
func themeTable(th theme.Theme) *table.Table {
	num := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	rows := [][]string{
		{"node.width", num(th.NodeSize.X)},
		{"node.height", num(th.NodeSize.Y)},
		{"node.rounding", num(th.NodeRounding)},
		{"node.fill", theme.Hex(th.NodeFill)},
		{"node.outline", theme.Hex(th.NodeOutline)},
		{"socket.radius", num(th.SocketRadius)},
		{"socket.spacing", num(th.SocketSpacing)},
		{"socket.fill", theme.Hex(th.SocketFill)},
		{"socket.outline", theme.Hex(th.SocketOutline)},
		{"node.outline_width", num(th.OutlineWidth)},
		{"curve.width", num(th.CurveWidth)},
		{"curve.control_offset", num(th.CurveControlOffset)},
		{"curve.color", theme.Hex(th.CurveColor)},
	}
	keyStyle := lipgloss.NewStyle().Foreground(colorGray)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Key", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return keyStyle.Bold(true)
			case col == 0:
				return keyStyle
			default:
				return StyleValue
			}
		})
}
