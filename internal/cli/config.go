package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.cfg.Encode(docOut)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the default config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.configPath != "" {
				fmt.Fprintln(docOut, c.configPath)
				return nil
			}
			dir, err := configDir()
			if err != nil {
				return fmt.Errorf("get config dir: %w", err)
			}
			fmt.Fprintln(docOut, filepath.Join(dir, configFileName))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "Summarize the effective style",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := c.cfg.Style
			printKeyValue("font", s.FontFamily)
			printKeyValue("info size", fmt.Sprint(s.InfoSize))
			printKeyValue("stroke", fmt.Sprint(s.StrokeWidth))
			printKeyValue("outline", fmt.Sprint(s.OutlineWidth))
			printKeyValue("cache ttl", c.cfg.Cache.TTL.String())
			printKeyValue("addr", c.cfg.Server.Addr)
			return nil
		},
	})

	return cmd
}
