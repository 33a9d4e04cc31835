package main

import (
	"encoding/json"
	"fmt"

	"github.com/sortiz4/muon/internal/config"
	"github.com/sortiz4/muon/internal/errors"
	"github.com/spf13/cobra"
)

func configCmd(flags *globalFlags) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print muon.json with every default filled in.

With --save the effective configuration is written back to the file it was
loaded from, or to ./muon.json when none was found.

Examples:
  muon config
  muon config --save`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			if save {
				if cfg.Path() == "" {
					err = cfg.SaveTo(config.ConfigFileName)
				} else {
					err = cfg.Save()
				}
				if err != nil {
					return err
				}
				success(cmd.OutOrStdout(), "Saved %s", cfg.Path())
				return nil
			}

			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return errors.New("E120").Wrap(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Write the effective configuration back to muon.json")

	return cmd
}
