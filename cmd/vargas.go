package cmd

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/navagraha/jyotish/internal/chart"
	"github.com/navagraha/jyotish/internal/report"
)

var vargasCmd = &cobra.Command{
	Use:   "vargas",
	Short: "Show divisional (varga) charts",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, _ := cmd.Flags().GetString("chart")
		if key != "" {
			// Fail on an unknown key before doing any work.
			if _, err := chart.SchemeByKey(strings.ToUpper(key)); err != nil {
				return err
			}
		}

		k, cfg, err := computeFromFlags(cmd)
		if err != nil {
			return err
		}

		if cfg.JSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if key == "" {
				return enc.Encode(k.Charts)
			}
			for _, c := range k.Charts {
				if strings.EqualFold(c.Key, key) {
					return enc.Encode(c)
				}
			}
			return nil
		}

		report.New(cmd.OutOrStdout()).Varga(k, key)
		return nil
	},
}

func init() {
	addBirthFlags(vargasCmd)
	vargasCmd.Flags().String("chart", "", "show a single chart by key, e.g. D9")
	rootCmd.AddCommand(vargasCmd)
}
