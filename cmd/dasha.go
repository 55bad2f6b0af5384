package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/navagraha/jyotish/internal/report"
)

var dashaCmd = &cobra.Command{
	Use:   "dasha",
	Short: "Show the Vimshottari dasha timeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		k, cfg, err := computeFromFlags(cmd)
		if err != nil {
			return err
		}

		if cfg.JSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Maha  any `json:"maha_dashas"`
				Chain any `json:"dasha_chain"`
			}{k.MahaDashas, k.DashaChain})
		}

		report.New(cmd.OutOrStdout()).Dashas(k)
		return nil
	},
}

func init() {
	addBirthFlags(dashaCmd)
	rootCmd.AddCommand(dashaCmd)
}
