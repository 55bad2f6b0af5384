package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/navagraha/jyotish/internal/birthfile"
)

var initCmd = &cobra.Command{
	Use:   "init [birth-file]",
	Short: "Write a birth file template",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := birthfile.DefaultPath
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}

		f := &birthfile.File{
			Date:      "1991-06-18",
			Time:      "07:10",
			Timezone:  "Asia/Kolkata",
			Latitude:  10.8,
			Longitude: 76.97,
		}
		if err := birthfile.Save(path, f); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s; edit it, then run: jyotish chart --file %s\n", path, path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
