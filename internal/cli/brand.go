package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ppiankov/domainhunter/internal/brand"
	"github.com/ppiankov/domainhunter/internal/util"
)

// brandCmd represents the brand command
var brandCmd = &cobra.Command{
	Use:   "brand <name...>",
	Short: "Score how brandable names are",
	Long: `Brand scores names on length, pronounceability, character mix and
memorability. Full domains are reduced to their registrable label first,
so "techpro.io" and "techpro" score the same.

Example:
  domainhunter brand techpro my-site globalwebexpress`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tLABEL\tSCORE")
		for _, name := range args {
			label := util.DomainLabel(name)
			fmt.Fprintf(w, "%s\t%s\t%d\n", name, label, brand.Score(label))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(brandCmd)
}
