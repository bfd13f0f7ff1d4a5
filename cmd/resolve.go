package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/muni-cli/internal/standardize"
)

var resolveFull bool

var resolveCmd = &cobra.Command{
	Use:   "resolve <name-or-url>",
	Short: "Resolve a scraped name or website against the entity registry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := initRegistry()
		if err != nil {
			return err
		}

		raw := args[0]
		if resolveFull {
			e, ok := reg.LookupEntity(raw)
			if !ok {
				return notResolved(raw)
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(e)
		}

		canonical, ok := reg.ResolveName(raw)
		if !ok {
			return notResolved(raw)
		}
		_, err = os.Stdout.WriteString(canonical + "\n")
		return err
	},
}

func notResolved(raw string) error {
	if hint := standardize.UnresolvedHint(raw); hint != "" {
		return eris.Errorf("no match for %q (domain suggests %q)", raw, hint)
	}
	return eris.Errorf("no match for %q", raw)
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveFull, "full", false, "print the full entity record")
	rootCmd.AddCommand(resolveCmd)
}
