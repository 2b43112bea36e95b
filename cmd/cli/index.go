package cli

import "github.com/spf13/cobra"

// RegisterRoutes attaches every command group defined in the cli package to
// the provided root command, so they are reachable as `nftamm-cli pools ...`
// and `nftamm-cli swap ...` from the main binary.
func RegisterRoutes(root *cobra.Command) {
	root.AddCommand(
		PoolsCmd,
		SwapCmd,
		ViewsCmd,
		AdminCmd,
	)
}
