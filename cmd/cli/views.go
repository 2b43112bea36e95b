package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var viewsCmd = &cobra.Command{Use: "views", Short: "Read-only pool and account queries", PersistentPreRunE: ensureEngineInit}

var viewBuyQuoteCmd = &cobra.Command{
	Use:   "buy-quote <poolID> <n>",
	Short: "Quote a buy of n items without mutating state",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		poolID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}
		n, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return err
		}
		quote, err := engine.GetBuyQuote(poolID, n)
		if err != nil {
			return err
		}
		enc, _ := json.MarshalIndent(quote, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(enc))
		return nil
	},
}

var viewSellQuoteCmd = &cobra.Command{
	Use:   "sell-quote <poolID> <n>",
	Short: "Quote a sell of n items without mutating state",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		poolID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}
		n, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return err
		}
		quote, err := engine.GetSellQuote(poolID, n)
		if err != nil {
			return err
		}
		enc, _ := json.MarshalIndent(quote, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(enc))
		return nil
	},
}

var viewMetadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "Show engine-wide metadata",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		enc, _ := json.MarshalIndent(engine.GetMetadata(), "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(enc))
		return nil
	},
}

var viewDepositsCmd = &cobra.Command{
	Use:   "deposits <account>",
	Short: "Show an account's staged NFTs and coin balance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		account := mustAddr(args[0])
		info, err := engine.GetDeposits(account)
		if err != nil {
			return err
		}
		enc, _ := json.MarshalIndent(info, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(enc))
		return nil
	},
}

func init() {
	viewsCmd.AddCommand(viewBuyQuoteCmd, viewSellQuoteCmd, viewMetadataCmd, viewDepositsCmd)
}

// ViewsCmd is the exported root command aggregated by RegisterRoutes.
var ViewsCmd = viewsCmd
