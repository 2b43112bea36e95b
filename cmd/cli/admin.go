package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{Use: "admin", Short: "Owner and governance operations", PersistentPreRunE: ensureEngineInit}

var adminWithdrawCoinCmd = &cobra.Command{
	Use:   "withdraw-coin <poolID> <caller> <amount> <now>",
	Short: "Withdraw coin from a non-trade pool to its owner",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		poolID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}
		caller := mustAddr(args[1])
		amount, err := strconv.ParseUint(args[2], 10, 64)
		if err != nil {
			return err
		}
		now, err := strconv.ParseUint(args[3], 10, 64)
		if err != nil {
			return err
		}
		withdrawn, err := engine.WithdrawCoin(caller, poolID, amount, now)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\n", withdrawn)
		return nil
	},
}

var adminWithdrawNFTsCmd = &cobra.Command{
	Use:   "withdraw-nfts <poolID> <caller> <now> <ids,comma,separated>",
	Short: "Withdraw NFTs from a non-trade pool to its owner",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		poolID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}
		caller := mustAddr(args[1])
		now, err := strconv.ParseUint(args[2], 10, 64)
		if err != nil {
			return err
		}
		ids := parseHexList(args[3])
		return engine.WithdrawNFTs(caller, poolID, ids, now)
	},
}

var adminWithdrawStagingCmd = &cobra.Command{
	Use:   "withdraw-staging <caller> <asset> <attachedValue> <ids,comma,separated>",
	Short: "Withdraw NFTs from the caller's own staging area",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		caller := mustAddr(args[0])
		attached, err := strconv.ParseUint(args[2], 10, 64)
		if err != nil {
			return err
		}
		ids := parseHexList(args[3])
		return engine.WithdrawNFTsFromStaging(caller, args[1], ids, attached)
	},
}

var adminLPRegisterCmd = &cobra.Command{
	Use:   "lp-register <poolID> <account>",
	Short: "Register an account for lp accounting on a pool",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		poolID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}
		return engine.LPRegister(poolID, mustAddr(args[1]))
	},
}

var adminLPTransferCmd = &cobra.Command{
	Use:   "lp-transfer <poolID> <from> <to> <amount>",
	Short: "Transfer lp shares between two registered accounts",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		poolID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}
		amount, err := strconv.ParseUint(args[3], 10, 64)
		if err != nil {
			return err
		}
		return engine.LPTransfer(poolID, mustAddr(args[1]), mustAddr(args[2]), amount)
	},
}

var adminSetFeeReceiverCmd = &cobra.Command{
	Use:   "set-fee-receiver <caller> <newReceiver>",
	Short: "Reassign the protocol fee receiver (governance only)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return engine.SetFeeReceiver(mustAddr(args[0]), mustAddr(args[1]))
	},
}

var adminChangeSpotPriceCmd = &cobra.Command{
	Use:   "change-spot-price <poolID> <caller> <newSpotPrice>",
	Short: "Update a pool's spot price (owner only)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		poolID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}
		newSpot, err := parseCoinArg(args[2])
		if err != nil {
			return err
		}
		return engine.ChangeSpotPrice(mustAddr(args[1]), poolID, newSpot)
	},
}

var adminChangeDeltaCmd = &cobra.Command{
	Use:   "change-delta <poolID> <caller> <newDelta>",
	Short: "Update a pool's delta (owner only)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		poolID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}
		newDelta, err := parseCoinArg(args[2])
		if err != nil {
			return err
		}
		return engine.ChangeDelta(mustAddr(args[1]), poolID, newDelta)
	},
}

var adminChangeFeeCmd = &cobra.Command{
	Use:   "change-fee <poolID> <caller> <newFee>",
	Short: "Update a non-trade pool's fee (owner only; only zero is accepted)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		poolID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}
		newFee, err := parseCoinArg(args[2])
		if err != nil {
			return err
		}
		return engine.ChangeFee(mustAddr(args[1]), poolID, newFee)
	},
}

var adminChangeAssetRecipientCmd = &cobra.Command{
	Use:   "change-asset-recipient <poolID> <caller> <newRecipient>",
	Short: "Update a pool's asset recipient (owner only)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		poolID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}
		return engine.ChangeAssetRecipient(mustAddr(args[1]), poolID, mustAddr(args[2]))
	},
}

func init() {
	adminCmd.AddCommand(
		adminWithdrawCoinCmd,
		adminWithdrawNFTsCmd,
		adminWithdrawStagingCmd,
		adminLPRegisterCmd,
		adminLPTransferCmd,
		adminSetFeeReceiverCmd,
		adminChangeSpotPriceCmd,
		adminChangeDeltaCmd,
		adminChangeFeeCmd,
		adminChangeAssetRecipientCmd,
	)
}

// AdminCmd is the exported root command aggregated by RegisterRoutes.
var AdminCmd = adminCmd
