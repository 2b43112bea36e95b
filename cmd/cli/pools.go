package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/holiman/uint256"
	"github.com/spf13/cobra"

	core "nftamm-engine/core"
)

type poolsController struct{}

func (poolsController) Create(owner core.Address, curveType core.BondingCurve, poolType core.PoolType, nftAsset string, spot, delta, fee *uint256.Int, assetRecipient *core.Address, ids []string, released uint64, depositCoin uint64) (uint64, error) {
	curve, err := core.NewCurve(curveType)
	if err != nil {
		return 0, err
	}
	return engine.CreatePair(owner, curve, poolType, nftAsset, spot, delta, fee, assetRecipient, ids, released, depositCoin)
}

func (poolsController) Add(poolID uint64, caller core.Address, ids []string, coinAmount uint64) (uint64, error) {
	return engine.AddLiquidity(caller, poolID, ids, coinAmount)
}

func (poolsController) Remove(poolID uint64, caller core.Address, lp uint64, attachedValue uint64) (core.BurnLPResult, error) {
	return engine.RemoveLiquidity(caller, poolID, lp, attachedValue)
}

func (poolsController) Info(poolID uint64) (core.PairInfo, error) {
	return engine.GetPoolInfo(poolID)
}

func (poolsController) List(from, limit uint64) ([]core.PairInfo, error) {
	return engine.GetPools(from, limit)
}

var poolsCmd = &cobra.Command{Use: "pools", Short: "Manage NFT/coin bonding-curve pools", PersistentPreRunE: ensureEngineInit}

var poolCreateCmd = &cobra.Command{
	Use:   "create <owner> <curve:linear|exponential> <type:token|nft|trade> <nftAsset> <spot> <delta> <fee> [assetRecipient] [ids,comma,separated]",
	Short: "Create a new pool",
	Args:  cobra.RangeArgs(7, 9),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner := mustAddr(args[0])
		curveType, err := parseCurveType(args[1])
		if err != nil {
			return err
		}
		poolType, err := parsePoolType(args[2])
		if err != nil {
			return err
		}
		spot, err := parseCoinArg(args[4])
		if err != nil {
			return err
		}
		delta, err := parseCoinArg(args[5])
		if err != nil {
			return err
		}
		fee, err := parseCoinArg(args[6])
		if err != nil {
			return err
		}
		var recipient *core.Address
		if len(args) > 7 && args[7] != "-" {
			a := mustAddr(args[7])
			recipient = &a
		}
		var ids []string
		if len(args) > 8 {
			ids = parseHexList(args[8])
		}

		ctl := poolsController{}
		poolID, err := ctl.Create(owner, curveType, poolType, args[3], spot, delta, fee, recipient, ids, 0, 0)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\n", poolID)
		return nil
	},
}

var poolAddCmd = &cobra.Command{
	Use:   "add <poolID> <caller> <coinAmount> [ids,comma,separated]",
	Short: "Add liquidity to a pool",
	Args:  cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		poolID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}
		caller := mustAddr(args[1])
		coinAmount, err := strconv.ParseUint(args[2], 10, 64)
		if err != nil {
			return err
		}
		var ids []string
		if len(args) > 3 {
			ids = parseHexList(args[3])
		}
		minted, err := poolsController{}.Add(poolID, caller, ids, coinAmount)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\n", minted)
		return nil
	},
}

var poolRemoveCmd = &cobra.Command{
	Use:   "remove <poolID> <caller> <lpShares> <attachedValue>",
	Short: "Burn lp shares and redeem the underlying coin/NFTs; attachedValue must be exactly 1",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		poolID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}
		caller := mustAddr(args[1])
		lp, err := strconv.ParseUint(args[2], 10, 64)
		if err != nil {
			return err
		}
		attachedValue, err := strconv.ParseUint(args[3], 10, 64)
		if err != nil {
			return err
		}
		result, err := poolsController{}.Remove(poolID, caller, lp, attachedValue)
		if err != nil {
			return err
		}
		enc, _ := json.MarshalIndent(result, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(enc))
		return nil
	},
}

var poolInfoCmd = &cobra.Command{
	Use:   "info <poolID>",
	Short: "Show pool state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		poolID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}
		info, err := poolsController{}.Info(poolID)
		if err != nil {
			return err
		}
		enc, _ := json.MarshalIndent(info, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(enc))
		return nil
	},
}

var poolListCmd = &cobra.Command{
	Use:   "list [from] [limit]",
	Short: "List pools, paginated",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, limit := uint64(0), uint64(50)
		if len(args) > 0 {
			v, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}
			from = v
		}
		if len(args) > 1 {
			v, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return err
			}
			limit = v
		}
		pools, err := poolsController{}.List(from, limit)
		if err != nil {
			return err
		}
		enc, _ := json.MarshalIndent(pools, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(enc))
		return nil
	},
}

func init() {
	poolsCmd.AddCommand(poolCreateCmd, poolAddCmd, poolRemoveCmd, poolInfoCmd, poolListCmd)
}

// PoolsCmd is the exported root command aggregated by RegisterRoutes.
var PoolsCmd = poolsCmd

func parseCurveType(s string) (core.BondingCurve, error) {
	switch s {
	case "linear":
		return core.LinearCurve, nil
	case "exponential":
		return core.ExponentialCurve, nil
	default:
		return 0, core.ErrUnknownCurve
	}
}

func parsePoolType(s string) (core.PoolType, error) {
	switch s {
	case "token":
		return core.TokenPool, nil
	case "nft":
		return core.NFTPool, nil
	case "trade":
		return core.TradePool, nil
	default:
		return 0, core.ErrUnknownPoolType
	}
}
