package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	core "nftamm-engine/core"
)

// parseActions decodes a compact action-list flag of the form
// "poolID:dir:minOutOrNumOut:ids" (';'-separated hops), matching the
// router's Action shape (§4.4). dir is "buy" (CoinToNFT) or "sell"
// (NFTToCoin).
func parseActions(spec string) ([]core.Action, error) {
	var actions []core.Action
	for _, hop := range strings.Split(spec, ";") {
		hop = strings.TrimSpace(hop)
		if hop == "" {
			continue
		}
		fields := strings.Split(hop, ":")
		if len(fields) != 4 {
			return nil, fmt.Errorf("malformed action %q: want poolID:dir:arg:ids", hop)
		}
		poolID, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, err
		}
		ids := parseHexList(fields[3])

		switch fields[1] {
		case "sell":
			minOut, err := strconv.ParseUint(fields[2], 10, 64)
			if err != nil {
				return nil, err
			}
			actions = append(actions, core.Action{
				PoolID:        poolID,
				Direction:     core.NFTToCoin,
				MinOut:        minOut,
				InputTokenIDs: ids,
			})
		case "buy":
			n, err := strconv.ParseUint(fields[2], 10, 64)
			if err != nil {
				return nil, err
			}
			actions = append(actions, core.Action{
				PoolID:         poolID,
				Direction:      core.CoinToNFT,
				NumOutNFTs:     n,
				OutputTokenIDs: ids,
			})
		default:
			return nil, fmt.Errorf("unknown action direction %q, want buy or sell", fields[1])
		}
	}
	return actions, nil
}

var swapCmd = &cobra.Command{
	Use:               "swap <caller> <attachedCoin> <actions>",
	Short:             "Run a multi-hop swap route: \"pool:buy:n:\" or \"pool:sell:minOut:id1,id2\" hops separated by ;",
	Args:              cobra.ExactArgs(3),
	PersistentPreRunE: ensureEngineInit,
	RunE: func(cmd *cobra.Command, args []string) error {
		caller := mustAddr(args[0])
		attached, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return err
		}
		actions, err := parseActions(args[2])
		if err != nil {
			return err
		}
		engine.Deposits.Register(caller)
		effects, err := engine.Swap(caller, actions, attached, host)
		if err != nil {
			return err
		}
		enc, _ := json.MarshalIndent(effects, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(enc))
		return nil
	},
}

// SwapCmd is the exported root command aggregated by RegisterRoutes.
var SwapCmd = swapCmd
