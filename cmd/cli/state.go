package cli

import (
	"fmt"
	"strings"

	"github.com/holiman/uint256"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	core "nftamm-engine/core"
)

// engine and host are the CLI process's single live instances of the
// aggregate and its synchronous host binding. core.Engine itself carries no
// package-level singleton (per its own design) — this package var is the
// one place a single CLI process needs one live instance to operate a
// session against, constructed explicitly by ensureEngineInit.
var (
	engine *core.Engine
	host   *core.MemoryHost
	log    = logrus.New()
)

// ensureEngineInit is shared PersistentPreRunE wiring for every command
// group: it lazily constructs the engine from viper-bound configuration the
// first time any command runs, mirroring liquidity_pools.go's
// lpEnsureInit/AMM_POOLS_FIXTURE pattern.
func ensureEngineInit(cmd *cobra.Command, _ []string) error {
	if engine != nil {
		return nil
	}
	governance, err := mustAddrStrict(viper.GetString("governance"))
	if err != nil {
		return fmt.Errorf("governance address: %w", err)
	}
	feeReceiver, err := mustAddrStrict(viper.GetString("fee_receiver"))
	if err != nil {
		return fmt.Errorf("fee_receiver address: %w", err)
	}
	byteCost := viper.GetUint64("byte_cost")
	caller, err := mustAddrStrict(viper.GetString("caller"))
	if err != nil {
		caller = governance
	}
	host = core.NewMemoryHost(caller, 0, 0, byteCost)

	engine = core.New(governance, feeReceiver, nil, host.ByteCost())
	engine.Deposits.Register(caller)

	log.WithFields(logrus.Fields{
		"governance":   governance.String(),
		"fee_receiver": feeReceiver.String(),
	}).Info("engine initialised")
	return nil
}

func mustAddr(hexStr string) core.Address {
	a, err := mustAddrStrict(hexStr)
	if err != nil {
		return core.Address{}
	}
	return a
}

func mustAddrStrict(hexStr string) (core.Address, error) {
	hexStr = strings.TrimSpace(hexStr)
	if hexStr == "" {
		return core.Address{}, fmt.Errorf("empty address")
	}
	return core.AddressFromHex(hexStr)
}

func parseCoinArg(s string) (*uint256.Int, error) {
	return uint256.FromDecimal(s)
}

func parseHexList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
