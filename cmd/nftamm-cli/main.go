package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nftamm-engine/cmd/cli"
)

func main() {
	rootCmd := &cobra.Command{Use: "nftamm-cli", Short: "NFT/coin bonding-curve pool engine"}

	rootCmd.PersistentFlags().String("governance", "", "governance account address (hex)")
	rootCmd.PersistentFlags().String("fee-receiver", "", "protocol fee receiver address (hex)")
	rootCmd.PersistentFlags().String("caller", "", "default caller address (hex)")
	rootCmd.PersistentFlags().Uint64("byte-cost", 0, "coin cost per byte of account storage growth")

	viper.BindPFlag("governance", rootCmd.PersistentFlags().Lookup("governance"))
	viper.BindPFlag("fee_receiver", rootCmd.PersistentFlags().Lookup("fee-receiver"))
	viper.BindPFlag("caller", rootCmd.PersistentFlags().Lookup("caller"))
	viper.BindPFlag("byte_cost", rootCmd.PersistentFlags().Lookup("byte-cost"))
	viper.SetEnvPrefix("nftamm")
	viper.AutomaticEnv()

	cli.RegisterRoutes(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
