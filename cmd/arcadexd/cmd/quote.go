package cmd

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/arcadex-chain/arcadex/x/exchange/keeper"
	"github.com/arcadex-chain/arcadex/x/exchange/types"
)

// QuoteCmd groups offline pool-math quotes.
func QuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Deterministic pool math quotes",
	}

	cmd.AddCommand(quoteSeedCmd(), quoteSwapCmd())

	return cmd
}

func quoteSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed [base-amount] [token-amount]",
		Short: "Quote the share mint for seeding an empty pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			token, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			product, err := keeper.SafeMul(base, token)
			if err != nil {
				return err
			}
			shares, err := keeper.IntegerSqrt(product)
			if err != nil {
				return err
			}
			if !shares.IsPositive() {
				return fmt.Errorf("deposit too small to mint any shares")
			}

			cmd.Printf("shares: %s\n", shares)
			return nil
		},
	}
}

func quoteSwapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [reserve-in] [reserve-out] [amount-in]",
		Short: "Quote a single-hop swap against the given reserves",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			reserveIn, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			reserveOut, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			amountIn, err := parseAmount(args[2])
			if err != nil {
				return err
			}
			feeNum, err := cmd.Flags().GetUint64("fee-numerator")
			if err != nil {
				return err
			}
			feeDenom, err := cmd.Flags().GetUint64("fee-denominator")
			if err != nil {
				return err
			}
			if feeDenom == 0 || feeNum >= feeDenom {
				return fmt.Errorf("fee %d/%d is not a valid fraction below one", feeNum, feeDenom)
			}

			afterFee, err := keeper.SafeMulDiv(amountIn,
				math.NewIntFromUint64(feeDenom-feeNum), math.NewIntFromUint64(feeDenom))
			if err != nil {
				return err
			}
			newIn, err := keeper.SafeAdd(reserveIn, afterFee)
			if err != nil {
				return err
			}
			out, err := keeper.SafeMulDiv(reserveOut, afterFee, newIn)
			if err != nil {
				return err
			}
			if !out.IsPositive() {
				return fmt.Errorf("input too small to buy any output")
			}
			if out.GTE(reserveOut) {
				return fmt.Errorf("quote would drain the output reserve")
			}

			cmd.Printf("amount out: %s\n", out)
			return nil
		},
	}

	cmd.Flags().Uint64("fee-numerator", types.DefaultFeeNumerator, "swap fee numerator")
	cmd.Flags().Uint64("fee-denominator", types.DefaultFeeDenominator, "swap fee denominator")

	return cmd
}

func parseAmount(s string) (math.Int, error) {
	amount, ok := math.NewIntFromString(s)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid integer amount %q", s)
	}
	if !amount.IsPositive() {
		return math.Int{}, fmt.Errorf("amount must be positive, got %s", amount)
	}
	return amount, nil
}
