// Command underwrite runs the underwriting engine against a deal file.
//
//	underwrite run -f deal.yaml
//	underwrite qualify -f deal.yaml
//	underwrite defaults --type "Fix and Flip" > flip.yaml
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kvm55/Covey/internal/domain/model"
	"github.com/kvm55/Covey/internal/domain/service"
	"github.com/kvm55/Covey/internal/domain/valueobject"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "underwrite",
		Short:        "Underwrite single-asset real estate deals",
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(), newQualifyCmd(), newDefaultsCmd())
	return root
}

type dealFlags struct {
	file           string
	investmentType string
}

func (f *dealFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "deal file (YAML or JSON)")
	cmd.Flags().StringVar(&f.investmentType, "type", "", `investment type, overrides the file ("Long Term Rental", "Fix and Flip", "Short Term Rental")`)
	_ = cmd.MarkFlagRequired("file")
}

func newRunCmd() *cobra.Command {
	var (
		flags  dealFlags
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the underwriting engine and print the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := loadDeal(flags.file, flags.investmentType)
			if err != nil {
				return err
			}
			results := service.RunUnderwriting(in)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			return printResults(cmd.OutOrStdout(), in, results)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw results as JSON")
	return cmd
}

func newQualifyCmd() *cobra.Command {
	var flags dealFlags
	cmd := &cobra.Command{
		Use:   "qualify",
		Short: "Check the deal against the Covey debt fund and compare terms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := loadDeal(flags.file, flags.investmentType)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			current := service.RunUnderwriting(in)
			q := service.QualifyForCoveyDebt(in, current.NOI)
			if err := printQualification(out, q); err != nil {
				return err
			}
			if !q.Eligible {
				return nil
			}

			covey := service.RunUnderwriting(service.ApplyCoveyDebtTerms(in, q))
			fmt.Fprintln(out)
			return printComparison(out, current, covey)
		},
	}
	flags.register(cmd)
	return cmd
}

func newDefaultsCmd() *cobra.Command {
	var investmentType string
	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print the starting assumptions for a deal type as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := valueobject.NewInvestmentType(investmentType)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(model.DefaultInputs(t)); err != nil {
				return fmt.Errorf("encode defaults: %w", err)
			}
			return enc.Close()
		},
	}
	cmd.Flags().StringVar(&investmentType, "type", valueobject.InvestmentTypeLongTermRental.String(), "investment type")
	return cmd
}
