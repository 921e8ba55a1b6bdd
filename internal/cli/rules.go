package cli

import (
	"github.com/spf13/cobra"

	"pcrgen/core/rules"
	"pcrgen/internal/config"
	"pcrgen/internal/output"
	"pcrgen/internal/writers"
)

func newRulesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the design rules and their weights",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			p, err := a.params()
			if err != nil {
				return err
			}
			weights, err := p.RuleWeights()
			if err != nil {
				return err
			}
			if _, err := rules.Build(weights, nil); err != nil {
				return err
			}
			return writers.WriteRules(a.format(), a.stdout, output.ToAPIRules(weights))
		},
	}
	config.AddRuleFlags(cmd.Flags())
	return cmd
}
