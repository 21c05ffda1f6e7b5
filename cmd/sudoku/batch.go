package main

import (
	"fmt"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/wqueree/sudoku/internal/harness"
)

func batchCmd() *cobra.Command {
	var dataDir string
	var profileMode string
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run the solver over per-tier puzzle datasets",
		Long: `Run every puzzle in {data-dir}/{tier}.json for the tiers
very_easy, easy, medium, and hard, comparing each result against the
expected solution. The run stops after the first tier that is not
fully correct.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch profileMode {
			case "cpu":
				defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
			case "mem":
				defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
			case "":
			default:
				return fmt.Errorf("unknown profile mode %q", profileMode)
			}
			s, err := newSolver()
			if err != nil {
				return err
			}
			runner := harness.New(s, log)
			summaries, err := runner.RunDir(cmd.Context(), dataDir)
			if err != nil {
				return err
			}
			for _, sum := range summaries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d/%d correct\n", sum.Tier, sum.Correct, sum.Total)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dataDir, "data-dir", "d", "./data", "dataset directory")
	cmd.Flags().StringVar(&profileMode, "profile", "", "write a cpu or mem profile")
	return cmd
}
