package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"agerange/internal/agerange/models"
	"agerange/internal/agerange/providers/mock"
)

func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "list the mock provider's scenarios and their outcomes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeScenarios(cmd.OutOrStdout())
		},
	}
}

func writeScenarios(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tOUTCOME")
	for _, s := range mock.Scenarios() {
		name := string(s)
		if s == mock.DefaultScenario {
			name += " (default)"
		}
		resp, err := mock.Outcome(s)
		fmt.Fprintf(tw, "%s\t%s\n", name, describeOutcome(resp, err))
	}
	return tw.Flush()
}

func describeOutcome(resp models.Response, err error) string {
	if err != nil {
		return "error: " + err.Error()
	}
	r, ok := resp.AgeRange()
	if !ok {
		return "declined"
	}
	upper := "+"
	if r.UpperBound != nil {
		upper = fmt.Sprintf("-%d", *r.UpperBound)
	}
	return fmt.Sprintf("sharing %d%s, %s, controls: %s",
		r.EffectiveLowerBound(), upper, r.Declaration, r.ActiveParentalControls)
}
