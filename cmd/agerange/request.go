package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"agerange/internal/agerange/models"
	"agerange/internal/agerange/service"
	"agerange/internal/agerange/tracer"
	"agerange/internal/platform/config"
	"agerange/internal/platform/logger"
	dErrors "agerange/pkg/domain-errors"
)

// cliAnchor stands in for the window a prompt would be attached to.
type cliAnchor struct{}

type requestOutput struct {
	Outcome  string          `json:"outcome"`
	Gates    []int           `json:"gates"`
	AgeRange *ageRangeOutput `json:"age_range,omitempty"`
}

type ageRangeOutput struct {
	LowerBound       *int               `json:"lower_bound"`
	UpperBound       *int               `json:"upper_bound"`
	Declaration      models.Declaration `json:"declaration"`
	ParentalControls []string           `json:"parental_controls"`
	MeetsGates       map[string]bool    `json:"meets_gates"`
}

func newRequestCmd() *cobra.Command {
	var (
		flagGates    string
		flagScenario string
		flagProfile  string
		flagProvider string
		flagTimeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "request",
		Short: "request an age range and print the response as JSON",
		Long: `Sends one age range request through the service and prints the response.
A failed request prints its error kind and exits non-zero.

Examples:
  agerange request --gates 13,15,18
  agerange request --provider mock --scenario sharing_teen
  agerange request --profile testdata/child.yaml --timeout 30s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gates, err := parseGates(flagGates)
			if err != nil {
				return err
			}

			cfg := config.FromEnv()
			if flagProvider != "" {
				cfg.Provider = config.ProviderMode(flagProvider)
			}
			if flagScenario != "" {
				cfg.MockScenario = flagScenario
			}
			if flagProfile != "" {
				cfg.MockProfile = flagProfile
			}

			provider, err := service.SelectFromConfig(cfg)
			if err != nil {
				return err
			}
			svc := service.New(
				service.WithProvider(provider),
				service.WithLogger(logger.New(cfg.LogLevel, cfg.LogFormat)),
				service.WithMetrics(cliMetrics()),
				service.WithTracer(tracer.NewOTel()),
			)

			ctx := cmd.Context()
			if flagTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, flagTimeout)
				defer cancel()
			}

			resp, err := svc.RequestAgeRange(ctx, gates, cliAnchor{})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(renderResponse(gates, resp))
		},
	}

	cmd.Flags().StringVar(&flagGates, "gates", "13", "comma-separated age gates, one to three values")
	cmd.Flags().StringVar(&flagScenario, "scenario", "", "mock scenario (env: AGERANGE_MOCK_SCENARIO)")
	cmd.Flags().StringVar(&flagProfile, "profile", "", "mock profile YAML file (env: AGERANGE_MOCK_PROFILE)")
	cmd.Flags().StringVar(&flagProvider, "provider", "", "auto, mock or platform (env: AGERANGE_PROVIDER)")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "give up on the prompt after this long; 0 waits indefinitely")
	return cmd
}

// parseGates turns "13,15,18" into age gates. Ordering is not checked.
func parseGates(raw string) (models.AgeGates, error) {
	parts := strings.Split(raw, ",")
	if len(parts) > 3 {
		return models.AgeGates{}, dErrors.New(dErrors.CodeInvalidInput, "at most three age gates are supported")
	}

	values := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return models.AgeGates{}, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("age gate %q is not a number", p))
		}
		values = append(values, v)
	}

	gates := models.AgeGates{Threshold1: values[0]}
	if len(values) > 1 {
		gates.Threshold2 = models.Gate(values[1])
	}
	if len(values) > 2 {
		gates.Threshold3 = models.Gate(values[2])
	}
	return gates, nil
}

func renderResponse(gates models.AgeGates, resp models.Response) requestOutput {
	out := requestOutput{
		Outcome: string(resp.Kind()),
		Gates:   gates.Values(),
	}
	r, ok := resp.AgeRange()
	if !ok {
		return out
	}
	out.AgeRange = &ageRangeOutput{
		LowerBound:       r.LowerBound,
		UpperBound:       r.UpperBound,
		Declaration:      r.Declaration,
		ParentalControls: r.ActiveParentalControls.Names(),
		MeetsGates:       make(map[string]bool, len(out.Gates)),
	}
	for _, g := range out.Gates {
		out.AgeRange.MeetsGates[strconv.Itoa(g)] = r.MeetsGate(g)
	}
	return out
}
