package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kipkoech/shamba/internal/cli"
	"github.com/kipkoech/shamba/internal/common"
	"github.com/kipkoech/shamba/internal/engine"
	"github.com/kipkoech/shamba/internal/isda"
	"github.com/kipkoech/shamba/internal/model"
	"github.com/kipkoech/shamba/internal/recommend"
)

// Nairobi, the default query location.
const (
	defaultLatitude  = -1.2864
	defaultLongitude = 36.8172
)

func recommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Fetch soil data for a location and recommend fertilizers",
		Long: `Fetch nitrogen, phosphorus, potassium and pH readings for a coordinate
from the iSDAsoil API (topsoil, 0-20cm), classify them against agronomic
thresholds, and generate a fertilizer recommendation.

Requires iSDAsoil credentials and a generative-AI API key. Coverage is
limited to Africa.`,
		RunE: runRecommend,
	}

	// Flags
	cmd.Flags().Float64("lat", defaultLatitude, "Latitude of the location")
	cmd.Flags().Float64("lon", defaultLongitude, "Longitude of the location")
	cmd.Flags().Duration("timeout", 0, "Per-call network timeout (default 15s soil, 30s generation)")
	cmd.Flags().String("provider", "", "Generative-AI provider (gemini, openai)")
	cmd.Flags().String("model", "", "Generative-AI model override")

	// Bind to viper
	_ = viper.BindPFlag("recommend.lat", cmd.Flags().Lookup("lat"))
	_ = viper.BindPFlag("recommend.lon", cmd.Flags().Lookup("lon"))
	_ = viper.BindPFlag("recommend.timeout", cmd.Flags().Lookup("timeout"))
	_ = viper.BindPFlag("llm.provider", cmd.Flags().Lookup("provider"))
	_ = viper.BindPFlag("llm.model", cmd.Flags().Lookup("model"))

	return cmd
}

// isdaConfigFromViper resolves iSDAsoil credentials: viper first, then the
// conventional environment variables.
func isdaConfigFromViper() (isda.Config, error) {
	username := viper.GetString("isda.username")
	if username == "" {
		username = os.Getenv("ISDA_USERNAME")
	}
	password := viper.GetString("isda.password")
	if password == "" {
		password = os.Getenv("ISDA_PASSWORD")
	}

	if username == "" || password == "" {
		return isda.Config{}, fmt.Errorf("%w: iSDAsoil credentials not found in config or ISDA_USERNAME/ISDA_PASSWORD environment variables", common.ErrMissingConfig)
	}

	return isda.Config{
		Username: username,
		Password: password,
		BaseURL:  viper.GetString("isda.base_url"),
		Timeout:  viper.GetDuration("recommend.timeout"),
	}, nil
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	coord := model.Coordinate{
		Latitude:  viper.GetFloat64("recommend.lat"),
		Longitude: viper.GetFloat64("recommend.lon"),
	}
	if err := coord.Validate(); err != nil {
		return common.NewUserError("invalid coordinate", err)
	}

	// Resolve all configuration before touching the network, so a missing
	// API key or credential fails fast.
	llmClient, err := createLLMClient()
	if err != nil {
		return err
	}

	isdaConfig, err := isdaConfigFromViper()
	if err != nil {
		return err
	}

	soilClient, err := isda.New(isdaConfig)
	if err != nil {
		return err
	}

	recommender := recommend.NewRecommender(llmClient, slog.Default())
	e := engine.New(soilClient, recommender, slog.Default())

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatTitle(fmt.Sprintf("Soil analysis for %s", coord)))

	result, err := e.Run(cmd.Context(), coord)
	if result != nil {
		fmt.Fprintln(out, renderClassification(result))
	}
	if err != nil {
		// A generation failure still reported the classification above;
		// the failure itself is never masked.
		if errors.Is(err, common.ErrGeneration) && result != nil {
			fmt.Fprintln(out, cli.FormatError("recommendation unavailable"))
		}
		return err
	}

	fmt.Fprintln(out, cli.RenderBox("Fertilizer Recommendation", result.Recommendation))

	return nil
}

// renderClassification formats the classified reading as an aligned table.
func renderClassification(result *engine.Result) string {
	labels := map[model.Property]string{
		model.PropertyNitrogen:   "Nitrogen",
		model.PropertyPhosphorus: "Phosphorus",
		model.PropertyPotassium:  "Potassium",
		model.PropertyPH:         "pH",
	}

	var b strings.Builder
	for _, property := range model.Properties {
		value := fmt.Sprintf("%.2f", result.Reading.Value(property))
		if unit := property.Unit(); unit != "" {
			value += " " + unit
		}
		// Pad before styling so ANSI escape codes don't skew the columns.
		fmt.Fprintf(&b, "%s %s %s\n",
			fmt.Sprintf("%-12s", labels[property]),
			cli.SubtleStyle.Render(fmt.Sprintf("%-14s", value)),
			cli.FormatLevel(result.Classification[property]))
	}
	return strings.TrimRight(b.String(), "\n")
}
