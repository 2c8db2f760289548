package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/olusolaa/metadata-drift-detector/internal/app"
	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	apperrors "github.com/olusolaa/metadata-drift-detector/internal/errors"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "metadata-drift",
	Short: "Compares the metadata of two GRC platform environments.",
	Long: `metadata-drift compares two snapshots of a GRC platform environment's
metadata (modules, fields, values lists, layouts, reports, access control and
integrations) and reports entities present on one side only and attributes
whose values differ.

Snapshots are JSON or YAML exports, optionally gzip compressed. Use
"demo:<environment>" in place of a path to try the tool on built-in data.`,
	Example: `  metadata-drift --source exports/dev.json.gz --target exports/prod.yaml
  metadata-drift --source demo:Dev --target demo:Prod --categories Field,Module
  metadata-drift -c .metadata-drift.yaml --ignore "Field=HelpText,Alias;Module=Alias" --output json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initializeConfig(); err != nil {
			printError("Configuration load failed", err)
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.BuildApplicationFromViper(cmd.Context(), viper.GetViper())
		if err != nil {
			printError("Application initialization failed", err)
			return err
		}
		if err := application.Run(cmd.Context()); err != nil {
			printError("Comparison failed", err)
			return err
		}
		return nil
	},
}

func Execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !isAppError(err) {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		}
		return 1
	}
	return 0
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "Configuration file path (default is ./.metadata-drift.yaml or $HOME/.metadata-drift.yaml)")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("log-format", "text", "Log format (text, json)")
	flags.String("source", "", "Source snapshot file, or demo:<environment>")
	flags.String("target", "", "Target snapshot file, or demo:<environment>")
	flags.String("categories", "", "Comma separated categories to compare (default all: "+categoryNames()+")")
	flags.Int("max-depth", domain.DefaultMaxDepth, "Maximum depth when walking nested values list values")
	flags.String("ignore", "", "Attributes to ignore per category (e.g., 'Field=HelpText,Alias;Module=Alias')")
	flags.StringP("output", "o", "text", "Report format (text, json)")
	flags.Bool("show-matches", false, "Include matching entities in the report")

	bindings := map[string]string{
		"settings.log_level":    "log-level",
		"settings.log_format":   "log-format",
		"settings.reporter":     "output",
		"settings.show_matches": "show-matches",
		"comparison.categories": "categories",
		"comparison.max_depth":  "max-depth",
		app.KeySourceOverride:   "source",
		app.KeyTargetOverride:   "target",
		app.KeyIgnoreOverride:   "ignore",
	}
	for key, flag := range bindings {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(flag)))
	}

	viper.SetEnvPrefix("MDRIFT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

func initializeConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".metadata-drift")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return apperrors.WrapUserFacing(err, apperrors.CodeConfigReadError, "failed to read config file",
			"Check that the configuration file exists and is valid YAML.")
	}
	return nil
}

func printError(stage string, err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %s: %v\n", stage, err)
	if userMsg, suggestion, ok := apperrors.GetUserFacingMessage(err); ok {
		fmt.Fprintf(os.Stderr, "Error Details: %s\n", userMsg)
		if suggestion != "" {
			fmt.Fprintf(os.Stderr, "Suggestion: %s\n", suggestion)
		}
	}
}

func isAppError(err error) bool {
	return apperrors.GetCode(err) != apperrors.CodeUnknown
}

func categoryNames() string {
	names := make([]string, 0, len(domain.SelectableCategories()))
	for _, c := range domain.SelectableCategories() {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}
