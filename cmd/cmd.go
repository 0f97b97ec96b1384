package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmorganca/f16vec/envconfig"
	"github.com/jmorganca/f16vec/logutil"
	"github.com/jmorganca/f16vec/vector"
	"github.com/jmorganca/f16vec/version"
)

func GenerateHandler(path string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		nums, err := cmd.Flags().GetInt("nums")
		if err != nil {
			return err
		}

		logger := logutil.NewLogger(cmd.ErrOrStderr(), envconfig.LogLevel)
		logger.Debug("config", "env", envconfig.Values())

		r, err := vector.GenerateFile(path, nums, vector.WithLogger(logger))
		if err != nil {
			return err
		}

		logger.Debug("wrote vectors", "path", path, "lines", r.Len(), "pairs", r.Pairs())

		if !envconfig.Summary {
			return nil
		}

		return showSummary(r, cmd.OutOrStdout())
	}
}

func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

func NewCLI() *cobra.Command {
	return newRootCmd(vector.DefaultFile)
}

func newRootCmd(path string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "f16vec",
		Short: "Half-precision arithmetic test vector generator",
		Long: fmt.Sprintf(`Generate random binary16 ADD, SUB, MUL and DIV test vectors.

Each line of %s holds two operands, the operation and the expected
result as 4-digit hex bit patterns. Division by zero yields 0000.`, path),
		Args:    cobra.NoArgs,
		Version: version.Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
		},
		RunE: GenerateHandler(path),
	}

	rootCmd.Flags().Int("nums", 10, "Minimum number of unique vectors per operation")

	envVars := envconfig.AsMap()
	appendEnvDocs(rootCmd, []envconfig.EnvVar{
		envVars["F16VEC_DEBUG"],
		envVars["F16VEC_SUMMARY"],
	})

	return rootCmd
}
