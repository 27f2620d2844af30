package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ryo246912/gh-deploy-checklist/internal/config"
	"github.com/ryo246912/gh-deploy-checklist/internal/logging"
	"github.com/ryo246912/gh-deploy-checklist/internal/version"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "gh-deploy-checklist",
	Short: "Manage the open deploy checklist issue of a repository",
	Long: `gh-deploy-checklist keeps the deploy checklist issue of a GitHub repository
up to date: it creates the issue for a release tag, lists the pull requests
and deploy blockers it tracks, and checks them off as they are verified.

Example:
  gh deploy-checklist create 1.0.2-3 --pr https://github.com/org/app/pull/12
  gh deploy-checklist verify https://github.com/org/app/pull/12`,
	SilenceUsage: true,
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		logging.Default(false).Errorf("%v", err)
		return 1
	}
	return 0
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Version = version.BuildVersion
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .deploy-checklist.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable verbose output")
	rootCmd.PersistentFlags().StringP("repo", "R", "", "repository as OWNER/REPO (default is the current repository)")
	rootCmd.PersistentFlags().String("label", "", "label identifying the checklist issue")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("repo", rootCmd.PersistentFlags().Lookup("repo"))
	_ = viper.BindPFlag("label", rootCmd.PersistentFlags().Lookup("label"))

	rootCmd.AddCommand(
		newShowCmd(),
		newCreateCmd(),
		newVerifyCmd(),
		newResolveCmd(),
		newAddCmd(),
		newCompareCmd(),
		newNumberCmd(),
		newVersionCmd(),
	)
}

func initConfig() {
	config.LoadDotEnv()
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error getting working directory:", err)
			os.Exit(1)
		}

		viper.AddConfigPath(cwd)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".deploy-checklist")
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// loadConfig reads and validates the merged configuration
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
