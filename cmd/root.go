package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Rana718/vitalgen/internal/config"
)

var (
	cfgFile string
	seed    int64
	Version = "1.0.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔════════════════════════════════════════════════╗",
		"║   __     ___ _        _  ____                  ║",
		"║   \\ \\   / (_) |_ __ _| |/ ___| ___ _ __        ║",
		"║    \\ \\ / /| | __/ _` | | |  _ / _ \\ '_ \\       ║",
		"║     \\ V / | | || (_| | | |_| |  __/ | | |      ║",
		"║      \\_/  |_|\\__\\__,_|_|\\____|\\___|_| |_|      ║",
		"║                                                ║",
		"║     synthetic parish registers, on demand      ║",
		"╚════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("                ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "vitalgen",
	Short: "Generate synthetic genealogical vital records",
	Long: `
vitalgen builds a synthetic population of parish register records
(persons, marriages with witnesses, deaths) and emits them as:

- a relational INSERT script (PostgreSQL, MySQL or SQLite)
- denormalized marriage and death documents (JSON or MongoDB)
- an optional CSV bundle`,

	SilenceUsage: true,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("vitalgen version %s\n", Version)
			os.Exit(0)
		}

		showBanner()
		fmt.Println()
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+config.FileName+")")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName(strings.TrimSuffix(config.FileName, ".json"))
	}

	viper.SetEnvPrefix("VITALGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.ReadInConfig()
}
