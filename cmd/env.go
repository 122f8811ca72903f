package cmd

import (
	"os"
	"strings"

	"github.com/chapsplit-cli/chapsplit/color"
	"github.com/chapsplit-cli/chapsplit/config"
	"github.com/chapsplit-cli/chapsplit/constant"
	"github.com/chapsplit-cli/chapsplit/style"
	"github.com/chapsplit-cli/chapsplit/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Show only variables that are currently set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Show only variables that are currently unset")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envCmd lists every supported environment variable with its current value.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the supported environment variables",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		envs := append([]string{}, config.EnvExposed...)
		envs = append(envs, where.EnvConfigPath)
		slices.Sort(envs)

		for _, env := range envs {
			if env != where.EnvConfigPath {
				env = strings.ToUpper(constant.Chapsplit + "_" + config.EnvKeyReplacer.Replace(env))
			}

			value := os.Getenv(env)
			present := value != ""

			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env))
			cmd.Print("=")

			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
