// Package cmd implements the command-line interface for chapsplit.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/AlecAivazis/survey/v2"
	"github.com/chapsplit-cli/chapsplit/color"
	"github.com/chapsplit-cli/chapsplit/constant"
	"github.com/chapsplit-cli/chapsplit/icon"
	"github.com/chapsplit-cli/chapsplit/key"
	"github.com/chapsplit-cli/chapsplit/log"
	"github.com/chapsplit-cli/chapsplit/open"
	"github.com/chapsplit-cli/chapsplit/pipeline"
	"github.com/chapsplit-cli/chapsplit/prompt"
	"github.com/chapsplit-cli/chapsplit/style"
	"github.com/chapsplit-cli/chapsplit/util"
	"github.com/chapsplit-cli/chapsplit/version"
	"github.com/chapsplit-cli/chapsplit/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Record completed runs in the local history")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnRun, rootCmd.PersistentFlags().Lookup("write-history")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the chapsplit application.
var rootCmd = &cobra.Command{
	Use:   constant.Chapsplit,
	Short: "Download a video and split it into per-chapter files",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Download a video and split it into per-chapter files"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		CheckDependencies()

		session, err := prompt.Run()
		handleErr(err)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		report, err := pipeline.Run(ctx, session)
		handleErr(err)

		fmt.Println(report.Summary())

		if report.Failed > 0 {
			os.Exit(1)
		}

		offerToOpen(session.Dir)
	},
}

// offerToOpen asks whether to reveal the destination folder. A declined or
// failed prompt is not an error.
func offerToOpen(dir string) {
	var confirmed bool
	err := survey.AskOne(&survey.Confirm{
		Message: "Open the destination folder?",
		Default: false,
	}, &confirmed)
	if err != nil || !confirmed {
		return
	}

	if err := open.Start(dir); err != nil {
		log.Errorf("open %q: %v", dir, err)
	}
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
