package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/chapsplit-cli/chapsplit/color"
	"github.com/chapsplit-cli/chapsplit/config"
	"github.com/chapsplit-cli/chapsplit/constant"
	"github.com/chapsplit-cli/chapsplit/filesystem"
	"github.com/chapsplit-cli/chapsplit/icon"
	"github.com/chapsplit-cli/chapsplit/style"
	"github.com/chapsplit-cli/chapsplit/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// errUnknownKey suggests the closest registered key for a typo.
func errUnknownKey(key string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a string, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})

	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(key),
		style.Fg(color.Yellow)(closest),
	)
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// configCmd is the parent for the configuration subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration settings and defaults",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Limit output to the given keys")
	configInfoCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configInfoCmd.SetOut(os.Stdout)
}

// configInfoCmd prints descriptions, defaults and current values of fields.
var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show descriptions and current values of configuration fields",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			keys   = lo.Must(cmd.Flags().GetStringSlice("key"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			fields = lo.Values(config.Default)
		)

		if len(keys) > 0 {
			fields = make([]config.Field, 0, len(keys))

			for _, key := range keys {
				if _, ok := config.Default[key]; !ok {
					handleErr(errUnknownKey(key))
				}

				fields = append(fields, config.Default[key])
			}
		}

		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})

		if asJson {
			lo.Must0(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		for i, field := range fields {
			fmt.Print(field.Pretty())

			if i < len(fields)-1 {
				fmt.Println()
				fmt.Println()
			}
		}
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

// configSetCmd assigns a new value to a configuration key and persists it.
var configSetCmd = &cobra.Command{
	Use:               "set key value",
	Short:             "Update the value of a configuration key",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		key, raw := args[0], args[1]

		if _, ok := config.Default[key]; !ok {
			handleErr(errUnknownKey(key))
		}

		// Coerce the raw argument to the registered field's type.
		var value any
		switch config.Default[key].Value.(type) {
		case string:
			value = raw
		case int:
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				handleErr(fmt.Errorf("invalid integer value: %s", raw))
			}
			value = int(parsed)
		case bool:
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				handleErr(fmt.Errorf("invalid boolean value: %s", raw))
			}
			value = parsed
		default:
			handleErr(errors.New("unsupported value type for key " + key))
		}

		viper.Set(key, value)
		switch err := viper.WriteConfig(); err.(type) {
		case viper.ConfigFileNotFoundError:
			handleErr(viper.SafeWriteConfig())
		default:
			handleErr(err)
		}

		fmt.Printf(
			"%s set %s to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(key),
			style.Fg(color.Yellow)(fmt.Sprintf("%v", value)),
		)
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
}

// configGetCmd prints the current value of a configuration key.
var configGetCmd = &cobra.Command{
	Use:               "get key",
	Short:             "Print the current value of a configuration key",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		key := args[0]

		if _, ok := config.Default[key]; !ok {
			handleErr(errUnknownKey(key))
		}

		fmt.Println(viper.Get(key))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing configuration file")
}

// configWriteCmd serializes the current configuration to disk.
var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current configuration to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		configFilePath := filepath.Join(
			where.Config(),
			fmt.Sprintf("%s.toml", constant.Chapsplit),
		)

		if lo.Must(cmd.Flags().GetBool("force")) {
			handleErr(filesystem.API().Remove(configFilePath))
		}

		handleErr(viper.SafeWriteConfig())
		fmt.Printf(
			"%s wrote config to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			configFilePath,
		)
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

// configDeleteCmd removes the configuration file.
var configDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the config file",
	Run: func(cmd *cobra.Command, args []string) {
		configFilePath := filepath.Join(
			where.Config(),
			fmt.Sprintf("%s.toml", constant.Chapsplit),
		)

		handleErr(filesystem.API().Remove(configFilePath))
		fmt.Printf("%s deleted config at %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), configFilePath)
	},
}
