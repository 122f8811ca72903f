// Package prompt implements the sequential interactive surface of the application.
//
// It collects a source URL, an output mode and format, and a destination
// directory through validated terminal prompts, and hands the pipeline a
// fully validated session. The prompting shell is a replaceable adapter:
// nothing downstream reads from the terminal.
package prompt

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/chapsplit-cli/chapsplit/filesystem"
	"github.com/chapsplit-cli/chapsplit/key"
	"github.com/chapsplit-cli/chapsplit/plan"
	"github.com/chapsplit-cli/chapsplit/where"
	"github.com/spf13/viper"
)

// Session holds everything a pipeline run needs, validated and immutable.
type Session struct {
	URL    string
	Policy plan.OutputPolicy
	Dir    string
}

// containerHints decorate the container options in the select prompts.
var containerHints = map[string]string{
	"mp4":  "widely compatible",
	"mkv":  "versatile container",
	"webm": "VP9/Opus friendly",
	"mp3":  "universal lossy",
	"m4a":  "AAC",
	"flac": "lossless",
	"wav":  "PCM lossless",
	"opus": "efficient lossy",
}

// Run walks the user through the full prompt sequence and returns the
// validated session. Every prompt re-asks on empty or out-of-range input.
func Run() (*Session, error) {
	rawURL, err := askURL()
	if err != nil {
		return nil, err
	}

	mode, err := askMode()
	if err != nil {
		return nil, err
	}

	var policy plan.OutputPolicy
	switch mode {
	case plan.ModeVideo:
		policy, err = askVideoPolicy()
	case plan.ModeAudio:
		policy, err = askAudioPolicy()
	}
	if err != nil {
		return nil, err
	}

	dir, err := askDestination()
	if err != nil {
		return nil, err
	}

	return &Session{URL: rawURL, Policy: policy, Dir: dir}, nil
}

func askURL() (string, error) {
	var raw string
	prompt := &survey.Input{Message: "Video URL:"}

	err := survey.AskOne(prompt, &raw, survey.WithValidator(survey.Required), survey.WithValidator(validURL))
	return strings.TrimSpace(raw), err
}

// validURL accepts only absolute http(s) URLs.
func validURL(ans interface{}) error {
	raw, _ := ans.(string)
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("not a valid URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" || parsed.Host == "" {
		return fmt.Errorf("expected an http(s) URL")
	}
	return nil
}

func askMode() (plan.Mode, error) {
	var answer string
	prompt := &survey.Select{
		Message: "What would you like to download?",
		Options: []string{"Video (split into chapter files)", "Audio only (split into chapter files)"},
	}

	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", err
	}

	if strings.HasPrefix(answer, "Audio") {
		return plan.ModeAudio, nil
	}
	return plan.ModeVideo, nil
}

func askVideoPolicy() (plan.OutputPolicy, error) {
	container, err := askContainer("Select output video container:", plan.VideoContainers, viper.GetString(key.FormatVideoContainer))
	if err != nil {
		return plan.OutputPolicy{}, err
	}

	height, err := askResolution()
	if err != nil {
		return plan.OutputPolicy{}, err
	}

	return plan.NewPolicy(plan.ModeVideo, container, 0, height)
}

func askAudioPolicy() (plan.OutputPolicy, error) {
	container, err := askContainer("Select output audio format:", plan.AudioContainers, viper.GetString(key.FormatAudioContainer))
	if err != nil {
		return plan.OutputPolicy{}, err
	}

	bitrate, err := askBitrate()
	if err != nil {
		return plan.OutputPolicy{}, err
	}

	return plan.NewPolicy(plan.ModeAudio, container, bitrate, 0)
}

func askContainer(message string, options []string, preselected string) (string, error) {
	prompt := &survey.Select{
		Message: message,
		Options: options,
		Default: preselected,
		Description: func(value string, _ int) string {
			return containerHints[value]
		},
	}

	var container string
	err := survey.AskOne(prompt, &container)
	return container, err
}

func askResolution() (int, error) {
	options := []string{"best"}
	for _, h := range plan.Heights {
		options = append(options, strconv.Itoa(h))
	}

	preselected := "best"
	if h := viper.GetInt(key.FormatMaxHeight); h > 0 {
		preselected = strconv.Itoa(h)
	}

	prompt := &survey.Select{
		Message: "Select maximum video resolution:",
		Options: options,
		Default: preselected,
		Description: func(value string, _ int) string {
			switch value {
			case "best":
				return "highest available"
			case "2160":
				return "4K"
			case "1440":
				return "2K"
			}
			return ""
		},
	}

	var answer string
	if err := survey.AskOne(prompt, &answer); err != nil {
		return 0, err
	}

	if answer == "best" {
		return 0, nil
	}
	return strconv.Atoi(answer)
}

func askBitrate() (int, error) {
	options := make([]string, len(plan.Bitrates))
	for i, b := range plan.Bitrates {
		options[i] = strconv.Itoa(b)
	}

	prompt := &survey.Select{
		Message: "Select target audio bitrate (kbps):",
		Options: options,
		Default: strconv.Itoa(viper.GetInt(key.FormatAudioBitrate)),
	}

	var answer string
	if err := survey.AskOne(prompt, &answer); err != nil {
		return 0, err
	}
	return strconv.Atoi(answer)
}

func askDestination() (string, error) {
	preselected := viper.GetString(key.DownloadDir)
	if preselected == "" {
		preselected = where.Downloads()
	}

	prompt := &survey.Input{
		Message: "Destination folder for the files:",
		Default: preselected,
	}

	var dir string
	if err := survey.AskOne(prompt, &dir, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}

	dir = expandHome(strings.TrimSpace(dir))
	if err := filesystem.API().MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("create destination %q: %w", dir, err)
	}
	return dir, nil
}

// expandHome resolves a leading ~ against the user home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
