package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/chapsplit-cli/chapsplit/icon"
	"github.com/chapsplit-cli/chapsplit/key"
	"github.com/chapsplit-cli/chapsplit/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

// dependencies lists the external binaries a run needs, each resolvable
// through its configuration key so custom install paths are honored.
var dependencies = []struct {
	name       string
	binaryKey  string
	installPkg string
}{
	{"yt-dlp", key.EngineYtdlpPath, "yt-dlp"},
	{"ffmpeg", key.EngineFfmpegPath, "ffmpeg"},
	{"ffprobe", key.EngineFfprobePath, "ffmpeg"},
}

// CheckDependencies verifies the availability of required system dependencies.
func CheckDependencies() {
	for _, dep := range dependencies {
		bin := viper.GetString(dep.binaryKey)
		if bin == "" {
			bin = dep.name
		}

		if _, err := exec.LookPath(bin); err != nil {
			printMissingDependencyError(dep.name, dep.installPkg)
			os.Exit(1)
		}
	}
}

func printMissingDependencyError(dep, pkg string) {
	var installCmd string
	switch runtime.GOOS {
	case "darwin":
		installCmd = "brew install " + pkg
	case "linux":
		installCmd = "sudo apt install " + pkg // Generic, maybe check distro
	case "windows":
		installCmd = "scoop install " + pkg
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The required dependency '%s' was not found in your PATH.", dep))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
