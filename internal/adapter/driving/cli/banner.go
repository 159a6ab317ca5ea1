package cli

import (
	"fmt"

	"github.com/diillson/aws-cost-insight-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
          /$$$$$$                        /$$           /$$$$$$                      /$$           /$$         /$$
         /$$__  $$                      | $$          |_  $$_/                     |__/          | $$        | $$
        | $$  \__/  /$$$$$$   /$$$$$$$ /$$$$$$          | $$   /$$$$$$$   /$$$$$$$ /$$  /$$$$$$  | $$$$$$$  /$$$$$$
        | $$       /$$__  $$ /$$_____/|_  $$_/          | $$  | $$__  $$ /$$_____/| $$ /$$__  $$ | $$__  $$|_  $$_/
        | $$      | $$  \ $$|  $$$$$$   | $$            | $$  | $$  \ $$|  $$$$$$ | $$| $$  \ $$ | $$  \ $$  | $$
        | $$    $$| $$  | $$ \____  $$  | $$ /$$        | $$  | $$  | $$ \____  $$| $$| $$  | $$ | $$  | $$  | $$ /$$
        |  $$$$$$/|  $$$$$$/ /$$$$$$$/  |  $$$$/       /$$$$$$| $$  | $$ /$$$$$$$/| $$|  $$$$$$$ | $$  | $$  |  $$$$/
         \______/  \______/ |_______/    \___/        |______/|__/  |__/|_______/ |__/ \____  $$ |__/  |__/   \___/
                                                                                       /$$  \ $$
                                                                                      |  $$$$$$/
                                                                                       \______/
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("AWS Cost Insight CLI (v%s)", formattedVersion)))
}
