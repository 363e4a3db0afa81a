package cli

import (
	"fmt"

	"github.com/diillson/budget-dashboard-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
  ____            _            _     ____            _     _                         _
 | __ ) _   _  __| | __ _  ___| |_  |  _ \  __ _ ___| |__ | |__   ___   __ _ _ __ __| |
 |  _ \| | | |/ _` + "`" + ` |/ _` + "`" + ` |/ _ \ __| | | | |/ _` + "`" + ` / __| '_ \| '_ \ / _ \ / _` + "`" + ` | '__/ _` + "`" + ` |
 | |_) | |_| | (_| | (_| |  __/ |_  | |_| | (_| \__ \ | | | |_) | (_) | (_| | | | (_| |
 |____/ \__,_|\__,_|\__, |\___|\__| |____/ \__,_|___/_| |_|_.__/ \___/ \__,_|_|  \__,_|
                    |___/
`
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))
	fmt.Println(blue(fmt.Sprintf("Budget Dashboard CLI (v%s)", version.FormatVersion())))
}
