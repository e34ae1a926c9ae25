package cmd

import (
	"fmt"
)

const banner = `
  ____             _ _
 / ___|  ___  __ _| | |__   _____  __
 \___ \ / _ \/ _` + "`" + ` | | '_ \ / _ \ \/ /
  ___) |  __/ (_| | | |_) | (_) >  <
 |____/ \___|\__,_|_|_.__/ \___/_/\_\

`

func printBanner() {
	fmt.Printf("\x1b[34m%s\x1b[0m", banner)
	fmt.Printf("\x1b[32m  At-Rest Record Encryption - Version %s\x1b[0m\n\n", Version)
}
