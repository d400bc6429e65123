// Command grinvo calcula la factura mensual desde la terminal.
//
//	grinvo calculate --month 2024-01 --fee Nomad:1.0 --fee Higlobe:0.3
//	grinvo holidays --year 2025
//	grinvo fx --date 2024-01-05
//	grinvo watch < edits.txt
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/grinvo/pkg/config"
)

func main() {
	app := newApp(env{
		out:        os.Stdout,
		errOut:     os.Stderr,
		in:         os.Stdin,
		now:        time.Now,
		loadConfig: config.Load,
	})
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "grinvo:", err)
		os.Exit(1)
	}
}
