//go:build tinygo && baremetal

package main

import (
	"tivalab/app"
	"tivalab/hal"
)

func main() {
	app.Run(hal.New())
}
