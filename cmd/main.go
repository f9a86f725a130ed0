package main

import (
	"github.com/corray333/order-ledger/internal/app"
	"github.com/corray333/order-ledger/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
