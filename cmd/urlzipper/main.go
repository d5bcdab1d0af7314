package main

import (
	"github.com/fsdevblog/urlzipper/internal/app"
	"github.com/fsdevblog/urlzipper/internal/config"
)

func main() {
	appConf := config.MustLoadConfig()

	a := app.Must(app.New(*appConf))

	a.Logger.Infof("Starting server with config %+v", appConf)
	if err := a.Run(); err != nil {
		panic(err)
	}
}
