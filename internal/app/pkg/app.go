package pkg

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"thetis_mrv/internal/app/config"
	"thetis_mrv/internal/app/handler"
)

type App struct {
	Config  *config.Config
	Router  *gin.Engine
	Handler *handler.Handler
}

func NewApp(cfg *config.Config, router *gin.Engine, hand *handler.Handler) *App {
	return &App{
		Config:  cfg,
		Router:  router,
		Handler: hand,
	}
}

func (a *App) RunApp() {
	a.Handler.SetupRoutes(a.Router)

	addr := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	logrus.Infof("starting server on %s", addr)
	if err := a.Router.Run(addr); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
