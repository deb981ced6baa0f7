package main

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/cradlecare/cradle/internal/config"
	"github.com/cradlecare/cradle/internal/exam"
	"github.com/cradlecare/cradle/internal/repository"
	"github.com/cradlecare/cradle/internal/roster"
	"github.com/cradlecare/cradle/internal/server"
	"github.com/cradlecare/cradle/internal/session"
)

func main() {
	app := fx.New(
		fx.Provide(
			zap.NewDevelopment,
			config.New,
			session.NewManager,
			repository.NewJSON,
			roster.New,
			newGenerator,
			newExamService,
			server.New,
		),
		fx.Invoke(server.RegisterHooks),
	)

	app.Run()
}

func newGenerator() *roster.Generator {
	return roster.NewGenerator(time.Now().UnixNano())
}

func newExamService(cfg *config.Config, gen *roster.Generator) *exam.Service {
	return exam.NewService(cfg.Exam.ConnectDelay, gen)
}
