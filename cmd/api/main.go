package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/affiliate-earnings-api/infrastructure/integrator/aliexpress"
	"github.com/vfg2006/affiliate-earnings-api/infrastructure/integrator/aliexpress/aliexpressclient"
	"github.com/vfg2006/affiliate-earnings-api/internal/api"
	"github.com/vfg2006/affiliate-earnings-api/internal/config"
	"github.com/vfg2006/affiliate-earnings-api/internal/credentials"
	"github.com/vfg2006/affiliate-earnings-api/internal/scheduler"
	"github.com/vfg2006/affiliate-earnings-api/internal/usecases/earning"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	credentialStore := credentials.NewConfigStore(cfg)

	aliexpressClient := aliexpressclient.NewClient(cfg)
	aliexpressIntegrator := aliexpress.New(cfg, aliexpressClient)

	// Um motor de agregação por conta monitorada, construído explicitamente
	earningService := earning.NewService(cfg, credentialStore, aliexpressIntegrator)

	orderSyncService := scheduler.NewOrderSyncService(earningService, cfg)
	if err := orderSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de pedidos")
	} else {
		logrus.Info("Agendador de sincronização de pedidos iniciado com sucesso")
	}

	server, err := api.New(cfg, earningService, orderSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
