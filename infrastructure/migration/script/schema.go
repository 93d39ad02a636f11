package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/database/postgres"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Cria tabelas e índices",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			conn, err := postgres.NewConnection(ctx, appConfig.Database)
			if err != nil {
				return err
			}
			defer conn.Close()

			startTime := time.Now()

			if err := conn.ApplySchema(ctx); err != nil {
				logrus.WithError(err).Error("ERRO ao aplicar o schema")
				return err
			}

			logrus.WithFields(logrus.Fields{
				"statements": len(postgres.SchemaStatements),
				"duration":   time.Since(startTime).String(),
			}).Info("Schema aplicado com sucesso")

			return nil
		},
	}
}
