package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/campaign-optimizer-api/internal/config"
	applog "github.com/vfg2006/campaign-optimizer-api/pkg/log"
)

var rootCmd = &cobra.Command{
	Use:   "migration",
	Short: "Cria o schema do otimizador e carrega dados de demonstração",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewConfig()
		if err != nil {
			return err
		}
		appConfig = cfg
		applog.Setup(cfg.App.LogLevel)
		return nil
	},
}

var appConfig *config.Config

func init() {
	rootCmd.AddCommand(newMigrateCmd(), newSeedCmd(), newTokenCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("Falha na execução do script")
		os.Exit(1)
	}
}
