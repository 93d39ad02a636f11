package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/copywriter"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/lock"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/experimenting"
)

func newSeedCmd() *cobra.Command {
	var variants int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Cria um produto, um experimento e variantes de demonstração",
		RunE: func(cmd *cobra.Command, args []string) error {
			if variants < 1 {
				return fmt.Errorf("--variants deve ser pelo menos 1")
			}

			ctx := context.Background()

			conn, err := postgres.NewConnection(ctx, appConfig.Database)
			if err != nil {
				return err
			}
			defer conn.Close()

			store := experimenting.NewService(
				repository.NewExperimentRepository(conn),
				repository.NewVariantRepository(conn),
				repository.NewProductRepository(conn),
				lock.NewLocalLocker(),
			)

			product, err := store.CreateProduct(&domain.Product{
				Name:     "Curso de Marketing Digital",
				Concept:  "Curso online para pequenos negócios captarem clientes pela internet",
				Audience: "Donos de pequenos negócios",
			})
			if err != nil {
				return err
			}

			enabled := true
			experiment, err := store.CreateExperiment(&domain.CreateExperimentRequest{
				ProductID:    product.ID,
				TotalBudget:  1500,
				DailyBudget:  50,
				TargetCPL:    12,
				MinLeads:     5,
				Optimization: &domain.OptimizationConfigPatch{Enabled: &enabled},
			})
			if err != nil {
				return err
			}

			drafts, err := copywriter.NewTemplateGenerator().Generate(ctx, product, variants)
			if err != nil {
				return err
			}

			for _, draft := range drafts {
				if _, err := store.CreateVariant(&domain.CreateVariantRequest{
					ExperimentID: experiment.ID,
					Headline:     draft.Headline,
					Body:         draft.Body,
					CallToAction: draft.CallToAction,
				}); err != nil {
					return err
				}
			}

			running := domain.ExperimentStatusRunning
			if _, err := store.UpdateExperiment(&domain.UpdateExperimentRequest{ID: experiment.ID, Status: &running}); err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"product_id":    product.ID,
				"experiment_id": experiment.ID,
				"variants":      len(drafts),
			}).Info("Dados de demonstração criados")

			return nil
		},
	}

	cmd.Flags().IntVar(&variants, "variants", 3, "quantidade de variantes iniciais")

	return cmd
}

func newTokenCmd() *cobra.Command {
	var (
		userID int
		name   string
		roleID int
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite um token JWT para um operador",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := authenticating.NewService(appConfig).GenerateToken(domain.Operator{
				ID:     userID,
				Name:   name,
				RoleID: roleID,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().IntVar(&userID, "user-id", 1, "ID do operador")
	cmd.Flags().StringVar(&name, "name", "admin", "nome do operador")
	cmd.Flags().IntVar(&roleID, "role", domain.RoleAdmin, "papel: 1=admin, 2=supervisor, 3=cliente")

	return cmd
}
