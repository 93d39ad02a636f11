package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-optimizer-api/internal/api/handler"
	handlermocks "github.com/vfg2006/campaign-optimizer-api/internal/api/handler/mocks"
	"github.com/vfg2006/campaign-optimizer-api/internal/config"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
	authmocks "github.com/vfg2006/campaign-optimizer-api/internal/usecases/authenticating/mocks"
	expmocks "github.com/vfg2006/campaign-optimizer-api/internal/usecases/experimenting/mocks"
	measmocks "github.com/vfg2006/campaign-optimizer-api/internal/usecases/measuring/mocks"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var tokens = map[string]*domain.Claims{
	"admin":      {UserID: 1, UserName: "Admin", UserRoleID: domain.RoleAdmin},
	"supervisor": {UserID: 2, UserName: "Supervisor", UserRoleID: domain.RoleSupervisor},
	"client":     {UserID: 3, UserName: "Cliente", UserRoleID: domain.RoleClient},
}

type apiMocks struct {
	store        *expmocks.MockExperimentStore
	metrics      *measmocks.MockMetricsStore
	optimizer    *handlermocks.MockOptimizer
	optimization *handlermocks.MockCronService
	metricsSync  *handlermocks.MockCronService
}

func newTestHandler(t *testing.T) (http.Handler, *apiMocks) {
	ctrl := gomock.NewController(t)

	m := &apiMocks{
		store:        expmocks.NewMockExperimentStore(ctrl),
		metrics:      measmocks.NewMockMetricsStore(ctrl),
		optimizer:    handlermocks.NewMockOptimizer(ctrl),
		optimization: handlermocks.NewMockCronService(ctrl),
		metricsSync:  handlermocks.NewMockCronService(ctrl),
	}

	auth := authmocks.NewMockAuthenticator(ctrl)
	auth.EXPECT().ValidateToken(gomock.Any()).DoAndReturn(func(token string) (*domain.Claims, error) {
		if claims, ok := tokens[token]; ok {
			return claims, nil
		}
		return nil, errors.New("token inválido")
	}).AnyTimes()

	cfg := &config.Config{}
	h := NewHandler(cfg, Services{
		Store:         m.store,
		Metrics:       m.metrics,
		Optimizer:     m.optimizer,
		Authenticator: auth,
		CronJobs: handler.CronJobServices{
			OptimizationService: m.optimization,
			MetricsSyncService:  m.metricsSync,
		},
	})

	return h, m
}

func TestServer_Routes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		body       string
		setup      func(m *apiMocks)
		wantStatus int
		validate   func(t *testing.T, body map[string]any)
	}{
		{
			name:       "Healthcheck sem token",
			method:     http.MethodGet,
			path:       "/healthcheck",
			setup:      func(m *apiMocks) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Rota protegida sem token",
			method:     http.MethodGet,
			path:       "/v1/experiments",
			setup:      func(m *apiMocks) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "Supervisor cria experimento",
			method: http.MethodPost,
			path:   "/v1/experiments",
			token:  "supervisor",
			body:   `{"product_id":"PRD001","total_budget":1000,"daily_budget":50,"target_cpl":10,"min_leads":5,"optimization":{"enabled":true}}`,
			setup: func(m *apiMocks) {
				m.store.EXPECT().CreateExperiment(gomock.Any()).DoAndReturn(func(req *domain.CreateExperimentRequest) (*domain.Experiment, error) {
					assert.Equal(t, "PRD001", req.ProductID)
					require.NotNil(t, req.Optimization)
					assert.True(t, *req.Optimization.Enabled)
					return &domain.Experiment{ID: "EXP001", ProductID: req.ProductID, Status: domain.ExperimentStatusPending}, nil
				})
			},
			wantStatus: http.StatusCreated,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "EXP001", body["id"])
				assert.Equal(t, "pending", body["status"])
			},
		},
		{
			name:       "Cliente não cria experimento",
			method:     http.MethodPost,
			path:       "/v1/experiments",
			token:      "client",
			body:       `{}`,
			setup:      func(m *apiMocks) {},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "Corpo inválido",
			method:     http.MethodPost,
			path:       "/v1/experiments",
			token:      "admin",
			body:       `{"product_id":`,
			setup:      func(m *apiMocks) {},
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "VAL_001", body["code"])
			},
		},
		{
			name:   "Lista experimentos filtrando status",
			method: http.MethodGet,
			path:   "/v1/experiments?status=running,paused",
			token:  "client",
			setup: func(m *apiMocks) {
				m.store.EXPECT().
					ListExperiments([]domain.ExperimentStatus{domain.ExperimentStatusRunning, domain.ExperimentStatusPaused}).
					Return([]*domain.Experiment{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Experimento inexistente",
			method: http.MethodGet,
			path:   "/v1/experiments/EXP404",
			token:  "client",
			setup: func(m *apiMocks) {
				m.store.EXPECT().GetExperiment("EXP404").Return(nil, domain.NewExperimentNotFoundError("EXP404"))
			},
			wantStatus: http.StatusNotFound,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "RES_001", body["code"])
				assert.Equal(t, map[string]any{"experiment_id": "EXP404"}, body["details"])
			},
		},
		{
			name:   "Transição inválida ao pausar",
			method: http.MethodPost,
			path:   "/v1/experiments/EXP001/pause",
			token:  "supervisor",
			setup: func(m *apiMocks) {
				m.store.EXPECT().PauseExperiment("EXP001").Return(nil, domain.NewInvalidTransitionError("pending", "paused"))
			},
			wantStatus: http.StatusConflict,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "OPT_003", body["code"])
			},
		},
		{
			name:   "Avaliação manual com otimização desabilitada",
			method: http.MethodPost,
			path:   "/v1/experiments/EXP001/optimize",
			token:  "supervisor",
			setup: func(m *apiMocks) {
				m.optimizer.EXPECT().EvaluateExperiment(gomock.Any(), "EXP001").Return(nil, domain.NewConfigDisabledError("EXP001"))
			},
			wantStatus: http.StatusConflict,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "OPT_001", body["code"])
			},
		},
		{
			name:   "Avaliação manual concluída",
			method: http.MethodPost,
			path:   "/v1/experiments/EXP001/optimize",
			token:  "admin",
			setup: func(m *apiMocks) {
				m.optimizer.EXPECT().EvaluateExperiment(gomock.Any(), "EXP001").Return(&domain.OptimizationResult{
					ExperimentID:      "EXP001",
					Success:           true,
					VariantsEvaluated: 2,
					VariantsPaused:    1,
					Decisions:         []domain.VariantDecision{},
				}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, true, body["success"])
				assert.Equal(t, float64(1), body["variants_paused"])
			},
		},
		{
			name:   "Falha em serviço externo",
			method: http.MethodPost,
			path:   "/v1/experiments/EXP001/optimize",
			token:  "admin",
			setup: func(m *apiMocks) {
				m.optimizer.EXPECT().EvaluateExperiment(gomock.Any(), "EXP001").
					Return(nil, domain.NewExternalServiceError("meta", "pause_ad", errors.New("timeout")))
			},
			wantStatus: http.StatusBadGateway,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "SRV_003", body["code"])
			},
		},
		{
			name:       "Rodada síncrona exige admin",
			method:     http.MethodPost,
			path:       "/v1/optimization/run",
			token:      "supervisor",
			setup:      func(m *apiMocks) {},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "Rodada já em andamento",
			method: http.MethodPost,
			path:   "/v1/optimization/run",
			token:  "admin",
			setup: func(m *apiMocks) {
				m.optimizer.EXPECT().RunBatch(gomock.Any()).Return(nil, domain.NewBatchAlreadyRunningError())
			},
			wantStatus: http.StatusConflict,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "OPT_004", body["code"])
			},
		},
		{
			name:   "Pausa manual de variante",
			method: http.MethodPost,
			path:   "/v1/variants/VAR001/pause",
			token:  "supervisor",
			setup: func(m *apiMocks) {
				manual := domain.PauseSourceManual
				m.store.EXPECT().PauseVariant("VAR001", domain.PauseSourceManual).
					Return(&domain.Variant{ID: "VAR001", Status: domain.VariantStatusPaused, PausedBy: &manual}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "manual", body["paused_by"])
			},
		},
		{
			name:   "Cria variante usando o experimento da URL",
			method: http.MethodPost,
			path:   "/v1/experiments/EXP001/variants",
			token:  "supervisor",
			body:   `{"experiment_id":"OUTRO","headline":"Título","body":"Texto","call_to_action":"LEARN_MORE"}`,
			setup: func(m *apiMocks) {
				m.store.EXPECT().CreateVariant(gomock.Any()).DoAndReturn(func(req *domain.CreateVariantRequest) (*domain.Variant, error) {
					assert.Equal(t, "EXP001", req.ExperimentID)
					return &domain.Variant{ID: "VAR009", ExperimentID: req.ExperimentID, Status: domain.VariantStatusActive}, nil
				})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "Registra snapshot",
			method: http.MethodPost,
			path:   "/v1/variants/VAR001/metrics",
			token:  "supervisor",
			body:   `{"impressions":1000,"clicks":20,"leads":2,"spend":30}`,
			setup: func(m *apiMocks) {
				counters := domain.RawCounters{Impressions: 1000, Clicks: 20, Leads: 2, Spend: 30}
				m.metrics.EXPECT().RecordSnapshot("VAR001", counters).
					Return(domain.NewMetricsSnapshot("VAR001", counters, fixedTime()), nil)
			},
			wantStatus: http.StatusCreated,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, float64(15), body["cpl"])
			},
		},
		{
			name:   "Último snapshot inexistente",
			method: http.MethodGet,
			path:   "/v1/variants/VAR001/metrics/latest",
			token:  "client",
			setup: func(m *apiMocks) {
				m.metrics.EXPECT().LatestSnapshot("VAR001").Return(nil, nil)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "Janela de tendência inválida",
			method:     http.MethodGet,
			path:       "/v1/variants/VAR001/metrics/trend?last=1",
			token:      "client",
			setup:      func(m *apiMocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "Tendência com janela informada",
			method: http.MethodGet,
			path:   "/v1/variants/VAR001/metrics/trend?last=3",
			token:  "client",
			setup: func(m *apiMocks) {
				m.metrics.EXPECT().Trend("VAR001", 3).Return(&domain.MetricsTrend{CTRTrend: domain.TrendStable, CPLTrend: domain.TrendStable}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Agregação sem variantes",
			method:     http.MethodPost,
			path:       "/v1/metrics/aggregate",
			token:      "client",
			body:       `{"variant_ids":[]}`,
			setup:      func(m *apiMocks) {},
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "VAL_002", body["code"])
			},
		},
		{
			name:   "Dispara coleta de métricas",
			method: http.MethodPost,
			path:   "/v1/cron/metrics/run",
			token:  "admin",
			setup: func(m *apiMocks) {
				m.metricsSync.EXPECT().TriggerManualSync()
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name:   "Dispara todos os jobs",
			method: http.MethodPost,
			path:   "/v1/cron/all/run",
			token:  "admin",
			setup: func(m *apiMocks) {
				m.metricsSync.EXPECT().TriggerManualSync()
				m.optimization.EXPECT().TriggerManualSync()
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "Tipo de job desconhecido",
			method:     http.MethodPost,
			path:       "/v1/cron/ranking/run",
			token:      "admin",
			setup:      func(m *apiMocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "Status dos jobs",
			method: http.MethodGet,
			path:   "/v1/cron/status",
			token:  "supervisor",
			setup: func(m *apiMocks) {
				m.optimization.EXPECT().GetStatus().Return(map[string]any{"sync_running": false})
				m.metricsSync.EXPECT().GetStatus().Return(map[string]any{"sync_running": true})
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, map[string]any{"sync_running": false}, body["optimization"])
				assert.Equal(t, map[string]any{"sync_running": true}, body["metrics"])
			},
		},
		{
			name:       "Rota inexistente",
			method:     http.MethodGet,
			path:       "/v1/campaigns",
			token:      "admin",
			setup:      func(m *apiMocks) {},
			wantStatus: http.StatusNotFound,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "RES_002", body["code"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			tt.setup(m)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.validate != nil {
				var body map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				tt.validate(t, body)
			}
		})
	}
}

func fixedTime() time.Time {
	return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
}
