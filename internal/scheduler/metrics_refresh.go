// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-leaderboard-api/infrastructure/integrator/revenuecat"
	rcdomain "github.com/vfg2006/revenue-leaderboard-api/infrastructure/integrator/revenuecat/domain"
	"github.com/vfg2006/revenue-leaderboard-api/infrastructure/repository"
	"github.com/vfg2006/revenue-leaderboard-api/internal/config"
	"github.com/vfg2006/revenue-leaderboard-api/internal/domain"
	"github.com/vfg2006/revenue-leaderboard-api/pkg/cipher"
)

// MetricsRefreshConfig representa a configuração do agendador de atualização
// de métricas
type MetricsRefreshConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// RefreshError registra a falha de uma entrada específica dentro de uma
// execução do job
type RefreshError struct {
	StartupID int64  `json:"startup_id"`
	Message   string `json:"message"`
}

// RefreshReport é o resultado agregado de uma execução do job. O acumulador
// é protegido por mutex porque as entradas são processadas por workers
// concorrentes.
type RefreshReport struct {
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
	Removed   int            `json:"removed"`
	Errors    []RefreshError `json:"errors"`

	mu sync.Mutex
}

func NewRefreshReport() *RefreshReport {
	return &RefreshReport{
		Errors: make([]RefreshError, 0),
	}
}

func (r *RefreshReport) markSucceeded() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Succeeded++
}

func (r *RefreshReport) markRemoved() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Removed++
}

func (r *RefreshReport) markFailed(startupID int64, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Failed++
	r.Errors = append(r.Errors, RefreshError{StartupID: startupID, Message: message})
}

// MetricsRefreshService gerencia o agendamento e execução da atualização de
// métricas de receita de todas as startups cadastradas
type MetricsRefreshService struct {
	scheduler           *gocron.Scheduler
	config              MetricsRefreshConfig
	masterSecret        string
	startupRepo         repository.StartupRepository
	credentialRepo      repository.CredentialRepository
	metricsRepo         repository.MetricsRepository
	rcService           revenuecat.RevenueCatIntegrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *RefreshReport
}

// NewMetricsRefreshService cria uma nova instância do serviço de atualização
// de métricas
func NewMetricsRefreshService(
	startupRepo repository.StartupRepository,
	credentialRepo repository.CredentialRepository,
	metricsRepo repository.MetricsRepository,
	rcService revenuecat.RevenueCatIntegrator,
	appConfig *config.Config,
) *MetricsRefreshService {
	refreshConfig := MetricsRefreshConfig{
		CronSchedule:        appConfig.MetricsRefreshSync.CronSchedule,
		RequestDelaySeconds: appConfig.MetricsRefreshSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.MetricsRefreshSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.MetricsRefreshSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         refreshConfig.CronSchedule,
		"request_delay_seconds": refreshConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   refreshConfig.MaxConcurrentJobs,
		"sync_enabled":          refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de atualização de métricas carregada")

	return &MetricsRefreshService{
		scheduler:      scheduler,
		config:         refreshConfig,
		masterSecret:   appConfig.Cipher.MasterSecret,
		startupRepo:    startupRepo,
		credentialRepo: credentialRepo,
		metricsRepo:    metricsRepo,
		rcService:      rcService,
	}
}

// Start inicia o agendador
func (s *MetricsRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunRefresh()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de métricas: %w", err)
	}

	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// RunRefresh executa uma passada completa de atualização sobre todas as
// startups com credencial gravada e retorna o relatório agregado. Duas
// execuções nunca se sobrepõem no mesmo processo: se já houver uma em
// andamento a chamada retorna nil sem fazer trabalho.
func (s *MetricsRefreshService) RunRefresh() *RefreshReport {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de métricas já em andamento, ignorando")
		return nil
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando atualização de métricas para todas as startups cadastradas")

	report := s.refreshAllStartups()

	s.lastReport = report
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"succeeded": report.Succeeded,
		"failed":    report.Failed,
		"removed":   report.Removed,
	}).Info("Atualização de métricas concluída")

	return report
}

// refreshAllStartups processa todas as entradas com um pool limitado de
// workers. Nenhuma falha individual interrompe o lote.
func (s *MetricsRefreshService) refreshAllStartups() *RefreshReport {
	report := NewRefreshReport()

	entries, err := s.credentialRepo.ListStartupsWithCredentials()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de startups para atualização de métricas")
		return report
	}

	if len(entries) == 0 {
		logrus.Info("Nenhuma startup cadastrada para atualização de métricas")
		return report
	}

	logrus.WithField("startups", len(entries)).Info("Startups encontradas para atualização de métricas")

	maxWorkers := s.config.MaxConcurrentJobs
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	// Canal para controlar o número de workers concorrentes
	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for _, entry := range entries {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(e *domain.StartupWithCredential) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			s.refreshStartup(e, report)

			// Aguardar antes da próxima requisição para evitar sobrecarga na API
			if s.config.RequestDelaySeconds > 0 {
				time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
			}
		}(entry)
	}

	wg.Wait()

	return report
}

// refreshStartup executa o ciclo decifrar -> consultar -> gravar de uma única
// startup e registra o desfecho no relatório
func (s *MetricsRefreshService) refreshStartup(entry *domain.StartupWithCredential, report *RefreshReport) {
	logger := logrus.WithFields(logrus.Fields{
		"startup_id":   entry.StartupID,
		"startup_name": entry.Name,
	})

	// Entradas sem projeto não têm como ser consultadas; ficam como falha
	// descritiva sem nunca chamar o integrador
	if entry.AccountProjectID == "" {
		logger.Warn("Startup sem account_project_id. Pulando.")
		report.markFailed(entry.StartupID, "startup sem account_project_id cadastrado")
		return
	}

	// Falha de decifragem pode significar master secret mal configurado no
	// processo, não credencial externa inválida: a entrada NÃO é removida
	apiKey, err := cipher.Decrypt(entry.EncryptedSecret, s.masterSecret)
	if err != nil {
		logger.WithError(err).Error("Erro ao decifrar credencial da startup")
		report.markFailed(entry.StartupID, fmt.Sprintf("erro ao decifrar credencial: %v", err))
		return
	}

	metrics, err := s.rcService.GetRevenueMetrics(apiKey, entry.AccountProjectID)
	if err != nil {
		if rcdomain.IsInvalidCredential(err) {
			s.removeStartup(entry, report, logger)
			return
		}

		logger.WithError(err).Error("Erro ao consultar métricas no RevenueCat")
		report.markFailed(entry.StartupID, err.Error())
		return
	}

	if err := s.metricsRepo.Upsert(entry.StartupID, metrics.TotalRevenue, metrics.MRR, time.Now()); err != nil {
		logger.WithError(err).Error("Erro ao gravar métricas no banco de dados")
		report.markFailed(entry.StartupID, fmt.Sprintf("erro ao gravar métricas: %v", err))
		return
	}

	logger.WithFields(logrus.Fields{
		"total_revenue": metrics.TotalRevenue,
		"mrr":           metrics.MRR,
	}).Info("Métricas da startup atualizadas com sucesso")

	report.markSucceeded()
}

// removeStartup apaga a entrada cuja credencial o RevenueCat rejeitou de
// forma autoritativa. Credenciais revogadas são podadas automaticamente em
// vez de acumular para sempre.
func (s *MetricsRefreshService) removeStartup(entry *domain.StartupWithCredential, report *RefreshReport, logger *logrus.Entry) {
	logger.Warn("Credencial rejeitada pelo RevenueCat, removendo startup do leaderboard")

	if err := s.startupRepo.Delete(entry.StartupID); err != nil {
		logger.WithError(err).Error("Erro ao remover startup com credencial inválida")
		report.markFailed(entry.StartupID, fmt.Sprintf("erro ao remover startup: %v", err))
		return
	}

	report.markRemoved()
}

// TriggerManualSync inicia manualmente uma atualização de métricas
func (s *MetricsRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de métricas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual de métricas")
	go s.RunRefresh()
}

// GetStatus retorna o status atual do agendador
func (s *MetricsRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastReport != nil {
		status["last_report"] = map[string]any{
			"succeeded": s.lastReport.Succeeded,
			"failed":    s.lastReport.Failed,
			"removed":   s.lastReport.Removed,
		}
	}

	return status
}
