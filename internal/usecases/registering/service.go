package registering

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-leaderboard-api/infrastructure/integrator/revenuecat"
	rcdomain "github.com/vfg2006/revenue-leaderboard-api/infrastructure/integrator/revenuecat/domain"
	"github.com/vfg2006/revenue-leaderboard-api/infrastructure/repository"
	"github.com/vfg2006/revenue-leaderboard-api/internal/config"
	"github.com/vfg2006/revenue-leaderboard-api/internal/domain"
	"github.com/vfg2006/revenue-leaderboard-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-leaderboard-api/pkg/cipher"
	"github.com/vfg2006/revenue-leaderboard-api/pkg/utils"
)

type RegisteringService interface {
	RegisterStartup(request *domain.RegisterStartupRequest) (*domain.RegisterStartupResponse, error)
}

type Service struct {
	validate       *validator.Validate
	masterSecret   string
	startupRepo    repository.StartupRepository
	credentialRepo repository.CredentialRepository
	metricsRepo    repository.MetricsRepository
	rcService      revenuecat.RevenueCatIntegrator
}

func NewService(
	startupRepo repository.StartupRepository,
	credentialRepo repository.CredentialRepository,
	metricsRepo repository.MetricsRepository,
	rcService revenuecat.RevenueCatIntegrator,
	cfg *config.Config,
) RegisteringService {
	return &Service{
		validate:       validator.New(),
		masterSecret:   cfg.Cipher.MasterSecret,
		startupRepo:    startupRepo,
		credentialRepo: credentialRepo,
		metricsRepo:    metricsRepo,
		rcService:      rcService,
	}
}

// RegisterStartup valida o payload, confirma a credencial junto ao RevenueCat
// e grava a startup com o token cifrado. A chave de API em claro só existe na
// memória desta requisição.
func (s *Service) RegisterStartup(request *domain.RegisterStartupRequest) (*domain.RegisterStartupResponse, error) {
	if err := s.validate.Struct(request); err != nil {
		return nil, NewRegistrationError(ErrValidationFailed, apiErrors.ErrInvalidRequest, err.Error())
	}

	// A checagem de duplicidade vem antes de qualquer chamada externa ou
	// trabalho criptográfico
	taken, err := s.credentialRepo.IsProjectIDTaken(request.ProjectID)
	if err != nil {
		logrus.Error("Error checking project uniqueness on the repository:", err)
		return nil, NewRegistrationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar projeto no banco de dados")
	}
	if taken {
		return nil, NewRegistrationError(ErrProjectAlreadyRegistered, apiErrors.ErrProjectAlreadyTaken, "Projeto já cadastrado por outra startup")
	}

	// Uma única consulta confirma a credencial e já rende o snapshot inicial
	// de métricas
	metrics, err := s.rcService.GetRevenueMetrics(request.APIKey, request.ProjectID)
	if err != nil {
		if rcdomain.IsInvalidCredential(err) {
			logrus.WithField("project_id", request.ProjectID).Warn("Credencial rejeitada pelo RevenueCat no cadastro")
			return nil, NewRegistrationError(ErrCredentialRejected, apiErrors.ErrInvalidCredential, "Chave de API rejeitada pelo RevenueCat")
		}

		logrus.Error("Error fetching metrics from RevenueCat during registration:", err)
		return nil, NewRegistrationError(ErrRevenueCatUnavailable, apiErrors.ErrExternalService, "Falha ao consultar o RevenueCat")
	}

	encryptedSecret, err := cipher.Encrypt(request.APIKey, s.masterSecret)
	if err != nil {
		logrus.Error("Error encrypting API key:", err)
		return nil, NewRegistrationError(ErrEncryptSecret, apiErrors.ErrInternalServer, "Falha ao cifrar a chave de API")
	}

	slugSuffix, err := utils.GenerateID()
	if err != nil {
		return nil, NewRegistrationError(ErrGenerateSlug, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para startup")
	}
	slug := fmt.Sprintf("%s-%s", utils.Slugify(request.Name), slugSuffix)

	startup, err := s.startupRepo.Create(&domain.Startup{
		Slug:          slug,
		Name:          request.Name,
		WebsiteURL:    request.WebsiteURL,
		FounderHandle: request.FounderHandle,
		StoreID:       request.StoreID,
	})
	if err != nil {
		logrus.Error("Error creating startup on the repository:", err)
		return nil, NewRegistrationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar startup no banco de dados")
	}

	err = s.credentialRepo.Upsert(&domain.StartupCredential{
		StartupID:        startup.ID,
		EncryptedSecret:  encryptedSecret,
		AccountProjectID: request.ProjectID,
	})
	if err != nil {
		// Dois cadastros concorrentes do mesmo projeto podem passar pela
		// checagem inicial; a constraint única decide e o perdedor desfaz a
		// startup órfã
		if deleteErr := s.startupRepo.Delete(startup.ID); deleteErr != nil {
			logrus.Error("Error removing orphan startup after credential failure:", deleteErr)
		}

		if err == repository.ErrProjectIDTaken {
			return nil, NewRegistrationError(ErrProjectAlreadyRegistered, apiErrors.ErrProjectAlreadyTaken, "Projeto já cadastrado por outra startup")
		}

		logrus.Error("Error saving credential on the repository:", err)
		return nil, NewRegistrationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao gravar credencial no banco de dados")
	}

	startupMetrics := &domain.StartupMetrics{
		StartupID:    startup.ID,
		TotalRevenue: utils.RoundWithTwoDecimalPlace(metrics.TotalRevenue),
		MRR:          utils.RoundWithTwoDecimalPlace(metrics.MRR),
		LastUpdated:  time.Now(),
	}

	// O snapshot inicial é melhor esforço: se a gravação falhar, o job diário
	// preenche na próxima execução
	if err := s.metricsRepo.Upsert(startup.ID, startupMetrics.TotalRevenue, startupMetrics.MRR, startupMetrics.LastUpdated); err != nil {
		logrus.Error("Error saving initial metrics snapshot:", err)
	}

	logrus.WithFields(logrus.Fields{
		"startup_id": startup.ID,
		"slug":       startup.Slug,
	}).Info("Startup cadastrada com sucesso")

	return &domain.RegisterStartupResponse{
		Startup: startup,
		Metrics: startupMetrics,
	}, nil
}
