package registering

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	rcdomain "github.com/vfg2006/revenue-leaderboard-api/infrastructure/integrator/revenuecat/domain"
	rcmocks "github.com/vfg2006/revenue-leaderboard-api/infrastructure/integrator/revenuecat/mocks"
	"github.com/vfg2006/revenue-leaderboard-api/infrastructure/repository"
	"github.com/vfg2006/revenue-leaderboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/revenue-leaderboard-api/internal/domain"
	"github.com/vfg2006/revenue-leaderboard-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-leaderboard-api/pkg/cipher"
	"go.uber.org/mock/gomock"
)

const testMasterSecret = "master-secret-de-teste"

type testMocks struct {
	startupRepo    *mocks.MockStartupRepository
	credentialRepo *mocks.MockCredentialRepository
	metricsRepo    *mocks.MockMetricsRepository
	rcService      *rcmocks.MockRevenueCatIntegrator
}

func newTestService(ctrl *gomock.Controller) (*Service, *testMocks) {
	m := &testMocks{
		startupRepo:    mocks.NewMockStartupRepository(ctrl),
		credentialRepo: mocks.NewMockCredentialRepository(ctrl),
		metricsRepo:    mocks.NewMockMetricsRepository(ctrl),
		rcService:      rcmocks.NewMockRevenueCatIntegrator(ctrl),
	}

	service := &Service{
		validate:       validator.New(),
		masterSecret:   testMasterSecret,
		startupRepo:    m.startupRepo,
		credentialRepo: m.credentialRepo,
		metricsRepo:    m.metricsRepo,
		rcService:      m.rcService,
	}

	return service, m
}

func validRequest() *domain.RegisterStartupRequest {
	return &domain.RegisterStartupRequest{
		Name:          "Meu App",
		WebsiteURL:    "https://meuapp.com.br",
		FounderHandle: "@fundadora",
		StoreID:       "br.com.meuapp",
		APIKey:        "sk_valid_key",
		ProjectID:     "proj123",
	}
}

func TestRegisterStartup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	request := validRequest()

	m.credentialRepo.EXPECT().IsProjectIDTaken("proj123").Return(false, nil)

	m.rcService.EXPECT().
		GetRevenueMetrics("sk_valid_key", "proj123").
		Return(&rcdomain.RevenueMetrics{TotalRevenue: 1234.567, MRR: 99.999}, nil)

	m.startupRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(startup *domain.Startup) (*domain.Startup, error) {
			assert.Equal(t, "Meu App", startup.Name)
			assert.Contains(t, startup.Slug, "meu-app-")

			startup.ID = 42
			return startup, nil
		})

	// O segredo gravado tem que ser decifrável de volta para a chave original
	m.credentialRepo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(credential *domain.StartupCredential) error {
			assert.Equal(t, int64(42), credential.StartupID)
			assert.Equal(t, "proj123", credential.AccountProjectID)
			assert.NotContains(t, credential.EncryptedSecret, "sk_valid_key")

			plaintext, err := cipher.Decrypt(credential.EncryptedSecret, testMasterSecret)
			require.NoError(t, err)
			assert.Equal(t, "sk_valid_key", plaintext)

			return nil
		})

	m.metricsRepo.EXPECT().
		Upsert(int64(42), 1234.57, 100.0, gomock.Any()).
		Return(nil)

	response, err := service.RegisterStartup(request)
	require.NoError(t, err)
	require.NotNil(t, response)

	assert.Equal(t, int64(42), response.Startup.ID)
	assert.Equal(t, 1234.57, response.Metrics.TotalRevenue)
	assert.Equal(t, 100.0, response.Metrics.MRR)
}

func TestRegisterStartupInvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma expectativa: payload inválido não chega a tocar repositórios
	// nem o RevenueCat
	service, _ := newTestService(ctrl)

	testCases := []struct {
		name   string
		mutate func(r *domain.RegisterStartupRequest)
	}{
		{"sem nome", func(r *domain.RegisterStartupRequest) { r.Name = "" }},
		{"sem chave de API", func(r *domain.RegisterStartupRequest) { r.APIKey = "" }},
		{"sem projeto", func(r *domain.RegisterStartupRequest) { r.ProjectID = "" }},
		{"URL inválida", func(r *domain.RegisterStartupRequest) { r.WebsiteURL = "não é uma url" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			request := validRequest()
			tc.mutate(request)

			response, err := service.RegisterStartup(request)
			assert.Nil(t, response)

			var regErr *RegistrationError
			require.ErrorAs(t, err, &regErr)
			assert.Equal(t, apiErrors.ErrInvalidRequest, regErr.Code)
		})
	}
}

func TestRegisterStartupProjectAlreadyTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	// A duplicidade é detectada antes de qualquer chamada ao RevenueCat ou
	// trabalho criptográfico
	m.credentialRepo.EXPECT().IsProjectIDTaken("proj123").Return(true, nil)

	response, err := service.RegisterStartup(validRequest())
	assert.Nil(t, response)

	var regErr *RegistrationError
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, apiErrors.ErrProjectAlreadyTaken, regErr.Code)
	assert.ErrorIs(t, err, ErrProjectAlreadyRegistered)
}

func TestRegisterStartupCredentialRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.credentialRepo.EXPECT().IsProjectIDTaken("proj123").Return(false, nil)
	m.rcService.EXPECT().
		GetRevenueMetrics("sk_valid_key", "proj123").
		Return(nil, rcdomain.NewInvalidCredentialError(401, "Invalid API key."))

	response, err := service.RegisterStartup(validRequest())
	assert.Nil(t, response)

	var regErr *RegistrationError
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, apiErrors.ErrInvalidCredential, regErr.Code)
}

func TestRegisterStartupRevenueCatUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.credentialRepo.EXPECT().IsProjectIDTaken("proj123").Return(false, nil)
	m.rcService.EXPECT().
		GetRevenueMetrics("sk_valid_key", "proj123").
		Return(nil, rcdomain.NewTransientError(503, "indisponível"))

	response, err := service.RegisterStartup(validRequest())
	assert.Nil(t, response)

	var regErr *RegistrationError
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, apiErrors.ErrExternalService, regErr.Code)
}

func TestRegisterStartupConcurrentProjectRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.credentialRepo.EXPECT().IsProjectIDTaken("proj123").Return(false, nil)
	m.rcService.EXPECT().
		GetRevenueMetrics("sk_valid_key", "proj123").
		Return(&rcdomain.RevenueMetrics{TotalRevenue: 10, MRR: 1}, nil)

	m.startupRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(startup *domain.Startup) (*domain.Startup, error) {
			startup.ID = 7
			return startup, nil
		})

	// O cadastro concorrente venceu a corrida: a constraint única rejeita e
	// a startup órfã é desfeita
	m.credentialRepo.EXPECT().Upsert(gomock.Any()).Return(repository.ErrProjectIDTaken)
	m.startupRepo.EXPECT().Delete(int64(7)).Return(nil)

	response, err := service.RegisterStartup(validRequest())
	assert.Nil(t, response)

	var regErr *RegistrationError
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, apiErrors.ErrProjectAlreadyTaken, regErr.Code)
}

func TestRegisterStartupDatabaseFailureOnLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.credentialRepo.EXPECT().IsProjectIDTaken("proj123").Return(false, errors.New("conexão perdida"))

	response, err := service.RegisterStartup(validRequest())
	assert.Nil(t, response)

	var regErr *RegistrationError
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, regErr.Code)
}
