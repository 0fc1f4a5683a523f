package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-leaderboard-api/internal/domain"
	"github.com/vfg2006/revenue-leaderboard-api/internal/usecases/registering"
	"github.com/vfg2006/revenue-leaderboard-api/pkg/apiErrors"
)

// RegisterStartup cadastra uma nova startup no leaderboard
func RegisterStartup(service registering.RegisteringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RegisterStartup")

		w.Header().Set("Content-Type", "application/json")

		var request domain.RegisterStartupRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		response, err := service.RegisterStartup(&request)
		if err != nil {
			logrus.Error("Error registering startup:", err)

			// Verificar se é um RegistrationError para obter o código específico
			var regErr *registering.RegistrationError
			if errors.As(err, &regErr) {
				apiErrors.WriteError(w, regErr.Code, regErr.Error(), nil)
				return
			}

			switch {
			case errors.Is(err, registering.ErrProjectAlreadyRegistered):
				apiErrors.WriteError(w, apiErrors.ErrProjectAlreadyTaken, "Projeto já cadastrado por outra startup", nil)

			case errors.Is(err, registering.ErrCredentialRejected):
				apiErrors.WriteError(w, apiErrors.ErrInvalidCredential, "Chave de API rejeitada pelo RevenueCat", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao cadastrar startup", nil)
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error("Erro ao enviar resposta do cadastro:", err)
		}
	})
}
