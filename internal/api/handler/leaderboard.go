package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-leaderboard-api/infrastructure/repository"
	"github.com/vfg2006/revenue-leaderboard-api/internal/usecases/leaderboarding"
	"github.com/vfg2006/revenue-leaderboard-api/pkg/apiErrors"
)

// GetLeaderboard retorna o ranking público de startups por receita
func GetLeaderboard(service leaderboarding.LeaderboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		leaderboard, err := service.GetLeaderboard()
		if err != nil {
			logrus.Error("Erro ao buscar ranking de startups:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking de startups", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(leaderboard); err != nil {
			logrus.Error("Erro ao enviar resposta do ranking:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetStartupBySlug retorna o perfil público de uma startup cadastrada
func GetStartupBySlug(service leaderboarding.LeaderboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")
		if slug == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Slug da startup é obrigatório", nil)
			return
		}

		startup, err := service.GetStartup(slug)
		if err != nil {
			if errors.Is(err, repository.ErrStartupNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrStartupNotFound, "Startup não encontrada", nil)
				return
			}

			logrus.Error("Erro ao buscar startup:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar startup", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(startup); err != nil {
			logrus.Error("Erro ao enviar resposta da startup:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
