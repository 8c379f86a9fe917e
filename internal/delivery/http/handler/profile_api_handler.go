package handler

import (
	"net/http"

	"medical-profile-qr/internal/converter"
	"medical-profile-qr/internal/usecase"
	"medical-profile-qr/pkg/response"

	"github.com/gorilla/mux"
)

// ProfileAPIHandler exposes the read-only JSON projection of profiles.
type ProfileAPIHandler struct {
	profileUsecase usecase.MedicalProfileUsecase
}

func NewProfileAPIHandler(profileUsecase usecase.MedicalProfileUsecase) *ProfileAPIHandler {
	return &ProfileAPIHandler{
		profileUsecase: profileUsecase,
	}
}

func (h *ProfileAPIHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	profile, err := h.profileUsecase.Get(r.Context(), username)
	if err != nil {
		switch err {
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Medical profile not found")
		default:
			response.InternalServerError(w, "Failed to load profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", converter.ProfileToResponse(profile))
}
