package handler

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"medical-profile-qr/internal/converter"
	"medical-profile-qr/internal/delivery/dto"
	"medical-profile-qr/internal/delivery/web"
	"medical-profile-qr/internal/domain/entity"
	"medical-profile-qr/internal/service"
	"medical-profile-qr/internal/usecase"
	"medical-profile-qr/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type ProfileHandler struct {
	profileUsecase usecase.MedicalProfileUsecase
	qrService      service.QRService
	renderer       *web.Renderer
	validator      *validator.CustomValidator
	baseURL        string
}

func NewProfileHandler(
	profileUsecase usecase.MedicalProfileUsecase,
	qrService service.QRService,
	renderer *web.Renderer,
	validator *validator.CustomValidator,
	baseURL string,
) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		qrService:      qrService,
		renderer:       renderer,
		validator:      validator,
		baseURL:        baseURL,
	}
}

type formPage struct {
	Form       dto.CreateProfileRequest
	BloodTypes []string
	Error      string
}

type profilePage struct {
	Profile   *dto.ProfileResponse
	QRCodeURL string
}

type editPage struct {
	Profile    *dto.ProfileResponse
	BloodTypes []string
	Error      string
}

type notFoundPage struct {
	Username string
}

type errorPage struct {
	Message string
}

func (h *ProfileHandler) ShowCreateForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "form", formPage{BloodTypes: entity.BloodTypes})
}

func (h *ProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, http.StatusOK, "form", formPage{
			BloodTypes: entity.BloodTypes,
			Error:      "Could not read the submitted form. Please try again.",
		})
		return
	}

	req := dto.CreateProfileRequest{
		Username:           r.FormValue("username"),
		Name:               r.FormValue("name"),
		BloodType:          r.FormValue("blood_type"),
		Allergy:            r.FormValue("allergy"),
		Condition:          r.FormValue("condition"),
		EmergencyContact:   r.FormValue("emergency_contact"),
		LastCheckupDate:    r.FormValue("last_checkup_date"),
		LastCheckupDetails: r.FormValue("last_checkup_details"),
	}

	if err := h.validator.Validate(&req); err != nil {
		h.render(w, http.StatusOK, "form", formPage{
			Form:       req,
			BloodTypes: entity.BloodTypes,
			Error:      h.validationMessage(err),
		})
		return
	}

	username, err := h.profileUsecase.Create(r.Context(), &req)
	if err != nil {
		h.render(w, http.StatusOK, "form", formPage{
			Form:       req,
			BloodTypes: entity.BloodTypes,
			Error:      "An error occurred while creating your profile. Please try again.",
		})
		return
	}

	http.Redirect(w, r, "/profile/"+username, http.StatusSeeOther)
}

func (h *ProfileHandler) ViewProfile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	profile, err := h.profileUsecase.Get(r.Context(), username)
	if err != nil {
		h.renderProfileError(w, username, err)
		return
	}

	qrCodeURL, err := h.qrService.Ensure(username, h.baseURL+"/profile/"+username)
	if err != nil {
		logrus.Errorf("Failed to ensure QR artifact for %s: %+v", username, err)
		h.render(w, http.StatusInternalServerError, "error", errorPage{
			Message: "Could not generate the QR code for this profile. Please try again.",
		})
		return
	}

	h.render(w, http.StatusOK, "profile", profilePage{
		Profile:   converter.ProfileToResponse(profile),
		QRCodeURL: qrCodeURL,
	})
}

func (h *ProfileHandler) ShowEditForm(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	profile, err := h.profileUsecase.Get(r.Context(), username)
	if err != nil {
		h.renderProfileError(w, username, err)
		return
	}

	h.render(w, http.StatusOK, "edit_checkup", editPage{
		Profile:    converter.ProfileToResponse(profile),
		BloodTypes: entity.BloodTypes,
	})
}

func (h *ProfileHandler) UpdateCheckup(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	if err := r.ParseForm(); err != nil {
		h.renderEditError(w, r, username, "Could not read the submitted form. Please try again.")
		return
	}

	req := dto.UpdateCheckupRequest{
		LastCheckupDate:    r.FormValue("last_checkup_date"),
		LastCheckupDetails: r.FormValue("last_checkup_details"),
		DoctorNotes:        r.FormValue("doctor_notes"),
		BloodType:          r.FormValue("blood_type"),
		Allergy:            r.FormValue("allergy"),
		Condition:          r.FormValue("condition"),
	}

	if err := h.validator.Validate(&req); err != nil {
		h.renderEditError(w, r, username, h.validationMessage(err))
		return
	}

	if err := h.profileUsecase.UpdateCheckup(r.Context(), username, &req); err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			h.render(w, http.StatusNotFound, "not_found", notFoundPage{Username: username})
			return
		}
		h.renderEditError(w, r, username, "Failed to update checkup information. Please try again.")
		return
	}

	http.Redirect(w, r, "/profile/"+username, http.StatusSeeOther)
}

// NotFoundPage is the catch-all for unmatched routes.
func (h *ProfileHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusNotFound, "not_found", notFoundPage{})
}

// renderEditError re-renders the edit form, pre-filled from storage,
// with a user-facing message.
func (h *ProfileHandler) renderEditError(w http.ResponseWriter, r *http.Request, username string, message string) {
	profile, err := h.profileUsecase.Get(r.Context(), username)
	if err != nil {
		h.renderProfileError(w, username, err)
		return
	}
	h.render(w, http.StatusOK, "edit_checkup", editPage{
		Profile:    converter.ProfileToResponse(profile),
		BloodTypes: entity.BloodTypes,
		Error:      message,
	})
}

func (h *ProfileHandler) renderProfileError(w http.ResponseWriter, username string, err error) {
	if errors.Is(err, usecase.ErrProfileNotFound) {
		h.render(w, http.StatusNotFound, "not_found", notFoundPage{Username: username})
		return
	}
	h.render(w, http.StatusInternalServerError, "error", errorPage{
		Message: "Profile data could not be loaded. Please try again later.",
	})
}

// validationMessage flattens the per-field validation errors into one
// user-facing message, in stable field order.
func (h *ProfileHandler) validationMessage(err error) string {
	fieldErrors := h.validator.FormatValidationErrors(err)
	if len(fieldErrors) == 0 {
		return "Some fields are invalid. Please check your input and try again."
	}

	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, fieldErrors[field])
	}
	return strings.Join(messages, "; ")
}

func (h *ProfileHandler) render(w http.ResponseWriter, statusCode int, page string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := h.renderer.Render(w, page, data); err != nil {
		logrus.Errorf("Failed to render page %s: %+v", page, err)
	}
}
