package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/davidc77/devhub/internal/domain"
	"github.com/davidc77/devhub/internal/service"
	"github.com/davidc77/devhub/internal/transport/http/middleware"
	"github.com/davidc77/devhub/pkg/validator"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	profile, err := h.profileService.GetMine(r.Context(), userID)
	if err != nil {
		h.writeProfileError(w, "get own profile", err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var input service.UpsertProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateProfile(input.Status, input.Skills); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	profile, err := h.profileService.Upsert(r.Context(), userID, input)
	if err != nil {
		log.Printf("ERROR upsert profile: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileService.List(r.Context())
	if err != nil {
		log.Printf("ERROR list profiles: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	if profiles == nil {
		profiles = []domain.Profile{}
	}

	writeJSON(w, http.StatusOK, profiles)
}

func (h *ProfileHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	profile, err := h.profileService.GetByUser(r.Context(), userID)
	if err != nil {
		h.writeProfileError(w, "get profile", err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) AddExperience(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var input service.ExperienceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateExperience(input.Title, input.Company, input.From); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	profile, err := h.profileService.AddExperience(r.Context(), userID, input)
	if err != nil {
		h.writeProfileError(w, "add experience", err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) RemoveExperience(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	expID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid experience ID")
		return
	}

	profile, err := h.profileService.RemoveExperience(r.Context(), userID, expID)
	if err != nil {
		h.writeProfileError(w, "remove experience", err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) AddEducation(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var input service.EducationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateEducation(input.School, input.Degree, input.FieldOfStudy, input.From); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	profile, err := h.profileService.AddEducation(r.Context(), userID, input)
	if err != nil {
		h.writeProfileError(w, "add education", err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) RemoveEducation(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	eduID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid education ID")
		return
	}

	profile, err := h.profileService.RemoveEducation(r.Context(), userID, eduID)
	if err != nil {
		h.writeProfileError(w, "remove education", err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if err := h.profileService.DeleteAccount(r.Context(), userID); err != nil {
		log.Printf("ERROR delete account: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"msg": "Account removed"})
}

func (h *ProfileHandler) writeProfileError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrProfileNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "There is no profile for this user")
	case errors.Is(err, service.ErrEntryNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Profile entry not found")
	case errors.Is(err, service.ErrNotEntryOwner):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "You can only remove your own entries")
	default:
		log.Printf("ERROR %s: %v", op, err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
	}
}
