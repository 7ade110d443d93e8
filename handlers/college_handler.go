package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/djruiz44/wrestling-hub/services"
	"github.com/go-chi/chi/v5"
)

const maxLogoUploadBytes = 5 << 20 // 5MB

type CollegeHandler struct {
	collegeService services.CollegeService
}

func NewCollegeHandler(collegeService services.CollegeService) *CollegeHandler {
	return &CollegeHandler{
		collegeService: collegeService,
	}
}

func (h *CollegeHandler) List(w http.ResponseWriter, r *http.Request) {
	colleges, err := h.collegeService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"colleges": colleges}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UploadLogo accepts a multipart "logo" file and stores it as the college's
// logo, replacing any previous one.
func (h *CollegeHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	collegeID, err := strconv.Atoi(chi.URLParam(r, "collegeID"))
	if err != nil || collegeID <= 0 {
		badRequestResponse(w, r, errors.New("invalid college id"))
		return
	}

	if err := r.ParseMultipartForm(maxLogoUploadBytes); err != nil {
		badRequestResponse(w, r, errors.New("request must be multipart form data with a 'logo' file"))
		return
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		badRequestResponse(w, r, errors.New("missing 'logo' file"))
		return
	}
	defer file.Close()

	college, err := h.collegeService.UploadLogo(r.Context(), collegeID, header.Header.Get("Content-Type"), file)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"college": college}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
