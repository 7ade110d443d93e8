package handlers

import (
	"net/http"

	"github.com/djruiz44/wrestling-hub/services"
)

type ContactHandler struct {
	contactService services.ContactService
}

func NewContactHandler(contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// Submit persists the message and reports the notification outcome
// separately: a failed email never fails the request.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input services.ContactInput

	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.contactService.Submit(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"message":         "Message sent!",
		"contact_message": result.Message,
		"notified":        result.Notified,
	}
	if !result.Notified {
		response["message"] = "Message saved."
		response["warning"] = "Could not send notification email."
	}

	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
