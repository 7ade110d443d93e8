package handlers

import "net/http"

// PagesHandler serves the static informational pages. Rendering is left to
// the frontend; these endpoints only provide the page content.
type PagesHandler struct{}

func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "home", "Wrestling Hub",
		"Home of the wrestling team and booster club. Check the schedule, meet the athletes, and support the program.")
}

func (h *PagesHandler) About(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "about", "About the Program",
		"Our program develops student athletes on and off the mat, with support from families, alumni and the booster club.")
}

func (h *PagesHandler) Donations(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "donations", "Support the Team",
		"Donations fund travel, equipment and tournament fees. Every contribution goes directly to the athletes.")
}

func (h *PagesHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "contact", "Contact Us",
		"Questions about the program? Send us a message and we will get back to you.")
}

func (h *PagesHandler) renderPage(w http.ResponseWriter, r *http.Request, page, title, body string) {
	response := jsonResponse{
		"page":  page,
		"title": title,
		"body":  body,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
