package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/angelmondragon/storefront-backend/api/responses"
	"github.com/angelmondragon/storefront-backend/api/validators"
	"github.com/angelmondragon/storefront-backend/internal/search"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
)

type searchResolver interface {
	SearchFor(sessionID uuid.UUID) *search.State
}

type updateSearchPayload struct {
	Query   *string `json:"query" validate:"omitempty,max=120"`
	Visible *bool   `json:"visible"`
}

type searchResponse struct {
	search.Snapshot
	ShownOnPage *bool `json:"shown_on_page,omitempty"`
}

func searchView(state *search.State, path string) searchResponse {
	resp := searchResponse{Snapshot: state.Snapshot()}
	if path != "" {
		shown := state.VisibleOn(path)
		resp.ShownOnPage = &shown
	}
	return resp
}

// SearchFetch returns the shopper's search state. With ?path= it also reports
// whether the bar renders on that page.
func SearchFetch(states searchResolver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		path := validators.QueryString(r, "path", 256)
		responses.WriteSuccess(w, searchView(states.SearchFor(sessionID), path))
	}
}

// SearchUpdate sets the query and toggles the bar. Omitted fields are untouched;
// an empty query clears it.
func SearchUpdate(states searchResolver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sessionID, ok := requireSession(w, r, logg)
		if !ok {
			return
		}

		var payload updateSearchPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		state := states.SearchFor(sessionID)
		if payload.Query != nil {
			if *payload.Query == "" {
				state.Clear()
			} else {
				state.SetQuery(*payload.Query)
			}
		}
		if payload.Visible != nil {
			if *payload.Visible {
				state.Show()
			} else {
				state.Hide()
			}
		}
		responses.WriteSuccess(w, searchView(state, ""))
	}
}
