package controllers

import (
	"net/http"

	"github.com/angelmondragon/storefront-backend/api/responses"
	"github.com/angelmondragon/storefront-backend/internal/storeinfo"
)

type storeInfoProvider interface {
	Info() storeinfo.Info
}

// ContactInfo serves the static contact details and store policies.
func ContactInfo(svc storeInfoProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Info())
	}
}
