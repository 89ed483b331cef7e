// Package ping contains handlers for pinging the server
package ping

import (
	"net/http"

	mJson "github.com/matt-dz/foodgram/internal/json"
)

type Response struct {
	Status string `json:"status"`
}

// HandlePing godoc
//
//	@Summary	Ping endpoint.
//	@Tags		Ping
//	@Produce	json
//
//	@Success	200	{object}	Response
//	@Router		/api/ping [GET]
func HandlePing(w http.ResponseWriter, r *http.Request) {
	_ = mJson.WriteJSON(w, http.StatusOK, Response{Status: "ok"})
}
