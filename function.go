// Package marketresearch exposes the HTTP entry point used by Cloud Functions.
package marketresearch

import (
	"net/http"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"github.com/MargotLh/market-research-assistant/internal/transport/server"
)

func init() {
	functions.HTTP("ResearchIndustry", ResearchIndustry)
}

// ResearchIndustry handles a single HTTP request in the Cloud Functions runtime.
func ResearchIndustry(w http.ResponseWriter, r *http.Request) {
	server.HandleRequest(w, r)
}
