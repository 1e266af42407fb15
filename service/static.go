package service

import (
	"net/http"

	"cosmicdevspace/pkg/logger"
)

// RunStaticServer runs a plain static file server, used to host the
// frontend assets separately from the API.
func RunStaticServer(staticDir, addr string) {
	log := logger.New()

	log.Info().Str("addr", addr).Str("dir", staticDir).Msg("starting static file server")
	handler := http.FileServer(http.Dir(staticDir))
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal().Err(err).Msg("static server error")
	}
}
