package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPrefix is where the profiling endpoints are served. pprof.Index only
// resolves named profiles (heap, goroutine, ...) below this exact path.
const PprofPrefix = "/debug/pprof"

// PprofMux returns an http.ServeMux serving net/http/pprof below PprofPrefix.
// Mount it on PprofPrefix + "/" without stripping the prefix.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc(PprofPrefix+"/", pprof.Index)
	mux.HandleFunc(PprofPrefix+"/cmdline", pprof.Cmdline)
	mux.HandleFunc(PprofPrefix+"/profile", pprof.Profile)
	mux.HandleFunc(PprofPrefix+"/symbol", pprof.Symbol)
	mux.HandleFunc(PprofPrefix+"/trace", pprof.Trace)

	return mux
}
