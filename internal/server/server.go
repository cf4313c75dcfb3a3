package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/sw33tLie/vitalis/internal/utils"
	"github.com/sw33tLie/vitalis/pkg/history"
	"github.com/sw33tLie/vitalis/pkg/hospitals"
	"github.com/sw33tLie/vitalis/pkg/i18n"
	"github.com/sw33tLie/vitalis/pkg/screening"
)

// Config wires the server to its collaborators. Finder and Locator default to
// the static hospital list and the fallback location.
type Config struct {
	Store    *history.Store
	Finder   hospitals.Finder
	Locator  hospitals.Locator
	Language i18n.Language
	Now      func() time.Time
}

// Server presents the single local screening session over HTTP.
type Server struct {
	mu      sync.Mutex
	store   *history.Store
	finder  hospitals.Finder
	locator hospitals.Locator
	lang    i18n.Language
	now     func() time.Time

	session *screening.Session
	voice   voiceCursor
	last    *history.Record
}

func New(cfg Config) *Server {
	s := &Server{
		store:   cfg.Store,
		finder:  cfg.Finder,
		locator: cfg.Locator,
		lang:    cfg.Language,
		now:     cfg.Now,
	}
	if s.finder == nil {
		s.finder = hospitals.NewStaticFinder()
	}
	if s.locator == nil {
		s.locator = hospitals.FixedLocator{}
	}
	if s.lang == "" {
		s.lang = i18n.Default
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("POST /screening", s.handleStart)
	mux.HandleFunc("GET /screening", s.handleScreening)
	mux.HandleFunc("POST /screening/answer", s.handleAnswer)
	mux.HandleFunc("POST /screening/voice", s.handleVoice)
	mux.HandleFunc("POST /screening/cancel", s.handleCancel)
	mux.HandleFunc("GET /result", s.handleResult)
	mux.HandleFunc("GET /dashboard", s.handleDashboard)
	mux.HandleFunc("POST /dashboard/clear", s.handleClear)
	mux.HandleFunc("GET /hospitals", s.handleHospitals)
	mux.HandleFunc("GET /report.pdf", s.handleReport)

	// API Group
	mux.HandleFunc("GET /api/history", s.handleAPIHistory)
	mux.HandleFunc("GET /api/dashboard", s.handleAPIDashboard)

	return s.withLanguage(mux)
}

func (s *Server) Start(addr string) error {
	utils.Log.Infof("Starting server on http://%s", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// withLanguage makes ?lang= sticky for every later request.
func (s *Server) withLanguage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if v := r.URL.Query().Get("lang"); v != "" {
			s.mu.Lock()
			s.lang = i18n.ParseLanguage(v)
			s.mu.Unlock()
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) language() i18n.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}
