package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/sw33tLie/vitalis/internal/utils"
	"github.com/sw33tLie/vitalis/pkg/dashboard"
	"github.com/sw33tLie/vitalis/pkg/fast"
	"github.com/sw33tLie/vitalis/pkg/history"
	"github.com/sw33tLie/vitalis/pkg/hospitals"
	"github.com/sw33tLie/vitalis/pkg/report"
	"github.com/sw33tLie/vitalis/pkg/screening"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	render(w, homePage(s.language()))
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	if s.session != nil && s.session.State() == screening.Active {
		s.session.Cancel()
	}
	s.session = screening.New(s.lang, s.store, screening.WithClock(s.now))
	s.voice = voiceCursor{}
	s.mu.Unlock()

	http.Redirect(w, r, "/screening", http.StatusSeeOther)
}

func (s *Server) handleScreening(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	sess := s.session
	if sess == nil || sess.State() != screening.Active {
		s.mu.Unlock()
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	n, total := sess.Progress()
	view := screeningView{
		Lang:     sess.Language(),
		Question: sess.Question(),
		Step:     n,
		Total:    total,
	}
	s.mu.Unlock()

	render(w, screeningPage(view))
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	a, err := fast.ParseAnswer(r.FormValue("answer"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.submit(w, r, func(sess *screening.Session) (bool, *history.Record, error) {
		rec, err := sess.Submit(r.Context(), a)
		return true, rec, err
	})
}

// handleVoice receives the browser's running transcript. A transcript with no
// new keyword leaves the session untouched. Posts carrying a step other than
// the current one are late updates for an answered question and are ignored.
func (s *Server) handleVoice(w http.ResponseWriter, r *http.Request) {
	transcript := strings.TrimSpace(r.FormValue("transcript"))
	step, hasStep := formStep(r)
	s.submit(w, r, func(sess *screening.Session) (bool, *history.Record, error) {
		if n, _ := sess.Progress(); hasStep && step != n {
			return false, nil, nil
		}
		return screening.NewVoiceBridge(sess, &s.voice).Update(r.Context(), s.voice.unheard(transcript))
	})
}

func formStep(r *http.Request) (int, bool) {
	v := r.FormValue("step")
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (s *Server) submit(w http.ResponseWriter, r *http.Request, fn func(*screening.Session) (bool, *history.Record, error)) {
	s.mu.Lock()
	sess := s.session
	if sess == nil {
		s.mu.Unlock()
		http.Error(w, "no screening in progress", http.StatusConflict)
		return
	}
	matched, rec, err := fn(sess)
	if rec != nil {
		s.last = rec
	}
	s.mu.Unlock()

	switch {
	case errors.Is(err, screening.ErrSessionCompleted), errors.Is(err, screening.ErrSessionCancelled):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case errors.Is(err, screening.ErrInvalidAnswer):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil && rec == nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	case err != nil:
		utils.Log.Warnf("Screening completed but not saved: %v", err)
	}

	if !matched {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if rec != nil {
		http.Redirect(w, r, "/result", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/screening", http.StatusSeeOther)
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	if s.session != nil {
		s.session.Cancel()
	}
	s.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	rec := s.lastRecord()
	if rec == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	render(w, resultPage(s.language(), *rec))
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	stats := dashboard.Load(r.Context(), s.store)
	render(w, dashboardPage(s.language(), stats))
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Clear(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.Log.Info("Screening history cleared")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// handleHospitals accepts optional lat/lng query values, standing in for the
// browser's geolocation.
func (s *Server) handleHospitals(w http.ResponseWriter, r *http.Request) {
	locator := s.locator
	if loc, ok := queryLocation(r); ok {
		locator = hospitals.FixedLocator{Location: &loc}
	}
	loc, fallback := hospitals.Resolve(r.Context(), locator)
	if fallback {
		utils.Log.Debugf("Position unavailable, using %s", loc)
	}

	list, err := s.finder.FindNearby(r.Context(), loc)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	render(w, hospitalsPage(s.language(), loc, list))
}

// writeReport renders the PDF; replaced in tests.
var writeReport = report.Write

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	rec := s.lastRecord()
	if rec == nil {
		http.Error(w, "no completed screening", http.StatusNotFound)
		return
	}
	now := s.now()

	var buf bytes.Buffer
	if err := writeReport(&buf, *rec, now); err != nil {
		utils.Log.Warnf("Could not export report: %v", err)
		http.Error(w, "could not generate report: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+report.Filename(now)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		utils.Log.Debugf("Could not send report: %v", err)
	}
}

func (s *Server) handleAPIHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.store.ReadAll(r.Context()))
}

func (s *Server) handleAPIDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, dashboard.Load(r.Context(), s.store))
}

func (s *Server) lastRecord() *history.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func queryLocation(r *http.Request) (hospitals.Location, bool) {
	q := r.URL.Query()
	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		return hospitals.Location{}, false
	}
	lng, err := strconv.ParseFloat(q.Get("lng"), 64)
	if err != nil {
		return hospitals.Location{}, false
	}
	return hospitals.Location{Lat: lat, Lng: lng}, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		utils.Log.Debugf("Could not encode response: %v", err)
	}
}
