package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/yzho285/public-holidays-display/internal/export"
	"github.com/yzho285/public-holidays-display/internal/journal"
	"github.com/yzho285/public-holidays-display/internal/model"
	"github.com/yzho285/public-holidays-display/internal/query"
	"github.com/yzho285/public-holidays-display/internal/resolver"
)

// holidaysParams are the four consumer inputs that fully determine the
// served set, plus the export format.
type holidaysParams struct {
	Province string `validate:"required,len=2,alpha"`
	Start    string `validate:"required,datetime=2006-01-02"`
	End      string `validate:"required,datetime=2006-01-02"`
	Search   string
	Filter   string `validate:"omitempty,oneof=all federal provincial statutory"`
}

// paramsFrom reads query parameters, defaulting the range to the current
// calendar year when absent.
func paramsFrom(r *http.Request) holidaysParams {
	q := r.URL.Query()
	p := holidaysParams{
		Province: q.Get("province"),
		Start:    q.Get("start"),
		End:      q.Get("end"),
		Search:   q.Get("search"),
		Filter:   q.Get("filter"),
	}
	if p.Start == "" && p.End == "" {
		year := time.Now().UTC().Year()
		p.Start = fmt.Sprintf("%d-01-01", year)
		p.End = fmt.Sprintf("%d-12-31", year)
	}
	return p
}

func (s *Server) resolveParams(w http.ResponseWriter, r *http.Request) (resolver.Resolution, holidaysParams, bool) {
	p := paramsFrom(r)
	if err := s.validate.Struct(p); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid parameters: %v", err))
		return resolver.Resolution{}, p, false
	}

	start, _ := model.ParseDate(p.Start)
	end, _ := model.ParseDate(p.End)

	res, err := s.resolver.Resolve(r.Context(), p.Province, start, end)
	switch {
	case errors.Is(err, resolver.ErrUnknownProvince), errors.Is(err, resolver.ErrInvalidRange):
		writeError(w, http.StatusBadRequest, err.Error())
		return resolver.Resolution{}, p, false
	case err != nil:
		s.logger.Error("resolve failed", "province", p.Province, "err", err)
		writeError(w, http.StatusInternalServerError, "resolution failed")
		return resolver.Resolution{}, p, false
	}

	res.Holidays = query.Apply(res.Holidays, p.Search, query.Filter(p.Filter))
	return res, p, true
}

func (s *Server) handleHolidays(w http.ResponseWriter, r *http.Request) {
	res, p, ok := s.resolveParams(w, r)
	if !ok {
		return
	}

	payload := struct {
		Province string          `json:"province"`
		Start    string          `json:"start"`
		End      string          `json:"end"`
		Source   string          `json:"source"`
		Note     string          `json:"note,omitempty"`
		Count    int             `json:"count"`
		Holidays []model.Holiday `json:"holidays"`
	}{
		Province: p.Province,
		Start:    p.Start,
		End:      p.End,
		Source:   string(res.Source),
		Count:    len(res.Holidays),
		Holidays: res.Holidays,
	}
	if res.Source == resolver.SourceFallback {
		payload.Note = "showing offline data"
	}
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "csv" && format != "ics" {
		writeError(w, http.StatusBadRequest, "format must be csv or ics")
		return
	}

	res, p, ok := s.resolveParams(w, r)
	if !ok {
		return
	}

	filename := fmt.Sprintf("canadian_holidays_%s_%s.%s",
		p.Province, time.Now().UTC().Format(model.DateLayout), format)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	switch format {
	case "csv":
		body, err := export.CSV(res.Holidays)
		if err != nil {
			s.logger.Error("csv export failed", "err", err)
			writeError(w, http.StatusInternalServerError, "export failed")
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Write([]byte(body))
	case "ics":
		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Write([]byte(export.ICS(res.Holidays, p.Province)))
	}
}

func (s *Server) handleProvinces(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.Provinces)
}

func (s *Server) handleResolutions(w http.ResponseWriter, r *http.Request) {
	if s.journal == nil {
		writeError(w, http.StatusNotFound, "resolution journal disabled")
		return
	}
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 1000 {
			writeError(w, http.StatusBadRequest, "limit must be 1..1000")
			return
		}
		limit = n
	}
	rows, err := s.journal.Recent(limit)
	if err != nil {
		s.logger.Error("journal query failed", "err", err)
		writeError(w, http.StatusInternalServerError, "journal unavailable")
		return
	}
	if rows == nil {
		rows = []journal.Row{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
