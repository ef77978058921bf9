// Package web serves the calculators, the checklist and the theme toggle as
// server-rendered pages. Every browser keeps its own state in cookies.
package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"maragu.dev/gomponents"

	"github.com/idilsaglam/benchkit/internal/calc"
	"github.com/idilsaglam/benchkit/internal/checklist"
	"github.com/idilsaglam/benchkit/internal/model"
	"github.com/idilsaglam/benchkit/internal/theme"
)

// schemeHint is the client hint carrying the OS color scheme preference.
const schemeHint = "Sec-CH-Prefers-Color-Scheme"

// Options configure a Handler.
type Options struct {
	Checklist []model.Item
	Logger    *zap.Logger
	// RateLimit and Burst bound the JSON API. Zero means 10 req/s, burst 20.
	RateLimit rate.Limit
	Burst     int
	// AllowedOrigins for the JSON API; empty allows any origin.
	AllowedOrigins []string
}

type Handler struct {
	items   []model.Item
	log     *zap.Logger
	limiter *rate.Limiter
	origins []string
}

func NewHandler(opt Options) *Handler {
	log := opt.Logger
	if log == nil {
		log = zap.NewNop()
	}
	items := opt.Checklist
	if len(items) == 0 {
		items = checklist.Defaults
	}
	limit, burst := opt.RateLimit, opt.Burst
	if limit == 0 {
		limit = 10
	}
	if burst == 0 {
		burst = 20
	}
	origins := opt.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return &Handler{
		items:   items,
		log:     log,
		limiter: rate.NewLimiter(limit, burst),
		origins: origins,
	}
}

// session is the per-request view of a browser's stored state.
type session struct {
	theme *theme.Controller
	check *checklist.Checklist
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) session {
	st := newCookieStore(w, r)
	s := session{
		theme: theme.NewController(st, theme.Fixed(prefersDark(r)), h.log),
		check: checklist.New(st, h.items),
	}
	if err := s.check.Load(); err != nil {
		h.log.Warn("load checklist", zap.Error(err))
	}
	return s
}

func prefersDark(r *http.Request) bool {
	return strings.EqualFold(strings.Trim(r.Header.Get(schemeHint), `" `), "dark")
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	renderHTML(w, http.StatusOK, homePage(s.theme.View(), calc.All()))
}

func (h *Handler) Tools(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	q := r.URL.Query()
	cards := make([]gomponents.Node, 0, len(calc.All()))
	for _, c := range calc.All() {
		in := fieldValues(c, q, c.ID+".")
		cards = append(cards, calcCard(c, in, c.Evaluate(in), true))
	}
	renderHTML(w, http.StatusOK, toolsPage(s.theme.View(), cards))
}

func (h *Handler) Tool(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	c, err := calc.Lookup(chi.URLParam(r, "id"))
	if err != nil {
		renderHTML(w, http.StatusNotFound, notFoundPage(s.theme.View(), "No such tool."))
		return
	}
	in := fieldValues(c, r.URL.Query(), "")
	renderHTML(w, http.StatusOK, toolPage(s.theme.View(), c, calcCard(c, in, c.Evaluate(in), false)))
}

// Live answers a card's input event with its new results. The converter
// also rewrites the field opposite the one the user edited.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	c, err := calc.Lookup(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	q := r.URL.Query()
	in, err := signalValues(c, q.Get("datastar"))
	if err != nil {
		http.Error(w, "bad signals", http.StatusBadRequest)
		return
	}

	var synced map[string]string
	if c.ID == "convert" {
		switch q.Get("from") {
		case "mil":
			in["mm"] = calc.MilToMM(in["mil"])
			synced = map[string]string{"mm": in["mm"]}
		case "mm":
			in["mil"] = calc.MMToMil(in["mm"])
			synced = map[string]string{"mil": in["mil"]}
		}
	}

	es := newEventStream(w)
	if synced != nil {
		if err := es.patchSignals(map[string]any{c.ID: synced}); err != nil {
			h.log.Debug("live signals", zap.Error(err))
			return
		}
	}
	if err := es.patchElements(resultsList(c.ID, c.Evaluate(in))); err != nil {
		h.log.Debug("live results", zap.Error(err))
	}
}

// signalValues reads one calculator's fields from the datastar signals
// payload, falling back to the defaults for anything absent.
func signalValues(c calc.Calculator, raw string) (map[string]string, error) {
	in := c.Defaults()
	if raw == "" {
		return in, nil
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &all); err != nil {
		return nil, err
	}
	var mine map[string]any
	if b, ok := all[c.ID]; ok {
		if err := json.Unmarshal(b, &mine); err != nil {
			return nil, err
		}
	}
	for _, f := range c.Fields {
		switch v := mine[f.ID].(type) {
		case string:
			in[f.ID] = v
		case float64:
			in[f.ID] = strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return in, nil
}

func (h *Handler) Checklist(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	done, total := s.check.Progress()
	renderHTML(w, http.StatusOK, checklistPage(s.theme.View(), s.check.Items(), done, total))
}

func (h *Handler) CheckItem(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	id := chi.URLParam(r, "id")
	if r.URL.RawPath != "" {
		if u, err := url.PathUnescape(id); err == nil {
			id = u
		}
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	err := s.check.Set(id, r.PostForm.Get("checked") == "on")
	switch {
	case errors.Is(err, checklist.ErrUnknownItem):
		renderHTML(w, http.StatusNotFound, notFoundPage(s.theme.View(), "No such checklist item."))
		return
	case err != nil:
		h.log.Error("save checklist item", zap.String("id", id), zap.Error(err))
	}
	http.Redirect(w, r, "/checklist#"+url.PathEscape(id), http.StatusSeeOther)
}

func (h *Handler) CycleTheme(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	v := s.theme.Cycle()
	h.log.Debug("theme cycled", zap.String("setting", string(v.Setting)))
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

// backTo returns the local part of the Referer, or "/".
func backTo(r *http.Request) string {
	u, err := url.Parse(r.Referer())
	if err != nil || u.Path == "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}

func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

type apiField struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Unit    string   `json:"unit,omitempty"`
	Default string   `json:"default"`
	Options []string `json:"options,omitempty"`
}

type apiCalculator struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Summary string     `json:"summary"`
	Fields  []apiField `json:"fields"`
}

type apiResult struct {
	ID      string            `json:"id"`
	Inputs  map[string]string `json:"inputs"`
	Outputs []calc.Output     `json:"outputs"`
}

type apiError struct {
	Error string `json:"error"`
}

func (h *Handler) APICalculators(w http.ResponseWriter, _ *http.Request) {
	out := make([]apiCalculator, 0, len(calc.All()))
	for _, c := range calc.All() {
		ac := apiCalculator{ID: c.ID, Title: c.Title, Summary: c.Summary}
		for _, f := range c.Fields {
			ac.Fields = append(ac.Fields, apiField(f))
		}
		out = append(out, ac)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) APICalc(w http.ResponseWriter, r *http.Request) {
	c, err := calc.Lookup(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, apiError{Error: err.Error()})
		return
	}
	in := fieldValues(c, r.URL.Query(), "")
	writeJSON(w, http.StatusOK, apiResult{ID: c.ID, Inputs: in, Outputs: c.Evaluate(in)})
}

// fieldValues starts from the defaults and overrides every field present in
// q under prefix+id. A present but empty parameter stays empty.
func fieldValues(c calc.Calculator, q url.Values, prefix string) map[string]string {
	in := c.Defaults()
	for _, f := range c.Fields {
		if q.Has(prefix + f.ID) {
			in[f.ID] = q.Get(prefix + f.ID)
		}
	}
	return in
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
