package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dgallion1/ziransort/internal/token"
)

// optionsJSON carries policy names; empty fields use server defaults.
type optionsJSON struct {
	NumberStringPolicy  string `json:"numberStringPolicy"`
	ChineseNumberPolicy string `json:"chineseNumberPolicy"`
}

type compareRequest struct {
	A       string      `json:"a"`
	B       string      `json:"b"`
	Options optionsJSON `json:"options"`
}

type sortRequest struct {
	Items   []string    `json:"items"`
	Options optionsJSON `json:"options"`
	Reverse bool        `json:"reverse"`
}

type tokenizeRequest struct {
	Text string `json:"text"`
}

type tokenJSON struct {
	Kind     string `json:"kind"`
	Raw      string `json:"raw"`
	Notation string `json:"notation,omitempty"`
	Value    string `json:"value,omitempty"`
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	c, err := s.comparator(req.Options.NumberStringPolicy, req.Options.ChineseNumberPolicy, false)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"result": c.Compare(req.A, req.B)})
}

func (s *Server) handleSort(w http.ResponseWriter, r *http.Request) {
	var req sortRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if len(req.Items) > s.cfg.MaxSortItems {
		jsonError(w, fmt.Sprintf("too many items (max %d)", s.cfg.MaxSortItems), http.StatusRequestEntityTooLarge)
		return
	}
	c, err := s.comparator(req.Options.NumberStringPolicy, req.Options.ChineseNumberPolicy, req.Reverse)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	items := req.Items
	if items == nil {
		items = []string{}
	}
	c.Sort(items)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"items": items})
}

func (s *Server) handleTokenize(w http.ResponseWriter, r *http.Request) {
	var req tokenizeRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	tokens := []tokenJSON{}
	for _, t := range token.Tokenize(req.Text) {
		tokens = append(tokens, tokenJSON{
			Kind:     t.Kind.String(),
			Raw:      t.Raw,
			Notation: t.Notation.String(),
			Value:    t.Digits(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"tokens": tokens})
}

// decodeJSON reads a size-limited JSON body into v. It writes the error
// response itself and reports whether decoding succeeded.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, fmt.Sprintf("request body exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
			return false
		}
		jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
