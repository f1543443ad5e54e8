package httpd

import (
	"encoding/json"
	"net/http"
	"strings"

	"mediashelf/internal/catalog"
	"mediashelf/internal/logging"
	"mediashelf/internal/services"
)

type lookupResponse struct {
	Kind   catalog.Kind    `json:"kind"`
	IDKind string          `json:"id_kind"`
	Value  string          `json:"value"`
	Result json.RawMessage `json:"result"`
}

type metadataResponse struct {
	Kind   catalog.Kind `json:"kind"`
	Field  string       `json:"field"`
	Values []string     `json:"values"`
	Total  int          `json:"total"`
}

type itemsResponse struct {
	Kind  catalog.Kind     `json:"kind"`
	Items []catalog.Entity `json:"items"`
	Total int              `json:"total"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	query := r.URL.Query()
	kind, err := catalog.ParseKind(query.Get("kind"))
	if err != nil {
		s.writeServiceError(w, err, http.StatusBadRequest)
		return
	}
	idKind := strings.TrimSpace(query.Get("id_kind"))
	value := strings.TrimSpace(query.Get("value"))
	if idKind == "" || value == "" {
		s.writeError(w, http.StatusBadRequest, "id_kind and value are required")
		return
	}

	ctx := services.WithMediaKind(r.Context(), string(kind))
	response, err := s.dispatcher.Resolve(ctx, kind, idKind, value)
	if err != nil {
		logging.WithContext(ctx, s.logger).Warn("lookup failed", logging.Error(err))
		s.writeServiceError(w, err, http.StatusBadGateway)
		return
	}
	if response == nil {
		s.writeError(w, http.StatusNotFound, "no match for identifier")
		return
	}

	payload, err := json.Marshal(response.Entity())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, lookupResponse{
		Kind:   response.Kind,
		IDKind: idKind,
		Value:  value,
		Result: payload,
	})
}

func (s *Server) handleMetadata(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/metadata/")
	kindName, field, ok := strings.Cut(rest, "/")
	if !ok || field == "" || strings.Contains(field, "/") {
		s.writeError(w, http.StatusNotFound, "expected /api/metadata/{kind}/{field}")
		return
	}
	kind, err := catalog.ParseKind(kindName)
	if err != nil {
		s.writeServiceError(w, err, http.StatusBadRequest)
		return
	}

	ctx := services.WithMediaKind(r.Context(), string(kind))
	values, err := s.aggregator.DistinctValues(ctx, kind, field)
	if err != nil {
		s.writeServiceError(w, err, http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, metadataResponse{
		Kind:   kind,
		Field:  field,
		Values: values,
		Total:  len(values),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	stats, err := s.aggregator.Stats(r.Context())
	if err != nil {
		s.writeServiceError(w, err, http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleItems(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listItems(w, r)
	case http.MethodPost:
		s.createItem(w, r)
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) listItems(w http.ResponseWriter, r *http.Request) {
	kind, err := catalog.ParseKind(r.URL.Query().Get("kind"))
	if err != nil {
		s.writeServiceError(w, err, http.StatusBadRequest)
		return
	}

	items, err := s.store.List(r.Context(), kind)
	if err != nil {
		s.writeServiceError(w, err, http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, itemsResponse{Kind: kind, Items: items, Total: len(items)})
}

func (s *Server) createItem(w http.ResponseWriter, r *http.Request) {
	kind, err := catalog.ParseKind(r.URL.Query().Get("kind"))
	if err != nil {
		s.writeServiceError(w, err, http.StatusBadRequest)
		return
	}

	entity, err := catalog.New(kind)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := json.NewDecoder(r.Body).Decode(entity); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid item payload: "+err.Error())
		return
	}
	if strings.TrimSpace(entity.EntityTitle()) == "" {
		s.writeError(w, http.StatusBadRequest, "item title is required")
		return
	}

	if _, err := s.store.Add(r.Context(), entity); err != nil {
		s.writeServiceError(w, err, http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusCreated, entity)
}

func (s *Server) handleItem(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/items/")
	kindName, id, ok := strings.Cut(rest, "/")
	if !ok || id == "" || strings.Contains(id, "/") {
		s.writeError(w, http.StatusNotFound, "expected /api/items/{kind}/{id}")
		return
	}
	kind, err := catalog.ParseKind(kindName)
	if err != nil {
		s.writeServiceError(w, err, http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		entity, err := s.store.Get(r.Context(), kind, id)
		if err != nil {
			s.writeServiceError(w, err, http.StatusInternalServerError)
			return
		}
		s.writeJSON(w, http.StatusOK, entity)
	case http.MethodDelete:
		if err := s.store.Remove(r.Context(), kind, id); err != nil {
			s.writeServiceError(w, err, http.StatusInternalServerError)
			return
		}
		s.writeJSON(w, http.StatusOK, map[string]string{"removed": id})
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
