package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/abidraza5594/SecurePass/pkg/audit"
	"github.com/abidraza5594/SecurePass/pkg/identity"
	"github.com/abidraza5594/SecurePass/pkg/model"
	"github.com/abidraza5594/SecurePass/pkg/server"
	"github.com/abidraza5594/SecurePass/pkg/vault/manager"
	"github.com/abidraza5594/SecurePass/pkg/vault/store"
	"github.com/abidraza5594/SecurePass/pkg/vault/validate"
	"github.com/abidraza5594/SecurePass/pkg/vault/view"
)

// RegisterRecordsEndpoints registers the per-kind record CRUD, secret
// reveal and visibility toggle endpoints. All of them require a session
// token.
func RegisterRecordsEndpoints(s *server.Server) {
	router := s.Router.PathPrefix("/records").Subrouter()
	router.Use(s.TokenAuth.Middleware)

	router.HandleFunc("/{kind}", handleListRecords(s)).Methods("GET")
	router.HandleFunc("/{kind}", handleCreateRecord(s)).Methods("POST")
	router.HandleFunc("/{kind}/{id}", handleUpdateRecord(s)).Methods("PUT")
	router.HandleFunc("/{kind}/{id}", handleDeleteRecord(s)).Methods("DELETE")
	router.HandleFunc("/{kind}/{id}/secret", handleRevealSecret(s)).Methods("GET")
	router.HandleFunc("/{kind}/{id}/visibility", handleToggleVisibility(s)).Methods("POST")
}

// requestScope resolves the pieces every record handler needs: the
// authenticated identity, the owner's vault and the requested kind.
func requestScope(s *server.Server, w http.ResponseWriter, r *http.Request) (*identity.Identity, *manager.Vault, model.Kind, bool) {
	id, ok := identity.Get(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "no authenticated identity")
		return nil, nil, 0, false
	}

	kind, err := model.KindString(mux.Vars(r)["kind"])
	if err != nil {
		respondWithError(w, http.StatusNotFound, "unknown record kind")
		return nil, nil, 0, false
	}

	return id, s.Vault(id), kind, true
}

// listResponse is the paged listing envelope. Total counts the filtered
// records, not the stored ones.
type listResponse struct {
	Items     []map[string]interface{} `json:"items"`
	Page      int                      `json:"page"`
	PageCount int                      `json:"pageCount"`
	PageSize  int                      `json:"pageSize"`
	Total     int                      `json:"total"`
}

func handleListRecords(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, vault, kind, ok := requestScope(s, w, r)
		if !ok {
			return
		}

		switch kind {
		case model.KindAPIKey:
			listRecords(w, r, vault.APIKeys, apiKeyView)
		case model.KindPassword:
			listRecords(w, r, vault.Passwords, passwordView)
		case model.KindNote:
			listRecords(w, r, vault.Notes, noteView)
		}
	}
}

// listRecords applies the query parameters to the kind's manager and
// renders the current page. Query and category are sticky: they stay
// applied until the client changes them.
func listRecords[T manager.Record](
	w http.ResponseWriter,
	r *http.Request,
	m *manager.Manager[T],
	render func(T, bool) map[string]interface{},
) {
	params := r.URL.Query()

	if params.Has("q") {
		m.SetQuery(params.Get("q"))
	}
	if params.Has("category") {
		m.SetCategory(params.Get("category"))
	}
	if raw := params.Get("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || !view.AllowedPageSize(size) {
			respondWithError(w, http.StatusUnprocessableEntity, "page_size must be one of 10, 50, 100, 200, 500")
			return
		}
		m.SetPageSize(size)
	}
	if raw := params.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusUnprocessableEntity, "page must be a number")
			return
		}
		m.SetPage(page)
	} else {
		// Re-clamp against the latest listing even when no page was asked
		// for.
		m.SetPage(1)
	}

	items, page, pageCount := m.Page()
	vis := m.Visibility()

	views := make([]map[string]interface{}, 0, len(items))
	for _, rec := range items {
		views = append(views, render(rec, vis.Visible(rec.GetID())))
	}

	respondWithJSON(w, http.StatusOK, listResponse{
		Items:     views,
		Page:      page,
		PageCount: pageCount,
		PageSize:  m.PageSize(),
		Total:     len(m.Visible()),
	})
}

func handleCreateRecord(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, vault, kind, ok := requestScope(s, w, r)
		if !ok {
			return
		}

		switch kind {
		case model.KindAPIKey:
			var form validate.APIKeyForm
			if !decodeForm(w, r, &form) {
				return
			}
			rec, err := form.Validate()
			if err != nil {
				respondWithError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			createRecord(s, w, r, id, vault.APIKeys, rec)
		case model.KindPassword:
			var form validate.PasswordForm
			if !decodeForm(w, r, &form) {
				return
			}
			rec, err := form.Validate()
			if err != nil {
				respondWithError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			createRecord(s, w, r, id, vault.Passwords, rec)
		case model.KindNote:
			var form validate.NoteForm
			if !decodeForm(w, r, &form) {
				return
			}
			rec, err := form.Validate()
			if err != nil {
				respondWithError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			createRecord(s, w, r, id, vault.Notes, rec)
		}
	}
}

func handleUpdateRecord(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, vault, kind, ok := requestScope(s, w, r)
		if !ok {
			return
		}
		recordID := mux.Vars(r)["id"]

		switch kind {
		case model.KindAPIKey:
			var form validate.APIKeyForm
			if !decodeForm(w, r, &form) {
				return
			}
			rec, err := form.Validate()
			if err != nil {
				respondWithError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			updateRecord(s, w, r, id, vault.APIKeys, recordID, rec)
		case model.KindPassword:
			var form validate.PasswordForm
			if !decodeForm(w, r, &form) {
				return
			}
			rec, err := form.Validate()
			if err != nil {
				respondWithError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			updateRecord(s, w, r, id, vault.Passwords, recordID, rec)
		case model.KindNote:
			var form validate.NoteForm
			if !decodeForm(w, r, &form) {
				return
			}
			rec, err := form.Validate()
			if err != nil {
				respondWithError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			updateRecord(s, w, r, id, vault.Notes, recordID, rec)
		}
	}
}

func handleDeleteRecord(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, vault, kind, ok := requestScope(s, w, r)
		if !ok {
			return
		}
		recordID := mux.Vars(r)["id"]

		switch kind {
		case model.KindAPIKey:
			deleteRecord(s, w, r, id, vault.APIKeys, recordID)
		case model.KindPassword:
			deleteRecord(s, w, r, id, vault.Passwords, recordID)
		case model.KindNote:
			deleteRecord(s, w, r, id, vault.Notes, recordID)
		}
	}
}

func handleRevealSecret(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, vault, kind, ok := requestScope(s, w, r)
		if !ok {
			return
		}
		recordID := mux.Vars(r)["id"]

		switch kind {
		case model.KindAPIKey:
			revealSecret(s, w, r, id, vault.APIKeys, recordID)
		case model.KindPassword:
			revealSecret(s, w, r, id, vault.Passwords, recordID)
		case model.KindNote:
			respondWithError(w, http.StatusBadRequest, "notes carry no secret value")
		}
	}
}

func handleToggleVisibility(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, vault, kind, ok := requestScope(s, w, r)
		if !ok {
			return
		}
		recordID := mux.Vars(r)["id"]

		switch kind {
		case model.KindAPIKey:
			toggleVisibility(w, vault.APIKeys, recordID)
		case model.KindPassword:
			toggleVisibility(w, vault.Passwords, recordID)
		case model.KindNote:
			respondWithError(w, http.StatusBadRequest, "notes carry no secret value")
		}
	}
}

func decodeForm(w http.ResponseWriter, r *http.Request, form interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(form); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid JSON payload")
		return false
	}
	return true
}

func createRecord[T manager.Record](
	s *server.Server,
	w http.ResponseWriter,
	r *http.Request,
	id *identity.Identity,
	m *manager.Manager[T],
	rec T,
) {
	recordID, err := m.Add(r.Context(), rec)

	audit.Log(audit.RecordEvent{
		OwnerID:      id.OwnerID,
		ClientIP:     clientIP(r, s.Config),
		Kind:         m.Kind().String(),
		RecordID:     recordID,
		Operation:    "create",
		Success:      err == nil,
		ErrorMessage: errMessage(err),
	})

	if err != nil {
		respondWithError(w, storeStatus(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]string{"id": recordID})
}

func updateRecord[T manager.Record](
	s *server.Server,
	w http.ResponseWriter,
	r *http.Request,
	id *identity.Identity,
	m *manager.Manager[T],
	recordID string,
	rec T,
) {
	err := m.Edit(r.Context(), recordID, rec)

	audit.Log(audit.RecordEvent{
		OwnerID:      id.OwnerID,
		ClientIP:     clientIP(r, s.Config),
		Kind:         m.Kind().String(),
		RecordID:     recordID,
		Operation:    "update",
		Success:      err == nil,
		ErrorMessage: errMessage(err),
	})

	if err != nil {
		respondWithError(w, storeStatus(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func deleteRecord[T manager.Record](
	s *server.Server,
	w http.ResponseWriter,
	r *http.Request,
	id *identity.Identity,
	m *manager.Manager[T],
	recordID string,
) {
	err := m.Remove(r.Context(), recordID)

	audit.Log(audit.RecordEvent{
		OwnerID:      id.OwnerID,
		ClientIP:     clientIP(r, s.Config),
		Kind:         m.Kind().String(),
		RecordID:     recordID,
		Operation:    "delete",
		Success:      err == nil,
		ErrorMessage: errMessage(err),
	})

	if err != nil {
		respondWithError(w, storeStatus(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// secretRecord is a record kind that carries a secret value.
type secretRecord interface {
	manager.Record
	Secret() string
}

// revealSecret hands out the raw secret value regardless of the record's
// mask state. Every reveal is audited.
func revealSecret[T secretRecord](
	s *server.Server,
	w http.ResponseWriter,
	r *http.Request,
	id *identity.Identity,
	m *manager.Manager[T],
	recordID string,
) {
	rec, found := m.Get(recordID)

	audit.Log(audit.RevealEvent{
		OwnerID:      id.OwnerID,
		ClientIP:     clientIP(r, s.Config),
		Kind:         m.Kind().String(),
		RecordID:     recordID,
		Success:      found,
		ErrorMessage: notFoundMessage(found),
	})

	if !found {
		respondWithError(w, http.StatusNotFound, "record not found")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"secretValue": rec.Secret()})
}

func toggleVisibility[T manager.Record](w http.ResponseWriter, m *manager.Manager[T], recordID string) {
	if _, found := m.Get(recordID); !found {
		respondWithError(w, http.StatusNotFound, "record not found")
		return
	}

	visible := m.Visibility().Toggle(recordID)
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"id":      recordID,
		"visible": visible,
	})
}

// apiKeyView renders a credential key record, masking the secret unless
// the record is toggled visible.
func apiKeyView(k model.APIKey, visible bool) map[string]interface{} {
	secret := model.SecretPlaceholder
	if visible {
		secret = k.SecretValue
	}
	return map[string]interface{}{
		"id":           k.ID,
		"kind":         model.KindAPIKey,
		"modelName":    k.ModelName,
		"secretValue":  secret,
		"status":       k.Status,
		"tags":         k.Tags,
		"customFields": k.CustomFields,
		"createdAt":    k.CreatedAt,
		"updatedAt":    k.UpdatedAt,
	}
}

func passwordView(p model.Password, visible bool) map[string]interface{} {
	secret := model.SecretPlaceholder
	if visible {
		secret = p.SecretValue
	}
	return map[string]interface{}{
		"id":           p.ID,
		"kind":         model.KindPassword,
		"appName":      p.AppName,
		"username":     p.Username,
		"secretValue":  secret,
		"status":       p.Status,
		"tags":         p.Tags,
		"customFields": p.CustomFields,
		"createdAt":    p.CreatedAt,
		"updatedAt":    p.UpdatedAt,
	}
}

// noteView renders a secure note. Notes have no secret value, so nothing
// is masked.
func noteView(n model.Note, _ bool) map[string]interface{} {
	return map[string]interface{}{
		"id":           n.ID,
		"kind":         model.KindNote,
		"title":        n.Title,
		"content":      n.Content,
		"tags":         n.Tags,
		"customFields": n.CustomFields,
		"createdAt":    n.CreatedAt,
		"updatedAt":    n.UpdatedAt,
	}
}

func storeStatus(err error) int {
	switch {
	case errors.Is(err, store.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, manager.ErrNoSession):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func notFoundMessage(found bool) string {
	if found {
		return ""
	}
	return "record not found"
}
