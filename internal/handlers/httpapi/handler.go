// Package httpapi exposes the sheet service over HTTP with JSON bodies
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sheetforge/sheet-api/internal/config"
	"github.com/sheetforge/sheet-api/internal/errors"
	sheetsvc "github.com/sheetforge/sheet-api/internal/services/sheet"
)

// Config holds the dependencies for the HTTP handler
type Config struct {
	SheetService sheetsvc.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SheetService == nil {
		vb.RequiredField("SheetService")
	}

	return vb.Build()
}

// Handler serves the sheet API
type Handler struct {
	service sheetsvc.Service
}

// NewHandler creates a new sheet API handler
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{service: cfg.SheetService}, nil
}

// Register mounts all routes on the mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/config", h.GetConfig)
	mux.HandleFunc("POST /v1/config/reload", h.ReloadConfig)

	mux.HandleFunc("POST /v1/characters", h.CreateCharacter)
	mux.HandleFunc("GET /v1/characters", h.ListCharacters)
	mux.HandleFunc("GET /v1/characters/{id}", h.GetCharacter)
	mux.HandleFunc("DELETE /v1/characters/{id}", h.DeleteCharacter)

	mux.HandleFunc("PUT /v1/characters/{id}/attributes/{attributeId}", h.UpdateAttribute)
	mux.HandleFunc("PUT /v1/characters/{id}/combat-stats/{statId}", h.UpdateCombatStat)
	mux.HandleFunc("PUT /v1/characters/{id}/info/{fieldId}", h.UpdateInfoField)
	mux.HandleFunc("PUT /v1/characters/{id}/inventory/{tabId}/slots/{index}", h.UpdateInventorySlot)
	mux.HandleFunc("PUT /v1/characters/{id}/level", h.SetLevel)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	writeJSON(w, code.HTTPStatus(), map[string]any{
		"code":  string(code),
		"error": errors.GetMessage(err),
	})
}

func decodeJSON(r *http.Request, out any) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return errors.InvalidArgumentf("invalid request body: %v", err)
	}
	return nil
}

// ConfigResponse is the response for configuration endpoints. On validation
// failure Errors carries every accumulated problem and Formatted the
// human-readable report, one line per error.
type ConfigResponse struct {
	Configuration any                      `json:"configuration,omitempty"`
	Errors        []config.ValidationError `json:"errors,omitempty"`
	Formatted     string                   `json:"formatted,omitempty"`
}

// GetConfig handles GET /v1/config
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.LoadConfiguration(r.Context(), &sheetsvc.LoadConfigurationInput{})
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeConfig(w, output.Configuration, output.Errors)
}

// ReloadConfig handles POST /v1/config/reload
func (h *Handler) ReloadConfig(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.ReloadConfiguration(r.Context(), &sheetsvc.ReloadConfigurationInput{})
	if err != nil {
		writeError(w, err)
		return
	}
	slog.InfoContext(r.Context(), "configuration reloaded", "validation_errors", len(output.Errors))
	h.writeConfig(w, output.Configuration, output.Errors)
}

func (h *Handler) writeConfig(w http.ResponseWriter, configuration any, errs []config.ValidationError) {
	if len(errs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, ConfigResponse{
			Errors:    errs,
			Formatted: config.FormatErrors(errs),
		})
		return
	}
	writeJSON(w, http.StatusOK, ConfigResponse{Configuration: configuration})
}

// CreateCharacterRequest is the request body for POST /v1/characters
type CreateCharacterRequest struct {
	Name string `json:"name"`
}

// CreateCharacter handles POST /v1/characters
func (h *Handler) CreateCharacter(w http.ResponseWriter, r *http.Request) {
	var req CreateCharacterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	output, err := h.service.CreateCharacter(r.Context(), &sheetsvc.CreateCharacterInput{Name: req.Name})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, output.Record)
}

// GetCharacter handles GET /v1/characters/{id}
func (h *Handler) GetCharacter(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.GetCharacter(r.Context(), &sheetsvc.GetCharacterInput{
		CharacterID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output.Record)
}

// ListCharacters handles GET /v1/characters
func (h *Handler) ListCharacters(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.ListCharacters(r.Context(), &sheetsvc.ListCharactersInput{})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"characters": output.Records})
}

// DeleteCharacter handles DELETE /v1/characters/{id}
func (h *Handler) DeleteCharacter(w http.ResponseWriter, r *http.Request) {
	_, err := h.service.DeleteCharacter(r.Context(), &sheetsvc.DeleteCharacterInput{
		CharacterID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateValueRequest is the request body for numeric field updates
type UpdateValueRequest struct {
	Value float64 `json:"value"`
}

// UpdateAttribute handles PUT /v1/characters/{id}/attributes/{attributeId}
func (h *Handler) UpdateAttribute(w http.ResponseWriter, r *http.Request) {
	var req UpdateValueRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	output, err := h.service.UpdateAttribute(r.Context(), &sheetsvc.UpdateAttributeInput{
		CharacterID: r.PathValue("id"),
		AttributeID: r.PathValue("attributeId"),
		Value:       req.Value,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output.Record)
}

// UpdateCombatStat handles PUT /v1/characters/{id}/combat-stats/{statId}
func (h *Handler) UpdateCombatStat(w http.ResponseWriter, r *http.Request) {
	var req UpdateValueRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	output, err := h.service.UpdateCombatStat(r.Context(), &sheetsvc.UpdateCombatStatInput{
		CharacterID: r.PathValue("id"),
		StatID:      r.PathValue("statId"),
		Value:       req.Value,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output.Record)
}

// UpdateTextRequest is the request body for info field updates
type UpdateTextRequest struct {
	Value string `json:"value"`
}

// UpdateInfoField handles PUT /v1/characters/{id}/info/{fieldId}
func (h *Handler) UpdateInfoField(w http.ResponseWriter, r *http.Request) {
	var req UpdateTextRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	output, err := h.service.UpdateInfoField(r.Context(), &sheetsvc.UpdateInfoFieldInput{
		CharacterID: r.PathValue("id"),
		FieldID:     r.PathValue("fieldId"),
		Value:       req.Value,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output.Record)
}

// UpdateSlotRequest is the request body for inventory slot updates. An
// empty item clears the slot back to the tab catalog's first entry.
type UpdateSlotRequest struct {
	Item string `json:"item"`
}

// UpdateInventorySlot handles PUT /v1/characters/{id}/inventory/{tabId}/slots/{index}
func (h *Handler) UpdateInventorySlot(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeError(w, errors.InvalidArgumentf("slot index must be an integer: %q", r.PathValue("index")))
		return
	}

	var req UpdateSlotRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	output, err := h.service.UpdateInventorySlot(r.Context(), &sheetsvc.UpdateInventorySlotInput{
		CharacterID: r.PathValue("id"),
		TabID:       r.PathValue("tabId"),
		SlotIndex:   index,
		ItemName:    req.Item,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output.Record)
}

// SetLevelRequest is the request body for PUT /v1/characters/{id}/level
type SetLevelRequest struct {
	Class string `json:"class"`
	Level int    `json:"level"`
}

// SetLevel handles PUT /v1/characters/{id}/level
func (h *Handler) SetLevel(w http.ResponseWriter, r *http.Request) {
	var req SetLevelRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	output, err := h.service.SetLevel(r.Context(), &sheetsvc.SetLevelInput{
		CharacterID: r.PathValue("id"),
		ClassName:   req.Class,
		Level:       req.Level,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output.Record)
}
