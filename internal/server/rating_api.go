package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/relictools/relicrater/internal/catalog"
	"github.com/relictools/relicrater/internal/event"
	"github.com/relictools/relicrater/internal/rating"
)

// RatingAPI handles the template editor and scoring endpoints.
type RatingAPI struct {
	logger   *slog.Logger
	store    *rating.Store
	engine   *rating.Engine
	listener *event.Listener
}

func NewRatingAPI(logger *slog.Logger, store *rating.Store, engine *rating.Engine, listener *event.Listener) *RatingAPI {
	return &RatingAPI{
		logger:   logger,
		store:    store,
		engine:   engine,
		listener: listener,
	}
}

// RegisterRoutes registers all rating API routes.
func (api *RatingAPI) RegisterRoutes(mux *http.ServeMux) {
	// Template endpoints
	mux.HandleFunc("/api/templates", api.handleGetTemplates)
	mux.HandleFunc("/api/templates/create", api.handleCreateTemplate)
	mux.HandleFunc("/api/templates/delete", api.handleDeleteTemplate)

	// Rule endpoints
	mux.HandleFunc("/api/templates/rules/create", api.handleCreateRule)
	mux.HandleFunc("/api/templates/rules/delete", api.handleDeleteRule)
	mux.HandleFunc("/api/templates/rules/mainstats", api.handleSelectMainStats)

	// Scoring endpoint
	mux.HandleFunc("/api/rate", api.handleRate)

	// Catalog endpoints
	mux.HandleFunc("/api/catalog/sets", api.handleGetSets)
	mux.HandleFunc("/api/catalog/substats", api.handleGetSubStats)
	mux.HandleFunc("/api/catalog/characters", api.handleGetCharacters)
}

func (api *RatingAPI) handleGetTemplates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	api.sendJSON(w, api.store.Snapshot())
}

func (api *RatingAPI) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		TemplateID string          `json:"templateId"`
		Template   rating.Template `json:"template"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.TemplateID == "" {
		req.TemplateID = uuid.NewString()
	}
	if req.Template.Rules == nil {
		req.Template.Rules = make(map[string]rating.Rule)
	}

	out := api.store.CreateOrUpdateTemplate(req.TemplateID, req.Template)
	api.sendJSON(w, map[string]any{
		"success":    out.Success,
		"message":    out.Message,
		"templateId": req.TemplateID,
	})
}

func (api *RatingAPI) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		TemplateID string `json:"templateId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	api.sendJSON(w, api.store.RemoveTemplate(req.TemplateID))
}

func (api *RatingAPI) handleCreateRule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		TemplateID string      `json:"templateId"`
		RuleID     string      `json:"ruleId"`
		Rule       rating.Rule `json:"rule"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.RuleID == "" {
		req.RuleID = uuid.NewString()
	}

	// The set list drives which part preferences may exist, so every rule
	// write re-applies the cascade before it is stored.
	rating.NormalizeRuleForSets(&req.Rule, req.Rule.SetNames)

	out := api.store.CreateOrUpdateRule(req.TemplateID, req.RuleID, req.Rule)
	api.sendJSON(w, map[string]any{
		"success": out.Success,
		"message": out.Message,
		"ruleId":  req.RuleID,
	})
}

func (api *RatingAPI) handleDeleteRule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		TemplateID string `json:"templateId"`
		RuleID     string `json:"ruleId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	api.sendJSON(w, api.store.RemoveRule(req.TemplateID, req.RuleID))
}

// handleSelectMainStats replaces the valuable main stats of one generic slot
// on a rule. The update is prepared as a draft and only stored when the
// persist succeeds, so a failed save leaves the visible rule untouched.
func (api *RatingAPI) handleSelectMainStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		TemplateID string       `json:"templateId"`
		RuleID     string       `json:"ruleId"`
		Slot       catalog.Slot `json:"slot"`
		MainStats  []string     `json:"mainStats"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tpl, ok := api.store.Template(req.TemplateID)
	if !ok {
		api.sendJSON(w, rating.Outcome{Success: false, Message: "template " + req.TemplateID + " not found"})
		return
	}
	rule, ok := tpl.Rules[req.RuleID]
	if !ok {
		api.sendJSON(w, rating.Outcome{Success: false, Message: "rule " + req.RuleID + " not found"})
		return
	}

	draft := rule.Clone()
	rating.ApplyMainStatSelection(&draft, req.Slot, req.MainStats)

	api.sendJSON(w, api.store.CreateOrUpdateRule(req.TemplateID, req.RuleID, draft))
}

func (api *RatingAPI) handleRate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var relic rating.RelicInstance
	if err := json.NewDecoder(r.Body).Decode(&relic); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ratings, err := api.engine.Evaluate(api.store.Snapshot(), relic)
	if err != nil {
		api.sendJSON(w, map[string]any{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	api.notifyRated(relic, ratings)
	api.sendJSON(w, map[string]any{
		"success": true,
		"ratings": ratings,
	})
}

// notifyRated emits the best rating to the event listener so remote sinks
// can announce valuable relics.
func (api *RatingAPI) notifyRated(relic rating.RelicInstance, ratings []rating.CharacterBasePartRating) {
	if api.listener == nil || len(ratings) == 0 {
		return
	}

	best := ratings[0]
	minPct := best.MinTotalScore / best.TotalScore * 100
	maxPct := best.MaxTotalScore / best.TotalScore * 100

	api.listener.Emit(event.RelicRated(
		event.WithMessage("relic rated"),
		relic.SetID, relic.PartID, best.Characters, minPct, maxPct,
	))
}

func (api *RatingAPI) handleGetSets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	api.sendJSON(w, catalog.GetRelicSets())
}

func (api *RatingAPI) handleGetSubStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	api.sendJSON(w, catalog.GetAllSubStatTypes())
}

func (api *RatingAPI) handleGetCharacters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	api.sendJSON(w, catalog.GetCharacters())
}

func (api *RatingAPI) sendJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		api.logger.Error("error encoding response", slog.Any("error", err))
	}
}
