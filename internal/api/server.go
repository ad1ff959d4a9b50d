// Package api exposes the assistant over HTTP. Every endpoint answers
// with a JSON envelope carrying success plus either the payload or an
// error string; caller mistakes are 400, missing credentials and
// backend failures are 500.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/findmyicp/reddit-assistant/internal/apify"
	"github.com/findmyicp/reddit-assistant/internal/assistant"
	"github.com/findmyicp/reddit-assistant/internal/gemini"
	"github.com/findmyicp/reddit-assistant/internal/models"
	"github.com/findmyicp/reddit-assistant/internal/parser"
	"github.com/findmyicp/reddit-assistant/internal/prompts"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Server holds the handlers' dependencies.
type Server struct {
	assistant *assistant.Service
}

// NewServer creates the API server over the assistant service.
func NewServer(svc *assistant.Service) *Server {
	return &Server{assistant: svc}
}

// Register attaches all routes to the router.
func (s *Server) Register(router *mux.Router) {
	router.HandleFunc("/health", s.handleHealth).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/discover-subreddits", s.handleDiscoverSubreddits).Methods("POST")
	api.HandleFunc("/find-conversations", s.handleFindConversations).Methods("POST")
	api.HandleFunc("/generate-post", s.handleGeneratePost).Methods("POST")
	api.HandleFunc("/generate-reply", s.handleGenerateReply).Methods("POST")
	api.HandleFunc("/scrape-reddit", s.handleScrape).Methods("POST")
	api.HandleFunc("/logs", s.handleGetLogs).Methods("GET")
	api.HandleFunc("/logs", s.handleAddLog).Methods("POST")
	api.HandleFunc("/subreddits", s.handleListSubreddits).Methods("GET")
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.Errorf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

// writeBackendError maps service failures onto the envelope. Missing
// credentials and downstream failures are 500s; a discovery ParseError
// is a structured success:false with the raw completion attached, not
// an HTTP error.
func writeBackendError(w http.ResponseWriter, err error) {
	var parseErr *parser.ParseError
	switch {
	case errors.Is(err, gemini.ErrNotConfigured):
		writeError(w, http.StatusInternalServerError, "Gemini API key not configured")
	case errors.Is(err, apify.ErrNotConfigured):
		writeError(w, http.StatusInternalServerError, "Apify API key not configured")
	case errors.As(err, &parseErr):
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"error":   "Failed to parse response",
			"raw":     parseErr.Raw,
		})
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

type discoverRequest struct {
	Keywords           []string `json:"keywords"`
	Topic              string   `json:"topic"`
	ExistingSubreddits []string `json:"existingSubreddits"`
	Limit              int      `json:"limit"`
}

func (s *Server) handleDiscoverSubreddits(w http.ResponseWriter, r *http.Request) {
	var req discoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	suggestions, err := s.assistant.DiscoverSubreddits(r.Context(), assistant.DiscoveryRequest{
		Keywords: req.Keywords,
		Topic:    req.Topic,
		Exclude:  req.ExistingSubreddits,
		Limit:    req.Limit,
	})
	if err != nil {
		logrus.Errorf("Subreddit discovery failed: %v", err)
		writeBackendError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"subreddits": suggestions,
	})
}

type findRequest struct {
	Keywords   []string `json:"keywords"`
	Subreddits []string `json:"subreddits"`
	MaxResults int      `json:"maxResults"`
	MinScore   *int     `json:"minScore"`
}

func (s *Server) handleFindConversations(w http.ResponseWriter, r *http.Request) {
	var req findRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(req.Keywords) == 0 {
		writeError(w, http.StatusBadRequest, "Keywords are required")
		return
	}

	minScore := 1
	if req.MinScore != nil {
		minScore = *req.MinScore
	}

	result, err := s.assistant.FindConversations(r.Context(), assistant.FindRequest{
		Keywords:   req.Keywords,
		Subreddits: req.Subreddits,
		MaxResults: req.MaxResults,
		MinScore:   minScore,
	})
	if err != nil {
		logrus.Errorf("Conversation search failed: %v", err)
		writeBackendError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":            true,
		"conversations":      result.Conversations,
		"totalFound":         result.TotalFound,
		"filtered":           result.Filtered,
		"searchedKeywords":   req.Keywords,
		"searchedSubreddits": req.Subreddits,
	})
}

type generatePostRequest struct {
	Topic              string                   `json:"topic"`
	Subreddits         []string                 `json:"subreddits"`
	PostType           string                   `json:"postType"`
	ContentPillar      string                   `json:"contentPillar"`
	TopPosts           []prompts.ExamplePost    `json:"topPosts"`
	GenerateVariations bool                     `json:"generateVariations"`
	Persona            *prompts.PersonaOverride `json:"userPersona"`
	PreviousPosts      []prompts.PreviousPost   `json:"previousPosts"`
}

func (s *Server) handleGeneratePost(w http.ResponseWriter, r *http.Request) {
	var req generatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Topic) == "" {
		writeError(w, http.StatusBadRequest, "Topic is required")
		return
	}
	if len(req.Subreddits) == 0 {
		writeError(w, http.StatusBadRequest, "At least one subreddit is required")
		return
	}
	if req.PostType == "" {
		req.PostType = "storytelling"
	}

	outcomes, err := s.assistant.GeneratePosts(r.Context(), assistant.PostRequest{
		Topic:              req.Topic,
		SubredditNames:     req.Subreddits,
		PostType:           req.PostType,
		ContentPillar:      req.ContentPillar,
		ExamplePosts:       req.TopPosts,
		GenerateVariations: req.GenerateVariations,
		Persona:            req.Persona,
		PreviousPosts:      req.PreviousPosts,
	})
	if err != nil {
		if errors.Is(err, gemini.ErrNotConfigured) {
			writeBackendError(w, err)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"posts":       outcomes,
		"generatedAt": time.Now().UTC().Format(time.RFC3339),
	})
}

type generateReplyRequest struct {
	PostURL   string `json:"postUrl"`
	PostTitle string `json:"postTitle"`
	PostBody  string `json:"postBody"`
	Subreddit string `json:"subreddit"`
	Tone      string `json:"tone"`
	Context   string `json:"context"`
}

func (s *Server) handleGenerateReply(w http.ResponseWriter, r *http.Request) {
	var req generateReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.PostTitle == "" {
		writeError(w, http.StatusBadRequest, "Post title is required")
		return
	}
	if req.Subreddit == "" {
		writeError(w, http.StatusBadRequest, "Subreddit name is required")
		return
	}
	if req.Tone == "" {
		req.Tone = "helpful"
	}

	reply, err := s.assistant.GenerateReply(r.Context(), assistant.ReplyRequest{
		PostURL:   req.PostURL,
		PostTitle: req.PostTitle,
		PostBody:  req.PostBody,
		Subreddit: req.Subreddit,
		Tone:      req.Tone,
		Context:   req.Context,
	})
	if err != nil {
		logrus.Errorf("Reply generation failed: %v", err)
		writeBackendError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"reply":   reply,
	})
}

type scrapeRequest struct {
	Queries        []string `json:"queries"`
	MaxPosts       int      `json:"maxPosts"`
	ScrapeComments bool     `json:"scrapeComments"`
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	items, err := s.assistant.Scrape(r.Context(), req.Queries, req.MaxPosts, req.ScrapeComments)
	if err != nil {
		logrus.Errorf("Scrape failed: %v", err)
		writeBackendError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    items,
	})
}

func (s *Server) handleGetLogs(w http.ResponseWriter, r *http.Request) {
	filterType := r.URL.Query().Get("type")
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	entries, stats := s.assistant.Activity().List(filterType, limit)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"logs":    entries,
		"stats":   stats,
	})
}

type addLogRequest struct {
	Type string                 `json:"type"`
	Data map[string]interface{} `json:"data"`
}

func (s *Server) handleAddLog(w http.ResponseWriter, r *http.Request) {
	var req addLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Type == "" {
		writeError(w, http.StatusBadRequest, "Type is required")
		return
	}

	entry, err := s.assistant.Activity().Append(req.Type, req.Data)
	if err != nil {
		logrus.Errorf("Failed to add log entry: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"entry":   entry,
	})
}

func (s *Server) handleListSubreddits(w http.ResponseWriter, r *http.Request) {
	profiles := s.assistant.Subreddits().Snapshot()
	if profiles == nil {
		profiles = []models.SubredditProfile{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"subreddits":  profiles,
		"lastUpdated": s.assistant.Subreddits().UpdatedAt().UTC().Format(time.RFC3339),
	})
}
