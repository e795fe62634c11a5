package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Conceptual-Machines/promptgram/internal/grammar"
	"github.com/Conceptual-Machines/promptgram/internal/logger"
	"github.com/Conceptual-Machines/promptgram/internal/prompt"
	"github.com/Conceptual-Machines/promptgram/internal/promptutil"
	"github.com/gin-gonic/gin"
)

type PromptHandler struct {
	svc      *prompt.Service
	maxCount int
	defaults map[string]any
}

func NewPromptHandler(svc *prompt.Service, maxCount int, defaults map[string]any) *PromptHandler {
	return &PromptHandler{
		svc:      svc,
		maxCount: maxCount,
		defaults: defaults,
	}
}

type GrammarInfo struct {
	Name  string   `json:"name"`
	Rules int      `json:"rules"`
	Heads []string `json:"heads"`
}

// ListGrammars describes every loaded grammar
func (h *PromptHandler) ListGrammars(c *gin.Context) {
	infos := make([]GrammarInfo, 0)
	for _, name := range h.svc.Names() {
		g, err := h.svc.Grammar(name)
		if err != nil {
			continue
		}
		infos = append(infos, GrammarInfo{Name: name, Rules: g.RuleCount(), Heads: g.Heads()})
	}
	c.JSON(http.StatusOK, gin.H{"grammars": infos})
}

type GenerateResponse struct {
	Grammar string   `json:"grammar"`
	Start   string   `json:"start"`
	Prompts []string `json:"prompts"`
}

// Generate expands ?start= (default ROOT) ?count= times
func (h *PromptHandler) Generate(c *gin.Context) {
	name := c.Param("grammar")
	start := c.Query("start")
	if start == "" {
		start = grammar.DefaultStart
	}

	count := defaultCount
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidCount})
			return
		}
		if n > h.maxCount {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("count must be at most %d", h.maxCount)})
			return
		}
		count = n
	}

	prompts := make([]string, 0, count)
	for i := 0; i < count; i++ {
		text, err := h.svc.Generate(c.Request.Context(), name, start)
		if err != nil {
			h.handleError(c, err)
			return
		}
		prompts = append(prompts, text)
	}

	c.JSON(http.StatusOK, GenerateResponse{Grammar: name, Start: start, Prompts: prompts})
}

type FillRequest struct {
	Fields map[string]*string `json:"fields" binding:"required"`
	Fill   any                `json:"fill"` // loose bool ("yes", 1, "false"...), defaults to true
}

// Fill completes template fields, generating unset ones from capitalized symbols.
// Configured defaults are applied first, so only fields without a default are generated.
func (h *PromptHandler) Fill(c *gin.Context) {
	var req FillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fill := true
	if req.Fill != nil {
		fill = promptutil.ToBool(req.Fill)
	}

	fields, err := h.svc.Fill(c.Request.Context(), c.Param("grammar"), h.withDefaults(req.Fields), fill)
	if err != nil {
		h.handleError(c, err)
		return
	}

	params := make(map[string]any, len(fields))
	for key, value := range fields {
		params[key] = value
	}

	c.JSON(http.StatusOK, gin.H{
		"fields":  fields,
		"summary": promptutil.PrettifyParams(params),
	})
}

// withDefaults fills unset request fields from the configured defaults
func (h *PromptHandler) withDefaults(fields map[string]*string) map[string]*string {
	request := make(map[string]any, len(fields))
	for key, value := range fields {
		if value != nil {
			request[key] = *value
		} else {
			request[key] = nil
		}
	}

	merged := promptutil.ApplyDefaults(request, h.defaults)
	out := make(map[string]*string, len(merged))
	for key, value := range merged {
		if value == nil {
			out[key] = nil
			continue
		}
		s := fmt.Sprint(value)
		out[key] = &s
	}
	return out
}

// Inspire returns a fresh prompt from the prompt grammar
func (h *PromptHandler) Inspire(c *gin.Context) {
	text, err := h.svc.Inspire(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"prompt": text})
}

// Karma spins the karma grammar
func (h *PromptHandler) Karma(c *gin.Context) {
	text, err := h.svc.Karma(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"karma": text})
}

type OverlayRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// Overlay splits a prompt into caption title and description
func (h *PromptHandler) Overlay(c *gin.Context) {
	var req OverlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	title, desc := promptutil.ToOverlay(req.Prompt)
	c.JSON(http.StatusOK, gin.H{"title": title, "description": desc})
}

type CombineRequest struct {
	Base   string `json:"base"`
	Add    string `json:"add"`
	Remove string `json:"remove"`
}

// Combine unions base with add, then subtracts remove
func (h *PromptHandler) Combine(c *gin.Context) {
	var req CombineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	merged, _ := promptutil.Union(req.Base, req.Add)
	result, ok := promptutil.Subtract(merged, req.Remove)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"prompt": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"prompt": result})
}

func (h *PromptHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, prompt.ErrUnknownGrammar) {
		c.JSON(http.StatusNotFound, gin.H{"error": errUnknownGrammar, "detail": err.Error()})
		return
	}

	logger.Error("Prompt generation failed", err, logger.WithContext(c))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate prompt"})
}
