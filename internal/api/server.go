// Package api exposes the pipeline over a small local HTTP surface. Runs
// execute asynchronously and are tracked in an in-memory registry.
package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/odedgol/product-review-automation/internal/config"
	"github.com/odedgol/product-review-automation/internal/pipeline"
	"github.com/odedgol/product-review-automation/internal/product"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Run is one tracked pipeline execution.
type Run struct {
	ID             string     `json:"id"`
	ProductID      string     `json:"product_id"`
	Language       string     `json:"language"`
	Status         string     `json:"status"`
	Error          string     `json:"error,omitempty"`
	AudioPath      string     `json:"audio_path,omitempty"`
	StoryboardPath string     `json:"storyboard_path,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// runRegistry tracks runs in memory for the lifetime of the process.
type runRegistry struct {
	mu   sync.RWMutex
	runs map[string]*Run
}

func newRunRegistry() *runRegistry {
	return &runRegistry{runs: make(map[string]*Run)}
}

func (r *runRegistry) add(run *Run) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs[run.ID] = run
}

func (r *runRegistry) get(id string) (Run, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	run, ok := r.runs[id]
	if !ok {
		return Run{}, false
	}
	return *run, true
}

func (r *runRegistry) update(id string, fn func(*Run)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if run, ok := r.runs[id]; ok {
		fn(run)
	}
}

// Server serves the pipeline API.
type Server struct {
	cfg      *config.Config
	pipeline *pipeline.Pipeline
	registry *runRegistry
}

func NewServer(cfg *config.Config) *Server {
	return &Server{
		cfg:      cfg,
		pipeline: pipeline.New(cfg),
		registry: newRunRegistry(),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/health", s.health)
	r.GET("/products", s.listProducts)
	r.POST("/generate", s.generate)
	r.GET("/runs/:id", s.runStatus)

	return r
}

// Listen serves the API on the configured port until the process exits.
func (s *Server) Listen() error {
	return s.Router().Run(":" + s.cfg.Port)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "product-review-automation",
	})
}

func (s *Server) listProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": product.IDs()})
}

type generateRequest struct {
	ProductID string `json:"product_id"`
	Language  string `json:"language"`
}

func (s *Server) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON request body"})
		return
	}

	if req.ProductID == "" {
		req.ProductID = product.DefaultID
	}
	if req.Language == "" {
		req.Language = s.cfg.Script.Language
	}
	if req.Language != "hebrew" && req.Language != "english" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "language must be hebrew or english"})
		return
	}

	run := &Run{
		ID:        uuid.NewString(),
		ProductID: req.ProductID,
		Language:  req.Language,
		Status:    StatusPending,
		CreatedAt: time.Now(),
	}
	s.registry.add(run)

	go s.process(run.ID, req.ProductID, req.Language)

	c.JSON(http.StatusAccepted, gin.H{
		"run_id":  run.ID,
		"status":  run.Status,
		"message": "pipeline run started",
	})
}

func (s *Server) process(runID, productID, language string) {
	s.registry.update(runID, func(run *Run) {
		run.Status = StatusProcessing
	})

	outputs, err := s.pipeline.Run(productID, language)

	now := time.Now()
	s.registry.update(runID, func(run *Run) {
		run.CompletedAt = &now
		if err != nil {
			run.Status = StatusFailed
			run.Error = err.Error()
			return
		}
		run.Status = StatusCompleted
		run.AudioPath = outputs.AudioPath
		run.StoryboardPath = outputs.StoryboardPath
	})
}

func (s *Server) runStatus(c *gin.Context) {
	run, ok := s.registry.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}
	c.JSON(http.StatusOK, run)
}
