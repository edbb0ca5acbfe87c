// Package api provides the REST API server for blheli2rtttl
package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/james-see/blheli2rtttl/pkg/converter"
	"github.com/james-see/blheli2rtttl/pkg/converter/devices"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title BLHELI_32 to RTTTL API
// @version 1.0
// @description API for converting BLHELI_32 melodies to RTTTL for BlueJay ESCs
// @host localhost:8080
// @BasePath /api/v1

// ConvertRequest is the body of a single melody conversion
type ConvertRequest struct {
	Melody   string `json:"melody"`
	Name     string `json:"name"`
	Tempo    int    `json:"tempo"`
	Octave   *int   `json:"octave"`
	Duration int    `json:"duration"`
	Device   string `json:"device"`
}

// VoicesRequest is the body of a multi-ESC conversion
type VoicesRequest struct {
	Name     string   `json:"name"`
	Tempo    int      `json:"tempo"`
	Device   string   `json:"device"`
	Melodies []string `json:"melodies" binding:"required"`
}

// WarningResponse describes a dropped token
type WarningResponse struct {
	Kind     string `json:"kind"`
	Token    string `json:"token"`
	Position int    `json:"position"`
	Message  string `json:"message"`
}

// ConvertResponse is returned by /convert
type ConvertResponse struct {
	RTTTL          string            `json:"rtttl"`
	InvalidSymbols []string          `json:"invalid_symbols"`
	Warnings       []WarningResponse `json:"warnings"`
}

// VoiceTrack is one ESC voice in a VoicesResponse
type VoiceTrack struct {
	Voice          int      `json:"voice"`
	RTTTL          string   `json:"rtttl"`
	InvalidSymbols []string `json:"invalid_symbols"`
}

// VoicesResponse is returned by /convert/voices
type VoicesResponse struct {
	Header string       `json:"header"`
	Tracks []VoiceTrack `json:"tracks"`
}

// Server serves conversion requests
type Server struct {
	logger        *zap.Logger
	defaultDevice string
}

// Option configures a Server
type Option func(*Server)

// WithLogger sets the logger used for request diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDefaultDevice sets the device used when a request names none
func WithDefaultDevice(id string) Option {
	return func(s *Server) {
		s.defaultDevice = id
	}
}

// NewServer creates a Server
func NewServer(opts ...Option) *Server {
	s := &Server{logger: zap.NewNop(), defaultDevice: devices.BlueJayID}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartServer starts the API server on the specified port
func StartServer(port int, opts ...Option) error {
	return NewServer(opts...).Router().Run(fmt.Sprintf(":%d", port))
}

// Router builds the gin engine with all routes
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())

	// CORS middleware
	r.Use(corsMiddleware())

	// Health check
	r.GET("/health", healthCheck)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/devices", listDevices)
		v1.GET("/formats", listFormats)
		v1.POST("/convert", s.handleConvert)
		v1.POST("/convert/voices", s.handleVoices)
		v1.POST("/convert/midi", s.handleMIDI)
	}

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
		)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "blheli2rtttl",
	})
}

// listFormats godoc
// @Summary List supported formats
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /api/v1/formats [get]
func listFormats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"formats":     []string{"blheli", "rtttl", "midi"},
		"conversions": converter.GetSupportedConversions(),
	})
}

// listDevices godoc
// @Summary List supported devices
// @Description Returns the ESC firmware profiles and their header defaults
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]map[string]interface{}
// @Router /api/v1/devices [get]
func listDevices(c *gin.Context) {
	list := make([]gin.H, 0, len(devices.All()))
	for _, d := range devices.All() {
		list = append(list, gin.H{
			"id":     d.ID(),
			"name":   d.Name(),
			"voices": d.Voices(),
			"header": converter.New(d).DefaultHeader().String(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"devices": list})
}

// handleConvert godoc
// @Summary Convert a BLHELI_32 melody to RTTTL
// @Tags convert
// @Accept json
// @Produce json
// @Param request body ConvertRequest true "Melody and header options"
// @Success 200 {object} ConvertResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/convert [post]
func (s *Server) handleConvert(c *gin.Context) {
	_, res, ok := s.convertRequest(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, ConvertResponse{
		RTTTL:          res.RTTTL,
		InvalidSymbols: res.InvalidSymbols(),
		Warnings:       warningResponses(res.Warnings),
	})
}

// handleMIDI godoc
// @Summary Convert a BLHELI_32 melody to a MIDI preview
// @Tags convert
// @Accept json
// @Produce audio/midi
// @Param request body ConvertRequest true "Melody and header options"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/v1/convert/midi [post]
func (s *Server) handleMIDI(c *gin.Context) {
	conv, res, ok := s.convertRequest(c)
	if !ok {
		return
	}

	data, err := conv.RTTTLToMIDI(res.RTTTL)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=melody.mid")
	c.Data(http.StatusOK, "audio/midi", data)
}

// handleVoices godoc
// @Summary Convert up to one melody per ESC
// @Tags convert
// @Accept json
// @Produce json
// @Param request body VoicesRequest true "Melodies and header options"
// @Success 200 {object} VoicesResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/convert/voices [post]
func (s *Server) handleVoices(c *gin.Context) {
	var req VoicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	conv, ok := s.converterFor(c, req.Device)
	if !ok {
		return
	}

	header := conv.Header(req.Name, req.Tempo, -1, 0)
	results, err := conv.ConvertVoices(header, req.Melodies)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := VoicesResponse{Header: header.String(), Tracks: make([]VoiceTrack, 0, len(results))}
	for i, res := range results {
		resp.Tracks = append(resp.Tracks, VoiceTrack{
			Voice:          i + 1,
			RTTTL:          res.RTTTL,
			InvalidSymbols: res.InvalidSymbols(),
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) convertRequest(c *gin.Context) (*converter.Converter, converter.Result, bool) {
	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return nil, converter.Result{}, false
	}

	conv, ok := s.converterFor(c, req.Device)
	if !ok {
		return nil, converter.Result{}, false
	}

	octave := -1
	if req.Octave != nil {
		octave = *req.Octave
	}
	header := conv.Header(req.Name, req.Tempo, octave, req.Duration)
	return conv, conv.Convert(header.String(), req.Melody), true
}

func (s *Server) converterFor(c *gin.Context, name string) (*converter.Converter, bool) {
	if name == "" {
		name = s.defaultDevice
	}
	device, ok := devices.Lookup(name)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown device %q", name)})
		return nil, false
	}
	return converter.New(device, converter.WithLogger(s.logger)), true
}

func warningResponses(warnings []converter.Warning) []WarningResponse {
	out := make([]WarningResponse, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, WarningResponse{
			Kind:     w.Kind.String(),
			Token:    w.Token,
			Position: w.Position,
			Message:  w.Error(),
		})
	}
	return out
}
