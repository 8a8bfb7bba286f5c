// Package server exposes the processing pipeline over HTTP.
package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	mathclean "github.com/riverfjs/mathclean-go"
	"github.com/riverfjs/mathclean-go/internal/render"
)

// MaxUploadSize 上传文件的大小上限
const MaxUploadSize = 4 << 20

// Options 服务配置
type Options struct {
	// Renderer 排版引擎，为 nil 时使用 TreeBlood
	Renderer render.Renderer
	// Config 为 nil 时使用默认配置
	Config *mathclean.Config
	// Now 用于下载文件名的时间，测试中可替换
	Now func() time.Time
}

// Server HTTP 服务
type Server struct {
	engine   *gin.Engine
	renderer render.Renderer
	config   mathclean.Config
	now      func() time.Time
}

// processRequest /api/process 与 /api/download 的请求体
type processRequest struct {
	Input    string `json:"input"`
	Strategy string `json:"strategy"`
	Brackets *bool  `json:"brackets"`
}

// New 创建服务并注册路由
func New(opts Options) *Server {
	s := &Server{
		renderer: opts.Renderer,
		now:      opts.Now,
	}
	if s.renderer == nil {
		s.renderer = render.NewTreeBlood(nil)
	}
	if opts.Config != nil {
		s.config = *opts.Config
	} else {
		s.config = *mathclean.DefaultConfig()
	}
	if s.now == nil {
		s.now = time.Now
	}

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())
	engine.MaxMultipartMemory = MaxUploadSize
	engine.GET("/healthz", s.handleHealth)
	api := engine.Group("/api")
	api.POST("/process", s.handleProcess)
	api.POST("/upload", s.handleUpload)
	api.POST("/download", s.handleDownload)
	s.engine = engine
	return s
}

// Handler 返回 http.Handler
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run 在 addr 上监听
func (s *Server) Run(addr string) error {
	mathclean.Logger.Printf("listening on %s", addr)
	return s.engine.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// process 按请求选择策略并处理 input
func (s *Server) process(input, strategy string, brackets *bool) (*mathclean.Result, error) {
	cfg := s.config
	if brackets != nil {
		cfg.Brackets = *brackets
	}

	var st mathclean.Strategy
	switch strategy {
	case "", mathclean.StrategyRich:
		st = mathclean.NewRichStrategy(s.renderer, &cfg)
	case mathclean.StrategyPlain:
		st = mathclean.NewPlainStrategy(&cfg)
	default:
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}
	return mathclean.Process(input, mathclean.WithStrategy(st))
}

// respond 将处理结果写成 JSON，错误映射为状态码
func respond(c *gin.Context, res *mathclean.Result, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, res)
	case errors.Is(err, mathclean.ErrEmptyInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "input is empty"})
	case errors.Is(err, mathclean.ErrNoContent):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "result": res})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

func (s *Server) handleProcess(c *gin.Context) {
	var req processRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	res, err := s.process(req.Input, req.Strategy, req.Brackets)
	respond(c, res, err)
}

// handleUpload 处理上传的文本文件，编码自动识别
func (s *Server) handleUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file upload error: " + err.Error()})
		return
	}
	if file.Size > MaxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error opening file: " + err.Error()})
		return
	}
	defer f.Close()

	buf, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error reading file: " + err.Error()})
		return
	}

	input, enc, err := mathclean.DecodeInput(buf)
	if err != nil {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
		return
	}
	c.Header("X-Input-Encoding", string(enc))

	var brackets *bool
	if v := c.PostForm("brackets"); v != "" {
		b := v == "true" || v == "1"
		brackets = &b
	}
	res, err := s.process(input, c.PostForm("strategy"), brackets)
	respond(c, res, err)
}

// handleDownload 返回独立的 HTML 文档作为附件
func (s *Server) handleDownload(c *gin.Context) {
	var req processRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	res, err := s.process(req.Input, req.Strategy, req.Brackets)
	if err != nil {
		respond(c, res, err)
		return
	}

	name, data, err := mathclean.Download(res, &s.config, s.now())
	if err != nil {
		respond(c, res, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "text/html; charset=utf-8", data)
}
