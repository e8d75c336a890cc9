package api

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"profitcalc/internal/db/models/postgres/public/model"
	"profitcalc/internal/logger"
	"profitcalc/internal/repository"
	"profitcalc/internal/service"
	"profitcalc/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	Db                   *sql.DB
	CalculationService   service.CalculationService
	ReportService        service.ReportService
	EmailService         service.EmailService
	ExplanationService   service.ExplanationService
	ApiRequestRepository repository.ApiRequestRepository
	RateLimiter          RateLimiter
	ExportTokens         ExportTokenIssuer
	AdminApiKey          string
	RequestTimeout       time.Duration
}

const shutdownTimeout = 10 * time.Second

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)
	router.Use(m.timeoutMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to the profit calculator"})
	})
	router.GET("/healthz", m.healthz)

	limited := router.Group("/", rateLimitMiddleware(m.RateLimiter))
	limited.POST("/calculate", m.calculateProfit)
	limited.POST("/export", m.exportReport)
	limited.POST("/report/email", m.emailReport)
	limited.POST("/explain", m.explain)

	admin := router.Group("/admin", m.adminAuthMiddleware)
	admin.GET("/calculations", m.listCalculations)
	admin.GET("/analytics", m.analytics)

	return router
}

// StartApi serves until ctx is cancelled, then drains in-flight requests
func (m ApiHandler) StartApi(ctx context.Context, port int) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           m.InitializeRouterEngine(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.FromContext(ctx).Infow("starting api", "port", port)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("api server stopped: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down api: %w", err)
	}
	return nil
}

const internalErrorMessage = "Something went wrong. Please try again."

// returnErrorJson logs err and answers 500 with msg. Internal error text
// is never sent to the client.
func returnErrorJson(err error, c *gin.Context, msg string) {
	logger.FromContext(c.Request.Context()).Errorw(msg, "error", err)
	c.AbortWithStatusJSON(500, gin.H{
		"error": msg,
	})
}

// returnErrorJsonCode answers with err's text, so err must be fit for users
func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Infow("request rejected", "status", code, "error", err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) healthz(c *gin.Context) {
	if m.Db != nil {
		if err := m.Db.PingContext(c.Request.Context()); err != nil {
			logger.FromContext(c.Request.Context()).Errorw("db ping failed", "error", err)
			c.JSON(503, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(200, gin.H{"status": "ok"})
}

func (m ApiHandler) timeoutMiddleware(c *gin.Context) {
	if m.RequestTimeout <= 0 {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), m.RequestTimeout)
	defer cancel()

	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// logRequestMiddleware attaches a request scoped logger and records every
// request with its response in the api_request table
func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	requestID := uuid.New()
	lg := logger.FromContext(c.Request.Context()).With(
		"requestID", requestID,
		"method", c.Request.Method,
		"route", c.Request.URL.Path,
	)
	ctx := logger.NewContext(c.Request.Context(), lg)
	c.Request = c.Request.WithContext(ctx)

	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
	c.Writer = w

	body, err := c.GetRawData()
	if err != nil {
		lg.Warnw("failed to read request body", "error", err)
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	var req *model.APIRequest
	if m.ApiRequestRepository != nil {
		req, err = m.ApiRequestRepository.Add(ctx, model.APIRequest{
			RequestID:   requestID,
			IPAddress:   util.StringPointer(c.ClientIP()),
			Method:      c.Request.Method,
			Route:       c.Request.URL.Path,
			RequestBody: util.StringPointer(string(body)),
			StartTs:     start,
		})
		if err != nil {
			lg.Errorw("failed to store api request", "error", err)
		}
	}

	c.Next()

	duration := time.Since(start)
	status := c.Writer.Status()
	lg.Infow("handled request", "status", status, "durationMs", duration.Milliseconds())

	if req != nil {
		req.DurationMs = util.Int64Pointer(duration.Milliseconds())
		req.StatusCode = util.Int32Pointer(int32(status))
		req.ResponseBody = util.StringPointer(w.body.String())

		// the request context may already be cancelled by the timeout
		err = m.ApiRequestRepository.Update(context.WithoutCancel(ctx), *req)
		if err != nil {
			lg.Errorw("failed to update api request", "error", err)
		}
	}
}
