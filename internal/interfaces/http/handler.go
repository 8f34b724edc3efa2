// @title           Marketboard API
// @version         1.0
// @description     Mock B3 market snapshot with search and company details

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1

package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	appmarket "marketboard/internal/application/service/market"
	market "marketboard/internal/domain/entity/market"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const apiBasePath = "/api/v1"

var errMissingSymbol = errors.New("missing symbol")

type Handler struct {
	router   *gin.Engine
	market   *appmarket.Service
	cache    *redis.Client
	cacheTTL time.Duration
	logger   logrus.FieldLogger
}

func NewHandler(svc *appmarket.Service, cache *redis.Client, cacheTTL time.Duration, logger logrus.FieldLogger) *Handler {
	router := gin.New()
	router.Use(gin.Recovery())

	h := &Handler{
		router:   router,
		market:   svc,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger.WithField("component", "http"),
	}
	h.registerRoutes()
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := h.router.Group(apiBasePath)
	if h.cache != nil {
		api.Use(h.cacheMiddleware())
	}
	{
		api.GET("/companies", h.listCompanies)
		api.POST("/companies/refresh", h.refreshCompanies)
		api.GET("/companies/:symbol", h.getCompany)
		api.GET("/sectors", h.listSectors)
	}
}

type companiesQuery struct {
	Query    string   `form:"q"`
	Sector   string   `form:"sector"`
	MinPrice *float64 `form:"min_price" binding:"omitempty,gte=0"`
	MaxPrice *float64 `form:"max_price" binding:"omitempty,gte=0"`
}

func (q companiesQuery) toCriteria() market.Criteria {
	return market.Criteria{
		Query:    q.Query,
		Sector:   q.Sector,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
	}
}

// listCompanies lists the current batch, optionally filtered
// @Summary      List companies
// @Description  Companies of the current batch ordered by volume, filtered by free text, sector and price range
// @Tags         companies
// @Produce      json
// @Param        q          query     string  false  "Free text matched against name, symbol and sector"
// @Param        sector     query     string  false  "Sector, case insensitive"
// @Param        min_price  query     number  false  "Minimum price"
// @Param        max_price  query     number  false  "Maximum price"
// @Success      200        {object}  listResponse
// @Failure      400        {object}  map[string]string
// @Failure      503        {object}  map[string]string
// @Router       /companies [get]
func (h *Handler) listCompanies(c *gin.Context) {
	var query companiesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	result, err := h.market.Search(c.Request.Context(), query.toCriteria())
	if err != nil {
		writeError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, newListResponse(result))
}

// refreshCompanies regenerates the batch
// @Summary      Refresh companies
// @Description  Generate a new batch that replaces the current one
// @Tags         companies
// @Produce      json
// @Success      200  {object}  batchResponse
// @Failure      503  {object}  map[string]string
// @Router       /companies/refresh [post]
func (h *Handler) refreshCompanies(c *gin.Context) {
	batch, err := h.market.Refresh(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Warn("refresh failed")
		writeError(c, statusFor(err), err)
		return
	}
	h.logger.WithFields(logrus.Fields{
		"batch_id":  batch.ID,
		"companies": batch.Len(),
	}).Info("batch refreshed")
	c.JSON(http.StatusOK, newBatchResponse(batch))
}

// getCompany returns the detail view of one company
// @Summary      Get company
// @Description  Detail view of a company of the current batch
// @Tags         companies
// @Produce      json
// @Param        symbol  path      string  true  "Ticker symbol"
// @Success      200     {object}  companyResponse
// @Failure      404     {object}  map[string]string
// @Failure      503     {object}  map[string]string
// @Router       /companies/{symbol} [get]
func (h *Handler) getCompany(c *gin.Context) {
	symbol := c.Param("symbol")
	if symbol == "" {
		writeError(c, http.StatusBadRequest, errMissingSymbol)
		return
	}
	company, err := h.market.Company(c.Request.Context(), symbol)
	if err != nil {
		writeError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, newCompanyResponse(company))
}

// listSectors lists the sectors of the current batch
// @Summary      List sectors
// @Tags         sectors
// @Produce      json
// @Success      200  {array}   string
// @Failure      503  {object}  map[string]string
// @Router       /sectors [get]
func (h *Handler) listSectors(c *gin.Context) {
	sectors, err := h.market.Sectors(c.Request.Context())
	if err != nil {
		writeError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, sectors)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, appmarket.ErrCompanyNotFound):
		return http.StatusNotFound
	case errors.Is(err, appmarket.ErrInvalidBounds):
		return http.StatusBadRequest
	case errors.Is(err, appmarket.ErrDataUnavailable),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, status int, err error) {
	if err == nil {
		status = http.StatusInternalServerError
		err = errors.New("unknown error")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// cacheMiddleware caches GET responses in Redis. Keys carry the current
// batch ID, so a refresh leaves older entries unreachable until they expire.
func (h *Handler) cacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.cache == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		batch := h.market.Current()
		if batch == nil {
			c.Next()
			return
		}

		key := h.cacheKey(c, batch)
		ctx := c.Request.Context()

		if cached, err := h.cache.Get(ctx, key).Bytes(); err == nil {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			c.Abort()
			return
		} else if !errors.Is(err, redis.Nil) {
			h.logger.WithError(err).Warn("cache lookup failed")
		}

		recorder := &responseRecorder{
			ResponseWriter: c.Writer,
			status:         http.StatusOK,
			body:           &bytes.Buffer{},
		}
		c.Writer = recorder
		c.Header("X-Cache", "MISS")

		c.Next()

		if recorder.status >= 200 && recorder.status < 300 && recorder.body.Len() > 0 {
			if err := h.cache.Set(ctx, key, recorder.body.Bytes(), h.cacheTTL).Err(); err != nil {
				h.logger.WithError(err).Warn("cache store failed")
			}
		}
	}
}

type responseRecorder struct {
	gin.ResponseWriter
	body   *bytes.Buffer
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseRecorder) Write(data []byte) (int, error) {
	if len(data) > 0 {
		r.body.Write(data)
	}
	return r.ResponseWriter.Write(data)
}

func (h *Handler) cacheKey(c *gin.Context, batch *market.Batch) string {
	return fmt.Sprintf("cache:%s:%s:%s?%s", batch.ID, c.Request.Method, c.Request.URL.Path, c.Request.URL.RawQuery)
}
