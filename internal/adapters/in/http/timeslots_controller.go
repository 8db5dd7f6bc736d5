package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/dentist-timeslots-generator/internal/config"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/domain"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/json_types"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/ports/in"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/ports/out"
	"github.com/suchimauz/dentist-timeslots-generator/internal/utils"
)

type TimeSlotsController struct {
	useCase     in.TimeSlotsUseCase
	cfg         *config.Config
	rateLimiter *IPRateLimiter
	logger      out.LoggerPort
}

func NewTimeSlotsController(useCase in.TimeSlotsUseCase, cfg *config.Config, logger out.LoggerPort) (*TimeSlotsController, error) {
	rateLimiter, err := NewIPRateLimiter(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst)
	if err != nil {
		return nil, err
	}

	return &TimeSlotsController{
		useCase:     useCase,
		cfg:         cfg,
		rateLimiter: rateLimiter,
		logger:      logger.WithModule("TimeSlotsController"),
	}, nil
}

func (c *TimeSlotsController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(c.rateLimiter.Middleware(), basicAuth(c.cfg.Auth.BasicClients))
	{
		api.GET("/timeslots", c.getTimeSlots)
		api.POST("/timeslots", c.postTimeSlots)
		api.DELETE("/cache/timeslots/:clinicId", c.invalidateClinicCache)
		api.DELETE("/cache/timeslots", c.invalidateAllCache)
	}
}

type GetTimeSlotsRequest struct {
	Clinic string             `json:"clinic" binding:"required"`
	Start  *json_types.Millis `json:"start" binding:"required"`
	End    *json_types.Millis `json:"end" binding:"required"`
}

func (c *TimeSlotsController) getTimeSlots(ctx *gin.Context) {
	clinicID := ctx.Query("clinic")
	if clinicID == "" {
		ctx.JSON(http.StatusBadRequest, domain.NewBadRequestEnvelope("Missing clinic"))
		return
	}

	start, err := strconv.ParseInt(ctx.Query("start"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, domain.NewBadRequestEnvelope("Invalid start"))
		return
	}

	end, err := strconv.ParseInt(ctx.Query("end"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, domain.NewBadRequestEnvelope("Invalid end"))
		return
	}

	c.respondTimeSlots(ctx, clinicID, utils.FromUnixMilliIn(start, c.cfg.Location), utils.FromUnixMilliIn(end, c.cfg.Location))
}

func (c *TimeSlotsController) postTimeSlots(ctx *gin.Context) {
	var req GetTimeSlotsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, domain.NewBadRequestEnvelope(err.Error()))
		return
	}

	c.respondTimeSlots(ctx, req.Clinic, req.Start.Time, req.End.Time)
}

func (c *TimeSlotsController) respondTimeSlots(ctx *gin.Context, clinicID string, start, end time.Time) {
	slots, err := c.useCase.GetTimeSlots(ctx.Request.Context(), clinicID, start, end)
	if err != nil {
		envelope := domain.ToErrorEnvelope(err)
		if envelope.Error.Code >= http.StatusInternalServerError {
			c.logger.Error("http.timeslots.failed", out.LogFields{
				"requestId": ctx.GetString(requestIDKey),
				"clinicId":  clinicID,
				"error":     err.Error(),
			})
		}
		ctx.JSON(envelope.Error.Code, envelope)
		return
	}

	if slots == nil {
		slots = []domain.TimeSlot{}
	}
	ctx.JSON(http.StatusOK, slots)
}

func (c *TimeSlotsController) invalidateClinicCache(ctx *gin.Context) {
	if err := c.useCase.InvalidateClinicCache(ctx.Request.Context(), ctx.Param("clinicId")); err != nil {
		c.logger.Error("http.cache.invalidate_clinic.failed", out.LogFields{
			"requestId": ctx.GetString(requestIDKey),
			"error":     err.Error(),
		})
		ctx.JSON(http.StatusInternalServerError, domain.ToErrorEnvelope(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *TimeSlotsController) invalidateAllCache(ctx *gin.Context) {
	if err := c.useCase.InvalidateAllCache(ctx.Request.Context()); err != nil {
		c.logger.Error("http.cache.invalidate_all.failed", out.LogFields{
			"requestId": ctx.GetString(requestIDKey),
			"error":     err.Error(),
		})
		ctx.JSON(http.StatusInternalServerError, domain.ToErrorEnvelope(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
