package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examprep/internal/controller"
	"github.com/lshigami/examprep/internal/dto"
	"github.com/lshigami/examprep/internal/service"
)

const defaultStreakLeaderboardLimit = 10

type ProgressController struct {
	streakService  service.StreakService
	attemptService service.AttemptService
}

func NewProgressController(ss service.StreakService, as service.AttemptService) *ProgressController {
	return &ProgressController{streakService: ss, attemptService: as}
}

func (c *ProgressController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/streak", c.GetStreak)
	rg.GET("/stats", c.GetStats)
	rg.GET("/leaderboard", c.GetLeaderboard)
	rg.GET("/leaderboard/streaks", c.GetStreakLeaderboard)
}

// GetStreak godoc
// @Summary (User) Current and longest streak
// @Tags User - Progress
// @Produce json
// @Param X-User-ID header string true "Caller (or ?user_id=)"
// @Success 200 {object} dto.StreakResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Caller not identified"
// @Router /streak [get]
func (c *ProgressController) GetStreak(ctx *gin.Context) {
	userID := controller.UserID(ctx)
	if userID == "" {
		controller.RespondError(ctx, service.ErrMissingUser, "Failed to retrieve streak")
		return
	}
	streak, err := c.streakService.GetStreak(ctx.Request.Context(), userID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve streak")
		return
	}
	ctx.JSON(http.StatusOK, streak)
}

// GetStats godoc
// @Summary (User) Accuracy totals and per-subject breakdown
// @Tags User - Progress
// @Produce json
// @Param X-User-ID header string true "Caller (or ?user_id=)"
// @Success 200 {object} dto.StatsResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Caller not identified"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /stats [get]
func (c *ProgressController) GetStats(ctx *gin.Context) {
	stats, err := c.attemptService.GetStats(ctx.Request.Context(), controller.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve stats")
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// GetLeaderboard godoc
// @Summary Accuracy leaderboard
// @Tags User - Progress
// @Produce json
// @Param limit query int false "20, 50 (default) or 100"
// @Success 200 {array} dto.LeaderboardEntryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /leaderboard [get]
func (c *ProgressController) GetLeaderboard(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	board, err := c.attemptService.GetLeaderboard(ctx.Request.Context(), limit)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve leaderboard")
		return
	}
	ctx.JSON(http.StatusOK, board)
}

// GetStreakLeaderboard godoc
// @Summary Longest-streak leaderboard
// @Description Empty when Redis is not configured.
// @Tags User - Progress
// @Produce json
// @Param limit query int false "Number of entries, default 10"
// @Success 200 {array} repository.StreakLeaderboardEntry
// @Failure 400 {object} dto.ErrorResponse "Invalid limit"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /leaderboard/streaks [get]
func (c *ProgressController) GetStreakLeaderboard(ctx *gin.Context) {
	limit := int64(defaultStreakLeaderboardLimit)
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 || parsed > 100 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid limit, expected 1-100"})
			return
		}
		limit = parsed
	}
	entries, err := c.streakService.TopStreaks(ctx.Request.Context(), limit)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve streak leaderboard")
		return
	}
	ctx.JSON(http.StatusOK, entries)
}
