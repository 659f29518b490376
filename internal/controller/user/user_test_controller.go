package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examprep/internal/controller"
	"github.com/lshigami/examprep/internal/dto"
	"github.com/lshigami/examprep/internal/service"
	"github.com/rs/zerolog/log"
)

type UserTestController struct {
	dailySetService       service.DailySetService
	userTestService       service.UserTestService
	testSubmissionService service.TestSubmissionService
	attemptService        service.AttemptService
	wrongPoolService      service.WrongPoolService
}

func NewUserTestController(
	dss service.DailySetService,
	uts service.UserTestService,
	tss service.TestSubmissionService,
	as service.AttemptService,
	wps service.WrongPoolService,
) *UserTestController {
	return &UserTestController{
		dailySetService:       dss,
		userTestService:       uts,
		testSubmissionService: tss,
		attemptService:        as,
		wrongPoolService:      wps,
	}
}

func (c *UserTestController) RegisterRoutes(rg *gin.RouterGroup) {
	tests := rg.Group("/tests")
	tests.GET("/daily", c.GetDailyTest)
	tests.GET("/practice", c.GetPracticeTest)
	tests.POST("/submit", c.SubmitTest)
	tests.GET("/history", c.GetHistory)
	tests.GET("/wrong", c.GetWrongPool)
	tests.GET("/wrong/count", c.CountWrongPool)
	tests.GET("/:attempt_id", c.GetAttemptDetail)

	rg.GET("/subjects", c.GetSubjects)
}

// GetDailyTest godoc
// @Summary (User) Today's daily test
// @Description Everyone in a faculty gets the same questions in the same order on the same day. The 10-question set is the start of the 100-question set.
// @Tags User - Tests
// @Produce json
// @Param X-User-Faculty header string false "Caller's faculty (or ?faculty=)"
// @Param set query int false "Set size, 10 (default) or 100"
// @Success 200 {object} dto.DailyTestResponseDTO
// @Failure 400 {object} dto.ErrorResponse "No faculty, bad set size, or not enough questions in the faculty yet"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/daily [get]
func (c *UserTestController) GetDailyTest(ctx *gin.Context) {
	size := service.DailyShortSetSize
	if raw := ctx.Query("set"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid set size format"})
			return
		}
		size = parsed
	}

	test, err := c.dailySetService.GetDailyTest(ctx.Request.Context(), controller.Faculty(ctx), size)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve daily test")
		return
	}
	ctx.JSON(http.StatusOK, test)
}

// GetPracticeTest godoc
// @Summary (User) Random practice test
// @Tags User - Tests
// @Produce json
// @Param subject query string false "Subject, empty for all"
// @Param count query int false "Number of questions, default 10, at most 100"
// @Success 200 {object} dto.PracticeTestResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid count"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/practice [get]
func (c *UserTestController) GetPracticeTest(ctx *gin.Context) {
	count := 0
	if raw := ctx.Query("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid count format"})
			return
		}
		count = parsed
	}
	test, err := c.userTestService.GetPracticeTest(ctx.Request.Context(), ctx.Query("subject"), count)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to build practice test")
		return
	}
	ctx.JSON(http.StatusOK, test)
}

// SubmitTest godoc
// @Summary (User) Submit a finished test
// @Description Grades every answer against the stored key, stores the attempt and records today's activity for the streak. Unknown or unanswered questions count as incorrect. time_taken is clamped to the test's duration.
// @Tags User - Tests
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller (or ?user_id=)"
// @Param X-User-Faculty header string false "Caller's faculty"
// @Param submission body dto.TestAttemptSubmitDTO true "Answers"
// @Success 201 {object} dto.SubmitResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid submission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/submit [post]
func (c *UserTestController) SubmitTest(ctx *gin.Context) {
	var req dto.TestAttemptSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err, "SubmitTest")
		return
	}

	userID := controller.UserID(ctx)
	result, err := c.testSubmissionService.SubmitTest(ctx.Request.Context(), userID, controller.Faculty(ctx), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to submit test")
		return
	}
	log.Info().Str("userID", userID).Str("attemptID", result.AttemptID).Msg("User SubmitTest: Test graded")
	ctx.JSON(http.StatusCreated, result)
}

// GetHistory godoc
// @Summary (User) Attempt history
// @Tags User - Tests
// @Produce json
// @Param X-User-ID header string true "Caller (or ?user_id=)"
// @Param scope query string false "'faculty' to restrict to the caller's faculty"
// @Success 200 {array} dto.TestAttemptSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Caller not identified"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/history [get]
func (c *UserTestController) GetHistory(ctx *gin.Context) {
	history, err := c.attemptService.GetHistory(ctx.Request.Context(), controller.UserID(ctx), facultyScope(ctx))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve history")
		return
	}
	ctx.JSON(http.StatusOK, history)
}

// GetAttemptDetail godoc
// @Summary (User) Attempt breakdown
// @Description Per-answer breakdown with the correct answer and explanation. Only the owner can see an attempt.
// @Tags User - Tests
// @Produce json
// @Param X-User-ID header string true "Caller (or ?user_id=)"
// @Param attempt_id path string true "Attempt ID"
// @Success 200 {object} dto.TestAttemptDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{attempt_id} [get]
func (c *UserTestController) GetAttemptDetail(ctx *gin.Context) {
	detail, err := c.attemptService.GetAttemptDetail(ctx.Request.Context(), controller.UserID(ctx), ctx.Param("attempt_id"))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve attempt")
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// GetWrongPool godoc
// @Summary (User) Questions answered wrong most recently
// @Description A question stays here until the caller's latest answer to it is correct. At most 10 are returned.
// @Tags User - Tests
// @Produce json
// @Param X-User-ID header string true "Caller (or ?user_id=)"
// @Param scope query string false "'all' to include every faculty; defaults to the caller's faculty"
// @Success 200 {array} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Caller not identified"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/wrong [get]
func (c *UserTestController) GetWrongPool(ctx *gin.Context) {
	pool, err := c.wrongPoolService.GetWrongPool(ctx.Request.Context(), controller.UserID(ctx), wrongPoolScope(ctx))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve wrong answers")
		return
	}
	ctx.JSON(http.StatusOK, pool)
}

// CountWrongPool godoc
// @Summary (User) Size of the wrong-answer pool
// @Tags User - Tests
// @Produce json
// @Param X-User-ID header string true "Caller (or ?user_id=)"
// @Param scope query string false "'all' to include every faculty; defaults to the caller's faculty"
// @Success 200 {object} dto.CountResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Caller not identified"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/wrong/count [get]
func (c *UserTestController) CountWrongPool(ctx *gin.Context) {
	count, err := c.wrongPoolService.CountWrongPool(ctx.Request.Context(), controller.UserID(ctx), wrongPoolScope(ctx))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to count wrong answers")
		return
	}
	ctx.JSON(http.StatusOK, dto.CountResponseDTO{Count: count})
}

// GetSubjects godoc
// @Summary (User) List subjects
// @Tags User - Tests
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects [get]
func (c *UserTestController) GetSubjects(ctx *gin.Context) {
	subjects, err := c.userTestService.GetSubjects(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve subjects")
		return
	}
	ctx.JSON(http.StatusOK, subjects)
}

// facultyScope is the caller's faculty when ?scope=faculty is given, otherwise every faculty.
func facultyScope(ctx *gin.Context) string {
	if ctx.Query("scope") == "faculty" {
		return controller.Faculty(ctx)
	}
	return ""
}

// wrongPoolScope defaults to the caller's faculty; ?scope=all widens it to every faculty.
func wrongPoolScope(ctx *gin.Context) string {
	if ctx.Query("scope") == "all" {
		return ""
	}
	return controller.Faculty(ctx)
}
