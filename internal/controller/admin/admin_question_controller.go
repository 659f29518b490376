package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examprep/internal/controller"
	"github.com/lshigami/examprep/internal/dto"
	"github.com/lshigami/examprep/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminQuestionController struct {
	questionService service.QuestionService
}

func NewAdminQuestionController(questionService service.QuestionService) *AdminQuestionController {
	return &AdminQuestionController{questionService: questionService}
}

// RegisterRoutes mounts the question catalog under rg, behind the admin guard.
func (c *AdminQuestionController) RegisterRoutes(rg *gin.RouterGroup) {
	questions := rg.Group("/admin/questions", controller.RequireAdmin())
	questions.GET("", c.ListQuestions)
	questions.POST("", c.CreateQuestion)
	questions.POST("/import", c.ImportQuestions)
	questions.GET("/:id", c.GetQuestion)
	questions.PUT("/:id", c.UpdateQuestion)
	questions.DELETE("/:id", c.DeleteQuestion)
}

// ListQuestions godoc
// @Summary (Admin) List questions
// @Description List every question, optionally restricted to one subject.
// @Tags Admin - Questions
// @Produce json
// @Param X-User-Role header string true "Must be admin"
// @Param subject query string false "Subject filter"
// @Success 200 {array} dto.QuestionResponseDTO
// @Failure 403 {object} dto.ErrorResponse "Not an admin"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions [get]
func (c *AdminQuestionController) ListQuestions(ctx *gin.Context) {
	questions, err := c.questionService.ListQuestions(ctx.Request.Context(), ctx.Query("subject"))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve questions")
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// CreateQuestion godoc
// @Summary (Admin) Create a question
// @Description The correct answer must be one of the options.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param X-User-Role header string true "Must be admin"
// @Param question body dto.QuestionCreateDTO true "Question data"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 403 {object} dto.ErrorResponse "Not an admin"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions [post]
func (c *AdminQuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err, "Admin CreateQuestion")
		return
	}
	resp, err := c.questionService.CreateQuestion(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to create question")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetQuestion godoc
// @Summary (Admin) Get a question
// @Tags Admin - Questions
// @Produce json
// @Param X-User-Role header string true "Must be admin"
// @Param id path string true "Question ID"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{id} [get]
func (c *AdminQuestionController) GetQuestion(ctx *gin.Context) {
	resp, err := c.questionService.GetQuestion(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve question")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateQuestion godoc
// @Summary (Admin) Replace a question
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param X-User-Role header string true "Must be admin"
// @Param id path string true "Question ID"
// @Param question body dto.QuestionCreateDTO true "New question data"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions/{id} [put]
func (c *AdminQuestionController) UpdateQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err, "Admin UpdateQuestion")
		return
	}
	resp, err := c.questionService.UpdateQuestion(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to update question")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question
// @Description Stored attempts keep their answers; the breakdown shows the question as missing.
// @Tags Admin - Questions
// @Param X-User-Role header string true "Must be admin"
// @Param id path string true "Question ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions/{id} [delete]
func (c *AdminQuestionController) DeleteQuestion(ctx *gin.Context) {
	if err := c.questionService.DeleteQuestion(ctx.Request.Context(), ctx.Param("id")); err != nil {
		controller.RespondError(ctx, err, "Failed to delete question")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ImportQuestions godoc
// @Summary (Admin) Bulk import questions
// @Description Accepts a grouped object {subject, faculty, questions}, a flat array of questions, or a quiz export {title, desc, questions:[{q, options, answer}]}. Either every question is stored or none.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param X-User-Role header string true "Must be admin"
// @Param payload body object true "Import document"
// @Success 201 {object} dto.ImportResultDTO
// @Failure 400 {object} dto.ErrorResponse "Unrecognised or invalid document"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions/import [post]
func (c *AdminQuestionController) ImportQuestions(ctx *gin.Context) {
	raw, err := ctx.GetRawData()
	if err != nil {
		log.Warn().Err(err).Msg("Admin ImportQuestions: Failed to read body")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Could not read request body"})
		return
	}
	resp, err := c.questionService.ImportQuestions(ctx.Request.Context(), raw)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to import questions")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}
