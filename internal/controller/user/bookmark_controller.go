package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examprep/internal/controller"
	"github.com/lshigami/examprep/internal/dto"
	"github.com/lshigami/examprep/internal/service"
)

type BookmarkController struct {
	bookmarkService service.BookmarkService
}

func NewBookmarkController(bs service.BookmarkService) *BookmarkController {
	return &BookmarkController{bookmarkService: bs}
}

func (c *BookmarkController) RegisterRoutes(rg *gin.RouterGroup) {
	bookmarks := rg.Group("/bookmarks")
	bookmarks.GET("", c.ListBookmarks)
	bookmarks.POST("", c.AddBookmark)
	bookmarks.DELETE("/:question_id", c.RemoveBookmark)
}

// ListBookmarks godoc
// @Summary (User) Saved questions
// @Tags User - Bookmarks
// @Produce json
// @Param X-User-ID header string true "Caller (or ?user_id=)"
// @Success 200 {array} dto.BookmarkResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Caller not identified"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bookmarks [get]
func (c *BookmarkController) ListBookmarks(ctx *gin.Context) {
	list, err := c.bookmarkService.ListBookmarks(ctx.Request.Context(), controller.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve bookmarks")
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// AddBookmark godoc
// @Summary (User) Save a question
// @Tags User - Bookmarks
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller (or ?user_id=)"
// @Param bookmark body dto.BookmarkCreateDTO true "Question to save"
// @Success 201 {object} dto.BookmarkResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 409 {object} dto.ErrorResponse "Already bookmarked"
// @Router /bookmarks [post]
func (c *BookmarkController) AddBookmark(ctx *gin.Context) {
	var req dto.BookmarkCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err, "AddBookmark")
		return
	}
	resp, err := c.bookmarkService.AddBookmark(ctx.Request.Context(), controller.UserID(ctx), req.QuestionID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to add bookmark")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// RemoveBookmark godoc
// @Summary (User) Remove a saved question
// @Tags User - Bookmarks
// @Param X-User-ID header string true "Caller (or ?user_id=)"
// @Param question_id path string true "Question ID"
// @Success 204 "Removed"
// @Failure 404 {object} dto.ErrorResponse "Bookmark not found"
// @Router /bookmarks/{question_id} [delete]
func (c *BookmarkController) RemoveBookmark(ctx *gin.Context) {
	if err := c.bookmarkService.RemoveBookmark(ctx.Request.Context(), controller.UserID(ctx), ctx.Param("question_id")); err != nil {
		controller.RespondError(ctx, err, "Failed to remove bookmark")
		return
	}
	ctx.Status(http.StatusNoContent)
}
