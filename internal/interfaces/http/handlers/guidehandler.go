package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/guide/usecases"
	"helpdesk/internal/interfaces/dto"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// GuideHandler serves the knowledge base. Reading is open to every
// authenticated user; authoring is admin-only.
type GuideHandler struct {
	listCategoriesUseCase *usecases.ListCategoriesUseCase
	getGuideUseCase       *usecases.GetGuideUseCase
	listGuidesUseCase     *usecases.ListGuidesUseCase
	createGuideUseCase    *usecases.CreateGuideUseCase
	updateGuideUseCase    *usecases.UpdateGuideUseCase
	deleteGuideUseCase    *usecases.DeleteGuideUseCase
	createCategoryUseCase *usecases.CreateCategoryUseCase
	updateCategoryUseCase *usecases.UpdateCategoryUseCase
	deleteCategoryUseCase *usecases.DeleteCategoryUseCase
	logger                logger.Interface
}

func NewGuideHandler(
	listCategoriesUseCase *usecases.ListCategoriesUseCase,
	getGuideUseCase *usecases.GetGuideUseCase,
	listGuidesUseCase *usecases.ListGuidesUseCase,
	createGuideUseCase *usecases.CreateGuideUseCase,
	updateGuideUseCase *usecases.UpdateGuideUseCase,
	deleteGuideUseCase *usecases.DeleteGuideUseCase,
	createCategoryUseCase *usecases.CreateCategoryUseCase,
	updateCategoryUseCase *usecases.UpdateCategoryUseCase,
	deleteCategoryUseCase *usecases.DeleteCategoryUseCase,
	logger logger.Interface,
) *GuideHandler {
	return &GuideHandler{
		listCategoriesUseCase: listCategoriesUseCase,
		getGuideUseCase:       getGuideUseCase,
		listGuidesUseCase:     listGuidesUseCase,
		createGuideUseCase:    createGuideUseCase,
		updateGuideUseCase:    updateGuideUseCase,
		deleteGuideUseCase:    deleteGuideUseCase,
		createCategoryUseCase: createCategoryUseCase,
		updateCategoryUseCase: updateCategoryUseCase,
		deleteCategoryUseCase: deleteCategoryUseCase,
		logger:                logger,
	}
}

// ListCategories handles GET /guides
func (h *GuideHandler) ListCategories(c *gin.Context) {
	result, err := h.listCategoriesUseCase.Execute(c.Request.Context(), usecases.ListCategoriesCommand{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.FromCategoriesWithGuides(result.Categories))
}

// GetGuide handles GET /guides/:slug
func (h *GuideHandler) GetGuide(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	result, err := h.getGuideUseCase.Execute(c.Request.Context(), usecases.GetGuideCommand{
		Slug:            c.Param("slug"),
		IncludeInactive: actor.IsAdmin(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.FromGuideDetail(result))
}

// ListGuides handles GET /admin/guides
func (h *GuideHandler) ListGuides(c *gin.Context) {
	page := utils.ParsePagination(c)

	cmd := usecases.ListGuidesCommand{
		Search:   c.Query("search"),
		Page:     page.Page,
		PageSize: page.PerPage,
	}
	if raw := c.Query("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			categoryID := uint(id)
			cmd.CategoryID = &categoryID
		}
	}

	result, err := h.listGuidesUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, "", dto.FromGuideSummaries(result.Guides), result.Total, page.Page, page.PerPage)
}

type createGuideRequest struct {
	CategoryID uint     `json:"category_id" binding:"required"`
	Title      string   `json:"title" binding:"required"`
	Slug       string   `json:"slug"`
	Problem    string   `json:"problem" binding:"required"`
	Solutions  []string `json:"solutions" binding:"required,min=1"`
	SortOrder  int      `json:"sort_order"`
}

// CreateGuide handles POST /admin/guides
func (h *GuideHandler) CreateGuide(c *gin.Context) {
	var req createGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createGuideUseCase.Execute(c.Request.Context(), usecases.CreateGuideCommand{
		CategoryID: req.CategoryID,
		Title:      req.Title,
		Slug:       req.Slug,
		Problem:    req.Problem,
		Solutions:  req.Solutions,
		SortOrder:  req.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "Guide created", dto.FromGuideSummary(result.Guide))
}

type updateGuideRequest struct {
	CategoryID uint     `json:"category_id" binding:"required"`
	Title      string   `json:"title" binding:"required"`
	Slug       string   `json:"slug"`
	Problem    string   `json:"problem" binding:"required"`
	Solutions  []string `json:"solutions" binding:"required,min=1"`
	Active     bool     `json:"active"`
	SortOrder  int      `json:"sort_order"`
}

// UpdateGuide handles PUT /admin/guides/:id
func (h *GuideHandler) UpdateGuide(c *gin.Context) {
	guideID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req updateGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateGuideUseCase.Execute(c.Request.Context(), usecases.UpdateGuideCommand{
		GuideID:    guideID,
		CategoryID: req.CategoryID,
		Title:      req.Title,
		Slug:       req.Slug,
		Problem:    req.Problem,
		Solutions:  req.Solutions,
		Active:     req.Active,
		SortOrder:  req.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Guide updated", dto.FromGuideSummary(result.Guide))
}

// DeleteGuide handles DELETE /admin/guides/:id
func (h *GuideHandler) DeleteGuide(c *gin.Context) {
	guideID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteGuideUseCase.Execute(c.Request.Context(), usecases.DeleteGuideCommand{GuideID: guideID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Guide deleted", nil)
}

type categoryRequest struct {
	Title     string `json:"title" binding:"required"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
}

// CreateCategory handles POST /admin/guide-categories
func (h *GuideHandler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createCategoryUseCase.Execute(c.Request.Context(), usecases.CreateCategoryCommand{
		Title:     req.Title,
		Icon:      req.Icon,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "Category created", dto.FromGuideCategory(result.Category))
}

// UpdateCategory handles PUT /admin/guide-categories/:id
func (h *GuideHandler) UpdateCategory(c *gin.Context) {
	categoryID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateCategoryUseCase.Execute(c.Request.Context(), usecases.UpdateCategoryCommand{
		CategoryID: categoryID,
		Title:      req.Title,
		Icon:       req.Icon,
		SortOrder:  req.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category updated", dto.FromGuideCategory(result.Category))
}

// DeleteCategory handles DELETE /admin/guide-categories/:id
func (h *GuideHandler) DeleteCategory(c *gin.Context) {
	categoryID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteCategoryUseCase.Execute(c.Request.Context(), usecases.DeleteCategoryCommand{CategoryID: categoryID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category deleted", nil)
}
