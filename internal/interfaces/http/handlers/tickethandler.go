package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/interfaces/dto"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// TicketHandler serves the ticket lifecycle: CRUD, archival, replies and
// attachment delivery. Create, update and reply accept multipart forms so a
// file can ride along with the fields.
type TicketHandler struct {
	createTicketUseCase  *usecases.CreateTicketUseCase
	listTicketsUseCase   *usecases.ListTicketsUseCase
	getTicketUseCase     *usecases.GetTicketUseCase
	updateTicketUseCase  *usecases.UpdateTicketUseCase
	deleteTicketUseCase  *usecases.DeleteTicketUseCase
	archiveTicketUseCase *usecases.ArchiveTicketUseCase
	addReplyUseCase      *usecases.AddReplyUseCase
	getAttachmentUseCase *usecases.GetAttachmentUseCase
	logger               logger.Interface
}

func NewTicketHandler(
	createTicketUseCase *usecases.CreateTicketUseCase,
	listTicketsUseCase *usecases.ListTicketsUseCase,
	getTicketUseCase *usecases.GetTicketUseCase,
	updateTicketUseCase *usecases.UpdateTicketUseCase,
	deleteTicketUseCase *usecases.DeleteTicketUseCase,
	archiveTicketUseCase *usecases.ArchiveTicketUseCase,
	addReplyUseCase *usecases.AddReplyUseCase,
	getAttachmentUseCase *usecases.GetAttachmentUseCase,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUseCase:  createTicketUseCase,
		listTicketsUseCase:   listTicketsUseCase,
		getTicketUseCase:     getTicketUseCase,
		updateTicketUseCase:  updateTicketUseCase,
		deleteTicketUseCase:  deleteTicketUseCase,
		archiveTicketUseCase: archiveTicketUseCase,
		addReplyUseCase:      addReplyUseCase,
		getAttachmentUseCase: getAttachmentUseCase,
		logger:               logger,
	}
}

type createTicketRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
	Priority    string `form:"priority" binding:"required"`
}

// CreateTicket handles POST /ticket
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req createTicketRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	// Attachment is optional; gin returns an error when the part is absent.
	attachment, _ := c.FormFile("attachment")

	result, err := h.createTicketUseCase.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Actor:       actor,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Attachment:  attachment,
		IPAddress:   c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "Ticket created", dto.FromTicket(result.Ticket))
}

// ListTickets handles GET /ticket
func (h *TicketHandler) ListTickets(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	page := utils.ParsePagination(c)

	cmd := usecases.ListTicketsCommand{
		Actor:    actor,
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Page:     page.Page,
		PageSize: page.PerPage,
	}
	if raw := c.Query("archived"); raw != "" {
		archived, err := strconv.ParseBool(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnprocessableEntity, "Invalid archived parameter")
			return
		}
		cmd.Archived = &archived
	}

	result, err := h.listTicketsUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, "", dto.FromTickets(result.Tickets), result.Total, page.Page, page.PerPage)
}

// GetTicket handles GET /ticket/:code
func (h *TicketHandler) GetTicket(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	result, err := h.getTicketUseCase.Execute(c.Request.Context(), usecases.GetTicketCommand{
		Actor: actor,
		Code:  c.Param("code"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.FromTicketDetail(result))
}

type updateTicketRequest struct {
	Title            string `form:"title" binding:"required"`
	Description      string `form:"description" binding:"required"`
	Priority         string `form:"priority" binding:"required"`
	Status           string `form:"status"`
	RemoveAttachment bool   `form:"remove_attachment"`
}

// UpdateTicket handles PUT /ticket/:code
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req updateTicketRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	attachment, _ := c.FormFile("attachment")

	result, err := h.updateTicketUseCase.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		Actor:            actor,
		Code:             c.Param("code"),
		Title:            req.Title,
		Description:      req.Description,
		Priority:         req.Priority,
		Status:           req.Status,
		Attachment:       attachment,
		RemoveAttachment: req.RemoveAttachment,
		IPAddress:        c.ClientIP(),
		UserAgent:        c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated", dto.FromTicket(result.Ticket))
}

// DeleteTicket handles DELETE /ticket/:code
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	err := h.deleteTicketUseCase.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		Actor:     actor,
		Code:      c.Param("code"),
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted", nil)
}

// ArchiveTicket handles PATCH /ticket/:code/archive
func (h *TicketHandler) ArchiveTicket(c *gin.Context) {
	h.setArchived(c, true, "Ticket archived")
}

// UnarchiveTicket handles PATCH /ticket/:code/unarchive
func (h *TicketHandler) UnarchiveTicket(c *gin.Context) {
	h.setArchived(c, false, "Ticket restored")
}

func (h *TicketHandler) setArchived(c *gin.Context, archive bool, message string) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	result, err := h.archiveTicketUseCase.Execute(c.Request.Context(), usecases.ArchiveTicketCommand{
		Actor:     actor,
		Code:      c.Param("code"),
		Archive:   archive,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, message, dto.FromTicket(result.Ticket))
}

type addReplyRequest struct {
	Content string `form:"content" binding:"required"`
	Status  string `form:"status"`
}

// AddReply handles POST /ticket-reply/:code
func (h *TicketHandler) AddReply(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req addReplyRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	attachment, _ := c.FormFile("attachment")

	result, err := h.addReplyUseCase.Execute(c.Request.Context(), usecases.AddReplyCommand{
		Actor:      actor,
		Code:       c.Param("code"),
		Content:    req.Content,
		Status:     req.Status,
		Attachment: attachment,
		IPAddress:  c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "Reply added", gin.H{
		"reply":  dto.FromReply(result.Reply, nil),
		"ticket": dto.FromTicket(result.Ticket),
	})
}

// ViewTicketAttachment handles GET /ticket/:code/attachment/view
func (h *TicketHandler) ViewTicketAttachment(c *gin.Context) {
	h.serveAttachment(c, nil, true)
}

// DownloadTicketAttachment handles GET /ticket/:code/attachment/download
func (h *TicketHandler) DownloadTicketAttachment(c *gin.Context) {
	h.serveAttachment(c, nil, false)
}

// ViewReplyAttachment handles GET /ticket-reply/:code/:replyId/attachment/view
func (h *TicketHandler) ViewReplyAttachment(c *gin.Context) {
	replyID, ok := parseUintParam(c, "replyId")
	if !ok {
		return
	}
	h.serveAttachment(c, &replyID, true)
}

// DownloadReplyAttachment handles GET /ticket-reply/:code/:replyId/attachment/download
func (h *TicketHandler) DownloadReplyAttachment(c *gin.Context) {
	replyID, ok := parseUintParam(c, "replyId")
	if !ok {
		return
	}
	h.serveAttachment(c, &replyID, false)
}

func (h *TicketHandler) serveAttachment(c *gin.Context, replyID *uint, inline bool) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	result, err := h.getAttachmentUseCase.Execute(c.Request.Context(), usecases.GetAttachmentCommand{
		Actor:   actor,
		Code:    c.Param("code"),
		ReplyID: replyID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if inline {
		c.File(result.Path)
		return
	}
	c.FileAttachment(result.Path, result.Name)
}
