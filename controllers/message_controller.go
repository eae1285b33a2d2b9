package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zt15864126114/mksxk/config"
	"github.com/zt15864126114/mksxk/internal/error/response"
	"github.com/zt15864126114/mksxk/models"
	"github.com/zt15864126114/mksxk/services"
	"github.com/zt15864126114/mksxk/services/container"
)

// InterfaceMessageController 定义留言控制器接口
type InterfaceMessageController interface {
	GetMessages()
	GetMessage()
	CreateMessage()
	UpdateMessage()
	DeleteMessage()
}

// MessageController 留言控制器
type MessageController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewMessageController 创建一个新的留言控制器
func NewMessageController(ctx *gin.Context, container *container.ServiceContainer) *MessageController {
	return &MessageController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateMessageRequest 创建留言请求（公开接口）
type CreateMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Content string `json:"content" binding:"required"`
}

// UpdateMessageRequest 更新留言请求，提供 reply 时回复时间由服务端打点
type UpdateMessageRequest struct {
	Status *int    `json:"status"`
	Reply  *string `json:"reply"`
}

// HandleMessageFunc 返回一个处理留言请求的Gin处理函数
func HandleMessageFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewMessageController(ctx, container)

		switch method {
		case "getMessages":
			controller.GetMessages()
		case "getMessage":
			controller.GetMessage()
		case "createMessage":
			controller.CreateMessage()
		case "updateMessage":
			controller.UpdateMessage()
		case "deleteMessage":
			controller.DeleteMessage()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}

// GetMessages 获取留言列表
// @Summary      获取留言列表
// @Description  分页获取访客留言，支持状态和关键词过滤
// @Tags         Message
// @Produce      json
// @Param        page query int false "页码，默认为1"
// @Param        pageSize query int false "每页条数，默认为10"
// @Param        status query int false "留言状态：0待处理，1已回复"
// @Param        keyword query string false "姓名/电话/内容关键词"
// @Router       /messages [get]
// @Security     BearerAuth
func (c *MessageController) GetMessages() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("pageSize", "10"))
	page, pageSize = models.NormalizePage(page, pageSize)

	q := services.MessageListQuery{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Ctx.Query("status"),
		Keyword:  c.Ctx.Query("keyword"),
	}

	messageService := c.Container.GetService("message").(services.InterfaceMessageService)
	messages, total, err := messageService.ListMessages(q)
	if err != nil {
		config.Error("查询留言列表失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, models.NewPageResult(messages, total, page, pageSize))
}

// GetMessage 获取留言详情
// @Summary      获取留言详情
// @Tags         Message
// @Produce      json
// @Param        id path int true "留言ID"
// @Router       /messages/{id} [get]
// @Security     BearerAuth
func (c *MessageController) GetMessage() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的ID参数")
		return
	}

	messageService := c.Container.GetService("message").(services.InterfaceMessageService)
	message, err := messageService.GetMessageByID(uint(id))
	if err != nil {
		if err == services.ErrMessageNotFound {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		config.Error("查询留言详情失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, message)
}

// CreateMessage 创建留言（公开接口，无需登录）
// @Summary      提交留言
// @Description  网站访客提交联系表单
// @Tags         Message
// @Accept       json
// @Produce      json
// @Param        request body CreateMessageRequest true "留言信息"
// @Router       /messages [post]
func (c *MessageController) CreateMessage() {
	var req CreateMessageRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "姓名、电话和留言内容不能为空")
		return
	}

	message := &models.Message{
		Name:    strings.TrimSpace(req.Name),
		Phone:   strings.TrimSpace(req.Phone),
		Email:   strings.TrimSpace(req.Email),
		Company: strings.TrimSpace(req.Company),
		Content: req.Content,
	}

	messageService := c.Container.GetService("message").(services.InterfaceMessageService)
	if err := messageService.CreateMessage(message); err != nil {
		config.Error("创建留言失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.SuccessWithMessage(c.Ctx, "留言提交成功", gin.H{"id": message.ID})
}

// UpdateMessage 更新留言（管理员回复/改状态）
// @Summary      更新留言
// @Description  设置回复内容或状态，提供回复时自动记录回复时间
// @Tags         Message
// @Accept       json
// @Produce      json
// @Param        id path int true "留言ID"
// @Param        request body UpdateMessageRequest true "更新内容"
// @Router       /messages/{id} [put]
// @Security     BearerAuth
func (c *MessageController) UpdateMessage() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的ID参数")
		return
	}

	var req UpdateMessageRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "无效的请求参数")
		return
	}

	updates := make(map[string]interface{})
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Reply != nil {
		updates["reply"] = *req.Reply
		updates["reply_time"] = time.Now()
	}

	messageService := c.Container.GetService("message").(services.InterfaceMessageService)
	if _, err := messageService.UpdateMessage(uint(id), updates); err != nil {
		if err == services.ErrMessageNotFound {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		config.Error("更新留言失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.SuccessWithMessage(c.Ctx, "更新成功", nil)
}

// DeleteMessage 删除留言
// @Summary      删除留言
// @Description  物理删除指定留言
// @Tags         Message
// @Produce      json
// @Param        id path int true "留言ID"
// @Router       /messages/{id} [delete]
// @Security     BearerAuth
func (c *MessageController) DeleteMessage() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的ID参数")
		return
	}

	messageService := c.Container.GetService("message").(services.InterfaceMessageService)
	if err := messageService.DeleteMessage(uint(id)); err != nil {
		if err == services.ErrMessageNotFound {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		config.Error("删除留言失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.SuccessWithMessage(c.Ctx, "删除成功", nil)
}
