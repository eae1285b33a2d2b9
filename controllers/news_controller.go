package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zt15864126114/mksxk/config"
	"github.com/zt15864126114/mksxk/internal/error/response"
	"github.com/zt15864126114/mksxk/models"
	"github.com/zt15864126114/mksxk/services"
	"github.com/zt15864126114/mksxk/services/container"
)

// InterfaceNewsController 定义新闻控制器接口
type InterfaceNewsController interface {
	GetNews()
	GetNewsItem()
	CreateNews()
	UpdateNews()
	DeleteNews()
}

// NewsController 新闻控制器
type NewsController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewNewsController 创建一个新的新闻控制器
func NewNewsController(ctx *gin.Context, container *container.ServiceContainer) *NewsController {
	return &NewsController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateNewsRequest 创建新闻请求
type CreateNewsRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Image   string `json:"image"`
	Type    string `json:"type" binding:"required"`
}

// UpdateNewsRequest 更新新闻请求，指针字段区分"未提供"与"置空"
type UpdateNewsRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Image   *string `json:"image"`
	Type    *string `json:"type"`
	Status  *int    `json:"status"`
}

// HandleNewsFunc 返回一个处理新闻请求的Gin处理函数
func HandleNewsFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewNewsController(ctx, container)

		switch method {
		case "getNews":
			controller.GetNews()
		case "getNewsItem":
			controller.GetNewsItem()
		case "createNews":
			controller.CreateNews()
		case "updateNews":
			controller.UpdateNews()
		case "deleteNews":
			controller.DeleteNews()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}

// GetNews 获取新闻列表
// @Summary      获取新闻列表
// @Description  分页获取新闻列表，公开访问只返回已发布新闻，isAdmin=true 返回全部
// @Tags         News
// @Produce      json
// @Param        page query int false "页码，默认为1"
// @Param        pageSize query int false "每页条数，默认为10"
// @Param        type query string false "新闻类型"
// @Param        keyword query string false "标题/内容关键词"
// @Param        isAdmin query bool false "管理端标志"
// @Router       /news [get]
func (c *NewsController) GetNews() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("pageSize", "10"))
	page, pageSize = models.NormalizePage(page, pageSize)

	q := services.NewsListQuery{
		Page:     page,
		PageSize: pageSize,
		Type:     c.Ctx.Query("type"),
		Keyword:  c.Ctx.Query("keyword"),
		IsAdmin:  c.Ctx.Query("isAdmin") == "true",
	}

	newsService := c.Container.GetService("news").(services.InterfaceNewsService)
	news, total, err := newsService.ListNews(q)
	if err != nil {
		config.Error("查询新闻列表失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, models.NewPageResult(news, total, page, pageSize))
}

// GetNewsItem 获取新闻详情
// @Summary      获取新闻详情
// @Tags         News
// @Produce      json
// @Param        id path int true "新闻ID"
// @Param        isAdmin query bool false "管理端标志"
// @Router       /news/{id} [get]
func (c *NewsController) GetNewsItem() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的ID参数")
		return
	}
	isAdmin := c.Ctx.Query("isAdmin") == "true"

	newsService := c.Container.GetService("news").(services.InterfaceNewsService)
	news, err := newsService.GetNewsByID(uint(id), isAdmin)
	if err != nil {
		if err == services.ErrNewsNotFound {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		config.Error("查询新闻详情失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, news)
}

// CreateNews 创建新闻
// @Summary      创建新闻
// @Tags         News
// @Accept       json
// @Produce      json
// @Param        request body CreateNewsRequest true "新闻信息"
// @Router       /news [post]
// @Security     BearerAuth
func (c *NewsController) CreateNews() {
	var req CreateNewsRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "标题、内容和类型为必填项")
		return
	}

	news := &models.News{
		Title:   strings.TrimSpace(req.Title),
		Content: req.Content,
		Image:   req.Image,
		Type:    strings.TrimSpace(req.Type),
		Status:  models.NewsStatusPublished,
	}

	newsService := c.Container.GetService("news").(services.InterfaceNewsService)
	if err := newsService.CreateNews(news); err != nil {
		config.Error("创建新闻失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.SuccessWithMessage(c.Ctx, "新闻创建成功", gin.H{"id": news.ID})
}

// UpdateNews 更新新闻
// @Summary      更新新闻
// @Description  只重写请求中提供的字段
// @Tags         News
// @Accept       json
// @Produce      json
// @Param        id path int true "新闻ID"
// @Param        request body UpdateNewsRequest true "更新的新闻信息"
// @Router       /news/{id} [put]
// @Security     BearerAuth
func (c *NewsController) UpdateNews() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的ID参数")
		return
	}

	var req UpdateNewsRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "无效的请求参数")
		return
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Type != nil {
		updates["type"] = strings.TrimSpace(*req.Type)
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	newsService := c.Container.GetService("news").(services.InterfaceNewsService)
	news, err := newsService.UpdateNews(uint(id), updates)
	if err != nil {
		if err == services.ErrNewsNotFound {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		config.Error("更新新闻失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.SuccessWithMessage(c.Ctx, "新闻更新成功", news)
}

// DeleteNews 删除新闻
// @Summary      删除新闻
// @Description  逻辑删除：状态置为未发布，记录保留
// @Tags         News
// @Produce      json
// @Param        id path int true "新闻ID"
// @Router       /news/{id} [delete]
// @Security     BearerAuth
func (c *NewsController) DeleteNews() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的ID参数")
		return
	}

	newsService := c.Container.GetService("news").(services.InterfaceNewsService)
	if err := newsService.DeleteNews(uint(id)); err != nil {
		if err == services.ErrNewsNotFound {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		config.Error("删除新闻失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.SuccessWithMessage(c.Ctx, "新闻删除成功", nil)
}
