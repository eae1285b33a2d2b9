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

// InterfaceProductController 定义产品控制器接口
type InterfaceProductController interface {
	GetProducts()
	GetProduct()
	CreateProduct()
	UpdateProduct()
	DeleteProduct()
}

// ProductController 产品控制器
type ProductController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewProductController 创建一个新的产品控制器
func NewProductController(ctx *gin.Context, container *container.ServiceContainer) *ProductController {
	return &ProductController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateProductRequest 创建产品请求
type CreateProductRequest struct {
	Name          string `json:"name" binding:"required"`
	Category      string `json:"category" binding:"required"`
	Description   string `json:"description"`
	Specification string `json:"specification"`
	Application   string `json:"application"`
	Image         string `json:"image"`
	Sort          int    `json:"sort"`
}

// UpdateProductRequest 更新产品请求，指针字段区分"未提供"与"置空"
type UpdateProductRequest struct {
	Name          *string `json:"name"`
	Category      *string `json:"category"`
	Description   *string `json:"description"`
	Specification *string `json:"specification"`
	Application   *string `json:"application"`
	Image         *string `json:"image"`
	Sort          *int    `json:"sort"`
	Status        *int    `json:"status"`
}

// HandleProductFunc 返回一个处理产品请求的Gin处理函数
func HandleProductFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewProductController(ctx, container)

		switch method {
		case "getProducts":
			controller.GetProducts()
		case "getProduct":
			controller.GetProduct()
		case "createProduct":
			controller.CreateProduct()
		case "updateProduct":
			controller.UpdateProduct()
		case "deleteProduct":
			controller.DeleteProduct()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}

// GetProducts 获取产品列表
// @Summary      获取产品列表
// @Description  分页获取产品列表，公开访问只返回上架产品，isAdmin=true 返回全部
// @Tags         Product
// @Produce      json
// @Param        page query int false "页码，默认为1"
// @Param        pageSize query int false "每页条数，默认为10"
// @Param        category query string false "产品分类"
// @Param        keyword query string false "名称/描述关键词"
// @Param        isAdmin query bool false "管理端标志"
// @Router       /products [get]
func (c *ProductController) GetProducts() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("pageSize", "10"))
	page, pageSize = models.NormalizePage(page, pageSize)

	q := services.ProductListQuery{
		Page:     page,
		PageSize: pageSize,
		Category: c.Ctx.Query("category"),
		Keyword:  c.Ctx.Query("keyword"),
		IsAdmin:  c.Ctx.Query("isAdmin") == "true",
	}

	productService := c.Container.GetService("product").(services.InterfaceProductService)
	products, total, err := productService.ListProducts(q)
	if err != nil {
		config.Error("查询产品列表失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, models.NewPageResult(products, total, page, pageSize))
}

// GetProduct 获取产品详情
// @Summary      获取产品详情
// @Tags         Product
// @Produce      json
// @Param        id path int true "产品ID"
// @Param        isAdmin query bool false "管理端标志"
// @Router       /products/{id} [get]
func (c *ProductController) GetProduct() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的ID参数")
		return
	}
	isAdmin := c.Ctx.Query("isAdmin") == "true"

	productService := c.Container.GetService("product").(services.InterfaceProductService)
	product, err := productService.GetProductByID(uint(id), isAdmin)
	if err != nil {
		if err == services.ErrProductNotFound {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		config.Error("查询产品详情失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, product)
}

// CreateProduct 创建产品
// @Summary      创建产品
// @Tags         Product
// @Accept       json
// @Produce      json
// @Param        request body CreateProductRequest true "产品信息"
// @Router       /products [post]
// @Security     BearerAuth
func (c *ProductController) CreateProduct() {
	var req CreateProductRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "产品名称和分类为必填项")
		return
	}

	product := &models.Product{
		Name:          strings.TrimSpace(req.Name),
		Category:      strings.TrimSpace(req.Category),
		Description:   req.Description,
		Specification: req.Specification,
		Application:   req.Application,
		Image:         req.Image,
		Sort:          req.Sort,
		Status:        models.ProductStatusActive,
	}

	productService := c.Container.GetService("product").(services.InterfaceProductService)
	if err := productService.CreateProduct(product); err != nil {
		config.Error("创建产品失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.SuccessWithMessage(c.Ctx, "产品创建成功", gin.H{"id": product.ID})
}

// UpdateProduct 更新产品
// @Summary      更新产品
// @Description  只重写请求中提供的字段
// @Tags         Product
// @Accept       json
// @Produce      json
// @Param        id path int true "产品ID"
// @Param        request body UpdateProductRequest true "更新的产品信息"
// @Router       /products/{id} [put]
// @Security     BearerAuth
func (c *ProductController) UpdateProduct() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的ID参数")
		return
	}

	var req UpdateProductRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "无效的请求参数")
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		updates["category"] = strings.TrimSpace(*req.Category)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Specification != nil {
		updates["specification"] = *req.Specification
	}
	if req.Application != nil {
		updates["application"] = *req.Application
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Sort != nil {
		updates["sort"] = *req.Sort
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	productService := c.Container.GetService("product").(services.InterfaceProductService)
	product, err := productService.UpdateProduct(uint(id), updates)
	if err != nil {
		if err == services.ErrProductNotFound {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		config.Error("更新产品失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.SuccessWithMessage(c.Ctx, "产品更新成功", product)
}

// DeleteProduct 删除产品
// @Summary      删除产品
// @Description  物理删除指定产品
// @Tags         Product
// @Produce      json
// @Param        id path int true "产品ID"
// @Router       /products/{id} [delete]
// @Security     BearerAuth
func (c *ProductController) DeleteProduct() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的ID参数")
		return
	}

	productService := c.Container.GetService("product").(services.InterfaceProductService)
	if err := productService.DeleteProduct(uint(id)); err != nil {
		if err == services.ErrProductNotFound {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		config.Error("删除产品失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.SuccessWithMessage(c.Ctx, "产品删除成功", nil)
}
