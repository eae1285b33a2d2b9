package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/zt15864126114/mksxk/config"
	"github.com/zt15864126114/mksxk/internal/error/response"
	"github.com/zt15864126114/mksxk/services"
	"github.com/zt15864126114/mksxk/services/container"
)

// InterfaceUploadController 定义上传控制器接口
type InterfaceUploadController interface {
	UploadImage()
	DeleteImage()
}

// UploadController 上传控制器
type UploadController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUploadController 创建一个新的上传控制器
func NewUploadController(ctx *gin.Context, container *container.ServiceContainer) *UploadController {
	return &UploadController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleUploadFunc 返回一个处理上传请求的Gin处理函数
func HandleUploadFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUploadController(ctx, container)

		switch method {
		case "uploadImage":
			controller.UploadImage()
		case "deleteImage":
			controller.DeleteImage()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}

// UploadImage 上传图片
// @Summary      上传图片
// @Description  multipart 表单字段 file，仅接受 jpeg/png/gif，不超过5MB
// @Tags         Upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "图片文件"
// @Router       /upload [post]
// @Security     BearerAuth
func (c *UploadController) UploadImage() {
	file, err := c.Ctx.FormFile("file")
	if err != nil {
		response.ParamError(c.Ctx, "没有上传文件")
		return
	}

	uploadService := c.Container.GetService("upload").(services.InterfaceUploadService)
	imageURL, err := uploadService.SaveImage(file)
	if err != nil {
		switch err {
		case services.ErrUnsupportedFileType, services.ErrFileTooLarge:
			response.ParamError(c.Ctx, err.Error())
		default:
			config.Error("保存上传文件失败: %v", err)
			response.ServerError(c.Ctx)
		}
		return
	}

	response.SuccessWithMessage(c.Ctx, "上传成功", gin.H{"image": imageURL})
}

// DeleteImage 删除图片
// @Summary      删除图片
// @Description  删除已上传的图片文件并清理产品表中的单图引用，重复删除不报错
// @Tags         Upload
// @Produce      json
// @Param        filename path string true "文件名"
// @Router       /upload/{filename} [delete]
// @Security     BearerAuth
func (c *UploadController) DeleteImage() {
	filename := c.Ctx.Param("filename")
	if filename == "" {
		response.ParamError(c.Ctx, "文件名不能为空")
		return
	}

	uploadService := c.Container.GetService("upload").(services.InterfaceUploadService)
	if err := uploadService.DeleteImage(filename); err != nil {
		config.Error("删除文件失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.SuccessWithMessage(c.Ctx, "删除成功", nil)
}
