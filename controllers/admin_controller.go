package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/zt15864126114/mksxk/config"
	"github.com/zt15864126114/mksxk/internal/error/code"
	"github.com/zt15864126114/mksxk/internal/error/response"
	"github.com/zt15864126114/mksxk/services"
	"github.com/zt15864126114/mksxk/services/container"
)

// InterfaceAdminController 定义管理员控制器接口
type InterfaceAdminController interface {
	Login()
	ChangePassword()
}

// AdminController 管理员控制器
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController 创建一个新的管理员控制器
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// HandleAdminFunc 返回一个处理管理员请求的Gin处理函数
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "changePassword":
			controller.ChangePassword()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}

// Login 管理员登录
// @Summary      管理员登录
// @Description  校验用户名密码，成功返回JWT令牌与用户信息
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "登录参数"
// @Router       /admin/login [post]
func (c *AdminController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "用户名和密码不能为空")
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	token, admin, err := adminService.Login(req.Username, req.Password)
	if err != nil {
		switch err {
		case services.ErrInvalidCredentials:
			response.FailWithMessage(c.Ctx, code.ErrUnauthorized, err.Error())
		case services.ErrAdminDisabled:
			response.FailWithMessage(c.Ctx, code.ErrForbidden, err.Error())
		default:
			config.Error("管理员登录失败: %v", err)
			response.ServerError(c.Ctx)
		}
		return
	}

	response.SuccessWithMessage(c.Ctx, "登录成功", gin.H{
		"token": token,
		"userInfo": gin.H{
			"id":        admin.ID,
			"username":  admin.Username,
			"real_name": admin.RealName,
		},
	})
}

// ChangePassword 修改当前管理员密码
// @Summary      修改密码
// @Description  校验旧密码后写入新密码
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body ChangePasswordRequest true "修改密码参数"
// @Router       /admin/change-password [post]
// @Security     BearerAuth
func (c *AdminController) ChangePassword() {
	var req ChangePasswordRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "旧密码和新密码不能为空")
		return
	}

	adminID := c.Ctx.GetUint("adminID")

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.ChangePassword(adminID, req.OldPassword, req.NewPassword); err != nil {
		switch err {
		case services.ErrAdminNotFound:
			response.NotFound(c.Ctx, err.Error())
		case services.ErrWrongOldPassword:
			response.FailWithMessage(c.Ctx, code.ErrUnauthorized, err.Error())
		default:
			config.Error("修改密码失败: %v", err)
			response.ServerError(c.Ctx)
		}
		return
	}

	response.SuccessWithMessage(c.Ctx, "密码修改成功", nil)
}
