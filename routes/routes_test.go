package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zt15864126114/mksxk/config"
	"github.com/zt15864126114/mksxk/models"
	"github.com/zt15864126114/mksxk/utils"
)

// envelope 统一响应结构
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Admin{}, &models.Product{}, &models.News{}, &models.Message{}))

	hashed, err := utils.HashPassword("admin123")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Admin{
		Username: "admin",
		Password: hashed,
		RealName: "系统管理员",
		Status:   models.AdminStatusActive,
	}).Error)

	cfg := &config.Config{
		JWTSecretKey:    "routes-test-secret",
		JWTExpiresHours: 1,
		UploadDir:       t.TempDir(),
	}
	return SetupRouter(db, cfg), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w, env := doJSON(t, r, "POST", "/api/admin/login", "", gin.H{
		"username": "admin",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 200, env.Code)

	var data struct {
		Token string `json:"token"`
		UserInfo struct {
			Username string `json:"username"`
			RealName string `json:"real_name"`
		} `json:"userInfo"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	require.Equal(t, "admin", data.UserInfo.Username)
	return data.Token
}

func TestPing(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "pong")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, _ := setupTestRouter(t)

	w, env := doJSON(t, r, "POST", "/api/admin/login", "", gin.H{
		"username": "admin",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, 401, env.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r, _ := setupTestRouter(t)

	w, env := doJSON(t, r, "GET", "/api/messages", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, 401, env.Code)

	w, env = doJSON(t, r, "GET", "/api/messages", "not-a-valid-token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, 401, env.Code)
}

func TestProductAdminFlow(t *testing.T) {
	r, _ := setupTestRouter(t)
	token := login(t, r)

	// 创建产品
	w, env := doJSON(t, r, "POST", "/api/products", token, gin.H{
		"name":        "高效絮凝剂",
		"category":    "水处理系列",
		"description": "适用于工业废水处理",
		"sort":        10,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 200, env.Code)

	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotZero(t, created.ID)

	// 公开列表可见，无需token
	w, env = doJSON(t, r, "GET", "/api/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 200, env.Code)

	var page struct {
		List  []models.Product `json:"list"`
		Total int64            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.EqualValues(t, 1, page.Total)
	require.Equal(t, "高效絮凝剂", page.List[0].Name)

	// 删除后公开详情返回404
	w, env = doJSON(t, r, "DELETE", "/api/products/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 200, env.Code)

	w, env = doJSON(t, r, "GET", "/api/products/1", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, 404, env.Code)
}

func TestPublicMessageSubmission(t *testing.T) {
	r, db := setupTestRouter(t)

	w, env := doJSON(t, r, "POST", "/api/messages", "", gin.H{
		"name":    "张三",
		"phone":   "13800000001",
		"content": "请问絮凝剂的最小起订量",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 200, env.Code)

	var stored models.Message
	require.NoError(t, db.First(&stored).Error)
	require.Equal(t, models.MessageStatusPending, stored.Status)

	// 缺少必填字段返回参数错误
	w, env = doJSON(t, r, "POST", "/api/messages", "", gin.H{"name": "李四"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, 400, env.Code)
}
