package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UploadFileName 生成上传文件的存储文件名：毫秒时间戳-随机后缀.扩展名。
// 不做内容寻址，相同内容的文件会各自保存一份。
func UploadFileName(ext string) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}
