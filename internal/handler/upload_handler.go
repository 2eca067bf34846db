package handler

import (
	"fmt"
	"image"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// uploadBuckets 限定上传文件的子目录，避免任意路径写入。
var uploadBuckets = map[string]bool{
	"events":  true,
	"gallery": true,
	"pages":   true,
	"avatars": true,
}

// UploadImage 处理管理后台的图片上传请求
func (a *API) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No image file provided")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "Only image files are allowed")
		return
	}

	bucket := c.DefaultPostForm("bucket", "pages")
	if !uploadBuckets[bucket] {
		respondError(c, http.StatusBadRequest, "Unknown upload bucket")
		return
	}

	// 创建上传目录
	targetDir := filepath.Join(a.uploadDir, bucket)
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to prepare upload directory")
		return
	}

	// 生成唯一文件名
	ext := strings.ToLower(filepath.Ext(file.Filename))
	newFilename := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
	filePath := filepath.Join(targetDir, newFilename)

	if err := c.SaveUploadedFile(file, filePath); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to save file")
		return
	}

	width, height := probeImageDimensions(filePath)

	fileURL := fmt.Sprintf("%s/%s/%s", strings.TrimRight(a.uploadURL, "/"), bucket, newFilename)
	c.JSON(http.StatusOK, gin.H{
		"url":    fileURL,
		"width":  width,
		"height": height,
	})
}

// probeImageDimensions 读取图片头部获取尺寸，失败时返回零值。
// 支持 jpeg/png/gif/webp，由上方的 blank import 注册解码器。
func probeImageDimensions(path string) (int, int) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}
