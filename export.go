package mathclean

import (
	"errors"
	"time"

	"github.com/riverfjs/mathclean-go/internal/export"
)

// Download 返回下载文件名和独立 HTML 文档。config 为 nil 时使用默认配置。
// res 为 nil 时返回 ErrNoContent。
func Download(res *Result, config *Config, now time.Time) (string, []byte, error) {
	if res == nil {
		return "", nil, ErrNoContent
	}
	if config == nil {
		config = DefaultConfig()
	}
	name := export.Filename(config.FilenamePrefix, "html", now)
	return name, []byte(export.Document(res.PreviewHTML, config.page())), nil
}

// Export 将预览保存为 dir 下带时间戳的 HTML 文件，返回文件路径
func Export(dir string, res *Result, config *Config) (string, error) {
	if res == nil || res.PreviewHTML == "" {
		return "", errors.New("nothing to export")
	}
	name, data, err := Download(res, config, time.Now())
	if err != nil {
		return "", err
	}
	path, err := export.WriteFile(dir, name, data)
	if err != nil {
		Logger.Printf("export failed: %v", err)
		return "", err
	}
	return path, nil
}
