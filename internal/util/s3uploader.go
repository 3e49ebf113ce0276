package util

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// S3Uploader : загружает локальные файлы по pre-signed PUT URL.
// Один экземпляр обслуживает одну пачку загрузок: UploadFileAsync ... Wait
type S3Uploader struct {
	client *http.Client
	wg     sync.WaitGroup
	mu     sync.Mutex
	errs   []error
}

func NewS3Uploader(client *http.Client) *S3Uploader {
	if client == nil {
		client = &http.Client{
			Timeout: 60 * time.Minute, // Для очень больших видео
		}
	}
	return &S3Uploader{client: client}
}

// UploadFileAsync асинхронная загрузка файла
func (u *S3Uploader) UploadFileAsync(ctx context.Context, presignedURL, filePath string) {
	u.wg.Add(1)

	go func() {
		defer u.wg.Done()

		if err := u.UploadFile(ctx, presignedURL, filePath); err != nil {
			u.mu.Lock()
			u.errs = append(u.errs, fmt.Errorf("ошибка загрузки %s: %w", filepath.Base(filePath), err))
			u.mu.Unlock()
		}
	}()
}

// UploadFile синхронная загрузка. Локальный файл удаляется в любом случае
func (u *S3Uploader) UploadFile(ctx context.Context, presignedURL, filePath string) error {
	defer os.Remove(filePath)

	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		return fmt.Errorf("ошибка получения информации о файле: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, presignedURL, file)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.ContentLength = fileInfo.Size()
	req.Header.Set("Content-Type", ContentTypeOf(filePath))

	resp, err := u.client.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("ошибка загрузки: статус %d, ответ: %s", resp.StatusCode, string(body))
	}

	return nil
}

// Wait ожидание завершения всех загрузок, возвращает все ошибки
func (u *S3Uploader) Wait() error {
	u.wg.Wait()

	u.mu.Lock()
	defer u.mu.Unlock()
	return errors.Join(u.errs...)
}

// ContentTypeOf определяет MIME type файла по расширению
func ContentTypeOf(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	case ".mov":
		return "video/quicktime"
	case ".mkv":
		return "video/x-matroska"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	}

	if byExt := mime.TypeByExtension(ext); byExt != "" {
		return byExt
	}
	return "application/octet-stream"
}
