package util

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// SaveFormFile : сохраняет файл из multipart формы во временный каталог и возвращает путь к нему.
// Если поля нет в форме, возвращается пустая строка без ошибки
func SaveFormFile(r *http.Request, field, tempDir string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", fmt.Errorf("ошибка чтения поля %s: %w", field, err)
	}
	defer file.Close()

	return saveToTemp(file, header, tempDir)
}

func saveToTemp(file multipart.File, header *multipart.FileHeader, tempDir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	path := filepath.Join(tempDir, uuid.NewString()+ext)

	dst, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("ошибка создания временного файла: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("ошибка записи временного файла: %w", err)
	}

	return path, nil
}

// RemoveFiles : удаляет временные файлы, которые так и не были загружены
func RemoveFiles(paths ...string) {
	for _, path := range paths {
		if path != "" {
			os.Remove(path)
		}
	}
}
