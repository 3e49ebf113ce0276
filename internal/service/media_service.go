package service

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
	"video-hosting-server/internal/apperror"
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/ports"
	"video-hosting-server/internal/util"

	"github.com/google/uuid"
)

// MediaService : медиахранилище. Принимает локальный файл, кладёт его в S3 по pre-signed URL
// и возвращает постоянный адрес. Локальный файл удаляется в любом случае
type MediaService struct {
	storage    ports.ObjectStorage
	httpClient *http.Client
	presignTTL time.Duration
	prefix     string
}

func NewMediaService(storage ports.ObjectStorage, httpClient *http.Client, presignTTL time.Duration) *MediaService {
	return &MediaService{
		storage:    storage,
		httpClient: httpClient,
		presignTTL: presignTTL,
		prefix:     "media",
	}
}

type pendingUpload struct {
	localPath string
	asset     *model.MediaAsset
	url       string
}

func (s *MediaService) prepare(ctx context.Context, localPath string) (*pendingUpload, error) {
	info, err := os.Stat(localPath)
	if err != nil {
		return nil, apperror.InternalError("failed to read uploaded file", util.LogError("[MediaService] файл для загрузки недоступен", err))
	}

	key := path.Join(s.prefix, uuid.NewString()+strings.ToLower(filepath.Ext(localPath)))
	url, err := s.storage.GeneratePresignedPutURL(ctx, key, s.presignTTL)
	if err != nil {
		return nil, apperror.Upstream("media host is unavailable", err)
	}

	return &pendingUpload{
		localPath: localPath,
		url:       url,
		asset: &model.MediaAsset{
			Key:         key,
			URL:         s.storage.PublicURL(key),
			ContentType: util.ContentTypeOf(localPath),
			SizeBytes:   info.Size(),
		},
	}, nil
}

func (s *MediaService) Upload(ctx context.Context, localPath string) (*model.MediaAsset, error) {
	pending, err := s.prepare(ctx, localPath)
	if err != nil {
		util.RemoveFiles(localPath)
		return nil, err
	}

	if err := util.NewS3Uploader(s.httpClient).UploadFile(ctx, pending.url, localPath); err != nil {
		return nil, apperror.Upstream("failed to upload file to media host", util.LogError("[MediaService] ошибка загрузки файла", err))
	}

	return pending.asset, nil
}

// UploadMany : параллельная загрузка нескольких файлов. При любой ошибке уже загруженные
// объекты удаляются, результат возвращается в порядке аргументов
func (s *MediaService) UploadMany(ctx context.Context, localPaths ...string) ([]*model.MediaAsset, error) {
	pending := make([]*pendingUpload, 0, len(localPaths))
	for i, localPath := range localPaths {
		p, err := s.prepare(ctx, localPath)
		if err != nil {
			util.RemoveFiles(localPaths[i:]...)
			for _, prepared := range pending {
				util.RemoveFiles(prepared.localPath)
			}
			return nil, err
		}
		pending = append(pending, p)
	}

	uploader := util.NewS3Uploader(s.httpClient)
	for _, p := range pending {
		uploader.UploadFileAsync(ctx, p.url, p.localPath)
	}

	assets := make([]*model.MediaAsset, 0, len(pending))
	for _, p := range pending {
		assets = append(assets, p.asset)
	}

	if err := uploader.Wait(); err != nil {
		s.cleanup(ctx, assets)
		return nil, apperror.Upstream("failed to upload file to media host", util.LogError("[MediaService] ошибка пакетной загрузки", err))
	}

	return assets, nil
}

func (s *MediaService) Delete(ctx context.Context, key string) error {
	if err := s.storage.DeleteObject(ctx, key); err != nil {
		return apperror.Upstream("failed to delete file from media host", err)
	}
	return nil
}

// cleanup : удаляет объекты неудавшейся пачки, ошибки только логируются
func (s *MediaService) cleanup(ctx context.Context, assets []*model.MediaAsset) {
	var errs []error
	for _, asset := range assets {
		if err := s.storage.DeleteObject(ctx, asset.Key); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		log.Printf("[MediaService] не удалось удалить загруженные объекты: %v", err)
	}
}
