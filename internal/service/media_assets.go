package service

import (
	"context"
	"log"
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/ports"
)

// uploadAssets : один файл грузится через Upload, несколько пачкой через UploadMany.
// Порядок результата совпадает с порядком путей
func uploadAssets(ctx context.Context, media ports.MediaHost, localPaths ...string) ([]*model.MediaAsset, error) {
	if len(localPaths) == 1 {
		asset, err := media.Upload(ctx, localPaths[0])
		if err != nil {
			return nil, err
		}
		return []*model.MediaAsset{asset}, nil
	}
	return media.UploadMany(ctx, localPaths...)
}

// discardAssets : удаляет объекты, на которые так и не сослалась ни одна запись в БД.
// Удаление не зависит от отмены запроса, ошибки только логируются
func discardAssets(ctx context.Context, media ports.MediaHost, assets []*model.MediaAsset) {
	ctx = context.WithoutCancel(ctx)
	for _, asset := range assets {
		if err := media.Delete(ctx, asset.Key); err != nil {
			log.Printf("[MediaService] не удалось удалить осиротевший объект %s: %v", asset.Key, err)
		}
	}
}
