package requestresponse

import "video-hosting-server/internal/model"

// UploadVideoRequest : текстовые поля multipart формы загрузки видео
type UploadVideoRequest struct {
	Title       string `json:"title" validate:"required,max=200" example:"My first video"`
	Description string `json:"description" validate:"required,max=5000" example:"Unboxing"`
}

// CommentRequest : тело запроса на добавление или изменение комментария
type CommentRequest struct {
	Content string `json:"content" validate:"required,max=2000" example:"Nice video!"`
}

// Pagination : параметры страницы в ответе
type Pagination struct {
	Page          int   `json:"page" example:"1"`
	Limit         int   `json:"limit" example:"10"`
	TotalPages    int64 `json:"totalPages" example:"3"`
	TotalComments int64 `json:"totalComments" example:"25"`
}

// CommentsPage : комментарии к видео со страницей
type CommentsPage struct {
	Comments   []model.Comment `json:"comments"`
	Pagination Pagination      `json:"pagination"`
}

func CommentsPageFromModel(page *model.CommentPage) CommentsPage {
	comments := page.Comments
	if comments == nil {
		comments = []model.Comment{}
	}
	return CommentsPage{
		Comments: comments,
		Pagination: Pagination{
			Page:          page.Page,
			Limit:         page.Limit,
			TotalPages:    page.TotalPages(),
			TotalComments: page.TotalComments,
		},
	}
}

// LikeToggleData : состояние лайка после переключения
type LikeToggleData struct {
	Liked bool `json:"liked" example:"true"`
}

// PlaylistRequest : тело запроса на создание плейлиста
type PlaylistRequest struct {
	Name        string `json:"name" validate:"required,max=100" example:"Favourites"`
	Description string `json:"description" validate:"max=1000" example:"Videos to rewatch"`
}
