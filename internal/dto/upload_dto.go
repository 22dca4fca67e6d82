package dto

type UploadResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	File    string `json:"file"`
	UserId  string `json:"user_id"`
}
