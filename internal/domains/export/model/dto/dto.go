package dto

type ExportResponse struct {
	URL       string `json:"url"`
	FileName  string `json:"file_name"`
	CreatedAt string `json:"created_at"`
}
