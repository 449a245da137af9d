package models

type Image struct {
	ID       string `json:"id"`
	FileName string `json:"fileName"`
	FilePath string `json:"filePath"`
	Bucket   string `json:"bucket"`
	URL      string `json:"url"`
	Type     string `json:"type"`

	// Thumbnail fields are empty when the upload was not a decodable image.
	ThumbPath string `json:"thumbPath,omitempty"`
	ThumbURL  string `json:"thumbUrl,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`

	UploadedAt string `json:"uploadedAt"`
}
