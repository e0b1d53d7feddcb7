package model

// Image is an uploaded file stored in object storage. Posts and contents
// reference it by Filename in their images lists.
type Image struct {
	Filename    string `json:"filename"`
	StoragePath string `json:"storage_path"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}
