package dto

// PreviewQueryDTO query parametreleri
type PreviewQueryDTO struct {
	InputMainDirName          string `query:"inputMainDirName"`
	FileNameWithExtension     string `query:"fileNameWithExtension"`
	OutputPreviewMainDirName  string `query:"outputPreviewMainDirName"`
	OutputFullSizeMainDirName string `query:"outputFullSizeMainDirName"`
	OutputPreviewFilePath     string `query:"outputPreviewFilePath"`
	OutputFullSizeFilePath    string `query:"outputFullSizeFilePath"`
	PreviewSubfolder          string `query:"previewSubfolder"`
	FullSizeSubfolder         string `query:"fullSizeSubfolder"`
	FileType                  string `query:"fileType"`
	ConvertHeicToFullSizeJpeg string `query:"convertHeicToFullSizeJpeg"`
	ResizeOptionsWidth        string `query:"resizeOptionsWidth"`
	ResizeOptionsHeight       string `query:"resizeOptionsHeight"`
	ResizeOptionsFit          string `query:"resizeOptionsFit"`
	JpegOptionsQuality        string `query:"jpegOptionsQuality"`
	WithMetadata              string `query:"withMetadata"`
}

type PreviewResponse struct {
	PreviewPath  string `json:"previewPath"`
	FullSizePath string `json:"fullSizePath,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
