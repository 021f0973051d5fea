package constants

const StatusOK = "ok"

// Yanıttaki artifact anahtarları
const (
	ResultPreviewPath  = "previewPath"
	ResultFullSizePath = "fullSizePath"
)

const (
	MimeHEIC = "image/heic"
	MimeHEIF = "image/heif"
	MimeJPEG = "image/jpeg"
)

const (
	SuffixPreview  = "-preview"
	SuffixFullSize = "-fullSize"
)
