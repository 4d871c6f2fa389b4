package domain

// FileType represents the allowed candidate image types.
type FileType string

const (
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedImageTypes maps FileType to its MIME content type.
var AllowedImageTypes = map[FileType]string{
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}

// AllowedImageContentTypes maps sniffed MIME content types back to FileType.
var AllowedImageContentTypes = map[string]FileType{
	"image/jpeg": FileTypeJPG,
	"image/png":  FileTypePNG,
}

// AllowedImageExtensions maps file extensions (without dot) to FileType.
var AllowedImageExtensions = map[string]FileType{
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}

// UserRole defines what a user may do.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleVoter UserRole = "voter"
)
