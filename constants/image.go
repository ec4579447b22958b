package constants

import "strings"

// ImageRole identifies which face of the container a label image shows.
type ImageRole string

const (
	RoleFront ImageRole = "front"
	RoleBack  ImageRole = "back"
	RoleSide  ImageRole = "side"
	RoleNeck  ImageRole = "neck"
)

// ImageRoles lists the accepted roles for the label_images.role enum.
var ImageRoles = []ImageRole{RoleFront, RoleBack, RoleSide, RoleNeck}

func ImageRoleStrings() []string {
	out := make([]string, len(ImageRoles))
	for i, r := range ImageRoles {
		out[i] = string(r)
	}
	return out
}

// AllowedImageTypes holds the content types the extractor accepts.
var AllowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

// NormalizeContentType lowercases and trims a submitted content type.
func NormalizeContentType(ct string) string {
	return strings.ToLower(strings.TrimSpace(ct))
}
