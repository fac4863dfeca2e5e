// ABOUTME: Content-type oracle heuristics
// ABOUTME: Classifies a page as text/code/image/video from its title
package tools

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/GaneshEEE/agentmode/internal/models"
)

// codeExtensions covers the source-file suffixes treated as code pages
var codeExtensions = map[string]bool{
	".py": true, ".go": true, ".js": true, ".ts": true, ".jsx": true,
	".tsx": true, ".java": true, ".c": true, ".h": true, ".cpp": true,
	".cc": true, ".cs": true, ".rb": true, ".rs": true, ".php": true,
	".sh": true, ".sql": true, ".kt": true, ".swift": true, ".scala": true,
}

var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".bmp": true, ".webp": true,
}

var videoExtensions = map[string]bool{
	".mp4": true, ".mov": true, ".avi": true, ".mkv": true, ".webm": true,
}

var (
	imageTitlePattern = regexp.MustCompile(`(?i)\b(diagram|chart|screenshot|mockup|wireframe)\b`)
	videoTitlePattern = regexp.MustCompile(`(?i)\b(video|recording|webinar|screencast)\b`)
)

// DetectContentType classifies a page title. Unknown titles are text.
func DetectContentType(title string) models.ContentType {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(title)))
	switch {
	case codeExtensions[ext]:
		return models.ContentCode
	case imageExtensions[ext]:
		return models.ContentImage
	case videoExtensions[ext]:
		return models.ContentVideo
	}
	if imageTitlePattern.MatchString(title) {
		return models.ContentImage
	}
	if videoTitlePattern.MatchString(title) {
		return models.ContentVideo
	}
	return models.ContentText
}
