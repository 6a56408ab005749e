package artifact

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/funckode/funckode/internal/domain"
	"github.com/funckode/funckode/internal/logger"
)

// svgTemplate renders one badge image. text/template rather than
// html/template: the output is SVG markup and the inputs are catalog
// constants, not user-controlled HTML.
var svgTemplate = template.Must(template.New("badge").Parse(`<svg xmlns="http://www.w3.org/2000/svg" width="220" height="60" viewBox="0 0 220 60">
  <rect width="220" height="60" rx="{{.CornerRadius}}" fill="{{.Color}}"/>
  <rect x="2" y="2" width="216" height="56" rx="{{.CornerRadius}}" fill="none" stroke="{{.Accent}}" stroke-width="{{.StrokeWidth}}"/>
  <text x="16" y="38" font-family="Verdana,sans-serif" font-size="22">{{.Emoji}}</text>
  <text x="52" y="28" font-family="Verdana,sans-serif" font-size="14" font-weight="bold" fill="#ffffff">{{.DisplayName}}</text>
  <text x="52" y="46" font-family="Verdana,sans-serif" font-size="10" fill="#eeeeee">{{.Username}} · {{.Rarity}}</text>
</svg>
`))

// rarityStyle varies the frame per catalog rarity
type rarityStyle struct {
	Accent       string
	StrokeWidth  int
	CornerRadius int
}

var rarityStyles = map[domain.Rarity]rarityStyle{
	domain.RarityCommon:    {Accent: "#9e9e9e", StrokeWidth: 1, CornerRadius: 6},
	domain.RarityRare:      {Accent: "#2196f3", StrokeWidth: 2, CornerRadius: 8},
	domain.RarityEpic:      {Accent: "#9c27b0", StrokeWidth: 2, CornerRadius: 10},
	domain.RarityLegendary: {Accent: "#ffb300", StrokeWidth: 3, CornerRadius: 12},
}

// ImageWriter renders per-award SVG badge images into a directory
type ImageWriter struct {
	dir string
}

// NewImageWriter creates a writer rooted at dir
func NewImageWriter(dir string) *ImageWriter {
	return &ImageWriter{dir: dir}
}

// WriteBadgeImage renders the badge image for (username, badge) and returns
// the path it was written to
func (w *ImageWriter) WriteBadgeImage(ctx context.Context, username string, def domain.BadgeDefinition) (string, error) {
	if strings.ContainsAny(username, "/\\") || strings.Contains(username, "..") || username == "" {
		return "", fmt.Errorf(ErrMsgInvalidUsername, username)
	}

	if err := os.MkdirAll(w.dir, ImageDirPermissions); err != nil {
		return "", fmt.Errorf(ErrMsgCreateImageDir, err)
	}

	style, ok := rarityStyles[def.Rarity]
	if !ok {
		style = rarityStyles[domain.RarityCommon]
	}

	color := def.Color
	if color == "" {
		color = "#555555"
	}

	var buf bytes.Buffer
	err := svgTemplate.Execute(&buf, struct {
		Username     string
		DisplayName  string
		Emoji        string
		Color        string
		Rarity       domain.Rarity
		Accent       string
		StrokeWidth  int
		CornerRadius int
	}{
		Username:     username,
		DisplayName:  def.DisplayName,
		Emoji:        def.Emoji,
		Color:        color,
		Rarity:       def.Rarity,
		Accent:       style.Accent,
		StrokeWidth:  style.StrokeWidth,
		CornerRadius: style.CornerRadius,
	})
	if err != nil {
		return "", fmt.Errorf(ErrMsgRenderImage, err)
	}

	path := filepath.Join(w.dir, fmt.Sprintf("%s-%s.svg", username, def.ID))
	if err := os.WriteFile(path, buf.Bytes(), ListingFilePermissions); err != nil {
		return "", fmt.Errorf(ErrMsgWriteImage, err)
	}

	logger.FromContext(ctx).Debug(LogMsgImageWritten, "path", path)
	return path, nil
}
