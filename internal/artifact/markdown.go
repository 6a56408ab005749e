package artifact

import (
	"fmt"
	"strings"

	"github.com/funckode/funckode/internal/domain"
)

// shieldsEscaper applies the static-badge escaping rules: dashes double,
// underscores double, spaces become underscores
var shieldsEscaper = strings.NewReplacer("-", "--", "_", "__", " ", "_")

// BadgeMarkdown renders one earned badge as a markdown image link. The image
// is a shields.io static badge in the catalog color; the link deep-links to
// the originating PR or issue when the evidence names one, else to the
// repository root.
func BadgeMarkdown(def domain.BadgeDefinition, award domain.BadgeAward, repoURL string) string {
	label := strings.TrimSpace(def.Emoji + " " + def.DisplayName)
	color := strings.TrimPrefix(def.Color, "#")
	if color == "" {
		color = "blue"
	}

	imageURL := fmt.Sprintf("https://img.shields.io/badge/%s-%s?style=flat",
		shieldsEscaper.Replace(label), color)

	return fmt.Sprintf("[![%s](%s)](%s)", def.DisplayName, imageURL, deepLink(award, repoURL))
}

// deepLink resolves the award's evidence to a PR or issue URL, falling
// back to the repository root
func deepLink(award domain.BadgeAward, repoURL string) string {
	repoURL = strings.TrimSuffix(repoURL, "/")
	if n, ok := award.EvidenceInt(domain.EvidencePRNumber); ok {
		return fmt.Sprintf("%s/pull/%d", repoURL, n)
	}
	if n, ok := award.EvidenceInt(domain.EvidenceIssueNumber); ok {
		return fmt.Sprintf("%s/issues/%d", repoURL, n)
	}
	return repoURL
}
