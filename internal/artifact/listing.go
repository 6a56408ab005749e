package artifact

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/funckode/funckode/internal/logger"
)

// Listing patches the contributors markdown table: one row per username,
// one cell aggregating every badge link that contributor has earned. The
// document is a shared file edited by humans too, so the patcher touches
// only the matched row and rewrites nothing else.
type Listing struct {
	path string
	mu   sync.Mutex
}

// NewListing creates a listing patcher for the given document path
func NewListing(path string) *Listing {
	return &Listing{path: path}
}

// UpsertRow appends badgeMD to the username's row cell, inserting a new
// row when the contributor has none. A missing document is created with
// the standard header.
func (l *Listing) UpsertRow(ctx context.Context, username, badgeMD string) error {
	log := logger.FromContext(ctx)

	return l.patchRow(username, func(existing string) string {
		if existing != "" {
			log.Debug(LogMsgRowAppended, "username", username)
			return existing + " " + badgeMD
		}
		log.Debug(LogMsgRowInserted, "username", username)
		return badgeMD
	})
}

// ReplaceRow sets the username's row cell to exactly cellMD, discarding
// whatever the cell held. Reconciliation uses this to rebuild rows from
// the stored records.
func (l *Listing) ReplaceRow(ctx context.Context, username, cellMD string) error {
	log := logger.FromContext(ctx)

	return l.patchRow(username, func(string) string {
		log.Debug(LogMsgRowReplaced, "username", username)
		return cellMD
	})
}

// patchRow rewrites the username's badge cell through patch, which receives
// the current cell content ("" when the row does not exist) and returns the
// new content. A missing document is created with the standard header.
func (l *Listing) patchRow(username string, patch func(existing string) string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	content, err := os.ReadFile(l.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf(ErrMsgReadListing, err)
		}
		content = []byte(listingHeader)
	}

	doc := string(content)
	rowPattern := regexp.MustCompile(`(?m)^\|\s*` + regexp.QuoteMeta(username) + `\s*\|(.*)\|\s*$`)

	if loc := rowPattern.FindStringSubmatchIndex(doc); loc != nil {
		cell := patch(strings.TrimSpace(doc[loc[2]:loc[3]]))
		doc = doc[:loc[0]] + fmt.Sprintf("| %s | %s |", username, cell) + doc[loc[1]:]
	} else {
		if !strings.HasSuffix(doc, "\n") {
			doc += "\n"
		}
		doc += fmt.Sprintf("| %s | %s |\n", username, patch(""))
	}

	if err := os.WriteFile(l.path, []byte(doc), ListingFilePermissions); err != nil {
		return fmt.Errorf(ErrMsgWriteListing, err)
	}
	return nil
}
