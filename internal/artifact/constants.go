package artifact

import "os"

const (
	// ListingFilePermissions applies to the contributors listing document
	ListingFilePermissions os.FileMode = 0644

	// ImageDirPermissions applies to the badge image directory
	ImageDirPermissions os.FileMode = 0755
)

// listingHeader opens a fresh contributors listing document
const listingHeader = `# Contributors

Badges earned by func(Kode) community members.

| Contributor | Badges |
|-------------|--------|
`

// ==================== Error Messages ====================

const (
	ErrMsgReadListing     = "failed to read contributors listing: %w"
	ErrMsgWriteListing    = "failed to write contributors listing: %w"
	ErrMsgRenderImage     = "failed to render badge image: %w"
	ErrMsgWriteImage      = "failed to write badge image: %w"
	ErrMsgCreateImageDir  = "failed to create badge image directory: %w"
	ErrMsgInvalidUsername = "invalid username for artifact path: %q"
)

// ==================== Log Messages ====================

const (
	LogMsgRowAppended  = "Badge appended to contributor row"
	LogMsgRowInserted  = "Contributor row inserted"
	LogMsgRowReplaced  = "Contributor row rebuilt"
	LogMsgImageWritten = "Badge image written"
	LogMsgDecodeFailed = "Failed to decode event payload for artifact generation"
	LogMsgUpsertFailed = "Failed to update contributors listing"
	LogMsgImageFailed  = "Failed to write badge image"
	LogMsgUnknownBadge = "No catalog entry for badge type, using fallback styling"
	LogMsgReconciled   = "Display artifacts reconciled"
)
