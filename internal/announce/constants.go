package announce

import "time"

// MessageDelay spaces consecutive webhook sends so a burst of awards does
// not trip Discord's rate limiting
const MessageDelay = 500 * time.Millisecond

// AnnouncerUsername is the display name announcements post under
const AnnouncerUsername = "func(Kode) Bot"

// AnnouncerAvatarURL is the avatar announcements post under
const AnnouncerAvatarURL = "https://github.com/funckode.png"

// ==================== Message Formats ====================

const (
	MsgFmtBadgeAwarded   = "%s **%s** just earned the **%s** badge!"
	MsgFmtLevelUp        = "🎉 **%s** leveled up: **Level %d → Level %d**!"
	MsgFmtStreak         = "🔥 **%s** is on a **%d-day** contribution streak!"
	MsgFmtTopContributor = "🏆 **%s** is the top contributor for **%s** with a score of **%d**!"
)

// ==================== Error Messages ====================

const (
	ErrMsgInvalidWebhookURL = "invalid Discord webhook URL"
)

// ==================== Log Messages ====================

const (
	LogMsgAnnouncerDisabled = "Discord webhook not configured, announcements disabled"
	LogMsgAnnouncementSent  = "Announcement sent"
	LogMsgSendFailed        = "Failed to send announcement"
	LogMsgDecodeFailed      = "Failed to decode event payload for announcement"
)
