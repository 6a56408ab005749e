// Package artifact turns badge awards into display artifacts: a shields.io
// markdown link per award, an upserted row in the contributors listing
// document, and a generated SVG badge image. Generation is driven off the
// event bus so award processing never blocks on filesystem sinks.
package artifact

import (
	"context"
	"strings"
	"time"

	"github.com/funckode/funckode/internal/catalog"
	"github.com/funckode/funckode/internal/domain"
	"github.com/funckode/funckode/internal/event"
	"github.com/funckode/funckode/internal/logger"
)

// Generator listens for badge awards and maintains the display artifacts
type Generator struct {
	catalog *catalog.Catalog
	listing *Listing
	images  *ImageWriter
	repoURL string
}

// NewGenerator wires the artifact sinks together. repoURL is the base
// repository URL badge links resolve against.
func NewGenerator(cat *catalog.Catalog, listing *Listing, images *ImageWriter, repoURL string) *Generator {
	return &Generator{
		catalog: cat,
		listing: listing,
		images:  images,
		repoURL: repoURL,
	}
}

// Register subscribes the generator to badge award events
func (g *Generator) Register(bus event.Bus) {
	bus.Subscribe(event.BadgeAwarded, g.handleBadgeAwarded)
}

// Reconcile rebuilds the display artifacts for every contributor from the
// stored records, replacing whatever the documents currently hold. The
// listing is a shared file edited by humans too, so generated rows drift;
// a periodic rebuild heals them. Per-contributor failures are logged and
// the pass continues.
func (g *Generator) Reconcile(ctx context.Context, contributors []domain.Contributor) error {
	log := logger.FromContext(ctx)

	for i := range contributors {
		c := &contributors[i]
		if len(c.Badges) == 0 {
			continue
		}

		cells := make([]string, 0, len(c.Badges))
		for _, award := range c.Badges {
			def := g.definitionFor(ctx, award.Type)
			cells = append(cells, BadgeMarkdown(def, award, g.repoURL))

			if _, err := g.images.WriteBadgeImage(ctx, c.Username, def); err != nil {
				log.Error(LogMsgImageFailed, "username", c.Username, "badgeType", award.Type, "error", err)
			}
		}

		if err := g.listing.ReplaceRow(ctx, c.Username, strings.Join(cells, " ")); err != nil {
			log.Error(LogMsgUpsertFailed, "username", c.Username, "error", err)
		}
	}

	log.Info(LogMsgReconciled, "contributors", len(contributors))
	return nil
}

// definitionFor resolves a badge definition, falling back to neutral
// styling for types the catalog no longer knows
func (g *Generator) definitionFor(ctx context.Context, badgeType domain.BadgeType) domain.BadgeDefinition {
	def, ok := g.catalog.Definition(badgeType)
	if !ok {
		logger.FromContext(ctx).Warn(LogMsgUnknownBadge, "badgeType", badgeType)
		def = domain.BadgeDefinition{
			ID:          badgeType,
			DisplayName: string(badgeType),
			Rarity:      domain.RarityCommon,
		}
	}
	return def
}

// handleBadgeAwarded generates artifacts for one award. Artifact sinks are
// best-effort: failures are logged, never propagated to the publisher.
func (g *Generator) handleBadgeAwarded(ctx context.Context, e event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[event.BadgeAwardedPayloadV1](e.Payload)
	if err != nil {
		log.Warn(LogMsgDecodeFailed, "eventType", e.Type, "error", err)
		return nil
	}

	badgeType := domain.BadgeType(payload.BadgeType)
	def := g.definitionFor(ctx, badgeType)

	award := domain.BadgeAward{
		Type:      badgeType,
		AwardedAt: time.Unix(payload.Timestamp, 0).UTC(),
		Evidence:  payload.Evidence,
	}

	badgeMD := BadgeMarkdown(def, award, g.repoURL)
	if err := g.listing.UpsertRow(ctx, payload.Username, badgeMD); err != nil {
		log.Error(LogMsgUpsertFailed, "username", payload.Username, "error", err)
	}

	if _, err := g.images.WriteBadgeImage(ctx, payload.Username, def); err != nil {
		log.Error(LogMsgImageFailed, "username", payload.Username, "badgeType", payload.BadgeType, "error", err)
	}

	return nil
}
