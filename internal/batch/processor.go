package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"labelproof/constants"
	"labelproof/internal/common"
	"labelproof/internal/verify"
	"labelproof/internal/vision"
)

// Processor runs the verification pipeline for one application: fetch its
// label images, extract fields from each, compare against the declared
// values, persist the outcome, and promote the workflow status when the
// verdict warrants a review.
type Processor struct {
	logger    *slog.Logger
	extractor vision.Extractor
	apps      ApplicationStore
	images    ImageStore
	results   ResultStore
}

func NewProcessor(
	logger *slog.Logger,
	extractor vision.Extractor,
	apps ApplicationStore,
	images ImageStore,
	results ResultStore,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:    logger,
		extractor: extractor,
		apps:      apps,
		images:    images,
		results:   results,
	}
}

// ImageOutcome is one label image's verification verdict.
type ImageOutcome struct {
	ImageID     uuid.UUID
	Role        constants.ImageRole
	Fields      verify.Result
	Disposition constants.ApplicationStatus
	Confidence  float32
}

// ApplicationOutcome summarizes a full verification run over one application.
type ApplicationOutcome struct {
	ApplicationID uuid.UUID
	SerialNumber  string
	Disposition   constants.ApplicationStatus
	Promoted      bool
	Images        []ImageOutcome
}

// ProcessApplication verifies every label image of one application.
// Returns an error when nothing could be verified (missing application,
// no images, extraction failure); the caller records it as a per-item
// failure without touching sibling applications.
func (p *Processor) ProcessApplication(ctx context.Context, id uuid.UUID) (*ApplicationOutcome, error) {
	app, err := p.apps.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}

	imgs, err := p.images.ListByApplicationID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list label images: %w", err)
	}
	if len(imgs) == 0 {
		return nil, fmt.Errorf("no label images uploaded for application %s", app.SerialNumber)
	}

	declared := app.DeclaredFields()
	outcome := &ApplicationOutcome{
		ApplicationID: app.ID,
		SerialNumber:  app.SerialNumber,
		Images:        make([]ImageOutcome, 0, len(imgs)),
	}

	for _, img := range imgs {
		start := time.Now()
		extraction, err := p.extractor.Extract(ctx, vision.Request{
			ImageData:    img.Data,
			ContentType:  img.ContentType,
			BeverageType: string(app.BeverageType),
			Role:         string(img.Role),
		})
		if err != nil {
			p.logger.Error("processor.extract.failed",
				"application_id", app.ID, "image_id", img.ID, "role", img.Role, "err", err)
			return nil, fmt.Errorf("extract %s label: %w", img.Role, err)
		}

		result := verify.VerifyFields(declared, extraction.Fields)
		disposition := verify.ResolveStatus(result)

		if _, err := p.results.RecordExtraction(ctx, img.ID, app.ID, extraction, result, time.Since(start)); err != nil {
			return nil, fmt.Errorf("record extraction: %w", err)
		}

		// One-way promotion: formatting drift surfaces the application for
		// review, but verification never demotes or overrides a reviewer.
		if disposition == constants.StatusNeedsReview &&
			app.Status == constants.StatusPending && !outcome.Promoted {
			notes := fmt.Sprintf("label verification flagged formatting differences on the %s label", img.Role)
			if err := p.apps.UpdateStatus(ctx, app.ID, constants.StatusNeedsReview, notes); err != nil {
				return nil, fmt.Errorf("update status: %w", err)
			}
			outcome.Promoted = true
		}

		outcome.Images = append(outcome.Images, ImageOutcome{
			ImageID:     img.ID,
			Role:        img.Role,
			Fields:      result,
			Disposition: disposition,
			Confidence:  extraction.Confidence(),
		})
		p.logger.Debug("processor image verified",
			"application_id", app.ID,
			"image_id", img.ID,
			"role", img.Role,
			"fields", len(result),
			"disposition", disposition,
		)
	}

	outcome.Disposition = aggregateDisposition(outcome.Images)
	log := p.logger
	if batchID := common.BatchIDFromContext(ctx); batchID != "" {
		log = log.With("batch_id", batchID)
	}
	log.Info("application verified",
		"application_id", app.ID,
		"serial_number", app.SerialNumber,
		"images", len(outcome.Images),
		"disposition", outcome.Disposition,
		"promoted", outcome.Promoted,
	)
	return outcome, nil
}

// aggregateDisposition folds per-image verdicts into one summary with the
// same precedence the per-field resolver uses: anything needing human
// judgment keeps the application pending; review is only suggested when every
// image is at worst formatting drift.
func aggregateDisposition(images []ImageOutcome) constants.ApplicationStatus {
	needsReview := false
	for _, img := range images {
		for _, fr := range img.Fields {
			switch fr.Category {
			case constants.MatchHardMismatch, constants.MatchNotFound:
				return constants.StatusPending
			case constants.MatchSoftMismatch:
				needsReview = true
			}
		}
	}
	if needsReview {
		return constants.StatusNeedsReview
	}
	return constants.StatusPending
}
