package images

import (
	"fmt"

	"github.com/bacalhau-project/amiaudit/pkg/logger"
	"github.com/bacalhau-project/amiaudit/pkg/models"
)

// UniqueIdentifier builds the display identifier of a listing.
func UniqueIdentifier(title, listingType, serial string) string {
	return fmt.Sprintf("%s (%s) - %s", title, listingType, serial)
}

// Normalize merges the classification and parse result onto the raw image.
// No validation happens here; missing fields stay empty or absent.
func Normalize(
	raw models.RawImage,
	owner models.Owner,
	fields models.ParsedFields,
	parsed bool,
) models.ImageRecord {
	record := models.ImageRecord{
		Region:         raw.Region,
		QuickstartSlot: raw.QuickstartSlot,
		ListingArch:    raw.ListingArch,
		ImageID:        raw.ImageID,
		OwnerAlias:     raw.OwnerAlias,
		Name:           raw.Name,
		Title:          raw.Title,
		Description:    raw.Description,
		Type:           raw.Type,
		Owner:          owner,
		Parsed:         parsed,
	}
	if parsed {
		record.Fields = make(models.ParsedFields, len(fields))
		for k, v := range fields {
			record.Fields[k] = v
		}
	}
	record.UniqueIdentifier = UniqueIdentifier(record.Title, record.Type, record.Serial())
	return record
}

// Pipeline runs classification, name parsing and normalization for raw images.
type Pipeline struct {
	classifier *Classifier
}

func NewPipeline(identity Identity) *Pipeline {
	return &Pipeline{classifier: NewClassifier(identity)}
}

// Process returns false when the image is not published by a known Ubuntu
// owner. Such images are dropped without error.
func (p *Pipeline) Process(raw models.RawImage) (models.ImageRecord, bool) {
	owner := p.classifier.Classify(raw.OwnerAlias)
	if owner == models.OwnerUnknown {
		logger.Get().Debugf("%s - skipping %s owned by %q", raw.Region, raw.ImageID, raw.OwnerAlias)
		return models.ImageRecord{}, false
	}

	fields, ok := ParseName(owner, raw.Name)
	if !ok {
		logger.Get().Debugf("%s - %s name %q does not match the %s grammar", raw.Region, raw.ImageID, raw.Name, owner)
	}
	return Normalize(raw, owner, fields, ok), true
}

// ProcessAll processes raw images in order, keeping only known owners.
func (p *Pipeline) ProcessAll(raws []models.RawImage) []models.ImageRecord {
	records := make([]models.ImageRecord, 0, len(raws))
	for _, raw := range raws {
		if record, ok := p.Process(raw); ok {
			records = append(records, record)
		}
	}
	return records
}
