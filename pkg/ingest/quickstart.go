package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bacalhau-project/amiaudit/pkg/images"
	"github.com/bacalhau-project/amiaudit/pkg/logger"
	"github.com/bacalhau-project/amiaudit/pkg/models"
)

const (
	QuickstartFileSuffix = "-getQuickstartList.json"
	QuickstartPlatform   = "ubuntu"
	QuickstartType       = "Quick Start"
)

// QuickstartEntry is one entry of the console's getQuickstartList response.
type QuickstartEntry struct {
	Platform     string `json:"platform"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageID64    string `json:"imageId64,omitempty"`
	ImageIDArm64 string `json:"imageIdArm64,omitempty"`
}

// QuickstartList is the getQuickstartList response body.
type QuickstartList struct {
	AMIList []QuickstartEntry `json:"amiList"`
}

// QuickstartListing is a single (slot, architecture) AMI advertised by the console.
type QuickstartListing struct {
	Slot        int
	Arch        string
	ImageID     string
	Title       string
	Description string
}

// ImageDescriber looks up EC2 image metadata.
type ImageDescriber interface {
	DescribeImages(ctx context.Context, region string, imageIDs []string) (map[string]models.ImageDetail, error)
}

// QuickstartFile returns the path of the captured quickstart list for a region.
func QuickstartFile(dir, region string) string {
	return filepath.Join(dir, region+QuickstartFileSuffix)
}

func ReadQuickstartList(path string) (*QuickstartList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read quickstart list: %w", err)
	}
	var list QuickstartList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse quickstart list %s: %w", path, err)
	}
	return &list, nil
}

// Listings flattens the quickstart list into ordered per-architecture
// listings. Slots count every entry, Ubuntu or not, starting at 1.
func (q *QuickstartList) Listings() []QuickstartListing {
	var listings []QuickstartListing
	for i, entry := range q.AMIList {
		if entry.Platform != QuickstartPlatform {
			continue
		}
		for _, candidate := range []struct{ arch, id string }{
			{models.ArchAMD64, entry.ImageID64},
			{models.ArchARM64, entry.ImageIDArm64},
		} {
			if candidate.id == "" {
				continue
			}
			listings = append(listings, QuickstartListing{
				Slot:        i + 1,
				Arch:        candidate.arch,
				ImageID:     candidate.id,
				Title:       entry.Title,
				Description: entry.Description,
			})
		}
	}
	return listings
}

// QuickstartGatherer turns captured quickstart lists into raw images by
// looking each AMI up in EC2.
type QuickstartGatherer struct {
	Dir       string
	Describer ImageDescriber
}

func NewQuickstartGatherer(dir string, describer ImageDescriber) *QuickstartGatherer {
	return &QuickstartGatherer{Dir: dir, Describer: describer}
}

// Gather returns the region's raw images in listing order. Listings whose
// AMI EC2 does not return are skipped.
func (g *QuickstartGatherer) Gather(ctx context.Context, region string) ([]models.RawImage, error) {
	l := logger.Get()
	l.Infof("%s - Querying quickstart list", region)

	list, err := ReadQuickstartList(QuickstartFile(g.Dir, region))
	if err != nil {
		return nil, err
	}

	listings := list.Listings()
	if len(listings) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(listings))
	for _, listing := range listings {
		ids = append(ids, listing.ImageID)
	}
	details, err := g.Describer.DescribeImages(ctx, region, ids)
	if err != nil {
		return nil, err
	}

	raws := make([]models.RawImage, 0, len(listings))
	for _, listing := range listings {
		detail, ok := details[listing.ImageID]
		if !ok {
			l.Warnf("%s - AMI %s in slot %d was not found", region, listing.ImageID, listing.Slot)
			continue
		}
		raws = append(raws, models.RawImage{
			Region:         region,
			QuickstartSlot: listing.Slot,
			ListingArch:    listing.Arch,
			ImageID:        listing.ImageID,
			OwnerAlias:     images.OwnerField(detail.OwnerAlias, detail.OwnerID),
			Name:           detail.Name,
			Title:          listing.Title,
			Description:    listing.Description,
			Type:           QuickstartType,
		})
	}
	return raws, nil
}
