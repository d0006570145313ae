package brandkit

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/nclosa/go-brandkit/internal/docio"
	"github.com/nclosa/go-brandkit/internal/nameutil"
)

// Archive folder layout.
const (
	DataFileName    = "data.json"
	LogosFolder     = "assets/logos/"
	GalleryFolder   = "assets/gallery/"
	FontsFolder     = "assets/fonts/"
	archiveSuffix   = "-brand-kit"
	ArchiveFileExt  = ".zip"
	galleryBaseName = "photo-"
)

// ArchiveEntry is one named binary entry in the archive layout.
type ArchiveEntry struct {
	Name string
	Data []byte
}

// ArchiveLayout is the final set of named entries produced by the
// export pipeline: the rewritten data document first, then the asset
// entries in deterministic order. Document is the rewritten kit the
// data entry was serialized from.
type ArchiveLayout struct {
	Document *BrandKit
	Entries  []ArchiveEntry
}

// SuggestedFilename returns the archive filename derived from the
// brand name: slugify(brand.name) + "-brand-kit.zip".
func (l *ArchiveLayout) SuggestedFilename() string {
	return nameutil.Slugify(l.Document.Brand.Name) + archiveSuffix + ArchiveFileExt
}

// BuildLayout computes the archive layout for a kit and its staged
// assets. It is pure: the kit is validated, deep-copied, and the copy's
// asset-bearing fields are rewritten to archive-relative paths; the
// caller's document is never touched. Either every pending asset is
// placed and referenced or the whole layout fails - no partial rewrite
// is ever returned.
//
// An invalid kit fails with ErrKitInvalid wrapping the ValidationError.
// An asset addressing a slot outside the document's bounds fails with
// ErrUnknownSlot. Two invocations with the same inputs produce
// byte-identical entries.
func BuildLayout(kit *BrandKit, assets []PendingAsset) (*ArchiveLayout, error) {
	return buildLayout(kit, assets, zap.NewNop())
}

func buildLayout(kit *BrandKit, assets []PendingAsset, logger *zap.Logger) (*ArchiveLayout, error) {
	if kit == nil {
		return nil, ErrNilKit
	}
	if err := kit.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKitInvalid, err)
	}

	variantAssets := map[[2]int]PendingAsset{}
	galleryAssets := map[int]PendingAsset{}
	fontAssets := map[int][]PendingAsset{}

	for _, a := range assets {
		switch a.Slot.Kind {
		case SlotLogoVariant:
			if a.Slot.Index < 0 || a.Slot.Index >= len(kit.Logos) {
				return nil, fmt.Errorf("%w: %s (document has %d logos)", ErrUnknownSlot, a.Slot, len(kit.Logos))
			}
			variants := kit.Logos[a.Slot.Index].Variants
			if a.Slot.Sub < 0 || a.Slot.Sub >= len(variants) {
				return nil, fmt.Errorf("%w: %s (logo has %d variants)", ErrUnknownSlot, a.Slot, len(variants))
			}
			variantAssets[[2]int{a.Slot.Index, a.Slot.Sub}] = a
		case SlotGallery:
			if a.Slot.Index < 0 || a.Slot.Index >= len(kit.Gallery) {
				return nil, fmt.Errorf("%w: %s (document has %d gallery items)", ErrUnknownSlot, a.Slot, len(kit.Gallery))
			}
			galleryAssets[a.Slot.Index] = a
		case SlotFont:
			if a.Slot.Index < 0 || a.Slot.Index >= len(kit.Typography.Fonts) {
				return nil, fmt.Errorf("%w: %s (document has %d fonts)", ErrUnknownSlot, a.Slot, len(kit.Typography.Fonts))
			}
			fontAssets[a.Slot.Index] = append(fontAssets[a.Slot.Index], a)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownKind, a.Slot.Kind)
		}
	}

	doc := kit.Clone()
	placer := newEntryPlacer(logger)

	// Logo variants: slugified logo name plus one-based variant number.
	// Variants without a staged asset keep their src verbatim.
	for i := range doc.Logos {
		slug := nameutil.Slugify(doc.Logos[i].Name)
		for j := range doc.Logos[i].Variants {
			asset, ok := variantAssets[[2]int{i, j}]
			if !ok {
				continue
			}
			name := LogosFolder + slug + "-" + strconv.Itoa(j+1) + "." + nameutil.Ext(asset.OriginalFilename)
			placer.place(name, asset)
			doc.Logos[i].Variants[j].Src = name
		}
	}

	// Gallery: one-based positional naming; the item's current index is
	// the join key.
	for i := range doc.Gallery {
		asset, ok := galleryAssets[i]
		if !ok {
			continue
		}
		name := GalleryFolder + galleryBaseName + strconv.Itoa(i+1) + "." + nameutil.Ext(asset.OriginalFilename)
		placer.place(name, asset)
		doc.Gallery[i].Src = name
	}

	// Fonts: slugified font name plus the original filename, in staged
	// order. FontSource has no binary-path field, so nothing is written
	// back into the document.
	for i := range doc.Typography.Fonts {
		slug := nameutil.Slugify(doc.Typography.Fonts[i].Name)
		for _, asset := range fontAssets[i] {
			placer.place(FontsFolder+slug+"-"+asset.OriginalFilename, asset)
		}
	}

	data, err := docio.MarshalIndent(doc)
	if err != nil {
		return nil, fmt.Errorf("serializing data document: %w", err)
	}

	entries := make([]ArchiveEntry, 0, len(placer.entries)+1)
	entries = append(entries, ArchiveEntry{Name: DataFileName, Data: data})
	entries = append(entries, placer.entries...)

	return &ArchiveLayout{Document: doc, Entries: entries}, nil
}

// entryPlacer collects asset entries and folds duplicate target paths:
// the first entry's position is kept, its content replaced by the later
// asset. A digest-bearing warning is logged when folding replaces
// different content.
type entryPlacer struct {
	entries []ArchiveEntry
	byName  map[string]int
	digests map[string]string
	logger  *zap.Logger
}

func newEntryPlacer(logger *zap.Logger) *entryPlacer {
	return &entryPlacer{
		byName:  map[string]int{},
		digests: map[string]string{},
		logger:  logger,
	}
}

func (p *entryPlacer) place(name string, asset PendingAsset) {
	if i, ok := p.byName[name]; ok {
		if p.digests[name] != asset.Digest {
			p.logger.Warn("archive path collision, later asset wins",
				zap.String("entry", name),
				zap.String("previousDigest", p.digests[name]),
				zap.String("replacementDigest", asset.Digest))
		}
		p.entries[i].Data = asset.Data
		p.digests[name] = asset.Digest
		return
	}

	p.byName[name] = len(p.entries)
	p.digests[name] = asset.Digest
	p.entries = append(p.entries, ArchiveEntry{Name: name, Data: asset.Data})
}

// Exporter materializes archive layouts through the configured
// ArchiveWriter and Delivery capabilities. Create with NewExporter,
// configure with options.
type Exporter struct {
	cfg exporterConfig
}

// exporterConfig holds internal configuration for Exporter.
type exporterConfig struct {
	logger    *zap.Logger
	newWriter func() ArchiveWriter
	delivery  Delivery
	zipLevel  int
}

// ExporterOption configures an Exporter.
type ExporterOption func(*Exporter)

// WithLogger sets the logger for export diagnostics.
// The default is a no-op logger.
func WithLogger(logger *zap.Logger) ExporterOption {
	return func(e *Exporter) {
		if logger != nil {
			e.cfg.logger = logger
		}
	}
}

// WithArchiveWriter replaces the default ZIP writer factory. Each
// export calls the factory once; writers are single-use.
func WithArchiveWriter(factory func() ArchiveWriter) ExporterOption {
	return func(e *Exporter) {
		e.cfg.newWriter = factory
	}
}

// WithDelivery sets the delivery collaborator the finished archive is
// offered to. Without one, Export only returns the archive bytes.
func WithDelivery(d Delivery) ExporterOption {
	return func(e *Exporter) {
		e.cfg.delivery = d
	}
}

// WithCompressionLevel sets the flate level (0-9) for the default ZIP
// writer. Ignored when WithArchiveWriter is used.
func WithCompressionLevel(level int) ExporterOption {
	return func(e *Exporter) {
		e.cfg.zipLevel = level
	}
}

// NewExporter creates an Exporter with default configuration: ZIP
// archive output, no delivery, no logging.
func NewExporter(opts ...ExporterOption) *Exporter {
	e := &Exporter{
		cfg: exporterConfig{
			logger:   zap.NewNop(),
			zipLevel: DefaultCompressionLevel,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.cfg.newWriter == nil {
		level := e.cfg.zipLevel
		e.cfg.newWriter = func() ArchiveWriter { return NewZipWriter(level) }
	}
	return e
}

// ExportResult holds the outcome of a successful export.
type ExportResult struct {
	Layout   *ArchiveLayout
	Archive  []byte
	Filename string
}

// Export computes the layout and materializes it into a single archive
// blob. Materialization is the pipeline's only suspension point: the
// context is checked between entries and before delivery. When a
// Delivery is configured, the blob is delivered under the layout's
// suggested filename only after the archive has serialized completely;
// a write or delivery failure surfaces as ErrArchiveWrite and no
// partial archive is delivered.
func (e *Exporter) Export(ctx context.Context, kit *BrandKit, assets []PendingAsset) (*ExportResult, error) {
	layout, err := buildLayout(kit, assets, e.cfg.logger)
	if err != nil {
		return nil, err
	}

	writer := e.cfg.newWriter()
	for _, entry := range layout.Entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := writer.Add(entry.Name, entry.Data); err != nil {
			return nil, fmt.Errorf("%w: adding %s: %v", ErrArchiveWrite, entry.Name, err)
		}
		e.cfg.logger.Debug("added archive entry",
			zap.String("entry", entry.Name),
			zap.Int("bytes", len(entry.Data)))
	}

	blob, err := writer.Finalize()
	if err != nil {
		return nil, fmt.Errorf("%w: finalizing archive: %v", ErrArchiveWrite, err)
	}

	result := &ExportResult{
		Layout:   layout,
		Archive:  blob,
		Filename: layout.SuggestedFilename(),
	}

	if e.cfg.delivery != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := e.cfg.delivery.Deliver(result.Filename, blob); err != nil {
			return nil, fmt.Errorf("%w: delivering %s: %v", ErrArchiveWrite, result.Filename, err)
		}
		e.cfg.logger.Info("archive delivered",
			zap.String("filename", result.Filename),
			zap.Int("entries", len(layout.Entries)),
			zap.Int("bytes", len(blob)))
	}

	return result, nil
}
